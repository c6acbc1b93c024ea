package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mgyenik/rasmodius/internal/mechanics"
	"github.com/mgyenik/rasmodius/internal/scan"
	"github.com/mgyenik/rasmodius/internal/store"
	"github.com/mgyenik/rasmodius/internal/version"
)

// queryInt32 reads an int32 query parameter, falling back when absent.
func queryInt32(r *http.Request, name string, fallback int32) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// handlePredictDay returns luck, dish, weather, night event and cart stock
// for one seed and day.
func (s *Server) handlePredictDay(w http.ResponseWriter, r *http.Request) {
	seed, err := queryInt32(r, "seed", 0)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid seed")
		return
	}
	day, err := queryInt32(r, "day", 1)
	if err != nil || day < 1 {
		s.writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	versionStr := r.URL.Query().Get("version")
	v := version.Parse(versionStr)

	s.writeJSON(w, http.StatusOK, DayResponse{
		Seed:          seed,
		Day:           day,
		Version:       v.String(),
		Prediction:    mechanics.PredictDay(seed, day, v),
		EngineVersion: EngineVersion,
	})
}

// handlePredictCart returns the traveling cart stock for one day.
func (s *Server) handlePredictCart(w http.ResponseWriter, r *http.Request) {
	seed, err := queryInt32(r, "seed", 0)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid seed")
		return
	}
	day, err := queryInt32(r, "day", 5)
	if err != nil || day < 1 {
		s.writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	v := version.Parse(r.URL.Query().Get("version"))

	resp := CartResponse{
		Seed:          seed,
		Day:           day,
		Version:       v.String(),
		CartDay:       mechanics.IsCartDay(day),
		EngineVersion: EngineVersion,
	}
	if resp.CartDay {
		resp.Items = mechanics.GetCartForDay(seed, day, v)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handlePredictGeodes returns the next N geode contents.
func (s *Server) handlePredictGeodes(w http.ResponseWriter, r *http.Request) {
	seed, err := queryInt32(r, "seed", 0)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid seed")
		return
	}
	start, err := queryInt32(r, "start", 1)
	if err != nil || start < 1 {
		s.writeError(w, http.StatusBadRequest, "invalid start geode")
		return
	}
	count, err := queryInt32(r, "count", 20)
	if err != nil || count < 1 || count > 1000 {
		s.writeError(w, http.StatusBadRequest, "count must be in 1..1000")
		return
	}
	deepest, err := queryInt32(r, "deepest_level", 120)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid deepest_level")
		return
	}

	gt := mechanics.ParseGeodeType(r.URL.Query().Get("type"))
	v := version.Parse(r.URL.Query().Get("version"))

	s.writeJSON(w, http.StatusOK, GeodesResponse{
		Seed:          seed,
		StartGeode:    start,
		GeodeType:     r.URL.Query().Get("type"),
		Version:       v.String(),
		Results:       mechanics.PredictGeodeSequence(seed, start, count, gt, deepest, v),
		EngineVersion: EngineVersion,
	})
}

// handlePredictFloors returns per-floor mine conditions for one day.
func (s *Server) handlePredictFloors(w http.ResponseWriter, r *http.Request) {
	seed, err := queryInt32(r, "seed", 0)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid seed")
		return
	}
	day, err := queryInt32(r, "day", 1)
	if err != nil || day < 1 {
		s.writeError(w, http.StatusBadRequest, "invalid day")
		return
	}
	start, err := queryInt32(r, "floor_start", 1)
	if err != nil || start < 1 {
		s.writeError(w, http.StatusBadRequest, "invalid floor_start")
		return
	}
	end, err := queryInt32(r, "floor_end", 120)
	if err != nil || end < start || end-start > 1000 {
		s.writeError(w, http.StatusBadRequest, "invalid floor window")
		return
	}

	v := version.Parse(r.URL.Query().Get("version"))

	floors := make([]mechanics.FloorConditions, 0, end-start+1)
	for floor := start; floor <= end; floor++ {
		floors = append(floors, mechanics.GetFloorConditions(seed, day, floor, v))
	}

	s.writeJSON(w, http.StatusOK, FloorsResponse{
		Seed:          seed,
		Day:           day,
		Version:       v.String(),
		Floors:        floors,
		EngineVersion: EngineVersion,
	})
}

// handleSearch runs a filter over a seed range and persists the run.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req scan.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	s.log.Info().
		Int32("seed_start", req.SeedStart).
		Int32("seed_end", req.SeedEnd).
		Str("version", req.Version).
		Int("max_results", req.MaxResults).
		Msg("search request")

	var matches []int32
	summary, err := s.scanner.Search(r.Context(), req, func(seed int32) bool {
		matches = append(matches, seed)
		return true
	}, nil)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scan.ErrInvalidFilter) ||
			errors.Is(err, scan.ErrUnknownLogic) ||
			errors.Is(err, scan.ErrUnknownCondition) ||
			errors.Is(err, scan.ErrInvalidRange) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err.Error())
		return
	}

	run := &store.Run{
		Version:        version.Parse(req.Version).String(),
		SeedStart:      req.SeedStart,
		SeedEnd:        req.SeedEnd,
		FilterJSON:     string(req.Filter),
		MaxResults:     req.MaxResults,
		Stopped:        summary.Stopped,
		MatchCount:     summary.MatchesFound,
		TotalEvaluated: summary.TotalEvaluated,
		LastSeed:       summary.LastSeed,
		EngineVersion:  EngineVersion,
	}
	if err := s.db.SaveRun(run); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to save run: "+err.Error())
		return
	}
	if err := s.db.SaveMatches(run.ID, matches); err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to save matches: "+err.Error())
		return
	}

	s.log.Info().
		Str("run_id", run.ID).
		Int("matches", summary.MatchesFound).
		Uint64("evaluated", summary.TotalEvaluated).
		Bool("stopped", summary.Stopped).
		Msg("search completed")

	s.writeJSON(w, http.StatusOK, SearchResponse{
		RunID:         run.ID,
		Matches:       matches,
		Summary:       *summary,
		EngineVersion: EngineVersion,
	})
}

// handleListRuns lists stored runs, newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	result, err := s.db.ListRuns(store.RunsQuery{
		Version: r.URL.Query().Get("version"),
		Page:    queryInt(r, "page", 1),
		PerPage: queryInt(r, "per_page", 50),
	})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleGetRun returns one stored run.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.db.GetRun(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.writeError(w, http.StatusNotFound, "run not found")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, RunResponse{Run: run, EngineVersion: EngineVersion})
}

// handleGetRunMatches returns a run's matches with pagination.
func (s *Server) handleGetRunMatches(w http.ResponseWriter, r *http.Request) {
	page, err := s.db.GetRunMatches(
		chi.URLParam(r, "id"),
		queryInt(r, "page", 1),
		queryInt(r, "per_page", 100),
	)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}
