package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteDB implements DB on a local SQLite file.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) a SQLite database at path.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets readers see finished runs while a search is still writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the schema.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			seed_start INTEGER NOT NULL,
			seed_end INTEGER NOT NULL,
			filter_json TEXT NOT NULL,
			max_results INTEGER NOT NULL DEFAULT 0,
			stopped INTEGER NOT NULL DEFAULT 0,
			match_count INTEGER NOT NULL DEFAULT 0,
			total_evaluated INTEGER NOT NULL DEFAULT 0,
			last_seed INTEGER NOT NULL DEFAULT 0,
			engine_version TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_run_seed ON matches(run_id, seed)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_version ON runs(version, created_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// SaveRun inserts a run, assigning an ID if the caller did not.
func (s *SQLiteDB) SaveRun(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	query := `INSERT INTO runs (
		id, version, seed_start, seed_end, filter_json, max_results,
		stopped, match_count, total_evaluated, last_seed, engine_version
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		run.ID, run.Version, run.SeedStart, run.SeedEnd, run.FilterJSON,
		run.MaxResults, boolToInt(run.Stopped), run.MatchCount,
		run.TotalEvaluated, run.LastSeed, run.EngineVersion,
	)

	return err
}

// UpdateRun rewrites a run's mutable fields, typically after the search ends.
func (s *SQLiteDB) UpdateRun(run *Run) error {
	query := `UPDATE runs SET
		version = ?, seed_start = ?, seed_end = ?, filter_json = ?, max_results = ?,
		stopped = ?, match_count = ?, total_evaluated = ?, last_seed = ?, engine_version = ?
		WHERE id = ?`

	_, err := s.db.Exec(query,
		run.Version, run.SeedStart, run.SeedEnd, run.FilterJSON, run.MaxResults,
		boolToInt(run.Stopped), run.MatchCount, run.TotalEvaluated, run.LastSeed,
		run.EngineVersion, run.ID,
	)

	return err
}

// SaveMatches inserts a batch of matching seeds in one transaction.
func (s *SQLiteDB) SaveMatches(runID string, seeds []int32) error {
	if len(seeds) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO matches (run_id, seed) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, seed := range seeds {
		if _, err := stmt.Exec(runID, seed); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run by ID.
func (s *SQLiteDB) GetRun(id string) (*Run, error) {
	query := `SELECT
		id, version, seed_start, seed_end, filter_json, max_results,
		stopped, match_count, total_evaluated, last_seed, engine_version, created_at
		FROM runs WHERE id = ?`

	var run Run
	var stoppedInt int

	err := s.db.QueryRow(query, id).Scan(
		&run.ID, &run.Version, &run.SeedStart, &run.SeedEnd, &run.FilterJSON,
		&run.MaxResults, &stoppedInt, &run.MatchCount, &run.TotalEvaluated,
		&run.LastSeed, &run.EngineVersion, &run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	run.Stopped = stoppedInt == 1
	return &run, nil
}

// ListRuns retrieves runs with pagination, newest first, optionally filtered
// by game version.
func (s *SQLiteDB) ListRuns(query RunsQuery) (*RunsList, error) {
	whereClause := ""
	args := []interface{}{}

	if query.Version != "" {
		whereClause = "WHERE version = ?"
		args = append(args, query.Version)
	}

	var totalCount int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs "+whereClause, args...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	if query.PerPage <= 0 {
		query.PerPage = 50
	}
	if query.Page <= 0 {
		query.Page = 1
	}

	totalPages := (totalCount + query.PerPage - 1) / query.PerPage
	offset := (query.Page - 1) * query.PerPage

	mainQuery := `SELECT
		id, version, seed_start, seed_end, filter_json, max_results,
		stopped, match_count, total_evaluated, last_seed, engine_version, created_at
		FROM runs ` + whereClause + `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`

	args = append(args, query.PerPage, offset)

	rows, err := s.db.Query(mainQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var stoppedInt int

		err := rows.Scan(
			&run.ID, &run.Version, &run.SeedStart, &run.SeedEnd, &run.FilterJSON,
			&run.MaxResults, &stoppedInt, &run.MatchCount, &run.TotalEvaluated,
			&run.LastSeed, &run.EngineVersion, &run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.Stopped = stoppedInt == 1
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return &RunsList{
		Runs:       runs,
		TotalCount: totalCount,
		Page:       query.Page,
		PerPage:    query.PerPage,
		TotalPages: totalPages,
	}, nil
}

// GetRunMatches retrieves a run's matches in seed order with pagination,
// annotating each with the gap to the previous match.
func (s *SQLiteDB) GetRunMatches(runID string, page, perPage int) (*MatchesPage, error) {
	var totalCount int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM matches WHERE run_id = ?", runID).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to get match count: %w", err)
	}

	if perPage <= 0 {
		perPage = 100
	}
	if page <= 0 {
		page = 1
	}

	totalPages := (totalCount + perPage - 1) / perPage
	offset := (page - 1) * perPage

	query := `SELECT id, run_id, seed
		FROM matches WHERE run_id = ?
		ORDER BY seed
		LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, runID, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.RunID, &m.Seed); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}

	withDelta := make([]MatchWithDelta, len(matches))
	for i, m := range matches {
		withDelta[i] = MatchWithDelta{Match: m}

		if i > 0 {
			delta := int64(m.Seed) - int64(matches[i-1].Seed)
			withDelta[i].DeltaSeed = &delta
		} else if page > 1 {
			// First match on a later page: fetch the previous page's last seed.
			var prevSeed int32
			err := s.db.QueryRow(
				"SELECT seed FROM matches WHERE run_id = ? AND seed < ? ORDER BY seed DESC LIMIT 1",
				runID, m.Seed,
			).Scan(&prevSeed)
			if err == nil {
				delta := int64(m.Seed) - int64(prevSeed)
				withDelta[i].DeltaSeed = &delta
			}
		}
	}

	return &MatchesPage{
		Matches:    withDelta,
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
