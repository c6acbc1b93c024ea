package scan

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mgyenik/rasmodius/internal/version"
)

// checkpointInterval is how many seeds are evaluated between cancellation
// checks and progress callbacks. Filter evaluation is pure computation, so
// checking per seed would dominate cheap filters.
const checkpointInterval = 4096

// defaultMaxResults caps a search that never sets its own limit.
const defaultMaxResults = 1000

// Request describes one seed-range search.
type Request struct {
	Filter     json.RawMessage `json:"filter"`
	SeedStart  int32           `json:"seed_start"`
	SeedEnd    int32           `json:"seed_end"`
	MaxResults int             `json:"max_results,omitempty"`
	Version    string          `json:"version"`
	TimeoutMs  int             `json:"timeout_ms,omitempty"`
}

// Summary holds aggregate statistics for a finished (or stopped) search.
type Summary struct {
	TotalEvaluated uint64 `json:"total_evaluated"`
	MatchesFound   int    `json:"matches_found"`
	LastSeed       int32  `json:"last_seed"`
	Stopped        bool   `json:"stopped,omitempty"`
}

// MatchFunc receives each matching seed in ascending order. Returning false
// stops the search.
type MatchFunc func(seed int32) bool

// ProgressFunc is called at checkpoints with the running totals. Returning
// true stops the search.
type ProgressFunc func(evaluated uint64, matches int, current int32) (stop bool)

// Scanner walks seed ranges evaluating a filter tree against each seed.
//
// The walk is deliberately single-threaded per search: matches must be
// delivered in ascending seed order and the first-N cutoff must be exact,
// which sharded workers cannot give without buffering whole shards. Callers
// that want parallelism run disjoint ranges as separate searches.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Search evaluates the request's filter against every seed in
// [SeedStart, SeedEnd], in ascending order. onMatch is invoked for each
// matching seed; onProgress, if non-nil, at checkpoints. The search stops
// early when the match limit is reached, onMatch returns false, onProgress
// requests a stop, or the context is done.
func (s *Scanner) Search(ctx context.Context, req Request, onMatch MatchFunc, onProgress ProgressFunc) (*Summary, error) {
	if req.SeedEnd < req.SeedStart {
		return nil, ErrInvalidRange
	}

	root, err := ParseFilter(req.Filter)
	if err != nil {
		return nil, err
	}

	v := version.Parse(req.Version)

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	if req.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	summary := &Summary{LastSeed: req.SeedStart}

	// int64 cursor so a range ending at MaxInt32 terminates.
	for cur := int64(req.SeedStart); cur <= int64(req.SeedEnd); cur++ {
		seed := int32(cur)

		if summary.TotalEvaluated%checkpointInterval == 0 {
			select {
			case <-ctx.Done():
				summary.Stopped = true
				return summary, nil
			default:
			}
			if onProgress != nil && summary.TotalEvaluated > 0 {
				if onProgress(summary.TotalEvaluated, summary.MatchesFound, seed) {
					summary.Stopped = true
					return summary, nil
				}
			}
		}

		summary.TotalEvaluated++
		summary.LastSeed = seed

		if !Evaluate(seed, root, v) {
			continue
		}

		summary.MatchesFound++
		if onMatch != nil && !onMatch(seed) {
			summary.Stopped = true
			return summary, nil
		}
		if summary.MatchesFound >= maxResults {
			return summary, nil
		}
	}

	return summary, nil
}
