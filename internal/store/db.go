// Package store persists search runs and their matching seeds.
package store

import (
	"time"
)

// DB is the persistence interface for search runs.
type DB interface {
	Close() error
	Migrate() error
	SaveRun(run *Run) error
	UpdateRun(run *Run) error
	SaveMatches(runID string, seeds []int32) error
	GetRun(id string) (*Run, error)
	ListRuns(query RunsQuery) (*RunsList, error)
	GetRunMatches(runID string, page, perPage int) (*MatchesPage, error)
}

// RunsQuery holds query parameters for listing runs.
type RunsQuery struct {
	Version string `json:"version,omitempty"`
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
}

// RunsList is a paginated runs response.
type RunsList struct {
	Runs       []Run `json:"runs"`
	TotalCount int   `json:"totalCount"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalPages int   `json:"totalPages"`
}

// MatchesPage is a paginated matches response.
type MatchesPage struct {
	Matches    []MatchWithDelta `json:"matches"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalPages int              `json:"totalPages"`
}

// Run is one recorded seed search.
type Run struct {
	ID             string    `json:"id"`
	Version        string    `json:"version"`
	SeedStart      int32     `json:"seed_start"`
	SeedEnd        int32     `json:"seed_end"`
	FilterJSON     string    `json:"filter_json"`
	MaxResults     int       `json:"max_results"`
	Stopped        bool      `json:"stopped"`
	MatchCount     int       `json:"match_count"`
	TotalEvaluated uint64    `json:"total_evaluated"`
	LastSeed       int32     `json:"last_seed"`
	EngineVersion  string    `json:"engine_version"`
	CreatedAt      time.Time `json:"created_at"`
}

// Match is one seed that satisfied a run's filter.
type Match struct {
	ID    int64  `json:"id"`
	RunID string `json:"run_id"`
	Seed  int32  `json:"seed"`
}

// MatchWithDelta is a match annotated with the gap to the previous match.
type MatchWithDelta struct {
	Match
	DeltaSeed *int64 `json:"delta_seed,omitempty"`
}
