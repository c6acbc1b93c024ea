package scan

import (
	"context"
	"encoding/json"
	"testing"
)

const alwaysTrueFilter = `{
	"logic": "condition",
	"type": "daily_luck",
	"day_start": 1,
	"day_end": 1,
	"min_luck": -1,
	"max_luck": 1
}`

const neverTrueFilter = `{
	"logic": "condition",
	"type": "daily_luck",
	"day_start": 1,
	"day_end": 1,
	"min_luck": 0.5,
	"max_luck": 0.4
}`

func TestSearchAscendingOrder(t *testing.T) {
	s := NewScanner()
	req := Request{
		Filter:     json.RawMessage(alwaysTrueFilter),
		SeedStart:  100,
		SeedEnd:    200,
		MaxResults: 50,
		Version:    "1.6",
	}

	var matches []int32
	summary, err := s.Search(context.Background(), req, func(seed int32) bool {
		matches = append(matches, seed)
		return true
	}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(matches) != 50 {
		t.Fatalf("got %d matches, want 50", len(matches))
	}
	for i, seed := range matches {
		if seed != int32(100+i) {
			t.Fatalf("match %d = seed %d, want %d", i, seed, 100+i)
		}
	}
	if summary.MatchesFound != 50 {
		t.Errorf("summary.MatchesFound = %d, want 50", summary.MatchesFound)
	}
	if summary.TotalEvaluated != 50 {
		t.Errorf("summary.TotalEvaluated = %d, want 50", summary.TotalEvaluated)
	}
	if summary.Stopped {
		t.Error("limit cutoff should not mark the search stopped")
	}
}

func TestSearchNoMatches(t *testing.T) {
	s := NewScanner()
	req := Request{
		Filter:    json.RawMessage(neverTrueFilter),
		SeedStart: 0,
		SeedEnd:   999,
		Version:   "1.6",
	}

	summary, err := s.Search(context.Background(), req, func(int32) bool {
		t.Fatal("onMatch called for a filter that never matches")
		return false
	}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if summary.MatchesFound != 0 {
		t.Errorf("MatchesFound = %d, want 0", summary.MatchesFound)
	}
	if summary.TotalEvaluated != 1000 {
		t.Errorf("TotalEvaluated = %d, want 1000", summary.TotalEvaluated)
	}
	if summary.LastSeed != 999 {
		t.Errorf("LastSeed = %d, want 999", summary.LastSeed)
	}
}

func TestSearchOnMatchStops(t *testing.T) {
	s := NewScanner()
	req := Request{
		Filter:     json.RawMessage(alwaysTrueFilter),
		SeedStart:  0,
		SeedEnd:    100000,
		MaxResults: 100000,
		Version:    "1.6",
	}

	calls := 0
	summary, err := s.Search(context.Background(), req, func(int32) bool {
		calls++
		return calls < 3
	}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if calls != 3 {
		t.Errorf("onMatch called %d times, want 3", calls)
	}
	if !summary.Stopped {
		t.Error("callback stop not reflected in summary")
	}
}

func TestSearchContextCancel(t *testing.T) {
	s := NewScanner()
	req := Request{
		Filter:    json.RawMessage(neverTrueFilter),
		SeedStart: -2000000000,
		SeedEnd:   2000000000,
		Version:   "1.6",
	}

	ctx, cancel := context.WithCancel(context.Background())
	var progressed bool
	summary, err := s.Search(ctx, req, nil, func(evaluated uint64, matches int, current int32) bool {
		progressed = true
		cancel()
		return false
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !progressed {
		t.Fatal("progress callback never fired")
	}
	if !summary.Stopped {
		t.Error("cancellation not reflected in summary")
	}
	if summary.TotalEvaluated >= 4000000000 {
		t.Error("search ran the entire range despite cancellation")
	}
}

func TestSearchProgressStop(t *testing.T) {
	s := NewScanner()
	req := Request{
		Filter:     json.RawMessage(alwaysTrueFilter),
		SeedStart:  0,
		SeedEnd:    2000000000,
		MaxResults: 2000000000,
		Version:    "1.6",
	}

	// Stop via the progress callback once it has seen some matches.
	var lastMatches int
	summary, err := s.Search(context.Background(), req, nil, func(evaluated uint64, matches int, current int32) bool {
		lastMatches = matches
		return matches >= int(checkpointInterval)
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !summary.Stopped {
		t.Error("progress stop not reflected in summary")
	}
	if lastMatches == 0 {
		t.Error("progress callback never reported match counts")
	}
	if summary.TotalEvaluated > 4*checkpointInterval {
		t.Errorf("search kept going after the callback asked to stop: evaluated %d", summary.TotalEvaluated)
	}
	if lastMatches != summary.MatchesFound {
		t.Errorf("final callback saw %d matches, summary has %d", lastMatches, summary.MatchesFound)
	}
}

func TestSearchInvalidRange(t *testing.T) {
	s := NewScanner()
	req := Request{
		Filter:    json.RawMessage(alwaysTrueFilter),
		SeedStart: 10,
		SeedEnd:   5,
		Version:   "1.6",
	}
	if _, err := s.Search(context.Background(), req, nil, nil); err != ErrInvalidRange {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestSearchBadFilter(t *testing.T) {
	s := NewScanner()
	req := Request{
		Filter:    json.RawMessage(`{"logic": "nand"}`),
		SeedStart: 0,
		SeedEnd:   10,
		Version:   "1.6",
	}
	if _, err := s.Search(context.Background(), req, nil, nil); err == nil {
		t.Error("malformed filter accepted")
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	s := NewScanner()
	req := Request{
		Filter:    json.RawMessage(alwaysTrueFilter),
		SeedStart: 0,
		SeedEnd:   50000,
		Version:   "1.6",
	}
	summary, err := s.Search(context.Background(), req, nil, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if summary.MatchesFound != defaultMaxResults {
		t.Errorf("MatchesFound = %d, want default cap %d", summary.MatchesFound, defaultMaxResults)
	}
}
