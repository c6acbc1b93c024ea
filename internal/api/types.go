package api

import (
	"github.com/mgyenik/rasmodius/internal/mechanics"
	"github.com/mgyenik/rasmodius/internal/scan"
	"github.com/mgyenik/rasmodius/internal/store"
)

// DayResponse is the /predict/day response.
type DayResponse struct {
	Seed          int32                   `json:"seed"`
	Day           int32                   `json:"day"`
	Version       string                  `json:"version"`
	Prediction    mechanics.DayPrediction `json:"prediction"`
	EngineVersion string                  `json:"engine_version"`
}

// CartResponse is the /predict/cart response.
type CartResponse struct {
	Seed          int32                `json:"seed"`
	Day           int32                `json:"day"`
	Version       string               `json:"version"`
	CartDay       bool                 `json:"cart_day"`
	Items         []mechanics.CartItem `json:"items,omitempty"`
	EngineVersion string               `json:"engine_version"`
}

// GeodesResponse is the /predict/geodes response.
type GeodesResponse struct {
	Seed          int32                   `json:"seed"`
	StartGeode    int32                   `json:"start_geode"`
	GeodeType     string                  `json:"geode_type"`
	Version       string                  `json:"version"`
	Results       []mechanics.GeodeResult `json:"results"`
	EngineVersion string                  `json:"engine_version"`
}

// FloorsResponse is the /predict/floors response.
type FloorsResponse struct {
	Seed          int32                       `json:"seed"`
	Day           int32                       `json:"day"`
	Version       string                      `json:"version"`
	Floors        []mechanics.FloorConditions `json:"floors"`
	EngineVersion string                      `json:"engine_version"`
}

// SearchResponse is the /search response. Matches are also persisted under
// the returned run ID.
type SearchResponse struct {
	RunID         string       `json:"run_id"`
	Matches       []int32      `json:"matches"`
	Summary       scan.Summary `json:"summary"`
	EngineVersion string       `json:"engine_version"`
}

// RunResponse wraps a stored run.
type RunResponse struct {
	Run           *store.Run `json:"run"`
	EngineVersion string     `json:"engine_version"`
}
