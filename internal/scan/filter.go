// Package scan evaluates filter trees against save seeds and walks seed
// ranges looking for matches.
package scan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Node logic operators.
const (
	LogicAnd       = "and"
	LogicOr        = "or"
	LogicCondition = "condition"
)

// Condition types.
const (
	CondDailyLuck  = "daily_luck"
	CondCartItem   = "cart_item"
	CondNightEvent = "night_event"
	CondGeode      = "geode"
	CondDishOfDay  = "dish_of_day"
	CondWeather    = "weather"
	CondMineFloor  = "mine_floor"
)

// Node is one node of a filter tree. "and" and "or" nodes carry child
// Conditions; "condition" nodes carry a Type plus that type's fields.
type Node struct {
	Logic      string `json:"logic"`
	Conditions []Node `json:"conditions,omitempty"`
	Type       string `json:"type,omitempty"`

	// Day window, shared by most condition types.
	DayStart int32 `json:"day_start,omitempty"`
	DayEnd   int32 `json:"day_end,omitempty"`

	// daily_luck
	MinLuck float64 `json:"min_luck,omitempty"`
	MaxLuck float64 `json:"max_luck,omitempty"`

	// cart_item
	ItemID   int32  `json:"item_id,omitempty"`
	MaxPrice *int32 `json:"max_price,omitempty"`

	// night_event
	EventType string `json:"event_type,omitempty"`

	// geode
	GeodeNumber int32   `json:"geode_number,omitempty"`
	GeodeType   string  `json:"geode_type,omitempty"`
	TargetItems []int32 `json:"target_items,omitempty"`

	// dish_of_day
	DishID int32 `json:"dish_id,omitempty"`

	// weather
	WeatherType string `json:"weather_type,omitempty"`

	// mine_floor
	FloorStart  int32 `json:"floor_start,omitempty"`
	FloorEnd    int32 `json:"floor_end,omitempty"`
	NoMonsters  bool  `json:"no_monsters,omitempty"`
	NoDark      bool  `json:"no_dark,omitempty"`
	HasMushroom bool  `json:"has_mushroom,omitempty"`
}

// ParseFilter decodes and validates a filter tree. Structural problems are
// reported here so evaluation never has to deal with a malformed tree.
func ParseFilter(data []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	if err := validateNode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

func validateNode(n *Node) error {
	switch strings.ToLower(n.Logic) {
	case LogicAnd, LogicOr:
		for i := range n.Conditions {
			if err := validateNode(&n.Conditions[i]); err != nil {
				return err
			}
		}
		return nil
	case LogicCondition:
		return validateCondition(n)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogic, n.Logic)
	}
}

func validateCondition(n *Node) error {
	switch strings.ToLower(n.Type) {
	case CondDailyLuck, CondCartItem, CondNightEvent, CondDishOfDay, CondWeather:
		if n.DayEnd < n.DayStart {
			return fmt.Errorf("%w: day window %d..%d", ErrInvalidFilter, n.DayStart, n.DayEnd)
		}
	case CondGeode:
		if n.GeodeNumber < 1 {
			return fmt.Errorf("%w: geode number %d", ErrInvalidFilter, n.GeodeNumber)
		}
	case CondMineFloor:
		if n.DayEnd < n.DayStart {
			return fmt.Errorf("%w: day window %d..%d", ErrInvalidFilter, n.DayStart, n.DayEnd)
		}
		if n.FloorEnd < n.FloorStart {
			return fmt.Errorf("%w: floor window %d..%d", ErrInvalidFilter, n.FloorStart, n.FloorEnd)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCondition, n.Type)
	}
	return nil
}
