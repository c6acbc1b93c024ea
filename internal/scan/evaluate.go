package scan

import (
	"strings"

	"github.com/mgyenik/rasmodius/internal/mechanics"
	"github.com/mgyenik/rasmodius/internal/version"
)

// Evaluate walks a validated filter tree against one seed. AND and OR nodes
// short-circuit; conditions on day windows succeed on the first matching day.
func Evaluate(seed int32, n *Node, v version.GameVersion) bool {
	switch strings.ToLower(n.Logic) {
	case LogicAnd:
		for i := range n.Conditions {
			if !Evaluate(seed, &n.Conditions[i], v) {
				return false
			}
		}
		return true
	case LogicOr:
		for i := range n.Conditions {
			if Evaluate(seed, &n.Conditions[i], v) {
				return true
			}
		}
		return false
	default:
		return evaluateCondition(seed, n, v)
	}
}

func evaluateCondition(seed int32, n *Node, v version.GameVersion) bool {
	switch strings.ToLower(n.Type) {
	case CondDailyLuck:
		for day := n.DayStart; day <= n.DayEnd; day++ {
			luck := mechanics.DailyLuck(seed, day, 0, false)
			if luck >= n.MinLuck && luck <= n.MaxLuck {
				return true
			}
		}
		return false

	case CondCartItem:
		for day := n.DayStart; day <= n.DayEnd; day++ {
			if !mechanics.IsCartDay(day) {
				continue
			}
			if cartHasItem(seed, day, n.ItemID, n.MaxPrice, v) {
				return true
			}
		}
		return false

	case CondNightEvent:
		want := strings.ToLower(n.EventType)
		target, known := mechanics.ParseNightEvent(want)
		for day := n.DayStart; day <= n.DayEnd; day++ {
			event := mechanics.NightEventFor(seed, day, v)
			if event == mechanics.EventNone {
				continue
			}
			if (known && event == target) || want == "any" {
				return true
			}
		}
		return false

	case CondGeode:
		gt := mechanics.ParseGeodeType(n.GeodeType)
		result := mechanics.NextGeodeItem(seed, n.GeodeNumber, gt, 120, v)
		for _, id := range n.TargetItems {
			if id == result.ItemID {
				return true
			}
		}
		return false

	case CondDishOfDay:
		for day := n.DayStart; day <= n.DayEnd; day++ {
			if mechanics.DishOfTheDay(seed, day, 0).ID == n.DishID {
				return true
			}
		}
		return false

	case CondWeather:
		want := strings.ToLower(n.WeatherType)
		target := mechanics.ParseWeather(want)
		for day := n.DayStart; day <= n.DayEnd; day++ {
			w := mechanics.WeatherTomorrow(seed, day, 0, mechanics.WeatherSunny, false, v)
			if w == target || (want == "any" && w != mechanics.WeatherSunny) {
				return true
			}
		}
		return false

	case CondMineFloor:
		for day := n.DayStart; day <= n.DayEnd; day++ {
			if checkMineFloors(seed, day, n, v) {
				return true
			}
		}
		return false
	}

	// Unreachable for trees that went through ParseFilter.
	return false
}

func cartHasItem(seed, day, itemID int32, maxPrice *int32, v version.GameVersion) bool {
	for _, item := range mechanics.GetCartForDay(seed, day, v) {
		if item.ItemID != itemID {
			continue
		}
		if maxPrice == nil || item.Price <= *maxPrice {
			return true
		}
	}
	return false
}

func checkMineFloors(seed, day int32, n *Node, v version.GameVersion) bool {
	if n.NoMonsters {
		if len(mechanics.FindMonsterFloors(seed, day, n.FloorStart, n.FloorEnd, v)) > 0 {
			return false
		}
	}
	if n.NoDark {
		if len(mechanics.FindDarkFloors(seed, day, n.FloorStart, n.FloorEnd)) > 0 {
			return false
		}
	}
	if n.HasMushroom {
		// Mushroom floors only exist at depth 81 and beyond.
		mushStart := n.FloorStart
		if mushStart < 81 {
			mushStart = 81
		}
		if mushStart > n.FloorEnd {
			return false
		}
		if len(mechanics.FindMushroomFloors(seed, day, mushStart, n.FloorEnd, v)) == 0 {
			return false
		}
	}
	return true
}
