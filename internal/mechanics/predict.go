package mechanics

import "github.com/mgyenik/rasmodius/internal/version"

// DayPrediction bundles every day-scoped mechanic for one seed/day.
type DayPrediction struct {
	Luck       float64    `json:"luck"`
	Dish       Dish       `json:"dish"`
	Weather    string     `json:"weather"`
	NightEvent string     `json:"night_event"`
	Cart       []CartItem `json:"cart,omitempty"` // only on Fridays and Sundays
}

// PredictDay evaluates luck, dish, weather, night event and (on cart days)
// the traveling cart stock for a single seed and day.
func PredictDay(seed, day int32, v version.GameVersion) DayPrediction {
	p := DayPrediction{
		Luck:       DailyLuck(seed, day, 0, false),
		Dish:       DishOfTheDay(seed, day, 0),
		Weather:    WeatherTomorrow(seed, day, 0, WeatherSunny, false, v).String(),
		NightEvent: NightEventFor(seed, day, v).String(),
	}
	if IsCartDay(day) {
		p.Cart = GetCartForDay(seed, day, v)
	}
	return p
}
