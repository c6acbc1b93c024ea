package mechanics

import (
	"github.com/mgyenik/rasmodius/internal/rng"
	"github.com/mgyenik/rasmodius/internal/version"
)

// Weather codes match the game's TV weather channel values.
type Weather int32

const (
	WeatherSunny     Weather = 0
	WeatherRain      Weather = 1
	WeatherDebris    Weather = 2 // windy leaves
	WeatherLightning Weather = 3
	WeatherSnow      Weather = 5
	WeatherGreenRain Weather = 6
)

func (w Weather) String() string {
	switch w {
	case WeatherRain:
		return "rain"
	case WeatherDebris:
		return "debris"
	case WeatherLightning:
		return "lightning"
	case WeatherSnow:
		return "snow"
	case WeatherGreenRain:
		return "green_rain"
	default:
		return "sunny"
	}
}

// ParseWeather maps a user-facing weather name to a code. Unknown names
// resolve to sunny.
func ParseWeather(s string) Weather {
	switch s {
	case "rain", "rainy":
		return WeatherRain
	case "debris", "windy", "wind":
		return WeatherDebris
	case "lightning", "storm", "stormy":
		return WeatherLightning
	case "snow", "snowy":
		return WeatherSnow
	case "green_rain":
		return WeatherGreenRain
	default:
		return WeatherSunny
	}
}

// WeatherTomorrow predicts tomorrow's weather as rolled on the given day.
//
// The weather roll happens on the same per-day generator as the dish and
// luck rolls, so their draw counts are replayed here before the weather
// draws: two dish draws, one luck draw, one friends draw when applicable,
// one Ginger Island draw on 1.5+, and a randomized burst when today's
// weather is debris. weatherToday is today's weather code.
func WeatherTomorrow(seed, daysPlayed, steps int32, weatherToday Weather, hasFriends bool, v version.GameVersion) Weather {
	r := rng.NewCSRandom(dailySeed(seed, daysPlayed, steps))

	// Replay: dish selection + quantity, then the luck roll.
	r.NextMax(112)
	r.NextRange(1, 5)
	r.Sample()

	if hasFriends {
		r.Sample()
	}
	if v.HasGingerIsle() {
		r.Sample()
	}

	// A debris day burns 6 draws per iteration for a randomized count.
	if weatherToday == WeatherDebris {
		n := r.NextRange(16, 65)
		for i := int32(0); i < n; i++ {
			for j := 0; j < 6; j++ {
				r.Sample()
			}
		}
	}

	season := Season(daysPlayed)
	dayOfMonth := DayOfMonth(daysPlayed)

	var chanceToRain float64
	switch season {
	case SeasonSummer:
		chanceToRain = float64(dayOfMonth)*(3.0/1000.0) + 0.12
	case SeasonWinter:
		chanceToRain = 0.63
	default:
		chanceToRain = 0.183
	}

	if r.Sample() < chanceToRain {
		switch {
		case season == SeasonWinter:
			return WeatherSnow
		case season == SeasonSummer && r.Sample() < 0.85:
			return WeatherLightning
		case season != SeasonWinter && r.Sample() < 0.25 && dayOfMonth > 2 && dayOfMonth < 28:
			return WeatherLightning
		default:
			return WeatherRain
		}
	}

	// The first two days of a world are forced sunny.
	if daysPlayed <= 2 {
		return WeatherSunny
	}
	if season == SeasonSpring && r.Sample() < 0.2 {
		return WeatherDebris
	}
	if season == SeasonFall && r.Sample() < 0.6 {
		return WeatherDebris
	}
	return WeatherSunny
}

// FindWeatherDays returns every day in [startDay, endDay] whose forecast
// matches target, assuming a sunny prior day.
func FindWeatherDays(seed, startDay, endDay int32, target Weather, v version.GameVersion) []int32 {
	var days []int32
	for day := startDay; day <= endDay; day++ {
		if WeatherTomorrow(seed, day, 0, WeatherSunny, false, v) == target {
			days = append(days, day)
		}
	}
	return days
}
