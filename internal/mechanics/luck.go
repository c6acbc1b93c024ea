package mechanics

import "github.com/mgyenik/rasmodius/internal/rng"

// Dishes the saloon never serves: beer, salad, bread, spaghetti, pizza,
// coffee and tom kha soup all have dedicated menu slots.
var excludedDishes = [...]int32{346, 196, 216, 224, 206, 395, 217}

// Dish is the saloon's dish of the day.
type Dish struct {
	ID       int32 `json:"id"`
	Quantity int32 `json:"quantity"`
}

// dailySeed is the shared seed formula for the day's generator. The game
// builds this generator before incrementing daysPlayed, hence the -1.
func dailySeed(seed, daysPlayed, steps int32) int32 {
	return seed/100 + (daysPlayed-1)*10 + 1 + steps
}

// DishOfTheDay returns the saloon dish for a day. The same draws advance the
// day generator ahead of the luck roll, so the two mechanics share a seed.
func DishOfTheDay(seed, daysPlayed, steps int32) Dish {
	r := rng.NewCSRandomLite(dailySeed(seed, daysPlayed, steps))
	return dishOfTheDay(r, daysPlayed-1)
}

// dishOfTheDay consumes the dish draws from an already-seeded generator.
// localDays is daysPlayed-1 (the pre-increment value the game seeds with).
func dishOfTheDay(r *rng.CSRandomLite, localDays int32) Dish {
	dayOfMonth := int32(0)
	if localDays > 0 {
		dayOfMonth = ((localDays - 1) % 28) + 1
	}

	// One burnt draw per elapsed day of the month.
	for i := int32(0); i < dayOfMonth; i++ {
		r.Sample()
	}

	dish := r.NextRange(194, 240)
	for isExcludedDish(dish) {
		dish = r.NextRange(194, 240)
	}

	// Quantity 1-3, widened to 1-13 on an 8% roll.
	bonus := int32(0)
	if r.Sample() < 0.08 {
		bonus = 10
	}
	qty := r.NextRange(1, 4+bonus)

	// The item constructor consumes one more draw.
	r.Sample()

	return Dish{ID: dish, Quantity: qty}
}

func isExcludedDish(id int32) bool {
	for _, d := range excludedDishes {
		if d == id {
			return true
		}
	}
	return false
}

// DailyLuck returns the day's luck in [-0.1, 0.10].
//
// steps is the step-count seed offset (usually 0); hasFriends adds two
// friendship draws that shift everything after them.
func DailyLuck(seed, daysPlayed, steps int32, hasFriends bool) float64 {
	r := rng.NewCSRandomLite(dailySeed(seed, daysPlayed, steps))

	// The dish draws always run first on this generator.
	dishOfTheDay(r, daysPlayed-1)

	if hasFriends {
		r.Sample() // friendship
		r.Sample() // friendship mail
	}

	// Rarecrow society check.
	r.Sample()

	luck := float64(r.NextRange(-100, 101)) / 1000.0
	if luck > 0.10 {
		luck = 0.10
	}
	return luck
}
