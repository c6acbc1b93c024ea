// Package mechanics reproduces the game's per-day RNG decisions as pure
// functions of (seed, day, version, params). Each function constructs a
// fresh generator and consumes draws in the game's exact order — including
// draws whose results are discarded — because downstream mechanics in the
// original share one generator per day and depend on upstream draws having
// been consumed.
package mechanics

// Calendar arithmetic: 7-day weeks, 28-day months, 4 seasons per 112-day year.
// Day 1 is the first day of spring, year 1.

// Season indices in calendar order.
const (
	SeasonSpring = 0
	SeasonSummer = 1
	SeasonFall   = 2
	SeasonWinter = 3
)

// DayOfWeek returns 1..7 for a 1-based day index (day 1 is a Monday).
func DayOfWeek(day int32) int32 {
	return ((day - 1) % 7) + 1
}

// DayOfMonth returns 1..28.
func DayOfMonth(day int32) int32 {
	return ((day - 1) % 28) + 1
}

// Season returns the season index for a 1-based day.
func Season(day int32) int32 {
	return ((day - 1) / 28) % 4
}

// Year returns the 1-based year.
func Year(day int32) int32 {
	return 1 + (day-1)/112
}

// IsCartDay reports whether the traveling cart is present (Friday or Sunday).
func IsCartDay(day int32) bool {
	dow := DayOfWeek(day)
	return dow == 5 || dow == 7
}
