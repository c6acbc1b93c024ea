package mechanics

import "testing"

func TestDailyLuckRange(t *testing.T) {
	for _, seed := range []int32{1, 100, 12345, 999999, 1073741823} {
		for day := int32(1); day <= 28; day++ {
			luck := DailyLuck(seed, day, 0, false)
			if luck < -0.1 || luck > 0.1 {
				t.Errorf("seed %d day %d: luck %v out of [-0.1, 0.1]", seed, day, luck)
			}
		}
	}
}

func TestDailyLuckDeterministic(t *testing.T) {
	a := DailyLuck(12345, 3, 0, false)
	b := DailyLuck(12345, 3, 0, false)
	if a != b {
		t.Errorf("repeated call diverged: %v != %v", a, b)
	}
}

func TestDailyLuckFriendsShiftDraws(t *testing.T) {
	// The two friendship draws displace the luck roll; values should differ
	// for at least some seeds.
	differs := false
	for seed := int32(1); seed <= 50 && !differs; seed++ {
		if DailyLuck(seed, 5, 0, false) != DailyLuck(seed, 5, 0, true) {
			differs = true
		}
	}
	if !differs {
		t.Error("friends flag never changed the luck value across 50 seeds")
	}
}

func TestDishOfTheDay(t *testing.T) {
	for day := int32(1); day <= 28; day++ {
		dish := DishOfTheDay(12345, day, 0)
		if dish.ID < 194 || dish.ID >= 240 {
			t.Errorf("day %d: dish id %d out of [194, 240)", day, dish.ID)
		}
		if isExcludedDish(dish.ID) {
			t.Errorf("day %d: excluded dish %d served", day, dish.ID)
		}
		if dish.Quantity < 1 || dish.Quantity >= 14 {
			t.Errorf("day %d: quantity %d out of [1, 14)", day, dish.Quantity)
		}
	}
}

func TestEndToEndDay1(t *testing.T) {
	// Fresh-save scenario: seed 12345, day 1.
	luck := DailyLuck(12345, 1, 0, false)
	if luck < -0.1 || luck > 0.1 {
		t.Errorf("luck %v out of range", luck)
	}
	dish := DishOfTheDay(12345, 1, 0)
	if dish.ID < 194 || dish.ID >= 240 || isExcludedDish(dish.ID) {
		t.Errorf("dish %d invalid", dish.ID)
	}
	if dish.Quantity < 1 || dish.Quantity >= 14 {
		t.Errorf("quantity %d invalid", dish.Quantity)
	}
}
