package mechanics

import (
	"github.com/mgyenik/rasmodius/internal/rng"
	"github.com/mgyenik/rasmodius/internal/version"
)

// FloorConditions summarizes one mine floor's rolled state.
type FloorConditions struct {
	Floor      int32 `json:"floor"`
	IsMonster  bool  `json:"is_monster_floor"`
	IsDark     bool  `json:"is_dark_floor"`
	IsMushroom bool  `json:"is_mushroom_floor"`
}

// IsMonsterFloor reports whether a floor spawns as infested. Structural
// guards run before any RNG: elevator floors (every 5th), the first five and
// last nine offsets of each 40-floor section, and offset 19 are never
// infested.
func IsMonsterFloor(seed, daysPlayed, level int32, v version.GameVersion) bool {
	if level%5 == 0 {
		return false
	}
	if level%40 < 5 || level%40 > 30 || level%40 == 19 {
		return false
	}

	var r *rng.CSRandomLite
	if v.UsesMineLevelMultiplier() {
		r = rng.NewCSRandomLite(seed/2 + daysPlayed + level*100)
	} else {
		r = rng.NewCSRandomLite(seed/2 + daysPlayed + level)
	}
	return r.Sample() < 0.044
}

// IsUnusualDarkFloor reports whether a floor rolls unusual darkness. Same
// behavior on every version.
func IsUnusualDarkFloor(seed, daysPlayed, level int32) bool {
	if level%10 == 0 {
		return false
	}
	if level%40 > 30 {
		return false
	}

	r := rng.NewCSRandomLite(daysPlayed*level + 4*level + seed/2)

	if r.Sample() < 0.3 && level > 2 {
		return true
	}
	if r.Sample() < 0.15 && level > 5 && level != 120 {
		return true
	}
	return false
}

// IsMushroomFloor reports whether a floor spawns as a mushroom level. Only
// floors 81+ qualify; elevator floors and infested floors never do.
func IsMushroomFloor(seed, daysPlayed, floor int32, v version.GameVersion) bool {
	if floor%5 == 0 {
		return false
	}
	if IsMonsterFloor(seed, daysPlayed, floor, v) {
		return false
	}

	var r *rng.CSRandomLite
	if v.UsesMineLevelMultiplier() {
		r = rng.NewCSRandomLite(daysPlayed*floor + 4*floor + seed/2)
	} else {
		r = rng.NewCSRandomLite(seed/2 + floor + daysPlayed)
	}

	// The level loader burns draws before the mushroom roll; one of them is
	// conditional on the darkness roll.
	if r.Sample() < 0.3 && floor > 2 {
		r.Sample()
	}
	r.Sample()

	return r.Sample() < 0.035 && floor > 80
}

// GetFloorConditions evaluates all three predicates for one floor.
func GetFloorConditions(seed, daysPlayed, level int32, v version.GameVersion) FloorConditions {
	monster := IsMonsterFloor(seed, daysPlayed, level, v)
	mushroom := false
	if !monster {
		mushroom = IsMushroomFloor(seed, daysPlayed, level, v)
	}
	return FloorConditions{
		Floor:      level,
		IsMonster:  monster,
		IsDark:     IsUnusualDarkFloor(seed, daysPlayed, level),
		IsMushroom: mushroom,
	}
}

// FindMonsterFloors lists infested floors in [startFloor, endFloor].
func FindMonsterFloors(seed, daysPlayed, startFloor, endFloor int32, v version.GameVersion) []int32 {
	var out []int32
	for f := startFloor; f <= endFloor; f++ {
		if IsMonsterFloor(seed, daysPlayed, f, v) {
			out = append(out, f)
		}
	}
	return out
}

// FindDarkFloors lists unusually dark floors in [startFloor, endFloor].
func FindDarkFloors(seed, daysPlayed, startFloor, endFloor int32) []int32 {
	var out []int32
	for f := startFloor; f <= endFloor; f++ {
		if IsUnusualDarkFloor(seed, daysPlayed, f) {
			out = append(out, f)
		}
	}
	return out
}

// FindMushroomFloors lists mushroom floors in [startFloor, endFloor].
func FindMushroomFloors(seed, daysPlayed, startFloor, endFloor int32, v version.GameVersion) []int32 {
	var out []int32
	for f := startFloor; f <= endFloor; f++ {
		if IsMushroomFloor(seed, daysPlayed, f, v) {
			out = append(out, f)
		}
	}
	return out
}

// ChestItemType classifies a remixed-chest reward.
type ChestItemType int32

const (
	ChestBoots ChestItemType = iota
	ChestMeleeWeapon
	ChestRing
)

func (t ChestItemType) String() string {
	switch t {
	case ChestBoots:
		return "boots"
	case ChestRing:
		return "ring"
	default:
		return "melee_weapon"
	}
}

// ChestItem is a remixed mine chest reward.
type ChestItem struct {
	Type   ChestItemType `json:"type"`
	ItemID int32         `json:"item_id"`
}

// Remixed chest choice tables for the seven chest floors.
var chestTables = map[int32][]ChestItem{
	10: {
		{ChestBoots, 506}, {ChestBoots, 507},
		{ChestMeleeWeapon, 12}, {ChestMeleeWeapon, 17}, {ChestMeleeWeapon, 22}, {ChestMeleeWeapon, 31},
	},
	20: {
		{ChestMeleeWeapon, 11}, {ChestMeleeWeapon, 24}, {ChestMeleeWeapon, 20},
		{ChestRing, 517}, {ChestRing, 519},
	},
	50: {
		{ChestBoots, 509}, {ChestBoots, 510}, {ChestBoots, 508},
		{ChestMeleeWeapon, 1}, {ChestMeleeWeapon, 43},
	},
	60: {
		{ChestMeleeWeapon, 21}, {ChestMeleeWeapon, 44}, {ChestMeleeWeapon, 6},
		{ChestMeleeWeapon, 18}, {ChestMeleeWeapon, 27},
	},
	80: {
		{ChestBoots, 512}, {ChestBoots, 511},
		{ChestMeleeWeapon, 10}, {ChestMeleeWeapon, 7}, {ChestMeleeWeapon, 46}, {ChestMeleeWeapon, 19},
	},
	90: {
		{ChestMeleeWeapon, 8}, {ChestMeleeWeapon, 52}, {ChestMeleeWeapon, 45},
		{ChestMeleeWeapon, 5}, {ChestMeleeWeapon, 60},
	},
	110: {
		{ChestBoots, 514}, {ChestBoots, 878},
		{ChestMeleeWeapon, 50}, {ChestMeleeWeapon, 28},
	},
}

// RemixedMinesChest predicts the remixed chest on a chest floor (10, 20, 50,
// 60, 80, 90, 110). ok is false for floors without a chest.
func RemixedMinesChest(seed, floor int32) (ChestItem, bool) {
	table, exists := chestTables[floor]
	if !exists {
		return ChestItem{}, false
	}
	r := rng.NewCSRandom(seed*512 + floor)
	return table[r.NextRange(0, int32(len(table)))], true
}

// CheckMinesSpot simulates tapping a rock with a pre-combined seed: a
// sequence of independent low-probability drop rolls whose ore types depend
// on floor depth. ladder, geologist and excavator shift the draw sequence
// the same way the tool/profession checks do in-game.
func CheckMinesSpot(seed int32, ladder, geologist, excavator bool, floor int32) []int32 {
	var objects []int32
	r := rng.NewCSRandomLite(seed)

	r.Sample()
	if !ladder {
		r.Sample()
	}
	if geologist {
		r.Sample()
	}

	excavatorBonus := 0.0
	if excavator {
		excavatorBonus = 1.0
	}

	if r.Sample() < 0.022*(1.0+excavatorBonus) {
		if geologist && r.Sample() < 0.5 {
			objects = append(objects, 535)
		}
		objects = append(objects, 535) // geode
	}

	if r.Sample() < 0.005*(1.0+excavatorBonus) {
		if geologist && r.Sample() < 0.5 {
			objects = append(objects, 749)
		}
		objects = append(objects, 749) // frozen geode
	}

	if r.Sample() < 0.05 {
		r.Sample()
		r.Sample()

		if r.Sample() < 0.25 {
			objects = append(objects, 382) // coal
		}

		switch {
		case floor < 40:
			if floor >= 20 && r.Sample() < 0.1 {
				objects = append(objects, 380)
			} else {
				objects = append(objects, 378)
			}
		case floor < 80:
			if floor >= 60 && r.Sample() < 0.1 {
				objects = append(objects, 384)
			} else if r.Sample() >= 0.75 {
				objects = append(objects, 378)
			} else {
				objects = append(objects, 380)
			}
		case floor < 120:
			if r.Sample() >= 0.75 {
				if r.Sample() >= 0.75 {
					objects = append(objects, 378)
				} else {
					objects = append(objects, 380)
				}
			} else {
				objects = append(objects, 384)
			}
		default:
			if r.Sample() < 0.01+float64(floor-120)/2000.0 {
				objects = append(objects, 386)
			} else if r.Sample() >= 0.75 {
				if r.Sample() >= 0.75 {
					objects = append(objects, 378)
				} else {
					objects = append(objects, 380)
				}
			} else {
				objects = append(objects, 384)
			}
		}
	}

	return objects
}

// CheckMinesSpotAt combines world seed, floor and tile coordinates into the
// rock-tap seed and runs the drop simulation.
func CheckMinesSpotAt(seed, floor, x, y int32, ladder, geologist, excavator bool) []int32 {
	return CheckMinesSpot(x*1000+y+floor+seed/2, ladder, geologist, excavator, floor)
}
