package mechanics

import (
	"testing"

	"github.com/mgyenik/rasmodius/internal/version"
)

func TestElevatorFloorsNeverInfested(t *testing.T) {
	for _, seed := range []int32{12345, 1, -99} {
		for floor := int32(5); floor <= 120; floor += 5 {
			if IsMonsterFloor(seed, 5, floor, version.V15) {
				t.Errorf("seed %d floor %d: elevator floor infested", seed, floor)
			}
		}
	}
}

func TestSectionEdgesNeverInfested(t *testing.T) {
	for _, sectionStart := range []int32{0, 40, 80} {
		for offset := int32(1); offset < 5; offset++ {
			if IsMonsterFloor(12345, 5, sectionStart+offset, version.V15) {
				t.Errorf("floor %d: section start infested", sectionStart+offset)
			}
		}
		if IsMonsterFloor(12345, 5, sectionStart+19, version.V15) {
			t.Errorf("floor %d: offset 19 infested", sectionStart+19)
		}
	}
}

func TestEvery10thFloorNeverDark(t *testing.T) {
	for _, seed := range []int32{12345, 42, -7} {
		for floor := int32(10); floor <= 120; floor += 10 {
			if IsUnusualDarkFloor(seed, 5, floor) {
				t.Errorf("seed %d floor %d: every-10th floor dark", seed, floor)
			}
		}
	}
}

func TestMushroomNeedsFloor81(t *testing.T) {
	for _, seed := range []int32{12345, 777} {
		for floor := int32(1); floor <= 80; floor++ {
			if IsMushroomFloor(seed, 5, floor, version.V15) {
				t.Errorf("seed %d floor %d: mushroom floor below 81", seed, floor)
			}
		}
	}
}

func TestMushroomExcludesMonster(t *testing.T) {
	for seed := int32(1); seed <= 200; seed++ {
		for day := int32(1); day <= 5; day++ {
			for floor := int32(81); floor <= 119; floor++ {
				c := GetFloorConditions(seed, day, floor, version.V16)
				if c.IsMonster && c.IsMushroom {
					t.Fatalf("seed %d day %d floor %d: both monster and mushroom", seed, day, floor)
				}
			}
		}
	}
}

func TestSeedFormulaDiverges13vs14(t *testing.T) {
	// 1.4 multiplies the level into the seed; some floor must differ.
	for floor := int32(6); floor < 30; floor++ {
		if IsMonsterFloor(12345, 10, floor, version.V13) != IsMonsterFloor(12345, 10, floor, version.V15) {
			return
		}
	}
	t.Error("1.3 and 1.5 monster checks never diverged on floors 6-29")
}

func TestRemixedChest(t *testing.T) {
	chestFloors := []int32{10, 20, 50, 60, 80, 90, 110}
	for _, floor := range chestFloors {
		item, ok := RemixedMinesChest(12345, floor)
		if !ok {
			t.Errorf("floor %d: no chest", floor)
			continue
		}
		found := false
		for _, candidate := range chestTables[floor] {
			if candidate == item {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("floor %d: chest item %+v not in the floor's table", floor, item)
		}
	}

	if _, ok := RemixedMinesChest(12345, 15); ok {
		t.Error("floor 15 should have no chest")
	}
}

func TestRemixedChestKnownItems(t *testing.T) {
	// Seed 12345 across all seven chest floors, cross-checked against the
	// legacy runtime.
	want := map[int32]ChestItem{
		10:  {ChestBoots, 507},
		20:  {ChestMeleeWeapon, 20},
		50:  {ChestBoots, 509},
		60:  {ChestMeleeWeapon, 6},
		80:  {ChestMeleeWeapon, 19},
		90:  {ChestMeleeWeapon, 8},
		110: {ChestMeleeWeapon, 50},
	}
	for floor, item := range want {
		got, ok := RemixedMinesChest(12345, floor)
		if !ok {
			t.Errorf("floor %d: no chest", floor)
			continue
		}
		if got != item {
			t.Errorf("floor %d: chest %+v, want %+v", floor, got, item)
		}
	}
}

func TestCheckMinesSpotDeterministic(t *testing.T) {
	a := CheckMinesSpotAt(12345, 45, 10, 12, false, true, false)
	b := CheckMinesSpotAt(12345, 45, 10, 12, false, true, false)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("index %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestCheckMinesSpotDropsAreKnown(t *testing.T) {
	known := map[int32]bool{535: true, 749: true, 382: true, 378: true, 380: true, 384: true, 386: true}
	for s := int32(0); s < 2000; s++ {
		for _, id := range CheckMinesSpot(s, false, true, true, 125) {
			if !known[id] {
				t.Fatalf("seed %d: unknown drop %d", s, id)
			}
		}
	}
}
