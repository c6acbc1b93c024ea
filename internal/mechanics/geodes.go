package mechanics

import (
	"github.com/mgyenik/rasmodius/internal/rng"
	"github.com/mgyenik/rasmodius/internal/version"
)

// GeodeType identifies a crackable geode variant.
type GeodeType int32

const (
	GeodeRegular GeodeType = iota
	GeodeFrozen
	GeodeMagma
	GeodeOmni
	GeodeArtifactTrove
	GeodeGoldenCoconut
)

// ParseGeodeType maps a user-facing geode name to a type. Unknown names
// resolve to the regular geode (explicit fallback, not an error).
func ParseGeodeType(s string) GeodeType {
	switch s {
	case "frozen", "frozen_geode":
		return GeodeFrozen
	case "magma", "magma_geode":
		return GeodeMagma
	case "omni", "omni_geode":
		return GeodeOmni
	case "trove", "artifact_trove":
		return GeodeArtifactTrove
	case "coconut", "golden_coconut":
		return GeodeGoldenCoconut
	default:
		return GeodeRegular
	}
}

// Per-type mineral lists; item ids are the game's object ids.
var (
	geodeItems = []int32{
		538, 542, 548, 549, 552, 555, 556, 557, 558, 566, 568, 569, 571, 574, 576, 121,
	}
	frozenItems = []int32{
		541, 544, 545, 546, 550, 551, 559, 560, 561, 564, 567, 572, 573, 577, 123,
	}
	magmaItems = []int32{
		539, 540, 543, 547, 553, 554, 562, 563, 565, 570, 575, 578, 122,
	}
	omniItems = []int32{
		538, 542, 548, 549, 552, 555, 556, 557, 558, 566, 568, 569, 571, 574, 576, 541, 544, 545, 546,
		550, 551, 559, 560, 561, 564, 567, 572, 573, 577, 539, 540, 543, 547, 553, 554, 562, 563, 565,
		570, 575, 578, 121, 122, 123,
	}
	troveItems = []int32{
		100, 101, 103, 104, 105, 106, 108, 109, 110, 111, 112, 113, 114, 115, 116, 117, 118, 119, 120,
		121, 122, 123, 124, 125, 166, 373, 797,
	}
)

// GeodeResult is the item produced by cracking one geode.
type GeodeResult struct {
	ItemID   int32 `json:"item_id"`
	Quantity int32 `json:"quantity"`
}

// NextGeodeItem predicts the contents of the (geodesCracked+1)-th geode.
//
// The generator is seeded from the crack counter, so the prediction depends
// on how many geodes were opened before this one, not on the day.
func NextGeodeItem(seed, geodesCracked int32, gt GeodeType, deepestMineLevel int32, v version.GameVersion) GeodeResult {
	r := rng.NewCSRandom(geodesCracked + seed/2)

	// 1.4+ burns two randomized-length warmup bursts.
	if v.HasGeodeWarmup() {
		n1 := r.NextRange(1, 10)
		for i := int32(0); i < n1; i++ {
			r.Sample()
		}
		n2 := r.NextRange(1, 10)
		for i := int32(0); i < n2; i++ {
			r.Sample()
		}
	}

	// 1.5+ rolls once for Qi beans before anything else.
	if v.HasQiBeanCheck() {
		r.Sample()
	}

	if gt == GeodeGoldenCoconut {
		return coconutResult(r)
	}
	if gt == GeodeArtifactTrove {
		return GeodeResult{ItemID: troveItems[r.NextMax(int32(len(troveItems)))], Quantity: 1}
	}

	// 1.6 flipped which side of the roll picks the mineral branch.
	var getMineral bool
	if v.HasReversedGeodeCheck() {
		getMineral = r.Sample() < 0.5
	} else {
		getMineral = r.Sample() >= 0.5
	}

	if !getMineral {
		stack := initialStack(r)

		if r.Sample() < 0.5 {
			switch r.NextMax(4) {
			case 0, 1:
				return GeodeResult{ItemID: 390, Quantity: stack} // stone
			case 2:
				return GeodeResult{ItemID: 330, Quantity: 1} // clay
			default:
				crystal := int32(86) // earth crystal
				switch gt {
				case GeodeFrozen:
					crystal = 84 // frozen tear
				case GeodeMagma:
					crystal = 82 // fire quartz
				case GeodeOmni:
					crystal = 82 + r.NextMax(3)*2
				}
				return GeodeResult{ItemID: crystal, Quantity: 1}
			}
		}
		return oreResult(r, gt, deepestMineLevel, stack)
	}

	var set []int32
	switch gt {
	case GeodeFrozen:
		set = frozenItems
	case GeodeMagma:
		set = magmaItems
	case GeodeOmni:
		set = omniItems
	default:
		set = geodeItems
	}

	if v.HasReversedGeodeCheck() {
		// 1.6 checks the prismatic shard before picking a mineral, for every
		// geode type.
		if r.Sample() < 0.008 && geodesCracked > 15 {
			return GeodeResult{ItemID: 74, Quantity: 1} // prismatic shard
		}
		return GeodeResult{ItemID: set[r.NextMax(int32(len(set)))], Quantity: 1}
	}

	item := set[r.NextMax(int32(len(set)))]
	// Pre-1.6 the shard override applies to omni geodes only, after the pick.
	if gt == GeodeOmni && r.Sample() < 0.008 && geodesCracked > 15 {
		return GeodeResult{ItemID: 74, Quantity: 1}
	}
	return GeodeResult{ItemID: item, Quantity: 1}
}

// initialStack rolls the resource stack size: odd 1-5, overridden to 10 at
// 10% and 20 at 1%.
func initialStack(r *rng.CSRandom) int32 {
	stack := r.NextMax(3)*2 + 1
	if r.Sample() < 0.1 {
		stack = 10
	}
	if r.Sample() < 0.01 {
		stack = 20
	}
	return stack
}

func oreResult(r *rng.CSRandom, gt GeodeType, deepestMineLevel, stack int32) GeodeResult {
	switch gt {
	case GeodeRegular:
		switch r.NextMax(3) {
		case 0:
			return GeodeResult{ItemID: 378, Quantity: stack} // copper
		case 1:
			if deepestMineLevel > 25 {
				return GeodeResult{ItemID: 380, Quantity: stack} // iron
			}
			return GeodeResult{ItemID: 378, Quantity: stack}
		default:
			return GeodeResult{ItemID: 382, Quantity: stack} // coal
		}
	case GeodeFrozen:
		switch r.NextMax(4) {
		case 0:
			return GeodeResult{ItemID: 378, Quantity: stack}
		case 1:
			return GeodeResult{ItemID: 380, Quantity: stack}
		case 2:
			return GeodeResult{ItemID: 382, Quantity: stack}
		default:
			if deepestMineLevel > 75 {
				return GeodeResult{ItemID: 384, Quantity: stack} // gold
			}
			return GeodeResult{ItemID: 380, Quantity: stack}
		}
	case GeodeMagma, GeodeOmni:
		switch r.NextMax(5) {
		case 0:
			return GeodeResult{ItemID: 378, Quantity: stack}
		case 1:
			return GeodeResult{ItemID: 380, Quantity: stack}
		case 2:
			return GeodeResult{ItemID: 382, Quantity: stack}
		case 3:
			return GeodeResult{ItemID: 384, Quantity: stack}
		default:
			return GeodeResult{ItemID: 386, Quantity: stack/2 + 1} // iridium
		}
	default:
		return GeodeResult{ItemID: 390, Quantity: stack}
	}
}

// coconutResult handles the golden coconut: 5% hat chance, else one of seven
// fixed rewards. ItemID -1 marks the hat (not an object id).
func coconutResult(r *rng.CSRandom) GeodeResult {
	if r.Sample() < 0.05 {
		return GeodeResult{ItemID: -1, Quantity: 1}
	}
	switch r.NextMax(7) {
	case 0:
		return GeodeResult{ItemID: 69, Quantity: 1} // banana sapling
	case 1:
		return GeodeResult{ItemID: 835, Quantity: 1} // mango sapling
	case 2:
		return GeodeResult{ItemID: 833, Quantity: 5} // pineapple seeds
	case 3:
		return GeodeResult{ItemID: 831, Quantity: 5} // taro root
	case 4:
		return GeodeResult{ItemID: 820, Quantity: 1} // fossilized skull
	case 5:
		return GeodeResult{ItemID: 292, Quantity: 1} // mahogany seed
	default:
		return GeodeResult{ItemID: 386, Quantity: 5} // iridium ore
	}
}

// PredictGeodeSequence predicts count consecutive geodes starting at the
// given crack counter.
func PredictGeodeSequence(seed, startGeode, count int32, gt GeodeType, deepestMineLevel int32, v version.GameVersion) []GeodeResult {
	out := make([]GeodeResult, 0, count)
	for i := int32(0); i < count; i++ {
		out = append(out, NextGeodeItem(seed, startGeode+i, gt, deepestMineLevel, v))
	}
	return out
}
