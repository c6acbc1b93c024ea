package rng

// CSRandomLite is the fast approximate variant of CSRandom. It keeps the
// same seeding constants and the same sampling interface, but runs a single
// subtractive mixing pass at construction instead of four and applies a
// single negative-value correction where the exact engine loops. Output is
// uniform and deterministic, within a small tolerance of the exact engine's
// distribution, but not bit-identical to it.
//
// Constructing a CSRandom costs four full passes over the 56-slot buffer per
// mechanic call; in seed scans over tens of millions of seeds that cost
// dominates, which is what this variant exists to cut. Mechanics whose
// output must match the game exactly keep CSRandom.
type CSRandomLite struct {
	seedArray [56]int32
	inext     int
	inextp    int
}

// NewCSRandomLite seeds the lite engine. Same magnitude handling and
// stride-21 recurrence as CSRandom; one mixing pass.
func NewCSRandomLite(seed int32) *CSRandomLite {
	r := &CSRandomLite{}

	sub := seed
	if seed == MinInt {
		sub = MaxInt
	} else if sub < 0 {
		sub = -sub
	}

	mj := mseed - sub
	r.seedArray[55] = mj

	mk := int32(1)
	for i := 1; i < 55; i++ {
		ii := (21 * i) % 55
		r.seedArray[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += MaxInt
		}
		mj = r.seedArray[ii]
	}

	for i := 1; i < 56; i++ {
		idx := 1 + (i+30)%55
		r.seedArray[i] -= r.seedArray[idx]
		if r.seedArray[i] < 0 {
			r.seedArray[i] += MaxInt
		}
	}

	r.inext = 0
	r.inextp = 21
	return r
}

func (r *CSRandomLite) sampleRaw() int32 {
	if r.inext+1 >= 56 {
		r.inext = 1
	} else {
		r.inext++
	}
	if r.inextp+1 >= 56 {
		r.inextp = 1
	} else {
		r.inextp++
	}

	retVal := r.seedArray[r.inext] - r.seedArray[r.inextp]
	if retVal == MaxInt {
		retVal--
	}
	if retVal < 0 {
		retVal += MaxInt
	}

	r.seedArray[r.inext] = retVal
	return retVal
}

// Sample returns a float in [0, 1).
func (r *CSRandomLite) Sample() float64 {
	return float64(r.sampleRaw()) * (1.0 / float64(MaxInt))
}

// NextMax returns an integer in [0, max).
func (r *CSRandomLite) NextMax(max int32) int32 {
	return int32(r.Sample() * float64(max))
}

// NextRange returns an integer in [min, max). The lite engine's consumers
// never need spans wider than the modulus, but the long-range path is kept
// so both engines honor the same contract.
func (r *CSRandomLite) NextRange(min, max int32) int32 {
	span := int64(max) - int64(min)
	if span <= int64(MaxInt) {
		return int32(float64(span)*r.Sample()) + min
	}
	res := r.sampleRaw()
	if r.sampleRaw()%2 == 0 {
		res = -res
	}
	lr := (float64(res) + float64(MaxInt) - 1.0) / (2.0*float64(MaxInt) - 1.0)
	return int32(int64(float64(span)*lr) + int64(min))
}
