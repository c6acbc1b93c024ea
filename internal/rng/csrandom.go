package rng

// Constants shared by both generator engines. These mirror the legacy .NET
// subtractive generator that the game links against; every mechanic's output
// is defined in terms of this generator's exact sample sequence.
const (
	MaxInt int32 = 0x7FFFFFFF
	MinInt int32 = -2147483648
	mseed  int32 = 0x09A4EC86 // 161803398
)

// Source is the sampling contract both engines satisfy. Mechanics that don't
// care which engine they draw from accept a Source.
type Source interface {
	// Sample returns a float in [0, 1).
	Sample() float64
	// NextMax returns an integer in [0, max).
	NextMax(max int32) int32
	// NextRange returns an integer in [min, max).
	NextRange(min, max int32) int32
}

// CSRandom is a full port of the legacy subtractive generator: a 56-slot
// circular feedback buffer advanced by two wrapping cursors. Every sample
// writes back into the buffer, so call order is part of the state.
//
// Use this engine wherever output must match the game bit-for-bit (cart
// pricing, geode item identity); CSRandomLite is cheaper to construct for
// bulk scans.
type CSRandom struct {
	seedArray [56]int32
	inext     int
	inextp    int
}

// NewCSRandom constructs the generator exactly as the legacy runtime does:
// stride-21 initialization followed by four passes of subtractive mixing,
// all under signed 32-bit wraparound.
func NewCSRandom(seed int32) *CSRandom {
	r := &CSRandom{}

	// abs(MinInt) overflows in sign-magnitude, so the runtime special-cases it.
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

	for k := 0; k < 4; k++ {
		for i := 1; i < 56; i++ {
			idx := 1 + (i+30)%55
			r.seedArray[i] -= r.seedArray[idx]
			for r.seedArray[i] < 0 {
				r.seedArray[i] += MaxInt
			}
		}
	}

	r.inext = 0
	r.inextp = 21
	return r
}

// sampleRaw advances both cursors and returns a 31-bit non-negative integer,
// writing the new value back into the buffer.
func (r *CSRandom) sampleRaw() int32 {
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

// sampleLR combines two raw draws (value + derived sign) so ranged sampling
// wider than the 31-bit modulus stays unbiased.
func (r *CSRandom) sampleLR() float64 {
	res := r.sampleRaw()
	if r.sampleRaw()%2 == 0 {
		res = -res
	}
	return (float64(res) + float64(MaxInt) - 1.0) / (2.0*float64(MaxInt) - 1.0)
}

// Sample returns a float in [0, 1).
func (r *CSRandom) Sample() float64 {
	return float64(r.sampleRaw()) * (1.0 / float64(MaxInt))
}

// Next returns a raw integer sample in [0, MaxInt).
func (r *CSRandom) Next() int32 {
	return r.sampleRaw()
}

// NextMax returns an integer in [0, max).
func (r *CSRandom) NextMax(max int32) int32 {
	return int32(r.Sample() * float64(max))
}

// NextRange returns an integer in [min, max), switching to the long-range
// sampler when the span exceeds the generator's native modulus.
func (r *CSRandom) NextRange(min, max int32) int32 {
	span := int64(max) - int64(min)
	if span <= int64(MaxInt) {
		return int32(float64(span)*r.Sample()) + min
	}
	// The scaled draw can exceed 31 bits, so truncate in 64-bit space before
	// shifting by min, exactly as the legacy runtime does.
	return int32(int64(float64(span)*r.sampleLR()) + int64(min))
}
