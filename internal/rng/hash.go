package rng

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
)

// HashSeed reproduces the 1.6-era CreateRandomSeed path: XXH32 (seed 0) over
// five packed little-endian int32 words (a, b, 0, 0, 0), reinterpreted as a
// signed 32-bit seed.
func HashSeed(a, b int32) int32 {
	var buf [20]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(a))
	binary.LittleEndian.PutUint32(buf[4:], uint32(b))
	return int32(xxhash.Checksum32(buf[:]))
}
