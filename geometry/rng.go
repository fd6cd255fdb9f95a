package geometry

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"golang.org/x/crypto/blake2b"

	"idfgen/model"
)

// SeedFor derives the per-invocation deterministic PRNG seed from the
// resolved building parameters and an optional config salt:
// identical inputs must yield an identical seed (and therefore
// identical footprint-shape and space-type-mix sampling) across runs
// and platforms.
func SeedFor(bp model.BuildingParameters, salt string) uint64 {
	key := fmt.Sprintf("%s|%d|%.6f|%.6f|%s|%s", bp.BuildingType, bp.Stories, bp.FloorAreaM2, bp.FloorAreaPerStoryM2, bp.LEEDLevel, salt)
	sum := blake2b.Sum256([]byte(key))
	return binary.BigEndian.Uint64(sum[:8])
}

// NewRand returns a math/rand source seeded deterministically from
// seed. math/rand (not crypto/rand) is intentional: reproducibility
// across platforms requires a documented, non-cryptographic algorithm.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// weightedChoice picks an index from weights proportional to their
// values using r; weights need not sum to 1.
func weightedChoice(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	x := r.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}
