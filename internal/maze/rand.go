package maze

import "math/rand"

// RandSource supplies uniform random integers over a closed range. The
// generator draws all of its randomness through this interface, so callers
// control seeding and tests can script exact layouts.
type RandSource interface {
	// IntN returns a uniform random integer in [min, max].
	IntN(min, max int) int
}

type mathSource struct {
	rng *rand.Rand
}

// NewRand returns a RandSource backed by math/rand with the given seed.
func NewRand(seed int64) RandSource {
	return &mathSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *mathSource) IntN(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}
