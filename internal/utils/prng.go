// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandomSource is the uniform generator the gameplay rules draw from.
// Float64 returns a value in [0.0, 1.0).
type RandomSource interface {
	Float64() float64
}

// PRNGService wraps math/rand so the whole game can share one seeded
// generator.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range draws uniformly from [lo, hi). Swapped bounds are accepted.
func Range(src RandomSource, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Float64()*(hi-lo)
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
// It makes randomised rules reproducible in tests and replays.
type SequenceSource struct {
	Values []float64
	next   int
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
