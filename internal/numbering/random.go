package numbering

import "math/rand/v2"

// RandomSource draws integers uniformly from [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type entropySource struct{}

func (entropySource) IntN(n int) int {
	return rand.IntN(n)
}

// EntropySource returns the runtime-seeded generator used in production.
func EntropySource() RandomSource {
	return entropySource{}
}
