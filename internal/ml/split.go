package ml

import (
	"math/rand/v2"
)

// SplitIndices shuffles 0..n-1 with a seeded generator and carves off the
// last testFraction as the held-out split. The fixed seed makes every
// training run reproducible for the same dataset.
func SplitIndices(n int, testFraction float64, seed uint64) (train, test []int) {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(n, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})

	testSize := int(float64(n) * testFraction)
	if testSize < 1 && n > 1 {
		testSize = 1
	}
	cut := n - testSize
	return idx[:cut], idx[cut:]
}
