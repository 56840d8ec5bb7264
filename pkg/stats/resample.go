package stats

import "math/rand/v2"

// Bootstrap returns n indices drawn uniformly with replacement from [0, n).
func Bootstrap(n int, rnd *rand.Rand) []int {
	idx := make([]int, n)
	for i := range n {
		idx[i] = rnd.IntN(n)
	}
	return idx
}

// Resample draws n values with replacement from x.
func Resample(x []float64, n int, rnd *rand.Rand) []float64 {
	if len(x) == 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range n {
		out[i] = x[rnd.IntN(len(x))]
	}
	return out
}
