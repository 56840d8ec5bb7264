package model

import "math/rand/v2"

// stepData returns one feature x ~ U(-1, 1) with label x > 0.
func stepData(n int, seed uint64) ([][]float64, []int) {
	rnd := rand.New(rand.NewPCG(seed, seed))
	X := make([][]float64, n)
	y := make([]int, n)
	for i := range n {
		x := rnd.Float64()*2 - 1
		X[i] = []float64{x}
		if x > 0 {
			y[i] = 1
		}
	}
	return X, y
}

// shiftData returns a group flag g and y = 10*g + U(0, 1).
func shiftData(n int, seed uint64) ([][]float64, []float64) {
	rnd := rand.New(rand.NewPCG(seed, seed))
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := range n {
		g := float64(i % 2)
		X[i] = []float64{g}
		y[i] = 10*g + rnd.Float64()
	}
	return X, y
}
