package model

import "math"

// MAE is the mean absolute error between yTrue and yPred, 0 when empty.
func MAE(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		s += math.Abs(yPred[i] - yTrue[i])
	}
	return s / n
}

// Accuracy is the share of labels predicted exactly.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// PinballLoss is the mean quantile loss of predictions q at level tau.
// It is minimised by the true tau-quantile. Empty input gives 0.
func PinballLoss(yTrue, q []float64, tau float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		d := yTrue[i] - q[i]
		if d >= 0 {
			s += tau * d
		} else {
			s += (tau - 1) * d
		}
	}
	return s / n
}
