package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	assert.InDelta(t, 1.0, MAE([]float64{1, 2, 3}, []float64{2, 3, 2}), 1e-12)
	assert.InDelta(t, 2.0/3, Accuracy([]int{0, 1, 1}, []int{0, 1, 0}), 1e-12)
	// Under-prediction costs tau, over-prediction 1-tau.
	assert.InDelta(t, 0.9, PinballLoss([]float64{2}, []float64{1}, 0.9), 1e-12)
	assert.InDelta(t, 0.1, PinballLoss([]float64{1}, []float64{2}, 0.9), 1e-12)
}

func TestMetricsEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, MAE(nil, nil))
	assert.Equal(t, 0.0, Accuracy(nil, nil))
	assert.Equal(t, 0.0, PinballLoss(nil, nil, 0.5))
}
