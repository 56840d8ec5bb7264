package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   Kind
	}{
		{"empty", nil, Constant},
		{"single value", []float64{3, 3, 3}, Constant},
		{"zero one", []float64{0, 1, 0, 0}, Binary},
		{"any two levels", []float64{-2, 5, 5}, Binary},
		{"three integer codes", []float64{0, 1, 2}, Continuous},
		{"real valued", []float64{0.1, 0.7, 0.3, 2.2}, Continuous},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.values))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "continuous", Continuous.String())
	assert.Equal(t, "constant", Constant.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
