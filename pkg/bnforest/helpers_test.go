package bnforest

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hgubler/BNForest/pkg/data"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// smallConfig keeps forests small enough for unit tests.
func smallConfig(seed uint64, nSamples int) Config {
	cfg := DefaultConfig()
	cfg.Forest.NTrees = 15
	cfg.Sampling.NSamples = nSamples
	cfg.Seed = &seed
	return cfg
}

func newTestGenerator(t *testing.T, cfg Config) *Generator {
	t.Helper()
	g, err := New(cfg, WithLogger(quietLogger()))
	require.NoError(t, err)
	return g
}

// treatmentData returns A ~ Bernoulli(pA), B = 2 + 3A + N(0, 1) and
// C ~ Bernoulli(0.9) when B > 3.5, else Bernoulli(0.1).
func treatmentData(t *testing.T, n int, pA float64, seed uint64) *data.Dataset {
	t.Helper()
	rnd := rand.New(rand.NewPCG(seed, seed))
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	for i := range n {
		if rnd.Float64() < pA {
			a[i] = 1
		}
		b[i] = 2 + 3*a[i] + rnd.NormFloat64()
		p := 0.1
		if b[i] > 3.5 {
			p = 0.9
		}
		if rnd.Float64() < p {
			c[i] = 1
		}
	}
	ds, err := data.New([]string{"A", "B", "C"}, [][]float64{a, b, c})
	require.NoError(t, err)
	return ds
}

func column(t *testing.T, ds *data.Dataset, name string) []float64 {
	t.Helper()
	col, err := ds.Column(name)
	require.NoError(t, err)
	return col
}

func meanWhere(values, cond []float64, want float64) float64 {
	sum, n := 0.0, 0
	for i, c := range cond {
		if c == want {
			sum += values[i]
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
