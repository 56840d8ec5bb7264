package bnforest

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hgubler/BNForest/pkg/data"
	"github.com/hgubler/BNForest/pkg/stats"
)

// Quantile levels span [lowestLevel, highestLevel]; draws outside that band
// take the end quantiles.
const (
	lowestLevel  = 0.01
	highestLevel = 0.99
)

// Sample draws Config.Sampling.NSamples synthetic rows node by node in
// order. The first node is resampled from its column in ds; every later node
// is drawn from its model in bank, conditioned on the synthetic values of its
// parents. The result has the columns of ds in the same order.
func (g *Generator) Sample(ctx context.Context, ds *data.Dataset, order []string, bank ModelBank) (*data.Dataset, error) {
	n := g.cfg.Sampling.NSamples
	levels, err := stats.Linspace(lowestLevel, highestLevel, g.cfg.Sampling.NQuantiles)
	if err != nil {
		return nil, fmt.Errorf("bnforest: %w", err)
	}
	b, err := data.NewBuilder(ds.Names(), n)
	if err != nil {
		return nil, err
	}

	for i, node := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		observed, err := ds.Column(node)
		if err != nil {
			return nil, fmt.Errorf("bnforest: sample %q: %w", node, err)
		}

		var values []float64
		if i == 0 {
			values = stats.Resample(observed, n, g.rnd)
		} else {
			m, ok := bank[node]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingModel, node)
			}
			if values, err = g.sampleNode(b, observed, m, levels); err != nil {
				return nil, fmt.Errorf("bnforest: sample %q: %w", node, err)
			}
		}
		if err := b.Set(node, values); err != nil {
			return nil, err
		}
	}

	out, err := b.Build()
	if err != nil {
		return nil, err
	}
	rowsSampled.Add(float64(n))
	return out, nil
}

func (g *Generator) sampleNode(b *data.Builder, observed []float64, m NodeModel, levels []float64) ([]float64, error) {
	n := g.cfg.Sampling.NSamples
	if m.Kind == NoParents {
		return stats.Resample(observed, n, g.rnd), nil
	}

	xm, err := b.Select(m.Parents)
	if err != nil {
		return nil, err
	}
	X := xm.Rows()

	switch m.Kind {
	case BinaryModel:
		probas, err := m.Classifier.PredictProba(X)
		if err != nil {
			return nil, err
		}
		out := make([]float64, n)
		for i, row := range probas {
			p := 0.0
			if len(row) > 1 {
				p = min(max(row[1], 0), 1)
			}
			draw := distuv.Bernoulli{P: p, Src: g.rnd}.Rand()
			out[i] = m.Levels[int(draw)]
		}
		return out, nil

	case ContinuousModel:
		q, err := m.Quantiles.PredictQuantiles(X, levels)
		if err != nil {
			return nil, err
		}
		unif := distuv.Uniform{Min: 0, Max: 1, Src: g.rnd}
		draws := make([]float64, n)
		for i := range draws {
			draws[i] = unif.Rand()
		}

		// Fit-time dispatch already sends binary columns to the classifier,
		// so this only triggers for models built elsewhere.
		var snap []float64
		if data.KindOf(observed) == data.Binary {
			snap = stats.Levels(observed)
		}

		out := make([]float64, n)
		for i := range out {
			v, err := stats.Interp(draws[i], levels, q[i])
			if err != nil {
				return nil, err
			}
			if snap != nil {
				v = stats.Nearest(v, snap)
			}
			out[i] = v
		}
		return out, nil

	default:
		return nil, fmt.Errorf("bnforest: unknown model kind %v", m.Kind)
	}
}
