package bnforest

import (
	"context"
	"fmt"
	"time"

	"github.com/hgubler/BNForest/pkg/data"
	"github.com/hgubler/BNForest/pkg/graph"
	"github.com/hgubler/BNForest/pkg/model"
	"github.com/hgubler/BNForest/pkg/stats"
)

// Fit trains one conditional model per node of order against the node's DAG
// parents, using ds as training data. Parentless nodes get a NoParents
// model; binary nodes a classifier forest; every other node (continuous or
// constant) a quantile regression forest.
//
// The first training failure aborts the fit and is returned wrapped with the
// node name.
func (g *Generator) Fit(ctx context.Context, ds *data.Dataset, dag *graph.DAG, order []string) (ModelBank, error) {
	bank := make(ModelBank, len(order))
	schema := ds.Schema()
	for _, node := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		parents, err := dag.Predecessors(node)
		if err != nil {
			return nil, fmt.Errorf("bnforest: fit %q: %w", node, err)
		}

		kind, ok := schema.Kind(node)
		if !ok {
			return nil, fmt.Errorf("bnforest: fit %q: %w", node, ErrUnknownColumn)
		}

		start := time.Now()
		m, err := g.fitNode(ds, node, kind, parents)
		if err != nil {
			return nil, fmt.Errorf("bnforest: fit %q: %w", node, err)
		}
		elapsed := time.Since(start)

		modelsFitted.WithLabelValues(m.Kind.String()).Inc()
		modelFitDuration.WithLabelValues(m.Kind.String()).Observe(elapsed.Seconds())
		g.logger.Debug("fitted node model", "node", node, "column", kind, "model", m.Kind, "parents", parents, "duration", elapsed)
		bank[node] = m
	}
	return bank, nil
}

func (g *Generator) fitNode(ds *data.Dataset, node string, kind data.Kind, parents []string) (NodeModel, error) {
	y, err := ds.Column(node)
	if err != nil {
		return NodeModel{}, err
	}
	if len(parents) == 0 {
		return NodeModel{Kind: NoParents}, nil
	}
	m, err := ds.Select(parents)
	if err != nil {
		return NodeModel{}, err
	}
	X := m.Rows()

	opts := []model.RandomForestOption{
		model.WithNEstimators(g.cfg.Forest.NTrees),
		model.WithForestMaxDepth(g.cfg.Forest.MaxDepth),
		model.WithForestMinSamplesLeaf(g.cfg.Forest.MinSamplesLeaf),
		model.WithForestMaxFeatures(model.SqrtFeatures(len(parents))),
		model.WithForestRandomState(g.rnd.Int64()),
	}

	if kind == data.Binary {
		levels := stats.Levels(y)
		labels := make([]int, len(y))
		for i, v := range y {
			if v == levels[1] {
				labels[i] = 1
			}
		}
		rf := model.NewRandomForest(opts...)
		if err := rf.Fit(X, labels); err != nil {
			return NodeModel{}, err
		}
		return NodeModel{Kind: BinaryModel, Parents: parents, Levels: levels, Classifier: rf}, nil
	}

	qf := model.NewQuantileForest(opts...)
	if err := qf.Fit(X, y); err != nil {
		return NodeModel{}, err
	}
	return NodeModel{Kind: ContinuousModel, Parents: parents, Quantiles: qf}, nil
}
