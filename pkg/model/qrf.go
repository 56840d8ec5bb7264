package model

import (
	"slices"

	"github.com/hgubler/BNForest/pkg/stats"
)

// QuantileForest is a quantile regression forest. It grows ordinary
// regression trees, then predicts the whole conditional distribution of y:
// every training sample gets the weight of the leaves it shares with the
// query row, averaged over trees, and quantiles are read off the weighted
// empirical distribution.
type QuantileForest struct {
	ForestParams

	Trees     []*RegressionTree
	sortedY   []float64
	rank      []int // rank[i] is the position of sample i in sortedY
	nFeatures int
}

// NewQuantileForest initializes the forest with sensible defaults.
func NewQuantileForest(opts ...RandomForestOption) *QuantileForest {
	return &QuantileForest{ForestParams: newForestParams(opts)}
}

// Fit trains the forest on X (n x p) and continuous targets y.
func (qf *QuantileForest) Fit(X [][]float64, y []float64) error {
	p, err := qf.check(X, len(y))
	if err != nil {
		return err
	}

	trees := make([]*RegressionTree, qf.NEstimators)
	err = qf.grow(len(X), func(i int, idx []int) error {
		tree := &RegressionTree{TreeParams: qf.treeParams(i, p)}
		tree.fit(X, y, idx)
		trees[i] = tree
		return nil
	})
	if err != nil {
		return err
	}

	order := make([]int, len(y))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case y[a] < y[b]:
			return -1
		case y[a] > y[b]:
			return 1
		default:
			return 0
		}
	})
	qf.sortedY = make([]float64, len(y))
	qf.rank = make([]int, len(y))
	for k, i := range order {
		qf.sortedY[k] = y[i]
		qf.rank[i] = k
	}
	qf.Trees, qf.nFeatures = trees, p
	return nil
}

// PredictQuantiles returns, for every row of X, the conditional quantiles at
// the given levels. Rows are non-decreasing when levels are.
func (qf *QuantileForest) PredictQuantiles(X [][]float64, levels []float64) ([][]float64, error) {
	if len(qf.Trees) == 0 {
		return nil, ErrNotFitted
	}
	for _, l := range levels {
		if !(l >= 0 && l <= 1) {
			return nil, ErrInvalidLevel
		}
	}
	if err := checkPredict(X, qf.nFeatures); err != nil {
		return nil, err
	}

	out := make([][]float64, len(X))
	err := chunks(len(X), func(start, end int) error {
		weights := make([]float64, len(qf.sortedY))
		for i := start; i < end; i++ {
			qf.weights(X[i], weights)
			row := make([]float64, len(levels))
			for j, l := range levels {
				row[j] = stats.WeightedQuantile(l, qf.sortedY, weights)
			}
			out[i] = row
		}
		return nil
	})
	return out, err
}

// weights fills w, indexed by rank, with the forest weights of x. The
// weights sum to one.
func (qf *QuantileForest) weights(x []float64, w []float64) {
	clear(w)
	perTree := 1 / float64(len(qf.Trees))
	for _, tree := range qf.Trees {
		leaf := tree.root.find(x)
		share := perTree / float64(len(leaf.members))
		for _, m := range leaf.members {
			w[qf.rank[m]] += share
		}
	}
}
