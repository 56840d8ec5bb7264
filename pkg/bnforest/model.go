package bnforest

import "github.com/hgubler/BNForest/pkg/model"

// ModelKind tags the conditional model fitted for one node.
type ModelKind int

const (
	// NoParents nodes are sampled from their empirical marginal.
	NoParents ModelKind = iota
	// BinaryModel nodes are sampled from a classifier's class-1 probability.
	BinaryModel
	// ContinuousModel nodes are sampled by inverting predicted quantiles.
	ContinuousModel
)

func (k ModelKind) String() string {
	switch k {
	case NoParents:
		return "none"
	case BinaryModel:
		return "binary"
	case ContinuousModel:
		return "continuous"
	default:
		return "unknown"
	}
}

// NodeModel is the conditional model of one DAG node. Exactly one of
// Classifier and Quantiles is set, matching Kind; both are nil for NoParents.
type NodeModel struct {
	Kind    ModelKind
	Parents []string
	// Levels are the sorted distinct values of the node's real column when
	// it is binary. The classifier's class 1 is Levels[1].
	Levels     []float64
	Classifier model.Classifier
	Quantiles  model.QuantileRegressor
}

// ModelBank maps each node name to its fitted model. It is produced by Fit
// and only read by Sample.
type ModelBank map[string]NodeModel
