package data

import (
	"slices"

	"github.com/hgubler/BNForest/pkg/stats"
)

// Kind classifies a column by the number of distinct values it holds.
type Kind int

const (
	// Constant columns hold at most one distinct value.
	Constant Kind = iota
	// Binary columns hold exactly two distinct values.
	Binary
	// Continuous columns hold more than two distinct values. Columns with a
	// handful of integer codes are continuous too; only two levels make a
	// column binary.
	Continuous
)

func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Binary:
		return "binary"
	case Continuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// KindOf applies the column rule: exactly two distinct values is binary, more
// than two is continuous, and anything less is constant. An empty column is
// constant.
func KindOf(values []float64) Kind {
	switch n := len(stats.Levels(values)); {
	case n == 2:
		return Binary
	case n > 2:
		return Continuous
	default:
		return Constant
	}
}

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Kinds        []Kind
}

// Kind returns the kind of the named column.
func (s Schema) Kind(name string) (Kind, bool) {
	i := slices.Index(s.FeatureNames, name)
	if i < 0 {
		return Constant, false
	}
	return s.Kinds[i], true
}
