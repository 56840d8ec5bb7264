package model

// RandomForest for classification
type RandomForest struct {
	ForestParams

	// Internal state
	Trees     []*DecisionTreeClassifier
	nClasses  int
	nFeatures int
}

// NewRandomForest initializes the forest with sensible defaults.
func NewRandomForest(opts ...RandomForestOption) *RandomForest {
	return &RandomForest{ForestParams: newForestParams(opts)}
}

// Fit trains the random forest on labels y in 0..k-1. Each tree sees its own
// bootstrap sample as a slice of row indices, never a copy of the data.
func (rf *RandomForest) Fit(X [][]float64, y []int) error {
	p, err := rf.check(X, len(y))
	if err != nil {
		return err
	}
	k, err := countClasses(y)
	if err != nil {
		return err
	}

	trees := make([]*DecisionTreeClassifier, rf.NEstimators)
	err = rf.grow(len(X), func(i int, idx []int) error {
		tree := &DecisionTreeClassifier{TreeParams: rf.treeParams(i, p)}
		tree.fit(X, y, idx, k)
		trees[i] = tree
		return nil
	})
	if err != nil {
		return err
	}
	rf.Trees, rf.nClasses, rf.nFeatures = trees, k, p
	return nil
}

// PredictProba averages the class distributions of all trees. Trees whose
// bootstrap sample missed a class contribute zero to it.
func (rf *RandomForest) PredictProba(X [][]float64) ([][]float64, error) {
	if len(rf.Trees) == 0 {
		return nil, ErrNotFitted
	}
	if err := checkPredict(X, rf.nFeatures); err != nil {
		return nil, err
	}

	out := make([][]float64, len(X))
	share := 1 / float64(len(rf.Trees))
	err := chunks(len(X), func(start, end int) error {
		for i := start; i < end; i++ {
			row := make([]float64, rf.nClasses)
			for _, tree := range rf.Trees {
				for c, p := range tree.root.find(X[i]).probas {
					row[c] += p * share
				}
			}
			out[i] = row
		}
		return nil
	})
	return out, err
}

// Predict returns the most probable class for every row in X.
func (rf *RandomForest) Predict(X [][]float64) ([]int, error) {
	probas, err := rf.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return argmaxRows(probas), nil
}
