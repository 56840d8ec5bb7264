package model

import "errors"

// Classifier is a probabilistic classifier over integer labels 0..k-1.
// PredictProba returns one row per sample with one column per class.
type Classifier interface {
	Fit(X [][]float64, y []int) error
	PredictProba(X [][]float64) ([][]float64, error)
}

// QuantileRegressor estimates the conditional quantile function of a
// continuous target. PredictQuantiles returns one row per sample with one
// column per requested level.
type QuantileRegressor interface {
	Fit(X [][]float64, y []float64) error
	PredictQuantiles(X [][]float64, levels []float64) ([][]float64, error)
}

var (
	ErrEmptyInput          = errors.New("model: empty X")
	ErrShapeMismatch       = errors.New("model: X and y length mismatch")
	ErrRaggedInput         = errors.New("model: inconsistent number of features in X rows")
	ErrFeatureCount        = errors.New("model: feature count differs from training data")
	ErrInsufficientSamples = errors.New("model: fewer samples than min samples per leaf")
	ErrInvalidLabel        = errors.New("model: class labels must be non-negative")
	ErrInvalidLevel        = errors.New("model: quantile level outside [0, 1]")
	ErrNoEstimators        = errors.New("model: forest needs at least one tree")
	ErrNotFitted           = errors.New("model: not fitted")
)

// checkTrain validates a training set and returns its feature count.
func checkTrain(X [][]float64, ny, minLeaf int) (int, error) {
	if len(X) == 0 {
		return 0, ErrEmptyInput
	}
	if len(X) != ny {
		return 0, ErrShapeMismatch
	}
	p := len(X[0])
	for i := range X {
		if len(X[i]) != p {
			return 0, ErrRaggedInput
		}
	}
	if len(X) < minLeaf {
		return 0, ErrInsufficientSamples
	}
	return p, nil
}

// checkPredict validates prediction rows against the training feature count.
func checkPredict(X [][]float64, p int) error {
	for i := range X {
		if len(X[i]) != p {
			return ErrFeatureCount
		}
	}
	return nil
}

// countClasses returns max(y)+1.
func countClasses(y []int) (int, error) {
	k := 0
	for _, lab := range y {
		if lab < 0 {
			return 0, ErrInvalidLabel
		}
		if lab+1 > k {
			k = lab + 1
		}
	}
	return k, nil
}
