package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomForestProbabilities(t *testing.T) {
	X, y := stepData(500, 3)
	rf := NewRandomForest(
		WithNEstimators(30),
		WithForestMaxDepth(5),
		WithForestMinSamplesLeaf(6),
		WithForestRandomState(3),
	)
	require.NoError(t, rf.Fit(X, y))
	require.Len(t, rf.Trees, 30)

	probas, err := rf.PredictProba([][]float64{{-0.8}, {0.8}})
	require.NoError(t, err)
	for _, row := range probas {
		require.Len(t, row, 2)
		assert.InDelta(t, 1.0, row[0]+row[1], 1e-9)
	}
	assert.Less(t, probas[0][1], 0.1)
	assert.Greater(t, probas[1][1], 0.9)

	pred, err := rf.Predict(X)
	require.NoError(t, err)
	assert.Greater(t, Accuracy(y, pred), 0.95)
}

func TestRandomForestIsReproducible(t *testing.T) {
	X, y := stepData(200, 4)
	fit := func() [][]float64 {
		rf := NewRandomForest(WithNEstimators(10), WithForestRandomState(42))
		require.NoError(t, rf.Fit(X, y))
		probas, err := rf.PredictProba(X)
		require.NoError(t, err)
		return probas
	}
	assert.Equal(t, fit(), fit())
}

func TestRandomForestErrors(t *testing.T) {
	rf := NewRandomForest(WithNEstimators(0))
	assert.ErrorIs(t, rf.Fit([][]float64{{1}}, []int{1}), ErrNoEstimators)

	rf = NewRandomForest(WithForestMinSamplesLeaf(10))
	assert.ErrorIs(t, rf.Fit([][]float64{{1}, {2}}, []int{0, 1}), ErrInsufficientSamples)

	_, err := NewRandomForest().PredictProba([][]float64{{1}})
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestRandomForestWithoutBootstrapUsesAllRows(t *testing.T) {
	p := newForestParams([]RandomForestOption{WithBootstrap(false)})
	assert.Equal(t, []int{0, 1, 2}, p.sampleIndices(0, 3))
}

func TestForestTreeParams(t *testing.T) {
	p := newForestParams([]RandomForestOption{WithForestRandomState(100), WithForestMaxDepth(4)})
	tp := p.treeParams(3, 9)
	assert.Equal(t, 3, tp.MaxFeatures)
	assert.Equal(t, int64(103), tp.RandomState)
	assert.Equal(t, 4, tp.MaxDepth)

	p.MaxFeatures = 2
	assert.Equal(t, 2, p.treeParams(0, 9).MaxFeatures)
}

func TestQuantileForestSeparatesGroups(t *testing.T) {
	X, y := shiftData(400, 5)
	qf := NewQuantileForest(
		WithNEstimators(20),
		WithForestMaxDepth(5),
		WithForestMinSamplesLeaf(6),
		WithForestRandomState(5),
	)
	require.NoError(t, qf.Fit(X, y))

	levels := []float64{0.01, 0.5, 0.99}
	q, err := qf.PredictQuantiles([][]float64{{0}, {1}}, levels)
	require.NoError(t, err)
	require.Len(t, q, 2)

	assert.GreaterOrEqual(t, q[0][0], 0.0)
	assert.LessOrEqual(t, q[0][2], 1.0)
	assert.InDelta(t, 0.5, q[0][1], 0.15)

	assert.GreaterOrEqual(t, q[1][0], 10.0)
	assert.LessOrEqual(t, q[1][2], 11.0)
	assert.InDelta(t, 10.5, q[1][1], 0.15)

	for _, row := range q {
		assert.IsNonDecreasing(t, row)
	}
}

func TestQuantileForestMedianBeatsMeanOnPinball(t *testing.T) {
	X, y := shiftData(300, 6)
	qf := NewQuantileForest(WithNEstimators(15), WithForestMinSamplesLeaf(5), WithForestRandomState(6))
	require.NoError(t, qf.Fit(X, y))

	q, err := qf.PredictQuantiles(X, []float64{0.5})
	require.NoError(t, err)
	median := make([]float64, len(q))
	for i := range q {
		median[i] = q[i][0]
	}
	assert.Less(t, MAE(y, median), 0.35)
	assert.Less(t, PinballLoss(y, median, 0.5), 0.2)
}

func TestQuantileForestConstantTarget(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {3}, {4}, {5}}
	y := []float64{7, 7, 7, 7, 7, 7}
	qf := NewQuantileForest(WithNEstimators(5), WithForestRandomState(1))
	require.NoError(t, qf.Fit(X, y))

	q, err := qf.PredictQuantiles([][]float64{{2.5}}, []float64{0.01, 0.99})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{7, 7}}, q)
}

func TestQuantileForestIsReproducible(t *testing.T) {
	X, y := shiftData(150, 7)
	fit := func() [][]float64 {
		qf := NewQuantileForest(WithNEstimators(8), WithForestRandomState(9))
		require.NoError(t, qf.Fit(X, y))
		q, err := qf.PredictQuantiles(X, []float64{0.1, 0.5, 0.9})
		require.NoError(t, err)
		return q
	}
	assert.Equal(t, fit(), fit())
}

func TestQuantileForestClosedLevelRange(t *testing.T) {
	X, y := shiftData(300, 12)
	for seed := range int64(40) {
		qf := NewQuantileForest(WithNEstimators(7), WithForestRandomState(seed))
		require.NoError(t, qf.Fit(X, y))

		q, err := qf.PredictQuantiles(X, []float64{0, 0.5, 1})
		require.NoError(t, err)
		for i, row := range q {
			assert.IsNonDecreasing(t, row)
			assert.LessOrEqual(t, row[2], 10*X[i][0]+1)
		}
	}
}

func TestQuantileForestErrors(t *testing.T) {
	qf := NewQuantileForest(WithNEstimators(3))
	_, err := qf.PredictQuantiles([][]float64{{1}}, []float64{0.5})
	assert.ErrorIs(t, err, ErrNotFitted)

	require.NoError(t, qf.Fit([][]float64{{0}, {1}, {2}}, []float64{1, 2, 3}))
	_, err = qf.PredictQuantiles([][]float64{{1}}, []float64{1.5})
	assert.ErrorIs(t, err, ErrInvalidLevel)
	_, err = qf.PredictQuantiles([][]float64{{1, 2}}, []float64{0.5})
	assert.ErrorIs(t, err, ErrFeatureCount)

	qf = NewQuantileForest(WithForestMinSamplesLeaf(6))
	assert.ErrorIs(t, qf.Fit([][]float64{{0}, {1}}, []float64{1, 2}), ErrInsufficientSamples)
}

var (
	_ Classifier        = (*RandomForest)(nil)
	_ Classifier        = (*DecisionTreeClassifier)(nil)
	_ QuantileRegressor = (*QuantileForest)(nil)
)
