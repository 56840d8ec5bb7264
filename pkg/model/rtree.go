package model

import "math/rand/v2"

// RegressionTree is a CART regression tree splitting on squared error. Its
// leaves remember which training samples reached them, which is what the
// quantile forest needs to rebuild conditional distributions.
type RegressionTree struct {
	TreeParams

	root      *dtNode
	nFeatures int
}

// NewRegressionTree returns a regression tree with sensible defaults.
func NewRegressionTree(opts ...Option) *RegressionTree {
	return &RegressionTree{TreeParams: newTreeParams(opts)}
}

// Fit trains the tree on X (n x p) and targets y.
func (t *RegressionTree) Fit(X [][]float64, y []float64) error {
	if _, err := checkTrain(X, len(y), t.minLeaf()); err != nil {
		return err
	}
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	t.fit(X, y, idx)
	return nil
}

func (t *RegressionTree) fit(X [][]float64, y []float64, idx []int) {
	t.nFeatures = len(X[0])
	rnd := newRand(t.RandomState, 0)
	t.root = t.buildNode(X, y, idx, 0, rnd)
}

// Predict returns the leaf mean for every row in X.
func (t *RegressionTree) Predict(X [][]float64) ([]float64, error) {
	if t.root == nil {
		return nil, ErrNotFitted
	}
	if err := checkPredict(X, t.nFeatures); err != nil {
		return nil, err
	}
	out := make([]float64, len(X))
	for i := range X {
		out[i] = t.root.find(X[i]).value
	}
	return out, nil
}

func (t *RegressionTree) buildNode(X [][]float64, y []float64, idx []int, depth int, rnd *rand.Rand) *dtNode {
	node := &dtNode{n: len(idx)}
	var sum, sumSq float64
	for _, i := range idx {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	node.value = sum / float64(len(idx))

	if t.stop(len(idx), depth) || constantTarget(y, idx) {
		node.isLeaf = true
		node.members = idx
		return node
	}

	parentSSE := sumSq - sum*sum/float64(len(idx))
	best := noSplit()
	for _, f := range t.candidateFeatures(t.nFeatures, rnd) {
		if r := t.bestSplitForFeature(X, y, idx, f, sum, sumSq, parentSSE); r.gain > best.gain {
			best = r
		}
	}
	if best.feature < 0 {
		node.isLeaf = true
		node.members = idx
		return node
	}

	node.feature = best.feature
	node.threshold = best.threshold
	leftIdx, rightIdx := partition(X, idx, best.feature, best.threshold)
	node.left = t.buildNode(X, y, leftIdx, depth+1, rnd)
	node.right = t.buildNode(X, y, rightIdx, depth+1, rnd)
	return node
}

func (t *RegressionTree) bestSplitForFeature(X [][]float64, y []float64, idx []int, f int, sum, sumSq, parentSSE float64) splitResult {
	result := noSplit()
	order := sortByFeature(X, idx, f)
	n := len(order)
	minLeaf := t.minLeaf()

	var sumL, sqL float64
	for s := 1; s < n; s++ {
		v := y[order[s-1]]
		sumL += v
		sqL += v * v

		lo, hi := X[order[s-1]][f], X[order[s]][f]
		if lo == hi || s < minLeaf || n-s < minLeaf {
			continue
		}
		nL, nR := float64(s), float64(n-s)
		sumR := sum - sumL
		sseL := sqL - sumL*sumL/nL
		sseR := (sumSq - sqL) - sumR*sumR/nR
		if gain := parentSSE - sseL - sseR; gain > result.gain {
			result = splitResult{gain: gain, feature: f, threshold: threshold(lo, hi)}
		}
	}
	return result
}

func constantTarget(y []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}
