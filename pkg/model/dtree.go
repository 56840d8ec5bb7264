package model

import (
	"math/rand/v2"
	"slices"
)

// DecisionTreeClassifier is a CART-style classifier using gini impurity.
type DecisionTreeClassifier struct {
	TreeParams

	root      *dtNode
	nClasses  int
	nFeatures int
}

// NewDecisionTreeClassifier returns a classifier with sensible defaults.
func NewDecisionTreeClassifier(opts ...Option) *DecisionTreeClassifier {
	return &DecisionTreeClassifier{TreeParams: newTreeParams(opts)}
}

// Fit trains the decision tree on X (n x p) and labels y in 0..k-1.
func (t *DecisionTreeClassifier) Fit(X [][]float64, y []int) error {
	if _, err := checkTrain(X, len(y), t.minLeaf()); err != nil {
		return err
	}
	k, err := countClasses(y)
	if err != nil {
		return err
	}
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	t.fit(X, y, idx, k)
	return nil
}

// fit grows the tree on the rows listed in idx, which may repeat.
func (t *DecisionTreeClassifier) fit(X [][]float64, y []int, idx []int, nClasses int) {
	t.nClasses = nClasses
	t.nFeatures = len(X[0])
	rnd := newRand(t.RandomState, 0)
	t.root = t.buildNode(X, y, idx, 0, rnd)
}

// PredictProba returns the per-class probability vectors for rows in X.
func (t *DecisionTreeClassifier) PredictProba(X [][]float64) ([][]float64, error) {
	if t.root == nil {
		return nil, ErrNotFitted
	}
	if err := checkPredict(X, t.nFeatures); err != nil {
		return nil, err
	}
	out := make([][]float64, len(X))
	for i := range X {
		out[i] = slices.Clone(t.root.find(X[i]).probas)
	}
	return out, nil
}

// Predict returns the most probable class for every row in X.
func (t *DecisionTreeClassifier) Predict(X [][]float64) ([]int, error) {
	probas, err := t.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return argmaxRows(probas), nil
}

func (t *DecisionTreeClassifier) buildNode(X [][]float64, y []int, idx []int, depth int, rnd *rand.Rand) *dtNode {
	node := &dtNode{n: len(idx)}
	counts := countsFromIndices(y, idx, t.nClasses)

	// make leaf if pure or too few samples or depth reached
	if isPure(counts) || t.stop(len(idx), depth) {
		node.isLeaf = true
		node.probas = countsToProbas(counts)
		return node
	}

	parentImpurity := giniFromCounts(counts)
	best := noSplit()
	for _, f := range t.candidateFeatures(t.nFeatures, rnd) {
		if r := t.bestSplitForFeature(X, y, idx, f, counts, parentImpurity); r.gain > best.gain {
			best = r
		}
	}
	if best.feature < 0 {
		node.isLeaf = true
		node.probas = countsToProbas(counts)
		return node
	}

	node.feature = best.feature
	node.threshold = best.threshold
	leftIdx, rightIdx := partition(X, idx, best.feature, best.threshold)
	node.left = t.buildNode(X, y, leftIdx, depth+1, rnd)
	node.right = t.buildNode(X, y, rightIdx, depth+1, rnd)
	return node
}

// bestSplitForFeature scans the thresholds of feature f in one sorted pass,
// moving samples from the right partition to the left.
func (t *DecisionTreeClassifier) bestSplitForFeature(X [][]float64, y []int, idx []int, f int, total []int, parentImpurity float64) splitResult {
	result := noSplit()
	order := sortByFeature(X, idx, f)
	n := len(order)
	minLeaf := t.minLeaf()

	left := make([]int, len(total))
	right := slices.Clone(total)
	for s := 1; s < n; s++ {
		c := y[order[s-1]]
		left[c]++
		right[c]--

		lo, hi := X[order[s-1]][f], X[order[s]][f]
		if lo == hi || s < minLeaf || n-s < minLeaf {
			continue
		}
		weighted := (float64(s)/float64(n))*giniFromCounts(left) + (float64(n-s)/float64(n))*giniFromCounts(right)
		if gain := parentImpurity - weighted; gain > result.gain {
			result = splitResult{gain: gain, feature: f, threshold: threshold(lo, hi)}
		}
	}
	return result
}

// ---------------------------
// Utilities: impurity & misc
// ---------------------------

func countsFromIndices(y []int, idx []int, nClasses int) []int {
	counts := make([]int, nClasses)
	for _, i := range idx {
		counts[y[i]]++
	}
	return counts
}

func giniFromCounts(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		p := float64(c) / n
		res += p * (1 - p)
	}
	return res
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func countsToProbas(counts []int) []float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	p := make([]float64, len(counts))
	if n == 0 {
		return p
	}
	for i := range counts {
		p[i] = float64(counts[i]) / float64(n)
	}
	return p
}

func argmaxRows(rows [][]float64) []int {
	out := make([]int, len(rows))
	for i, row := range rows {
		best := 0
		for j := 1; j < len(row); j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		out[i] = best
	}
	return out
}
