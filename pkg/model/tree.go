package model

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"
)

// TreeParams holds the hyperparameters shared by classification and
// regression trees.
type TreeParams struct {
	MaxDepth       int   // maximum depth (root depth = 0). 0 => no limit
	MinSamplesLeaf int   // minimum samples required in each leaf
	MaxFeatures    int   // 0 => use all features, >0 => features sampled per split
	RandomState    int64 // seed for feature subsampling
}

// Option functional config
type Option func(*TreeParams)

func WithMaxDepth(d int) Option         { return func(t *TreeParams) { t.MaxDepth = d } }
func WithMinSamplesLeaf(n int) Option   { return func(t *TreeParams) { t.MinSamplesLeaf = n } }
func WithMaxFeatures(k int) Option      { return func(t *TreeParams) { t.MaxFeatures = k } }
func WithRandomState(seed int64) Option { return func(t *TreeParams) { t.RandomState = seed } }

func newTreeParams(opts []Option) TreeParams {
	p := TreeParams{MinSamplesLeaf: 1, RandomState: time.Now().UnixNano()}
	for _, o := range opts {
		o(&p)
	}
	return p
}

func (p TreeParams) minLeaf() int { return max(p.MinSamplesLeaf, 1) }

// stop reports whether a node of n samples at depth must be a leaf.
func (p TreeParams) stop(n, depth int) bool {
	if n < 2*p.minLeaf() {
		return true
	}
	return p.MaxDepth > 0 && depth >= p.MaxDepth
}

// candidateFeatures picks the features to try at one split.
func (p TreeParams) candidateFeatures(nFeatures int, rnd *rand.Rand) []int {
	feats := make([]int, nFeatures)
	for j := range feats {
		feats[j] = j
	}
	if p.MaxFeatures <= 0 || p.MaxFeatures >= nFeatures {
		return feats
	}
	for i := 0; i < p.MaxFeatures; i++ {
		j := i + rnd.IntN(nFeatures-i)
		feats[i], feats[j] = feats[j], feats[i]
	}
	feats = feats[:p.MaxFeatures]
	slices.Sort(feats)
	return feats
}

// SqrtFeatures returns the square-root feature budget, max(1, floor(sqrt(p))).
func SqrtFeatures(p int) int {
	return max(1, int(math.Sqrt(float64(p))))
}

func newRand(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), stream))
}

// dtNode holds a node in a tree.
type dtNode struct {
	// internal node fields
	isLeaf    bool
	feature   int
	threshold float64 // x <= threshold => left
	left      *dtNode
	right     *dtNode

	// leaf data
	n       int
	probas  []float64 // classification: class distribution
	value   float64   // regression: mean target
	members []int     // regression: training sample indices, with bootstrap repeats
}

// find walks x down to its leaf.
func (n *dtNode) find(x []float64) *dtNode {
	for !n.isLeaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

// splitResult holds the best split found for one feature.
type splitResult struct {
	gain      float64
	feature   int
	threshold float64
}

func noSplit() splitResult { return splitResult{feature: -1} }

// sortByFeature returns a copy of idx ordered by feature f.
func sortByFeature(X [][]float64, idx []int, f int) []int {
	order := slices.Clone(idx)
	slices.SortStableFunc(order, func(a, b int) int {
		switch va, vb := X[a][f], X[b][f]; {
		case va < vb:
			return -1
		case va > vb:
			return 1
		default:
			return 0
		}
	})
	return order
}

// threshold returns a cut between lo and hi that sends lo left and hi right.
func threshold(lo, hi float64) float64 {
	thr := lo + (hi-lo)/2
	if thr >= hi {
		thr = lo
	}
	return thr
}

func partition(X [][]float64, idx []int, f int, thr float64) (left, right []int) {
	for _, i := range idx {
		if X[i][f] <= thr {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return left, right
}
