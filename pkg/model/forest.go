package model

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hgubler/BNForest/pkg/stats"
)

// ForestParams holds the hyperparameters shared by both forests.
// MaxDepth 0 means no depth limit; MaxFeatures 0 means SqrtFeatures of the
// feature count.
type ForestParams struct {
	NEstimators    int
	MaxDepth       int
	MinSamplesLeaf int
	MaxFeatures    int
	Bootstrap      bool
	RandomState    int64
}

// RandomForestOption functional config for the forests
type RandomForestOption func(*ForestParams)

func WithNEstimators(n int) RandomForestOption { return func(p *ForestParams) { p.NEstimators = n } }
func WithBootstrap(b bool) RandomForestOption  { return func(p *ForestParams) { p.Bootstrap = b } }
func WithForestMaxDepth(d int) RandomForestOption {
	return func(p *ForestParams) { p.MaxDepth = d }
}
func WithForestMinSamplesLeaf(n int) RandomForestOption {
	return func(p *ForestParams) { p.MinSamplesLeaf = n }
}
func WithForestMaxFeatures(k int) RandomForestOption {
	return func(p *ForestParams) { p.MaxFeatures = k }
}
func WithForestRandomState(seed int64) RandomForestOption {
	return func(p *ForestParams) { p.RandomState = seed }
}

func (p ForestParams) check(X [][]float64, ny int) (int, error) {
	if p.NEstimators < 1 {
		return 0, ErrNoEstimators
	}
	return checkTrain(X, ny, max(p.MinSamplesLeaf, 1))
}

func newForestParams(opts []RandomForestOption) ForestParams {
	p := ForestParams{
		NEstimators:    100,
		MinSamplesLeaf: 1,
		Bootstrap:      true,
		RandomState:    time.Now().UnixNano(),
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// treeParams derives the settings of tree i for data with nFeatures columns.
// Every tree gets its own seed so the forest is reproducible however the
// goroutines are scheduled.
func (p ForestParams) treeParams(i, nFeatures int) TreeParams {
	maxFeatures := p.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = SqrtFeatures(nFeatures)
	}
	return TreeParams{
		MaxDepth:       p.MaxDepth,
		MinSamplesLeaf: p.MinSamplesLeaf,
		MaxFeatures:    maxFeatures,
		RandomState:    p.RandomState + int64(i),
	}
}

// sampleIndices returns the rows tree i trains on: a bootstrap sample, or
// every row when bootstrapping is off.
func (p ForestParams) sampleIndices(i, n int) []int {
	if p.Bootstrap {
		return stats.Bootstrap(n, newRand(p.RandomState+int64(i), 1))
	}
	idx := make([]int, n)
	for j := range idx {
		idx[j] = j
	}
	return idx
}

// grow fits NEstimators trees concurrently. fit receives the tree index and
// its training rows and must only write to its own slot.
func (p ForestParams) grow(n int, fit func(i int, idx []int) error) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range p.NEstimators {
		g.Go(func() error {
			return fit(i, p.sampleIndices(i, n))
		})
	}
	return g.Wait()
}

// chunks runs work over [0, n) split into contiguous row ranges, one
// goroutine per range.
func chunks(n int, work func(start, end int) error) error {
	workers := runtime.GOMAXPROCS(0)
	size := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		g.Go(func() error { return work(start, end) })
	}
	return g.Wait()
}
