package bnforest

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/hgubler/BNForest/pkg/data"
	"github.com/hgubler/BNForest/pkg/graph"
)

// Generator fits per-node conditional models and samples synthetic rows.
// It keeps no state between calls other than its random source, so the
// model bank always travels explicitly from Fit to Sample.
//
// A Generator is not safe for concurrent use; its random source is shared.
type Generator struct {
	cfg    Config
	logger *slog.Logger
	rnd    *rand.Rand
}

// Option functional config for Generator
type Option func(*Generator)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRand sets the random source, overriding Config.Seed.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rnd = r }
}

// New validates cfg and returns a Generator.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, logger: slog.Default()}
	for _, o := range opts {
		o(g)
	}
	if g.rnd == nil {
		seed := rand.Uint64()
		if cfg.Seed != nil {
			seed = *cfg.Seed
		}
		g.rnd = rand.New(rand.NewPCG(seed, seed))
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate fits one conditional model per DAG node on ds, then samples
// Config.Sampling.NSamples synthetic rows with the same columns as ds.
// Either the whole call succeeds or no data is returned.
func (g *Generator) Generate(ctx context.Context, ds *data.Dataset, dag *graph.DAG) (*data.Dataset, error) {
	run := *g
	run.logger = g.logger.With("run_id", uuid.NewString())

	if err := checkInputs(ds, dag); err != nil {
		return nil, err
	}
	order, err := dag.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("bnforest: %w", err)
	}

	start := time.Now()
	run.logger.Info("fitting conditional models", "nodes", len(order), "rows", ds.Len())
	bank, err := run.Fit(ctx, ds, dag, order)
	if err != nil {
		return nil, err
	}
	run.logger.Info("fitted conditional models", "duration", time.Since(start))

	start = time.Now()
	out, err := run.Sample(ctx, ds, order, bank)
	if err != nil {
		return nil, err
	}
	run.logger.Info("sampled synthetic data", "rows", out.Len(), "duration", time.Since(start))
	return out, nil
}

// Generate is a one-shot helper: New(cfg) followed by Generate.
func Generate(ctx context.Context, ds *data.Dataset, dag *graph.DAG, cfg Config, opts ...Option) (*data.Dataset, error) {
	g, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, ds, dag)
}

// checkInputs requires a non-empty dataset whose columns are exactly the
// DAG's nodes.
func checkInputs(ds *data.Dataset, dag *graph.DAG) error {
	if ds == nil || ds.Width() == 0 || ds.Len() == 0 {
		return ErrEmptyDataset
	}
	if dag == nil {
		return ErrNilDAG
	}
	for _, node := range dag.Nodes() {
		if !ds.Has(node) {
			return fmt.Errorf("%w: DAG node %q", ErrUnknownColumn, node)
		}
	}
	for _, col := range ds.Names() {
		if !dag.HasNode(col) {
			return fmt.Errorf("%w: %q", ErrColumnNotInDAG, col)
		}
	}
	return nil
}
