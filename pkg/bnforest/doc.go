// Package bnforest generates synthetic tabular data from a causal DAG.
//
// Every DAG node gets a conditional model of its column given its parents,
// trained on the real dataset:
//
//   - no parents: the empirical marginal, resampled with replacement
//   - binary column: a random forest classifier; rows are Bernoulli draws
//     from the predicted class-1 probability
//   - anything else: a quantile regression forest; rows are drawn by
//     inverting the predicted quantile function at a uniform variate
//
// Synthetic columns are then produced in topological order so that each
// node is conditioned on the already synthesized values of its parents.
//
// Basic usage:
//
//	dag := graph.FromTiers([][]string{{"age", "sex"}, {"bmi"}, {"outcome"}})
//	cfg := bnforest.DefaultConfig()
//	synthetic, err := bnforest.Generate(ctx, real, dag, cfg)
//
// Fit and Sample are exposed separately on Generator for callers that want
// to inspect the model bank between the two phases.
package bnforest
