package bnforest

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("bnforest: invalid config")

// Config holds every knob of one generation run.
type Config struct {
	// Forest contains the hyperparameters shared by all per-node forests.
	Forest ForestConfig `json:"forest" yaml:"forest"`

	// Sampling contains the output size and quantile grid settings.
	Sampling SamplingConfig `json:"sampling" yaml:"sampling"`

	// Seed makes a run reproducible. Nil draws a fresh seed per generator.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ForestConfig contains the tree hyperparameters.
type ForestConfig struct {
	MaxDepth       int `json:"max_depth" yaml:"max_depth" validate:"gte=1"`
	MinSamplesLeaf int `json:"min_samples_leaf" yaml:"min_samples_leaf" validate:"gte=1"`
	NTrees         int `json:"n_trees" yaml:"n_trees" validate:"gte=1"`
}

// SamplingConfig contains the sampler settings.
type SamplingConfig struct {
	NSamples   int `json:"n_samples" yaml:"n_samples" validate:"gte=1"`
	NQuantiles int `json:"n_quantiles" yaml:"n_quantiles" validate:"gte=2"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Forest: ForestConfig{
			MaxDepth:       5,
			MinSamplesLeaf: 6,
			NTrees:         100,
		},
		Sampling: SamplingConfig{
			NSamples:   1000,
			NQuantiles: 10,
		},
	}
}

var configValidate = validator.New()

// Validate checks every field against its bounds.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s must be %s %s", ErrInvalidConfig, verrs[0].Namespace(), verrs[0].Tag(), verrs[0].Param())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML config file on top of DefaultConfig and validates
// the result. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("bnforest: parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}
