package main

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Algorithm selects which clustering engine a run drives.
type Algorithm string

const (
	AlgorithmMinProb    Algorithm = "min-prob"
	AlgorithmAvgProb    Algorithm = "avg-prob"
	AlgorithmConcurrent Algorithm = "concurrent"
)

// Sentinel errors returned by config validation.
var (
	ErrGraphRequired    = errors.New("relclust: --graph is required")
	ErrTargetRequired   = errors.New("relclust: --target must be >= 1")
	ErrUnknownAlgorithm = errors.New("relclust: --algorithm must be one of min-prob, avg-prob, concurrent")
	ErrBadProbingParam  = errors.New("relclust: --epsilon, --delta, --rate and --theory-samples-fraction must be in (0,1)")
)

// Config is the fully-resolved set of parameters for one clustering run.
// It is built from CLI flags and optionally overridden by a YAML file
// (--config), applied as a layer of functional Options over flag-derived
// defaults.
type Config struct {
	GraphPath string
	Target    int
	Algorithm Algorithm

	Epsilon               float64
	Delta                 float64
	Rate                  float64
	TheorySamplesFraction float64

	Batch    int
	Slack    int
	Depth    int
	ShrinkTo int

	Seed uint64

	WithACR  bool
	WithAVPR bool

	OutputPath string
	Bzip2      bool
}

// Option mutates a Config. Constructors validate and panic on meaningless
// inputs, matching the retrieval pack's functional-options convention;
// Run-time (data-dependent) validation still happens in Config.Validate.
type Option func(*Config)

// DefaultConfig returns a Config with spec-documented probing defaults
// (epsilon 0.1, delta 0.01, rate 0.5, theory-samples-fraction 0.1) and no
// graph/target set.
func DefaultConfig() Config {
	return Config{
		Algorithm:             AlgorithmMinProb,
		Epsilon:               0.1,
		Delta:                 0.01,
		Rate:                  0.5,
		TheorySamplesFraction: 0.1,
		Batch:                 1,
		Slack:                 0,
		Depth:                 0,
	}
}

// WithGraphPath sets the edge-list file to cluster.
func WithGraphPath(path string) Option {
	if path == "" {
		panic("relclust: WithGraphPath(\"\")")
	}
	return func(c *Config) { c.GraphPath = path }
}

// WithTarget sets k, the number of clusters.
func WithTarget(k int) Option {
	if k < 1 {
		panic("relclust: WithTarget(k<1)")
	}
	return func(c *Config) { c.Target = k }
}

// WithAlgorithm selects the clustering engine.
func WithAlgorithm(a Algorithm) Option {
	return func(c *Config) { c.Algorithm = a }
}

// WithProbing overrides the Monte-Carlo reliability parameters.
func WithProbing(epsilon, delta, rate, theorySamplesFraction float64) Option {
	return func(c *Config) {
		c.Epsilon = epsilon
		c.Delta = delta
		c.Rate = rate
		c.TheorySamplesFraction = theorySamplesFraction
	}
}

// WithBatch sets h, the batched-center-selection width (avg-prob and
// concurrent engines).
func WithBatch(h int) Option {
	return func(c *Config) { c.Batch = h }
}

// WithSlack sets s, the min-prob slack fast-exit budget.
func WithSlack(s int) Option {
	return func(c *Config) { c.Slack = s }
}

// WithDepth switches the sampler to bounded-depth BFS with the given
// depth; 0 (default) keeps the full connected-components sampler.
func WithDepth(d int) Option {
	return func(c *Config) { c.Depth = d }
}

// WithShrinkTo enables the concurrent engine's optional shrink pass,
// reducing the finished clustering to this many super-centers; 0 disables
// it.
func WithShrinkTo(n int) Option {
	return func(c *Config) { c.ShrinkTo = n }
}

// WithSeed sets the run's root RNG seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithScores toggles the optional ACR / AVPR diagnostics.
func WithScores(acr, avpr bool) Option {
	return func(c *Config) {
		c.WithACR = acr
		c.WithAVPR = avpr
	}
}

// WithOutput sets the result file path and whether it is bzip2-compressed.
func WithOutput(path string, bzip2 bool) Option {
	return func(c *Config) {
		c.OutputPath = path
		c.Bzip2 = bzip2
	}
}

// yamlOverride is the subset of Config fields a --config file may set.
// Zero-value fields in the file are treated as "not overridden", matching
// the CLI's flag-default layering.
type yamlOverride struct {
	GraphPath             string  `yaml:"graph"`
	Target                int     `yaml:"target"`
	Algorithm             string  `yaml:"algorithm"`
	Epsilon               float64 `yaml:"epsilon"`
	Delta                 float64 `yaml:"delta"`
	Rate                  float64 `yaml:"rate"`
	TheorySamplesFraction float64 `yaml:"theory_samples_fraction"`
	Batch                 int     `yaml:"batch"`
	Slack                 int     `yaml:"slack"`
	Depth                 int     `yaml:"depth"`
	ShrinkTo              int     `yaml:"shrink_to"`
	Seed                  *uint64 `yaml:"seed"`
	WithACR               bool    `yaml:"with_acr"`
	WithAVPR              bool    `yaml:"with_avpr"`
	Output                string  `yaml:"output"`
	Bzip2                 bool    `yaml:"bzip2"`
}

// ApplyYAML merges a --config file's non-zero fields over cfg, in place.
func (cfg *Config) ApplyYAML(data []byte) error {
	var o yamlOverride
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("relclust: parsing config file: %w", err)
	}
	if o.GraphPath != "" {
		cfg.GraphPath = o.GraphPath
	}
	if o.Target != 0 {
		cfg.Target = o.Target
	}
	if o.Algorithm != "" {
		cfg.Algorithm = Algorithm(o.Algorithm)
	}
	if o.Epsilon != 0 {
		cfg.Epsilon = o.Epsilon
	}
	if o.Delta != 0 {
		cfg.Delta = o.Delta
	}
	if o.Rate != 0 {
		cfg.Rate = o.Rate
	}
	if o.TheorySamplesFraction != 0 {
		cfg.TheorySamplesFraction = o.TheorySamplesFraction
	}
	if o.Batch != 0 {
		cfg.Batch = o.Batch
	}
	if o.Slack != 0 {
		cfg.Slack = o.Slack
	}
	if o.Depth != 0 {
		cfg.Depth = o.Depth
	}
	if o.ShrinkTo != 0 {
		cfg.ShrinkTo = o.ShrinkTo
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.WithACR {
		cfg.WithACR = true
	}
	if o.WithAVPR {
		cfg.WithAVPR = true
	}
	if o.Output != "" {
		cfg.OutputPath = o.Output
	}
	if o.Bzip2 {
		cfg.Bzip2 = true
	}
	return nil
}

// Validate checks the fields spec.md §7 classifies as pre-run input
// rejection that do not require the graph to already be loaded.
func (cfg *Config) Validate() error {
	if cfg.GraphPath == "" {
		return ErrGraphRequired
	}
	if cfg.Target < 1 {
		return ErrTargetRequired
	}
	switch cfg.Algorithm {
	case AlgorithmMinProb, AlgorithmAvgProb, AlgorithmConcurrent:
	default:
		return ErrUnknownAlgorithm
	}
	inUnit := func(x float64) bool { return x > 0 && x < 1 }
	if !inUnit(cfg.Epsilon) || !inUnit(cfg.Delta) || !inUnit(cfg.Rate) || !inUnit(cfg.TheorySamplesFraction) {
		return ErrBadProbingParam
	}
	return nil
}
