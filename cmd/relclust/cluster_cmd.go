package main

import (
	"os"

	"github.com/spf13/cobra"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Args:  cobra.NoArgs,
	Short: "Cluster an uncertain graph around k reliability centers",
	Long: `Loads an edge-list graph, runs the selected clustering engine
(min-prob, avg-prob or concurrent) under a Monte-Carlo possible-worlds
sampler, and writes a JSON result document.`,
	RunE: runCluster,
}

func init() {
	f := clusterCmd.Flags()
	f.String("graph", "", "path to the edge-list graph file (required)")
	f.Int("target", 0, "number of clusters k (required)")
	f.String("algorithm", string(AlgorithmMinProb), "clustering engine: min-prob, avg-prob or concurrent")

	f.Float64("epsilon", 0.1, "Monte-Carlo estimate tolerance")
	f.Float64("delta", 0.01, "Monte-Carlo failure probability")
	f.Float64("rate", 0.5, "guesser step/shrink rate (gamma)")
	f.Float64("theory-samples-fraction", 0.1, "sample-count scaling factor (alpha)")

	f.Int("batch", 1, "batched center-selection width h (avg-prob, concurrent)")
	f.Int("slack", 0, "min-prob slack fast-exit budget s")
	f.Int("depth", 0, "BFS sampler depth bound; 0 keeps the full connected-components sampler")
	f.Int("shrink-to", 0, "concurrent engine: shrink final clustering to this many centers (0 disables)")

	f.Uint64("seed", 0, "root RNG seed")

	f.Bool("with-acr", false, "compute the average cluster reliability score")
	f.Bool("with-avpr", false, "compute inner/outer average-vertex-pair-reliability scores")

	f.String("output", "", "result file path (default: stdout)")
	f.Bool("bzip2", false, "bzip2-compress the result file")
}

// loadConfig resolves a Config from flags, then layers a --config YAML
// file (if given) over the flag-derived defaults.
func loadConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()

	graphPath, _ := cmd.Flags().GetString("graph")
	target, _ := cmd.Flags().GetInt("target")
	algorithm, _ := cmd.Flags().GetString("algorithm")
	epsilon, _ := cmd.Flags().GetFloat64("epsilon")
	delta, _ := cmd.Flags().GetFloat64("delta")
	rate, _ := cmd.Flags().GetFloat64("rate")
	theoryFrac, _ := cmd.Flags().GetFloat64("theory-samples-fraction")
	batch, _ := cmd.Flags().GetInt("batch")
	slack, _ := cmd.Flags().GetInt("slack")
	depth, _ := cmd.Flags().GetInt("depth")
	shrinkTo, _ := cmd.Flags().GetInt("shrink-to")
	seed, _ := cmd.Flags().GetUint64("seed")
	withACR, _ := cmd.Flags().GetBool("with-acr")
	withAVPR, _ := cmd.Flags().GetBool("with-avpr")
	output, _ := cmd.Flags().GetString("output")
	bzip2, _ := cmd.Flags().GetBool("bzip2")

	opts := []Option{
		WithAlgorithm(Algorithm(algorithm)),
		WithProbing(epsilon, delta, rate, theoryFrac),
		WithBatch(batch),
		WithSlack(slack),
		WithDepth(depth),
		WithShrinkTo(shrinkTo),
		WithSeed(seed),
		WithScores(withACR, withAVPR),
		WithOutput(output, bzip2),
	}
	if graphPath != "" {
		opts = append(opts, WithGraphPath(graphPath))
	}
	if target >= 1 {
		opts = append(opts, WithTarget(target))
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfgFile != "" {
		data, err := os.ReadFile(cfgFile)
		if err != nil {
			return cfg, err
		}
		if err := cfg.ApplyYAML(data); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}
