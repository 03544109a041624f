package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-ugraph/relclust/cache"
	"github.com/go-ugraph/relclust/cluster"
	"github.com/go-ugraph/relclust/graph"
	"github.com/go-ugraph/relclust/guesser"
	"github.com/go-ugraph/relclust/report"
	"github.com/go-ugraph/relclust/sampler"
	"github.com/go-ugraph/relclust/scores"
	"github.com/spf13/cobra"
)

// p_low floors below which a falling threshold is an unreachable-clustering
// logic error (spec §7), one per engine; ported from the constants each
// original driver hardcoded (core/mcpc-run.cpp, core/average_probability.cpp
// use 0.0001; core/concurrent.cpp uses 0.001 — the concurrent engine halves
// p_curr rather than bisecting it, so it needs a coarser floor).
const (
	minProbPLow    = 0.0001
	avgProbPLow    = 0.0001
	concurrentPLow = 0.001
)

func runCluster(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := report.LevelInfo
	if trace {
		level = report.LevelTrace
	} else if debug {
		level = report.LevelDebug
	}
	logger := report.NewConsoleLogger(level)

	f, err := os.Open(cfg.GraphPath)
	if err != nil {
		return fmt.Errorf("relclust: opening graph file: %w", err)
	}
	defer f.Close()

	g, err := graph.Load(f)
	if err != nil {
		return fmt.Errorf("relclust: loading graph: %w", err)
	}
	logger.Info("graph loaded", "vertices", g.NumVertices(), "edges", g.NumEdges())

	if nc := countConnectedComponents(g); cfg.Target < nc {
		return fmt.Errorf("%w: target %d, components %d", cluster.ErrTargetTooSmall, cfg.Target, nc)
	}

	var samp sampler.Sampler
	if cfg.Depth > 0 {
		samp, err = sampler.NewBFSSampler(g, cfg.Seed, cfg.Depth, cfg.Epsilon, cfg.Delta, cfg.TheorySamplesFraction)
	} else {
		samp, err = sampler.NewCCSampler(g, cfg.Seed, cfg.Epsilon, cfg.Delta, cfg.TheorySamplesFraction)
	}
	if err != nil {
		return fmt.Errorf("relclust: constructing sampler: %w", err)
	}
	ch := cache.New(0)

	start := time.Now()

	var result *cluster.Clustering
	tables := report.Tables{}

	switch cfg.Algorithm {
	case AlgorithmMinProb:
		gs := guesser.NewExpBisect(cfg.Rate, minProbPLow)
		engine := cluster.NewMinProbEngine(g, samp, ch, cfg.Target, cfg.Slack, cluster.WithRandomizedTieBreak(cfg.Seed))
		res, err := engine.Run(gs)
		if err != nil {
			return fmt.Errorf("relclust: min-prob run: %w", err)
		}
		result = res.Clustering
		tables.AlgorithmInfo = &report.AlgorithmInfoTable{
			Algorithm:  string(cfg.Algorithm),
			Iterations: res.Iterations,
			UsedSlack:  res.UsedSlack,
			TerminalP:  res.TerminalP,
		}
		for _, w := range res.Warnings {
			logger.Warn("clustering warning", "message", w.Message)
		}

	case AlgorithmAvgProb:
		gs := guesser.NewScoreGuesser(guesser.NewExpBisect(cfg.Rate, avgProbPLow))
		engine := cluster.NewAvgProbEngine(g, samp, ch, cfg.Target, cfg.Batch, cfg.Seed)
		res, err := engine.Run(gs)
		if err != nil {
			return fmt.Errorf("relclust: avg-prob run: %w", err)
		}
		result = res.Clustering
		tables.AlgorithmInfo = &report.AlgorithmInfoTable{
			Algorithm:  string(cfg.Algorithm),
			Iterations: res.Iterations,
			TerminalP:  res.TerminalP,
		}
		tables.AverageProbability = &report.AverageProbabilityTable{BestScore: res.BestScore}
		for _, w := range res.Warnings {
			logger.Warn("clustering warning", "message", w.Message)
		}

	case AlgorithmConcurrent:
		engine := cluster.NewConcurrentEngine(g, samp, ch, cfg.Batch, concurrentPLow, cfg.Seed)
		res, err := engine.Run(1.0)
		if err != nil {
			return fmt.Errorf("relclust: concurrent run: %w", err)
		}
		if cfg.ShrinkTo > 0 {
			engine.Shrink(res.Clustering, cfg.ShrinkTo)
		}
		result = res.Clustering
		tables.AlgorithmInfo = &report.AlgorithmInfoTable{
			Algorithm: string(cfg.Algorithm),
			Rounds:    res.Rounds,
			TerminalP: res.TerminalP,
		}
	}

	elapsed := time.Since(start)
	tables.Performance = report.PerformanceTable{ElapsedMS: elapsed.Milliseconds()}

	tables.Clustering = make([]report.ClusteringRow, result.NumVertices())
	for v := 0; v < result.NumVertices(); v++ {
		centerID, _ := result.CenterOf(v)
		tables.Clustering[v] = report.ClusteringRow{
			VertexID:    v,
			Label:       g.Label(v),
			CenterID:    centerID,
			CenterLabel: g.Label(centerID),
			Probability: result.Probability(v),
		}
	}

	basic := scores.ComputeBasic(result)
	tables.Scores = report.ScoresTable{
		PMin:        basic.PMin,
		AvgP:        basic.AvgP,
		NumClusters: basic.NumClusters,
	}
	if cfg.WithACR {
		acr := scores.ComputeACR(result, samp)
		tables.Scores.ACR = &acr
	}
	if cfg.WithAVPR {
		inner, outer, err := scores.ComputeAVPR(result, samp)
		if err != nil {
			logger.Warn("avpr unsupported for this sampler", "error", err.Error())
		} else {
			tables.Scores.InnerAVPR = &inner
			tables.Scores.OuterAVPR = &outer
		}
	}

	res := report.NewResult(resolvedTags(cfg))
	res.Tables = tables

	if cfg.OutputPath == "" {
		data, err := res.Marshal()
		if err != nil {
			return fmt.Errorf("relclust: marshalling result: %w", err)
		}
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
	} else if err := res.Write(cfg.OutputPath, cfg.Bzip2); err != nil {
		return fmt.Errorf("relclust: writing result: %w", err)
	}
	logger.Info("run complete", "output", cfg.OutputPath, "elapsed_ms", elapsed.Milliseconds())
	return nil
}

// resolvedTags records every configured parameter in the result's tags map
// (spec §6: "tags ... every configured parameter plus git revision").
func resolvedTags(cfg Config) map[string]string {
	return map[string]string{
		"graph":                   cfg.GraphPath,
		"target":                  fmt.Sprint(cfg.Target),
		"algorithm":               string(cfg.Algorithm),
		"epsilon":                 fmt.Sprint(cfg.Epsilon),
		"delta":                   fmt.Sprint(cfg.Delta),
		"rate":                    fmt.Sprint(cfg.Rate),
		"theory_samples_fraction": fmt.Sprint(cfg.TheorySamplesFraction),
		"batch":                   fmt.Sprint(cfg.Batch),
		"slack":                   fmt.Sprint(cfg.Slack),
		"depth":                   fmt.Sprint(cfg.Depth),
		"shrink_to":               fmt.Sprint(cfg.ShrinkTo),
		"seed":                    fmt.Sprint(cfg.Seed),
		"with_acr":                fmt.Sprint(cfg.WithACR),
		"with_avpr":               fmt.Sprint(cfg.WithAVPR),
		"output":                  cfg.OutputPath,
		"bzip2":                   fmt.Sprint(cfg.Bzip2),
	}
}
