package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime/debug"
	"time"
)

// ClusteringRow is one row of the "clustering" output table: a vertex's
// final assignment (spec §6).
type ClusteringRow struct {
	VertexID    int     `json:"id"`
	Label       string  `json:"label"`
	CenterID    int     `json:"center_id"`
	CenterLabel string  `json:"center_label"`
	Probability float64 `json:"probability"`
}

// PerformanceTable is the "performance" output table.
type PerformanceTable struct {
	ElapsedMS int64 `json:"elapsed_ms"`
}

// ScoresTable is the "scores" output table. ACR/InnerAVPR/OuterAVPR are nil
// unless --with-acr / --with-avpr were requested.
type ScoresTable struct {
	PMin        float64  `json:"p_min"`
	AvgP        float64  `json:"avg_p"`
	NumClusters int      `json:"num_clusters"`
	ACR         *float64 `json:"acr,omitempty"`
	InnerAVPR   *float64 `json:"inner_avpr,omitempty"`
	OuterAVPR   *float64 `json:"outer_avpr,omitempty"`
}

// AlgorithmInfoTable carries per-algorithm probing diagnostics: iteration
// counts, terminal threshold, used slack/rounds.
type AlgorithmInfoTable struct {
	Algorithm  string  `json:"algorithm"`
	Iterations int     `json:"iterations,omitempty"`
	UsedSlack  int     `json:"used_slack,omitempty"`
	Rounds     int     `json:"rounds,omitempty"`
	TerminalP  float64 `json:"terminal_p"`
}

// AverageProbabilityTable carries avg-prob-specific diagnostics.
type AverageProbabilityTable struct {
	BestScore float64 `json:"best_score"`
}

// Tables is the "tables" object of the result document.
type Tables struct {
	Clustering         []ClusteringRow          `json:"clustering"`
	Performance        PerformanceTable         `json:"performance"`
	Scores             ScoresTable              `json:"scores"`
	AverageProbability *AverageProbabilityTable `json:"average-probability,omitempty"`
	AlgorithmInfo      *AlgorithmInfoTable      `json:"algorithm-info,omitempty"`
}

// Result is the top-level experiment-result document (spec §6).
type Result struct {
	Date     string            `json:"date"`
	Tags     map[string]string `json:"tags"`
	Tables   Tables            `json:"tables"`
	Warnings []string          `json:"warnings,omitempty"`
}

// NewResult constructs a Result stamped with the current time and the
// build's git revision (added to tags as "git_revision", empty if the
// binary was not built with module/vcs information).
func NewResult(tags map[string]string) *Result {
	t := make(map[string]string, len(tags)+1)
	for k, v := range tags {
		t[k] = v
	}
	t["git_revision"] = gitRevision()
	return &Result{
		Date: time.Now().UTC().Format(time.RFC3339),
		Tags: t,
	}
}

func gitRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// Marshal serialises the result as indented JSON.
func (r *Result) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Write serialises the result to path, optionally piping it through the
// system bzip2 binary first. No example repo in the retrieval pack imports
// a bzip2-writing library (the standard library's compress/bzip2 is
// read-only), so --bzip2 shells out via os/exec instead of depending on
// one.
func (r *Result) Write(path string, useBzip2 bool) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("report: marshal result: %w", err)
	}
	if !useBzip2 {
		return os.WriteFile(path, data, 0o644)
	}
	if _, err := exec.LookPath("bzip2"); err != nil {
		return ErrBzip2Unavailable
	}
	cmd := exec.Command("bzip2", "-c")
	cmd.Stdin = bytes.NewReader(data)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("report: bzip2 compression failed: %w", err)
	}
	return os.WriteFile(path, out.Bytes(), 0o644)
}
