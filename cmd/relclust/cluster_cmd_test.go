package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleGraph = "A\tB\t1.0\nB\tC\t1.0\nA\tC\t1.0\n"

func writeTriangle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "triangle.edges")
	require.NoError(t, os.WriteFile(path, []byte(triangleGraph), 0o644))
	return path
}

func runRelclust(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return "", err
}

func TestClusterMinProbTriangleSingleCenter(t *testing.T) {
	graphPath := writeTriangle(t)
	outPath := filepath.Join(t.TempDir(), "result.json")

	_, err := runRelclust(t, "cluster",
		"--graph", graphPath,
		"--target", "1",
		"--algorithm", "min-prob",
		"--output", outPath,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	tables := doc["tables"].(map[string]interface{})
	rows := tables["clustering"].([]interface{})
	assert.Len(t, rows, 3)
	scoresTable := tables["scores"].(map[string]interface{})
	assert.InDelta(t, 1.0, scoresTable["p_min"], 1e-9)
	assert.Equal(t, float64(1), scoresTable["num_clusters"])
}

func TestClusterTargetBelowComponentsFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disjoint.edges")
	require.NoError(t, os.WriteFile(path, []byte("A\tB\t1.0\nC\tD\t1.0\n"), 0o644))

	_, err := runRelclust(t, "cluster",
		"--graph", path,
		"--target", "1",
		"--algorithm", "min-prob",
	)
	require.Error(t, err)
}

func TestClusterAvgProbTriangle(t *testing.T) {
	graphPath := writeTriangle(t)
	outPath := filepath.Join(t.TempDir(), "result.json")

	_, err := runRelclust(t, "cluster",
		"--graph", graphPath,
		"--target", "1",
		"--algorithm", "avg-prob",
		"--output", outPath,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	tables := doc["tables"].(map[string]interface{})
	assert.Contains(t, tables, "average-probability")
}

func TestClusterConcurrentTriangle(t *testing.T) {
	graphPath := writeTriangle(t)
	outPath := filepath.Join(t.TempDir(), "result.json")

	_, err := runRelclust(t, "cluster",
		"--graph", graphPath,
		"--target", "1",
		"--algorithm", "concurrent",
		"--batch", "1",
		"--output", outPath,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	tables := doc["tables"].(map[string]interface{})
	rows := tables["clustering"].([]interface{})
	assert.Len(t, rows, 3)
}
