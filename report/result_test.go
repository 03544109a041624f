package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResultStampsDateAndGitRevision(t *testing.T) {
	r := NewResult(map[string]string{"algorithm": "min-prob"})
	assert.NotEmpty(t, r.Date)
	assert.Equal(t, "min-prob", r.Tags["algorithm"])
	_, ok := r.Tags["git_revision"]
	assert.True(t, ok)
}

func TestResultWritePlainJSON(t *testing.T) {
	r := NewResult(map[string]string{"algorithm": "min-prob"})
	r.Tables.Clustering = []ClusteringRow{{VertexID: 0, Label: "A", CenterID: 0, CenterLabel: "A", Probability: 1.0}}
	r.Tables.Scores = ScoresTable{PMin: 1.0, AvgP: 1.0, NumClusters: 1}

	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")
	require.NoError(t, r.Write(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "min-prob", decoded.Tags["algorithm"])
	require.Len(t, decoded.Tables.Clustering, 1)
	assert.Equal(t, "A", decoded.Tables.Clustering[0].Label)
}

func TestResultMarshalOmitsOptionalTables(t *testing.T) {
	r := NewResult(nil)
	data, err := r.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "average-probability")
	assert.NotContains(t, string(data), "algorithm-info")
}
