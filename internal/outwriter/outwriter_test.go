package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

func TestNewOutWriter(t *testing.T) {
	assert.NotNil(t, NewOutWriter())
}

func TestOutWriterWriteRecommendationsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recs.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path, Precision: 2}

	ow := NewOutWriter()
	err := ow.WriteRecommendations(sampleRecommendations(), cfg, 10*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(content, &result))
	require.Len(t, result, 2)
	assert.Equal(t, "Excellent", result[0]["label"])
}

func TestOutWriterWriteRecommendationsParquetRequiresFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}

	ow := NewOutWriter()
	err := ow.WriteRecommendations(sampleRecommendations(), cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}

func TestOutWriterWriteLanguagesCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "langs.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path}

	ow := NewOutWriter()
	err := ow.WriteLanguages(sampleLanguageRecords(), cfg)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "spanish", rows[1][0])
}

func TestOutWriterWriteHistoryTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	cfg := &contract.Config{Output: schema.TextOut, OutputFile: path, Precision: 2, Width: 120}

	ow := NewOutWriter()
	err := ow.WriteHistory(sampleRunRecords(), cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "spanish")
	assert.Contains(t, string(content), "Showing 2 recorded runs")
}

func TestOutWriterWriteWeightsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path}

	ow := NewOutWriter()
	err := ow.WriteWeights(schema.DefaultDimensionWeights, cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var result map[schema.Dimension]float64
	require.NoError(t, json.Unmarshal(content, &result))
	assert.InDelta(t, 0.25, result[schema.DifficultyDimension], 1e-9)
	assert.InDelta(t, 0.10, result[schema.ExperienceDimension], 1e-9)
}
