package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

func sampleRecommendations() []schema.Recommendation {
	return []schema.Recommendation{
		{
			Language: schema.LanguageRecord{
				ID:       "spanish",
				Name:     "Spanish",
				Family:   "indo-european",
				Category: schema.PopularCategory,
				Speakers: schema.Speakers{Total: 548_000_000},
			},
			MatchScore: 87.25,
			Rank:       1,
			DimensionScores: map[schema.Dimension]float64{
				schema.DifficultyDimension: 0.8,
				schema.CulturalDimension:   0.7,
				schema.PracticalDimension:  0.95,
				schema.TimeDimension:       1.0,
				schema.ExperienceDimension: 0.5,
			},
			Reasons: []schema.Reason{
				{Type: "time_feasible", Description: "Fits your schedule", Score: 1.0, Weight: 0.15},
				{Type: "practical_value", Description: "Widely spoken", Score: 0.95, Weight: 0.25},
			},
			Pros:       []string{"One of the most spoken languages worldwide", "Rich learning resources"},
			Cons:       []string{},
			Confidence: schema.HighConfidence,
		},
		{
			Language: schema.LanguageRecord{
				ID:       "japanese",
				Name:     "Japanese",
				Family:   "japonic",
				Category: schema.CulturalCategory,
				Speakers: schema.Speakers{Total: 125_000_000},
			},
			MatchScore: 54.5,
			Rank:       2,
			DimensionScores: map[schema.Dimension]float64{
				schema.DifficultyDimension: 0.4,
				schema.CulturalDimension:   0.9,
				schema.PracticalDimension:  0.6,
				schema.TimeDimension:       0.3,
				schema.ExperienceDimension: 0.5,
			},
			Reasons:    []schema.Reason{{Type: "cultural_interest", Description: "Matches your interests", Score: 0.9, Weight: 0.25}},
			Pros:       []string{"Deep cultural tradition"},
			Cons:       []string{"Complex writing system", "Steep difficulty curve"},
			Confidence: schema.MediumConfidence,
		},
	}
}

func TestWriteRecommendationJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeRecommendationJSON(&buf, sampleRecommendations())
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, "Excellent", result[0]["label"])
	assert.Equal(t, 87.25, result[0]["matchScore"])
	assert.Equal(t, "Fair", result[1]["label"])

	lang, ok := result[0]["language"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "spanish", lang["id"])
}

func TestWriteRecommendationCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeRecommendationCSV(w, sampleRecommendations(), fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "language_id")
	assert.Contains(t, lines[0], "experience")

	assert.Contains(t, lines[1], "spanish")
	assert.Contains(t, lines[1], "87.25")
	assert.Contains(t, lines[1], "Excellent")
	assert.Contains(t, lines[1], "One of the most spoken languages worldwide|Rich learning resources")

	assert.Contains(t, lines[2], "japanese")
	assert.Contains(t, lines[2], "Complex writing system|Steep difficulty curve")
}

func TestWriteRecommendationCSVEmpty(t *testing.T) {
	fmtFloat, _ := createFormatters(2)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeRecommendationCSV(w, nil, fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "rank")
}

func TestWriteRecommendationTable(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	cfg := &contract.Config{Workers: 4, Precision: 2, Width: 120, StoreBackend: schema.SQLiteBackend}

	var buf bytes.Buffer
	err := writeRecommendationTable(sampleRecommendations(), cfg, fmtFloat, 25*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Spanish")
	assert.Contains(t, output, "Japanese")
	assert.Contains(t, output, "87.25")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "Showing top 2 languages")
	assert.Contains(t, output, "4 workers")
	assert.Contains(t, output, "sqlite")
	assert.NotContains(t, output, "time_feasible")
}

func TestWriteRecommendationTableDetailAndExplain(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	cfg := &contract.Config{Workers: 1, Width: 200, Detail: true, Explain: true, StoreBackend: schema.NoneBackend}

	var buf bytes.Buffer
	err := writeRecommendationTable(sampleRecommendations(), cfg, fmtFloat, time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "0.80")
	assert.Contains(t, output, "0.95")
	assert.Contains(t, output, "time_feasible > practical_value")
	assert.Contains(t, output, "cultural_interest")
}

func TestFormatTopReasons(t *testing.T) {
	tests := []struct {
		name     string
		reasons  []schema.Reason
		expected string
	}{
		{
			name:     "no reasons",
			reasons:  nil,
			expected: "Not applicable",
		},
		{
			name:     "single reason",
			reasons:  []schema.Reason{{Type: "difficulty_match"}},
			expected: "difficulty_match",
		},
		{
			name: "caps at three",
			reasons: []schema.Reason{
				{Type: "difficulty_match"},
				{Type: "cultural_interest"},
				{Type: "practical_value"},
				{Type: "time_feasible"},
			},
			expected: "difficulty_match > cultural_interest > practical_value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatTopReasons(tt.reasons))
		})
	}
}
