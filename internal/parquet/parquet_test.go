package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langworld/langmatch/schema"
)

func sampleRecommendations() []schema.Recommendation {
	return []schema.Recommendation{
		{
			Language:   schema.LanguageRecord{ID: "spanish", Name: "Spanish"},
			MatchScore: 87.5,
			Rank:       1,
			DimensionScores: map[schema.Dimension]float64{
				schema.DifficultyDimension: 0.9,
				schema.CulturalDimension:   0.8,
				schema.PracticalDimension:  1.0,
				schema.TimeDimension:       1.0,
				schema.ExperienceDimension: 0.5,
			},
			Confidence: schema.HighConfidence,
			Pros:       []string{"Low learning curve", "Large global speaker community"},
		},
		{
			Language:   schema.LanguageRecord{ID: "japanese", Name: "Japanese"},
			MatchScore: 64.2,
			Rank:       2,
			DimensionScores: map[schema.Dimension]float64{
				schema.DifficultyDimension: 0.4,
			},
			Confidence: schema.MediumConfidence,
			Cons:       []string{"High difficulty, expect a long time investment"},
		},
	}
}

func TestConvertRecommendations(t *testing.T) {
	rows := ConvertRecommendations(sampleRecommendations())
	require.Len(t, rows, 2)

	assert.Equal(t, int32(1), rows[0].Rank)
	assert.Equal(t, "spanish", rows[0].LanguageID)
	assert.InDelta(t, 87.5, rows[0].MatchScore, 1e-9)
	assert.Equal(t, "high", rows[0].Confidence)
	require.NotNil(t, rows[0].Pros)
	assert.Equal(t, "Low learning curve|Large global speaker community", *rows[0].Pros)
	assert.Nil(t, rows[0].Cons)

	assert.Nil(t, rows[1].Pros)
	require.NotNil(t, rows[1].Cons)
	// Missing dimension scores flatten to zero.
	assert.Zero(t, rows[1].ScoreCultural)
}

func TestWriteRecommendationsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "recs.parquet")

	rows := ConvertRecommendations(sampleRecommendations())
	require.NoError(t, WriteRecommendationsParquet(rows, outputPath))

	// Read the file back to verify the round trip.
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	require.NoError(t, err)

	got, err := parquet.Read[RecommendationRow](file, info.Size())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "spanish", got[0].LanguageID)
	assert.Equal(t, "japanese", got[1].LanguageID)
}

func TestWriteRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.parquet")

	pref := `{"difficultyPreference":3}`
	runs := ConvertRunRecords([]schema.RunRecord{
		{
			RunID:       "run-1",
			CreatedAt:   time.Now(),
			Preference:  pref,
			ResultCount: 10,
			TopLanguage: "spanish",
			TopScore:    87.5,
		},
		{RunID: "run-2", CreatedAt: time.Now(), ResultCount: 5, TopLanguage: "french", TopScore: 70},
	})
	require.NotNil(t, runs[0].Preference)
	assert.Nil(t, runs[1].Preference)

	require.NoError(t, WriteRunsParquet(runs, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
