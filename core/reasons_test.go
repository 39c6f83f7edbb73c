package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langworld/langmatch/schema"
)

func TestBuildReasons(t *testing.T) {
	rec := schema.LanguageRecord{
		ID:         "spanish",
		Name:       "Spanish",
		Difficulty: 2,
		Speakers:   schema.Speakers{Total: 550_000_000},
	}
	pref := schema.UserPreference{
		CulturalInterests: []string{"literature", "food"},
		TimeCommitment:    schema.RegularCommitment,
	}

	t.Run("only dimensions above threshold appear", func(t *testing.T) {
		scores := map[schema.Dimension]float64{
			schema.DifficultyDimension: 0.9,
			schema.CulturalDimension:   0.5, // below 0.6
			schema.PracticalDimension:  0.7, // at the bar, excluded
			schema.TimeDimension:       1.0,
			schema.ExperienceDimension: 0.75,
		}

		reasons := buildReasons(&rec, &pref, scores, schema.DefaultDimensionWeights)
		require.Len(t, reasons, 3)

		assert.Equal(t, "time_feasible", reasons[0].Type)
		assert.Equal(t, "difficulty_match", reasons[1].Type)
		assert.Equal(t, "experience_level", reasons[2].Type)
	})

	t.Run("sorted by score descending", func(t *testing.T) {
		scores := map[schema.Dimension]float64{
			schema.DifficultyDimension: 0.8,
			schema.CulturalDimension:   0.95,
			schema.PracticalDimension:  0.85,
			schema.TimeDimension:       0.9,
			schema.ExperienceDimension: 0.8,
		}

		reasons := buildReasons(&rec, &pref, scores, schema.DefaultDimensionWeights)
		require.Len(t, reasons, 5)
		for i := 1; i < len(reasons); i++ {
			assert.GreaterOrEqual(t, reasons[i-1].Score, reasons[i].Score)
		}
	})

	t.Run("weights carry the normalized share", func(t *testing.T) {
		scores := map[schema.Dimension]float64{schema.DifficultyDimension: 1.0}
		weights := map[schema.Dimension]float64{
			schema.DifficultyDimension: 3,
			schema.CulturalDimension:   1,
		}

		reasons := buildReasons(&rec, &pref, scores, weights)
		require.Len(t, reasons, 1)
		assert.InDelta(t, 0.75, reasons[0].Weight, 1e-9)
	})
}

func TestBuildPros(t *testing.T) {
	tests := []struct {
		name string
		rec  schema.LanguageRecord
		want []string
	}{
		{
			name: "no qualifying attributes",
			rec:  schema.LanguageRecord{Difficulty: 3, Speakers: schema.Speakers{Total: 20_000_000}},
			want: nil,
		},
		{
			name: "easy and widely spoken",
			rec: schema.LanguageRecord{
				Difficulty: 2,
				Speakers:   schema.Speakers{Total: 550_000_000},
			},
			want: []string{"Low learning curve", "Large global speaker community"},
		},
		{
			name: "business language with deep resources",
			rec: schema.LanguageRecord{
				Difficulty: 3,
				Category:   schema.BusinessCategory,
				Speakers:   schema.Speakers{Total: 100_000_000},
				Resources:  make([]schema.Resource, 11),
			},
			want: []string{
				"Large global speaker community",
				"High value for business and careers",
				"Plentiful learning resources",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildPros(&tt.rec))
			assert.LessOrEqual(t, len(buildPros(&tt.rec)), maxPros)
		})
	}
}

func TestBuildCons(t *testing.T) {
	t.Run("everything wrong caps at three", func(t *testing.T) {
		rec := schema.LanguageRecord{
			Difficulty:    5,
			WritingSystem: []string{"cyrillic"},
			Speakers:      schema.Speakers{Total: 5_000_000},
			Resources:     nil,
		}
		cons := buildCons(&rec)
		assert.Len(t, cons, maxCons)
	})

	t.Run("latin script raises no script con", func(t *testing.T) {
		rec := schema.LanguageRecord{
			Difficulty:    2,
			WritingSystem: []string{"latin"},
			Speakers:      schema.Speakers{Total: 500_000_000},
			Resources:     make([]schema.Resource, 8),
		}
		assert.Empty(t, buildCons(&rec))
	})
}

func TestConfidenceLevel(t *testing.T) {
	strong := []schema.Reason{{Score: 1.0, Weight: 1.0}}

	tests := []struct {
		name       string
		matchScore float64
		reasons    []schema.Reason
		want       schema.ConfidenceLevel
	}{
		{"perfect score with strong reasons", 100, strong, schema.VeryHighConfidence},
		{"perfect score without reasons", 100, nil, schema.MediumConfidence},
		{"high score with strong reasons", 80, strong, schema.HighConfidence},
		{"low-mid score", 60, nil, schema.LowConfidence},
		{"weak score", 50, nil, schema.VeryLowConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, confidenceLevel(tt.matchScore, tt.reasons))
		})
	}
}

func TestBuildLearningPath(t *testing.T) {
	tests := []struct {
		name       string
		commitment schema.TimeCommitment
		wantHours  int
	}{
		{"casual schedule", schema.CasualCommitment, 2},
		{"regular schedule", schema.RegularCommitment, 4},
		{"intensive schedule", schema.IntensiveCommitment, 8},
		{"unknown falls back to regular", "someday", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref := schema.UserPreference{TimeCommitment: tt.commitment}
			path := buildLearningPath(&pref)
			assert.Equal(t, tt.wantHours, path.Schedule.HoursPerWeek)
			require.Len(t, path.Phases, 3)
			assert.Equal(t, "Foundations", path.Phases[0].Name)
		})
	}
}
