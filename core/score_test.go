package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langworld/langmatch/schema"
)

func TestScoreDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		preference int
		want       float64
	}{
		{"exact match", 3, 3, 1.0},
		{"one step apart", 4, 3, 0.8},
		{"two steps apart", 5, 3, 0.6},
		{"maximum gap", 5, 1, 0.2},
		{"easier than wanted scores the same as harder", 1, 3, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := schema.LanguageRecord{Difficulty: tt.difficulty}
			pref := schema.UserPreference{DifficultyPreference: tt.preference}
			assert.InDelta(t, tt.want, scoreDifficulty(&rec, &pref), 1e-9)
		})
	}
}

func TestScoreCultural(t *testing.T) {
	rec := schema.LanguageRecord{
		ID:           "japanese",
		CulturalTags: []string{"anime", "tea ceremony"},
		Regions:      []string{"japan"},
	}

	tests := []struct {
		name      string
		interests []string
		want      float64
	}{
		{"no interests is neutral", nil, 0.5},
		{"direct tag match", []string{"anime"}, 1.0},
		{"substring match", []string{"anime and manga"}, 1.0},
		{"region mapping match", []string{"east-asia"}, 1.0},
		{"no overlap", []string{"flamenco"}, 0.0},
		{"partial overlap", []string{"anime", "flamenco"}, 0.5},
		{"blank interest never matches", []string{"  "}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref := schema.UserPreference{CulturalInterests: tt.interests}
			assert.InDelta(t, tt.want, scoreCultural(&rec, &pref), 1e-9)
		})
	}
}

func TestScoreCulturalRegionMiss(t *testing.T) {
	// A mapped region interest must not leak onto languages outside it.
	rec := schema.LanguageRecord{ID: "swedish", CulturalTags: []string{"design"}, Regions: []string{"sweden"}}
	pref := schema.UserPreference{CulturalInterests: []string{"east-asia"}}
	assert.Zero(t, scoreCultural(&rec, &pref))
}

func TestScorePractical(t *testing.T) {
	tests := []struct {
		name     string
		speakers int64
		category schema.Category
		focus    int
		want     float64
	}{
		{"saturated business language, full focus", 500_000_000, schema.BusinessCategory, 5, 1.0},
		{"saturation caps the speaker component", 1_500_000_000, schema.BusinessCategory, 5, 1.0},
		{"niche language, full focus", 0, schema.NicheCategory, 5, 0.12},
		{"zero focus pins the score to neutral", 500_000_000, schema.BusinessCategory, 0, 0.5},
		{"midpoint focus lands halfway", 0, schema.NicheCategory, 3, 0.272},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := schema.LanguageRecord{
				Category: tt.category,
				Speakers: schema.Speakers{Total: tt.speakers},
			}
			pref := schema.UserPreference{PracticalFocus: tt.focus}
			assert.InDelta(t, tt.want, scorePractical(&rec, &pref), 1e-9)
		})
	}
}

func TestScorePracticalUnknownCategory(t *testing.T) {
	rec := schema.LanguageRecord{Category: "mystery"}
	pref := schema.UserPreference{PracticalFocus: 5}
	// Unknown categories contribute the neutral 0.5 component.
	assert.InDelta(t, 0.2, scorePractical(&rec, &pref), 1e-9)
}

func TestScoreTime(t *testing.T) {
	tests := []struct {
		name       string
		commitment schema.TimeCommitment
		difficulty int
		want       float64
	}{
		{"budget covers difficulty", schema.IntensiveCommitment, 5, 1.0},
		{"budget equals difficulty", schema.RegularCommitment, 3, 1.0},
		{"proportional shortfall", schema.RegularCommitment, 5, 0.6},
		{"floor kicks in", schema.CasualCommitment, 5, 0.3},
		{"casual on a moderate language", schema.CasualCommitment, 2, 0.5},
		{"unknown commitment defaults to regular", "weekends", 5, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := schema.LanguageRecord{Difficulty: tt.difficulty}
			pref := schema.UserPreference{TimeCommitment: tt.commitment}
			assert.InDelta(t, tt.want, scoreTime(&rec, &pref), 1e-9)
		})
	}
}

func TestScoreExperience(t *testing.T) {
	rec := schema.LanguageRecord{ID: "italian", Family: "romance"}

	tests := []struct {
		name     string
		known    []string
		families []string
		want     float64
	}{
		{"no history is neutral", nil, nil, 0.5},
		{"same family earns the flat bonus", []string{"spanish"}, []string{"romance"}, 0.8},
		{"unrelated languages add increments", []string{"japanese", "korean"}, []string{"japonic", "koreanic"}, 0.7},
		{"increments cap out", []string{"a", "b", "c", "d", "e"}, []string{"", "", "", "", ""}, 0.8},
		{"unresolved ids count toward the increment", []string{"klingon"}, []string{""}, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pref := schema.UserPreference{KnownLanguages: tt.known}
			assert.InDelta(t, tt.want, scoreExperience(&rec, &pref, tt.families), 1e-9)
		})
	}
}

func TestScoreDimensionsBounds(t *testing.T) {
	records := []schema.LanguageRecord{
		{ID: "a", Difficulty: 1, Category: schema.PopularCategory, Speakers: schema.Speakers{Total: 2_000_000_000}},
		{ID: "b", Difficulty: 5, Category: schema.NicheCategory, Family: "isolate"},
		{ID: "c", Difficulty: 3, Category: "unknown", CulturalTags: []string{"music"}},
	}
	prefs := []schema.UserPreference{
		{},
		{DifficultyPreference: 5, PracticalFocus: 5, TimeCommitment: schema.IntensiveCommitment},
		{DifficultyPreference: 1, CulturalInterests: []string{"music", "food"}, KnownLanguages: []string{"a"}},
	}

	for _, rec := range records {
		for _, pref := range prefs {
			scores := scoreDimensions(&rec, &pref, []string{"isolate"})
			require.Len(t, scores, len(schema.AllDimensions))
			for d, s := range scores {
				assert.GreaterOrEqual(t, s, 0.0, "dimension %s", d)
				assert.LessOrEqual(t, s, 1.0, "dimension %s", d)
			}
		}
	}
}

func TestAggregateScore(t *testing.T) {
	uniform := map[schema.Dimension]float64{
		schema.DifficultyDimension: 0.5,
		schema.CulturalDimension:   0.5,
		schema.PracticalDimension:  0.5,
		schema.TimeDimension:       0.5,
		schema.ExperienceDimension: 0.5,
	}

	t.Run("uniform scores hit the midpoint", func(t *testing.T) {
		got, err := aggregateScore(uniform, schema.DefaultDimensionWeights)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, got, 1e-9)
	})

	t.Run("weights normalize before aggregation", func(t *testing.T) {
		weights := map[schema.Dimension]float64{schema.DifficultyDimension: 7}
		got, err := aggregateScore(map[schema.Dimension]float64{schema.DifficultyDimension: 1}, weights)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, got, 1e-9)
	})

	t.Run("result is rounded to two decimals", func(t *testing.T) {
		weights := map[schema.Dimension]float64{
			schema.DifficultyDimension: 1,
			schema.CulturalDimension:   1,
			schema.PracticalDimension:  1,
		}
		scores := map[schema.Dimension]float64{
			schema.DifficultyDimension: 1,
			schema.CulturalDimension:   0,
			schema.PracticalDimension:  0,
		}
		got, err := aggregateScore(scores, weights)
		require.NoError(t, err)
		assert.InDelta(t, 33.33, got, 1e-9)
	})

	t.Run("empty weight table fails", func(t *testing.T) {
		_, err := aggregateScore(uniform, map[schema.Dimension]float64{})
		var cfgErr *schema.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
	})

	t.Run("all-zero weights fail", func(t *testing.T) {
		weights := map[schema.Dimension]float64{schema.DifficultyDimension: 0, schema.TimeDimension: 0}
		_, err := aggregateScore(uniform, weights)
		var cfgErr *schema.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
	})

	t.Run("negative weight fails", func(t *testing.T) {
		weights := map[schema.Dimension]float64{schema.DifficultyDimension: 1, schema.TimeDimension: -0.5}
		_, err := aggregateScore(uniform, weights)
		var cfgErr *schema.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
	})
}
