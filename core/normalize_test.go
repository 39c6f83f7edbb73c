package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langworld/langmatch/schema"
)

func TestNormalizeSurveyDefaults(t *testing.T) {
	pref, err := NormalizeSurvey(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, midpointValue, pref.DifficultyPreference)
	assert.Equal(t, midpointValue, pref.PracticalFocus)
	assert.Equal(t, schema.RegularCommitment, pref.TimeCommitment)
	assert.Empty(t, pref.CulturalInterests)
	assert.Empty(t, pref.KnownLanguages)
	assert.Equal(t, schema.DefaultDimensionWeights, pref.DimensionWeights)
}

func TestNormalizeSurveyFull(t *testing.T) {
	answers := map[string]string{
		QuestionDifficulty: "challenging",
		QuestionPractical:  "career",
		QuestionTime:       "intensive",
		QuestionInterests:  `["anime","east-asia"]`,
		QuestionKnown:      `["spanish","french"]`,
	}

	pref, err := NormalizeSurvey(answers)
	require.NoError(t, err)

	assert.Equal(t, 4, pref.DifficultyPreference)
	assert.Equal(t, 5, pref.PracticalFocus)
	assert.Equal(t, schema.IntensiveCommitment, pref.TimeCommitment)
	assert.Equal(t, []string{"anime", "east-asia"}, pref.CulturalInterests)
	assert.Equal(t, []string{"spanish", "french"}, pref.KnownLanguages)
}

func TestNormalizeSurveyTimeSynonyms(t *testing.T) {
	tests := []struct {
		option string
		want   schema.TimeCommitment
	}{
		{"casual", schema.CasualCommitment},
		{"light", schema.CasualCommitment},
		{"irregular", schema.CasualCommitment},
		{"regular", schema.RegularCommitment},
		{"intensive", schema.IntensiveCommitment},
		{"whenever", schema.RegularCommitment}, // unknown option keeps the default
	}

	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			pref, err := NormalizeSurvey(map[string]string{QuestionTime: tt.option})
			require.NoError(t, err)
			assert.Equal(t, tt.want, pref.TimeCommitment)
		})
	}
}

func TestNormalizeSurveyUnknownOptions(t *testing.T) {
	answers := map[string]string{
		QuestionDifficulty: "impossible",
		QuestionPractical:  "world_domination",
	}

	pref, err := NormalizeSurvey(answers)
	require.NoError(t, err)

	// Unknown single-choice options fall back instead of failing.
	assert.Equal(t, midpointValue, pref.DifficultyPreference)
	assert.Equal(t, midpointValue, pref.PracticalFocus)
}

func TestParseMultiSelect(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"empty answer", "", nil, false},
		{"no-preference sentinel", "no_preference", nil, false},
		{"empty array", `[]`, nil, false},
		{"plain options", `["anime","history"]`, []string{"anime", "history"}, false},
		{"sentinel and blanks filtered out", `["anime","no_preference","  ",""]`, []string{"anime"}, false},
		{"only filtered entries", `["no_preference"]`, nil, false},
		{"not JSON at all", "anime,history", nil, true},
		{"JSON of the wrong shape", `{"anime":true}`, nil, true},
		{"array of the wrong element type", `[1,2,3]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMultiSelect(QuestionInterests, tt.raw)
			if tt.wantErr {
				var valErr *schema.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, QuestionInterests, valErr.Question)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSurveyMalformedMultiSelect(t *testing.T) {
	_, err := NormalizeSurvey(map[string]string{QuestionKnown: "spanish"})
	var valErr *schema.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, QuestionKnown, valErr.Question)
}

func FuzzParseMultiSelect(f *testing.F) {
	f.Add("")
	f.Add("no_preference")
	f.Add(`["anime","history"]`)
	f.Add(`["no_preference"]`)
	f.Add(`{"anime":true}`)
	f.Add("not json")
	f.Add(`[1,2]`)
	f.Add(`[""]`)

	f.Fuzz(func(t *testing.T, raw string) {
		got, err := parseMultiSelect(QuestionInterests, raw)
		if err != nil {
			var valErr *schema.ValidationError
			assert.True(t, errors.As(err, &valErr))
			assert.Nil(t, got)
			return
		}
		for _, opt := range got {
			assert.NotEmpty(t, opt)
			assert.NotEqual(t, NoPreferenceOption, opt)
		}
	})
}
