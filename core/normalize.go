package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/langworld/langmatch/schema"
)

// Survey question identifiers. Every question is optional to the scorer;
// missing answers fall back to the domain midpoint or an empty set.
const (
	QuestionDifficulty = "difficulty_preference"
	QuestionInterests  = "cultural_interests"
	QuestionPractical  = "practical_focus"
	QuestionTime       = "time_commitment"
	QuestionKnown      = "known_languages"
)

// NoPreferenceOption is the sentinel option id meaning "no preference" on
// multi-select questions. It yields an empty, neutral set.
const NoPreferenceOption = "no_preference"

// midpointValue is the default for numeric scale questions left unanswered.
const midpointValue = 3

// difficultyOptionWeights maps difficulty option ids to their declared
// 1-5 weight. The weight drives the preference, not the display order.
var difficultyOptionWeights = map[string]int{
	"very_easy":   1,
	"easy":        2,
	"moderate":    3,
	"challenging": 4,
	"very_hard":   5,
}

// practicalOptionWeights maps practical-focus option ids to their weight.
var practicalOptionWeights = map[string]int{
	"hobby":     1,
	"curiosity": 2,
	"balanced":  3,
	"useful":    4,
	"career":    5,
}

// timeOptions maps time option ids, including the survey's legacy synonyms,
// to canonical commitments.
var timeOptions = map[string]schema.TimeCommitment{
	"casual":    schema.CasualCommitment,
	"light":     schema.CasualCommitment,
	"irregular": schema.CasualCommitment,
	"regular":   schema.RegularCommitment,
	"intensive": schema.IntensiveCommitment,
}

// NormalizeSurvey converts a raw questionId -> answer mapping into a
// canonical UserPreference. Single-choice answers are bare option ids;
// multi-select answers are JSON-encoded arrays of option ids. Missing or
// unknown answers default rather than fail; only structurally malformed
// multi-select payloads raise a ValidationError.
func NormalizeSurvey(answers map[string]string) (schema.UserPreference, error) {
	pref := schema.UserPreference{
		DifficultyPreference: midpointValue,
		PracticalFocus:       midpointValue,
		TimeCommitment:       schema.RegularCommitment,
		DimensionWeights:     schema.DefaultDimensionWeights,
	}

	if raw, ok := answers[QuestionDifficulty]; ok {
		if w, known := difficultyOptionWeights[raw]; known {
			pref.DifficultyPreference = w
		}
	}

	if raw, ok := answers[QuestionPractical]; ok {
		if w, known := practicalOptionWeights[raw]; known {
			pref.PracticalFocus = w
		}
	}

	if raw, ok := answers[QuestionTime]; ok {
		if tc, known := timeOptions[raw]; known {
			pref.TimeCommitment = tc
		}
	}

	interests, err := parseMultiSelect(QuestionInterests, answers[QuestionInterests])
	if err != nil {
		return schema.UserPreference{}, err
	}
	pref.CulturalInterests = interests

	known, err := parseMultiSelect(QuestionKnown, answers[QuestionKnown])
	if err != nil {
		return schema.UserPreference{}, err
	}
	pref.KnownLanguages = known

	return pref, nil
}

// parseMultiSelect decodes a multi-select answer. Empty answers and the
// no-preference sentinel yield an empty set. Anything else must be a JSON
// array of strings; other content is a structural error.
func parseMultiSelect(question, raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NoPreferenceOption {
		return nil, nil
	}

	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		// Distinguish "not JSON at all" from "JSON of the wrong shape"
		// for friendlier messages, same error kind either way.
		var probe any
		if json.Unmarshal([]byte(raw), &probe) != nil {
			return nil, schema.NewValidationError(question, fmt.Sprintf("answer %q is not valid JSON", raw))
		}
		return nil, schema.NewValidationError(question, "answer must be a JSON array of option ids")
	}

	out := make([]string, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" || opt == NoPreferenceOption {
			continue
		}
		out = append(out, opt)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
