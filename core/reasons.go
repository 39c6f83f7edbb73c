package core

import (
	"fmt"
	"sort"

	"github.com/langworld/langmatch/schema"
)

// Per-dimension significance thresholds. A dimension only produces a reason
// when its score clears the bar.
var reasonThresholds = map[schema.Dimension]float64{
	schema.DifficultyDimension: 0.7,
	schema.CulturalDimension:   0.6,
	schema.PracticalDimension:  0.7,
	schema.TimeDimension:       0.8,
	schema.ExperienceDimension: 0.7,
}

// Output caps for pros and cons.
const (
	maxPros = 4
	maxCons = 3
)

// fewResourcesThreshold marks a catalog entry as resource-poor.
const fewResourcesThreshold = 5

// buildReasons derives justification strings for every dimension that
// cleared its threshold, sorted by score descending. The attached weight is
// the dimension's normalized share of the aggregation.
func buildReasons(rec *schema.LanguageRecord, pref *schema.UserPreference, scores map[schema.Dimension]float64, weights map[schema.Dimension]float64) []schema.Reason {
	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}

	reasons := make([]schema.Reason, 0, len(scores))
	for _, d := range schema.SortedDimensions(weights) {
		score := scores[d]
		if score <= reasonThresholds[d] {
			continue
		}

		var weight float64
		if totalWeight > 0 {
			weight = weights[d] / totalWeight
		}

		reasons = append(reasons, schema.Reason{
			Type:        reasonType(d),
			Description: reasonText(d, rec, pref),
			Score:       score,
			Weight:      weight,
		})
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Score > reasons[j].Score
	})
	return reasons
}

func reasonType(d schema.Dimension) string {
	switch d {
	case schema.DifficultyDimension:
		return "difficulty_match"
	case schema.CulturalDimension:
		return "cultural_interest"
	case schema.PracticalDimension:
		return "practical_value"
	case schema.TimeDimension:
		return "time_feasible"
	default:
		return "experience_level"
	}
}

func reasonText(d schema.Dimension, rec *schema.LanguageRecord, pref *schema.UserPreference) string {
	switch d {
	case schema.DifficultyDimension:
		return fmt.Sprintf("Difficulty level (%d/5) closely matches your preference", rec.Difficulty)
	case schema.CulturalDimension:
		return fmt.Sprintf("Strong overlap with your cultural interests (%s)", schema.FormatInterests(pref.CulturalInterests, 2))
	case schema.PracticalDimension:
		return fmt.Sprintf("%s speakers worldwide give it high practical value", schema.FormatSpeakers(rec.Speakers.Total))
	case schema.TimeDimension:
		return fmt.Sprintf("Your %s study schedule comfortably covers its demands", pref.TimeCommitment)
	default:
		return "Your language-learning experience transfers well here"
	}
}

// buildPros derives up to maxPros advantages from attribute thresholds.
func buildPros(rec *schema.LanguageRecord) []string {
	var pros []string

	if rec.Difficulty <= 2 {
		pros = append(pros, "Low learning curve")
	}
	if rec.Speakers.Total > 50_000_000 {
		pros = append(pros, "Large global speaker community")
	}
	if rec.Category == schema.CulturalCategory && len(rec.CulturalTags) > 0 {
		pros = append(pros, "Deep cultural and artistic tradition")
	}
	if rec.Category == schema.BusinessCategory {
		pros = append(pros, "High value for business and careers")
	}
	if len(rec.Resources) > 10 {
		pros = append(pros, "Plentiful learning resources")
	}

	if len(pros) > maxPros {
		pros = pros[:maxPros]
	}
	return pros
}

// buildCons derives up to maxCons drawbacks from attribute thresholds.
func buildCons(rec *schema.LanguageRecord) []string {
	var cons []string

	if rec.Difficulty >= 4 {
		cons = append(cons, "High difficulty, expect a long time investment")
	}
	if !usesLatinScript(rec) {
		cons = append(cons, "Writing system differs substantially from the Latin alphabet")
	}
	if rec.Speakers.Total < 10_000_000 {
		cons = append(cons, "Relatively limited speaker reach")
	}
	if len(rec.Resources) < fewResourcesThreshold {
		cons = append(cons, "Fewer learning resources available")
	}

	if len(cons) > maxCons {
		cons = cons[:maxCons]
	}
	return cons
}

func usesLatinScript(rec *schema.LanguageRecord) bool {
	for _, ws := range rec.WritingSystem {
		if ws == "latin" {
			return true
		}
	}
	return false
}

// confidenceLevel grades a recommendation from its match score and the
// weighted strength of its reasons.
func confidenceLevel(matchScore float64, reasons []schema.Reason) schema.ConfidenceLevel {
	var reasonScore float64
	for _, r := range reasons {
		reasonScore += r.Score * r.Weight
	}

	overall := (matchScore/100)*0.7 + reasonScore*0.3
	switch {
	case overall >= 0.9:
		return schema.VeryHighConfidence
	case overall >= 0.75:
		return schema.HighConfidence
	case overall >= 0.6:
		return schema.MediumConfidence
	case overall >= 0.4:
		return schema.LowConfidence
	default:
		return schema.VeryLowConfidence
	}
}
