package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/langworld/langmatch/schema"
)

// Tunable scoring constants.
const (
	// speakerSaturation is the total-speaker count at which the speaker
	// component of the practical score saturates at 1.0.
	speakerSaturation = 100_000_000

	// timeFloor is the minimum time score when the weekly budget falls
	// short of the language's difficulty.
	timeFloor = 0.3

	// neutralScore is returned when a dimension has no evidence either way
	// (no stated interests, no language history).
	neutralScore = 0.5

	// experiencePerLanguage is the bonus per known language on top of the
	// neutral base, capped at experienceCap.
	experiencePerLanguage = 0.1
	experienceCap         = 0.3

	// familyBonus is the flat score when a known language shares the
	// target's family.
	familyBonus = 0.8
)

// categoryScores maps catalog categories to their practical-value component.
var categoryScores = map[schema.Category]float64{
	schema.BusinessCategory: 1.0,
	schema.PopularCategory:  0.9,
	schema.CulturalCategory: 0.6,
	schema.NicheCategory:    0.3,
	schema.EmergingCategory: 0.5,
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// scoreDifficulty measures how close the language's base difficulty sits to
// the user's stated tolerance. Exact match scores 1.0, a four-point gap 0.0.
// The gap is symmetric: easier-than-expected earns no bonus.
func scoreDifficulty(rec *schema.LanguageRecord, pref *schema.UserPreference) float64 {
	diff := math.Abs(float64(rec.Difficulty - pref.DifficultyPreference))
	return math.Max(0, (5-diff)/5)
}

// scoreCultural measures overlap between the user's stated interests and the
// language's cultural footprint. An empty interest set is neutral, not a
// mismatch. Region interests resolve through an explicit region-to-language
// table; anything else falls back to bidirectional substring matching against
// the record's tag bag.
func scoreCultural(rec *schema.LanguageRecord, pref *schema.UserPreference) float64 {
	if len(pref.CulturalInterests) == 0 {
		return neutralScore
	}

	bag := rec.TagBag()
	matched := 0
	for _, interest := range pref.CulturalInterests {
		if interestMatches(rec, interest, bag) {
			matched++
		}
	}
	return clamp01(float64(matched) / float64(len(pref.CulturalInterests)))
}

// interestMatches reports whether a single interest matches the record, first
// through the region mapping and then through substring containment in either
// direction, to tolerate partial and compound phrasing.
func interestMatches(rec *schema.LanguageRecord, interest string, bag []string) bool {
	key := strings.ToLower(strings.TrimSpace(interest))
	if key == "" {
		return false
	}

	if ids, ok := regionLanguages[key]; ok {
		for _, id := range ids {
			if id == rec.ID {
				return true
			}
		}
		// A mapped region can still match through tags, e.g. a language
		// tagged with the region slug itself.
	}

	for _, tag := range bag {
		if strings.Contains(tag, key) || strings.Contains(key, tag) {
			return true
		}
	}
	return false
}

// scorePractical blends speaker reach with category value, then pulls the
// result toward neutral in proportion to how little the user cares about
// practicality. A user with no practical focus sees every language near 0.5
// here regardless of its actual popularity.
func scorePractical(rec *schema.LanguageRecord, pref *schema.UserPreference) float64 {
	speakerScore := math.Min(float64(rec.Speakers.Total)/float64(speakerSaturation), 1)

	categoryScore, ok := categoryScores[rec.Category]
	if !ok {
		categoryScore = 0.5
	}

	practical := speakerScore*0.6 + categoryScore*0.4

	focus := float64(pref.PracticalFocus) / 5
	return practical*focus + neutralScore*(1-focus)
}

// scoreTime compares the user's weekly budget to the language's difficulty.
// Sufficient time scores 1.0; a shortfall scores proportionally with a floor
// so that ambitious picks are penalized but never zeroed out.
func scoreTime(rec *schema.LanguageRecord, pref *schema.UserPreference) float64 {
	budget, ok := schema.TimeBudget[pref.TimeCommitment]
	if !ok {
		budget = schema.TimeBudget[schema.RegularCommitment]
	}

	if budget >= rec.Difficulty {
		return 1
	}
	return math.Max(timeFloor, float64(budget)/float64(rec.Difficulty))
}

// scoreExperience rewards prior language-learning history. Without any known
// languages the score is neutral. A known language from the same family as
// the target earns a flat bonus; otherwise each known language adds a small
// increment above neutral, capped.
func scoreExperience(rec *schema.LanguageRecord, pref *schema.UserPreference, knownFamilies []string) float64 {
	if len(pref.KnownLanguages) == 0 {
		return neutralScore
	}

	if rec.Family != "" {
		for _, fam := range knownFamilies {
			if fam != "" && fam == rec.Family {
				return familyBonus
			}
		}
	}

	bonus := math.Min(float64(len(pref.KnownLanguages))*experiencePerLanguage, experienceCap)
	return neutralScore + bonus
}

// scoreDimensions computes all five dimension scores for one record.
// knownFamilies carries the families of the user's known languages, resolved
// through the catalog by the caller.
func scoreDimensions(rec *schema.LanguageRecord, pref *schema.UserPreference, knownFamilies []string) map[schema.Dimension]float64 {
	return map[schema.Dimension]float64{
		schema.DifficultyDimension: scoreDifficulty(rec, pref),
		schema.CulturalDimension:   scoreCultural(rec, pref),
		schema.PracticalDimension:  scorePractical(rec, pref),
		schema.TimeDimension:       scoreTime(rec, pref),
		schema.ExperienceDimension: scoreExperience(rec, pref, knownFamilies),
	}
}

// aggregateScore combines dimension scores into a single 0-100 match score
// using normalized weights, rounded to two decimals. A zero or negative total
// weight is a caller bug and fails before any division happens.
func aggregateScore(scores map[schema.Dimension]float64, weights map[schema.Dimension]float64) (float64, error) {
	if len(weights) == 0 {
		return 0, schema.NewConfigurationError("dimension weight table is empty")
	}

	var totalWeight float64
	for _, d := range schema.SortedDimensions(weights) {
		w := weights[d]
		if w < 0 {
			return 0, schema.NewConfigurationError(fmt.Sprintf("dimension %q has negative weight %v", d, w))
		}
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0, schema.NewConfigurationError("dimension weights sum to zero")
	}

	var total float64
	for _, d := range schema.SortedDimensions(weights) {
		total += scores[d] * (weights[d] / totalWeight)
	}
	return round2(total * 100), nil
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
