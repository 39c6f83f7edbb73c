package core

import (
	"sort"
	"strings"

	"github.com/langworld/langmatch/schema"
)

// SearchFilter narrows the catalog for browsing commands. Zero values mean
// "no constraint" for every field.
type SearchFilter struct {
	Keyword       string
	Category      schema.Category
	MaxDifficulty int
	MinSpeakers   int64
	PopularOnly   bool
}

// SearchCatalog returns the catalog entries matching every constraint in the
// filter, sorted by total speakers descending with catalog order breaking
// ties. The input slice is never modified.
func SearchCatalog(records []schema.LanguageRecord, filter SearchFilter) []schema.LanguageRecord {
	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))

	out := make([]schema.LanguageRecord, 0, len(records))
	for _, rec := range records {
		if filter.Category != "" && rec.Category != filter.Category {
			continue
		}
		if filter.PopularOnly && rec.Category != schema.PopularCategory {
			continue
		}
		if filter.MaxDifficulty > 0 && rec.Difficulty > filter.MaxDifficulty {
			continue
		}
		if filter.MinSpeakers > 0 && rec.Speakers.Total < filter.MinSpeakers {
			continue
		}
		if keyword != "" && !matchesKeyword(&rec, keyword) {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Speakers.Total > out[j].Speakers.Total
	})
	return out
}

// matchesKeyword checks the id, names, family and tag bag for a lowercase
// keyword substring.
func matchesKeyword(rec *schema.LanguageRecord, keyword string) bool {
	if strings.Contains(strings.ToLower(rec.ID), keyword) ||
		strings.Contains(strings.ToLower(rec.Name), keyword) ||
		strings.Contains(strings.ToLower(rec.NativeName), keyword) ||
		strings.Contains(strings.ToLower(rec.Family), keyword) {
		return true
	}
	for _, tag := range rec.TagBag() {
		if strings.Contains(tag, keyword) {
			return true
		}
	}
	return false
}
