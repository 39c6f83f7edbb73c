package schema

import (
	"fmt"
	"sort"
	"strings"
)

// FormatSpeakers formats a raw speaker count as a compact human string,
// e.g. 500000000 -> "500M", 1300000000 -> "1.3B".
func FormatSpeakers(total int64) string {
	switch {
	case total >= 1_000_000_000:
		v := float64(total) / 1_000_000_000
		if v == float64(int64(v)) {
			return fmt.Sprintf("%dB", int64(v))
		}
		return fmt.Sprintf("%.1fB", v)
	case total >= 1_000_000:
		v := float64(total) / 1_000_000
		if v == float64(int64(v)) {
			return fmt.Sprintf("%dM", int64(v))
		}
		return fmt.Sprintf("%.1fM", v)
	case total >= 1_000:
		v := float64(total) / 1_000
		if v == float64(int64(v)) {
			return fmt.Sprintf("%dK", int64(v))
		}
		return fmt.Sprintf("%.1fK", v)
	default:
		return fmt.Sprintf("%d", total)
	}
}

// FormatDifficulty renders a 1-5 difficulty as a star gauge, e.g. 3 -> "★★★☆☆".
// Out-of-range values are clamped.
func FormatDifficulty(difficulty int) string {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}
	return strings.Repeat("★", difficulty) + strings.Repeat("☆", 5-difficulty)
}

// FormatInterests joins up to max interests as a display string.
func FormatInterests(interests []string, max int) string {
	if len(interests) == 0 {
		return ""
	}
	if max > 0 && len(interests) > max {
		interests = interests[:max]
	}
	return strings.Join(interests, ", ")
}

// TagBag returns the record's lowercased culture-tag bag: cultural tags plus
// region names, deduplicated. Used by the cultural matcher's substring fallback.
func (l *LanguageRecord) TagBag() []string {
	seen := make(map[string]struct{}, len(l.CulturalTags)+len(l.Regions))
	bag := make([]string, 0, len(l.CulturalTags)+len(l.Regions))
	for _, t := range l.CulturalTags {
		lt := strings.ToLower(strings.TrimSpace(t))
		if lt == "" {
			continue
		}
		if _, ok := seen[lt]; !ok {
			seen[lt] = struct{}{}
			bag = append(bag, lt)
		}
	}
	for _, r := range l.Regions {
		lr := strings.ToLower(strings.TrimSpace(r))
		if lr == "" {
			continue
		}
		if _, ok := seen[lr]; !ok {
			seen[lr] = struct{}{}
			bag = append(bag, lr)
		}
	}
	return bag
}

// SortedDimensions returns the dimensions of a weight map in the canonical
// aggregation order, skipping dimensions absent from the map. Deterministic
// iteration matters for stable output and templated explanations.
func SortedDimensions(weights map[Dimension]float64) []Dimension {
	out := make([]Dimension, 0, len(weights))
	for _, d := range AllDimensions {
		if _, ok := weights[d]; ok {
			out = append(out, d)
		}
	}
	// Unknown dimensions go last, alphabetically.
	var extra []Dimension
	for d := range weights {
		known := false
		for _, k := range AllDimensions {
			if d == k {
				known = true
				break
			}
		}
		if !known {
			extra = append(extra, d)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
