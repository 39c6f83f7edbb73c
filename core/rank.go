package core

import (
	"sort"

	"github.com/langworld/langmatch/schema"
)

// rankRecommendations sorts recommendations by match score descending with a
// stable sort, so ties keep their original catalog order, then assigns dense
// 1-based ranks and slices to limit. A limit <= 0 means no truncation.
func rankRecommendations(recs []schema.Recommendation, limit int) []schema.Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	for i := range recs {
		recs[i].Rank = i + 1
	}

	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
