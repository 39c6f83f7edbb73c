package core

import (
	"runtime"
	"sync"

	"github.com/langworld/langmatch/internal/catalog"
	"github.com/langworld/langmatch/schema"
)

// Engine evaluates a read-only catalog against user preferences. It holds no
// mutable state, so a single Engine is safe to share across goroutines.
type Engine struct {
	catalog []schema.LanguageRecord
	workers int
}

// NewEngine builds an engine over the given catalog. A non-positive worker
// count falls back to GOMAXPROCS.
func NewEngine(records []schema.LanguageRecord, workers int) *Engine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{catalog: records, workers: workers}
}

// Generate scores the full catalog against the preference and returns the
// top recommendations, at most schema.MaxRecommendations. The output is
// deterministic for identical inputs: languages are scored in catalog order
// and ties keep that order. An empty catalog yields an empty result, not an
// error; the only failure mode is an unusable weight table.
func (e *Engine) Generate(pref schema.UserPreference) ([]schema.Recommendation, error) {
	return e.GenerateTop(pref, schema.MaxRecommendations)
}

// GenerateTop is Generate with an explicit result limit.
func (e *Engine) GenerateTop(pref schema.UserPreference, limit int) ([]schema.Recommendation, error) {
	if len(e.catalog) == 0 {
		return []schema.Recommendation{}, nil
	}

	weights := pref.DimensionWeights
	if weights == nil {
		weights = schema.DefaultDimensionWeights
	}
	if err := validateWeights(weights); err != nil {
		return nil, err
	}

	knownFamilies := e.resolveKnownFamilies(&pref)

	// Scoring is embarrassingly parallel across languages. Each worker
	// writes to a unique index, so the slice needs no locking and the
	// final order is fixed by the sort below.
	recs := make([]schema.Recommendation, len(e.catalog))
	idxCh := make(chan int, len(e.catalog))

	var wg sync.WaitGroup
	for range e.workers {
		wg.Go(func() {
			for idx := range idxCh {
				recs[idx] = e.evaluate(&e.catalog[idx], &pref, weights, knownFamilies)
			}
		})
	}
	for i := range e.catalog {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()

	if limit > schema.MaxRecommendations || limit <= 0 {
		limit = schema.MaxRecommendations
	}
	return rankRecommendations(recs, limit), nil
}

// Details scores a single catalog language against the preference. The
// second return is false when the id is not in the catalog.
func (e *Engine) Details(languageID string, pref schema.UserPreference) (schema.Recommendation, bool, error) {
	rec, ok := catalog.FindByID(e.catalog, languageID)
	if !ok {
		return schema.Recommendation{}, false, nil
	}

	weights := pref.DimensionWeights
	if weights == nil {
		weights = schema.DefaultDimensionWeights
	}
	if err := validateWeights(weights); err != nil {
		return schema.Recommendation{}, false, err
	}

	out := e.evaluate(&rec, &pref, weights, e.resolveKnownFamilies(&pref))
	out.Rank = 1
	return out, true, nil
}

// Catalog exposes the engine's catalog for browsing commands.
func (e *Engine) Catalog() []schema.LanguageRecord {
	return e.catalog
}

// evaluate computes one full recommendation for a single language.
func (e *Engine) evaluate(rec *schema.LanguageRecord, pref *schema.UserPreference, weights map[schema.Dimension]float64, knownFamilies []string) schema.Recommendation {
	scores := scoreDimensions(rec, pref, knownFamilies)

	// Weight validation happened before any scoring started.
	matchScore, err := aggregateScore(scores, weights)
	if err != nil {
		matchScore = 0
	}

	reasons := buildReasons(rec, pref, scores, weights)

	return schema.Recommendation{
		Language:        *rec,
		MatchScore:      matchScore,
		DimensionScores: scores,
		Reasons:         reasons,
		Pros:            buildPros(rec),
		Cons:            buildCons(rec),
		Confidence:      confidenceLevel(matchScore, reasons),
		LearningPath:    buildLearningPath(pref),
	}
}

// resolveKnownFamilies maps the user's known language ids to their families
// through the catalog. Ids absent from the catalog resolve to "", which the
// experience scorer ignores.
func (e *Engine) resolveKnownFamilies(pref *schema.UserPreference) []string {
	if len(pref.KnownLanguages) == 0 {
		return nil
	}
	families := make([]string, len(pref.KnownLanguages))
	for i, id := range pref.KnownLanguages {
		families[i] = catalog.FamilyOf(e.catalog, id)
	}
	return families
}

// validateWeights rejects empty, negative or all-zero weight tables before
// any scoring work begins.
func validateWeights(weights map[schema.Dimension]float64) error {
	if len(weights) == 0 {
		return schema.NewConfigurationError("dimension weight table is empty")
	}
	var total float64
	for d, w := range weights {
		if w < 0 {
			return schema.NewConfigurationError(string(d) + " has a negative weight")
		}
		total += w
	}
	if total == 0 {
		return schema.NewConfigurationError("dimension weights sum to zero")
	}
	return nil
}
