// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRecommendations prints ranked recommendations using the configured output format.
func (ow *OutWriter) WriteRecommendations(recs []schema.Recommendation, cfg *contract.Config, duration time.Duration) error {
	return WriteRecommendationResults(recs, cfg, duration)
}

// WriteLanguages prints catalog entries using the configured output format.
func (ow *OutWriter) WriteLanguages(records []schema.LanguageRecord, cfg *contract.Config) error {
	return WriteLanguageResults(records, cfg)
}

// WriteHistory prints recorded runs using the configured output format.
func (ow *OutWriter) WriteHistory(runs []schema.RunRecord, cfg *contract.Config) error {
	return WriteHistoryResults(runs, cfg)
}

// WriteWeights prints the active dimension weights using the configured output format.
func (ow *OutWriter) WriteWeights(weights map[schema.Dimension]float64, cfg *contract.Config) error {
	return WriteWeightResults(weights, cfg)
}
