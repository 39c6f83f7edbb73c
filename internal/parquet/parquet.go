// Package parquet provides data structures and functions for exporting
// recommendation data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/langworld/langmatch/schema"
)

// RecommendationRow represents a single ranked recommendation in flat,
// column-friendly form.
type RecommendationRow struct {
	// Rank is the 1-based position in the result list
	Rank int32 `parquet:"rank,snappy"`

	// LanguageID is the catalog identifier of the language
	LanguageID string `parquet:"language_id,snappy"`

	// LanguageName is the display name of the language
	LanguageName string `parquet:"language_name,snappy"`

	// MatchScore is the aggregated 0-100 match score
	MatchScore float64 `parquet:"match_score,snappy"`

	// Confidence grades how trustworthy the recommendation is
	Confidence string `parquet:"confidence,snappy"`

	// ScoreDifficulty is the difficulty dimension score
	ScoreDifficulty float64 `parquet:"score_difficulty,snappy"`

	// ScoreCultural is the cultural dimension score
	ScoreCultural float64 `parquet:"score_cultural,snappy"`

	// ScorePractical is the practical dimension score
	ScorePractical float64 `parquet:"score_practical,snappy"`

	// ScoreTime is the time dimension score
	ScoreTime float64 `parquet:"score_time,snappy"`

	// ScoreExperience is the experience dimension score
	ScoreExperience float64 `parquet:"score_experience,snappy"`

	// Pros is a pipe-joined list of advantages (nullable)
	Pros *string `parquet:"pros,optional,snappy"`

	// Cons is a pipe-joined list of drawbacks (nullable)
	Cons *string `parquet:"cons,optional,snappy"`
}

// RunRow represents a single persisted recommendation run.
type RunRow struct {
	// RunID is the unique identifier for this run
	RunID string `parquet:"run_id,snappy"`

	// CreatedAt is when the run happened (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// Preference contains the JSON-encoded user preference (nullable)
	Preference *string `parquet:"preference,optional,snappy"`

	// ResultCount is the number of recommendations the run produced
	ResultCount int32 `parquet:"result_count,snappy"`

	// TopLanguage is the id of the highest-ranked language
	TopLanguage string `parquet:"top_language,snappy"`

	// TopScore is the match score of the highest-ranked language
	TopScore float64 `parquet:"top_score,snappy"`
}

// ConvertRecommendations converts recommendations into flat Parquet rows.
func ConvertRecommendations(recs []schema.Recommendation) []RecommendationRow {
	rows := make([]RecommendationRow, len(recs))
	for i, rec := range recs {
		row := RecommendationRow{
			Rank:            int32(rec.Rank),
			LanguageID:      rec.Language.ID,
			LanguageName:    rec.Language.Name,
			MatchScore:      rec.MatchScore,
			Confidence:      string(rec.Confidence),
			ScoreDifficulty: rec.DimensionScores[schema.DifficultyDimension],
			ScoreCultural:   rec.DimensionScores[schema.CulturalDimension],
			ScorePractical:  rec.DimensionScores[schema.PracticalDimension],
			ScoreTime:       rec.DimensionScores[schema.TimeDimension],
			ScoreExperience: rec.DimensionScores[schema.ExperienceDimension],
		}
		if len(rec.Pros) > 0 {
			pros := strings.Join(rec.Pros, "|")
			row.Pros = &pros
		}
		if len(rec.Cons) > 0 {
			cons := strings.Join(rec.Cons, "|")
			row.Cons = &cons
		}
		rows[i] = row
	}
	return rows
}

// ConvertRunRecords converts persisted run records into Parquet rows.
func ConvertRunRecords(runs []schema.RunRecord) []RunRow {
	rows := make([]RunRow, len(runs))
	for i, run := range runs {
		row := RunRow{
			RunID:       run.RunID,
			CreatedAt:   run.CreatedAt,
			ResultCount: int32(run.ResultCount),
			TopLanguage: run.TopLanguage,
			TopScore:    run.TopScore,
		}
		if run.Preference != "" {
			pref := run.Preference
			row.Preference = &pref
		}
		rows[i] = row
	}
	return rows
}

// WriteRecommendationsParquet writes recommendation rows to a Parquet file.
func WriteRecommendationsParquet(data []RecommendationRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRunsParquet writes run rows to a Parquet file.
func WriteRunsParquet(data []RunRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any row slice to a Parquet file using struct schema
// inference from the row type's tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
