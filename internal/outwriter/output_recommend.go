package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/internal/parquet"
	"github.com/langworld/langmatch/schema"
)

// WriteRecommendationResults outputs ranked recommendations, dispatching
// based on the output format configured.
func WriteRecommendationResults(recs []schema.Recommendation, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecommendationJSON(w, recs)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeRecommendationCSV(csvWriter, recs, fmtFloat)
		}, "Wrote CSV")

	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		rows := parquet.ConvertRecommendations(recs)
		if err := parquet.WriteRecommendationsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Printf("Exported %d recommendations to: %s\n", len(rows), cfg.OutputFile)
		return nil

	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecommendationTable(recs, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeRecommendationTable generates and writes the human-readable table.
func writeRecommendationTable(recs []schema.Recommendation, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Language", "Score", "Label", "Confidence"}
	if cfg.Detail {
		headers = append(headers, "Difficulty", "Cultural", "Practical", "Time", "Experience")
	}
	if cfg.Explain {
		headers = append(headers, "Why")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tblCfg *tablewriter.Config) {
		tblCfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, rec := range recs {
		label := contract.GetPlainLabel(rec.MatchScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(rec.MatchScore)
		}

		row := []string{
			strconv.Itoa(rec.Rank),
			contract.TruncateText(rec.Language.Name, nameWidth),
			fmtFloat(rec.MatchScore),
			label,
			string(rec.Confidence),
		}
		if cfg.Detail {
			for _, d := range schema.AllDimensions {
				row = append(row, fmtFloat(rec.DimensionScores[d]))
			}
		}
		if cfg.Explain {
			row = append(row, formatTopReasons(rec.Reasons))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d languages\n", len(recs)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Matching completed in %v with %d workers. Store backend: %s\n", duration, cfg.Workers, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeRecommendationCSV writes the recommendations in CSV format.
func writeRecommendationCSV(w *csv.Writer, recs []schema.Recommendation, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"language_id",
		"language",
		"score",
		"label",
		"confidence",
		"difficulty",
		"cultural",
		"practical",
		"time",
		"experience",
		"pros",
		"cons",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range recs {
		record := []string{
			strconv.Itoa(rec.Rank),
			rec.Language.ID,
			rec.Language.Name,
			fmtFloat(rec.MatchScore),
			contract.GetPlainLabel(rec.MatchScore),
			string(rec.Confidence),
		}
		for _, d := range schema.AllDimensions {
			record = append(record, fmtFloat(rec.DimensionScores[d]))
		}
		record = append(record, strings.Join(rec.Pros, "|"), strings.Join(rec.Cons, "|"))
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// writeRecommendationJSON writes the recommendations in JSON format.
func writeRecommendationJSON(w io.Writer, recs []schema.Recommendation) error {
	// Attach the plain label so JSON consumers get the same grading as tables.
	type JSONRecommendation struct {
		Label string `json:"label"`
		schema.Recommendation
	}

	output := make([]JSONRecommendation, len(recs))
	for i, rec := range recs {
		output[i] = JSONRecommendation{
			Label:          contract.GetPlainLabel(rec.MatchScore),
			Recommendation: rec,
		}
	}

	return writeJSON(w, output)
}

// formatTopReasons joins the strongest reason types for the explain column.
func formatTopReasons(reasons []schema.Reason) string {
	if len(reasons) == 0 {
		return "Not applicable"
	}

	limit := min(len(reasons), 3)
	parts := make([]string, 0, limit)
	for _, r := range reasons[:limit] {
		parts = append(parts, r.Type)
	}
	return strings.Join(parts, " > ")
}
