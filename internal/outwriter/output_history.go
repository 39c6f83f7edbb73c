package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/internal/parquet"
	"github.com/langworld/langmatch/schema"
)

const historyTimeLayout = "2006-01-02 15:04:05"

// WriteHistoryResults outputs recorded runs, dispatching based on the
// output format configured.
func WriteHistoryResults(runs []schema.RunRecord, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeHistoryCSV(csvWriter, runs, fmtFloat)
		}, "Wrote CSV")

	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		rows := parquet.ConvertRunRecords(runs)
		if err := parquet.WriteRunsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Printf("Exported %d runs to: %s\n", len(rows), cfg.OutputFile)
		return nil

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(runs, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable table.
func writeHistoryTable(runs []schema.RunRecord, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Run ID", "When", "Top Language", "Top Score", "Label", "Results"})
	table.Configure(func(tblCfg *tablewriter.Config) {
		tblCfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		label := contract.GetPlainLabel(run.TopScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(run.TopScore)
		}

		data = append(data, []string{
			shortRunID(run.RunID),
			run.CreatedAt.Format(historyTimeLayout),
			run.TopLanguage,
			fmtFloat(run.TopScore),
			label,
			strconv.Itoa(run.ResultCount),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Showing %d recorded runs\n", len(runs))
	return err
}

// writeHistoryCSV writes the recorded runs in CSV format.
func writeHistoryCSV(w *csv.Writer, runs []schema.RunRecord, fmtFloat func(float64) string) error {
	header := []string{"run_id", "created_at", "top_language", "top_score", "result_count", "preference"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, run := range runs {
		record := []string{
			run.RunID,
			run.CreatedAt.Format(historyTimeLayout),
			run.TopLanguage,
			fmtFloat(run.TopScore),
			strconv.Itoa(run.ResultCount),
			run.Preference,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// shortRunID keeps the table compact: UUIDs collapse to their first block.
func shortRunID(id string) string {
	if block, _, ok := strings.Cut(id, "-"); ok {
		return block
	}
	return id
}
