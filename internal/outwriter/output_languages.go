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
	"github.com/langworld/langmatch/schema"
)

// WriteLanguageResults outputs catalog entries, dispatching based on the
// output format configured.
func WriteLanguageResults(records []schema.LanguageRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeLanguageCSV(csvWriter, records)
		}, "Wrote CSV")

	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for languages; use json or csv")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLanguageTable(records, cfg, w)
		}, "Wrote table")
	}
}

// writeLanguageTable generates and writes the human-readable catalog table.
func writeLanguageTable(records []schema.LanguageRecord, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"ID", "Name", "Difficulty", "Category", "Speakers", "Family"}
	if cfg.Detail {
		headers = append(headers, "Scripts", "Resources")
	}
	table.Header(headers)

	table.Configure(func(tblCfg *tablewriter.Config) {
		tblCfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Name,
			schema.FormatDifficulty(rec.Difficulty),
			string(rec.Category),
			schema.FormatSpeakers(rec.Speakers.Total),
			rec.Family,
		}
		if cfg.Detail {
			row = append(row,
				strings.Join(rec.WritingSystem, ","),
				strconv.Itoa(len(rec.Resources)),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Showing %d languages\n", len(records))
	return err
}

// writeLanguageCSV writes catalog entries in CSV format.
func writeLanguageCSV(w *csv.Writer, records []schema.LanguageRecord) error {
	header := []string{
		"id",
		"name",
		"native_name",
		"difficulty",
		"category",
		"total_speakers",
		"family",
		"writing_systems",
		"regions",
		"resources",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		record := []string{
			rec.ID,
			rec.Name,
			rec.NativeName,
			strconv.Itoa(rec.Difficulty),
			string(rec.Category),
			strconv.FormatInt(rec.Speakers.Total, 10),
			rec.Family,
			strings.Join(rec.WritingSystem, "|"),
			strings.Join(rec.Regions, "|"),
			strconv.Itoa(len(rec.Resources)),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}
