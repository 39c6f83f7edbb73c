package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/langworld/langmatch/internal/contract"
	"github.com/langworld/langmatch/schema"
)

// WriteWeightResults outputs the active dimension weights, dispatching
// based on the output format configured. Parquet is rejected here: a
// five-row weight table has nothing to gain from a columnar export.
func WriteWeightResults(weights map[schema.Dimension]float64, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, weights)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeWeightCSV(csvWriter, weights)
		}, "Wrote CSV")

	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for weights; use json or csv")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightTable(weights, w)
		}, "Wrote table")
	}
}

// writeWeightTable generates and writes the human-readable table.
func writeWeightTable(weights map[schema.Dimension]float64, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Dimension", "Weight", "Share"})
	table.Configure(func(tblCfg *tablewriter.Config) {
		tblCfg.Row.Alignment.Global = tw.AlignRight
	})

	var total float64
	for _, w := range weights {
		total += w
	}

	var data [][]string
	for _, d := range schema.SortedDimensions(weights) {
		share := 0.0
		if total > 0 {
			share = weights[d] / total * 100
		}
		data = append(data, []string{
			string(d),
			fmt.Sprintf("%.2f", weights[d]),
			fmt.Sprintf("%.1f%%", share),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Total weight: %.2f across %d dimensions\n", total, len(weights))
	return err
}

// writeWeightCSV writes the dimension weights in CSV format.
func writeWeightCSV(w *csv.Writer, weights map[schema.Dimension]float64) error {
	if err := w.Write([]string{"dimension", "weight"}); err != nil {
		return err
	}
	for _, d := range schema.SortedDimensions(weights) {
		if err := w.Write([]string{string(d), fmt.Sprintf("%.4f", weights[d])}); err != nil {
			return err
		}
	}
	return nil
}
