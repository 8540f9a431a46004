package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/k0kubun/pp/v3"
	"gopkg.in/yaml.v3"

	"github.com/eloyz/pynab-go/internal/config"
)

// table holds pre-formatted rows for tabular output.
type table struct {
	header []string
	rows   [][]string
}

func render(w io.Writer, cfg *config.Config, records any, tbl table) error {
	if cfg.Verbose {
		_, _ = pp.Fprintln(os.Stderr, records)
	}

	switch cfg.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(records)
	case "yaml":
		return yaml.NewEncoder(w).Encode(records)
	case "", "table":
		return writeTable(w, tbl)
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output)
	}
}

func writeTable(w io.Writer, tbl table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, strings.Join(tbl.header, "\t"))

	for _, row := range tbl.rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// formatAmount renders API milliunits as a decimal amount.
func formatAmount(milliunits int64) string {
	return fmt.Sprintf("%.2f", float64(milliunits)/1000.0)
}
