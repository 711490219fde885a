package renderer

import (
	"fmt"

	"github.com/avessier/flowcast"
	md "github.com/nao1215/markdown"
)

// Amount formats a monetary amount for a table cell.
func Amount(v float64) string { return fmt.Sprintf("%.2f", v) }

// Gallons formats a digital gallons volume for a table cell.
func Gallons(v float64) string { return fmt.Sprintf("%.1f", v) }

// seriesTable lays out named per-period series as a table, one column
// per period label. Series shorter than the horizon (headcount flows
// have no volume) render a dash for the missing periods.
func seriesTable(cfg flowcast.Config, series map[string][]float64, order []string) md.TableSet {
	labels := cfg.Labels()
	header := append([]string{"Series"}, labels...)

	rows := make([][]string, 0, len(order))
	for _, name := range order {
		s := series[name]
		row := make([]string, 0, len(labels)+1)
		row = append(row, name)
		for t := range labels {
			if t < len(s) {
				row = append(row, Amount(s[t]))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	return md.TableSet{Header: header, Rows: rows}
}
