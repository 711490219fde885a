// Package smartsheet reads the portfolio assumptions sheet from the
// Smartsheet API (or a saved copy of its JSON) and turns its rows into
// the flat records the flowcast engine consumes.
package smartsheet

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/avessier/flowcast"
)

// Cell positions in the portfolio sheet. The sheet layout is fixed;
// moving a column means updating this table.
const (
	colName = iota
	colFTEPerPeriod
	colFTEUnallocated
	colFTEOther
	colInclude
	colProjectCode
	colAnnualRevenue
	colGrossProfitPerc
	colAttributionPerc
	colIsCost
	colFunction
	colDiscountRate
	colStartAmt
	colDelayQtrs
	colMaxAmt
	colScaleUpQtrs
	colComments
	colDigitalGallons
	colVCPerDG
	colFTEY1
	colFTEY2
	colFTEY3
	colFTEPeriodCost
)

// Sheet is a parsed sheet: an ordered list of rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Row is one sheet row with positional cells.
type Row struct {
	// Number is the 1-based row number in the sheet.
	Number int
	cells  []any
}

// Parse decodes the Smartsheet API JSON representation of a sheet.
func Parse(data []byte) (*Sheet, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("parsing sheet: %w", err)
	}

	sheet := &Sheet{}
	if jname, err := jsonpath.Get("$.name", jobj); err == nil {
		sheet.Name, _ = jname.(string)
	}

	jrows, err := jsonpath.Get("$.rows", jobj)
	if err != nil {
		return nil, fmt.Errorf("parsing sheet: no rows: %w", err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("parsing sheet: rows is not a list")
	}

	for i, jrow := range rows {
		row, ok := jrow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parsing sheet: row %d is not an object", i+1)
		}
		number := i + 1
		if n, ok := row["rowNumber"].(float64); ok {
			number = int(n)
		}
		jcells, _ := row["cells"].([]any)
		cells := make([]any, len(jcells))
		for j, jcell := range jcells {
			cell, ok := jcell.(map[string]any)
			if !ok {
				continue
			}
			cells[j] = cell["value"]
		}
		sheet.Rows = append(sheet.Rows, Row{Number: number, cells: cells})
	}
	return sheet, nil
}

// value returns the raw cell value, nil when the cell is empty or the
// row is shorter than the requested column.
func (r Row) value(col int) any {
	if col < 0 || col >= len(r.cells) {
		return nil
	}
	return r.cells[col]
}

// str returns the trimmed string value of a cell, "" when empty.
func (r Row) str(col int) string {
	s, _ := r.value(col).(string)
	return strings.TrimSpace(s)
}

// float returns the numeric value of a cell, nil when empty.
func (r Row) float(col int) (*float64, error) {
	v := r.value(col)
	if v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case string:
		// the sheet sometimes carries numbers as text
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(n), "%g", &f); err != nil {
			return nil, fmt.Errorf("row %d: cell %d is not a number: %q", r.Number, col, n)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("row %d: cell %d is not a number: %v", r.Number, col, v)
	}
}

// integer returns the whole-number value of a cell, nil when empty.
func (r Row) integer(col int) (*int, error) {
	f, err := r.float(col)
	if err != nil || f == nil {
		return nil, err
	}
	if *f != math.Trunc(*f) {
		return nil, fmt.Errorf("row %d: cell %d is not a whole number: %v", r.Number, col, *f)
	}
	n := int(*f)
	return &n, nil
}

// yes reports whether a flag cell reads "Yes".
func (r Row) yes(col int) bool { return strings.EqualFold(r.str(col), "yes") }

// isCost reports whether the cost/benefit cell reads "Cost".
func (r Row) isCost(col int) bool { return strings.EqualFold(r.str(col), "cost") }

// Records converts the sheet rows into engine records. Rows that are
// not marked for inclusion keep only their identity fields, so a
// malformed cell on an excluded row never fails the run.
func (s *Sheet) Records() ([]flowcast.RowRecord, error) {
	records := make([]flowcast.RowRecord, 0, len(s.Rows))
	for _, row := range s.Rows {
		record := flowcast.RowRecord{
			Number:      row.Number,
			Include:     row.yes(colInclude),
			ProjectCode: row.str(colProjectCode),
			Name:        row.str(colName),
			Function:    row.str(colFunction),
			IsCost:      row.isCost(colIsCost),
		}
		if !record.Include || record.ProjectCode == "" || record.Function == "" {
			records = append(records, record)
			continue
		}

		var err error
		if record.AnnualDiscountRate, err = row.float(colDiscountRate); err != nil {
			return nil, err
		}
		if record.StartAmt, err = row.float(colStartAmt); err != nil {
			return nil, err
		}
		if record.MaxAmt, err = row.float(colMaxAmt); err != nil {
			return nil, err
		}
		if record.DelayQtrs, err = row.integer(colDelayQtrs); err != nil {
			return nil, err
		}
		if record.ScaleUpQtrs, err = row.integer(colScaleUpQtrs); err != nil {
			return nil, err
		}
		if record.DigitalGallons, err = row.float(colDigitalGallons); err != nil {
			return nil, err
		}
		if record.VCPerDG, err = row.float(colVCPerDG); err != nil {
			return nil, err
		}
		if record.FTEPerPeriod, err = row.float(colFTEPerPeriod); err != nil {
			return nil, err
		}
		if record.FTEPeriodCost, err = row.float(colFTEPeriodCost); err != nil {
			return nil, err
		}
		for _, col := range []int{colFTEY1, colFTEY2, colFTEY3} {
			fte, err := row.float(col)
			if err != nil {
				return nil, err
			}
			record.FTEYears = append(record.FTEYears, fte)
		}
		records = append(records, record)
	}
	return records, nil
}
