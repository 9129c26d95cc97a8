// Package xlsx is the workbook adapter: it reads roster and demand
// workbooks into internal/table's generic Table, and renders the engine's
// output back into workbooks and a PDF summary. internal/staffing never
// imports excelize directly — this package is the only place that does.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
	"github.com/JoakoBallesteros/workforce-staffing/internal/table"
)

// demandHeaderRow is the 0-indexed row holding the demand sheet's column
// names: row 0 is a title row, row 1 is blank, the real header sits at
// row 2, and data starts at row 3.
const demandHeaderRow = 2

// ReadRoster loads the workbook's first sheet as a roster table: a plain
// header in row 1, data from row 2, every column kept verbatim.
func ReadRoster(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &staffing.ResourceError{Op: "open roster workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &staffing.ValidationError{Field: "roster", Msg: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &staffing.InputFormatError{Sheet: sheets[0], Reason: err.Error()}
	}
	if len(rows) == 0 {
		return nil, &staffing.ValidationError{Field: "roster", Msg: "sheet is empty"}
	}

	return rowsToTable(rows[0], rows[1:]), nil
}

// ReadDemandSheet loads svc's demand sheet by name, skipping the title and
// blank rows per §4.1, and renaming the leftmost column to
// staffing.IntervalColumn regardless of its original header text.
func ReadDemandSheet(path string, svc model.ServiceInfo) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &staffing.ResourceError{Op: "open demand workbook", Err: err}
	}
	defer f.Close()

	sheetName, ok := findSheet(f.GetSheetList(), svc)
	if !ok {
		return nil, &staffing.ValidationError{
			Field: "demand",
			Msg:   fmt.Sprintf("no sheet matching service %q", svc.Key),
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &staffing.InputFormatError{Sheet: sheetName, Reason: err.Error()}
	}
	if len(rows) <= demandHeaderRow {
		return nil, &staffing.ValidationError{
			Field: "demand",
			Msg:   fmt.Sprintf("sheet %q has no header row", sheetName),
		}
	}

	header := append([]string(nil), rows[demandHeaderRow]...)
	if len(header) > 0 {
		header[0] = staffing.IntervalColumn
	}

	var data [][]string
	if len(rows) > demandHeaderRow+1 {
		data = rows[demandHeaderRow+1:]
	}

	return rowsToTable(header, data), nil
}

// findSheet locates svc's demand sheet: an exact (case-insensitive) match
// on its published DemandSheet name, falling back to an exact
// (case-insensitive) match on the service key itself.
func findSheet(sheets []string, svc model.ServiceInfo) (string, bool) {
	for _, s := range sheets {
		if strings.EqualFold(s, svc.DemandSheet) {
			return s, true
		}
	}
	for _, s := range sheets {
		if strings.EqualFold(s, string(svc.Key)) {
			return s, true
		}
	}
	return "", false
}

// rowsToTable builds a Table from a raw header row and data rows, trimming
// header cells and padding/truncating each data row to the header's width
// (xlsx rows are ragged: trailing empty cells are often omitted entirely).
func rowsToTable(header []string, data [][]string) *table.Table {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	t := table.New(cols...)
	for _, row := range data {
		values := make([]any, len(cols))
		for i := range cols {
			if i < len(row) {
				values[i] = row[i]
			} else {
				values[i] = ""
			}
		}
		t.AppendRow(values...)
	}
	return t
}
