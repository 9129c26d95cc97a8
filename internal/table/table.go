// Package table provides a small ordered-column in-memory table: the
// boundary type loaders decode workbook rows into and writers encode
// domain rows out of, so that neither side of the staffing engine needs to
// know about excelize cell addressing.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is an ordered set of named columns holding one row of values per
// index. All columns share the same row count.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// New creates an empty table with the given column names, in order.
func New(columns ...string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Table{columns: columns, index: idx}
}

// Columns returns the table's column names, in order.
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// AppendRow appends one row, given in column order. It panics if the
// number of values doesn't match the column count — a programmer error,
// not a data error.
func (t *Table) AppendRow(values ...any) {
	if len(values) != len(t.columns) {
		panic(fmt.Sprintf("table: expected %d values, got %d", len(t.columns), len(values)))
	}
	t.rows = append(t.rows, values)
}

// Row is one table row, addressable by column name.
type Row struct {
	t   *Table
	idx int
}

// At returns the row at index i, for reading.
func (t *Table) At(i int) Row {
	return Row{t: t, idx: i}
}

// Rows iterates every row in order.
func (t *Table) Rows(fn func(Row)) {
	for i := range t.rows {
		fn(t.At(i))
	}
}

// Get returns the raw value of column in this row, or nil if the column
// doesn't exist.
func (r Row) Get(column string) any {
	i, ok := r.t.index[column]
	if !ok {
		return nil
	}
	return r.t.rows[r.idx][i]
}

// String returns column's value coerced to a string ("" if nil or absent).
func (r Row) String(column string) string {
	v := r.Get(column)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Int returns column's value coerced to an int (0 if nil, absent, or not
// numeric). A string value — the shape every xlsx-reader cell arrives in —
// is parsed, tolerating a trailing ".0" from a cell excelize read as a
// float.
func (r Row) Int(column string) int {
	switch v := r.Get(column).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
		return 0
	default:
		return 0
	}
}

// Float returns column's value coerced to a float64 (0 if nil, absent, or
// not numeric).
func (r Row) Float(column string) float64 {
	switch v := r.Get(column).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
