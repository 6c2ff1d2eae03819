// Package table implements the in-memory tabular data model: header
// merging, row-width normalization, random access, and lazy column-type
// inference with a typed projection.
package table

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/mstgnz/splurge/logger"
	"github.com/mstgnz/splurge/metrics"
	"github.com/mstgnz/splurge/splurgeerr"
	"github.com/mstgnz/splurge/types"
)

// Options configures table construction.
type Options struct {
	// HeaderRows is the count of leading rows treated as header material.
	HeaderRows int
	// SkipEmptyRows discards data rows whose cells are all empty or
	// whitespace before width normalization.
	SkipEmptyRows bool
	// Logger, when non-nil, receives debug-level events for column-type
	// inference. Optional.
	Logger *logger.Logger
	// Metrics, when non-nil, is updated with column-type inference
	// counters. Optional.
	Metrics *metrics.Collector
}

// Table is a random-access, column-addressable view over a rectangular
// block of text rows.
type Table struct {
	columnNames []string
	nameIndex   map[string]int
	rows        [][]string
	opts        Options

	mu        sync.RWMutex
	typeCache map[string]types.DataType
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// New builds a Table from data, a finite sequence of text rows, splitting
// off the first HeaderRows rows as header material per spec §4.6.
func New(data [][]string, opts Options) (*Table, error) {
	if data == nil {
		return nil, splurgeerr.Validation("data must not be absent")
	}
	if len(data) == 0 {
		return nil, splurgeerr.Validation("data must not be empty")
	}
	if opts.HeaderRows < 0 {
		return nil, splurgeerr.Parameter("header_rows must be non-negative", opts.HeaderRows)
	}

	headerRows := data
	dataRows := [][]string{}
	if opts.HeaderRows < len(data) {
		headerRows = data[:opts.HeaderRows]
		dataRows = data[opts.HeaderRows:]
	}

	if opts.SkipEmptyRows {
		dataRows = filterEmptyRows(dataRows)
	}

	width := 0
	for _, row := range dataRows {
		if len(row) > width {
			width = len(row)
		}
	}
	if len(dataRows) == 0 {
		for _, row := range headerRows {
			if len(row) > width {
				width = len(row)
			}
		}
	}

	names := buildColumnNames(headerRows, opts.HeaderRows, width)

	normalized := make([][]string, len(dataRows))
	for i, row := range dataRows {
		normalized[i] = normalizeWidth(row, len(names))
	}

	index := make(map[string]int, len(names))
	for i, n := range names {
		if _, exists := index[n]; !exists {
			index[n] = i
		}
	}

	return &Table{
		columnNames: names,
		nameIndex:   index,
		rows:        normalized,
		opts:        opts,
		typeCache:   make(map[string]types.DataType),
	}, nil
}

func filterEmptyRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !isEmptyRow(row) {
			out = append(out, row)
		}
	}
	return out
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func normalizeWidth(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// buildColumnNames implements spec §4.6 steps 5-7: merge header rows by
// column position, collapse internal whitespace, and fill in positional
// placeholders for missing or empty names.
func buildColumnNames(headerRows [][]string, headerRowCount int, width int) []string {
	var names []string

	switch {
	case headerRowCount == 0:
		names = make([]string, width)
	case headerRowCount == 1:
		if len(headerRows) > 0 {
			names = append([]string(nil), headerRows[0]...)
		}
	default:
		names = make([]string, 0, width)
		maxCols := width
		for _, row := range headerRows {
			if len(row) > maxCols {
				maxCols = len(row)
			}
		}
		for col := 0; col < maxCols; col++ {
			var parts []string
			for _, row := range headerRows {
				if col < len(row) {
					cell := strings.TrimSpace(row[col])
					if cell != "" {
						parts = append(parts, cell)
					}
				}
			}
			names = append(names, strings.Join(parts, "_"))
		}
	}

	if len(names) < width {
		padded := make([]string, width)
		copy(padded, names)
		names = padded
	}

	for i, n := range names {
		collapsed := strings.TrimSpace(whitespaceRun.ReplaceAllString(n, " "))
		if collapsed == "" {
			collapsed = fmt.Sprintf("column_%d", i)
		}
		names[i] = collapsed
	}

	return names
}

// ColumnCount returns the table's normalized row width.
func (t *Table) ColumnCount() int {
	return len(t.columnNames)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnNames returns the table's column names in position order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.columnNames))
	copy(out, t.columnNames)
	return out
}

func (t *Table) checkRowIndex(i int) error {
	if i < 0 || i >= len(t.rows) {
		return splurgeerr.Range("row index out of range", 0, len(t.rows)-1).WithContext("received", i)
	}
	return nil
}

func (t *Table) columnIndex(name string) (int, error) {
	idx, ok := t.nameIndex[name]
	if !ok {
		return 0, splurgeerr.Validation("unknown column name").WithContext("name", name)
	}
	return idx, nil
}

// RowAsList returns row i as an ordered slice of cell text.
func (t *Table) RowAsList(i int) ([]string, error) {
	if err := t.checkRowIndex(i); err != nil {
		return nil, err
	}
	out := make([]string, len(t.rows[i]))
	copy(out, t.rows[i])
	return out, nil
}

// RowAsTuple returns row i as a fixed-arity ordered slice, identical to
// RowAsList; Go has no distinct tuple type.
func (t *Table) RowAsTuple(i int) ([]string, error) {
	return t.RowAsList(i)
}

// Row returns row i as a column-name-to-cell mapping.
func (t *Table) Row(i int) (map[string]string, error) {
	if err := t.checkRowIndex(i); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(t.columnNames))
	for idx, name := range t.columnNames {
		out[name] = t.rows[i][idx]
	}
	return out, nil
}

// CellValue returns the text of the cell at the named column and row i.
func (t *Table) CellValue(name string, i int) (string, error) {
	idx, err := t.columnIndex(name)
	if err != nil {
		return "", err
	}
	if err := t.checkRowIndex(i); err != nil {
		return "", err
	}
	return t.rows[i][idx], nil
}

// ColumnValues returns every cell in the named column, in row order.
func (t *Table) ColumnValues(name string) ([]string, error) {
	idx, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// ColumnType returns the named column's inferred DataType, computed via
// types.ProfileValues on first call and memoized thereafter. Concurrent
// callers are safe: the memoization write is serialized by an internal
// lock, per spec §5.
func (t *Table) ColumnType(name string) (types.DataType, error) {
	idx, err := t.columnIndex(name)
	if err != nil {
		return types.STRING, err
	}

	t.mu.RLock()
	if dt, ok := t.typeCache[name]; ok {
		t.mu.RUnlock()
		return dt, nil
	}
	t.mu.RUnlock()

	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[idx]
	}
	dt := types.ProfileValues(values, true, true)

	t.mu.Lock()
	t.typeCache[name] = dt
	t.mu.Unlock()

	if t.opts.Logger != nil {
		t.opts.Logger.Debug("column type inferred", map[string]interface{}{"column": name, "type": dt.String()})
	}
	if t.opts.Metrics != nil {
		t.opts.Metrics.IncrementRowsProcessedBy(int64(len(values)))
	}

	return dt, nil
}

// Rows returns every row as an ordered slice of cell text.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i := range t.rows {
		out[i], _ = t.RowAsList(i)
	}
	return out
}

// RowMaps returns every row as a column-name-to-cell mapping.
func (t *Table) RowMaps() []map[string]string {
	out := make([]map[string]string, len(t.rows))
	for i := range t.rows {
		out[i], _ = t.Row(i)
	}
	return out
}
