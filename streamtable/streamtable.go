// Package streamtable implements the streaming tabular data model: a
// forward-only, bounded-buffer view over a chunk-producing iterator, with
// monotone column growth in place of the in-memory model's fixed width.
package streamtable

import (
	"fmt"
	"strings"

	"github.com/mstgnz/splurge/logger"
	"github.com/mstgnz/splurge/metrics"
	"github.com/mstgnz/splurge/splurgeerr"
)

// ChunkSource pulls successive chunks of raw rows from an upstream
// producer (typically a dsv.Cursor). ok is false once the source is
// exhausted.
type ChunkSource interface {
	Next() (chunk [][]string, ok bool, err error)
}

// MinChunkSize is the smallest accepted Options.ChunkSize.
const MinChunkSize = 100

// Options configures streaming table construction.
type Options struct {
	HeaderRows    int
	SkipEmptyRows bool
	ChunkSize     int
	// Logger, when non-nil, receives debug-level events for column-growth
	// occurrences. Optional.
	Logger *logger.Logger
	// Metrics, when non-nil, is updated with row and column-growth
	// counters. Optional.
	Metrics *metrics.Collector
}

// Table is a forward-only, single-consumer streaming view over an
// upstream ChunkSource. It holds only a bounded buffer of pending rows,
// never the full dataset.
type Table struct {
	source ChunkSource
	opts   Options

	columnNames []string
	nameIndex   map[string]int
	headerDone  bool

	buffer [][]string
	done   bool
}

// New constructs a Table over source. Construction itself performs the
// initialization protocol: pulling chunks until HeaderRows lines have
// been collected as header material (or, when HeaderRows is 0, deferring
// column-name derivation until the first data row is seen).
func New(source ChunkSource, opts Options) (*Table, error) {
	if source == nil {
		return nil, splurgeerr.Validation("source must not be absent")
	}
	if opts.HeaderRows < 0 {
		return nil, splurgeerr.Parameter("header_rows must be non-negative", opts.HeaderRows)
	}
	if opts.ChunkSize < MinChunkSize {
		return nil, splurgeerr.Range("chunk_size must be at least 100", MinChunkSize, nil)
	}

	t := &Table{
		source:    source,
		opts:      opts,
		nameIndex: make(map[string]int),
	}

	if err := t.initHeader(); err != nil {
		return nil, err
	}
	return t, nil
}

// initHeader pulls chunks until HeaderRows rows have been collected as
// header material, carrying any leftover lines from the chunk that
// satisfied the header requirement into the row buffer.
func (t *Table) initHeader() error {
	var headerRows [][]string

	if t.opts.HeaderRows == 0 {
		// Column names are deferred until the first data row is pulled
		// through Next, where they are synthesized as column_<i>.
		t.headerDone = true
		return nil
	}

	for len(headerRows) < t.opts.HeaderRows {
		chunk, ok, err := t.source.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		for _, row := range chunk {
			if t.opts.SkipEmptyRows && isEmptyRow(row) {
				continue
			}
			if len(headerRows) < t.opts.HeaderRows {
				headerRows = append(headerRows, row)
			} else {
				t.buffer = append(t.buffer, row)
			}
		}
	}

	t.columnNames = buildColumnNames(headerRows, t.opts.HeaderRows)
	t.rebuildIndex()
	t.headerDone = true
	return nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func buildColumnNames(headerRows [][]string, headerRowCount int) []string {
	width := 0
	for _, row := range headerRows {
		if len(row) > width {
			width = len(row)
		}
	}

	var names []string
	switch {
	case headerRowCount <= 1:
		if len(headerRows) > 0 {
			names = append([]string(nil), headerRows[0]...)
		}
	default:
		for col := 0; col < width; col++ {
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
		collapsed := strings.TrimSpace(n)
		if collapsed == "" {
			collapsed = fmt.Sprintf("column_%d", i)
		}
		names[i] = collapsed
	}
	return names
}

func (t *Table) rebuildIndex() {
	t.nameIndex = make(map[string]int, len(t.columnNames))
	for i, n := range t.columnNames {
		if _, exists := t.nameIndex[n]; !exists {
			t.nameIndex[n] = i
		}
	}
}

// growColumns extends the column list in place when row is wider than the
// current column count, synthesizing column_<i> names for the new
// positions. This is the only permitted column growth, and it is
// monotone.
func (t *Table) growColumns(width int) {
	before := len(t.columnNames)
	for i := before; i < width; i++ {
		name := fmt.Sprintf("column_%d", i)
		t.columnNames = append(t.columnNames, name)
		if _, exists := t.nameIndex[name]; !exists {
			t.nameIndex[name] = i
		}
	}
	if width > before {
		if t.opts.Logger != nil {
			t.opts.Logger.Debug("column growth", map[string]interface{}{"from": before, "to": width})
		}
		if t.opts.Metrics != nil {
			t.opts.Metrics.IncrementColumnGrowth()
		}
	}
}

func (t *Table) normalizeRow(row []string) []string {
	if len(row) > len(t.columnNames) {
		t.growColumns(len(row))
	}
	if len(row) == len(t.columnNames) {
		out := make([]string, len(row))
		copy(out, row)
		return out
	}
	out := make([]string, len(t.columnNames))
	copy(out, row)
	return out
}

// ColumnNames returns the current column names. It may grow as wider rows
// are observed.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.columnNames))
	copy(out, t.columnNames)
	return out
}

// ColumnCount returns the current column count.
func (t *Table) ColumnCount() int {
	return len(t.columnNames)
}

// Next yields the next row: first draining the internal buffer, then
// pulling further chunks from the upstream source as needed. ok is false
// once both the buffer and the upstream source are exhausted.
func (t *Table) Next() (row []string, ok bool, err error) {
	for {
		if len(t.buffer) > 0 {
			next := t.buffer[0]
			t.buffer = t.buffer[1:]
			if t.opts.SkipEmptyRows && isEmptyRow(next) {
				continue
			}
			if len(t.columnNames) == 0 {
				t.columnNames = make([]string, len(next))
				for i := range t.columnNames {
					t.columnNames[i] = fmt.Sprintf("column_%d", i)
				}
				t.rebuildIndex()
			}
			row := t.normalizeRow(next)
			if t.opts.Metrics != nil {
				t.opts.Metrics.IncrementRowsProcessed()
			}
			return row, true, nil
		}

		if t.done {
			return nil, false, nil
		}

		chunk, hasMore, err := t.source.Next()
		if err != nil {
			t.done = true
			return nil, false, err
		}
		if !hasMore {
			t.done = true
			return nil, false, nil
		}
		t.buffer = append(t.buffer, chunk...)
	}
}

// ClearBuffer empties the internal row buffer without touching the
// upstream source.
func (t *Table) ClearBuffer() {
	t.buffer = nil
}

// Reset reports that a true stream reset requires a fresh upstream
// ChunkSource from the caller; this model does not retain the source
// material needed to re-read from the beginning.
func (t *Table) Reset() error {
	return splurgeerr.Validation("stream reset requires a fresh upstream source")
}
