package table

import (
	"strings"
	"testing"

	"github.com/mstgnz/splurge/logger"
	"github.com/mstgnz/splurge/metrics"
	"github.com/mstgnz/splurge/splurgeerr"
	"github.com/mstgnz/splurge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsAbsentOrEmpty(t *testing.T) {
	_, err := New(nil, Options{})
	require.Error(t, err)
	assert.True(t, splurgeerr.IsValidationError(err))

	_, err = New([][]string{}, Options{})
	require.Error(t, err)
	assert.True(t, splurgeerr.IsValidationError(err))
}

func TestNew_NegativeHeaderRowsFails(t *testing.T) {
	_, err := New([][]string{{"a"}}, Options{HeaderRows: -1})
	require.Error(t, err)
	assert.True(t, splurgeerr.IsParameterError(err))
}

// TestMultiRowHeaderMerging is scenario S3.
func TestMultiRowHeaderMerging(t *testing.T) {
	data := [][]string{
		{"Employee", "Employee", "Location"},
		{"First", "Last", "City"},
		{"John", "Doe", "NY"},
	}
	tbl, err := New(data, Options{HeaderRows: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"Employee_First", "Employee_Last", "Location_City"}, tbl.ColumnNames())

	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "John", row["Employee_First"])
}

// TestUnevenRowsAndEmptyColumnNames is scenario S4.
func TestUnevenRowsAndEmptyColumnNames(t *testing.T) {
	data := [][]string{
		{"Name", "", "City"},
		{"John", "30", "NY"},
		{"Jane", "25"},
		{"Bob"},
	}
	tbl, err := New(data, Options{HeaderRows: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "column_1", "City"}, tbl.ColumnNames())
	assert.Equal(t, 3, tbl.ColumnCount())

	for i := 0; i < tbl.RowCount(); i++ {
		row, err := tbl.RowAsList(i)
		require.NoError(t, err)
		assert.Len(t, row, 3)
	}

	row1, err := tbl.Row(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Name": "Jane", "column_1": "25", "City": ""}, row1)

	row2, err := tbl.Row(2)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Name": "Bob", "column_1": "", "City": ""}, row2)
}

func TestZeroHeaderRows(t *testing.T) {
	data := [][]string{{"1", "2", "3"}, {"4", "5", "6"}}
	tbl, err := New(data, Options{HeaderRows: 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"column_0", "column_1", "column_2"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.RowCount())
}

func TestCollapsesInternalWhitespaceInHeaderNames(t *testing.T) {
	data := [][]string{{"First   Name", "Last  Name"}, {"a", "b"}}
	tbl, err := New(data, Options{HeaderRows: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"First Name", "Last Name"}, tbl.ColumnNames())
}

func TestSkipEmptyRows(t *testing.T) {
	data := [][]string{
		{"a", "b"},
		{"1", "2"},
		{"", ""},
		{"3", "4"},
	}
	tbl, err := New(data, Options{HeaderRows: 1, SkipEmptyRows: true})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.RowCount())
	row0, _ := tbl.RowAsList(0)
	row1, _ := tbl.RowAsList(1)
	assert.Equal(t, []string{"1", "2"}, row0)
	assert.Equal(t, []string{"3", "4"}, row1)
}

func TestRowAsList_OutOfRange(t *testing.T) {
	tbl, err := New([][]string{{"a"}, {"1"}}, Options{HeaderRows: 1})
	require.NoError(t, err)

	_, err = tbl.RowAsList(-1)
	require.Error(t, err)
	assert.True(t, splurgeerr.IsRangeError(err))

	_, err = tbl.RowAsList(100)
	require.Error(t, err)
	assert.True(t, splurgeerr.IsRangeError(err))
}

func TestCellValue_UnknownColumnFails(t *testing.T) {
	tbl, err := New([][]string{{"a"}, {"1"}}, Options{HeaderRows: 1})
	require.NoError(t, err)

	_, err = tbl.CellValue("nope", 0)
	require.Error(t, err)
	assert.True(t, splurgeerr.IsValidationError(err))
}

func TestColumnValues(t *testing.T) {
	data := [][]string{{"a", "b"}, {"1", "x"}, {"2", "y"}}
	tbl, err := New(data, Options{HeaderRows: 1})
	require.NoError(t, err)

	vals, err := tbl.ColumnValues("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, vals)
}

func TestColumnType_MemoizedAndConsistent(t *testing.T) {
	data := [][]string{{"a"}, {"1"}, {"2"}, {"3"}}
	tbl, err := New(data, Options{HeaderRows: 1})
	require.NoError(t, err)

	dt1, err := tbl.ColumnType("a")
	require.NoError(t, err)
	assert.Equal(t, types.INTEGER, dt1)

	dt2, err := tbl.ColumnType("a")
	require.NoError(t, err)
	assert.Equal(t, dt1, dt2)
}

func TestColumnType_ConcurrentReadsSafe(t *testing.T) {
	data := make([][]string, 101)
	data[0] = []string{"a"}
	for i := 1; i < len(data); i++ {
		data[i] = []string{"1"}
	}
	tbl, err := New(data, Options{HeaderRows: 1})
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = tbl.ColumnType("a")
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

// TestRowWidthInvariant is property P1: every row's width equals the
// table's column count.
func TestRowWidthInvariant(t *testing.T) {
	data := [][]string{
		{"a", "b", "c"},
		{"1"},
		{"2", "3"},
		{"4", "5", "6"},
	}
	tbl, err := New(data, Options{HeaderRows: 1})
	require.NoError(t, err)

	for i := 0; i < tbl.RowCount(); i++ {
		row, err := tbl.RowAsList(i)
		require.NoError(t, err)
		assert.Len(t, row, tbl.ColumnCount())
	}
}

// TestColumnNameInvariant is property P2: every constructed column name is
// non-empty and resolves to a valid index.
func TestColumnNameInvariant(t *testing.T) {
	data := [][]string{
		{"Name", "", "City"},
		{"John", "30", "NY"},
	}
	tbl, err := New(data, Options{HeaderRows: 1})
	require.NoError(t, err)

	for i, name := range tbl.ColumnNames() {
		assert.NotEmpty(t, name)
		idx, err := tbl.columnIndex(name)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestRowMaps(t *testing.T) {
	data := [][]string{{"a", "b"}, {"1", "2"}}
	tbl, err := New(data, Options{HeaderRows: 1})
	require.NoError(t, err)

	maps := tbl.RowMaps()
	require.Len(t, maps, 1)
	assert.Equal(t, "1", maps[0]["a"])
}

func TestColumnType_LoggerAndMetricsWiring(t *testing.T) {
	data := [][]string{{"n"}, {"1"}, {"2"}}
	var buf strings.Builder
	log := logger.NewLogger(logger.Config{
		Level:   logger.DEBUG,
		Outputs: []logger.LogOutput{{Writer: &buf, Formatter: &logger.TextFormatter{TimeFormat: "15:04:05"}}},
	})
	collector := metrics.NewCollector()

	tbl, err := New(data, Options{HeaderRows: 1, Logger: log, Metrics: collector})
	require.NoError(t, err)

	_, err = tbl.ColumnType("n")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "column type inferred")
	snap := collector.Snapshot()
	assert.Equal(t, int64(2), snap.RowsProcessed)
}
