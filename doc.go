/*
Package splurge is the core data-processing engine for ingesting,
classifying, reshaping, and streaming delimited tabular text data.

It is organized as a small pipeline of packages, each independently
usable, that together turn raw delimited text into a column-addressable
table with inferred semantic types:

	textfile   -> load/preview/stream a file's lines
	tokenizer  -> split one line into fields, strip bookends
	dsv        -> parse strings, line lists, whole files, and chunked streams
	types      -> per-cell type classification and column-level profiling
	table      -> in-memory, random-access tabular model with typed views
	streamtable -> forward-only tabular model over a chunk iterator

Basic Usage:

	import (
		"github.com/mstgnz/splurge/dsv"
		"github.com/mstgnz/splurge/table"
	)

	rows, err := dsv.Parse("a,b,c\n1,2,3", dsv.Options{Delimiter: ","})
	if err != nil {
		// handle error
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = r
	}

	t, err := table.New(data, table.Options{HeaderRows: 1})
	if err != nil {
		// handle error
	}

	typ, err := t.ColumnType("a")

Streaming Large Files:

For files too large to hold in memory, dsv.ParseStream yields bounded
chunks of rows, and streamtable.Table consumes them one row at a time:

	cursor, err := dsv.ParseStream("big.csv", dsv.StreamOptions{
		Options:   dsv.Options{Delimiter: ","},
		ChunkSize: 1000,
	})
	if err != nil {
		// handle error
	}
	defer cursor.Close()

	st, err := streamtable.New(adaptCursor(cursor), streamtable.Options{
		HeaderRows: 1,
		ChunkSize:  1000,
	})
	for {
		row, ok, err := st.Next()
		if err != nil || !ok {
			break
		}
		_ = row
	}

Type Classification:

The types package exposes is-like predicates and to-X converters for
each member of the closed DataType enumeration (STRING, INTEGER, FLOAT,
BOOLEAN, DATE, TIME, DATETIME, MIXED, EMPTY, NONE), plus ProfileValues
for column-level inference with optional checkpoint-based early
termination on large collections.

Error Handling:

All operations that can fail return an error as the last return value.
The tokenizer, dsv, textfile, table, and streamtable packages report
their own failures as a *splurgeerr.SplurgeError tagged with one of five
kinds (ParameterError, RangeError, FormatError, ValidationError,
FileError); the collab and logger packages return plain errors:

	rows, err := dsv.Parse(content, opts)
	if err != nil {
		switch {
		case splurgeerr.IsParameterError(err):
			// handle bad argument
		case splurgeerr.IsFileError(err):
			// handle I/O failure
		default:
			// handle other errors
		}
	}

Logging and Metrics:

The logger package provides the structured logger used to report
stream-processing events (chunk boundaries, footer-buffer drains,
column-growth events); the metrics package provides a counter
collector for rows processed, chunks emitted, and parse errors. Both
are opt-in: callers attach them through the relevant Options struct,
and the core packages never require them.

	log := logger.NewComponentLogger("dsv", logger.INFO)
	collector := metrics.NewCollector()

	cursor, err := dsv.ParseStream("big.csv", dsv.StreamOptions{
		Options:   dsv.Options{Delimiter: ","},
		ChunkSize: 1000,
		Logger:    log,
		Metrics:   collector,
	})

External Collaborators:

Text normalization, record validation, and random-value generation are
deliberately out of scope for this engine. The collab package names
their interfaces and provides a lightweight registry so a downstream
caller can wire implementations in without this module importing them.

Concurrency:

All iterators and models are designed for a single consumer at a time;
there are no internal worker goroutines and no background I/O. The one
exception is Table.ColumnType's memoization cache, which is safe for
concurrent readers.

For more information, see the package-level documentation of each
subpackage.
*/
package splurge
