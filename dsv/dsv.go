// Package dsv parses delimiter-separated text: strings, pre-split line
// lists, whole files, and bounded chunked streams of large files.
package dsv

import (
	"strings"

	"github.com/mstgnz/splurge/logger"
	"github.com/mstgnz/splurge/metrics"
	"github.com/mstgnz/splurge/splurgeerr"
	"github.com/mstgnz/splurge/textfile"
	"github.com/mstgnz/splurge/tokenizer"
)

// Row is one tokenized line.
type Row []string

// Options configures tokenization shared by every parse surface.
type Options struct {
	Delimiter string
	Strip     bool
	// Bookend, when non-empty, is stripped from each token after
	// splitting and (optional) whitespace trimming.
	Bookend string
}

func (o Options) tokenizeLine(line string) (Row, error) {
	tokens, err := tokenizer.Parse(line, o.Delimiter, o.Strip)
	if err != nil {
		return nil, err
	}
	if o.Bookend != "" {
		for i, t := range tokens {
			tokens[i] = tokenizer.RemoveBookends(t, o.Bookend, o.Strip)
		}
	}
	return Row(tokens), nil
}

// Parse splits content into lines on "\n" and tokenizes each into a Row.
func Parse(content string, opts Options) ([]Row, error) {
	if opts.Delimiter == "" {
		return nil, splurgeerr.Parameter("delimiter must not be empty", opts.Delimiter)
	}
	if content == "" {
		return []Row{}, nil
	}
	lines := strings.Split(content, "\n")
	return ParseLines(lines, opts)
}

// ParseLines tokenizes each already-split line into a Row.
func ParseLines(lines []string, opts Options) ([]Row, error) {
	if opts.Delimiter == "" {
		return nil, splurgeerr.Parameter("delimiter must not be empty", opts.Delimiter)
	}
	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		row, err := opts.tokenizeLine(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FileOptions extends Options with the text-file concerns a whole-file
// parse needs.
type FileOptions struct {
	Options
	Encoding       string
	SkipHeaderRows int
	SkipFooterRows int
}

// ParseFile loads path in full and tokenizes every remaining line (after
// header/footer skip) into a Row.
func ParseFile(path string, opts FileOptions) ([]Row, error) {
	if opts.Delimiter == "" {
		return nil, splurgeerr.Parameter("delimiter must not be empty", opts.Delimiter)
	}
	lines, err := textfile.Load(path, textfile.Options{
		Encoding:       opts.Encoding,
		SkipHeaderRows: opts.SkipHeaderRows,
		SkipFooterRows: opts.SkipFooterRows,
	})
	if err != nil {
		return nil, err
	}
	return ParseLines(lines, opts.Options)
}

// StreamOptions configures ParseStream.
type StreamOptions struct {
	Options
	Encoding       string
	ChunkSize      int
	SkipHeaderRows int
	SkipFooterRows int
	// Logger, when non-nil, receives debug-level events for chunk
	// boundaries. Optional.
	Logger *logger.Logger
	// Metrics, when non-nil, is updated with chunk and row counters.
	// Optional.
	Metrics *metrics.Collector
}

// MinChunkSize is the smallest accepted StreamOptions.ChunkSize.
const MinChunkSize = 100

// Cursor is a forward-only, pull-based iterator over a file's rows,
// grouped into chunks. It wraps a textfile.LineCursor; tokenization
// happens lazily as each chunk is pulled, never on a background
// goroutine.
type Cursor struct {
	lines   *textfile.LineCursor
	opts    Options
	log     *logger.Logger
	metrics *metrics.Collector
}

// ParseStream opens path and returns a Cursor that yields chunks of at
// most ChunkSize rows. ChunkSize must be at least MinChunkSize;
// SkipHeaderRows/SkipFooterRows must be non-negative.
func ParseStream(path string, opts StreamOptions) (*Cursor, error) {
	if opts.Delimiter == "" {
		return nil, splurgeerr.Parameter("delimiter must not be empty", opts.Delimiter)
	}
	if opts.ChunkSize < MinChunkSize {
		return nil, splurgeerr.Range("chunk_size must be at least 100", MinChunkSize, nil)
	}
	lines, err := textfile.StreamLines(path, opts.ChunkSize, textfile.Options{
		Encoding:       opts.Encoding,
		SkipHeaderRows: opts.SkipHeaderRows,
		SkipFooterRows: opts.SkipFooterRows,
		Logger:         opts.Logger,
		Metrics:        opts.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Cursor{lines: lines, opts: opts.Options, log: opts.Logger, metrics: opts.Metrics}, nil
}

// Next returns the next chunk of tokenized rows. ok is false once the
// stream is exhausted.
func (c *Cursor) Next() (chunk []Row, ok bool, err error) {
	lineChunk, ok, err := c.lines.Next()
	if err != nil || !ok {
		return nil, ok, err
	}
	rows := make([]Row, 0, len(lineChunk))
	for _, line := range lineChunk {
		row, err := c.opts.tokenizeLine(line)
		if err != nil {
			return nil, false, err
		}
		rows = append(rows, row)
	}
	if c.log != nil {
		c.log.Debug("row chunk tokenized", map[string]interface{}{"rows": len(rows)})
	}
	return rows, true, nil
}

// Close releases the underlying file handle.
func (c *Cursor) Close() error {
	return c.lines.Close()
}
