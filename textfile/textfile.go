// Package textfile loads, previews, and streams the lines of a text file,
// with optional header/footer row skipping and an explicit text encoding.
package textfile

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/mstgnz/splurge/logger"
	"github.com/mstgnz/splurge/metrics"
	"github.com/mstgnz/splurge/splurgeerr"
)

// scanLines is bufio.ScanLines generalized to also split on a lone '\r',
// per spec.md §6 ("Lines are separated by any of \n, \r\n, or \r").
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[0:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[0:i], nil
			}
			return i + 1, data[0:i], nil
		}
		if atEOF {
			return i + 1, data[0:i], nil
		}
		// A lone '\r' at the end of the buffer might be followed by a '\n'
		// in the next read; ask for more data before deciding.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// DefaultEncoding is used when Options.Encoding is left empty.
const DefaultEncoding = "utf-8"

// Options configures a load, preview, or stream operation.
type Options struct {
	// Encoding is an IANA encoding name (e.g. "utf-8", "iso-8859-1",
	// "utf-16"). Empty means DefaultEncoding.
	Encoding string
	// SkipHeaderRows is the count of leading lines to discard.
	SkipHeaderRows int
	// SkipFooterRows is the count of trailing lines to discard.
	SkipFooterRows int
	// Logger, when non-nil, receives debug-level events for chunk
	// boundaries and footer-buffer drains. Optional.
	Logger *logger.Logger
	// Metrics, when non-nil, is updated with chunk and row counters.
	// Optional.
	Metrics *metrics.Collector
}

func (o Options) encodingName() string {
	if o.Encoding == "" {
		return DefaultEncoding
	}
	return o.Encoding
}

func (o Options) validate() error {
	if o.SkipHeaderRows < 0 {
		return splurgeerr.Parameter("skip_header_rows must be non-negative", o.SkipHeaderRows)
	}
	if o.SkipFooterRows < 0 {
		return splurgeerr.Parameter("skip_footer_rows must be non-negative", o.SkipFooterRows)
	}
	return nil
}

// resolveEncoding validates the encoding selector before any file is
// opened, per spec.md §6's requirement that readers validate the selector
// up front.
func resolveEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, splurgeerr.Parameter("unsupported encoding", name)
	}
	return enc, nil
}

func openDecoded(path string, enc encoding.Encoding) (*os.File, io.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, splurgeerr.File("failed to open file", path, err)
	}
	return f, transform.NewReader(f, enc.NewDecoder()), nil
}

// Load reads the entire file, applies SkipHeaderRows/SkipFooterRows, and
// returns the remaining lines in order.
func Load(path string, opts Options) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	enc, err := resolveEncoding(opts.encodingName())
	if err != nil {
		return nil, err
	}
	f, r, err := openDecoded(path, enc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all, err := readAllLines(r)
	if err != nil {
		return nil, splurgeerr.File("failed to read file", path, err)
	}
	return applyHeaderFooterSkip(all, opts.SkipHeaderRows, opts.SkipFooterRows), nil
}

// Preview returns at most n lines from the start of the file, after
// SkipHeaderRows is applied. Footer skipping is not meaningful for a
// bounded preview and is ignored.
func Preview(path string, n int, opts Options) ([]string, error) {
	if n < 0 {
		return nil, splurgeerr.Parameter("preview count must be non-negative", n)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	enc, err := resolveEncoding(opts.encodingName())
	if err != nil {
		return nil, err
	}
	f, r, err := openDecoded(path, enc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanLines)

	skipped := 0
	lines := make([]string, 0, n)
	for len(lines) < n && scanner.Scan() {
		if skipped < opts.SkipHeaderRows {
			skipped++
			continue
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, splurgeerr.File("failed to read file", path, err)
	}
	return lines, nil
}

func readAllLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanLines)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func applyHeaderFooterSkip(lines []string, header, footer int) []string {
	if header >= len(lines) {
		return []string{}
	}
	lines = lines[header:]
	if footer > 0 {
		if footer >= len(lines) {
			return []string{}
		}
		lines = lines[:len(lines)-footer]
	}
	return lines
}

// LineCursor is a forward-only, pull-based iterator over a file's lines,
// grouped into chunks of a fixed size. Calling Next advances the cursor;
// no goroutine or background worker backs it.
type LineCursor struct {
	file       *os.File
	scanner    *bufio.Scanner
	chunkSize  int
	headerLeft int
	footerLag  int
	lagBuffer  []string
	done       bool
	scanErr    error
	path       string

	log     *logger.Logger
	metrics *metrics.Collector
}

// StreamLines opens path and returns a LineCursor that yields chunks of at
// most chunkSize lines, honoring SkipHeaderRows/SkipFooterRows. chunkSize
// must be at least 100.
func StreamLines(path string, chunkSize int, opts Options) (*LineCursor, error) {
	if chunkSize < 100 {
		return nil, splurgeerr.Range("chunk_size must be at least 100", 100, nil)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	enc, err := resolveEncoding(opts.encodingName())
	if err != nil {
		return nil, err
	}
	f, r, err := openDecoded(path, enc)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanLines)

	return &LineCursor{
		file:       f,
		scanner:    scanner,
		chunkSize:  chunkSize,
		headerLeft: opts.SkipHeaderRows,
		footerLag:  opts.SkipFooterRows,
		path:       path,
		log:        opts.Logger,
		metrics:    opts.Metrics,
	}, nil
}

// Next returns the next chunk of lines. ok is false once the stream is
// exhausted; the cursor must not be reused after that.
func (c *LineCursor) Next() (chunk []string, ok bool, err error) {
	if c.done {
		return nil, false, nil
	}

	working := make([]string, 0, c.chunkSize)

	for c.scanner.Scan() {
		if c.headerLeft > 0 {
			c.headerLeft--
			continue
		}

		line := c.scanner.Text()

		if c.footerLag > 0 {
			c.lagBuffer = append(c.lagBuffer, line)
			if len(c.lagBuffer) > c.footerLag {
				drained := c.lagBuffer[0]
				c.lagBuffer = c.lagBuffer[1:]
				working = append(working, drained)
				if c.log != nil {
					c.log.Debug("footer buffer drain", map[string]interface{}{"path": c.path})
				}
			}
		} else {
			working = append(working, line)
		}

		if len(working) == c.chunkSize {
			c.emit(len(working))
			return working, true, nil
		}
	}

	if scanErr := c.scanner.Err(); scanErr != nil {
		c.done = true
		if c.metrics != nil {
			c.metrics.IncrementParseErrors("FileError")
		}
		return nil, false, splurgeerr.File("failed to read file", c.path, scanErr)
	}

	c.done = true
	if len(working) > 0 {
		c.emit(len(working))
		return working, true, nil
	}
	return nil, false, nil
}

// emit reports a chunk of n lines to the optional logger and metrics
// collector.
func (c *LineCursor) emit(n int) {
	if c.log != nil {
		c.log.Debug("line chunk emitted", map[string]interface{}{"path": c.path, "lines": n})
	}
	if c.metrics != nil {
		c.metrics.IncrementChunksEmitted()
		c.metrics.IncrementRowsProcessedBy(int64(n))
	}
}

// Close releases the underlying file handle.
func (c *LineCursor) Close() error {
	return c.file.Close()
}
