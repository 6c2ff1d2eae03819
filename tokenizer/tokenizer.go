// Package tokenizer splits a single line of delimited text into tokens and
// strips a surrounding "bookend" character sequence (typically a quote)
// from a token.
package tokenizer

import (
	"strings"

	"github.com/mstgnz/splurge/splurgeerr"
)

// Parse splits content on delimiter, optionally trimming whitespace from
// each resulting token. Empty tokens produced by leading, trailing, or
// consecutive delimiters are preserved. delimiter may be multiple
// characters; it must not be empty.
func Parse(content string, delimiter string, strip bool) ([]string, error) {
	if delimiter == "" {
		return nil, splurgeerr.Parameter("delimiter must not be empty", delimiter)
	}
	if content == "" {
		return []string{}, nil
	}

	tokens := strings.Split(content, delimiter)
	if strip {
		for i, t := range tokens {
			tokens[i] = strings.TrimSpace(t)
		}
	}
	return tokens, nil
}

// RemoveBookends strips a leading and trailing bookend sequence from text,
// optionally stripping surrounding whitespace first. The interior is
// returned only when text both starts and ends with bookend AND its length
// strictly exceeds 2*len(bookend)-1, so text too short to hold a separate
// leading and trailing bookend (such as a lone quote) is left untouched,
// while exactly two back-to-back bookends yield an empty interior. Doubled
// bookends inside the interior are not unescaped.
func RemoveBookends(text string, bookend string, strip bool) string {
	if strip {
		text = strings.TrimSpace(text)
	}
	if bookend == "" {
		return text
	}
	if !strings.HasPrefix(text, bookend) || !strings.HasSuffix(text, bookend) {
		return text
	}
	if len(text) <= 2*len(bookend)-1 {
		return text
	}
	return text[len(bookend) : len(text)-len(bookend)]
}
