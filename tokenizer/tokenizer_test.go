package tokenizer

import (
	"strings"
	"testing"

	"github.com/mstgnz/splurge/splurgeerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		delim   string
		strip   bool
		want    []string
	}{
		{"basic split", "a,b,c", ",", false, []string{"a", "b", "c"}},
		{"preserves empty tokens", "a,,c", ",", false, []string{"a", "", "c"}},
		{"leading and trailing delimiters", ",a,b,", ",", false, []string{"", "a", "b", ""}},
		{"strip whitespace", " a , b ", ",", true, []string{"a", "b"}},
		{"multi-character delimiter", "a::b::c", "::", false, []string{"a", "b", "c"}},
		{"absent content returns empty", "", ",", false, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.content, tt.delim, tt.strip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_EmptyDelimiterFails(t *testing.T) {
	_, err := Parse("a,b", "", false)
	require.Error(t, err)
	assert.True(t, splurgeerr.IsParameterError(err))
}

func TestRemoveBookends(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		bookend string
		strip   bool
		want    string
	}{
		{"basic quotes", `"hello"`, `"`, false, "hello"},
		{"no bookend present", "hello", `"`, false, "hello"},
		{"strip before removal", `  "hello"  `, `"`, true, "hello"},
		{"exactly two bookends yield empty interior", `""`, `"`, false, ""},
		{"doubled bookend interior not unescaped", `"he said ""hi"""`, `"`, false, `he said ""hi""`},
		{"multi-character bookend", "**value**", "**", false, "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveBookends(tt.text, tt.bookend, tt.strip))
		})
	}
}

// TestRemoveBookends_Property is P6: remove_bookends(x+s+x, x, strip=false)
// == s for any bookend x with len(x) >= 1 and any non-empty s.
func TestRemoveBookends_Property(t *testing.T) {
	bookends := []string{"'", `"`, "**", "~~~"}
	texts := []string{"a", "hello world", "123", strings.Repeat("z", 50)}
	for _, x := range bookends {
		for _, s := range texts {
			got := RemoveBookends(x+s+x, x, false)
			assert.Equal(t, s, got, "bookend=%q text=%q", x, s)
		}
	}
}

func TestRemoveBookends_TokenizedLine(t *testing.T) {
	row, err := Parse(`"a","b","c"`, ",", false)
	require.NoError(t, err)
	for i, tok := range row {
		row[i] = RemoveBookends(tok, `"`, false)
	}
	assert.Equal(t, []string{"a", "b", "c"}, row)
}
