package search

import (
	"strings"
	"testing"

	"github.com/harrison/minigrep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poem = `Rust:
safe, fast, productive.
Pick three.
Duck tape.`

func TestSearch_CaseSensitive(t *testing.T) {
	got := Search("duct", poem, true)

	want := []models.MatchedLine{
		models.NewMatchedLine("safe, fast, productive.", "duct", 2),
	}
	assert.Equal(t, want, got)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

	got := Search("rUsT", contents, false)

	want := []models.MatchedLine{
		models.NewMatchedLine("Rust:", "rUsT", 1),
		models.NewMatchedLine("Trust me.", "rUsT", 4),
	}
	assert.Equal(t, want, got)
}

func TestSearch_CaseSensitiveDoesNotFoldQuery(t *testing.T) {
	// An upper-case query must not match its lower-case form in sensitive mode.
	got := Search("Duct", poem, true)
	assert.Empty(t, got)

	got = Search("Duck", poem, true)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].LineNumber)
}

func TestSearch_EmptyQueryMatchesEveryLine(t *testing.T) {
	got := Search("", poem, true)
	require.Len(t, got, 4)

	for i, m := range got {
		assert.Equal(t, i+1, m.LineNumber)
		assert.Equal(t, "", m.Query)

		span, err := Locate(m.Text, m.Query, true)
		require.NoError(t, err)
		assert.Equal(t, models.Span{Start: 0, End: 0}, span)
	}
}

func TestSearch_QueryLongerThanAnyLine(t *testing.T) {
	query := strings.Repeat("x", 64)
	assert.Empty(t, Search(query, poem, true))
	assert.Empty(t, Search(query, poem, false))
}

func TestSearch_MultipleOccurrencesYieldOneEntry(t *testing.T) {
	text := "one\nabc abc abc\ntwo"

	got := Search("abc", text, true)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].LineNumber)

	span, err := Locate(got[0].Text, got[0].Query, true)
	require.NoError(t, err)
	assert.Equal(t, models.Span{Start: 0, End: 3}, span)
}

func TestSearch_EmptyText(t *testing.T) {
	assert.Empty(t, Search("", "", true))
	assert.Empty(t, Search("anything", "", false))
}

func TestSearch_Idempotent(t *testing.T) {
	first := Search("t", poem, false)
	second := Search("t", poem, false)
	assert.Equal(t, first, second)
}

// TestSearch_InclusionMatchesContainment checks every line of a hand-built
// text against strings.Contains under both case rules.
func TestSearch_InclusionMatchesContainment(t *testing.T) {
	lines := []string{
		"needle",
		"",
		"haystack with a needle inside",
		"NEEDLE in caps",
		"nothing here",
		"needleneedle",
		"  ",
		"NeEdLe",
		"need",
	}
	text := strings.Join(lines, "\n")

	tests := []struct {
		name          string
		query         string
		caseSensitive bool
	}{
		{name: "exact sensitive", query: "needle", caseSensitive: true},
		{name: "exact insensitive", query: "needle", caseSensitive: false},
		{name: "mixed sensitive", query: "NeEdLe", caseSensitive: true},
		{name: "mixed insensitive", query: "NeEdLe", caseSensitive: false},
		{name: "whitespace", query: " ", caseSensitive: true},
		{name: "empty", query: "", caseSensitive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query, text, tt.caseSensitive)

			matched := make(map[int]bool)
			prev := 0
			for _, m := range got {
				assert.Greater(t, m.LineNumber, prev, "line numbers must strictly increase")
				prev = m.LineNumber
				assert.Equal(t, lines[m.LineNumber-1], m.Text)
				assert.Equal(t, tt.query, m.Query)
				matched[m.LineNumber] = true
			}

			for i, line := range lines {
				var want bool
				if tt.caseSensitive {
					want = strings.Contains(line, tt.query)
				} else {
					want = strings.Contains(strings.ToLower(line), strings.ToLower(tt.query))
				}
				assert.Equal(t, want, matched[i+1], "line %d %q", i+1, line)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "single line no terminator", text: "abc", want: []string{"abc"}},
		{name: "single line with terminator", text: "abc\n", want: []string{"abc"}},
		{name: "only terminator", text: "\n", want: []string{""}},
		{name: "blank line in middle", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "trailing blank line", text: "a\n\n", want: []string{"a", ""}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "lone carriage return kept", text: "a\rb", want: []string{"a\rb"}},
		{name: "carriage return at end of text kept", text: "a\r", want: []string{"a\r"}},
		{name: "crlf then unterminated carriage return", text: "a\r\nb\r", want: []string{"a", "b\r"}},
		{name: "crlf without final carriage return", text: "a\r\nb", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestSearchLines_MatchesSearch(t *testing.T) {
	text := "Rust:\r\nsafe, fast, productive.\nPick three.\nTrust me.\n"
	lines := SplitLines(text)

	for _, caseSensitive := range []bool{true, false} {
		assert.Equal(t, Search("rust", text, caseSensitive), SearchLines("rust", lines, caseSensitive))
	}
	assert.Nil(t, SearchLines("rust", nil, false))
}
