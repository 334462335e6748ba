package search

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/harrison/minigrep/internal/models"
)

// ErrSpanNotFound is returned (wrapped in a *SpanError) when a query cannot be
// located in a line that was reported as matching it.
var ErrSpanNotFound = errors.New("query not found in line")

// SpanError describes a line in which the query could not be located.
type SpanError struct {
	Line          string
	Query         string
	CaseSensitive bool
	Reason        string
}

func (e *SpanError) Error() string {
	mode := "case-insensitive"
	if e.CaseSensitive {
		mode = "case-sensitive"
	}
	return fmt.Sprintf("cannot locate %q in %q (%s): %s", e.Query, e.Line, mode, e.Reason)
}

// Unwrap allows errors.Is(err, ErrSpanNotFound).
func (e *SpanError) Unwrap() error {
	return ErrSpanNotFound
}

// Locate returns the span of the first occurrence of query in line.
//
// In case-insensitive mode the offset is found in the lowercased line, but the
// span length is always len(query) and the span is applied to the original
// line. If lowercasing changed byte lengths so that the span would run past
// the end of line or split one of its runes, Locate fails rather than return
// an invalid span.
func Locate(line, query string, caseSensitive bool) (models.Span, error) {
	start := strings.Index(fold(line, caseSensitive), fold(query, caseSensitive))
	if start < 0 {
		return models.Span{}, &SpanError{
			Line:          line,
			Query:         query,
			CaseSensitive: caseSensitive,
			Reason:        "not found",
		}
	}

	end := start + len(query)
	if end > len(line) {
		return models.Span{}, &SpanError{
			Line:          line,
			Query:         query,
			CaseSensitive: caseSensitive,
			Reason:        fmt.Sprintf("span %d..%d exceeds line length %d", start, end, len(line)),
		}
	}

	if !onRuneBoundary(line, start) || !onRuneBoundary(line, end) {
		return models.Span{}, &SpanError{
			Line:          line,
			Query:         query,
			CaseSensitive: caseSensitive,
			Reason:        fmt.Sprintf("span %d..%d splits a multi-byte character", start, end),
		}
	}

	return models.Span{Start: start, End: end}, nil
}

// onRuneBoundary reports whether i is the offset of a rune start in s, or len(s).
func onRuneBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}
