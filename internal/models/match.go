package models

import "fmt"

// MatchedLine is a single line that contains the query.
// Text and Query are the original, unfolded strings.
type MatchedLine struct {
	Text       string // The full line, terminator stripped
	Query      string // The query that matched this line
	LineNumber int    // 1-based position of the line in its source text
}

// NewMatchedLine creates a MatchedLine.
func NewMatchedLine(text, query string, lineNumber int) MatchedLine {
	return MatchedLine{
		Text:       text,
		Query:      query,
		LineNumber: lineNumber,
	}
}

// Span is a half-open byte range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Split cuts line into the text before, inside and after the span.
// The span must lie within line.
func (s Span) Split(line string) (prefix, match, suffix string) {
	return line[:s.Start], line[s.Start:s.End], line[s.End:]
}

// String returns the span as "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
