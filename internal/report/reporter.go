// Package report renders matched lines for the terminal.
//
// Each file with at least one match is written as a header line holding the
// file name, preceded by a blank line, followed by one line per match:
//
//	<line number>: <prefix><span><suffix>
//
// The span is the first occurrence of the query, re-located in the line under
// the same case rule that matched it. Decoration (color) is delegated to a
// Marker so the layout can be tested without escape codes.
package report

import (
	"fmt"
	"io"

	"github.com/harrison/minigrep/internal/models"
	"github.com/harrison/minigrep/internal/search"
)

// Reporter writes search results to an io.Writer.
type Reporter struct {
	out           io.Writer
	marker        Marker
	caseSensitive bool
}

// NewReporter creates a Reporter. A nil marker means PlainMarker.
func NewReporter(out io.Writer, marker Marker, caseSensitive bool) *Reporter {
	if marker == nil {
		marker = PlainMarker{}
	}
	return &Reporter{
		out:           out,
		marker:        marker,
		caseSensitive: caseSensitive,
	}
}

// RenderLine formats a single match, without a trailing newline.
func (r *Reporter) RenderLine(m models.MatchedLine) (string, error) {
	span, err := search.Locate(m.Text, m.Query, r.caseSensitive)
	if err != nil {
		return "", fmt.Errorf("line %d: %w", m.LineNumber, err)
	}

	prefix, match, suffix := span.Split(m.Text)
	return fmt.Sprintf("%s: %s%s%s", r.marker.LineNumber(m.LineNumber), prefix, r.marker.Span(match), suffix), nil
}

// ReportFile writes the header for filename followed by every match.
// Nothing is written when matches is empty. Lines are written as they are
// rendered, so on a locate failure the lines before it have already been
// written and the error is returned without writing anything further.
func (r *Reporter) ReportFile(filename string, matches []models.MatchedLine) error {
	if len(matches) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(r.out, "\n%s\n", r.marker.Filename(filename)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, m := range matches {
		line, err := r.RenderLine(m)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return fmt.Errorf("failed to write line %d: %w", m.LineNumber, err)
		}
	}

	return nil
}
