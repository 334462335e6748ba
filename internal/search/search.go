// Package search finds the lines of a text that contain a query and locates
// the query inside a matched line.
//
// Matching is plain substring containment. In case-insensitive mode both the
// line and the query are folded with strings.ToLower before comparison; in
// case-sensitive mode neither side is touched.
package search

import (
	"strings"

	"github.com/harrison/minigrep/internal/models"
)

// SplitLines splits text into lines.
// Lines end at "\n" and a "\r" directly before it is stripped, so CRLF input
// yields the same lines as LF input. A "\r" that is not followed by "\n" is
// kept. A terminator at the very end of text does not start an extra empty
// line, and empty text has no lines at all.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	// every piece but the last was followed by "\n"
	terminated := len(lines) - 1
	if lines[terminated] == "" {
		lines = lines[:terminated]
	}

	for i := 0; i < terminated; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}

// Search returns one MatchedLine per line of text containing query, in
// ascending line order. Line numbers start at 1 and count every line, matching
// or not. An empty query matches every line.
func Search(query, text string, caseSensitive bool) []models.MatchedLine {
	return SearchLines(query, SplitLines(text), caseSensitive)
}

// SearchLines is Search over text already split with SplitLines.
func SearchLines(query string, lines []string, caseSensitive bool) []models.MatchedLine {
	needle := fold(query, caseSensitive)

	var results []models.MatchedLine
	for i, line := range lines {
		if strings.Contains(fold(line, caseSensitive), needle) {
			results = append(results, models.NewMatchedLine(line, query, i+1))
		}
	}

	return results
}

// fold returns s unchanged in case-sensitive mode and lowercased otherwise.
func fold(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}
