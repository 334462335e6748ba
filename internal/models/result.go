package models

import "time"

// FileResult represents the outcome of searching a single file
type FileResult struct {
	Path    string        // Path as given on the command line
	Matches []MatchedLine // Matching lines in ascending line order
	Lines   int           // Total number of lines in the file
}

// HasMatches reports whether any line of the file matched.
func (r FileResult) HasMatches() bool {
	return len(r.Matches) > 0
}

// RunSummary represents the aggregate result of one search run
type RunSummary struct {
	FilesSearched int           // Number of files read and searched
	FilesMatched  int           // Number of files with at least one match
	TotalMatches  int           // Number of matching lines across all files
	Duration      time.Duration // Total run time
}

// Add folds a file result into the summary.
func (s *RunSummary) Add(r FileResult) {
	s.FilesSearched++
	if r.HasMatches() {
		s.FilesMatched++
		s.TotalMatches += len(r.Matches)
	}
}
