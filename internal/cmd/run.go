package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/harrison/minigrep/internal/logger"
	"github.com/harrison/minigrep/internal/models"
	"github.com/harrison/minigrep/internal/report"
	"github.com/harrison/minigrep/internal/search"
)

// ErrInvalidUTF8 is returned for files whose contents are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// RunOptions holds everything a search run needs
type RunOptions struct {
	Query         string
	Files         []string
	CaseSensitive bool
	Out           io.Writer
	Marker        report.Marker // nil means plain output
	Logger        logger.Logger // nil means no diagnostics
}

// Run searches every file in order and reports matches to opts.Out.
// The first read or report error stops the run; output already written for
// earlier files stays written.
func Run(opts RunOptions) (models.RunSummary, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	start := time.Now()
	reporter := report.NewReporter(opts.Out, opts.Marker, opts.CaseSensitive)

	var summary models.RunSummary
	for _, path := range opts.Files {
		log.LogTrace(fmt.Sprintf("reading %s", path))

		text, err := readText(path)
		if err != nil {
			return summary, fmt.Errorf("read %s: %w", path, err)
		}

		lines := search.SplitLines(text)
		result := models.FileResult{
			Path:    path,
			Matches: search.SearchLines(opts.Query, lines, opts.CaseSensitive),
			Lines:   len(lines),
		}
		log.LogFileResult(result)

		if err := reporter.ReportFile(path, result.Matches); err != nil {
			return summary, fmt.Errorf("problem reporting matches in %s: %w", path, err)
		}

		summary.Add(result)
	}

	summary.Duration = time.Since(start)
	log.LogSummary(summary)

	return summary, nil
}

// readText loads a whole file and rejects invalid UTF-8.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}
