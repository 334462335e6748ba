package report

import (
	"strconv"

	"github.com/fatih/color"
)

// Marker decorates the parts of a report that carry presentation.
// Implementations must not change the text they are given, only wrap it.
type Marker interface {
	Filename(name string) string
	LineNumber(n int) string
	Span(s string) string
}

// PlainMarker leaves everything undecorated.
type PlainMarker struct{}

// Filename returns name unchanged.
func (PlainMarker) Filename(name string) string { return name }

// LineNumber returns n in decimal.
func (PlainMarker) LineNumber(n int) string { return strconv.Itoa(n) }

// Span returns s unchanged.
func (PlainMarker) Span(s string) string { return s }

// ColorMarker colors filenames blue, line numbers green and matched spans red.
type ColorMarker struct {
	filename *color.Color
	lineNum  *color.Color
	span     *color.Color
}

// NewColorMarker creates a ColorMarker that always emits ANSI escapes,
// regardless of fatih/color's own terminal detection. Whether color is wanted
// at all is decided by the caller (see UseColor).
func NewColorMarker() *ColorMarker {
	filename := color.New(color.FgBlue)
	filename.EnableColor()
	lineNum := color.New(color.FgGreen)
	lineNum.EnableColor()
	span := color.New(color.FgRed)
	span.EnableColor()

	return &ColorMarker{
		filename: filename,
		lineNum:  lineNum,
		span:     span,
	}
}

// Filename returns name in blue.
func (m *ColorMarker) Filename(name string) string {
	return m.filename.Sprint(name)
}

// LineNumber returns n in green.
func (m *ColorMarker) LineNumber(n int) string {
	return m.lineNum.Sprint(strconv.Itoa(n))
}

// Span returns s in red.
func (m *ColorMarker) Span(s string) string {
	return m.span.Sprint(s)
}

// NewMarker returns a ColorMarker when colored is true and a PlainMarker otherwise.
func NewMarker(colored bool) Marker {
	if colored {
		return NewColorMarker()
	}
	return PlainMarker{}
}
