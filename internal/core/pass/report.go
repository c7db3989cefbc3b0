package pass

import (
	"fmt"
	"io"
	"strings"

	"inspectx/internal/platform/ui"
)

// InfoIndent prefixes every finding line.
const InfoIndent = "   "

// FormatLine indents text by the base indent plus level spaces.
func FormatLine(level int, text string) string {
	if level < 0 {
		level = 0
	}
	return InfoIndent + strings.Repeat(" ", level) + text
}

// FormatInfo renders a "label value" finding line.
func FormatInfo(level int, label, value string) string {
	return FormatLine(level, label+" "+value)
}

// Report is what a pass prints its findings to.
type Report struct {
	w     io.Writer
	theme ui.Theme
}

// NewReport wraps w. A nil theme means no styling.
func NewReport(w io.Writer, theme ui.Theme) *Report {
	if theme == nil {
		theme = ui.PlainTheme{}
	}
	return &Report{w: w, theme: theme}
}

// Line prints an indented free-form line.
func (r *Report) Line(level int, text string) {
	r.raw(FormatLine(level, text))
}

// Linef is Line with formatting.
func (r *Report) Linef(level int, format string, args ...any) {
	r.Line(level, fmt.Sprintf(format, args...))
}

// Info prints "label value".
func (r *Report) Info(level int, label string, value any) {
	r.raw(FormatInfo(level, r.theme.Label(label), r.theme.Value(fmt.Sprint(value))))
}

// Infof is Info with a formatted value.
func (r *Report) Infof(level int, label, format string, args ...any) {
	r.Info(level, label, fmt.Sprintf(format, args...))
}

// NA prints label with the "n/a" placeholder.
func (r *Report) NA(level int, label string) {
	r.raw(FormatInfo(level, r.theme.Label(label), r.theme.NA(ui.WordNA)))
}

// Write errors are dropped: the trace is best-effort console output.
func (r *Report) raw(line string) {
	_, _ = io.WriteString(r.w, line+"\n")
}
