package diag

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/rivo/uniseg"
)

// Diagnostic is a single positioned error or warning.
type Diagnostic struct {
	Code     string
	Message  string
	Source   string // the full source the position is relative to, "" if none
	Line     int    // 1-indexed; 0 means "no position"
	Column   int    // 1-indexed byte offset into Line, as participle reports it
	Filename string
}

// Reporter accumulates diagnostics and renders them to a color-enabled
// writer, mirroring the teacher's reportParseError caret formatting.
type Reporter struct {
	diagnostics []Diagnostic
}

// Report records a diagnostic for later rendering and returns it, so callers
// can chain into Render in the common one-shot case.
func (r *Reporter) Report(d Diagnostic) Diagnostic {
	r.diagnostics = append(r.diagnostics, d)
	return d
}

// FromParseError builds a Diagnostic from a participle parse error, lifting
// line/column/filename from its Position.
func FromParseError(code string, source string, err error) Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return Diagnostic{Code: code, Message: err.Error()}
	}
	pos := pe.Position()
	return Diagnostic{
		Code:     code,
		Message:  pe.Message(),
		Source:   source,
		Line:     pos.Line,
		Column:   pos.Column,
		Filename: pos.Filename,
	}
}

// Render prints d caret-style to stdout in the style of the teacher's CLI:
// a red header naming the code and location, the offending source line, a
// caret beneath the error column, and the message. Column measurement uses
// grapheme clusters rather than bytes, so multi-byte runes — a bare "π" in
// the input, for instance — don't throw the caret off to the right the way
// a byte-indexed repeat count would.
func (r *Reporter) Render(d Diagnostic) {
	if d.Line <= 0 || d.Source == "" {
		color.Red("[%s] %s: %s", d.Code, Category(d.Code), d.Message)
		return
	}

	lines := strings.Split(d.Source, "\n")
	if d.Line > len(lines) {
		color.Red("[%s] %s: %s", d.Code, Category(d.Code), d.Message)
		return
	}
	line := lines[d.Line-1]

	prefix := ""
	if d.Column-1 >= 0 && d.Column-1 <= len(line) {
		prefix = line[:d.Column-1]
	}
	caretCol := uniseg.GraphemeClusterCount(prefix)

	header := fmt.Sprintf("[%s] %s", d.Code, d.Message)
	if d.Filename != "" {
		color.Red("%s at %s:%d:%d", header, d.Filename, d.Line, d.Column)
	} else {
		color.Red("%s at line %d, column %d", header, d.Line, d.Column)
	}
	fmt.Println(line)
	color.HiRed("%s^", strings.Repeat(" ", caretCol))
}

// RenderAll renders every accumulated diagnostic in order.
func (r *Reporter) RenderAll() {
	for _, d := range r.diagnostics {
		r.Render(d)
	}
}

// Warn renders a warning (yellow) without accumulating it as an error.
func Warn(code, message string) {
	color.Yellow("[%s] %s", code, message)
}

// Success renders a green success line, matching the teacher's
// color.Green("✅ ...") convention.
func Success(format string, args ...interface{}) {
	color.Green(format, args...)
}
