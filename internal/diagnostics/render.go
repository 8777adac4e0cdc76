package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/forge-lang/forge/internal/source"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiGreen  = "\x1b[32m"
)

// Renderer pretty-prints messages with the offending source line and a caret
// span underneath. Rendering is advisory; the message sequence in Context is
// the source of truth.
type Renderer struct {
	out   io.Writer
	color bool
}

// NewRenderer builds a renderer for out. Color is enabled only when out is a
// terminal and forceNoColor is unset.
func NewRenderer(out io.Writer, forceNoColor bool) *Renderer {
	color := false
	if f, ok := out.(*os.File); ok && !forceNoColor {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{out: out, color: color}
}

func (r *Renderer) severityColor(severity Severity) string {
	switch severity {
	case SeveritySuggestion:
		return ansiGreen
	case SeverityNote:
		return ansiCyan
	case SeverityWarning:
		return ansiYellow
	default:
		return ansiRed
	}
}

func (r *Renderer) paint(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + ansiReset
}

// Render writes one message as
//
//	<source>:<line>:<column>: <severity>[<code>]: <text>
//
// followed by the source line and a caret span when the range is known.
func (r *Renderer) Render(msg Message) {
	head := ""
	if msg.SourceRange.Valid() {
		start := msg.SourceRange.Start
		head = fmt.Sprintf("%s:%d:%d: ", start.Source.Name, start.Line, start.Column)
	}

	label := msg.Severity.String()
	if msg.Code != "" {
		label = fmt.Sprintf("%s[%s]", label, msg.Code)
	}

	fmt.Fprintf(r.out, "%s%s: %s\n", r.paint(ansiBold, head), r.paint(r.severityColor(msg.Severity), label), msg.Text)

	r.renderExcerpt(msg)

	if msg.Suggestion != "" {
		fmt.Fprintf(r.out, "  %s: %s\n", r.paint(ansiGreen, "suggestion"), msg.Suggestion)
	}
}

func (r *Renderer) renderExcerpt(msg Message) {
	if !msg.SourceRange.Valid() {
		return
	}
	start := msg.SourceRange.Start
	line, ok := start.Source.Line(start.Line)
	if !ok {
		return
	}

	fmt.Fprintf(r.out, "  %s\n", line)

	// Caret span width in grapheme clusters, clamped to the quoted line.
	width := 1
	end := msg.SourceRange.End
	if end.Valid() && end.Line == start.Line && end.Column > start.Column {
		width = end.Column - start.Column
	}
	if max := source.ClusterCount(line) - (start.Column - 1); width > max {
		width = max
	}
	if width < 1 {
		width = 1
	}

	caret := strings.Repeat(" ", start.Column-1) + strings.Repeat("^", width)
	fmt.Fprintf(r.out, "  %s\n", r.paint(r.severityColor(msg.Severity), caret))
}

// RenderAll renders every message in the context in emission order.
func (r *Renderer) RenderAll(ctx *Context) {
	for _, msg := range ctx.Messages() {
		r.Render(msg)
	}
}
