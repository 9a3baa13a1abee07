// Package ui writes the status lines mktarget shows the user. Lines are
// styled with lipgloss when the writer is a color-capable terminal and
// written as plain text otherwise, so redirected output stays clean.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/mktarget/internal/platform"
	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled status lines to one writer.
type Printer struct {
	w     io.Writer
	color bool

	prompt  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	path    lipgloss.Style
}

// New returns a Printer for w. Color is used only when w is a terminal and
// NO_COLOR is not set.
func New(w io.Writer) *Printer {
	p := &Printer{w: w}
	if !platform.IsTerminal(w) || os.Getenv("NO_COLOR") != "" {
		return p
	}

	r := lipgloss.NewRenderer(w)
	p.color = true
	p.prompt = r.NewStyle().Bold(true)
	p.success = r.NewStyle().Foreground(lipgloss.Color("10"))
	p.failure = r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	p.path = r.NewStyle().Foreground(lipgloss.Color("12"))
	return p
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Prompt writes a question, followed by a newline.
func (p *Printer) Prompt(text string) {
	fmt.Fprintln(p.w, p.render(p.prompt, text))
}

// Info writes an unstyled line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Success writes a line in the success style.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(p.success, fmt.Sprintf(format, args...)))
}

// Failure writes a line in the failure style.
func (p *Printer) Failure(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(p.failure, fmt.Sprintf(format, args...)))
}

// Path returns s rendered in the path style, for embedding in other lines.
func (p *Printer) Path(s string) string {
	return p.render(p.path, s)
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}
