package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to a writer. Styles degrade to plain text when
// the writer is not a terminal.
type Printer struct {
	w io.Writer

	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
}

// NewPrinter creates a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		err:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.w, style.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Success(format string, args ...any) { p.line(p.success, format, args...) }
func (p *Printer) Warn(format string, args ...any)    { p.line(p.warn, format, args...) }
func (p *Printer) Error(format string, args ...any)   { p.line(p.err, format, args...) }
func (p *Printer) Info(format string, args ...any)    { p.line(p.info, format, args...) }
func (p *Printer) Muted(format string, args ...any)   { p.line(p.muted, format, args...) }

// Item prints an indented muted detail line.
func (p *Printer) Item(format string, args ...any) {
	p.line(p.muted, "   "+format, args...)
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() { fmt.Fprintln(p.w) }

// Accent renders s in the accent color without printing it.
func (p *Printer) Accent(s string) string { return p.accent.Render(s) }

// Dim renders s in the muted color without printing it.
func (p *Printer) Dim(s string) string { return p.muted.Render(s) }
