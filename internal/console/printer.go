package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Sink receives human-readable progress and result messages.
type Sink interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Printer is a Sink that writes one styled line per message.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Welcome prints the product banner.
func (p *Printer) Welcome(name string) {
	fmt.Fprintf(p.w, "\n%s\n\n", p.title.Render("🚀 "+name+" CLI"))
}

func (p *Printer) Info(format string, args ...any) {
	p.line(p.info, "ℹ", format, args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.line(p.success, "✔", format, args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.line(p.warn, "⚠", format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.line(p.err, "✖", format, args...)
}

// Plain prints an unstyled line, used for command lines the user may copy.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	fmt.Fprintln(p.w, style.Render(icon+" "+fmt.Sprintf(format, args...)))
}

// Discard is a Sink that drops every message.
var Discard Sink = discard{}

type discard struct{}

func (discard) Info(string, ...any)    {}
func (discard) Success(string, ...any) {}
func (discard) Warn(string, ...any)    {}
func (discard) Error(string, ...any)   {}
