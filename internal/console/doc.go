// Package console renders user-facing status lines and diagnostic logs.
//
// Commands never write to os.Stdout directly; they construct a Printer over
// the cobra command's output writer and pass it down as a Sink. Styling is
// applied with lipgloss through a renderer bound to that writer, so output
// captured in tests or piped to a file stays plain text.
package console
