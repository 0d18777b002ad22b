// Package prompt asks the user yes/no questions and numbered-list
// selections on a terminal, or answers them with defaults when running
// non-interactively.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoOptions is returned by Select when there is nothing to choose from.
var ErrNoOptions = errors.New("no options to choose from")

// Terminal reads answers line by line from r and writes questions to w.
type Terminal struct {
	r *bufio.Reader
	w io.Writer
}

// NewTerminal returns a Terminal prompter.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{r: bufio.NewReader(r), w: w}
}

// Confirm asks a yes/no question. An empty answer, or end of input, takes def.
func (t *Terminal) Confirm(message string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	fmt.Fprintf(t.w, "? %s %s ", message, hint)

	line, err := t.readLine()
	if err != nil {
		return def, err
	}

	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, fmt.Errorf("invalid answer %q: expected y or n", line)
	}
}

// Select presents options as a numbered list and returns the chosen index.
// An empty answer, or end of input, takes def.
func (t *Terminal) Select(message string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	if def < 0 || def >= len(options) {
		def = 0
	}

	fmt.Fprintf(t.w, "\n? %s\n", message)
	for i, item := range options {
		fmt.Fprintf(t.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(t.w, "Enter number [1-%d] (default %d): ", len(options), def+1)

	line, err := t.readLine()
	if err != nil {
		return def, err
	}
	if line == "" {
		return def, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(options) {
		return def, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(options))
	}
	return num - 1, nil
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Defaults answers every question with its default, for --yes and
// non-interactive runs.
type Defaults struct{}

func (Defaults) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

func (Defaults) Select(_ string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	if def < 0 || def >= len(options) {
		return 0, nil
	}
	return def, nil
}
