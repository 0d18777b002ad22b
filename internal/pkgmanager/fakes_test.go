package pkgmanager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	// outputs keyed by command name; a missing name fails to start
	outputs map[string]*Output
	calls   []Command
}

func (f *fakeRunner) Run(_ context.Context, c Command) (*Output, error) {
	f.calls = append(f.calls, c)
	out, ok := f.outputs[c.Name]
	if !ok {
		return nil, errors.New(c.Name + " not found on PATH")
	}
	return out, nil
}

func (f *fakeRunner) installCalls() []Command {
	var out []Command
	for _, c := range f.calls {
		if len(c.Args) > 0 && c.Args[0] != "--version" {
			out = append(out, c)
		}
	}
	return out
}

type fakePrompter struct {
	confirm    bool
	confirmErr error
	choice     int
	selectErr  error

	confirmed []string
	offered   [][]string
	defaults  []int
}

func (f *fakePrompter) Confirm(message string, _ bool) (bool, error) {
	f.confirmed = append(f.confirmed, message)
	return f.confirm, f.confirmErr
}

func (f *fakePrompter) Select(_ string, options []string, def int) (int, error) {
	f.offered = append(f.offered, options)
	f.defaults = append(f.defaults, def)
	return f.choice, f.selectErr
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
