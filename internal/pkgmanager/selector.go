package pkgmanager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
	"github.com/natively-ui/natively/internal/console"
)

// Prompter asks the user to confirm or choose.
type Prompter interface {
	Confirm(message string, def bool) (bool, error)
	Select(message string, options []string, def int) (int, error)
}

// Probe is the result of checking whether a manager is executable.
type Probe struct {
	Manager Manager
	Version *semver.Version // nil when the version output did not parse
}

// Label returns the manager name with its version when known.
func (p Probe) Label() string {
	if p.Version == nil {
		return p.Manager.String()
	}
	return fmt.Sprintf("%s (%s)", p.Manager, p.Version)
}

// DetectLockfile returns the manager whose lockfile exists in projectDir.
func DetectLockfile(projectDir string) (Manager, bool) {
	for _, m := range lockfileOrder {
		if _, err := os.Stat(filepath.Join(projectDir, m.Lockfile())); err == nil {
			return m, true
		}
	}
	return "", false
}

// Selector picks the package manager for a project.
type Selector struct {
	projectDir string
	runner     Runner
	prompter   Prompter
	sink       console.Sink
	logger     *log.Logger
}

// NewSelector returns a Selector. A nil logger discards diagnostics.
func NewSelector(projectDir string, runner Runner, prompter Prompter, sink console.Sink, logger *log.Logger) *Selector {
	if logger == nil {
		logger = console.NopLogger()
	}
	return &Selector{
		projectDir: projectDir,
		runner:     runner,
		prompter:   prompter,
		sink:       sink,
		logger:     logger,
	}
}

// Select returns the manager to install with. A lockfile match is offered
// first; declining it, or having none, falls through to probing every
// candidate. With several executable managers the user chooses (npm is the
// default); with none, npm is returned and a warning emitted.
func (s *Selector) Select(ctx context.Context) Manager {
	if m, ok := DetectLockfile(s.projectDir); ok {
		use, err := s.prompter.Confirm(fmt.Sprintf("Found %s. Use %s to install dependencies?", m.Lockfile(), m), true)
		if err != nil {
			s.sink.Warn("Could not read answer (%v); using %s", err, m)
			return m
		}
		if use {
			return m
		}
	}

	available := s.Probe(ctx)
	switch len(available) {
	case 0:
		s.sink.Warn("No package manager found on PATH; defaulting to %s", NPM)
		return NPM
	case 1:
		s.sink.Info("Using %s", available[0].Label())
		return available[0].Manager
	}

	labels := make([]string, len(available))
	def := 0
	for i, p := range available {
		labels[i] = p.Label()
		if p.Manager == NPM {
			def = i
		}
	}

	idx, err := s.prompter.Select("Which package manager do you want to use?", labels, def)
	if err != nil {
		s.sink.Warn("Could not read selection (%v); using %s", err, available[def].Manager)
		return available[def].Manager
	}
	if idx < 0 || idx >= len(available) {
		return available[def].Manager
	}
	return available[idx].Manager
}

// Probe runs `<manager> --version` for every candidate and returns the
// ones that exit successfully, in preference order.
func (s *Selector) Probe(ctx context.Context) []Probe {
	var found []Probe
	for _, m := range Candidates {
		out, err := s.runner.Run(ctx, Command{Dir: s.projectDir, Name: m.String(), Args: []string{"--version"}})
		if err != nil {
			s.logger.Debug("package manager probe failed", "manager", m, "err", err)
			continue
		}
		if out.ExitCode != 0 {
			s.logger.Debug("package manager probe failed", "manager", m, "exit", out.ExitCode)
			continue
		}

		p := Probe{Manager: m}
		raw := strings.TrimSpace(out.Stdout)
		if v, err := semver.NewVersion(raw); err == nil {
			p.Version = v
		}
		s.logger.Debug("package manager available", "manager", m, "version", raw)
		found = append(found, p)
	}
	return found
}
