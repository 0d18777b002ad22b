package pkgmanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/natively-ui/natively/internal/console"
)

// State is the lifecycle stage of an Installer.
type State int

const (
	Idle State = iota
	DetectingManager
	Installing
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DetectingManager:
		return "detecting-manager"
	case Installing:
		return "installing"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ProcessError reports an install command that could not run or exited
// with a non-zero status.
type ProcessError struct {
	Manager  Manager
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Manager, strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("%s %s exited with code %d", e.Manager, strings.Join(e.Args, " "), e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Installer adds missing packages to a project with one install command.
type Installer struct {
	projectDir string
	runner     Runner
	selector   *Selector
	sink       console.Sink
	logger     *log.Logger

	manager Manager
	state   State
}

// Option configures an Installer.
type Option func(*Installer)

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(in *Installer) {
		in.logger = l
	}
}

// WithManager skips manager selection and always uses m.
func WithManager(m Manager) Option {
	return func(in *Installer) {
		in.manager = m
	}
}

// NewInstaller returns an Installer for projectDir.
func NewInstaller(projectDir string, runner Runner, prompter Prompter, sink console.Sink, opts ...Option) *Installer {
	in := &Installer{
		projectDir: projectDir,
		runner:     runner,
		sink:       sink,
		logger:     console.NopLogger(),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.selector = NewSelector(projectDir, runner, prompter, sink, in.logger)
	return in
}

// State returns the current lifecycle stage.
func (in *Installer) State() State {
	return in.state
}

// Manager returns the manager chosen so far, or "" before one is needed.
func (in *Installer) Manager() Manager {
	return in.manager
}

// Install adds the packages in deps that package.json does not declare yet.
// When nothing is missing no manager is selected and no process runs. The
// manager is chosen once per Installer. A failed install is returned as a
// *ProcessError after the manual command has been printed.
func (in *Installer) Install(ctx context.Context, deps []string) error {
	in.state = Idle

	declared, err := DetectDeclared(in.projectDir)
	if err != nil {
		in.sink.Warn("Could not read declared dependencies (%v); installing all requested packages", err)
	}

	missing := FilterMissing(deps, declared)
	if len(missing) == 0 {
		in.state = Succeeded
		in.sink.Success("All dependencies are already installed")
		return nil
	}

	if in.manager == "" {
		in.state = DetectingManager
		in.manager = in.selector.Select(ctx)
	}

	in.state = Installing
	args := in.manager.InstallArgs(missing)
	in.sink.Info("Installing dependencies with %s: %s", in.manager, strings.Join(missing, ", "))
	in.logger.Debug("running install", "dir", in.projectDir, "cmd", in.manager, "args", args)

	out, err := in.runner.Run(ctx, Command{Dir: in.projectDir, Name: in.manager.String(), Args: args, Stream: true})
	if err != nil || out.ExitCode != 0 {
		in.state = Failed
		perr := &ProcessError{Manager: in.manager, Args: args, Err: err}
		if out != nil {
			perr.ExitCode = out.ExitCode
			perr.Stderr = out.Stderr
		}
		in.sink.Error("Failed to install dependencies: %v", perr)
		in.sink.Info("Install them manually with: %s", in.manager.CommandLine(missing))
		return perr
	}

	in.state = Succeeded
	in.sink.Success("Dependencies installed successfully")
	return nil
}
