package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Command is a child process invocation.
type Command struct {
	Dir  string
	Name string
	Args []string

	// Stream copies the child's output to the runner's writers as it runs,
	// in addition to capturing it.
	Stream bool
}

// Output captures the result of a child process.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes commands. A non-zero exit is reported through
// Output.ExitCode; an error means the process could not be run at all.
type Runner interface {
	Run(ctx context.Context, c Command) (*Output, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r *ExecRunner) Run(ctx context.Context, c Command) (*Output, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if c.Stream {
		if r.Stdout != nil {
			cmd.Stdout = io.MultiWriter(r.Stdout, &stdoutBuf)
		}
		if r.Stderr != nil {
			cmd.Stderr = io.MultiWriter(r.Stderr, &stderrBuf)
		}
	}

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %s: %w", c.Name, err)
	}

	return output, nil
}
