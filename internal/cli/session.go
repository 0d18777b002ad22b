package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/natively-ui/natively/internal/config"
	"github.com/natively-ui/natively/internal/console"
	"github.com/natively-ui/natively/internal/installer"
	"github.com/natively-ui/natively/internal/pkgmanager"
	"github.com/natively-ui/natively/internal/prompt"
	"github.com/natively-ui/natively/internal/registry"
	"github.com/spf13/cobra"
)

// newRunner builds the process runner for dependency installs.
var newRunner = func(cmd *cobra.Command) pkgmanager.Runner {
	return &pkgmanager.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
}

// session is the per-invocation wiring of the project commands.
type session struct {
	cmd        *cobra.Command
	projectDir string
	out        *console.Printer
	logger     *log.Logger
	prompter   pkgmanager.Prompter
	client     *registry.Client
}

func projectDir() (string, error) {
	if flagCwd != "" {
		dir, err := filepath.Abs(flagCwd)
		if err != nil {
			return "", fmt.Errorf("resolving --cwd: %w", err)
		}
		return dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return dir, nil
}

func newSession(cmd *cobra.Command) (*session, error) {
	dir, err := projectDir()
	if err != nil {
		return nil, err
	}

	logger := console.NewLogger(cmd.ErrOrStderr(), flagVerbose)

	baseURL := strings.TrimRight(flagRegistry, "/")
	if baseURL == "" {
		baseURL = config.RegistryURL()
	}

	var p pkgmanager.Prompter = prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	if flagYes {
		p = prompt.Defaults{}
	}

	logger.Debug("session", "project", dir, "registry", baseURL)
	return &session{
		cmd:        cmd,
		projectDir: dir,
		out:        console.New(cmd.OutOrStdout()),
		logger:     logger,
		prompter:   p,
		client: registry.New(baseURL,
			registry.WithTimeout(config.FetchTimeout()),
			registry.WithLogger(logger),
		),
	}, nil
}

// path resolves a project-relative path.
func (s *session) path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(s.projectDir, rel)
}

func (s *session) components(fallbackUtils bool) *installer.Installer {
	return installer.New(s.client, s.out,
		installer.WithBaseline(config.BaselineDependencies()),
		installer.WithUtilityFallback(fallbackUtils || config.UtilityFallback()),
		installer.WithLogger(s.logger),
	)
}

// finishDeps installs deps when asked to, or prints the command that would.
// A failed install has already been reported and does not fail the command.
func (s *session) finishDeps(ctx context.Context, deps []string, install bool) {
	if len(deps) == 0 {
		return
	}

	pinned, hasPin := s.pinnedManager()

	if install {
		opts := []pkgmanager.Option{pkgmanager.WithLogger(s.logger)}
		if hasPin {
			opts = append(opts, pkgmanager.WithManager(pinned))
		}
		in := pkgmanager.NewInstaller(s.projectDir, newRunner(s.cmd), s.prompter, s.out, opts...)
		if err := in.Install(ctx, deps); err != nil {
			s.logger.Debug("dependency install failed", "err", err)
		}
		return
	}

	declared, err := pkgmanager.DetectDeclared(s.projectDir)
	if err != nil {
		s.out.Warn("Could not read declared dependencies: %v", err)
	}
	missing := pkgmanager.FilterMissing(deps, declared)
	if len(missing) == 0 {
		s.out.Info("All required dependencies are already in package.json")
		return
	}

	m := pinned
	if !hasPin {
		var ok bool
		if m, ok = pkgmanager.DetectLockfile(s.projectDir); !ok {
			m = pkgmanager.NPM
		}
	}
	s.out.Info("Don't forget to install required dependencies:")
	s.out.Plain("  %s", m.CommandLine(missing))
}

// pinnedManager returns the package_manager setting when it names a
// supported manager.
func (s *session) pinnedManager() (pkgmanager.Manager, bool) {
	name := config.PackageManager()
	if name == "" {
		return "", false
	}
	m, err := pkgmanager.ParseManager(name)
	if err != nil {
		s.out.Warn("Ignoring package_manager setting: %v", err)
		return "", false
	}
	return m, true
}
