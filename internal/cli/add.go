package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/natively-ui/natively/internal/branding"
	"github.com/natively-ui/natively/internal/config"
	"github.com/natively-ui/natively/internal/installer"
	"github.com/natively-ui/natively/internal/platform"
	"github.com/spf13/cobra"
)

var (
	addDirectory   string
	addAll         bool
	addInstallDeps bool
)

func init() {
	addCmd.Flags().StringVarP(&addDirectory, "directory", "d", "", "The directory to add the component to (default: components_dir setting, components/ui)")
	addCmd.Flags().BoolVarP(&addAll, "all", "a", false, "Add all components")
	addCmd.Flags().BoolVarP(&addInstallDeps, "install-deps", "i", false, "Install dependencies automatically")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [component]",
	Short: "Add a component to your project",
	Long: `Add a component to your project.

Without an argument, choose the component from a list. With --all, every
component in the registry is added; the run stops at the first failure and
keeps the files already written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	dir := addDirectory
	if dir == "" {
		dir = config.ComponentsDir()
	}
	targetDir := s.path(dir)
	comps := s.components(false)

	utilsFile := filepath.Join(config.UtilsDir(), "utils.ts")
	if !platform.Exists(s.path(utilsFile)) {
		s.out.Warn("Utility functions not found. Run %q first or create %s manually.", branding.CLIName()+" init", utilsFile)
	}

	if addAll {
		s.out.Info("Adding all components...")
		deps, err := comps.InstallAll(ctx, targetDir)
		if err != nil {
			var batch *installer.BatchError
			if errors.As(err, &batch) && len(batch.Completed) > 0 {
				s.out.Warn("Already added before the failure: %s", strings.Join(batch.Completed, ", "))
			}
			return fmt.Errorf("failed to add all components: %w", err)
		}
		s.out.Success("All components added successfully!")
		s.finishDeps(ctx, deps, addInstallDeps)
		return nil
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		names := comps.ListComponents(ctx)
		idx, err := s.prompter.Select("Which component would you like to add?", names, 0)
		if err != nil {
			return fmt.Errorf("selecting component: %w", err)
		}
		name = names[idx]
	}

	s.out.Info("Adding %s...", name)
	deps, err := comps.InstallComponent(ctx, name, targetDir)
	if err != nil {
		return fmt.Errorf("failed to add %s component: %w", name, err)
	}
	s.out.Success("%s component added successfully!", name)

	s.finishDeps(ctx, deps, addInstallDeps)
	return nil
}
