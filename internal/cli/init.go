package cli

import (
	"errors"
	"fmt"

	"github.com/natively-ui/natively/internal/config"
	"github.com/natively-ui/natively/internal/platform"
	"github.com/natively-ui/natively/internal/registry"
	"github.com/spf13/cobra"
)

var (
	initFallbackUtils bool
	initInstallDeps   bool
)

func init() {
	initCmd.Flags().BoolVar(&initFallbackUtils, "fallback-utils", false, "Write the built-in utility module if the registry copy cannot be fetched")
	initCmd.Flags().BoolVarP(&initInstallDeps, "install-deps", "i", false, "Install required dependencies automatically")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the component library in your project",
	Long: `Initialize the component library in your project.

Creates the components directory and, unless declined, fetches the shared
utility module (the cn() class-name helper) into <utils_dir>/utils.ts.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	s.out.Info("Initializing React Native UI components...")

	componentsDir := s.path(config.ComponentsDir())
	created, err := platform.EnsureDir(componentsDir)
	if err != nil {
		return fmt.Errorf("creating components directory: %w", err)
	}
	if created {
		s.out.Info("Created directory: %s", componentsDir)
	}

	setup, err := s.prompter.Confirm("Do you want to set up utility functions (cn, etc.)?", true)
	if err != nil {
		s.out.Warn("Could not read answer (%v); setting up utility functions", err)
		setup = true
	}
	if !setup {
		s.out.Success("Initialization complete!")
		return nil
	}

	fallback := initFallbackUtils || config.UtilityFallback()
	deps, err := s.components(initFallbackUtils).InstallUtility(ctx, s.path(config.UtilsDir()))
	if err != nil {
		var fe *registry.FetchError
		if errors.As(err, &fe) && !fallback {
			s.out.Info("Run again with --fallback-utils to write the built-in utility module instead")
		}
		return fmt.Errorf("setting up utility functions: %w", err)
	}

	s.finishDeps(ctx, deps, initInstallDeps)
	s.out.Success("Initialization complete!")
	return nil
}
