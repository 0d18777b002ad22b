package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/natively-ui/natively/internal/branding"
	"github.com/natively-ui/natively/internal/config"
	"github.com/natively-ui/natively/internal/console"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags shared by every command.
var (
	flagCwd      string
	flagVerbose  bool
	flagRegistry string
	flagYes      bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` adds React Native UI components to your project.

Components are fetched from a remote registry and copied into your source
tree, so you own the code. Their npm dependencies can be installed with the
package manager your project already uses.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := projectDir()
		if err != nil {
			return err
		}
		if err := config.Load(dir); err != nil {
			return err
		}
		if showBanner(cmd) {
			console.New(cmd.OutOrStdout()).Welcome(branding.DisplayName())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCwd, "cwd", "", "Project directory (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print diagnostic logs to stderr")
	rootCmd.PersistentFlags().StringVar(&flagRegistry, "registry", "", "Registry base URL (overrides the registry_url setting)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Answer every prompt with its default")
}

// showBanner reports whether cmd prints the welcome banner. Commands whose
// output is meant for scripts skip it.
func showBanner(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "config":
			return false
		}
	}
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		return false
	}
	return true
}

// Execute runs the root command with build info injected via ldflags. A
// returned error has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		console.New(rootCmd.ErrOrStderr()).Error("%v", err)
	}
	return err
}
