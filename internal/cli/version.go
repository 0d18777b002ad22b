package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/natively-ui/natively/internal/branding"
	"github.com/natively-ui/natively/internal/console"
	"github.com/natively-ui/natively/internal/updater"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
	versionCheck bool
)

// newUpdater builds the release checker used by version --check.
var newUpdater = func(current string) *updater.Updater {
	return updater.New(current, updater.WithLogger(console.NewLogger(rootCmd.ErrOrStderr(), flagVerbose)))
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub Releases for a newer version")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		if versionCheck {
			return checkForUpdate(cmd)
		}
		return nil
	},
}

func checkForUpdate(cmd *cobra.Command) error {
	res, err := newUpdater(buildVersion).Check(cmd.Context())
	if errors.Is(err, updater.ErrDevelopmentBuild) {
		fmt.Fprintln(cmd.OutOrStdout(), "Development build; skipping update check.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}

	if !res.UpdateAvailable {
		fmt.Fprintf(cmd.OutOrStdout(), "You are on the latest version (%s).\n", res.Latest.Version)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "A newer version is available: %s\n", res.Latest.Version)
	if res.Latest.HTMLURL != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Download it from %s\n", res.Latest.HTMLURL)
	}
	return nil
}
