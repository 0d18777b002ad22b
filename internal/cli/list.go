package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/natively-ui/natively/internal/console"
	"github.com/natively-ui/natively/internal/installer"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the components available in the registry",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a registry component for display.
type listEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Dependencies []string `json:"dependencies"`
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if listJSON {
		// Keep stdout parseable.
		s.out = console.New(cmd.ErrOrStderr())
	}

	var entries []listEntry
	catalog, err := s.components(false).Catalog(cmd.Context())
	if err != nil {
		s.out.Warn("Could not load the component list (%v). Falling back to: %s", err, strings.Join(installer.FallbackComponents, ", "))
		for _, name := range installer.FallbackComponents {
			entries = append(entries, listEntry{Name: name, Dependencies: []string{}})
		}
	} else {
		for _, c := range catalog.Components() {
			deps := c.Dependencies
			if deps == nil {
				deps = []string{}
			}
			entries = append(entries, listEntry{Name: c.Name, Description: c.Description, Dependencies: deps})
		}
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tDEPENDENCIES")
	for _, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = "-"
		}
		deps := strings.Join(e.Dependencies, ", ")
		if deps == "" {
			deps = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, desc, deps)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
