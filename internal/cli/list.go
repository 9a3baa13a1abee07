package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/agentx-labs/mktarget/internal/layout"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// listEntry represents a template directory for display.
type listEntry struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func newListCmd(g *globalOptions, info buildInfo) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the example directories that can serve as templates",
		Long: `List every directory under the examples root. The dependent and
independent templates used by "new" are marked in the ROLE column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := afero.NewOsFs()
			root, err := resolveRoot(g)
			if err != nil {
				return err
			}
			l, err := loadLayout(fsys, root, info)
			if err != nil {
				return err
			}

			names, err := layout.Templates(fsys, root, l)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No examples found under %s.\n", l.ExamplesDir)
				return nil
			}

			entries := make([]listEntry, len(names))
			for i, name := range names {
				entries[i] = listEntry{Name: name, Role: templateRole(l, name)}
			}

			if asJSON {
				return printListJSON(cmd, entries)
			}
			return printListTable(cmd, entries)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func templateRole(l layout.Layout, name string) string {
	switch name {
	case l.TemplateDir:
		return "dependent"
	case l.IndependentProject:
		return "independent"
	default:
		return "example"
	}
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tROLE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Role)
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
