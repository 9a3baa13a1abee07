package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/agentx-labs/mktarget/internal/layout"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newDoctorCmd(g *globalOptions, info buildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the scaffolding root has the expected layout",
		Long: `Validate the project layout file (if any) and check that the examples
root, both templates and the application root exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(g)
			if err != nil {
				return err
			}
			problems := runDoctor(cmd.OutOrStdout(), afero.NewOsFs(), root, info)
			if problems > 0 {
				return &ExitError{Code: 1, Err: fmt.Errorf("%d problem(s) found", problems)}
			}
			return nil
		},
	}
}

// runDoctor prints one line per check and returns the number of failures.
func runDoctor(w io.Writer, fsys afero.Fs, root string, info buildInfo) int {
	problems := 0
	fmt.Fprintf(w, "Root: %s\n", root)

	fmt.Fprintln(w, "Layout file:")
	path := layout.ProjectFilePath(root)
	result, err := layout.ValidateFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(w, "  [INFO] %s not present, using defaults\n", path)
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		problems++
	case !result.Valid:
		fmt.Fprintf(w, "  [FAIL] %s is invalid\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "         %s\n", issue)
		}
		problems++
	default:
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
	}

	l, err := loadLayout(fsys, root, info)
	if err != nil {
		var ve *layout.ValidationError
		if errors.As(err, &ve) {
			// Already reported above; check directories against the defaults.
			l = layout.Default()
		} else {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			problems++
		}
	}

	fmt.Fprintln(w, "Directories:")
	for _, c := range layout.Check(fsys, root, l) {
		if c.Exists {
			fmt.Fprintf(w, "  [ OK ] %s: %s\n", c.Name, c.Path)
		} else {
			fmt.Fprintf(w, "  [MISS] %s: %s\n", c.Name, c.Path)
			problems++
		}
	}
	return problems
}
