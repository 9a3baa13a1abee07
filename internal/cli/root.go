package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentx-labs/mktarget/internal/branding"
	"github.com/agentx-labs/mktarget/internal/config"
	"github.com/agentx-labs/mktarget/internal/layout"
	"github.com/agentx-labs/mktarget/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose int
	root    string
}

// ExitError carries a process exit status out of a command. Reported is
// set when the user has already been told what went wrong.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Execute runs the root command with build info injected via ldflags.
// Errors not already shown to the user are printed to stderr.
func Execute(version, commit, date string) error {
	cmd := newRootCmd(buildInfo{Version: version, Commit: commit, Date: date})
	err := cmd.Execute()
	if err != nil {
		printError(cmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && (exitErr.Reported || exitErr.Err == nil) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func newRootCmd(info buildInfo) *cobra.Command {
	g := &globalOptions{}
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a new project by copying an example template.

Run it from the SDK's Project directory. It asks whether the project is an
example (0_Examples) or an application (1_Application), for the project name,
and whether to start from the dependent Template or the independent example,
then copies that directory tree to the new location.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			// A log file that cannot be opened has already been reported as a warning.
			_ = logging.Setup(g.verbose, cmd.ErrOrStderr(), config.LogFile())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, g, opts, info)
		},
	}

	cmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
	cmd.PersistentFlags().StringVar(&g.root, "root", "", "Scaffolding root containing 0_Examples and 1_Application (default: current directory)")
	opts.register(cmd)

	cmd.AddCommand(
		newNewCmd(g, info),
		newListCmd(g, info),
		newDoctorCmd(g, info),
		newConfigCmd(),
		newVersionCmd(info),
	)
	return cmd
}

// resolveRoot returns the absolute scaffolding root.
func resolveRoot(g *globalOptions) (string, error) {
	root := g.root
	if root == "" {
		if env := os.Getenv(branding.EnvVar("root")); env != "" {
			root = env
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("resolving working directory: %w", err)
			}
			root = wd
		}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root %s: %w", root, err)
	}
	return abs, nil
}

// loadLayout builds the layout for root: defaults, then user config, then
// the project file, and checks the project's version constraint.
func loadLayout(fsys afero.Fs, root string, info buildInfo) (layout.Layout, error) {
	base := layout.Default()
	if p := config.IndependentProject(); p != "" {
		// The environment can set this without going through config set.
		if err := layout.CheckDirName(p); err != nil {
			return base, fmt.Errorf("config key %s: %w", config.KeyIndependentProject, err)
		}
		base.IndependentProject = p
	}

	l, err := layout.Load(fsys, root, base)
	if err != nil {
		return l, err
	}
	if err := layout.CheckVersion(l, info.Version); err != nil {
		return l, err
	}
	return l, nil
}
