package cli

import (
	"github.com/agentx-labs/mktarget/internal/config"
	"github.com/agentx-labs/mktarget/internal/logging"
	"github.com/agentx-labs/mktarget/internal/platform"
	"github.com/agentx-labs/mktarget/internal/scaffold"
	"github.com/agentx-labs/mktarget/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newOptions are the flags of the scaffolding session. They are registered
// on both the root command and "new".
type newOptions struct {
	category string
	name     string
	template string
	exclude  []string
	dryRun   bool
	noPause  bool
}

func (o *newOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.category, "category", "", "Answer the category prompt: 0 (example) or 1 (application)")
	f.StringVar(&o.name, "name", "", "Answer the project name prompt")
	f.StringVar(&o.template, "template", "", "Answer the template prompt: d (dependent) or i (independent)")
	f.StringArrayVar(&o.exclude, "exclude", nil, "Skip files or directories matching this glob (repeatable)")
	f.BoolVar(&o.dryRun, "dry-run", false, "Show the source and destination without copying")
	f.BoolVar(&o.noPause, "no-pause", false, "Exit without waiting for Enter")
}

// answers returns the prompt answers given as flags.
func (o *newOptions) answers(cmd *cobra.Command) scaffold.Answers {
	var a scaffold.Answers
	if cmd.Flags().Changed("category") {
		v := o.category
		a.Category = &v
	}
	if cmd.Flags().Changed("name") {
		v := o.name
		a.Name = &v
	}
	if cmd.Flags().Changed("template") {
		v := o.template
		a.Template = &v
	}
	return a
}

func newNewCmd(g *globalOptions, info buildInfo) *cobra.Command {
	opts := &newOptions{}
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new project from a template (the default command)",
		Long: `Create a new project by copying a template directory.

Prompts for anything not given as a flag:

  category   0 = 0_Examples, 1 = 1_Application
  name       the new directory name, no whitespace
  template   d = dependent (0_Examples/Template)
             i = independent (0_Examples/23_1_Predriver_Operation)

Examples:
  mktarget new
  mktarget new --category 1 --name LIN_Gateway --template i
  mktarget new --category 0 --name ADC_Demo --template d --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, g, opts, info)
		},
	}
	opts.register(cmd)
	return cmd
}

func runNew(cmd *cobra.Command, g *globalOptions, opts *newOptions, info buildInfo) error {
	log := logging.GetLogger("cli.new")
	fsys := afero.NewOsFs()

	root, err := resolveRoot(g)
	if err != nil {
		return err
	}
	l, err := loadLayout(fsys, root, info)
	if err != nil {
		return err
	}
	log.Debug().Str("root", root).Str("layout", l.Source).Msg("Starting session")

	s := &scaffold.Session{
		In:             cmd.InOrStdin(),
		Out:            ui.New(cmd.OutOrStdout()),
		Fs:             fsys,
		Root:           root,
		Layout:         l,
		Answers:        opts.answers(cmd),
		Exclude:        opts.exclude,
		DryRun:         opts.dryRun,
		Pause:          config.Pause() && !opts.noPause && platform.IsTerminal(cmd.InOrStdin()),
		StrictCategory: config.StrictCategory(),
	}

	res := s.Run()
	if code := res.Outcome.ExitCode(); code != 0 {
		return &ExitError{
			Code: code,
			Err:  res.Err,
			// Rejected answers are explained by the session itself.
			Reported: res.Outcome == scaffold.InvalidName || res.Outcome == scaffold.InvalidSelection,
		}
	}
	return nil
}
