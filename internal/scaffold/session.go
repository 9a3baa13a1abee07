package scaffold

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agentx-labs/mktarget/internal/copytree"
	"github.com/agentx-labs/mktarget/internal/layout"
	"github.com/agentx-labs/mktarget/internal/logging"
	"github.com/agentx-labs/mktarget/internal/platform"
	"github.com/agentx-labs/mktarget/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Prompt and status texts shown to the user.
const (
	PromptCategory     = "Enter 0 or 1, means in %s or %s"
	PromptName         = "Input project name"
	PromptTemplateKind = "Enter d or i, means dependent or independent"

	MsgNoOperation = "no operation"
	MsgIllegal     = "The input is illegal"
)

// Answers holds answers supplied up front. A nil field is asked for
// interactively; a non-nil one is parsed exactly like typed input.
type Answers struct {
	Category *string
	Name     *string
	Template *string
}

// Session is one scaffolding run.
type Session struct {
	In  io.Reader
	Out *ui.Printer
	Fs  afero.Fs

	// Root is the directory the layout is resolved against, normally the
	// working directory.
	Root   string
	Layout layout.Layout

	Answers Answers
	// Exclude adds glob patterns to the layout's exclude list.
	Exclude []string
	// DryRun stops after reporting the resolved paths.
	DryRun bool
	// Pause waits for Enter after a run that did not fail.
	Pause bool
	// StrictCategory treats an unrecognized category as InvalidSelection
	// instead of a silent no-op.
	StrictCategory bool
}

// Result is what a session produced.
type Result struct {
	Outcome  Outcome
	Category Category
	Name     string
	Kind     TemplateKind
	Paths    PathPair
	Stats    *copytree.Stats
	// Err is set for every outcome with a non-zero exit code.
	Err error
}

// Run asks for the answers in order, stops at the first rejected one and
// otherwise copies the template. It never exits the process.
func (s *Session) Run() *Result {
	log := logging.GetLogger("scaffold")
	in := bufio.NewReader(s.In)
	res := s.run(in)

	var ev *zerolog.Event
	if res.Err != nil {
		ev = log.Warn().Err(res.Err)
	} else {
		ev = log.Info()
	}
	ev.Str("outcome", res.Outcome.String()).
		Str("source", res.Paths.Source).
		Str("destination", res.Paths.Destination).
		Msg("Session finished")

	if s.Pause && (res.Outcome == Success || res.Outcome == NoOperation) {
		if err := platform.Pause(in, s.Out.Writer()); err != nil {
			log.Debug().Err(err).Msg("Pause interrupted")
		}
	}
	return res
}

func (s *Session) run(in *bufio.Reader) *Result {
	log := logging.GetLogger("scaffold")
	res := &Result{}

	raw, err := s.answer(in, s.Answers.Category, fmt.Sprintf(PromptCategory, s.Layout.ExamplesDir, s.Layout.ApplicationDir))
	if err != nil {
		return res.fail(InputError, err)
	}
	res.Category, err = ParseCategory(raw)
	if err != nil {
		if s.StrictCategory {
			s.Out.Failure(MsgIllegal)
			return res.fail(InvalidSelection, err)
		}
		log.Debug().Err(err).Msg("Unrecognized category")
		s.Out.Info(MsgNoOperation)
		res.Outcome = NoOperation
		return res
	}

	raw, err = s.answer(in, s.Answers.Name, PromptName)
	if err != nil {
		return res.fail(InputError, err)
	}
	res.Name, err = ParseProjectName(raw)
	if err != nil {
		var nameErr *NameError
		if errors.As(err, &nameErr) {
			s.Out.Failure("%s, %s", MsgIllegal, nameErr.Reason)
		}
		return res.fail(InvalidName, err)
	}

	raw, err = s.answer(in, s.Answers.Template, PromptTemplateKind)
	if err != nil {
		return res.fail(InputError, err)
	}
	res.Kind, err = ParseTemplateKind(raw)
	if err != nil {
		s.Out.Failure(MsgIllegal)
		return res.fail(InvalidSelection, err)
	}

	res.Paths = Resolve(s.Root, s.Layout, res.Category, res.Name, res.Kind)
	log.Debug().
		Str("category", res.Category.String()).
		Str("name", res.Name).
		Str("kind", res.Kind.String()).
		Msg("Resolved answers")

	s.Out.Info("Copy from %s to %s", s.Out.Path(res.Paths.Source), s.Out.Path(res.Paths.Destination))

	if s.DryRun {
		res.Outcome = Planned
		return res
	}

	exclude := append(append([]string(nil), s.Layout.Exclude...), s.Exclude...)
	stats, err := copytree.Copy(s.Fs, res.Paths.Source, res.Paths.Destination, copytree.Options{
		Exclude: exclude,
		OnEntry: func(path string, isDir bool) {
			log.Trace().Str("path", path).Bool("dir", isDir).Msg("Copied")
		},
	})
	res.Stats = stats
	if err != nil {
		return res.fail(CopyFailure, fmt.Errorf("%w: %w", ErrCopyFailure, err))
	}

	s.Out.Success("Created %s (%d files, %d directories)", res.Paths.Destination, stats.Files, stats.Dirs)
	res.Outcome = Success
	return res
}

// answer returns the pre-supplied value if there is one, otherwise prompts
// and reads one line. Only the line terminator is stripped.
func (s *Session) answer(in *bufio.Reader, preset *string, prompt string) (string, error) {
	if preset != nil {
		return *preset, nil
	}

	s.Out.Prompt(prompt)
	line, err := in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrInput, err)
		}
		if line == "" {
			return "", fmt.Errorf("%w: %w", ErrInput, io.ErrUnexpectedEOF)
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (r *Result) fail(o Outcome, err error) *Result {
	r.Outcome = o
	r.Err = err
	return r
}
