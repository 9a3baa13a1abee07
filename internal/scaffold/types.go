package scaffold

import (
	"github.com/agentx-labs/mktarget/internal/layout"
)

// Category selects the root directory a new project is created under.
type Category int

const (
	Example Category = iota
	Application
)

func (c Category) String() string {
	switch c {
	case Example:
		return "example"
	case Application:
		return "application"
	default:
		return "unknown"
	}
}

// Dir returns the category root directory name in l.
func (c Category) Dir(l layout.Layout) string {
	if c == Application {
		return l.ApplicationDir
	}
	return l.ExamplesDir
}

// TemplateKind selects which existing example is copied.
type TemplateKind int

const (
	// Dependent projects start from the generic Template directory and
	// rely on the shared SDK libraries.
	Dependent TemplateKind = iota
	// Independent projects start from a complete, self-contained example.
	Independent
)

func (k TemplateKind) String() string {
	switch k {
	case Dependent:
		return "dependent"
	case Independent:
		return "independent"
	default:
		return "unknown"
	}
}

// Dir returns the name of the source directory under the examples root.
func (k TemplateKind) Dir(l layout.Layout) string {
	if k == Independent {
		return l.IndependentProject
	}
	return l.TemplateDir
}

// PathPair is a resolved copy: the template directory and the new project directory.
type PathPair struct {
	Source      string
	Destination string
}

// Outcome names how a session ended.
type Outcome int

const (
	// Success means the template was copied.
	Success Outcome = iota
	// Planned means a dry run resolved the paths without copying.
	Planned
	// NoOperation means the category answer was not recognized.
	NoOperation
	// InvalidSelection means a category or template kind answer was not recognized.
	InvalidSelection
	// InvalidName means the project name was rejected.
	InvalidName
	// InputError means input ended or failed before all answers were read.
	InputError
	// CopyFailure means the copy itself failed.
	CopyFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Planned:
		return "planned"
	case NoOperation:
		return "no-operation"
	case InvalidSelection:
		return "invalid-selection"
	case InvalidName:
		return "invalid-name"
	case InputError:
		return "input-error"
	case CopyFailure:
		return "copy-failure"
	default:
		return "unknown"
	}
}

// ExitCode is the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	switch o {
	case Success, Planned, NoOperation:
		return 0
	default:
		return 1
	}
}
