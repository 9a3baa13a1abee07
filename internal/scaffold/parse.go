package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/agentx-labs/mktarget/internal/layout"
)

var (
	// ErrInvalidSelection is returned for an unrecognized menu answer.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrInvalidName is returned for a project name that cannot be a directory.
	ErrInvalidName = errors.New("invalid project name")
	// ErrInput is returned when an answer could not be read.
	ErrInput = errors.New("reading input")
	// ErrCopyFailure wraps every error from the tree copy.
	ErrCopyFailure = errors.New("copy failed")
)

// Reasons a project name is rejected. They complete "The input is illegal, ...".
const (
	ReasonWhitespace = "contain space"
	ReasonEmpty      = "empty name"
	ReasonSeparator  = "contain path separator"
	ReasonReserved   = "reserved name"
)

// NameError describes a rejected project name.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidName, e.Name, e.Reason)
}

func (e *NameError) Unwrap() error { return ErrInvalidName }

// ParseCategory maps "0" to Example and "1" to Application.
func ParseCategory(raw string) (Category, error) {
	switch raw {
	case "0":
		return Example, nil
	case "1":
		return Application, nil
	default:
		return 0, fmt.Errorf("%w: category %q", ErrInvalidSelection, raw)
	}
}

// ParseProjectName accepts a name that can be created as a single directory
// directly under a category root. Whitespace anywhere is rejected.
func ParseProjectName(raw string) (string, error) {
	switch {
	case raw == "":
		return "", &NameError{Name: raw, Reason: ReasonEmpty}
	case strings.IndexFunc(raw, unicode.IsSpace) >= 0:
		return "", &NameError{Name: raw, Reason: ReasonWhitespace}
	case strings.ContainsAny(raw, `/\`) || strings.ContainsRune(raw, filepath.Separator):
		return "", &NameError{Name: raw, Reason: ReasonSeparator}
	case raw == "." || raw == "..":
		return "", &NameError{Name: raw, Reason: ReasonReserved}
	}
	return raw, nil
}

// ParseTemplateKind maps "d" to Dependent and "i" to Independent.
func ParseTemplateKind(raw string) (TemplateKind, error) {
	switch raw {
	case "d":
		return Dependent, nil
	case "i":
		return Independent, nil
	default:
		return 0, fmt.Errorf("%w: template kind %q", ErrInvalidSelection, raw)
	}
}

// Resolve computes the copy for a validated set of answers. The destination
// is <root>/<category dir>/<name>; the source is the template kind's
// directory under <root>/<examples dir>.
func Resolve(root string, l layout.Layout, c Category, name string, k TemplateKind) PathPair {
	return PathPair{
		Source:      filepath.Join(root, l.ExamplesDir, k.Dir(l)),
		Destination: filepath.Join(root, c.Dir(l), name),
	}
}
