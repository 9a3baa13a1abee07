package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/agentx-labs/mktarget/internal/branding"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// Default directory names of the SDK tree.
const (
	DefaultExamplesDir        = "0_Examples"
	DefaultApplicationDir     = "1_Application"
	DefaultTemplateDir        = "Template"
	DefaultIndependentProject = "23_1_Predriver_Operation"
)

// ErrInvalidDirName is returned for a name that is not a single directory
// under the scaffolding root.
var ErrInvalidDirName = errors.New("invalid directory name")

// CheckDirName applies the project file's directory name rules to values
// that come from elsewhere: one non-empty path element, no whitespace, not
// "." or "..".
func CheckDirName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidDirName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q is reserved", ErrInvalidDirName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidDirName, name)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidDirName, name)
	}
	return nil
}

// Layout is the immutable mapping from categories and template kinds to
// directory names. Paths are always relative to the scaffolding root.
type Layout struct {
	ExamplesDir        string   `yaml:"examples_dir"`
	ApplicationDir     string   `yaml:"application_dir"`
	TemplateDir        string   `yaml:"template_dir"`
	IndependentProject string   `yaml:"independent_project"`
	Exclude            []string `yaml:"exclude,omitempty"`
	Requires           string   `yaml:"requires,omitempty"`

	// Source is the project file the layout was read from, empty for defaults.
	Source string `yaml:"-"`
}

// Default returns the layout of a stock SDK checkout.
func Default() Layout {
	return Layout{
		ExamplesDir:        DefaultExamplesDir,
		ApplicationDir:     DefaultApplicationDir,
		TemplateDir:        DefaultTemplateDir,
		IndependentProject: DefaultIndependentProject,
	}
}

// ProjectFilePath returns the path of the layout file for root.
func ProjectFilePath(root string) string {
	return filepath.Join(root, branding.ProjectFile())
}

// Load reads the project file under root, if any, validates it and overlays
// the values it sets on base. A missing project file is not an error.
func Load(fsys afero.Fs, root string, base Layout) (Layout, error) {
	path := ProjectFilePath(root)

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return base, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return base, &ValidationError{Path: path, Issues: result.Issues}
	}

	var file Layout
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("parsing %s: %w", path, err)
	}

	merged := base.overlay(file)
	merged.Source = path
	return merged, nil
}

// overlay returns l with every non-empty field of o applied on top.
func (l Layout) overlay(o Layout) Layout {
	if o.ExamplesDir != "" {
		l.ExamplesDir = o.ExamplesDir
	}
	if o.ApplicationDir != "" {
		l.ApplicationDir = o.ApplicationDir
	}
	if o.TemplateDir != "" {
		l.TemplateDir = o.TemplateDir
	}
	if o.IndependentProject != "" {
		l.IndependentProject = o.IndependentProject
	}
	if len(o.Exclude) > 0 {
		l.Exclude = append([]string(nil), o.Exclude...)
	}
	if o.Requires != "" {
		l.Requires = o.Requires
	}
	return l
}

// DirCheck is the state of one directory the layout expects to exist.
type DirCheck struct {
	Name   string // What the directory is for, e.g. "examples root".
	Path   string // Absolute path that was checked.
	Exists bool
}

// Check reports which of the directories the layout relies on exist under root.
func Check(fsys afero.Fs, root string, l Layout) []DirCheck {
	wanted := []struct {
		name string
		path string
	}{
		{"examples root", filepath.Join(root, l.ExamplesDir)},
		{"dependent template", filepath.Join(root, l.ExamplesDir, l.TemplateDir)},
		{"independent template", filepath.Join(root, l.ExamplesDir, l.IndependentProject)},
		{"application root", filepath.Join(root, l.ApplicationDir)},
	}

	checks := make([]DirCheck, 0, len(wanted))
	for _, w := range wanted {
		ok, _ := afero.DirExists(fsys, w.path)
		checks = append(checks, DirCheck{Name: w.name, Path: w.path, Exists: ok})
	}
	return checks
}

// Templates lists the directories under the examples root, sorted by name.
// Any of them can be used as a scaffolding source.
func Templates(fsys afero.Fs, root string, l Layout) ([]string, error) {
	dir := filepath.Join(root, l.ExamplesDir)

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading examples root %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
