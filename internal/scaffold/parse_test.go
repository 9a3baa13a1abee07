package scaffold

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/agentx-labs/mktarget/internal/layout"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{"0", Example, false},
		{"1", Application, false},
		{"", 0, true},
		{"2", 0, true},
		{" 0", 0, true},
		{"0 ", 0, true},
		{"01", 0, true},
		{"example", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelection) {
					t.Fatalf("ParseCategory(%q) error = %v, want ErrInvalidSelection", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseProjectName(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantReason string
	}{
		{"plain", "Foo", ""},
		{"sdk style", "24_1_LIN_Master_TX", ""},
		{"dashes and dots", "my-app.v2", ""},
		{"inner space", "my app", ReasonWhitespace},
		{"leading space", " Foo", ReasonWhitespace},
		{"trailing space", "Foo ", ReasonWhitespace},
		{"tab", "Foo\tBar", ReasonWhitespace},
		{"carriage return", "Foo\r", ReasonWhitespace},
		{"no-break space", "Foo\u00a0Bar", ReasonWhitespace},
		{"ideographic space", "Foo\u3000", ReasonWhitespace},
		{"empty", "", ReasonEmpty},
		{"slash", "a/b", ReasonSeparator},
		{"backslash", `a\b`, ReasonSeparator},
		{"dot", ".", ReasonReserved},
		{"dot dot", "..", ReasonReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProjectName(tt.raw)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("ParseProjectName(%q) unexpected error: %v", tt.raw, err)
				}
				if got != tt.raw {
					t.Errorf("ParseProjectName(%q) = %q", tt.raw, got)
				}
				return
			}

			if !errors.Is(err, ErrInvalidName) {
				t.Fatalf("ParseProjectName(%q) error = %v, want ErrInvalidName", tt.raw, err)
			}
			var nameErr *NameError
			if !errors.As(err, &nameErr) {
				t.Fatalf("expected *NameError, got %T", err)
			}
			if nameErr.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", nameErr.Reason, tt.wantReason)
			}
		})
	}
}

func TestParseTemplateKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    TemplateKind
		wantErr bool
	}{
		{"d", Dependent, false},
		{"i", Independent, false},
		{"D", 0, true},
		{"I", 0, true},
		{"", 0, true},
		{"dependent", 0, true},
		{"d ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTemplateKind(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelection) {
					t.Fatalf("ParseTemplateKind(%q) error = %v, want ErrInvalidSelection", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTemplateKind(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseTemplateKind(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cwd := filepath.FromSlash("/home/dev/sdk/Project")
	l := layout.Default()

	tests := []struct {
		name     string
		category Category
		project  string
		kind     TemplateKind
		wantSrc  string
		wantDst  string
	}{
		{
			name:     "example from dependent template",
			category: Example,
			project:  "Foo",
			kind:     Dependent,
			wantSrc:  filepath.Join(cwd, "0_Examples", "Template"),
			wantDst:  filepath.Join(cwd, "0_Examples", "Foo"),
		},
		{
			name:     "application from independent project",
			category: Application,
			project:  "Bar",
			kind:     Independent,
			wantSrc:  filepath.Join(cwd, "0_Examples", "23_1_Predriver_Operation"),
			wantDst:  filepath.Join(cwd, "1_Application", "Bar"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(cwd, l, tt.category, tt.project, tt.kind)
			if got.Source != tt.wantSrc {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSrc)
			}
			if got.Destination != tt.wantDst {
				t.Errorf("Destination = %q, want %q", got.Destination, tt.wantDst)
			}
		})
	}
}

func TestResolve_CustomLayout(t *testing.T) {
	l := layout.Default()
	l.IndependentProject = "24_1_LIN_Master_TX"
	l.ApplicationDir = "Apps"

	got := Resolve("/sdk", l, Application, "Baz", Independent)
	if want := filepath.Join("/sdk", "0_Examples", "24_1_LIN_Master_TX"); got.Source != want {
		t.Errorf("Source = %q, want %q", got.Source, want)
	}
	if want := filepath.Join("/sdk", "Apps", "Baz"); got.Destination != want {
		t.Errorf("Destination = %q, want %q", got.Destination, want)
	}
}

func TestOutcomeExitCode(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    int
	}{
		{Success, 0},
		{Planned, 0},
		{NoOperation, 0},
		{InvalidSelection, 1},
		{InvalidName, 1},
		{InputError, 1},
		{CopyFailure, 1},
	}
	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			if got := tt.outcome.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
