package layout

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateFile_ValidLayouts(t *testing.T) {
	for _, file := range []string{"valid-full.yaml", "valid-empty.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(afero.NewOsFs(), testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidLayouts(t *testing.T) {
	tests := []struct {
		file string
		path string
		desc string
	}{
		{"invalid-unknown-key.yaml", "", "unknown top-level key"},
		{"invalid-space-in-dir.yaml", "/template_dir", "directory name with a space"},
		{"invalid-parent-dir.yaml", "/independent_project", "directory name escapes the root"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(afero.NewOsFs(), testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s (%s), got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Fatalf("expected at least one issue for %s", tt.file)
			}
			if tt.path == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an issue at %s, got %+v", tt.path, result.Issues)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(afero.NewOsFs(), testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(afero.NewOsFs(), testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := Validate([]byte("template_dir: \"a b\"\n"))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	issue := result.Issues[0]
	if issue.Keyword == "" {
		t.Error("expected keyword to be set")
	}
	if issue.Message == "" {
		t.Error("expected message to be set")
	}
}
