package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if CLIName() != "mktarget" {
		t.Errorf("CLIName() = %q", CLIName())
	}
	if ProjectFile() != "mktarget.yaml" {
		t.Errorf("ProjectFile() = %q", ProjectFile())
	}
	if HomeDir() != ".mktarget" {
		t.Errorf("HomeDir() = %q", HomeDir())
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("root"); got != "MKTARGET_ROOT" {
		t.Errorf("EnvVar(root) = %q, want MKTARGET_ROOT", got)
	}
	if got := EnvVar("strict_category"); got != "MKTARGET_STRICT_CATEGORY" {
		t.Errorf("EnvVar(strict_category) = %q", got)
	}
}
