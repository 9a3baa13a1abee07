//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // MKTARGET_HOME, holds the user config
	ProjectDir string // the SDK Project directory new projects are created in
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so user config never leaks into a test. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("MKTARGET_HOME", env.HomeDir)
	t.Setenv("MKTARGET_ROOT", "")

	return env
}

// setupSDK creates a synthetic SDK Project tree shaped like the real one:
// the dependent Template, a few numbered examples and an application.
func setupSDK(t *testing.T, projectDir string) {
	t.Helper()

	// --- Dependent template ---
	writeFile(t, filepath.Join(projectDir, "0_Examples/Template/User/main.c"), `#include "../../../Libraries/Device/system.h"
int main(void) { return 0; }
`)
	writeFile(t, filepath.Join(projectDir, "0_Examples/Template/MDK-ARM/Template.uvprojx"), "<Project><Target>Template</Target></Project>\n")
	writeFile(t, filepath.Join(projectDir, "0_Examples/Template/MDK-ARM/Objects/Template.axf"), "ELF")
	writeFile(t, filepath.Join(projectDir, "0_Examples/Template/readme.txt"), "Template project\n")

	// --- Independent template ---
	writeFile(t, filepath.Join(projectDir, "0_Examples/23_1_Predriver_Operation/User/main.c"), "/* predriver */\n")
	writeFile(t, filepath.Join(projectDir, "0_Examples/23_1_Predriver_Operation/Libraries/Device/system.h"), "#pragma once\n")
	writeFile(t, filepath.Join(projectDir, "0_Examples/23_1_Predriver_Operation/MDK-ARM/Predriver.uvprojx"), "<Project/>\n")

	// --- Other examples ---
	writeFile(t, filepath.Join(projectDir, "0_Examples/10_1_ADC_Calibration/User/main.c"), "/* adc */\n")
	writeFile(t, filepath.Join(projectDir, "0_Examples/24_1_LIN_Master_TX/User/main.c"), "/* lin */\n")

	// --- Application ---
	writeFile(t, filepath.Join(projectDir, "1_Application/IAP_UART/IAP_App/main.c"), "/* iap */\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// countEntries returns the number of files and directories under root, root excluded.
func countEntries(t *testing.T, root string) (files, dirs int) {
	t.Helper()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			dirs++
		} else {
			files++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files, dirs
}
