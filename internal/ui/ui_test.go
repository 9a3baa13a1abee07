package ui

import (
	"bytes"
	"testing"
)

func TestPrinterPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Prompt("Input project name")
	p.Info("Copy from %s to %s", p.Path("/a"), p.Path("/b"))
	p.Success("Created %d files", 3)
	p.Failure("The input is illegal")

	want := "Input project name\n" +
		"Copy from /a to /b\n" +
		"Created 3 files\n" +
		"The input is illegal\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinterWriter(t *testing.T) {
	var buf bytes.Buffer
	if New(&buf).Writer() != &buf {
		t.Error("Writer should return the wrapped writer")
	}
}
