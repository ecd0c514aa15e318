package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"kin", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"kin", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"kin"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckCommandPasses(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return checkCommand([]string{"-no-color", "testdata/ok.yaml"})
	})
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "2 classes checked, 0 failed") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCheckCommandReportsFailures(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return checkCommand([]string{"-no-color", "testdata/zoo.yaml"})
	})
	if err == nil {
		t.Fatalf("expected failure exit")
	}
	if !strings.Contains(err.Error(), "3 of 5 classes failed") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "✗ Cat") {
		t.Fatalf("failures missing from output: %q", out)
	}
}

func TestCheckCommandRequiresPath(t *testing.T) {
	if err := checkCommand(nil); err == nil {
		t.Fatalf("expected manifest path error")
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	if err := checkCommand([]string{"testdata/nope.yaml"}); err == nil {
		t.Fatalf("expected read error")
	}
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fnErr := fn()
	if err := w.Close(); err != nil {
		t.Fatalf("close pipe: %v", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	return buf.String(), fnErr
}
