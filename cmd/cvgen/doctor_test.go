package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// These tests swap the lookPath package variable, so they must not run in
// parallel with each other.

func stubLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := lookPath
	lookPath = fn
	t.Cleanup(func() { lookPath = orig })
}

// fakeCompiler writes an executable that mimics xelatex --version output.
func fakeCompiler(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xelatex")
	script := "#!/bin/sh\necho 'XeTeX 3.141592653 (TeX Live 2024)'\n"
	if err := os.WriteFile(path, []byte(script), 0o700); err != nil { // #nosec G306 -- must be executable
		t.Fatal(err)
	}
	return path
}

func TestDoctorCompilerMissing(t *testing.T) {
	stubLookPath(t, func(string) (string, error) {
		return "", errors.New("executable file not found in $PATH")
	})

	var stdout bytes.Buffer
	code := runDoctorCmd(nil, &stdout)

	if code != exitFailure {
		t.Errorf("exit code = %d, want %d", code, exitFailure)
	}
	out := stdout.String()
	if !strings.Contains(out, "[ERROR] Not found") {
		t.Error("output missing compiler error")
	}
	if !strings.Contains(out, "Status: Not ready") {
		t.Error("output missing not-ready status")
	}
}

func TestDoctorCompilerFound(t *testing.T) {
	compiler := fakeCompiler(t)
	stubLookPath(t, func(name string) (string, error) {
		if name != "xelatex" {
			t.Errorf("lookPath called with %q, want xelatex", name)
		}
		return compiler, nil
	})

	var stdout bytes.Buffer
	code := runDoctorCmd(nil, &stdout)

	if code != exitSuccess {
		t.Errorf("exit code = %d, want %d", code, exitSuccess)
	}
	out := stdout.String()
	if !strings.Contains(out, "[OK] Found at "+compiler) {
		t.Error("output missing compiler path")
	}
	if !strings.Contains(out, "XeTeX 3.141592653") {
		t.Error("output missing compiler version")
	}
}

func TestDoctorJSONOutput(t *testing.T) {
	compiler := fakeCompiler(t)
	stubLookPath(t, func(string) (string, error) { return compiler, nil })

	var stdout bytes.Buffer
	code := runDoctorCmd([]string{"--json"}, &stdout)

	if code != exitSuccess {
		t.Errorf("exit code = %d, want %d", code, exitSuccess)
	}

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !result.Compiler.Found {
		t.Error("compiler.found = false")
	}
	if result.Compiler.Path != compiler {
		t.Errorf("compiler.path = %q, want %q", result.Compiler.Path, compiler)
	}
	if !result.System.TempWritable {
		t.Error("system.temp_writable = false")
	}
	if result.Status != "ready" && result.Status != "warnings" {
		t.Errorf("status = %q", result.Status)
	}
}

func TestDoctorDispatchFromRun(t *testing.T) {
	stubLookPath(t, func(string) (string, error) {
		return "", errors.New("not found")
	})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"cvgen", "doctor"}, &stdout, &stderr)

	if code != exitFailure {
		t.Errorf("exit code = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stdout.String(), "cvgen doctor") {
		t.Error("stdout missing doctor header")
	}
}
