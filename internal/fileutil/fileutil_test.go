package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(existing file) = false")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("FileExists(missing file) = true")
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Error("DirExists(existing dir) = false")
	}
	if DirExists(file) {
		t.Error("DirExists(file) = true")
	}
	if DirExists(filepath.Join(dir, "absent")) {
		t.Error("DirExists(missing) = true")
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.tex")
	if err := WriteFile(path, "content"); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Errorf("written content = %q, want %q", data, "content")
	}
}

func TestRemoveIfExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "temp.aux")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := RemoveIfExists(file); err != nil {
		t.Errorf("RemoveIfExists(existing) unexpected error: %v", err)
	}
	if FileExists(file) {
		t.Error("file still exists after RemoveIfExists")
	}

	// Removing a file that is already gone is not an error.
	if err := RemoveIfExists(file); err != nil {
		t.Errorf("RemoveIfExists(missing) unexpected error: %v", err)
	}
}
