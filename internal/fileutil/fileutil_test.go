package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beatrizcardc/ABNT-formatter/internal/fileutil"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.docx")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("existing file reported as missing")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing.docx")) {
		t.Error("missing file reported as existing")
	}
	if fileutil.FileExists(dir) {
		t.Error("directory reported as file")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.docx")

	if err := fileutil.WriteFileAtomic(path, []byte("primeiro"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "primeiro" {
		t.Errorf("content = %q", got)
	}

	// Overwrites in place.
	if err := fileutil.WriteFileAtomic(path, []byte("segundo"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, _ = os.ReadFile(path)
	if string(got) != "segundo" {
		t.Errorf("content after overwrite = %q", got)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("leftover files in dir: %d entries", len(entries))
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	t.Parallel()

	err := fileutil.WriteFileAtomic(filepath.Join(t.TempDir(), "nao", "existe", "x.docx"), []byte("x"), 0o644)
	if err == nil {
		t.Error("want error for missing directory")
	}
}
