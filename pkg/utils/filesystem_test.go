package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/utils"
)

func TestExists(t *testing.T) {
	fs := utils.NewFileSystemUtils()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "a.tex")
	if fs.Exists(path) {
		t.Error("expected missing file to not exist")
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if !fs.Exists(path) {
		t.Error("expected written file to exist")
	}
}

func TestIsDirectory(t *testing.T) {
	fs := utils.NewFileSystemUtils()
	tmpDir := t.TempDir()

	if !fs.IsDirectory(tmpDir) {
		t.Error("expected temp dir to be a directory")
	}

	path := filepath.Join(tmpDir, "a.tex")
	os.WriteFile(path, []byte("x"), 0644)
	if fs.IsDirectory(path) {
		t.Error("expected file to not be a directory")
	}
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	fs := utils.NewFileSystemUtils()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "nested", "dir", "out.tex")
	if err := fs.WriteFile(path, []byte("content")); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("expected content, got %q", data)
	}
}

func TestWriteFile_NoTempFileLeftBehind(t *testing.T) {
	fs := utils.NewFileSystemUtils()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "out.tex")
	if err := fs.WriteFile(path, []byte("content")); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	if fs.Exists(path + ".tmp") {
		t.Error("temp file should be renamed away")
	}
}
