package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if !Exists(dir) {
		t.Fatalf("directory %s was not created", dir)
	}
	// Second call is a no-op
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() on existing directory error = %v", err)
	}
}

func TestEnsureDirOverFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := EnsureDir(file)
	if !errors.Is(err, ErrFileSystem) {
		t.Errorf("EnsureDir() error = %v, want ErrFileSystem", err)
	}
}

func TestRemoveIfExists(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.wav")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := RemoveIfExists(file); err != nil {
		t.Fatalf("RemoveIfExists() error = %v", err)
	}
	if Exists(file) {
		t.Error("file still exists after RemoveIfExists()")
	}
	if err := RemoveIfExists(file); err != nil {
		t.Errorf("RemoveIfExists() on missing file error = %v", err)
	}
}
