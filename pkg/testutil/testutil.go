package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// MemFs returns an in-memory filesystem holding files, keyed by absolute
// path. Parent directories are created as needed.
func MemFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		CreateFile(t, fs, path, content)
	}
	return fs
}

// CreateFile writes content to path on fs, creating parent directories.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path on fs and fails the test if it
// cannot be read.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("File %s does not exist", path)
		}
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}
