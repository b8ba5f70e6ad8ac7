package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/iacinit/pkg/filesystem"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// WriteFile writes content to path inside fsys, creating parents.
func WriteFile(t *testing.T, fsys filesystem.FS, path, content string) {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile reads a file from fsys and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, fsys filesystem.FS, path string) string {
	t.Helper()

	content, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// AssertFileContent checks that a file exists in fsys and has the expected content.
func AssertFileContent(t *testing.T, fsys filesystem.FS, path, expected string) {
	t.Helper()

	actual := ReadFile(t, fsys, path)
	if actual != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertMode checks the permission bits of path in fsys.
func AssertMode(t *testing.T, fsys filesystem.FS, path string, expected os.FileMode) {
	t.Helper()

	info, err := fsys.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if info.Mode().Perm() != expected {
		t.Errorf("File %s mode mismatch\nExpected: %v\nActual: %v", path, expected, info.Mode().Perm())
	}
}

// AssertNoFile checks that path does not exist in fsys.
func AssertNoFile(t *testing.T, fsys filesystem.FS, path string) {
	t.Helper()

	if _, err := fsys.Stat(path); !os.IsNotExist(err) {
		t.Errorf("File %s exists but should not", path)
	}
}

// SkipOnWindows skips the test if running on Windows.
func SkipOnWindows(t *testing.T) {
	t.Helper()

	if os.PathSeparator == '\\' {
		t.Skip("Test not supported on Windows")
	}
}
