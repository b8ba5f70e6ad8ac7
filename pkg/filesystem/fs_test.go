package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_WriteAndRead(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, fsys.MkdirAll("/proj/modules", 0755))
	require.NoError(t, fsys.WriteFile("/proj/main.tf", []byte("terraform {}\n"), 0644))

	content, err := fsys.ReadFile("/proj/main.tf")
	require.NoError(t, err)
	assert.Equal(t, "terraform {}\n", string(content))

	_, err = fsys.ReadFile("/proj/modules")
	assert.Error(t, err, "reading a directory should fail")
}

func TestWriteFile_UpdatesMode(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, fsys.WriteFile("/p/run.sh", []byte("#!/bin/sh\n"), 0644))
	require.NoError(t, fsys.WriteFile("/p/run.sh", []byte("#!/bin/sh\n"), 0755))

	info, err := fsys.Stat("/p/run.sh")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestIsEmptyDir(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/empty", 0755))
	require.NoError(t, fsys.MkdirAll("/full", 0755))
	require.NoError(t, fsys.WriteFile("/full/a", []byte("a"), 0644))

	tests := []struct {
		path string
		want bool
	}{
		{"/missing", true},
		{"/empty", true},
		{"/full", false},
		{"/full/a", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := IsEmptyDir(fsys, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOS()

	path := filepath.Join(dir, "nested", "file.txt")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte("x"), 0644))

	exists, err := Exists(fsys, path)
	require.NoError(t, err)
	assert.True(t, exists)

	entries, err := fsys.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "file.txt", entries[0].Name())
}
