package io

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaFileSystem_IsDir(t *testing.T) {
	mfs := &MediaFileSystem{}
	dir := t.TempDir()

	isDir, err := mfs.IsDir(dir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	file := filepath.Join(dir, "movie.mkv")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	isDir, err = mfs.IsDir(file)
	assert.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = mfs.IsDir(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.False(t, isDir)
}

func TestMediaFileSystem_EnsureDir(t *testing.T) {
	mfs := &MediaFileSystem{}
	dir := t.TempDir()

	t.Run("creates missing directories", func(t *testing.T) {
		target := filepath.Join(dir, "a", "b")
		assert.NoError(t, mfs.EnsureDir(target))

		isDir, err := mfs.IsDir(target)
		assert.NoError(t, err)
		assert.True(t, isDir)
	})

	t.Run("existing directory", func(t *testing.T) {
		assert.NoError(t, mfs.EnsureDir(dir))
	})

	t.Run("file in the way", func(t *testing.T) {
		file := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		assert.ErrorIs(t, mfs.EnsureDir(file), ErrNotDirectory)
	})
}

func TestMediaFileSystem_ReadDir(t *testing.T) {
	mfs := &MediaFileSystem{}
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "VIDEO_TS"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BDMV"), nil, 0o644))

	entries, err := mfs.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "BDMV", entries[0].Name())
	assert.False(t, entries[0].IsDir())
	assert.Equal(t, "VIDEO_TS", entries[1].Name())
	assert.True(t, entries[1].IsDir())
}

func TestMediaFileSystem_StatFSReadDirFS(t *testing.T) {
	mfs := &MediaFileSystem{}
	fsys := fstest.MapFS{
		"Dune/BDMV/index.bdmv": {},
		"Dune/cover.jpg":       {Data: make([]byte, 3)},
	}

	info, err := mfs.StatFS(fsys, "Dune/cover.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())

	entries, err := mfs.ReadDirFS(fsys, "Dune")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "BDMV", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	_, err = mfs.StatFS(fsys, "missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
