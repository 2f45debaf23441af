package io

import (
	"errors"
	"io/fs"
	"os"
)

var (
	_ FileIO = (*MediaFileSystem)(nil)

	ErrNotDirectory = errors.New("not a directory")
)

// MediaFileSystem is the default implementation of file io using the os package
type MediaFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *MediaFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir is a wrapper around os.ReadDir. Entries are sorted by filename.
func (o *MediaFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// MkdirAll is a wrapper around os.MkdirAll
func (o *MediaFileSystem) MkdirAll(path string, mode os.FileMode) error {
	return os.MkdirAll(path, mode)
}

// WalkDir is a wrapper around fs.WalkDir
func (o *MediaFileSystem) WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(fsys, root, fn)
}

// StatFS is a wrapper around fs.Stat
func (o *MediaFileSystem) StatFS(fsys fs.FS, name string) (fs.FileInfo, error) {
	return fs.Stat(fsys, name)
}

// ReadDirFS is a wrapper around fs.ReadDir. Entries are sorted by filename.
func (o *MediaFileSystem) ReadDirFS(fsys fs.FS, name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(fsys, name)
}

// IsDir reports whether path exists and is a directory. A missing path is not an error.
func (o *MediaFileSystem) IsDir(path string) (bool, error) {
	info, err := o.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return info.IsDir(), nil
}

// EnsureDir creates path if it is missing and fails if something other than a directory is in the way
func (o *MediaFileSystem) EnsureDir(path string) error {
	isDir, err := o.IsDir(path)
	if err != nil {
		return err
	}
	if isDir {
		return nil
	}

	if _, err := o.Stat(path); err == nil {
		return ErrNotDirectory
	}

	return o.MkdirAll(path, 0o755)
}
