package io

import (
	"io/fs"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_file_io.go github.com/kasuboski/discern/pkg/io FileIO

// FileIO is an interface for the filesystem operations used while scanning libraries
type FileIO interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error
	StatFS(fsys fs.FS, name string) (fs.FileInfo, error)
	ReadDirFS(fsys fs.FS, name string) ([]fs.DirEntry, error)
	MkdirAll(name string, perm os.FileMode) error
}
