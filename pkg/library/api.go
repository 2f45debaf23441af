package library

import (
	"context"
	"errors"
	"io/fs"
)

// ErrNotVideo is returned when a path does not classify as a video
var ErrNotVideo = errors.New("not a video")

// Library finds videos in a media library
type Library interface {
	Scan(ctx context.Context) ([]Movie, error)
	Classify(ctx context.Context, path string, parseName bool) (Movie, error)
	Root() FileSystem
}

// FileSystem is a library root. Path is where FS is mounted on the host and is used to report absolute paths.
type FileSystem struct {
	FS   fs.FS
	Path string
}
