package library

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/kasuboski/discern/pkg/io"
	"github.com/kasuboski/discern/pkg/logger"
	"github.com/kasuboski/discern/pkg/video"
)

// Describe builds the entry for path within the library root along with its file info.
// Directory children keep the order ReadDirFS returns them in.
func (l *MediaLibrary) Describe(path string) (video.Entry, fs.FileInfo, error) {
	info, err := l.fileIO.StatFS(l.root.FS, path)
	if err != nil {
		return video.Entry{}, nil, err
	}

	if !info.IsDir() {
		return video.Entry{Path: path}, info, nil
	}

	children, err := l.fileIO.ReadDirFS(l.root.FS, path)
	if err != nil {
		return video.Entry{}, nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	return directoryEntry(path, children), info, nil
}

// ClassifyPath classifies a path on the host filesystem, outside of any library root.
func ClassifyPath(ctx context.Context, fileIO io.FileIO, classifier video.Classifier, path string, parseName bool) (Movie, error) {
	log := logger.FromCtx(ctx)

	info, err := fileIO.Stat(path)
	if err != nil {
		return Movie{}, err
	}

	entry := video.Entry{Path: path}
	if info.IsDir() {
		children, err := fileIO.ReadDir(path)
		if err != nil {
			return Movie{}, fmt.Errorf("failed to read directory %s: %w", path, err)
		}
		entry = directoryEntry(path, children)
	}

	movie, ok := video.Resolve[Movie](classifier, entry, parseName)
	if !ok {
		log.Debugw("not a video", "path", path)
		return Movie{}, ErrNotVideo
	}

	if abs, err := filepath.Abs(path); err == nil {
		movie.AbsolutePath = abs
	}
	if !info.IsDir() {
		movie.setSize(info.Size())
	}

	return *movie, nil
}

func directoryEntry(path string, children []fs.DirEntry) video.Entry {
	entry := video.Entry{
		Path:     path,
		IsDir:    true,
		Children: make([]video.Child, len(children)),
	}
	for i, c := range children {
		entry.Children[i] = video.Child{
			Name:  c.Name(),
			IsDir: c.IsDir(),
		}
	}

	return entry
}
