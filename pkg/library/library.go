package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/kasuboski/discern/pkg/io"
	"github.com/kasuboski/discern/pkg/logger"
	"github.com/kasuboski/discern/pkg/video"
)

var _ Library = (*MediaLibrary)(nil)

// MediaLibrary classifies the videos under a single root
type MediaLibrary struct {
	root       FileSystem
	fileIO     io.FileIO
	classifier video.Classifier
	parseName  bool
}

// New creates a MediaLibrary. When parseName is set videos are named from their parsed metadata.
func New(root FileSystem, fileIO io.FileIO, classifier video.Classifier, parseName bool) *MediaLibrary {
	return &MediaLibrary{
		root:       root,
		fileIO:     fileIO,
		classifier: classifier,
		parseName:  parseName,
	}
}

// Root returns the filesystem the library scans
func (l *MediaLibrary) Root() FileSystem {
	return l.root
}

// Scan walks the library and returns every video in it. A directory that classifies as a disc
// package is returned as a single video and not descended into.
func (l *MediaLibrary) Scan(ctx context.Context) ([]Movie, error) {
	log := logger.FromCtx(ctx)

	if l.root.FS == nil {
		return nil, errors.New("library has no filesystem")
	}

	movies := []Movie{}
	err := l.fileIO.WalkDir(l.root.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == "." {
				return err
			}
			// just skip this entry for now if there's an issue
			log.Debugw("skipping", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if path == "." {
			// the root itself may be a disc package
			movie, ok, err := l.describeDirectory(path, l.parseName)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			log.Debugw("library root is a disc package", "root", l.root.Path, "packaging", movie.Packaging)
			movies = append(movies, movie)
			return fs.SkipDir
		}

		if d.IsDir() {
			if video.IsDvdMarker(d.Name()) || video.IsBluRayMarker(d.Name()) {
				log.Debugw("skipping disc structure", "dir", path)
				return fs.SkipDir
			}

			movie, ok, err := l.describeDirectory(path, l.parseName)
			if err != nil {
				log.Debugw("skipping", "dir", path, "error", err)
				return fs.SkipDir
			}
			if !ok {
				return nil
			}

			log.Debugw("found disc package", "dir", path, "packaging", movie.Packaging)
			movies = append(movies, movie)
			return fs.SkipDir
		}

		movie, ok := video.Resolve[Movie](l.classifier, video.Entry{Path: path}, l.parseName)
		if !ok {
			return nil
		}

		if info, err := d.Info(); err == nil {
			movie.setSize(info.Size())
		}
		movie.setAbsolutePath(l.root.Path)

		movies = append(movies, *movie)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return movies, nil
}

// Classify classifies a single path relative to the library root. "." classifies the root itself.
func (l *MediaLibrary) Classify(ctx context.Context, path string, parseName bool) (Movie, error) {
	log := logger.FromCtx(ctx)

	if l.root.FS == nil {
		return Movie{}, errors.New("library has no filesystem")
	}

	entry, info, err := l.Describe(path)
	if err != nil {
		return Movie{}, err
	}

	if entry.IsDir {
		movie, ok, err := l.classifyDirectory(entry, parseName)
		if err != nil {
			return Movie{}, err
		}
		if !ok {
			log.Debugw("not a video", "path", path)
			return Movie{}, ErrNotVideo
		}
		return movie, nil
	}

	movie, ok := video.Resolve[Movie](l.classifier, entry, parseName)
	if !ok {
		log.Debugw("not a video", "path", path)
		return Movie{}, ErrNotVideo
	}

	movie.setSize(info.Size())
	movie.setAbsolutePath(l.root.Path)

	return *movie, nil
}

func (l *MediaLibrary) describeDirectory(path string, parseName bool) (Movie, bool, error) {
	entry, _, err := l.Describe(path)
	if err != nil {
		return Movie{}, false, err
	}
	return l.classifyDirectory(entry, parseName)
}

// classifyDirectory classifies an already described directory. The root is classified under its
// host path so its name comes from the directory the library is mounted at.
func (l *MediaLibrary) classifyDirectory(entry video.Entry, parseName bool) (Movie, bool, error) {
	path := entry.Path
	if path == "." {
		if l.root.Path == "" {
			return Movie{}, false, nil
		}
		entry.Path = filepath.Clean(l.root.Path)
	}

	movie, ok := video.Resolve[Movie](l.classifier, entry, parseName)
	if !ok {
		return Movie{}, false, nil
	}
	movie.Path = path

	size, err := l.dirSize(path)
	if err != nil {
		return Movie{}, false, fmt.Errorf("failed to size %s: %w", path, err)
	}
	movie.setSize(size)
	movie.setAbsolutePath(l.root.Path)

	return *movie, true, nil
}

// dirSize sums the sizes of all regular files below path
func (l *MediaLibrary) dirSize(path string) (int64, error) {
	var size int64
	err := l.fileIO.WalkDir(l.root.FS, path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		return nil
	})

	return size, err
}
