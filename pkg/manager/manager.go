package manager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/discern/pkg/cache"
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/logger"
	"github.com/kasuboski/discern/pkg/pagination"
	"github.com/kasuboski/discern/pkg/storage"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/table"
	"github.com/kasuboski/discern/pkg/video"
	"go.uber.org/zap"
)

var (
	ErrIndexInProgress = errors.New("library index already in progress")
	ErrInvalidPath     = errors.New("path is not within the library")
)

type MediaManager struct {
	library library.Library
	storage storage.Storage

	// items holds the videos found by the last index, keyed by path
	items    *cache.Cache[string, library.Movie]
	indexing sync.Mutex
}

func New(lib library.Library, store storage.Storage) *MediaManager {
	return &MediaManager{
		library: lib,
		storage: store,
		items:   cache.New[string, library.Movie](),
	}
}

// Classify classifies a single path relative to the library root without storing it.
// Absolute paths and paths that leave the root are rejected with ErrInvalidPath.
func (m *MediaManager) Classify(ctx context.Context, path string, parseName bool) (library.Movie, error) {
	if !fs.ValidPath(path) {
		logger.FromCtx(ctx).Debugw("rejecting path outside library", "path", path)
		return library.Movie{}, fmt.Errorf("%s: %w", path, ErrInvalidPath)
	}

	return m.library.Classify(ctx, path, parseName)
}

// ListItems lists a page of the stored videos. An empty packaging lists every packaging.
func (m *MediaManager) ListItems(ctx context.Context, params pagination.Params, packaging video.Packaging) (ItemsPage, error) {
	log := logger.FromCtx(ctx)

	var where []sqlite.BoolExpression
	if packaging != "" {
		where = append(where, table.VideoItem.Packaging.EQ(sqlite.String(string(packaging))))
	}

	total, err := m.storage.CountVideoItems(ctx, where...)
	if err != nil {
		log.Debug("failed to count video items", zap.Error(err))
		return ItemsPage{}, err
	}

	stored, err := m.storage.ListVideoItems(ctx, params, where...)
	if err != nil {
		log.Debug("failed to list video items", zap.Error(err))
		return ItemsPage{}, err
	}

	items := make([]library.Movie, len(stored))
	for i, item := range stored {
		items[i] = m.fromVideoItem(item)
	}

	return ItemsPage{
		Items: items,
		Meta:  params.BuildMeta(total),
	}, nil
}

// GetItem gets a video by its path in the library
func (m *MediaManager) GetItem(ctx context.Context, path string) (library.Movie, error) {
	if movie, ok := m.items.Get(path); ok {
		return movie, nil
	}

	item, err := m.storage.GetVideoItem(ctx, table.VideoItem.Path.EQ(sqlite.String(path)))
	if err != nil {
		return library.Movie{}, err
	}

	return m.fromVideoItem(item), nil
}

// ListIndexRuns lists the most recent index runs
func (m *MediaManager) ListIndexRuns(ctx context.Context, limit int) ([]*storage.IndexRun, error) {
	return m.storage.ListIndexRuns(ctx, limit)
}

func (m *MediaManager) fromVideoItem(item *model.VideoItem) library.Movie {
	v := video.Item{
		Path:            item.Path,
		Name:            item.Name,
		Packaging:       video.Packaging(item.Packaging),
		IsInMixedFolder: item.IsInMixedFolder,
		IsPlaceholder:   item.IsPlaceholder,
		IsShortcut:      item.IsShortcut,
	}
	if item.ProductionYear != nil {
		year := int(*item.ProductionYear)
		v.ProductionYear = &year
	}
	if item.StereoFormat != nil {
		v.StereoFormat = video.StereoFormat(*item.StereoFormat)
	}

	return library.NewMovie(v, m.library.Root().Path, item.SizeBytes)
}

func toVideoItem(movie library.Movie) model.VideoItem {
	item := model.VideoItem{
		Path:            movie.Path,
		Name:            movie.Name,
		Packaging:       string(movie.Packaging),
		IsInMixedFolder: movie.IsInMixedFolder,
		IsPlaceholder:   movie.IsPlaceholder,
		IsShortcut:      movie.IsShortcut,
		SizeBytes:       movie.SizeBytes,
	}
	if movie.ProductionYear != nil {
		year := int32(*movie.ProductionYear)
		item.ProductionYear = &year
	}
	if movie.StereoFormat != video.StereoFormatNone {
		format := string(movie.StereoFormat)
		item.StereoFormat = &format
	}

	return item
}

func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
