package manager

import (
	"context"
	"errors"

	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/logger"
	"github.com/kasuboski/discern/pkg/pagination"
	"github.com/kasuboski/discern/pkg/storage"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/discern/pkg/video"
	"go.uber.org/zap"
)

// IndexLibrary scans the library and makes storage match it. Every video found is stored and
// stored videos that are no longer found are removed. Only one index runs at a time.
func (m *MediaManager) IndexLibrary(ctx context.Context) (IndexSummary, error) {
	if !m.indexing.TryLock() {
		return IndexSummary{}, ErrIndexInProgress
	}
	defer m.indexing.Unlock()

	id, err := m.storage.CreateIndexRun(ctx, model.IndexRun{})
	if err != nil {
		return IndexSummary{}, wrapf(err, "failed to create index run")
	}

	log := logger.FromCtx(ctx, zap.Int64("run", id))

	run, err := m.storage.GetIndexRun(ctx, id)
	if err != nil {
		return IndexSummary{}, wrapf(err, "failed to get index run %d", id)
	}

	if err := m.transitionRun(ctx, run, storage.IndexRunStateRunning); err != nil {
		return IndexSummary{}, err
	}

	summary, err := m.indexLibrary(ctx)
	summary.RunID = id
	run.Found = int32(summary.Found)
	run.Removed = int32(summary.Removed)

	if err != nil {
		log.Errorw("failed to index library", "error", err)

		msg := err.Error()
		run.Error = &msg
		if err := m.transitionRun(ctx, run, storage.IndexRunStateError); err != nil {
			log.Errorw("failed to record index error", "error", err)
		}
		return summary, err
	}

	if err := m.transitionRun(ctx, run, storage.IndexRunStateDone); err != nil {
		return summary, err
	}

	log.Infow("indexed library", "found", summary.Found, "removed", summary.Removed)
	return summary, nil
}

func (m *MediaManager) indexLibrary(ctx context.Context) (IndexSummary, error) {
	log := logger.FromCtx(ctx)
	summary := IndexSummary{
		Packaging: make(map[video.Packaging]int),
	}

	movies, err := m.library.Scan(ctx)
	if err != nil {
		return summary, wrapf(err, "failed to scan library")
	}

	found := make(map[string]library.Movie, len(movies))
	for _, movie := range movies {
		if _, err := m.storage.UpsertVideoItem(ctx, toVideoItem(movie)); err != nil {
			return summary, err
		}

		found[movie.Path] = movie
		summary.Packaging[movie.Packaging]++
	}
	summary.Found = len(found)

	stored, err := m.storage.ListVideoItems(ctx, pagination.Params{})
	if err != nil {
		return summary, wrapf(err, "failed to list stored video items")
	}

	for _, item := range stored {
		if _, ok := found[item.Path]; ok {
			continue
		}

		err := m.storage.DeleteVideoItem(ctx, int64(item.ID))
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return summary, wrapf(err, "failed to remove %s", item.Path)
		}

		log.Debugw("removed missing video", "path", item.Path)
		summary.Removed++
	}

	m.items.Replace(found)
	return summary, nil
}

func (m *MediaManager) transitionRun(ctx context.Context, run *storage.IndexRun, to storage.IndexRunState) error {
	if err := m.storage.UpdateIndexRun(ctx, *run, to); err != nil {
		return wrapf(err, "failed to move index run %d to %s", run.ID, to)
	}

	run.State = string(to)
	return nil
}
