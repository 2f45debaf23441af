package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/discern/pkg/pagination"
	"github.com/kasuboski/discern/pkg/storage"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/table"
)

// UpsertVideoItem stores item, replacing whatever was stored for the same path, and returns its ID
func (s *SQLite) UpsertVideoItem(ctx context.Context, item model.VideoItem) (int64, error) {
	if item.UpdatedAt == nil {
		now := time.Now().UTC()
		item.UpdatedAt = &now
	}

	stmt := table.VideoItem.
		INSERT(table.VideoItem.MutableColumns).
		MODEL(item).
		ON_CONFLICT(table.VideoItem.Path).
		DO_UPDATE(sqlite.SET(
			table.VideoItem.Name.SET(table.VideoItem.EXCLUDED.Name),
			table.VideoItem.Packaging.SET(table.VideoItem.EXCLUDED.Packaging),
			table.VideoItem.ProductionYear.SET(table.VideoItem.EXCLUDED.ProductionYear),
			table.VideoItem.StereoFormat.SET(table.VideoItem.EXCLUDED.StereoFormat),
			table.VideoItem.IsInMixedFolder.SET(table.VideoItem.EXCLUDED.IsInMixedFolder),
			table.VideoItem.IsPlaceholder.SET(table.VideoItem.EXCLUDED.IsPlaceholder),
			table.VideoItem.IsShortcut.SET(table.VideoItem.EXCLUDED.IsShortcut),
			table.VideoItem.SizeBytes.SET(table.VideoItem.EXCLUDED.SizeBytes),
			table.VideoItem.UpdatedAt.SET(table.VideoItem.EXCLUDED.UpdatedAt),
		))

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert video item %s: %w", item.Path, err)
	}

	existing, err := s.GetVideoItem(ctx, table.VideoItem.Path.EQ(sqlite.String(item.Path)))
	if err != nil {
		return 0, fmt.Errorf("failed to get video item ID after upsert: %w", err)
	}

	return int64(existing.ID), nil
}

// GetVideoItem gets the video item matching where
func (s *SQLite) GetVideoItem(ctx context.Context, where sqlite.BoolExpression) (*model.VideoItem, error) {
	stmt := table.VideoItem.
		SELECT(table.VideoItem.AllColumns).
		FROM(table.VideoItem).
		WHERE(where)

	var item model.VideoItem
	err := stmt.QueryContext(ctx, s.db, &item)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get video item: %w", err)
	}

	return &item, nil
}

// ListVideoItems lists a page of video items ordered by path
func (s *SQLite) ListVideoItems(ctx context.Context, params pagination.Params, where ...sqlite.BoolExpression) ([]*model.VideoItem, error) {
	stmt := table.VideoItem.
		SELECT(table.VideoItem.AllColumns).
		FROM(table.VideoItem).
		ORDER_BY(table.VideoItem.Path.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	offset, limit := params.CalculateOffsetLimit()
	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit)).OFFSET(int64(offset))
	}

	items := make([]*model.VideoItem, 0)
	err := stmt.QueryContext(ctx, s.db, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to list video items: %w", err)
	}

	return items, nil
}

// CountVideoItems counts the video items matching where
func (s *SQLite) CountVideoItems(ctx context.Context, where ...sqlite.BoolExpression) (int, error) {
	stmt := table.VideoItem.
		SELECT(sqlite.COUNT(table.VideoItem.ID).AS("count")).
		FROM(table.VideoItem)

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	var result struct {
		Count int64
	}
	err := stmt.QueryContext(ctx, s.db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to count video items: %w", err)
	}

	return int(result.Count), nil
}

// DeleteVideoItem deletes a stored video item given its ID
func (s *SQLite) DeleteVideoItem(ctx context.Context, id int64) error {
	stmt := table.VideoItem.
		DELETE().
		WHERE(table.VideoItem.ID.EQ(sqlite.Int64(id)))

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete video item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}
