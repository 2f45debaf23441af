package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/discern/pkg/storage"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/table"
)

// CreateIndexRun stores a new index run. Runs without a state start out pending.
func (s *SQLite) CreateIndexRun(ctx context.Context, run model.IndexRun) (int64, error) {
	now := time.Now().UTC()
	if run.State == "" {
		run.State = string(storage.IndexRunStatePending)
	}
	run.CreatedAt = &now
	run.UpdatedAt = &now

	stmt := table.IndexRun.
		INSERT(table.IndexRun.MutableColumns).
		MODEL(run)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create index run: %w", err)
	}

	return result.LastInsertId()
}

// GetIndexRun gets an index run by ID
func (s *SQLite) GetIndexRun(ctx context.Context, id int64) (*storage.IndexRun, error) {
	stmt := table.IndexRun.
		SELECT(table.IndexRun.AllColumns).
		FROM(table.IndexRun).
		WHERE(table.IndexRun.ID.EQ(sqlite.Int64(id)))

	var run storage.IndexRun
	err := stmt.QueryContext(ctx, s.db, &run.IndexRun)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get index run: %w", err)
	}

	return &run, nil
}

// ListIndexRuns lists the most recent index runs first. A limit of zero lists all of them.
func (s *SQLite) ListIndexRuns(ctx context.Context, limit int) ([]*storage.IndexRun, error) {
	stmt := table.IndexRun.
		SELECT(table.IndexRun.AllColumns).
		FROM(table.IndexRun).
		ORDER_BY(table.IndexRun.ID.DESC())

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit))
	}

	var models []*model.IndexRun
	err := stmt.QueryContext(ctx, s.db, &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list index runs: %w", err)
	}

	runs := make([]*storage.IndexRun, len(models))
	for i, m := range models {
		runs[i] = &storage.IndexRun{IndexRun: *m}
	}

	return runs, nil
}

// UpdateIndexRun moves run to the given state and stores its counters and error
func (s *SQLite) UpdateIndexRun(ctx context.Context, run storage.IndexRun, to storage.IndexRunState) error {
	if err := run.Machine().ToState(to); err != nil {
		return err
	}

	now := time.Now().UTC()
	run.State = string(to)
	run.UpdatedAt = &now

	stmt := table.IndexRun.
		UPDATE(table.IndexRun.State, table.IndexRun.Found, table.IndexRun.Removed, table.IndexRun.Error, table.IndexRun.UpdatedAt).
		MODEL(run.IndexRun).
		WHERE(table.IndexRun.ID.EQ(sqlite.Int32(run.ID)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update index run: %w", err)
	}

	return nil
}
