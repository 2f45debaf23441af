package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/discern/pkg/machine"
	"github.com/kasuboski/discern/pkg/pagination"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/model"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/discern/pkg/storage Storage

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	RunMigrations(ctx context.Context) error
	VideoItemStorage
	IndexRunStorage
}

type VideoItemStorage interface {
	UpsertVideoItem(ctx context.Context, item model.VideoItem) (int64, error)
	GetVideoItem(ctx context.Context, where sqlite.BoolExpression) (*model.VideoItem, error)
	ListVideoItems(ctx context.Context, params pagination.Params, where ...sqlite.BoolExpression) ([]*model.VideoItem, error)
	CountVideoItems(ctx context.Context, where ...sqlite.BoolExpression) (int, error)
	DeleteVideoItem(ctx context.Context, id int64) error
}

type IndexRunStorage interface {
	CreateIndexRun(ctx context.Context, run model.IndexRun) (int64, error)
	GetIndexRun(ctx context.Context, id int64) (*IndexRun, error)
	ListIndexRuns(ctx context.Context, limit int) ([]*IndexRun, error)
	UpdateIndexRun(ctx context.Context, run IndexRun, to IndexRunState) error
}

type IndexRunState string

const (
	IndexRunStatePending IndexRunState = "pending"
	IndexRunStateRunning IndexRunState = "running"
	IndexRunStateDone    IndexRunState = "done"
	IndexRunStateError   IndexRunState = "error"
)

// IndexRun records a single pass of indexing a library into storage
type IndexRun struct {
	model.IndexRun
}

func (r IndexRun) Machine() *machine.StateMachine[IndexRunState] {
	return machine.New(IndexRunState(r.State),
		machine.From(IndexRunStatePending).To(IndexRunStateRunning, IndexRunStateError),
		machine.From(IndexRunStateRunning).To(IndexRunStateDone, IndexRunStateError),
	)
}
