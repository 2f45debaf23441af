package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/kasuboski/discern/pkg/io"
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/naming"
	"github.com/kasuboski/discern/pkg/pagination"
	"github.com/kasuboski/discern/pkg/storage"
	"github.com/kasuboski/discern/pkg/storage/mocks"
	"github.com/kasuboski/discern/pkg/storage/sqlite"
	"github.com/kasuboski/discern/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/discern/pkg/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testClassifier() video.Classifier {
	p := naming.NewParser(naming.DefaultOptions())
	return video.NewClassifier(p, p)
}

func newStore(t *testing.T, ctx context.Context) storage.Storage {
	t.Helper()

	store, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "discern.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.RunMigrations(ctx))
	return store
}

func testLibraryFS() fstest.MapFS {
	return fstest.MapFS{
		"Alien (1979)/VIDEO_TS/VTS_01_1.VOB":   {Data: make([]byte, 2048)},
		"Dune (2021)/BDMV/index.bdmv":          {},
		"Collection/Heat (1995).mkv":           {Data: make([]byte, 1024)},
		"Collection/Avatar (2009) 3D.HSBS.mkv": {},
		"Collection/Titanic (1997).iso":        {},
		"Collection/poster.jpg":                {},
	}
}

func newManager(t *testing.T, ctx context.Context, fsys fstest.MapFS) *MediaManager {
	t.Helper()

	lib := library.New(library.FileSystem{FS: fsys, Path: "/media/movies"}, &io.MediaFileSystem{}, testClassifier(), true)
	return New(lib, newStore(t, ctx))
}

func TestIndexLibrary(t *testing.T) {
	ctx := context.Background()
	fsys := testLibraryFS()
	m := newManager(t, ctx, fsys)

	summary, err := m.IndexLibrary(ctx)
	require.NoError(t, err)
	assert.NotZero(t, summary.RunID)
	assert.Equal(t, 5, summary.Found)
	assert.Equal(t, 0, summary.Removed)
	assert.Equal(t, map[video.Packaging]int{
		video.PackagingDvd:       1,
		video.PackagingBluRay:    1,
		video.PackagingVideoFile: 2,
		video.PackagingIso:       1,
	}, summary.Packaging)

	runs, err := m.ListIndexRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, string(storage.IndexRunStateDone), runs[0].State)
	assert.Equal(t, int32(5), runs[0].Found)

	t.Run("removes videos that are gone", func(t *testing.T) {
		delete(fsys, "Collection/Titanic (1997).iso")

		summary, err := m.IndexLibrary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, summary.Found)
		assert.Equal(t, 1, summary.Removed)
		assert.Zero(t, summary.Packaging[video.PackagingIso])

		page, err := m.ListItems(ctx, pagination.Params{}, "")
		require.NoError(t, err)
		assert.Len(t, page.Items, 4)

		_, err = m.GetItem(ctx, "Collection/Titanic (1997).iso")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestIndexLibrary_InProgress(t *testing.T) {
	m := New(nil, nil)
	m.indexing.Lock()
	defer m.indexing.Unlock()

	_, err := m.IndexLibrary(context.Background())
	assert.ErrorIs(t, err, ErrIndexInProgress)
}

func TestIndexLibrary_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("create run fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		wantErr := errors.New("expected testing error")
		store.EXPECT().CreateIndexRun(gomock.Any(), gomock.Any()).Times(1).Return(int64(0), wantErr)

		m := New(nil, store)
		_, err := m.IndexLibrary(ctx)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("upsert fails and the run records the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		run := &storage.IndexRun{IndexRun: model.IndexRun{ID: 1, State: string(storage.IndexRunStatePending)}}
		wantErr := errors.New("expected testing error")

		store.EXPECT().CreateIndexRun(gomock.Any(), gomock.Any()).Times(1).Return(int64(1), nil)
		store.EXPECT().GetIndexRun(gomock.Any(), int64(1)).Times(1).Return(run, nil)
		store.EXPECT().UpdateIndexRun(gomock.Any(), gomock.Any(), storage.IndexRunStateRunning).Times(1).Return(nil)
		store.EXPECT().UpsertVideoItem(gomock.Any(), gomock.Any()).Times(1).Return(int64(0), wantErr)
		store.EXPECT().UpdateIndexRun(gomock.Any(), gomock.Any(), storage.IndexRunStateError).Times(1).
			DoAndReturn(func(_ context.Context, r storage.IndexRun, _ storage.IndexRunState) error {
				require.NotNil(t, r.Error)
				assert.Equal(t, wantErr.Error(), *r.Error)
				assert.Equal(t, string(storage.IndexRunStateRunning), r.State)
				return nil
			})

		lib := library.New(library.FileSystem{FS: fstest.MapFS{"a.mkv": {}}}, &io.MediaFileSystem{}, testClassifier(), false)
		m := New(lib, store)
		_, err := m.IndexLibrary(ctx)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestListItems(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, ctx, testLibraryFS())

	_, err := m.IndexLibrary(ctx)
	require.NoError(t, err)

	page, err := m.ListItems(ctx, pagination.Params{Page: 1, PageSize: 2}, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, pagination.Meta{Page: 1, PageSize: 2, TotalItems: 5, TotalPages: 3}, page.Meta)
	assert.Equal(t, "Alien (1979)", page.Items[0].Path)
	assert.Equal(t, "/media/movies/Alien (1979)", page.Items[0].AbsolutePath)
	assert.Equal(t, "2.0 KiB", page.Items[0].Size)

	page, err = m.ListItems(ctx, pagination.Params{}, video.PackagingVideoFile)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Meta.TotalItems)

	avatar := page.Items[0]
	assert.Equal(t, "Avatar", avatar.Name)
	assert.Equal(t, video.StereoFormatHalfSideBySide, avatar.StereoFormat)
	require.NotNil(t, avatar.ProductionYear)
	assert.Equal(t, 2009, *avatar.ProductionYear)
}

func TestGetItem(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, ctx, testLibraryFS())

	_, err := m.GetItem(ctx, "Dune (2021)")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = m.IndexLibrary(ctx)
	require.NoError(t, err)

	movie, err := m.GetItem(ctx, "Dune (2021)")
	require.NoError(t, err)
	assert.Equal(t, video.PackagingBluRay, movie.Packaging)

	// a fresh manager has an empty cache and reads through to storage
	fresh := New(m.library, m.storage)
	movie, err = fresh.GetItem(ctx, "Alien (1979)")
	require.NoError(t, err)
	assert.Equal(t, video.PackagingDvd, movie.Packaging)
	assert.Equal(t, int64(2048), movie.SizeBytes)
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, ctx, testLibraryFS())

	movie, err := m.Classify(ctx, "Dune (2021)", true)
	require.NoError(t, err)
	assert.Equal(t, video.PackagingBluRay, movie.Packaging)
	assert.Equal(t, "Dune", movie.Name)
	assert.Equal(t, "/media/movies/Dune (2021)", movie.AbsolutePath)

	movie, err = m.Classify(ctx, "Collection/Heat (1995).mkv", false)
	require.NoError(t, err)
	assert.Equal(t, "Heat (1995)", movie.Name)
	assert.Equal(t, int64(1024), movie.SizeBytes)

	_, err = m.Classify(ctx, "Collection", true)
	assert.ErrorIs(t, err, library.ErrNotVideo)

	_, err = m.Classify(ctx, "Collection/missing.mkv", true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// nothing should have been stored
	_, err = m.GetItem(ctx, "Dune (2021)")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestClassify_OutsideLibrary(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, ctx, testLibraryFS())

	hostFile := filepath.Join(t.TempDir(), "Heat (1995).mkv")
	require.NoError(t, os.WriteFile(hostFile, nil, 0o644))

	for _, path := range []string{
		hostFile,
		"/etc/passwd",
		"../Heat (1995).mkv",
		"Collection/../../Heat (1995).mkv",
		"",
	} {
		t.Run(path, func(t *testing.T) {
			_, err := m.Classify(ctx, path, true)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestScheduler(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		s := NewScheduler(nil, 0)
		assert.NoError(t, s.Run(context.Background()))
	})

	t.Run("indexes once per interval", func(t *testing.T) {
		ctx := context.Background()
		m := newManager(t, ctx, testLibraryFS())

		s := NewScheduler(m, time.Hour)
		s.tick = 5 * time.Millisecond

		runCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		require.NoError(t, s.Run(runCtx))

		runs, err := m.ListIndexRuns(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})
}
