package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/kasuboski/discern/pkg/io"
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/manager"
	"github.com/kasuboski/discern/pkg/naming"
	"github.com/kasuboski/discern/pkg/storage/sqlite"
	"github.com/kasuboski/discern/pkg/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, extra ...fstest.MapFS) Server {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "discern.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.RunMigrations(ctx))

	p := naming.NewParser(naming.DefaultOptions())
	classifier := video.NewClassifier(p, p)
	fsys := fstest.MapFS{
		"Alien (1979)/VIDEO_TS/VTS_01_1.VOB": {Data: make([]byte, 2048)},
		"Dune (2021)/BDMV/index.bdmv":        {},
		"Collection/Heat (1995).mkv":         {},
		"Collection/Live Stream.strm":        {},
	}
	for _, files := range extra {
		for name, f := range files {
			fsys[name] = f
		}
	}
	lib := library.New(library.FileSystem{FS: fsys, Path: "/media/movies"}, &io.MediaFileSystem{}, classifier, true)

	return New(zap.NewNop().Sugar(), manager.New(lib, store), true)
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type rawResponse struct {
	Error    string          `json:"error"`
	Response json.RawMessage `json:"response"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) rawResponse {
	t.Helper()

	var resp rawResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	if v != nil {
		require.NoError(t, json.Unmarshal(resp.Response, v))
	}
	return resp
}

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})

	t.Run("request id", func(t *testing.T) {
		s := newTestServer(t)
		rr := do(t, s.Router(), http.MethodGet, "/healthz", nil)
		assert.Equal(t, http.StatusOK, rr.Code)

		_, err := uuid.Parse(rr.Header().Get(requestIDHeader))
		assert.NoError(t, err)
	})
}

func TestServer_IndexAndList(t *testing.T) {
	s := newTestServer(t)
	h := s.Router()

	rr := do(t, h, http.MethodGet, "/api/v1/items", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var page ItemsPageResponse
	decode(t, rr, &page)
	assert.Empty(t, page.Items)
	assert.Equal(t, defaultPageSize, page.Meta.PageSize)

	rr = do(t, h, http.MethodPost, "/api/v1/index", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var summary manager.IndexSummary
	decode(t, rr, &summary)
	assert.Equal(t, 4, summary.Found)
	assert.Equal(t, 2, summary.Packaging[video.PackagingVideoFile])

	rr = do(t, h, http.MethodGet, "/api/v1/items?page=2&pageSize=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decode(t, rr, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Dune (2021)", page.Items[0].Path)
	assert.Equal(t, 4, page.Meta.TotalItems)
	assert.Equal(t, 2, page.Meta.TotalPages)

	rr = do(t, h, http.MethodGet, "/api/v1/items?packaging=Dvd", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decode(t, rr, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Alien", page.Items[0].Name)

	rr = do(t, h, http.MethodGet, "/api/v1/items?packaging=Laserdisc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/v1/items?page=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/v1/index/runs", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var runs []map[string]any
	decode(t, rr, &runs)
	require.Len(t, runs, 1)
	assert.Equal(t, "done", runs[0]["state"])
	assert.Contains(t, runs[0], "error")
	assert.Nil(t, runs[0]["error"])

	rr = do(t, h, http.MethodGet, "/api/v1/index/runs?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServer_LookupItem(t *testing.T) {
	s := newTestServer(t)
	h := s.Router()

	rr := do(t, h, http.MethodGet, "/api/v1/items/lookup", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/v1/items/lookup?path=Alien+%281979%29", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodPost, "/api/v1/index", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/v1/items/lookup?path=Alien+%281979%29", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var item map[string]any
	decode(t, rr, &item)
	assert.Equal(t, "Dvd", item["packaging"])
	assert.Equal(t, float64(1979), item["productionYear"])
	assert.Contains(t, item, "stereoFormat")
	assert.Nil(t, item["stereoFormat"])
	assert.Equal(t, "/media/movies/Alien (1979)", item["absolutePath"])

	rr = do(t, h, http.MethodGet, "/api/v1/items/lookup?path=Collection%2FLive+Stream.strm", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decode(t, rr, &item)
	assert.Equal(t, true, item["isShortcut"])
	assert.Nil(t, item["productionYear"])
}

func TestServer_Classify(t *testing.T) {
	s := newTestServer(t, fstest.MapFS{
		"Avatar (2009) 3D.FSBS/BDMV/index.bdmv": {},
		"notes.txt":                             {Data: []byte("hi")},
	})
	h := s.Router()

	t.Run("disc folder", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/api/v1/classify", ClassifyRequest{Path: "Avatar (2009) 3D.FSBS"})
		require.Equal(t, http.StatusOK, rr.Code)

		var item map[string]any
		decode(t, rr, &item)
		assert.Equal(t, "BluRay", item["packaging"])
		assert.Equal(t, "Avatar", item["name"])
		assert.Equal(t, "FullSideBySide", item["stereoFormat"])
		assert.Equal(t, "/media/movies/Avatar (2009) 3D.FSBS", item["absolutePath"])
	})

	t.Run("keeps the directory name", func(t *testing.T) {
		parseName := false
		rr := do(t, h, http.MethodPost, "/api/v1/classify", ClassifyRequest{Path: "Avatar (2009) 3D.FSBS", ParseName: &parseName})
		require.Equal(t, http.StatusOK, rr.Code)

		var item map[string]any
		decode(t, rr, &item)
		assert.Equal(t, "Avatar (2009) 3D.FSBS", item["name"])
	})

	t.Run("not a video", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/api/v1/classify", ClassifyRequest{Path: "notes.txt"})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		resp := decode(t, rr, nil)
		assert.Contains(t, resp.Error, "not a video")
	})

	t.Run("missing path", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/api/v1/classify", ClassifyRequest{Path: "Collection/missing.mkv"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("outside the library", func(t *testing.T) {
		hostDir := filepath.Join(t.TempDir(), "Heat (1995)")
		require.NoError(t, os.MkdirAll(filepath.Join(hostDir, "VIDEO_TS"), 0o755))
		hostFile := filepath.Join(t.TempDir(), "Heat (1995).mkv")
		require.NoError(t, os.WriteFile(hostFile, nil, 0o644))

		for _, path := range []string{hostDir, hostFile, "/etc/passwd", "../Heat (1995).mkv"} {
			rr := do(t, h, http.MethodPost, "/api/v1/classify", ClassifyRequest{Path: path})
			assert.Equal(t, http.StatusBadRequest, rr.Code, path)

			resp := decode(t, rr, nil)
			assert.Contains(t, resp.Error, "not within the library", path)
		}
	})

	t.Run("invalid request", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/api/v1/classify", ClassifyRequest{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = do(t, h, http.MethodPost, "/api/v1/classify", "not an object")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
