package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/logger"
	"github.com/kasuboski/discern/pkg/manager"
	"github.com/kasuboski/discern/pkg/storage"
	"github.com/kasuboski/discern/pkg/video"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses all dependencies for the classification server such as loggers and the manager
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.MediaManager
	validate   *validator.Validate
	parseName  bool
}

// New creates a new server. parseName is used for classify requests that do not set it.
func New(logger *zap.SugaredLogger, manager *manager.MediaManager, parseName bool) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		parseName:  parseName,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Router builds the routes served by the server
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/items", s.ListItems()).Methods(http.MethodGet)
	v1.HandleFunc("/items/lookup", s.LookupItem()).Methods(http.MethodGet)

	v1.HandleFunc("/classify", s.Classify()).Methods(http.MethodPost)

	v1.HandleFunc("/index", s.IndexLibrary()).Methods(http.MethodPost)
	v1.HandleFunc("/index/runs", s.ListIndexRuns()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is cancelled
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

type listItemsQuery struct {
	Packaging string `validate:"omitempty,oneof=VideoFile Iso Dvd BluRay HdDvd"`
}

// ListItems lists a page of the indexed videos
func (s Server) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := itemsPage(r.URL.Query())
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		query := listItemsQuery{Packaging: r.URL.Query().Get("packaging")}
		if err := s.validate.Struct(query); err != nil {
			log.Debug("invalid packaging", zap.String("packaging", query.Packaging))
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid packaging %q", query.Packaging))
			return
		}

		page, err := s.manager.ListItems(r.Context(), params, video.Packaging(query.Packaging))
		if err != nil {
			log.Error("failed to list items", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list items"))
			return
		}

		items := make([]ItemResponse, len(page.Items))
		for i, m := range page.Items {
			items[i] = toItemResponse(m)
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: ItemsPageResponse{
			Items: items,
			Meta:  page.Meta,
		}})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// LookupItem gets a single indexed video by its path in the library
func (s Server) LookupItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		path := r.URL.Query().Get("path")
		if path == "" {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("path is required"))
			return
		}

		movie, err := s.manager.GetItem(r.Context(), path)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("%s is not indexed", path))
			return
		}
		if err != nil {
			log.Error("failed to get item", zap.String("path", path), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to get item"))
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: toItemResponse(movie)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ClassifyRequest asks for a single path, relative to the library root, to be classified
type ClassifyRequest struct {
	Path      string `json:"path" validate:"required"`
	ParseName *bool  `json:"parseName,omitempty"`
}

// Classify classifies a single path without indexing it
func (s Server) Classify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		b, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debug("invalid request body", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		var request ClassifyRequest
		err = json.Unmarshal(b, &request)
		if err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		if err := s.validate.Struct(request); err != nil {
			log.Debug("invalid classify request", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, errors.New("path is required"))
			return
		}

		parseName := s.parseName
		if request.ParseName != nil {
			parseName = *request.ParseName
		}

		movie, err := s.manager.Classify(r.Context(), request.Path, parseName)
		switch {
		case errors.Is(err, manager.ErrInvalidPath):
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		case errors.Is(err, library.ErrNotVideo):
			writeErrorResponse(w, http.StatusUnprocessableEntity, fmt.Errorf("%s is not a video", request.Path))
			return
		case errors.Is(err, fs.ErrNotExist):
			writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("%s does not exist", request.Path))
			return
		case err != nil:
			log.Error("failed to classify", zap.String("path", request.Path), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to classify"))
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: toItemResponse(movie)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// IndexLibrary indexes the library and reports what was found
func (s Server) IndexLibrary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		summary, err := s.manager.IndexLibrary(r.Context())
		if errors.Is(err, manager.ErrIndexInProgress) {
			writeErrorResponse(w, http.StatusConflict, err)
			return
		}
		if err != nil {
			log.Error("failed to index library", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to index library"))
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: summary})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ListIndexRuns lists the most recent index runs
func (s Server) ListIndexRuns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		limit, err := queryInt(r.URL.Query(), "limit", 10, 0)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		runs, err := s.manager.ListIndexRuns(r.Context(), limit)
		if err != nil {
			log.Error("failed to list index runs", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list index runs"))
			return
		}

		resp := make([]IndexRunResponse, len(runs))
		for i, run := range runs {
			resp[i] = toIndexRunResponse(run)
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: resp})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
