package server

import (
	"time"

	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/pagination"
	"github.com/kasuboski/discern/pkg/storage"
	"github.com/kasuboski/discern/pkg/video"
	"github.com/oapi-codegen/nullable"
)

// ItemResponse is a classified video. Fields the classification could not determine are sent as null.
type ItemResponse struct {
	Path            string                                `json:"path"`
	AbsolutePath    string                                `json:"absolutePath,omitempty"`
	Name            string                                `json:"name"`
	Packaging       video.Packaging                       `json:"packaging"`
	ProductionYear  nullable.Nullable[int]                `json:"productionYear,omitempty"`
	StereoFormat    nullable.Nullable[video.StereoFormat] `json:"stereoFormat,omitempty"`
	IsInMixedFolder bool                                  `json:"isInMixedFolder"`
	IsPlaceholder   bool                                  `json:"isPlaceholder"`
	IsShortcut      bool                                  `json:"isShortcut"`
	Size            string                                `json:"size,omitempty"`
	SizeBytes       int64                                 `json:"sizeBytes"`
}

type ItemsPageResponse struct {
	Items []ItemResponse  `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

type IndexRunResponse struct {
	ID        int32                     `json:"id"`
	State     string                    `json:"state"`
	Found     int32                     `json:"found"`
	Removed   int32                     `json:"removed"`
	Error     nullable.Nullable[string] `json:"error,omitempty"`
	CreatedAt *time.Time                `json:"createdAt,omitempty"`
	UpdatedAt *time.Time                `json:"updatedAt,omitempty"`
}

func toItemResponse(m library.Movie) ItemResponse {
	resp := ItemResponse{
		Path:            m.Path,
		AbsolutePath:    m.AbsolutePath,
		Name:            m.Name,
		Packaging:       m.Packaging,
		ProductionYear:  nullable.NewNullNullable[int](),
		StereoFormat:    nullable.NewNullNullable[video.StereoFormat](),
		IsInMixedFolder: m.IsInMixedFolder,
		IsPlaceholder:   m.IsPlaceholder,
		IsShortcut:      m.IsShortcut,
		Size:            m.Size,
		SizeBytes:       m.SizeBytes,
	}

	if m.ProductionYear != nil {
		resp.ProductionYear.Set(*m.ProductionYear)
	}
	if m.Is3D() {
		resp.StereoFormat.Set(m.StereoFormat)
	}

	return resp
}

func toIndexRunResponse(run *storage.IndexRun) IndexRunResponse {
	resp := IndexRunResponse{
		ID:        run.ID,
		State:     run.State,
		Found:     run.Found,
		Removed:   run.Removed,
		Error:     nullable.NewNullNullable[string](),
		CreatedAt: run.CreatedAt,
		UpdatedAt: run.UpdatedAt,
	}

	if run.Error != nil {
		resp.Error.Set(*run.Error)
	}

	return resp
}
