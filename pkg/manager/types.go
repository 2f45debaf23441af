package manager

import (
	"github.com/kasuboski/discern/pkg/library"
	"github.com/kasuboski/discern/pkg/pagination"
	"github.com/kasuboski/discern/pkg/video"
)

// IndexSummary describes a finished index run. Packaging counts the videos found per packaging.
type IndexSummary struct {
	RunID     int64                   `json:"runID"`
	Found     int                     `json:"found"`
	Removed   int                     `json:"removed"`
	Packaging map[video.Packaging]int `json:"packaging"`
}

// ItemsPage is a page of stored videos
type ItemsPage struct {
	Items []library.Movie `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}
