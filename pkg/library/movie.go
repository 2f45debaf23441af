package library

import (
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/discern/pkg/video"
)

// Movie is a classified video found in a library
type Movie struct {
	video.Item
	AbsolutePath string `json:"absolutePath,omitempty"`
	Size         string `json:"size,omitempty"`
	SizeBytes    int64  `json:"sizeBytes"`
}

func (m *Movie) setSize(size int64) {
	m.SizeBytes = size
	m.Size = humanize.IBytes(uint64(size))
}

func (m *Movie) setAbsolutePath(root string) {
	if root == "" {
		return
	}
	m.AbsolutePath = filepath.Join(root, m.Path)
}

// NewMovie creates a Movie for an already classified item found under root
func NewMovie(item video.Item, root string, size int64) Movie {
	m := Movie{Item: item}
	m.setSize(size)
	m.setAbsolutePath(root)
	return m
}
