package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_CalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		wantOffset int
		wantLimit  int
	}{
		{name: "everything", params: Params{Page: 1}, wantOffset: 0, wantLimit: 0},
		{name: "first page", params: Params{Page: 1, PageSize: 20}, wantOffset: 0, wantLimit: 20},
		{name: "third page", params: Params{Page: 3, PageSize: 20}, wantOffset: 40, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := tt.params.CalculateOffsetLimit()
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParams_BuildMeta(t *testing.T) {
	assert.Equal(t, Meta{Page: 2, PageSize: 10, TotalItems: 25, TotalPages: 3}, Params{Page: 2, PageSize: 10}.BuildMeta(25))
	assert.Equal(t, Meta{Page: 1, PageSize: 0, TotalItems: 25, TotalPages: 1}, Params{Page: 1}.BuildMeta(25))
	assert.Equal(t, Meta{Page: 1, PageSize: 0, TotalItems: 0, TotalPages: 0}, Params{Page: 1}.BuildMeta(0))
}

func TestParams_Clamp(t *testing.T) {
	assert.Equal(t, Params{Page: 1, PageSize: 100}, Params{PageSize: 500}.Clamp(100))
	assert.Equal(t, Params{Page: 4, PageSize: 10}, Params{Page: 4, PageSize: 10}.Clamp(100))
	assert.Equal(t, Params{Page: 1, PageSize: 500}, Params{Page: 1, PageSize: 500}.Clamp(0))
	assert.Equal(t, Params{Page: 2, PageSize: 100}, Params{Page: 2}.Clamp(100))
	assert.Equal(t, Params{Page: 1}, Params{}.Clamp(0))
}
