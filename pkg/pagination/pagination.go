package pagination

// Params selects a page of results. A PageSize of zero means everything.
type Params struct {
	Page     int
	PageSize int
}

// Clamp caps PageSize at max and moves Page to the first page when it is unset.
// With a positive max an unbounded PageSize of zero becomes max.
func (p Params) Clamp(max int) Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if max > 0 && (p.PageSize == 0 || p.PageSize > max) {
		p.PageSize = max
	}
	return p
}

func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	offset = (p.Page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	} else if totalItems > 0 {
		totalPages = 1
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
