package server

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/kasuboski/discern/pkg/pagination"
)

const (
	defaultPageSize = 100
	maxPageSize     = 500
)

// itemsPage reads the page and pageSize query params of an item listing. A missing pageSize
// lists defaultPageSize items and no request lists more than maxPageSize.
func itemsPage(qp url.Values) (pagination.Params, error) {
	page, err := queryInt(qp, "page", 1, 1)
	if err != nil {
		return pagination.Params{}, err
	}

	pageSize, err := queryInt(qp, "pageSize", defaultPageSize, 0)
	if err != nil {
		return pagination.Params{}, err
	}

	params := pagination.Params{Page: page, PageSize: pageSize}
	return params.Clamp(maxPageSize), nil
}

func queryInt(qp url.Values, key string, fallback, min int) (int, error) {
	raw := qp.Get(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return 0, fmt.Errorf("invalid %s parameter: must be an integer of at least %d", key, min)
	}
	return v, nil
}
