package pkg

import "strconv"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

// PaginationParams is the normalized page window for a listing request.
type PaginationParams struct {
	Page  int
	Limit int
	Skip  int
}

// PaginationMeta is the metadata block attached to paginated responses.
type PaginationMeta struct {
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	Current int  `json:"current"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
	Limit   int  `json:"limit"`
}

// NewPaginationParams parses raw query values, clamping page to >= 1 and
// limit to 1..50 (default 10). Non-numeric values fall back to defaults.
func NewPaginationParams(pageParam, limitParam string) PaginationParams {
	page := defaultPage
	if v, err := strconv.Atoi(pageParam); err == nil {
		page = v
	}
	limit := defaultLimit
	if v, err := strconv.Atoi(limitParam); err == nil {
		limit = v
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return PaginationParams{Page: page, Limit: limit, Skip: (page - 1) * limit}
}

// NewPaginationMeta builds the metadata block for a page of a result set of
// the given total size.
func NewPaginationMeta(total int, p PaginationParams) PaginationMeta {
	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}
	return PaginationMeta{
		Total:   total,
		Pages:   pages,
		Current: p.Page,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
		Limit:   p.Limit,
	}
}
