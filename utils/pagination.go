package utils

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination represents the pagination details.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// CreatePagination creates a Pagination object. Page and page size fall back
// to 1 and DefaultPageSize, and page size is capped at MaxPageSize.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

// Bounds returns the [start, end) slice indexes of the current page. Pages
// past the end, however large, yield an empty range.
func (p *Pagination) Bounds() (start, end int) {
	if p.PageSize <= 0 || p.CurrentPage <= 0 || p.CurrentPage-1 > p.TotalItems/p.PageSize {
		return p.TotalItems, p.TotalItems
	}
	start = min(max((p.CurrentPage-1)*p.PageSize, 0), p.TotalItems)
	end = min(start+p.PageSize, p.TotalItems)
	return start, end
}
