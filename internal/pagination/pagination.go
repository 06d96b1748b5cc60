package pagination

import (
	"math"
)

// DefaultPageSize is large enough to list every registered schema at once.
const DefaultPageSize = 100

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
}

// Offset returns the index of the first item of the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page holds the metadata of a paginated list.
type Page struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Slice returns the items of the requested page together with the page
// metadata. A page past the end yields an empty, non-nil slice.
func Slice[T any](items []T, req PageRequest) ([]T, Page) {
	req.Defaults()

	page := Page{
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: len(items),
		TotalPages: int(math.Ceil(float64(len(items)) / float64(req.PageSize))),
	}

	start := req.Offset()
	if start >= len(items) {
		return []T{}, page
	}
	end := min(start+req.PageSize, len(items))
	return items[start:end], page
}
