package domain

// Pagination defaults for reading history.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest asks for one page of results. Zero values mean defaults.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize applies defaults and caps the limit.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}

	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	return p
}

// Offset returns the number of items to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page holds one page of results and its metadata.
type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	TotalItems int
	TotalPages int
}

// NewPage computes page metadata for total items.
func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	pages := 0
	if req.Limit > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalItems: total,
		TotalPages: pages,
	}
}
