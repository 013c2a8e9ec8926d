package dto

import "github.com/jsamuelsen/numerology-service/internal/domain"

// PageQuery binds ?page=&limit=. Zero values mean the domain defaults and a
// limit above domain.MaxLimit is capped rather than rejected.
type PageQuery struct {
	Page  int `form:"page"  json:"page"  validate:"omitempty,min=1"`
	Limit int `form:"limit" json:"limit" validate:"omitempty,min=1"`
}

// ToDomain returns the normalized page request.
func (q PageQuery) ToDomain() domain.PageRequest {
	return domain.PageRequest{Page: q.Page, Limit: q.Limit}.Normalize()
}

// Pagination is the metadata block of a paged response.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// NewPagination derives the metadata from a domain page.
func NewPagination[T any](p domain.Page[T]) Pagination {
	return Pagination{
		CurrentPage:  p.Page,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.Limit,
		HasNext:      p.Page < p.TotalPages,
		HasPrev:      p.Page > 1,
	}
}
