package response

import "event-planner/internal/dto/request"

// Page is one slice of a listing.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// PageMeta carries the numbers a client needs to walk the listing. NextPage
// and PrevPage are omitted at the edges.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	NextPage   *int  `json:"next_page,omitempty"`
	PrevPage   *int  `json:"prev_page,omitempty"`
}

func NewPage[T any](items []T, req request.PaginatedRequest, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}

	perPage := req.Limit()
	page := max(req.Page, 1)
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	meta := PageMeta{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
	if page < totalPages {
		next := page + 1
		meta.NextPage = &next
	}
	if page > 1 {
		prev := min(page-1, max(totalPages, 1))
		meta.PrevPage = &prev
	}

	return &Page[T]{Items: items, Meta: meta}
}
