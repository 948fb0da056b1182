package entity

// Page is one page of a remote paginated listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Normalize recomputes TotalPages when the remote omitted it. The invariant
// is totalPages = ceil(totalCount / pageSize).
func (p *Page[T]) Normalize() {
	if p.TotalPages == 0 {
		p.TotalPages = TotalPages(p.TotalCount, p.PageSize)
	}
}

func TotalPages(totalCount, pageSize int) int {
	if pageSize < 1 || totalCount < 1 {
		return 0
	}
	pages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		pages++
	}
	return pages
}
