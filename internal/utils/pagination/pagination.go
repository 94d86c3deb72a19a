package pagination

// Params is a normalized page request.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps page to at least 1 and limit to (0, max], substituting def when limit is unset.
func Normalize(page, limit, def, max int) Params {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = def
	}
	if max > 0 && limit > max {
		limit = max
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the number of rows preceding the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes a page of results.
type Meta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// NewMeta builds page metadata for total matching items.
func NewMeta(p Params, total int) Meta {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
	}
}
