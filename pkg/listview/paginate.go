package listview

// PageState is the derived pagination state for a filtered collection.
// Invariant: 1 <= Page <= TotalPages and TotalPages >= 1, even for an
// empty collection.
type PageState struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}

const DefaultPerPage = 20

// Paginate slices the sorted collection to the requested page and returns
// the slice together with the clamped page state. The clamp must run on
// every filter or collection change so a shrunken result set can never
// leave the caller on a page past the end.
func Paginate[T any](items []T, page, perPage int) ([]T, PageState) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return items[start:end], PageState{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: int64(total),
	}
}
