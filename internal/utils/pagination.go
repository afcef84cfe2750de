package utils

// Page is the envelope returned by every list endpoint: the slice for the
// requested page plus enough metadata for a client to page through the
// whole collection.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Paginate slices an already materialized collection into a 1-based page.
// Page and pageSize values below 1 are clamped up to 1.  A page entirely
// beyond the collection yields an empty (non-nil) Items slice while Total
// still reports the full count.  This operates in memory over the whole
// result set, which is fine for small datasets and a known scalability
// limit otherwise.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	start := (page - 1) * pageSize
	// A huge page number can overflow the multiplication and turn start
	// negative; any such page is far beyond the collection, so treat it
	// the same as an ordinary beyond-range page.
	if start < 0 || start/pageSize != page-1 || start > total {
		start = total
	}
	end := start + pageSize
	if end > total || end < start {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{Items: out, Total: total, Page: page, PageSize: pageSize}
}
