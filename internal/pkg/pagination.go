package pkg

import "strconv"

// PageSize is fixed for every listing.
const PageSize = 10

// PageMeta describes one page of a filtered listing. Total counts matching
// rows before pagination.
type PageMeta struct {
	Total int64
	Pages int
	Page  int
}

// ParsePage normalizes the raw page query value: absent, non-numeric and
// sub-1 values all become page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset converts a 1-based page into a row offset.
func Offset(page int) int {
	return (page - 1) * PageSize
}

// PageCount is ceil(total / PageSize).
func PageCount(total int64) int {
	return int((total + PageSize - 1) / PageSize)
}

// NewPageMeta bundles the meta block for a listing response.
func NewPageMeta(total int64, page int) PageMeta {
	return PageMeta{Total: total, Pages: PageCount(total), Page: page}
}
