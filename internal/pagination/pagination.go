// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import "strconv"

// DefaultPageSize is the page size used across all feeds.
const DefaultPageSize = 10

// Page describes one fixed-size slice of an ordered sequence, identified
// by a 1-based page number.
type Page struct {
	Number     int  `json:"number"`
	Size       int  `json:"size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Offset returns the index of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// New computes the page for the given total item count, page size and raw
// page query value. A missing or non-numeric query defaults to page 1; a
// page number past the end clamps to the last valid page. Zero items
// yield a single empty page with no neighbors.
func New(totalItems, size int, pageQuery string) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	if totalItems < 0 {
		totalItems = 0
	}

	number, err := strconv.Atoi(pageQuery)
	if err != nil || number < 1 {
		number = 1
	}

	totalPages := (totalItems + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
}

// Slice applies the page bounds to an in-memory sequence.
func Slice[T any](items []T, p Page) []T {
	start := p.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
