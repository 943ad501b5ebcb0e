// Package pagination slices ordered collections into fixed-size pages.
package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// PageSize is the number of items on one page
const PageSize = 10

// Paginate returns the window [(page-1)*size, page*size) of items.
// Pages past the end yield an empty, non-nil slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	// compare before multiplying so huge page numbers cannot overflow
	if page-1 >= len(items)/size+1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// ParsePage reads a page number from a query value. An empty value means page 1.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPage, raw)
	}
	return page, nil
}
