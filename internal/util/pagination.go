package util

import (
	"errors"
	"strconv"
)

// QuestionsPerPage is the fixed page size for every question listing.
const QuestionsPerPage = 10

// ParsePage reads a 1-based page number from a query value. Missing or
// non-numeric input falls back to page 1; zero and negative numbers are kept
// so that callers report them as empty pages. Integers outside the int range
// saturate to math.MaxInt or math.MinInt, which are empty pages as well.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		// Atoi already returns the saturated value on ErrRange.
		if errors.Is(err, strconv.ErrRange) {
			return page
		}
		return 1
	}
	return page
}

// PageCount returns how many pages of size a listing of total items spans.
func PageCount(total, size int) int {
	if total <= 0 || size < 1 {
		return 0
	}
	return (total + size - 1) / size
}

// PageBounds returns the half-open index range [start, end) of page. Callers
// must keep page within PageCount so the product cannot overflow.
func PageBounds(page, size int) (start, end int) {
	start = (page - 1) * size
	return start, start + size
}

// Paginate slices one page out of an ordered listing. Pages outside the
// listing yield an empty, non-nil slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 || page > PageCount(len(items), size) {
		return []T{}
	}
	start, end := PageBounds(page, size)
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
