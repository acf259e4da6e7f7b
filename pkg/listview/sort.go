package listview

import (
	"sort"
	"strings"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortBy sorts the collection in place with a stable sort keyed on a single
// comparator. Ties keep their relative input order (guaranteed by
// sort.SliceStable), which callers rely on since no secondary key exists.
// Desc order simply flips the comparator sign.
func SortBy[T any](items []T, cmp func(a, b T) int, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		c := cmp(items[i], items[j])
		if order == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

// CompareStrings is the comparator for string sort keys: case-insensitive,
// -1/0/+1 semantics.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareFloats is the comparator for numeric sort keys.
func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareInts is the comparator for integer sort keys (file sizes, counts).
func CompareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
