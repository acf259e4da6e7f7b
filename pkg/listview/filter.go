package listview

import "strings"

// All is the sentinel filter value that disables an exact-match filter.
const All = "all"

// Spec is an in-memory query specification, mirroring the repository
// specification pattern but applied to an already-fetched collection.
type Spec[T any] interface {
	// Enabled reports whether the spec should be applied at all.
	// Disabled specs are skipped, not treated as match-nothing.
	Enabled() bool

	// Match reports whether the item passes the filter.
	Match(item T) bool
}

// Text matches a case-insensitive substring against one or more string
// fields with OR semantics: the item passes if any field contains the query.
type Text[T any] struct {
	Query  string
	Fields func(item T) []string
}

func (s Text[T]) Enabled() bool {
	return strings.TrimSpace(s.Query) != ""
}

func (s Text[T]) Match(item T) bool {
	q := strings.ToLower(strings.TrimSpace(s.Query))
	for _, field := range s.Fields(item) {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Exact matches a field for strict equality. The sentinel value "all"
// disables the filter entirely.
type Exact[T any] struct {
	Value string
	Field func(item T) string
}

func (s Exact[T]) Enabled() bool {
	return s.Value != "" && s.Value != All
}

func (s Exact[T]) Match(item T) bool {
	return s.Field(item) == s.Value
}

// Range matches a numeric field against inclusive [Min, Max] bounds.
type Range[T any] struct {
	Min, Max float64
	Active   bool
	Field    func(item T) float64
}

func (s Range[T]) Enabled() bool {
	return s.Active
}

func (s Range[T]) Match(item T) bool {
	v := s.Field(item)
	return v >= s.Min && v <= s.Max
}

// Apply runs the enabled specs over the collection and returns the items
// that pass all of them. It never mutates its input, and it is idempotent:
// Apply(Apply(c, specs...), specs...) == Apply(c, specs...).
func Apply[T any](items []T, specs ...Spec[T]) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, spec := range specs {
			if !spec.Enabled() {
				continue
			}
			if !spec.Match(item) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
