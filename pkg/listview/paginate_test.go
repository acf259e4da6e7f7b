package listview

import "testing"

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginateSlice(t *testing.T) {
	items := intRange(21)

	page, state := Paginate(items, 1, 20)
	if len(page) != 20 {
		t.Errorf("page 1 length = %d, want 20", len(page))
	}
	if state.TotalPages != 2 || state.TotalItems != 21 {
		t.Errorf("state = %+v", state)
	}

	page, state = Paginate(items, 2, 20)
	if len(page) != 1 || page[0] != 21 {
		t.Errorf("page 2 = %v", page)
	}
	if state.Page != 2 {
		t.Errorf("page = %d, want 2", state.Page)
	}
}

func TestPaginateClampPastEnd(t *testing.T) {
	items := intRange(21)

	// Was on page 2 of 21 items at 20/page; switching to 50/page must
	// clamp back to page 1.
	page, state := Paginate(items, 2, 50)
	if state.Page != 1 {
		t.Errorf("page = %d, want 1 after per-page change", state.Page)
	}
	if len(page) != 21 {
		t.Errorf("page length = %d, want 21", len(page))
	}
}

func TestPaginateInvariant(t *testing.T) {
	// 1 <= page <= max(ceil(L/P), 1) for every combination.
	for _, n := range []int{0, 1, 19, 20, 21, 100} {
		for _, per := range []int{1, 10, 20, 50} {
			for _, req := range []int{-3, 0, 1, 2, 5, 99} {
				_, state := Paginate(intRange(n), req, per)
				maxPages := (n + per - 1) / per
				if maxPages < 1 {
					maxPages = 1
				}
				if state.Page < 1 || state.Page > maxPages {
					t.Errorf("n=%d per=%d req=%d: page %d out of [1,%d]", n, per, req, state.Page, maxPages)
				}
				if state.TotalPages != maxPages {
					t.Errorf("n=%d per=%d: totalPages %d want %d", n, per, state.TotalPages, maxPages)
				}
			}
		}
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page, state := Paginate([]int{}, 3, 20)
	if len(page) != 0 {
		t.Errorf("empty collection should give empty page")
	}
	if state.Page != 1 || state.TotalPages != 1 {
		t.Errorf("empty collection state = %+v, want page 1 of 1", state)
	}
}

func TestSortByStable(t *testing.T) {
	type row struct {
		Key string
		Seq int
	}
	rows := []row{
		{"b", 0}, {"a", 1}, {"B", 2}, {"a", 3}, {"c", 4},
	}

	SortBy(rows, func(x, y row) int { return CompareStrings(x.Key, y.Key) }, SortAsc)

	// Case-insensitive keys: a(1), a(3), b(0), B(2), c(4). Ties must keep
	// input order.
	wantSeq := []int{1, 3, 0, 2, 4}
	for i, w := range wantSeq {
		if rows[i].Seq != w {
			t.Fatalf("position %d: seq %d, want %d (%+v)", i, rows[i].Seq, w, rows)
		}
	}

	SortBy(rows, func(x, y row) int { return CompareStrings(x.Key, y.Key) }, SortDesc)
	if rows[0].Key != "c" {
		t.Errorf("desc sort should lead with c, got %s", rows[0].Key)
	}
}
