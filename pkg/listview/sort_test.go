package listview

import "testing"

func TestSortByStringAsc(t *testing.T) {
	items := []fixtureDoc{
		{ID: "b", Name: "beta.pdf"},
		{ID: "a", Name: "Alpha.pdf"},
		{ID: "c", Name: "charlie.pdf"},
	}

	SortBy(items, func(a, b fixtureDoc) int { return CompareStrings(a.Name, b.Name) }, SortAsc)

	want := []string{"a", "b", "c"}
	for i, w := range want {
		if items[i].ID != w {
			t.Fatalf("position %d: got %s, want %s", i, items[i].ID, w)
		}
	}
}

func TestSortBySizeDesc(t *testing.T) {
	items := []fixtureDoc{
		{ID: "small", Size: 100},
		{ID: "large", Size: 9000},
		{ID: "medium", Size: 500},
	}

	SortBy(items, func(a, b fixtureDoc) int { return CompareInts(a.Size, b.Size) }, SortDesc)

	want := []string{"large", "medium", "small"}
	for i, w := range want {
		if items[i].ID != w {
			t.Fatalf("position %d: got %s, want %s", i, items[i].ID, w)
		}
	}
}

func TestSortByStableOnTies(t *testing.T) {
	items := []fixtureDoc{
		{ID: "first", Type: "pdf"},
		{ID: "second", Type: "pdf"},
		{ID: "third", Type: "pdf"},
	}

	SortBy(items, func(a, b fixtureDoc) int { return CompareStrings(a.Type, b.Type) }, SortAsc)

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if items[i].ID != w {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, items[i].ID, w)
		}
	}
}

func TestCompareFloats(t *testing.T) {
	if CompareFloats(1.5, 2.5) != -1 {
		t.Error("expected -1 for a < b")
	}
	if CompareFloats(2.5, 1.5) != 1 {
		t.Error("expected 1 for a > b")
	}
	if CompareFloats(3.3, 3.3) != 0 {
		t.Error("expected 0 for equal values")
	}
}
