package listview

import "testing"

func TestToggleRoundTrip(t *testing.T) {
	sel := NewSelection()

	sel.Toggle("doc-001", true)
	if !sel.Contains("doc-001") || sel.Len() != 1 {
		t.Fatalf("toggle on failed: %v", sel.IDs())
	}

	sel.Toggle("doc-001", false)
	if sel.Len() != 0 {
		t.Errorf("toggle off left ids: %v", sel.IDs())
	}
}

func TestToggleClearsAllSelected(t *testing.T) {
	sel := NewSelection()
	sel.SelectAll([]string{"a", "b"}, true)
	if !sel.IsAllSelected() {
		t.Fatal("SelectAll(true) should set the flag")
	}

	// Even a toggle that keeps the set complete drops the flag.
	sel.Toggle("a", true)
	if sel.IsAllSelected() {
		t.Error("Toggle must always clear isAllSelected")
	}
}

func TestSelectAllRoundTrip(t *testing.T) {
	visible := []string{"a", "b", "c"}
	sel := NewSelection()

	sel.SelectAll(visible, true)
	if sel.Len() != 3 || !sel.IsAllSelected() {
		t.Fatalf("SelectAll(true): len=%d all=%v", sel.Len(), sel.IsAllSelected())
	}

	sel.SelectAll(visible, false)
	if sel.Len() != 0 || sel.IsAllSelected() {
		t.Errorf("SelectAll(false): len=%d all=%v, want empty/false", sel.Len(), sel.IsAllSelected())
	}
}

func TestSelectAllCapturesVisibleOnly(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("stale", true)

	sel.SelectAll([]string{"x", "y"}, true)
	if sel.Contains("stale") {
		t.Error("SelectAll must replace the selection, not extend it")
	}
	if sel.Len() != 2 {
		t.Errorf("len = %d, want 2", sel.Len())
	}
}

func TestResolveDropsStaleIDs(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("a", true)
	sel.Toggle("gone", true)
	sel.Toggle("c", true)

	got := sel.Resolve([]string{"c", "b", "a"})

	// Collection order preserved, stale id dropped.
	if len(got) != 2 || got[0] != "c" || got[1] != "a" {
		t.Errorf("Resolve = %v, want [c a]", got)
	}
}

func TestResolveSelectionOneShot(t *testing.T) {
	got := ResolveSelection([]string{"b", "z", "b"}, []string{"a", "b", "c"})
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("ResolveSelection = %v, want [b]", got)
	}
}
