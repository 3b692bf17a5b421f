package folio

import "testing"

func TestSharedFolder_ChildrenStartAsThePool(t *testing.T) {
	b := newTestBucket()
	sf := NewSharedFolder("SF", b)
	if len(sf.Children()) != 3 {
		t.Fatalf("children = %d, want the 3 pooled lines", len(sf.Children()))
	}
	if got := sf.GetAmount(); got != 600 {
		t.Errorf("GetAmount() = %v before processing, want the pool total 600", got)
	}
}

func TestSharedFolder_ProcessDrawsTheTargetAmount(t *testing.T) {
	b := newTestBucket()
	sf := NewSharedFolderWith("SF", b, SharedFolderOpts{TargetAmount: 250})

	sf.Process()

	if got := sf.GetAmount(); got != 250 {
		t.Errorf("GetAmount() = %v, want 250", got)
	}
	children := sf.Children()
	if len(children) != 2 {
		t.Fatalf("children = %d, want [A 100, B 150]", len(children))
	}
	if children[0].Name() != "A" || children[0].GetAmount() != 100 {
		t.Errorf("children[0] = %q %v, want A 100", children[0].Name(), children[0].GetAmount())
	}
	if children[1].Name() != "B" || children[1].GetAmount() != 150 {
		t.Errorf("children[1] = %q %v, want B 150", children[1].Name(), children[1].GetAmount())
	}
	if children[1].Parent() != &sf.Folder {
		t.Error("allocated child not reparented to the shared folder")
	}
}

func TestSharedFolder_ProcessIsIdempotent(t *testing.T) {
	b := newTestBucket()
	sf := NewSharedFolderWith("SF", b, SharedFolderOpts{TargetAmount: 250})

	sf.Process()
	first := sf.GetAmount()
	sf.Process()
	sf.Process()

	if got := sf.GetAmount(); got != first {
		t.Errorf("GetAmount() drifted from %v to %v across reprocessing", first, got)
	}
	if len(sf.Children()) != 2 {
		t.Errorf("children = %d after reprocessing, want 2", len(sf.Children()))
	}
}

func TestSharedFolder_ReprocessDoesNotStarveSiblings(t *testing.T) {
	b := newTestBucket()
	first := NewSharedFolderWith("First", b, SharedFolderOpts{TargetAmount: 400})
	second := NewSharedFolder("Second", b)
	root := NewPortfolio("Root", first, second)

	root.Process()
	root.Process()

	if got := first.GetAmount(); got != 400 {
		t.Errorf("first = %v after two cycles, want 400", got)
	}
	if got := second.GetAmount(); got != 200 {
		t.Errorf("second = %v after two cycles, want 200", got)
	}
}

func TestSharedFolder_NewlineMovesToLastChild(t *testing.T) {
	b := newTestBucket()
	sf := NewSharedFolderWith("SF", b, SharedFolderOpts{TargetAmount: 250, Newline: true})

	sf.Process()

	children := sf.Children()
	if children[0].Newline() {
		t.Error("first allocated child carries a newline, want only the last")
	}
	if !children[len(children)-1].Newline() {
		t.Error("last allocated child lost the folder's newline")
	}
}

func TestSharedFolder_EmptyAllocation(t *testing.T) {
	b := newTestBucket()
	b.UseAmount(600) // drain the pool first
	sf := NewSharedFolderWith("SF", b, SharedFolderOpts{TargetAmount: 100})

	sf.Process()

	if len(sf.Children()) != 0 {
		t.Errorf("children = %d on an exhausted pool, want 0", len(sf.Children()))
	}
	if got := sf.GetAmount(); got != 0 {
		t.Errorf("GetAmount() = %v on an exhausted pool, want 0", got)
	}
}
