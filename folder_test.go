package folio

import (
	"math"
	"strings"
	"testing"
)

func TestFolder_GetAmount(t *testing.T) {
	testCases := []struct {
		name       string
		folder     *Folder
		wantAmount float64
	}{
		{
			name:       "empty folder",
			folder:     NewFolder("Empty"),
			wantAmount: 0,
		},
		{
			name:       "flat children",
			folder:     NewFolder("Flat", NewLine("A", 100), NewLine("B", 250)),
			wantAmount: 350,
		},
		{
			name: "nested folders",
			folder: NewFolder("Root",
				NewLine("A", 100),
				NewFolder("Sub",
					NewLine("B", 200),
					NewFolder("SubSub", NewLine("C", 50)),
				),
			),
			wantAmount: 350,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.folder.GetAmount(); got != tc.wantAmount {
				t.Errorf("GetAmount() = %v, want %v", got, tc.wantAmount)
			}
		})
	}
}

func TestFolder_GetCurrency(t *testing.T) {
	testCases := []struct {
		name   string
		folder *Folder
		want   string
	}{
		{
			name:   "empty folder yields the sentinel",
			folder: NewFolder("Empty"),
			want:   CurrencyMixed,
		},
		{
			name: "common currency",
			folder: NewFolder("Same",
				NewLineWith("A", 1, LineOpts{Currency: "USD"}),
				NewLineWith("B", 2, LineOpts{Currency: "USD"}),
			),
			want: "USD",
		},
		{
			name: "diverging currencies yield the sentinel",
			folder: NewFolder("Mixed",
				NewLineWith("A", 1, LineOpts{Currency: "USD"}),
				NewLineWith("B", 2, LineOpts{Currency: "EUR"}),
			),
			want: CurrencyMixed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.folder.GetCurrency(); got != tc.want {
				t.Errorf("GetCurrency() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFolder_GetIdeal(t *testing.T) {
	// A folder's own target overrides the sum of the children's ideals.
	withTarget := NewFolderWith("Own", FolderOpts{Target: NewTargetMin(5000, 0)},
		NewLineWith("A", 100, LineOpts{Target: NewTargetMin(1000, 0)}),
	)
	if got := withTarget.GetIdeal(); got != 5000 {
		t.Errorf("GetIdeal() = %v, want own target 5000", got)
	}

	// Without an own target the children's ideals are summed.
	without := NewFolder("Sum",
		NewLineWith("A", 100, LineOpts{Target: NewTargetMin(1000, 0)}),
		NewLineWith("B", 100, LineOpts{Target: NewTargetMin(500, 0)}),
		NewLine("C", 100), // no target: no ideal
	)
	if got := without.GetIdeal(); got != 1500 {
		t.Errorf("GetIdeal() = %v, want children sum 1500", got)
	}
}

func TestFolder_GetPerf(t *testing.T) {
	t.Run("equal ideals give equal weights", func(t *testing.T) {
		f := NewFolder("F",
			NewLineWith("A", 0, LineOpts{Target: NewTargetMin(1000, 0), Perf: NewPerf(5)}),
			NewLineWith("B", 0, LineOpts{Target: NewTargetMin(1000, 0), Perf: NewPerf(15)}),
		)
		got := f.GetPerf(true)
		if got.Skip {
			t.Fatal("GetPerf() skipped, want a value")
		}
		if !got.Expected.Equal(10) {
			t.Errorf("GetPerf().Expected = %v, want 10", got.Expected)
		}
	})

	t.Run("no targets fall back to equal weights", func(t *testing.T) {
		f := NewFolder("F",
			NewLineWith("A", 100, LineOpts{Perf: NewPerf(2)}),
			NewLineWith("B", 900, LineOpts{Perf: NewPerf(4)}),
		)
		got := f.GetPerf(true)
		if got.Skip {
			t.Fatal("GetPerf() skipped, want a value")
		}
		if !got.Expected.Equal(3) {
			t.Errorf("GetPerf().Expected = %v, want equal-weight mean 3", got.Expected)
		}
	})

	t.Run("current amounts weigh when ideal is false", func(t *testing.T) {
		f := NewFolder("F",
			NewLineWith("A", 100, LineOpts{Perf: NewPerf(2)}),
			NewLineWith("B", 300, LineOpts{Perf: NewPerf(6)}),
		)
		got := f.GetPerf(false)
		if !got.Expected.Equal(5) {
			t.Errorf("GetPerf(false).Expected = %v, want 5", got.Expected)
		}
	})

	t.Run("empty folder is skipped", func(t *testing.T) {
		got := NewFolder("Empty").GetPerf(true)
		if !got.Skip || got.Expected != 0 {
			t.Errorf("GetPerf() = %+v, want {0 true}", got)
		}
	})

	t.Run("all children skipped propagates skip", func(t *testing.T) {
		f := NewFolder("F",
			NewLineWith("A", 100, LineOpts{Perf: SkipPerf()}),
			NewLineWith("B", 200, LineOpts{Perf: SkipPerf()}),
		)
		got := f.GetPerf(true)
		if !got.Skip || got.Expected != 0 {
			t.Errorf("GetPerf() = %+v, want {0 true}", got)
		}
	})

	t.Run("skipped leaves are excluded from the average", func(t *testing.T) {
		f := NewFolder("F",
			NewLineWith("A", 100, LineOpts{Perf: SkipPerf()}),
			NewLineWith("B", 200, LineOpts{Perf: NewPerf(8)}),
		)
		got := f.GetPerf(false)
		if got.Skip {
			t.Fatal("GetPerf() skipped, want a value")
		}
		if !got.Expected.Equal(8) {
			t.Errorf("GetPerf().Expected = %v, want 8", got.Expected)
		}
	})

	t.Run("subfolders resolve their skip recursively", func(t *testing.T) {
		f := NewFolder("F",
			NewFolder("AllSkipped", NewLineWith("A", 100, LineOpts{Perf: SkipPerf()})),
			NewLineWith("B", 100, LineOpts{Perf: NewPerf(6)}),
		)
		got := f.GetPerf(false)
		if got.Skip {
			t.Fatal("GetPerf() skipped, want a value")
		}
		// The skipped subfolder stays a candidate with expected 0: weights
		// are split between it and B by current amounts.
		if !got.Expected.Equal(3) {
			t.Errorf("GetPerf().Expected = %v, want 3", got.Expected)
		}
	})
}

func TestFolder_AttributePropagation(t *testing.T) {
	t.Run("asset class fills only the unknown sentinel", func(t *testing.T) {
		set := NewLineWith("Set", 0, LineOpts{AssetClass: ClassBond})
		unset := NewLine("Unset", 0)
		NewFolderWith("F", FolderOpts{AssetClass: ClassStock}, set, unset)

		if set.AssetClass() != ClassBond {
			t.Errorf("explicitly set child overwritten: got %v, want %v", set.AssetClass(), ClassBond)
		}
		if unset.AssetClass() != ClassStock {
			t.Errorf("unset child not filled: got %v, want %v", unset.AssetClass(), ClassStock)
		}
	})

	t.Run("currency wins unconditionally when the folder supplies one", func(t *testing.T) {
		child := NewLineWith("Child", 0, LineOpts{Currency: "USD"})
		NewFolderWith("F", FolderOpts{Currency: "EUR"}, child)
		if got := child.GetCurrency(); got != "EUR" {
			t.Errorf("currency = %q, want folder's EUR to overwrite", got)
		}
	})

	t.Run("envelope wins unconditionally when the folder supplies one", func(t *testing.T) {
		old := NewEnvelope("Old", "old")
		repl := NewEnvelope("New", "new")
		child := NewLineWith("Child", 0, LineOpts{Envelope: old})
		NewFolderWith("F", FolderOpts{Envelope: repl}, child)
		if child.Envelope() != repl {
			t.Errorf("envelope = %v, want folder's envelope to overwrite", child.Envelope().Name())
		}
	})

	t.Run("perf fills unset and zero-expected children only", func(t *testing.T) {
		set := NewLineWith("Set", 0, LineOpts{Perf: NewPerf(4)})
		zero := NewLineWith("Zero", 0, LineOpts{Perf: NewPerf(0)})
		unset := NewLine("Unset", 0)
		NewFolderWith("F", FolderOpts{Perf: NewPerf(2)}, set, zero, unset)

		if got := set.GetPerf(false).Expected; got != 4 {
			t.Errorf("set child perf = %v, want 4", got)
		}
		if got := zero.GetPerf(false).Expected; got != 2 {
			t.Errorf("zero-expected child perf = %v, want folder's 2", got)
		}
		if got := unset.GetPerf(false).Expected; got != 2 {
			t.Errorf("unset child perf = %v, want folder's 2", got)
		}
	})

	t.Run("grandchildren attached early still receive defaults", func(t *testing.T) {
		grandchild := NewLine("GC", 0)
		sub := NewFolder("Sub", grandchild)
		NewFolderWith("Top", FolderOpts{AssetClass: ClassCrypto}, sub)
		if grandchild.AssetClass() != ClassCrypto {
			t.Errorf("grandchild asset class = %v, want %v", grandchild.AssetClass(), ClassCrypto)
		}
	})
}

func TestFolder_AddChild(t *testing.T) {
	f := NewFolder("F")
	child := NewLine("A", 100)
	f.AddChild(child)

	if child.Parent() != f {
		t.Error("AddChild did not reparent the child")
	}
	if len(f.Children()) != 1 || f.Children()[0] != Node(child) {
		t.Errorf("children = %v, want exactly the added child", f.Children())
	}
}

func TestFolder_MatchLines(t *testing.T) {
	t.Run("envelope match synthesizes one line", func(t *testing.T) {
		envelope := NewEnvelope("PEA", "pea-123")
		f := NewFolderWith("F", FolderOpts{Envelope: envelope})
		fl := &FetchLine{Name: "ETF World", Account: "pea-123", Amount: 1500}

		matched := f.MatchLines(fl)
		if len(matched) != 1 {
			t.Fatalf("MatchLines() returned %d matches, want 1", len(matched))
		}
		if len(f.Children()) != 1 {
			t.Fatalf("folder has %d children, want the generated line only", len(f.Children()))
		}
		if matched[0].Name() != "ETF World" || matched[0].GetAmount() != 1500 {
			t.Errorf("generated line = %q %v", matched[0].Name(), matched[0].GetAmount())
		}
	})

	t.Run("matching lines are collected recursively", func(t *testing.T) {
		inner := NewLine("ETF World", 100)
		outer := NewLine("ETF World", 200)
		f := NewFolder("Root", outer, NewFolder("Sub", inner))
		fl := &FetchLine{Name: "ETF World", Account: "nowhere"}

		matched := f.MatchLines(fl)
		if len(matched) != 2 {
			t.Fatalf("MatchLines() returned %d matches, want 2", len(matched))
		}
	})
}

func TestFolder_ProcessRunsDepthFirst(t *testing.T) {
	// Two shared folders drawing from the same bucket: processing order in
	// the children list decides who is funded first.
	bucket := NewBucket("cash", NewLine("Cash", 1000))
	first := NewSharedFolderWith("First", bucket, SharedFolderOpts{TargetAmount: 800})
	second := NewSharedFolder("Second", bucket)
	root := NewPortfolio("Root", first, second)

	root.Process()

	if got := first.GetAmount(); got != 800 {
		t.Errorf("first folder amount = %v, want 800", got)
	}
	if got := second.GetAmount(); got != 200 {
		t.Errorf("second folder amount = %v, want the 200 left", got)
	}
	if got := root.GetAmount(); got != 1000 {
		t.Errorf("root amount = %v, want the full pool", got)
	}
}

func TestFolder_UnknownDisplayPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("rendering an unknown display mode did not panic")
		}
	}()
	f := NewFolder("F")
	f.SetDisplay(Display(42))
	f.Render(FormatText, PlainTheme())
}

func TestFolder_TreeCollapsedStopsRecursion(t *testing.T) {
	f := NewFolderWith("Top", FolderOpts{Display: DisplayCollapsed},
		NewLine("Hidden", 100),
	)
	tr := f.Tree(RenderOpts{Format: FormatName, Theme: PlainTheme()})
	out := tr.String()
	if want := "Top"; !strings.Contains(out, want) {
		t.Errorf("tree output %q does not contain %q", out, want)
	}
	if strings.Contains(out, "Hidden") {
		t.Errorf("collapsed folder leaked its children: %q", out)
	}
}

func TestSharedFolder_UnboundedTarget(t *testing.T) {
	sf := NewSharedFolder("SF", NewBucket("b"))
	if !math.IsInf(sf.TargetAmount(), 1) {
		t.Errorf("TargetAmount() = %v, want +Inf", sf.TargetAmount())
	}
}
