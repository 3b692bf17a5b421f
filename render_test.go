package folio

import "testing"

func TestRender_Tags(t *testing.T) {
	plain := PlainTheme()

	noTarget := NewLineWith("Cash", 100, LineOpts{Currency: "ZZZ"})
	low := NewLineWith("ETF", 100, LineOpts{Currency: "ZZZ", Target: NewTargetMin(1000, 0)})
	high := NewLineWith("Gold", 1500, LineOpts{Currency: "ZZZ", Target: NewTargetMax(1000, 0)})
	onTarget := NewLineWith("Fund", 1000, LineOpts{Currency: "ZZZ", Target: NewTargetMin(1000, 0)})
	fresh := NewLineWith("New", 0, LineOpts{Currency: "ZZZ", Target: NewTargetMin(1000, 0)})
	perf := NewLineWith("Growth", 100, LineOpts{Currency: "ZZZ", Perf: NewPerf(4.5)})
	skipped := NewLineWith("Flat", 100, LineOpts{Currency: "ZZZ", Perf: SkipPerf()})

	testCases := []struct {
		name   string
		node   Node
		format string
		want   string
	}{
		{"name", noTarget, FormatName, "Cash"},
		{"currency", noTarget, FormatCurrency, "ZZZ"},
		{"amount", noTarget, FormatAmount, "100 ZZZ"},

		{"ideal empty without target", noTarget, FormatIdeal, ""},
		{"ideal from target", low, FormatIdeal, "1000 ZZZ"},

		{"delta empty without target", noTarget, FormatDelta, ""},
		{"delta below", low, FormatDelta, "+900 ZZZ"},
		{"delta above", high, FormatDelta, "-500 ZZZ"},
		{"delta on target", onTarget, FormatDelta, "-"},

		{"perf", perf, FormatPerf, "4.50%"},
		{"perf skipped", skipped, FormatPerf, ""},

		{"target empty when none", noTarget, FormatTarget, ""},
		{"target start", fresh, FormatTarget, "• "},
		{"target low", low, FormatTarget, "↗ "},
		{"target ok", onTarget, FormatTarget, "✓ "},
		{"target high", high, FormatTarget, "↘ "},

		{"text alias", low, FormatText, "↗ 100 ZZZ ETF"},
		{"free-form template", noTarget, "[name] ([currency])", "Cash (ZZZ)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.node.Render(tc.format, plain); got != tc.want {
				t.Errorf("Render(%q) = %q, want %q", tc.format, got, tc.want)
			}
		})
	}
}

func TestRender_FolderTags(t *testing.T) {
	plain := PlainTheme()
	f := NewFolder("Stocks",
		NewLineWith("A", 100, LineOpts{Currency: "ZZZ"}),
		NewLineWith("B", 200, LineOpts{Currency: "ZZZ"}),
	)
	if got := f.Render(FormatAmount, plain); got != "300 ZZZ" {
		t.Errorf("folder [amount] = %q, want the children sum", got)
	}
	if got := f.Render(FormatCurrency, plain); got != "ZZZ" {
		t.Errorf("folder [currency] = %q, want ZZZ", got)
	}

	mixed := NewFolder("Mixed",
		NewLineWith("A", 100, LineOpts{Currency: "USD"}),
		NewLineWith("B", 200, LineOpts{Currency: "ZZZ"}),
	)
	if got := mixed.Render(FormatCurrency, plain); got != CurrencyMixed {
		t.Errorf("mixed folder [currency] = %q, want the sentinel", got)
	}
}

func TestRender_TextAliasIsUnstyledConsole(t *testing.T) {
	l := NewLineWith("Cash", 100, LineOpts{Currency: "ZZZ"})
	// Even with a styled theme the [text] alias must stay plain.
	if got := l.Render(FormatText, DefaultTheme()); got != "100 ZZZ Cash" {
		t.Errorf("Render([text]) = %q, want unstyled output", got)
	}
}

func TestRenderOpts_Defaults(t *testing.T) {
	o := RenderOpts{}.withDefaults()
	if o.Format != FormatConsole {
		t.Errorf("default format = %q, want %q", o.Format, FormatConsole)
	}
	if o.Theme == nil {
		t.Error("default theme is nil")
	}
}
