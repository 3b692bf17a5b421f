package folio

// Line is a leaf node representing a single investment holding.
type Line struct {
	nodeBase
	amount float64
	key    string // provider identifier, when different from the display name
}

// LineOpts holds the optional attributes of a Line.
type LineOpts struct {
	Key           string
	AssetClass    AssetClass
	AssetSubclass AssetSubclass
	Target        Target
	Perf          *Perf
	Currency      string
	Envelope      *Envelope
	Newline       bool
}

// NewLine creates a leaf holding with the given current amount.
func NewLine(name string, amount float64) *Line {
	return NewLineWith(name, amount, LineOpts{})
}

// NewLineWith creates a leaf holding with explicit optional attributes.
func NewLineWith(name string, amount float64, o LineOpts) *Line {
	l := &Line{nodeBase: newNodeBase(name), amount: amount, key: o.Key}
	l.assetClass = o.AssetClass
	l.assetSubclass = o.AssetSubclass
	l.currency = o.Currency
	l.envelope = o.Envelope
	l.newline = o.Newline
	l.perf = o.Perf
	setTarget(l, o.Target)
	return l
}

// Key returns the provider identifier used for fetch reconciliation,
// empty when the display name is the identifier.
func (l *Line) Key() string { return l.key }

func (l *Line) GetAmount() float64 { return l.amount }

// SetAmount updates the current invested amount, typically after a fetch.
func (l *Line) SetAmount(amount float64) { l.amount = amount }

func (l *Line) GetIdeal() float64 {
	if l.target.Check() != ResultNone {
		return l.target.GetIdeal()
	}
	return 0
}

func (l *Line) GetCurrency() string {
	if l.currency == "" {
		return DefaultCurrency
	}
	return l.currency
}

// GetPerf returns the line's expected performance. The ideal flag only
// matters for folders and is ignored here.
func (l *Line) GetPerf(bool) Perf {
	if l.perf == nil {
		return Perf{}
	}
	return *l.perf
}

func (l *Line) Render(format string, th *Theme) string { return renderNode(l, format, th) }

// Process is a no-op: a line has nothing to recompute.
func (l *Line) Process() {}

func (l *Line) skipPerf() bool { return l.perf != nil && l.perf.Skip }

func (l *Line) treeNode(opts RenderOpts) any {
	return l.Render(opts.Format, opts.Theme) + l.renderNewline()
}

func (l *Line) matchLines(fl *FetchLine) []*Line {
	if fl.MatchesLine(l) {
		return []*Line{l}
	}
	return nil
}

func (l *Line) renderSidecarInto(sc Sidecar, rows *[]string, th *Theme) {
	render := sidecarContent(l, sc, th)
	if l.newline {
		render += "\n"
	}
	*rows = append(*rows, render)
}

func (l *Line) ToDict() map[string]any {
	m := map[string]any{
		"type":           "line",
		"name":           l.name,
		"amount":         l.amount,
		"target":         l.target.toDict(),
		"newline":        l.newline,
		"asset_class":    l.assetClass.String(),
		"asset_subclass": l.assetSubclass.String(),
	}
	if l.key != "" {
		m["key"] = l.key
	}
	if l.currency != "" {
		m["currency"] = l.currency
	}
	if l.perf != nil {
		m["perf"] = map[string]any{"expected": float64(l.perf.Expected), "skip": l.perf.Skip}
	}
	if l.envelope != nil {
		m["envelope"] = l.envelope.Name()
	}
	return m
}

// clone duplicates the line with a different amount. Used by buckets to hand
// out partial allocations without mutating the pooled original.
func (l *Line) clone(amount float64) *Line {
	perf := l.perf
	if perf != nil {
		p := *perf
		perf = &p
	}
	return NewLineWith(l.name, amount, LineOpts{
		Key:           l.key,
		AssetClass:    l.assetClass,
		AssetSubclass: l.assetSubclass,
		Perf:          perf,
		Currency:      l.currency,
		Envelope:      l.envelope,
	})
}
