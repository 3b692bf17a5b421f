package folio

import "github.com/charmbracelet/lipgloss"

// DefaultCurrency is assumed for nodes that never received a currency.
const DefaultCurrency = "EUR"

// CurrencyMixed is the sentinel returned by folders whose children do not
// share a single currency. It is not an error: callers must handle it.
const CurrencyMixed = "#"

// Node is the contract shared by every member of the portfolio tree:
// leaf lines, folders, shared folders and the portfolio root.
//
// The interface carries every operation callers need, so that no code has
// to inspect the concrete variant of a node.
type Node interface {
	// Name returns the display name of the node.
	Name() string
	// GetAmount returns the current invested amount.
	GetAmount() float64
	// GetIdeal returns the target-driven amount the node should hold.
	GetIdeal() float64
	// GetCurrency returns the node currency, or CurrencyMixed when the
	// node aggregates children with diverging currencies.
	GetCurrency() string
	// GetPerf returns the expected performance, weighted by ideal amounts
	// when ideal is true, by current amounts otherwise. Leaves ignore the flag.
	GetPerf(ideal bool) Perf
	// Render formats the node as text according to a format template.
	Render(format string, th *Theme) string
	// Process runs the once-per-cycle processing pass.
	Process()
	// Newline reports whether a blank line follows this node in reports.
	Newline() bool
	SetNewline(on bool)
	// Parent returns the owning folder, nil for the root. The reference is
	// non-owning: it is set by the parent on attach, never by the node itself.
	Parent() *Folder
	SetParent(f *Folder)
	// Target returns the node's target, never nil (NoTarget as sentinel).
	Target() Target
	// ToDict returns the plain nested-map form of the node, with a "type"
	// discriminator, suitable for JSON persistence.
	ToDict() map[string]any

	base() *nodeBase
	childNodes() []Node
	skipPerf() bool
	treeNode(opts RenderOpts) any
	matchLines(fl *FetchLine) []*Line
	renderSidecarInto(sc Sidecar, rows *[]string, th *Theme)
	nameStyle(th *Theme) lipgloss.Style
	renderNewline() string
}

// nodeBase carries the attributes shared by every node variant.
type nodeBase struct {
	name          string
	assetClass    AssetClass
	assetSubclass AssetSubclass
	parent        *Folder
	target        Target
	newline       bool
	perf          *Perf
	currency      string
	envelope      *Envelope
}

func newNodeBase(name string) nodeBase {
	b := nodeBase{name: name}
	b.target = NewNoTarget()
	return b
}

func (b *nodeBase) Name() string                 { return b.name }
func (b *nodeBase) Newline() bool                { return b.newline }
func (b *nodeBase) SetNewline(on bool)           { b.newline = on }
func (b *nodeBase) Parent() *Folder              { return b.parent }
func (b *nodeBase) SetParent(f *Folder)          { b.parent = f }
func (b *nodeBase) Target() Target               { return b.target }
func (b *nodeBase) AssetClass() AssetClass       { return b.assetClass }
func (b *nodeBase) AssetSubclass() AssetSubclass { return b.assetSubclass }
func (b *nodeBase) Envelope() *Envelope          { return b.envelope }

func (b *nodeBase) base() *nodeBase    { return b }
func (b *nodeBase) childNodes() []Node { return nil }
func (b *nodeBase) skipPerf() bool     { return false }

func (b *nodeBase) nameStyle(th *Theme) lipgloss.Style { return th.Line }

func (b *nodeBase) renderNewline() string {
	if b.newline {
		return "\n"
	}
	return ""
}

// setTarget attaches a target to its owning node, defaulting to NoTarget.
// The node reference lets relative targets read amounts up the tree.
func setTarget(n Node, t Target) {
	if t == nil {
		t = NewNoTarget()
	}
	t.setNode(n)
	n.base().target = t
}

// pushAttribs propagates a folder's shared attributes down to a child, and
// recursively to the child's own descendants. Asset classes only fill the
// UNKNOWN sentinel and an unset (or zero-expected) performance; currency and
// envelope win unconditionally whenever the folder supplies one. Values are
// copied: later changes to the folder do not retroactively affect children.
func pushAttribs(child Node, class AssetClass, subclass AssetSubclass, perf *Perf, currency string, envelope *Envelope) {
	b := child.base()
	if b.assetClass == ClassUnknown {
		b.assetClass = class
	}
	if b.assetSubclass == SubclassUnknown {
		b.assetSubclass = subclass
	}
	if currency != "" {
		b.currency = currency
	}
	if envelope != nil {
		b.envelope = envelope
	}
	if perf != nil && (b.perf == nil || b.perf.Expected == 0) {
		p := *perf
		b.perf = &p
	}
	for _, c := range child.childNodes() {
		pushAttribs(c, class, subclass, perf, currency, envelope)
	}
}
