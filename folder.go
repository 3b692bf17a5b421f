package folio

import (
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Display selects how a folder is rendered.
type Display int

const (
	// DisplayExpanded shows the folder and all its children.
	DisplayExpanded Display = iota
	// DisplayCollapsed shows only the folder row.
	DisplayCollapsed
	// DisplayLine shows only the folder row, styled as if it were a line.
	DisplayLine
)

func (d Display) String() string {
	switch d {
	case DisplayExpanded:
		return "expanded"
	case DisplayCollapsed:
		return "collapsed"
	case DisplayLine:
		return "line"
	default:
		return fmt.Sprintf("display(%d)", int(d))
	}
}

// Folder holds an ordered group of nodes and aggregates their values.
//
// A folder never stores an amount of its own: amounts, ideals and expected
// performance are always recomputed from the children.
type Folder struct {
	nodeBase
	children []Node
	display  Display
	shared   bool // set by SharedFolder, drives the sidecar render policy
}

// FolderOpts holds the optional attributes of a Folder.
type FolderOpts struct {
	AssetClass    AssetClass
	AssetSubclass AssetSubclass
	Target        Target
	Perf          *Perf
	Currency      string
	Envelope      *Envelope
	Newline       bool
	Display       Display
}

// NewFolder creates a folder owning the given children.
func NewFolder(name string, children ...Node) *Folder {
	return NewFolderWith(name, FolderOpts{}, children...)
}

// NewFolderWith creates a folder with explicit optional attributes.
// Shared attributes (asset classes, performance, currency, envelope) are
// pushed down into the children on attach; a child's own explicit values
// always win over the folder's.
func NewFolderWith(name string, o FolderOpts, children ...Node) *Folder {
	f := &Folder{nodeBase: newNodeBase(name), display: o.Display}
	f.assetClass = o.AssetClass
	f.assetSubclass = o.AssetSubclass
	f.currency = o.Currency
	f.envelope = o.Envelope
	f.newline = o.Newline
	f.perf = o.Perf
	setTarget(f, o.Target)
	for _, child := range children {
		f.AddChild(child)
	}
	return f
}

// AddChild appends a child at the end of the folder's children, reparents
// it, and pushes the folder's shared attributes down into it.
func (f *Folder) AddChild(child Node) {
	child.SetParent(f)
	f.children = append(f.children, child)
	pushAttribs(child, f.assetClass, f.assetSubclass, f.perf, f.currency, f.envelope)
}

// Children returns the folder's ordered children.
func (f *Folder) Children() []Node { return f.children }

// Display returns how the folder is rendered.
func (f *Folder) Display() Display { return f.display }

// SetDisplay changes how the folder is rendered.
func (f *Folder) SetDisplay(d Display) { f.display = d }

func (f *Folder) childNodes() []Node { return f.children }

// GetAmount returns the sum of the children's amounts, 0 for an empty folder.
func (f *Folder) GetAmount() float64 {
	var sum float64
	for _, child := range f.children {
		sum += child.GetAmount()
	}
	return sum
}

// GetCurrency returns the children's common currency, or CurrencyMixed when
// they diverge or the folder is empty.
func (f *Folder) GetCurrency() string {
	if len(f.children) == 0 {
		return CurrencyMixed
	}
	cur := f.children[0].GetCurrency()
	for _, child := range f.children[1:] {
		if child.GetCurrency() != cur {
			return CurrencyMixed
		}
	}
	return cur
}

// GetIdeal returns the folder's own target ideal when one is set, the sum of
// the children's ideals otherwise.
func (f *Folder) GetIdeal() float64 {
	if f.target.Check() != ResultNone {
		return f.target.GetIdeal()
	}
	var sum float64
	for _, child := range f.children {
		sum += child.GetIdeal()
	}
	return sum
}

// GetPerf returns the weighted mean expected performance of the children.
//
// Leaves marked skip are excluded up front; folders are never excluded at
// that step, their own skip status resolves recursively. When every
// candidate is skipped (or there is none), the folder reports skip itself.
// Weights are the children's ideal amounts when ideal is true, their
// current amounts otherwise; a zero weight total falls back to equal
// weights, so folders without any target still average their children.
func (f *Folder) GetPerf(ideal bool) Perf {
	var candidates []Node
	for _, child := range f.children {
		if child.skipPerf() {
			continue
		}
		candidates = append(candidates, child)
	}

	perfs := make([]Perf, len(candidates))
	allSkip := true
	for i, c := range candidates {
		perfs[i] = c.GetPerf(ideal)
		if !perfs[i].Skip {
			allSkip = false
		}
	}
	if len(candidates) == 0 || allSkip {
		return Perf{Skip: true}
	}

	var total float64
	weights := make([]float64, len(candidates))
	for i, c := range candidates {
		if ideal {
			weights[i] = c.GetIdeal()
		} else {
			weights[i] = c.GetAmount()
		}
		total += weights[i]
	}

	var expected float64
	if total == 0 {
		w := 1 / float64(len(candidates))
		for i := range candidates {
			expected += w * float64(perfs[i].Expected)
		}
	} else {
		for i := range candidates {
			expected += weights[i] / total * float64(perfs[i].Expected)
		}
	}
	return Perf{Expected: Percent(expected)}
}

// Process runs the processing pass on every child, in children-list order,
// then validates that the children's ratio targets sum to 100. The ratio
// check is advisory: a mismatch is logged and processing continues.
//
// Process must run exactly once per evaluation cycle, before any amount
// query or rendering is trusted: shared folders drawing from the same
// bucket are funded in processing order.
func (f *Folder) Process() {
	var totalRatio float64
	for _, child := range f.children {
		child.Process()
		if ratio, ok := child.Target().ratioValue(); ok {
			totalRatio += ratio
		}
	}
	if totalRatio != 0 && totalRatio != 100 {
		log.Printf("warning: folder %q ratio targets sum to %v, expected 100", f.name, totalRatio)
	}
}

// MatchLines reconciles an investment record fetched online with the tree.
//
// When the record's account matches this folder's envelope, a new line is
// synthesized from the record and attached as a child. Then children are
// scanned: matching lines are collected, folders are recursed into. The
// returned list may contain several matches; disambiguation is left to the
// caller.
func (f *Folder) MatchLines(fl *FetchLine) []*Line {
	return f.matchLines(fl)
}

func (f *Folder) matchLines(fl *FetchLine) []*Line {
	var matched []*Line
	var generated *Line
	if f.envelope != nil && (fl.Account == f.envelope.Key() || fl.Account == f.envelope.Name()) {
		generated = fl.GenerateLine()
		f.AddChild(generated)
		matched = append(matched, generated)
	}
	for _, child := range f.children {
		if generated != nil && child == Node(generated) {
			continue // already in the match list
		}
		matched = append(matched, child.matchLines(fl)...)
	}
	return matched
}

// Tree builds the renderable hierarchy for this folder. Children are only
// attached when the folder is expanded; collapsed and line displays show a
// single opaque row.
func (f *Folder) Tree(opts RenderOpts) *tree.Tree {
	opts = opts.withDefaults()
	root := ""
	if !opts.HideRoot {
		root = f.Render(opts.Format, opts.Theme)
	}
	t := tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(opts.Theme.Branch)
	if f.display == DisplayExpanded {
		for _, child := range f.children {
			t.Child(child.treeNode(opts))
		}
	}
	return t
}

func (f *Folder) treeNode(opts RenderOpts) any {
	label := f.Render(opts.Format, opts.Theme) + f.renderNewline()
	if f.display != DisplayExpanded {
		return label
	}
	t := tree.Root(label)
	for _, child := range f.children {
		t.Child(child.treeNode(opts))
	}
	return t
}

func (f *Folder) Render(format string, th *Theme) string { return renderNode(f, format, th) }

func (f *Folder) nameStyle(th *Theme) lipgloss.Style {
	switch f.display {
	case DisplayExpanded:
		return th.Folder
	case DisplayCollapsed:
		return th.Collapsed
	case DisplayLine:
		return f.nodeBase.nameStyle(th)
	default:
		panic(fmt.Sprintf("display mode %q not recognized", f.display))
	}
}

// renderNewline only emits spacing when the folder shows as a single row:
// an expanded folder's spacing belongs to its last child.
func (f *Folder) renderNewline() string {
	if f.newline && f.display != DisplayExpanded {
		return "\n"
	}
	return ""
}

func (f *Folder) ToDict() map[string]any {
	children := make([]any, 0, len(f.children))
	for _, child := range f.children {
		children = append(children, child.ToDict())
	}
	return map[string]any{
		"type":     "folder",
		"name":     f.name,
		"target":   f.target.toDict(),
		"children": children,
		"newline":  f.newline,
		"display":  int(f.display),
	}
}
