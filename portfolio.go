package folio

// Portfolio is the root of the hierarchy: a folder with no parent, no
// newline, and fixed root semantics. It is the serialization entry point.
type Portfolio struct {
	Folder
}

// PortfolioOpts holds the optional attributes of a Portfolio.
type PortfolioOpts struct {
	Target   Target
	Currency string
}

// NewPortfolio creates a portfolio root owning the given children.
// The name defaults to "Portfolio" when empty.
func NewPortfolio(name string, children ...Node) *Portfolio {
	return NewPortfolioWith(name, PortfolioOpts{}, children...)
}

// NewPortfolioWith creates a portfolio root with explicit optional attributes.
func NewPortfolioWith(name string, o PortfolioOpts, children ...Node) *Portfolio {
	if name == "" {
		name = "Portfolio"
	}
	p := &Portfolio{}
	p.nodeBase = newNodeBase(name)
	p.currency = o.Currency
	setTarget(p, o.Target)
	for _, child := range children {
		p.AddChild(child)
	}
	return p
}

// ToDict returns the plain map form of the whole hierarchy. The root's type
// is implicit: a portfolio is never nested as a child.
func (p *Portfolio) ToDict() map[string]any {
	m := p.Folder.ToDict()
	delete(m, "type")
	if p.currency != "" {
		m["currency"] = p.currency
	}
	return m
}
