package renderer

import (
	"strings"

	"github.com/etnz/folio"
)

// Allocation is the flattened report form of a portfolio hierarchy: one row
// per node, in tree order, with amounts, shares of the total, target-driven
// ideals and expected performance.
type Allocation struct {
	// Name of the portfolio.
	Name string
	// Total invested amount of the whole portfolio.
	Total folio.Money
	// TotalIdeal is the target-driven amount the portfolio should hold.
	TotalIdeal folio.Money
	// Perf is the weighted expected performance of the whole portfolio.
	Perf folio.Perf
	// Rows lists every node of the tree, depth first.
	Rows []AllocationRow
}

// AllocationRow is one node of the report.
type AllocationRow struct {
	// Indent marks the node's depth in the tree.
	Indent string
	Name   string
	Amount folio.Money
	// Share of the portfolio total held by this node.
	Share folio.Percent
	Ideal folio.Money
	// Delta is the amount to invest (or withdraw) to reach the ideal.
	Delta folio.Money
	Perf  folio.Perf
}

// NewAllocation builds the report from a processed portfolio. The ideal flag
// selects the performance weighting, as in Node.GetPerf.
func NewAllocation(p *folio.Portfolio, ideal bool) *Allocation {
	total := p.GetAmount()
	cur := p.GetCurrency()
	a := &Allocation{
		Name:       p.Name(),
		Total:      folio.M(total, cur),
		TotalIdeal: folio.M(p.GetIdeal(), cur),
		Perf:       p.GetPerf(ideal),
		Rows:       make([]AllocationRow, 0),
	}
	for _, child := range p.Children() {
		a.appendRows(child, total, ideal, 0)
	}
	return a
}

func (a *Allocation) appendRows(n folio.Node, total float64, ideal bool, depth int) {
	amount := n.GetAmount()
	var share folio.Percent
	if total != 0 {
		share = folio.Percent(100 * amount / total)
	}
	a.Rows = append(a.Rows, AllocationRow{
		Indent: strings.Repeat("· ", depth),
		Name:   n.Name(),
		Amount: folio.M(amount, n.GetCurrency()),
		Share:  share,
		Ideal:  folio.M(n.GetIdeal(), n.GetCurrency()),
		Delta:  folio.M(n.GetIdeal()-amount, n.GetCurrency()),
		Perf:   n.GetPerf(ideal),
	})
	if f, ok := n.(interface{ Children() []folio.Node }); ok {
		for _, child := range f.Children() {
			a.appendRows(child, total, ideal, depth+1)
		}
	}
}
