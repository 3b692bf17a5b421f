package folio

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Format tags understood by Render. A format template is a free-form string
// where each tag expands to the corresponding field of the rendered node.
const (
	FormatConsole  = "[console]" // alias: check symbol, amount and name, styled
	FormatText     = "[text]"    // alias: same as [console] but unstyled
	FormatName     = "[name]"
	FormatAmount   = "[amount]"
	FormatIdeal    = "[ideal]"
	FormatDelta    = "[delta]"
	FormatPerf     = "[perf]"
	FormatCurrency = "[currency]"
	FormatTarget   = "[target]"
)

const consoleTemplate = "[target][amount] [name]"

// Theme is the rendering configuration threaded explicitly through every
// render call. There is no process-wide theme state.
type Theme struct {
	Text      lipgloss.Style
	Line      lipgloss.Style
	Folder    lipgloss.Style
	Collapsed lipgloss.Style
	Accent    lipgloss.Style
	Hint      lipgloss.Style
	Branch    lipgloss.Style
	Title     lipgloss.Style
	Start     lipgloss.Style
	Low       lipgloss.Style
	OK        lipgloss.Style
	High      lipgloss.Style
}

// DefaultTheme returns the standard console theme.
func DefaultTheme() *Theme {
	return &Theme{
		Text:      lipgloss.NewStyle(),
		Line:      lipgloss.NewStyle(),
		Folder:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Collapsed: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Branch:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Title:     lipgloss.NewStyle().Bold(true),
		Start:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Low:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		OK:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		High:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// PlainTheme returns a theme without any styling, for plain-text output.
func PlainTheme() *Theme { return &Theme{} }

// RenderOpts configures tree rendering.
type RenderOpts struct {
	Format   string // format template, FormatConsole when empty
	HideRoot bool   // omit the root row
	Theme    *Theme // DefaultTheme when nil
}

func (o RenderOpts) withDefaults() RenderOpts {
	if o.Format == "" {
		o.Format = FormatConsole
	}
	if o.Theme == nil {
		o.Theme = DefaultTheme()
	}
	return o
}

// renderNode expands a format template for a node. It never appends the
// node's trailing newline: spacing is the concern of tree and sidecar
// assembly, which know whether a row is terminal.
func renderNode(n Node, format string, th *Theme) string {
	if th == nil {
		th = DefaultTheme()
	}
	switch format {
	case FormatConsole:
		format = consoleTemplate
	case FormatText:
		format = consoleTemplate
		th = PlainTheme()
	}

	r := strings.NewReplacer(
		FormatName, n.nameStyle(th).Render(n.Name()),
		FormatAmount, th.Text.Render(M(n.GetAmount(), n.GetCurrency()).String()),
		FormatIdeal, renderIdeal(n, th),
		FormatDelta, renderDelta(n, th),
		FormatPerf, renderPerf(n, th),
		FormatCurrency, n.GetCurrency(),
		FormatTarget, renderTarget(n, th),
	)
	return r.Replace(format)
}

// renderIdeal renders the target-driven amount, empty when there is none.
func renderIdeal(n Node, th *Theme) string {
	ideal := n.GetIdeal()
	if ideal == 0 {
		return ""
	}
	return th.Accent.Render(M(ideal, n.GetCurrency()).String())
}

// renderDelta renders the signed difference between ideal and current
// amount. Nodes without any target render empty, which sidecars use as
// the alignment-preserving blank row.
func renderDelta(n Node, th *Theme) string {
	if n.Target().Check() == ResultNone && n.GetIdeal() == 0 {
		return ""
	}
	delta := M(n.GetIdeal()-n.GetAmount(), n.GetCurrency())
	if delta.IsZero() {
		return th.Hint.Render("-")
	}
	if delta.IsPositive() {
		return th.Low.Render(delta.SignedString())
	}
	return th.High.Render(delta.SignedString())
}

func renderPerf(n Node, th *Theme) string {
	p := n.GetPerf(true)
	if p.Skip {
		return ""
	}
	return th.Hint.Render(p.Expected.String())
}

// renderTarget renders the target check symbol, with a trailing space so the
// console template reads naturally whether or not a target is set.
func renderTarget(n Node, th *Theme) string {
	switch n.Target().Check() {
	case ResultNone:
		return ""
	case ResultStart:
		return th.Start.Render("•") + " "
	case ResultLow:
		return th.Low.Render("↗") + " "
	case ResultOK:
		return th.OK.Render("✓") + " "
	case ResultHigh:
		return th.High.Render("↘") + " "
	default:
		return ""
	}
}
