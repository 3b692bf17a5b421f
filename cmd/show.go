package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

type showCmd struct {
	format   string
	hideRoot bool
	plain    bool
	sidecars sidecarFlags
}

// sidecarFlags collects repeatable -sidecar values. Each value is an output
// format, optionally followed by a comma and a condition format.
type sidecarFlags []string

func (s *sidecarFlags) String() string { return strings.Join(*s, " ") }
func (s *sidecarFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "render the portfolio tree in the console" }
func (*showCmd) Usage() string {
	return `fol show [-f <format>] [-hide-root] [-sidecar <output[,condition]>]...

  Renders the portfolio hierarchy as a tree. The format is a free-form
  template where tags like [name], [amount], [delta], [perf] or [target]
  expand to the node's fields. Sidecars add aligned auxiliary columns.

Usage Examples:
# Show the tree with an investment column.
$ fol show -sidecar "[delta],[delta]"

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "f", folio.FormatConsole, "format template for each row")
	f.BoolVar(&c.hideRoot, "hide-root", false, "do not render the root row")
	f.BoolVar(&c.plain, "plain", false, "disable styling")
	f.Var(&c.sidecars, "sidecar", "auxiliary column format, repeatable")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := DecodeDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	doc.Portfolio.Process()

	th := folio.DefaultTheme()
	if c.plain {
		th = folio.PlainTheme()
	}

	columns := []string{doc.Portfolio.Tree(folio.RenderOpts{
		Format:   c.format,
		HideRoot: c.hideRoot,
		Theme:    th,
	}).String()}

	for _, raw := range c.sidecars {
		output, condition, _ := strings.Cut(raw, ",")
		rows := doc.Portfolio.RenderSidecar(folio.Sidecar{
			OutputFormat:    output,
			ConditionFormat: condition,
		}, c.hideRoot, th)
		columns = append(columns, folio.SidecarColumn(rows))
	}

	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	return subcommands.ExitSuccess
}
