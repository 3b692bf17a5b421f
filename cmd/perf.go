package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type perfCmd struct {
	ideal bool
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "render the allocation and performance report" }
func (*perfCmd) Usage() string {
	return `fol perf [-ideal]

  Renders a markdown report with one row per node: amount, share of the
  portfolio, target-driven ideal, delta and expected yearly performance.

`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ideal, "ideal", false, "weigh expected performance by ideal amounts instead of current ones")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := DecodeDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	doc.Portfolio.Process()

	printMarkdown(renderer.RenderAllocation(renderer.NewAllocation(doc.Portfolio, c.ideal)))
	return subcommands.ExitSuccess
}
