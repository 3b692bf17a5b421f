package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

type importCmd struct {
	exportFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "reconcile a provider export with the tree" }
func (*importCmd) Usage() string {
	return `fol import -e <export.json>

  Reads the lines of a provider export and matches each one against the
  tree: matched lines get their amount updated, and folders holding the
  record's envelope receive a new line. The document is saved back in
  canonical form.

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "e", "", "path to the provider export file (JSON)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.exportFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -e <export.json> is required")
		return subcommands.ExitUsageError
	}

	doc, err := DecodeDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	export, err := os.Open(c.exportFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open export %q: %v\n", c.exportFile, err)
		return subcommands.ExitFailure
	}
	defer export.Close()

	fetched, err := folio.DecodeFetchLines(export)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var updated, unmatched int
	for _, fl := range fetched {
		matched := doc.Portfolio.MatchLines(fl)
		if len(matched) == 0 {
			unmatched++
			fmt.Fprintf(os.Stderr, "Warning: no match for %q (account %q)\n", fl.Name, fl.Account)
			continue
		}
		if len(matched) > 1 {
			fmt.Fprintf(os.Stderr, "Warning: %d matches for %q, updating all\n", len(matched), fl.Name)
		}
		for _, l := range matched {
			l.SetAmount(fl.Amount)
		}
		updated++
	}

	if err := SaveDocument(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d of %d fetched lines (%d unmatched).\n", updated, len(fetched), unmatched)
	return subcommands.ExitSuccess
}
