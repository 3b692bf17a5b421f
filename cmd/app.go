// Package cmd implements the CLI application to manage a portfolio document.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

// Commands lists the subcommands.
// A main package registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&showCmd{},
	&perfCmd{},
	&fmtCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.json", "Path to the portfolio document (JSON format)")

// DecodeDocument reads the app portfolio document.
func DecodeDocument() (*folio.Document, error) {
	f, err := os.Open(*portfolioFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()
	return folio.DecodeDocument(f)
}

// SaveDocument writes the document back in canonical form.
func SaveDocument(doc *folio.Document) error {
	f, err := os.Create(*portfolioFile)
	if err != nil {
		return fmt.Errorf("cannot write portfolio file %q: %w", *portfolioFile, err)
	}
	defer f.Close()
	return folio.EncodeDocument(f, doc)
}
