package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/congress/renderer"
	"github.com/etnz/congress/report"
	"github.com/google/subcommands"
)

// purchasesCmd lists the purchases of a filer.
type purchasesCmd struct{}

func (*purchasesCmd) Name() string     { return "purchases" }
func (*purchasesCmd) Synopsis() string { return "list the purchases disclosed by a filer" }
func (*purchasesCmd) Usage() string {
	return `cfr purchases <filer>

  Lists the purchases disclosed by a filer, numbered as expected by
  'cfr report -n'. Filer surnames are case insensitive.
`
}

func (*purchasesCmd) SetFlags(f *flag.FlagSet) {}

func (*purchasesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a filer surname is required.")
		return subcommands.ExitUsageError
	}
	c, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	filers, err := openFilers(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading disclosures: %v\n", err)
		return subcommands.ExitFailure
	}
	sel := &report.Selection{Filer: f.Arg(0), Index: report.All}
	events, err := sel.Resolve(filers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPurchases(renderer.NewPurchases(sel.Filer, events)))
	return subcommands.ExitSuccess
}
