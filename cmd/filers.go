package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/congress/renderer"
	"github.com/google/subcommands"
)

// filersCmd lists the filers.
type filersCmd struct{}

func (*filersCmd) Name() string     { return "filers" }
func (*filersCmd) Synopsis() string { return "list filers who disclosed purchases" }
func (*filersCmd) Usage() string {
	return `cfr filers

  Lists the surnames of filers who disclosed purchases in the selected year,
  in the order they first appear in the disclosures file.
`
}

func (*filersCmd) SetFlags(f *flag.FlagSet) {}

func (*filersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: filers takes no argument.")
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
	printMarkdown(renderer.RenderFilers(renderer.NewFilers(c.Year, filers)))
	return subcommands.ExitSuccess
}
