package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/congress"
	"github.com/etnz/congress/renderer"
	"github.com/etnz/congress/report"
	"github.com/google/subcommands"
)

// reportCmd reconciles a filer's purchases with price history.
type reportCmd struct {
	index    int
	lookback int
	asOf     string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compare a filer's purchases with today's prices" }
func (*reportCmd) Usage() string {
	return `cfr report [-n <index>] [-lookback <days>] <filer>

  For every purchase disclosed by the filer, or only the one selected with -n,
  reports the price on the purchase day, the latest price, and what the
  minimum disclosed amount would be worth today.

  Purchases that cannot be priced (unknown ticker, or no trading on that day)
  are reported with the reason.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "n", report.All, "index of the purchase to report, as listed by 'cfr purchases' (default all)")
	f.IntVar(&c.lookback, "lookback", 0, "days of price history before today (default from configuration, 730)")
	f.StringVar(&c.asOf, "as-of", "", "report date, YYYY-MM-DD (default today)")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a filer surname is required.")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	var asOf congress.Date
	if c.asOf != "" {
		if asOf, err = congress.ParseDate(c.asOf); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -as-of: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	filers, err := openFilers(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading disclosures: %v\n", err)
		return subcommands.ExitFailure
	}
	sel := &report.Selection{Filer: f.Arg(0), Index: c.index}
	events, err := sel.Resolve(filers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	summaries, err := newSummarizer(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s summarizer: %v\n", cfg.Summary, err)
		return subcommands.ExitFailure
	}
	b := report.NewBuilder(newProvider(cfg), summaries)
	b.Aligner = congress.Aligner{ReferenceHour: cfg.ReferenceHour}
	b.Lookback = cfg.LookbackDays
	if c.lookback > 0 {
		b.Lookback = c.lookback
	}
	b.AsOf = asOf

	r := b.Build(ctx, sel.Filer, events)
	first := 0
	if sel.Index != report.All {
		first = sel.Index
	}
	printMarkdown(renderer.RenderReport(renderer.NewReport(r, first)))
	return subcommands.ExitSuccess
}
