package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/congress"
	"github.com/etnz/congress/renderer"
	"github.com/google/subcommands"
)

// pricesCmd summarizes the price history of a ticker.
type pricesCmd struct {
	lookback int
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "show the price history summary of a ticker" }
func (*pricesCmd) Usage() string {
	return `cfr prices [-lookback <days>] <ticker>

  Shows the earliest and latest close of a ticker and the change between them.
  The ticker is normalized as disclosed tickers are ("BRK.B" is "BRK-B").
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.lookback, "lookback", 0, "days of price history before today (default from configuration, 730)")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a ticker is required.")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	lookback := cfg.LookbackDays
	if c.lookback > 0 {
		lookback = c.lookback
	}

	ticker := congress.NormalizeTicker(f.Arg(0))
	w := congress.Lookback(congress.Today(), lookback)
	s, err := newProvider(cfg).Prices(ctx, ticker, w.From, w.To)
	if errors.Is(err, congress.ErrUnresolvedTicker) {
		fmt.Fprintf(os.Stderr, "Error: %s has no price data on %s\n", ticker, cfg.Provider)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPrices(renderer.NewPrices(s)))
	return subcommands.ExitSuccess
}
