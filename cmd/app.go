// Package cmd implements the cfr command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/congress"
	"github.com/etnz/congress/config"
	"github.com/etnz/congress/eodhd"
	"github.com/etnz/congress/gemini"
	"github.com/etnz/congress/report"
	"github.com/etnz/congress/webcache"
	"github.com/etnz/congress/wiki"
	"github.com/etnz/congress/yahoo"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&filersCmd{}, "disclosures")
	c.Register(&purchasesCmd{}, "disclosures")

	c.Register(&reportCmd{}, "reports")
	c.Register(&pricesCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Empty values mean "use the configuration file".

var configFile = flag.String("config", os.Getenv(config.EnvConfig), "Path to the YAML configuration file")
var disclosuresFile = flag.String("disclosures", "", "Path to the disclosure records file (default \"disclosures.csv\", or $"+config.EnvDisclosures+")")
var yearFlag = flag.String("year", "", "Keep disclosures whose transaction date starts with this year (default \"2022\")")
var providerFlag = flag.String("provider", "", "Price provider: yahoo or eodhd (default \"yahoo\")")
var summaryFlag = flag.String("summary", "", "Company summary source: wikipedia, gemini or none (default \"wikipedia\")")
var eodhdAPIKey = flag.String("eodhd-api-key", "", "EODHD API key. This flag takes precedence over the "+config.EnvEODHDAPIKey+" environment variable. You can get one at https://eodhd.com/")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "verbose, print debug logs")

// loadConfig returns the configuration file overridden by global flags.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	for _, o := range []struct {
		flag  string
		value *string
	}{
		{*disclosuresFile, &c.Disclosures},
		{*yearFlag, &c.Year},
		{*providerFlag, &c.Provider},
		{*summaryFlag, &c.Summary},
		{*eodhdAPIKey, &c.EODHDAPIKey},
	} {
		if o.flag != "" {
			*o.value = o.flag
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !*Verbose {
		if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	}
	return c, nil
}

// openFilers reads the disclosures file and aggregates its purchases.
//
// Malformed records are logged and skipped.
func openFilers(c *config.Config) (*congress.Filers, error) {
	f, err := os.Open(c.Disclosures)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	events, errs, err := congress.DecodeDisclosures(f, c.Year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Disclosures, err)
	}
	for _, err := range errs {
		log.Warn().Err(err).Str("file", c.Disclosures).Msg("skipping record")
	}
	log.Debug().Int("purchases", len(events)).Int("malformed", len(errs)).Str("year", c.Year).Msg("disclosures loaded")
	return congress.AggregateByFiler(events), nil
}

// newProvider returns the configured price provider.
func newProvider(c *config.Config) report.PriceProvider {
	client := webcache.NewDaily(c.Cache.Dir, c.Cache.RatePerSecond)
	switch c.Provider {
	case "eodhd":
		p := eodhd.New(c.EODHDAPIKey)
		p.HTTP = client
		return p
	default:
		p := yahoo.New()
		p.HTTP = client
		return p
	}
}

// newSummarizer returns the configured summarizer, nil for none.
func newSummarizer(ctx context.Context, c *config.Config) (report.Summarizer, error) {
	switch c.Summary {
	case "gemini":
		g, err := gemini.New(ctx)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "wikipedia":
		w := wiki.New()
		w.HTTP = webcache.NewDaily(c.Cache.Dir, c.Cache.RatePerSecond)
		return w, nil
	default:
		return nil, nil
	}
}

// printMarkdown renders md for the terminal, or prints it raw if it can't.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	log.Debug().Err(err).Msg("cannot render markdown")
	fmt.Print(md)
}
