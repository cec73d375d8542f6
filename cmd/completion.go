package cmd

import (
	"os"
	"strconv"

	"github.com/etnz/congress"
	"github.com/etnz/congress/config"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of cfr.
//
// It runs before flags are parsed, so filer names are predicted from the
// default configuration and environment only.
func Completion() *complete.Command {
	filers := complete.PredictFunc(predictFilers)
	lookback := predict.Set{"365", "730", "1825"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":        predict.Files("*.yaml"),
			"disclosures":   predict.Files("*.csv"),
			"year":          predict.Set{year(-1), year(0)},
			"provider":      predict.Set{"yahoo", "eodhd"},
			"summary":       predict.Set{"wikipedia", "gemini", "none"},
			"eodhd-api-key": predict.Nothing,
			"v":             predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"filers":    {},
			"purchases": {Args: filers},
			"report": {
				Flags: map[string]complete.Predictor{
					"n":        predict.Nothing,
					"lookback": lookback,
					"as-of":    predict.Nothing,
				},
				Args: filers,
			},
			"prices": {
				Flags: map[string]complete.Predictor{"lookback": lookback},
			},
			"help":     {},
			"commands": {},
			"flags":    {},
		},
	}
}

func year(offset int) string { return strconv.Itoa(congress.Today().Year() + offset) }

// predictFilers returns the filer surnames of the default disclosures file.
func predictFilers(string) []string {
	c, err := config.Load(os.Getenv(config.EnvConfig))
	if err != nil {
		return nil
	}
	f, err := os.Open(c.Disclosures)
	if err != nil {
		return nil
	}
	defer f.Close()
	events, _, err := congress.DecodeDisclosures(f, c.Year)
	if err != nil {
		return nil
	}
	return congress.AggregateByFiler(events).Names()
}
