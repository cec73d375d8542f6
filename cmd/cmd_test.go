package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/etnz/congress/config"
	"github.com/etnz/congress/eodhd"
	"github.com/etnz/congress/yahoo"
	"github.com/google/subcommands"
)

const disclosures = `Id,TransactionDate,Ticker,Representative,Transaction,Range,House
1,2022-05-02,AAPL,Nancy Pelosi,Purchase,1001,House
2,2022-05-03,BRK.B,John Smith Jr,Purchase,15001,House
3,2022-05-04,MSFT,Nancy Pelosi,Sale (Full),1001,House
4,2022-05-05
5,2021-05-05,MSFT,Jane Doe,Purchase,1001,House
`

// withFlags sets global flags for the duration of the test.
func withFlags(t *testing.T, values map[*string]string) {
	t.Helper()
	for p, v := range values {
		old := *p
		*p = v
		t.Cleanup(func() { *p = old })
	}
}

func writeDisclosures(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disclosures.csv")
	if err := os.WriteFile(path, []byte(disclosures), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	t.Setenv(config.EnvDisclosures, "from-env.csv")
	t.Setenv(config.EnvEODHDAPIKey, "")
	withFlags(t, map[*string]string{
		configFile:      "",
		disclosuresFile: "from-flag.csv",
		yearFlag:        "2021",
		providerFlag:    "eodhd",
		eodhdAPIKey:     "key",
		summaryFlag:     "none",
	})
	c, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if c.Disclosures != "from-flag.csv" || c.Year != "2021" || c.Provider != "eodhd" || c.EODHDAPIKey != "key" || c.Summary != "none" {
		t.Errorf("loadConfig() = %+v", c)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv(config.EnvEODHDAPIKey, "")
	withFlags(t, map[*string]string{configFile: "", providerFlag: "eodhd", eodhdAPIKey: ""})
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() without EODHD key succeeded")
	}
}

func TestOpenFilers(t *testing.T) {
	c := config.Default()
	c.Disclosures = writeDisclosures(t)
	filers, err := openFilers(c)
	if err != nil {
		t.Fatalf("openFilers() error = %v", err)
	}
	if got, want := filers.Names(), []string{"Pelosi", "Smith"}; !reflect.DeepEqual(got, want) {
		t.Errorf("openFilers() names = %v, want %v", got, want)
	}
	if got := filers.Events("Smith")[0].Ticker; got != "BRK-B" {
		t.Errorf("Smith ticker = %q, want BRK-B", got)
	}
}

func TestOpenFilers_Empty(t *testing.T) {
	c := config.Default()
	c.Disclosures = filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(c.Disclosures, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := openFilers(c); err == nil {
		t.Error("openFilers(empty) succeeded")
	}
}

func TestNewProvider(t *testing.T) {
	c := config.Default()
	if _, ok := newProvider(c).(*yahoo.Client); !ok {
		t.Errorf("newProvider(yahoo) = %T", newProvider(c))
	}
	c.Provider, c.EODHDAPIKey = "eodhd", "key"
	p, ok := newProvider(c).(*eodhd.Client)
	if !ok || p.APIKey != "key" {
		t.Errorf("newProvider(eodhd) = %#v", p)
	}
}

func TestNewSummarizer_None(t *testing.T) {
	c := config.Default()
	c.Summary = "none"
	s, err := newSummarizer(context.Background(), c)
	if err != nil || s != nil {
		t.Errorf("newSummarizer(none) = %v, %v; want nil, nil", s, err)
	}
}

func TestCompletion_CoversCommands(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("cfr", flag.ContinueOnError), "cfr")
	Register(commander)
	tree := Completion()
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if _, ok := tree.Sub[c.Name()]; !ok {
			t.Errorf("command %q has no completion", c.Name())
		}
	})
}

func TestPredictFilers(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvDisclosures, writeDisclosures(t))
	if got, want := predictFilers(""), []string{"Pelosi", "Smith"}; !reflect.DeepEqual(got, want) {
		t.Errorf("predictFilers() = %v, want %v", got, want)
	}
}
