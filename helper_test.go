package congress

import (
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create decimals from const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// newYork is the timezone daily feeds stamp their days in.
var newYork = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// midnight returns the instant a yfinance-like feed uses for a trading day.
func midnight(d Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, newYork)
}
