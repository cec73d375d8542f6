package congress

import (
	"fmt"
	"time"
)

// DefaultReferenceHour is the UTC hour at which daily price feeds stamp a
// trading day: midnight America/New_York is 04:00 UTC in summer.
const DefaultReferenceHour = 4

// Alignment is the result of matching a disclosure date against a price series.
type Alignment struct {
	Purchase PricePoint // close on the disclosed day
	First    PricePoint // earliest point of the series
	Last     PricePoint // latest point of the series
}

// Aligner matches a calendar date to a trading day in a PriceSeries.
//
// The series is looked up at ReferenceHour on that day, then one hour later
// to absorb the daylight saving shift of feeds stamping days in exchange
// local time. There is no nearest-day fallback: a day missing from the
// series (week-ends, holidays, or simply out of range) is an error.
type Aligner struct {
	ReferenceHour int
}

// Align matches on against s with the DefaultReferenceHour.
func Align(on Date, s *PriceSeries) (Alignment, error) {
	return Aligner{ReferenceHour: DefaultReferenceHour}.Align(on, s)
}

// Align returns the close of s on the trading day on.
//
// It fails with ErrUnresolvedTicker if s has no data at all, and with a
// *NoMatchingTradingDayError if s has data, but not on that day.
func (a Aligner) Align(on Date, s *PriceSeries) (Alignment, error) {
	if s.Len() == 0 {
		ticker := ""
		if s != nil {
			ticker = s.Ticker
		}
		return Alignment{}, fmt.Errorf("%s: %w: empty price series", ticker, ErrUnresolvedTicker)
	}

	candidate := on.At(a.ReferenceHour)
	price, found := s.At(candidate)
	if !found {
		candidate = candidate.Add(time.Hour)
		price, found = s.At(candidate)
	}
	if !found {
		return Alignment{}, &NoMatchingTradingDayError{Ticker: s.Ticker, Date: on}
	}

	return Alignment{
		Purchase: PricePoint{Time: candidate, Close: price},
		First:    s.First(),
		Last:     s.Last(),
	}, nil
}
