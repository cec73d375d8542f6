package congress

import (
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is a single close price in a PriceSeries.
type PricePoint struct {
	Time  time.Time
	Close decimal.Decimal
}

// IsZero reports whether p is the zero point.
func (p PricePoint) IsZero() bool { return p.Time.IsZero() && p.Close.IsZero() }

// Date returns the calendar day of the point.
func (p PricePoint) Date() Date { return DateOf(p.Time) }

// PriceSeries stores a chronological series of daily close prices of a ticker.
//
// Timestamps are normalized to the UTC wall clock when added, so that a
// provider stamping a day at midnight America/New_York is stored at 04:00
// (or 05:00 in winter). Timestamps are unique and always sorted.
type PriceSeries struct {
	Ticker string // Ticker as requested to the provider.
	Name   string // Company name if the provider knows it.
	points []PricePoint
}

// NewPriceSeries returns a series for ticker holding points.
func NewPriceSeries(ticker string, points ...PricePoint) *PriceSeries {
	s := &PriceSeries{Ticker: ticker}
	for _, p := range points {
		s.Append(p.Time, p.Close)
	}
	return s
}

func comparePoints(p PricePoint, t time.Time) int { return p.Time.Compare(t) }

// Append adds a point to the series.
//
// Existing value at that instant is overwritten.
func (s *PriceSeries) Append(at time.Time, price decimal.Decimal) *PriceSeries {
	at = at.UTC()
	i, found := slices.BinarySearchFunc(s.points, at, comparePoints)
	if found {
		// give higher priority to the last data
		s.points[i].Close = price
		return s
	}
	s.points = slices.Insert(s.points, i, PricePoint{Time: at, Close: price})
	return s
}

// Len returns the number of points in the series.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// At returns the close at exactly the instant t, and true, or zero and false.
func (s *PriceSeries) At(t time.Time) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Zero, false
	}
	i, found := slices.BinarySearchFunc(s.points, t.UTC(), comparePoints)
	if !found {
		return decimal.Zero, false
	}
	return s.points[i].Close, true
}

// First returns the earliest point, or the zero point if the series is empty.
func (s *PriceSeries) First() PricePoint {
	if s.Len() == 0 {
		return PricePoint{}
	}
	return s.points[0]
}

// Last returns the latest point, or the zero point if the series is empty.
func (s *PriceSeries) Last() PricePoint {
	if s.Len() == 0 {
		return PricePoint{}
	}
	return s.points[len(s.points)-1]
}

// Coverage returns the days from the first to the last point.
//
// It is the zero Range for an empty series.
func (s *PriceSeries) Coverage() Range {
	if s.Len() == 0 {
		return Range{}
	}
	return NewRange(s.First().Date(), s.Last().Date())
}

// Change returns the percent change from the first to the last close.
//
// It is zero for series with fewer than two points.
func (s *PriceSeries) Change() Percent {
	first, last := s.First(), s.Last()
	if s.Len() < 2 || !first.Close.IsPositive() {
		return Percent{}
	}
	return percentChange(first.Close, last.Close)
}

// Values returns an iterator over all points in chronological order.
func (s *PriceSeries) Values() iter.Seq[PricePoint] {
	return func(yield func(PricePoint) bool) {
		if s == nil {
			return
		}
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
}
