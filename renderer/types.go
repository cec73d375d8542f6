package renderer

import (
	"strings"

	"github.com/etnz/congress"
	"github.com/etnz/congress/report"
	"github.com/shopspring/decimal"
)

// ReadableDate is the layout of dates in sentences.
const ReadableDate = "January 02, 2006"

// Filers lists the filers of a disclosure file.
type Filers struct {
	Year string
	Rows []FilerRow
}

// FilerRow is a single filer.
type FilerRow struct {
	Filer     string
	Name      string
	Purchases int
	Tickers   string // distinct tickers, in first-seen order
}

// NewFilers returns the view of f.
func NewFilers(year string, f *congress.Filers) *Filers {
	v := &Filers{Year: year}
	for filer, events := range f.All() {
		var tickers []string
		seen := make(map[string]bool)
		for _, e := range events {
			if !seen[e.Ticker] {
				seen[e.Ticker] = true
				tickers = append(tickers, e.Ticker)
			}
		}
		v.Rows = append(v.Rows, FilerRow{
			Filer:     filer,
			Name:      events[0].Name,
			Purchases: len(events),
			Tickers:   strings.Join(tickers, ", "),
		})
	}
	return v
}

// Purchases lists a filer's disclosed purchases.
type Purchases struct {
	Filer string
	Name  string
	Rows  []PurchaseRow
}

// PurchaseRow is a single disclosed purchase.
type PurchaseRow struct {
	Index     int
	Date      congress.Date
	Ticker    string
	MinAmount congress.Money
	Line      int
}

// NewPurchases returns the view of a filer's events.
func NewPurchases(filer string, events []congress.Disclosure) *Purchases {
	v := &Purchases{Filer: filer}
	for i, e := range events {
		if i == 0 {
			v.Name = e.Name
		}
		v.Rows = append(v.Rows, PurchaseRow{
			Index:     i,
			Date:      e.Date,
			Ticker:    e.Ticker,
			MinAmount: congress.Dollars(decimal.NewFromInt(e.MinPrice)),
			Line:      e.Line,
		})
	}
	return v
}

// Report is the view of a report.Report.
type Report struct {
	Filer     string
	Name      string
	AsOf      congress.Date
	Invested  congress.Money
	Value     congress.Money
	Gain      congress.Money
	Priced    int
	Failed    int
	Purchases []ReportPurchase
}

// ReportPurchase is the view of a single report entry.
type ReportPurchase struct {
	Index     int
	Ticker    string
	Company   string
	Summary   string
	Name      string
	Date      string // readable date
	DaysAgo   int
	MinAmount congress.Money

	OK    bool
	Error string

	Value  congress.Money
	Change congress.Percent
	Data   []DataRow

	SeriesChange congress.Percent
	SeriesFrom   congress.Date
}

// DataRow is a dated price.
type DataRow struct {
	Title string
	Date  congress.Date
	Price congress.Money
}

// NewReport returns the view of r. first is the index of the first entry
// in the filer's purchases, so that a single selected purchase keeps its
// number.
func NewReport(r *report.Report, first int) *Report {
	invested, value := r.Totals()
	v := &Report{
		Filer:    r.Filer,
		Name:     r.Name,
		AsOf:     r.AsOf,
		Invested: invested,
		Value:    value,
		Gain:     value.Sub(invested),
		Failed:   len(r.Failed()),
	}
	v.Priced = len(r.Entries) - v.Failed
	for i, e := range r.Entries {
		p := ReportPurchase{
			Index:     first + i,
			Ticker:    e.Ticker,
			Company:   e.Company,
			Summary:   e.Summary,
			Name:      e.Name,
			Date:      e.Date.Format(ReadableDate),
			DaysAgo:   r.AsOf.Sub(e.Date),
			MinAmount: congress.Dollars(decimal.NewFromInt(e.MinPrice)),
			OK:        e.OK(),
		}
		if !p.OK {
			if e.Err != nil {
				p.Error = e.Err.Error()
			}
			v.Purchases = append(v.Purchases, p)
			continue
		}
		a := e.Purchase
		p.DaysAgo = a.DaysHeld(r.AsOf)
		p.Value = a.Value()
		p.Change = a.PercentChange
		p.Data = []DataRow{
			{"Earliest Price", a.First.Date(), congress.Dollars(a.First.Close)},
			{"Price at Purchase", a.Purchase.Date(), congress.Dollars(a.PriceAtPurchase)},
			{"Last Price", a.Last.Date(), congress.Dollars(a.PriceLatest)},
		}
		p.SeriesChange = e.Series.Change()
		p.SeriesFrom = a.First.Date()
		v.Purchases = append(v.Purchases, p)
	}
	return v
}

// Prices is the view of a price series.
type Prices struct {
	Ticker string
	Name   string
	Points int
	Data   []DataRow
	Change congress.Percent
}

// NewPrices returns the view of s.
func NewPrices(s *congress.PriceSeries) *Prices {
	v := &Prices{Ticker: s.Ticker, Name: s.Name, Points: s.Len(), Change: s.Change()}
	if v.Name == "" {
		v.Name = s.Ticker
	}
	if s.Len() == 0 {
		return v
	}
	first, last := s.First(), s.Last()
	low, high := first, first
	for p := range s.Values() {
		if p.Close.LessThan(low.Close) {
			low = p
		}
		if p.Close.GreaterThan(high.Close) {
			high = p
		}
	}
	v.Data = []DataRow{
		{"Earliest Price", first.Date(), congress.Dollars(first.Close)},
		{"Lowest Price", low.Date(), congress.Dollars(low.Close)},
		{"Highest Price", high.Date(), congress.Dollars(high.Close)},
		{"Last Price", last.Date(), congress.Dollars(last.Close)},
	}
	return v
}
