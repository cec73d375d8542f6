// Package report runs the reconciliation of a filer's disclosures against
// price providers.
//
// It is the only place where the pure congress core meets blocking
// collaborators: a PriceProvider for price history and an optional
// Summarizer for company descriptions. Every failure is captured per
// purchase; a report is always produced.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/congress"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DefaultLookback is the number of days of price history fetched before the
// report date, two years like the original desktop report.
const DefaultLookback = 730

// PriceProvider returns the daily price history of a normalized ticker.
//
// Unknown tickers, or tickers without data, must be reported with an error
// matching congress.ErrUnresolvedTicker.
type PriceProvider interface {
	Prices(ctx context.Context, ticker string, from, to congress.Date) (*congress.PriceSeries, error)
}

// Summarizer returns a short description of a company.
type Summarizer interface {
	Summary(ctx context.Context, name string) (string, error)
}

// Entry is the outcome for a single disclosure.
type Entry struct {
	congress.Disclosure
	// Purchase is nil if Err is set.
	Purchase *congress.AlignedPurchase
	// Series is the price history used, nil if it could not be fetched.
	Series *congress.PriceSeries
	// Company is the company name, or the ticker if the provider does not know it.
	Company string
	// Summary describes the company. It is empty when unavailable, and for
	// purchases that could not be priced.
	Summary    string
	SummaryErr error
	Err        error
}

// OK reports whether the purchase could be aligned and summarized.
func (e Entry) OK() bool { return e.Err == nil && e.Purchase != nil }

// Report is the reconciliation of a filer's disclosures.
type Report struct {
	Filer   string
	Name    string // Full name as disclosed.
	AsOf    congress.Date
	Entries []Entry
}

// Failed returns the entries that could not be aligned.
func (r *Report) Failed() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if !e.OK() {
			failed = append(failed, e)
		}
	}
	return failed
}

// Totals returns the sum of minimum amounts and values today of aligned purchases.
func (r *Report) Totals() (invested, value congress.Money) {
	in, out := decimal.Zero, decimal.Zero
	for _, e := range r.Entries {
		if !e.OK() {
			continue
		}
		in = in.Add(decimal.NewFromInt(e.Purchase.MinPrice))
		out = out.Add(e.Purchase.ValueToday)
	}
	return congress.Dollars(in), congress.Dollars(out)
}

// Builder builds reports.
type Builder struct {
	Prices    PriceProvider
	Summaries Summarizer // optional
	Aligner   congress.Aligner
	Lookback  int           // days of history before AsOf, DefaultLookback if 0
	AsOf      congress.Date // report date, today if zero
}

// NewBuilder returns a Builder with default settings.
func NewBuilder(prices PriceProvider, summaries Summarizer) *Builder {
	return &Builder{
		Prices:    prices,
		Summaries: summaries,
		Aligner:   congress.Aligner{ReferenceHour: congress.DefaultReferenceHour},
		Lookback:  DefaultLookback,
	}
}

func (b *Builder) asOf() congress.Date {
	if b.AsOf.IsZero() {
		return congress.Today()
	}
	return b.AsOf
}

// Build aligns and summarizes every event of filer.
//
// The price history of a ticker is fetched once, far enough back to cover
// the oldest disclosure of that ticker. The description of a company is
// fetched once, and only if one of its purchases could be priced.
func (b *Builder) Build(ctx context.Context, filer string, events []congress.Disclosure) *Report {
	asOf := b.asOf()
	lookback := b.Lookback
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	r := &Report{Filer: filer, AsOf: asOf}
	if len(events) > 0 {
		r.Name = events[0].Name
	}

	// history needed per ticker
	window := make(map[string]congress.Range)
	for _, e := range events {
		w, ok := window[e.Ticker]
		if !ok {
			w = congress.Lookback(asOf, lookback)
		}
		window[e.Ticker] = w.Extend(e.Date)
	}

	type fetched struct {
		series *congress.PriceSeries
		err    error
	}
	series := make(map[string]fetched)
	type described struct {
		text string
		err  error
	}
	summaries := make(map[string]described)

	for _, e := range events {
		entry := Entry{Disclosure: e, Company: e.Ticker}

		f, ok := series[e.Ticker]
		if !ok {
			w := window[e.Ticker]
			f.series, f.err = b.Prices.Prices(ctx, e.Ticker, w.From, w.To)
			if f.err == nil && f.series.Len() == 0 {
				f.err = fmt.Errorf("%s: %w", e.Ticker, congress.ErrUnresolvedTicker)
			}
			series[e.Ticker] = f
		}
		if f.err != nil {
			entry.Err = f.err
			log.Debug().Err(f.err).Str("ticker", e.Ticker).Int("line", e.Line).Msg("no price series")
			r.Entries = append(r.Entries, entry)
			continue
		}
		entry.Series = f.series
		if f.series.Name != "" {
			entry.Company = f.series.Name
		}

		a, err := b.Aligner.Align(e.Date, f.series)
		if err == nil {
			var p congress.AlignedPurchase
			if p, err = congress.Summarize(e, a); err == nil {
				entry.Purchase = &p
			}
		}
		if err != nil {
			if cover := f.series.Coverage(); f.series.Len() > 0 && !cover.Contains(e.Date) {
				err = fmt.Errorf("%w: price history covers %s", err, cover)
			}
			entry.Err = err
			log.Debug().Err(err).Str("ticker", e.Ticker).Int("line", e.Line).Msg("purchase not aligned")
			r.Entries = append(r.Entries, entry)
			continue
		}

		// only priced purchases are described
		if b.Summaries != nil {
			s, ok := summaries[entry.Company]
			if !ok {
				s.text, s.err = b.Summaries.Summary(ctx, entry.Company)
				if s.err != nil && !errors.Is(s.err, congress.ErrSummaryUnavailable) {
					s.err = fmt.Errorf("%w: %w", congress.ErrSummaryUnavailable, s.err)
				}
				summaries[entry.Company] = s
			}
			entry.Summary, entry.SummaryErr = s.text, s.err
		}
		r.Entries = append(r.Entries, entry)
	}
	return r
}
