package congress

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AlignedPurchase compares a disclosed purchase to the latest known price.
type AlignedPurchase struct {
	Disclosure
	Alignment

	PriceAtPurchase decimal.Decimal
	PriceLatest     decimal.Decimal
	// PercentChange is the price change since purchase.
	PercentChange Percent
	// ValueToday is the value of the minimum disclosed amount had it been held
	// until the latest price.
	//
	// Disclosures report a price band, not an exact cost, so this is an
	// approximation bounded by the band floor.
	ValueToday decimal.Decimal
}

// Summarize computes the performance of d since the aligned purchase.
//
// It fails with ErrInvalidPrice if the purchase close is not positive.
func Summarize(d Disclosure, a Alignment) (AlignedPurchase, error) {
	purchase, latest := a.Purchase.Close, a.Last.Close
	if !purchase.IsPositive() {
		return AlignedPurchase{}, fmt.Errorf("%s on %s: %w: %s", d.Ticker, d.Date, ErrInvalidPrice, purchase)
	}
	value := decimal.NewFromInt(d.MinPrice).Div(purchase).Mul(latest)
	return AlignedPurchase{
		Disclosure:      d,
		Alignment:       a,
		PriceAtPurchase: purchase,
		PriceLatest:     latest,
		PercentChange:   percentChange(purchase, latest),
		ValueToday:      value.Round(2),
	}, nil
}

// AlignAndSummarize aligns d on s and summarizes the result.
func AlignAndSummarize(d Disclosure, s *PriceSeries) (AlignedPurchase, error) {
	a, err := Align(d.Date, s)
	if err != nil {
		return AlignedPurchase{}, err
	}
	return Summarize(d, a)
}

// MinAmount returns the minimum disclosed amount.
func (p AlignedPurchase) MinAmount() Money { return Dollars(decimal.NewFromInt(p.MinPrice)) }

// Value returns ValueToday as Money.
func (p AlignedPurchase) Value() Money { return Dollars(p.ValueToday) }

// Gain returns the difference between ValueToday and the minimum disclosed amount.
func (p AlignedPurchase) Gain() Money { return p.Value().Sub(p.MinAmount()) }

// DaysHeld returns the number of days between the purchase and asOf.
func (p AlignedPurchase) DaysHeld(asOf Date) int { return asOf.Sub(p.Disclosure.Date) }
