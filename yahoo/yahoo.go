// Package yahoo fetches daily close prices from the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
	_ "time/tzdata" // exchange timezones must resolve on any host

	"github.com/etnz/congress"
	"github.com/etnz/congress/webcache"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the Yahoo Finance chart endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// Client fetches price series from Yahoo Finance.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New returns a Client using the daily cached http client.
func New() *Client {
	return &Client{HTTP: webcache.NewDaily("", 2), BaseURL: DefaultBaseURL}
}

// chart is the payload of the chart API.
//
//	{"chart": {"result": [{
//	    "meta": {"symbol": "AAPL", "exchangeTimezoneName": "America/New_York", "longName": "Apple Inc."},
//	    "timestamp": [1651498200, ...],
//	    "indicators": {"quote": [{"close": [157.96, ...]}]}
//	}], "error": null}}
type chart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol               string `json:"symbol"`
				Currency             string `json:"currency"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
				LongName             string `json:"longName"`
				ShortName            string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Prices returns the daily closes of ticker between from and to, included.
//
// Each trading day is stamped at midnight in the exchange timezone, the way
// yfinance indexes its history. Unknown tickers and empty histories are
// reported as congress.ErrUnresolvedTicker.
func (c *Client) Prices(ctx context.Context, ticker string, from, to congress.Date) (*congress.PriceSeries, error) {
	q := url.Values{}
	q.Set("period1", fmt.Sprint(from.At(0).Unix()))
	q.Set("period2", fmt.Sprint(to.Add(1).At(0).Unix()))
	q.Set("interval", "1d")
	q.Set("events", "history")
	addr := c.BaseURL + url.PathEscape(ticker) + "?" + q.Encode()

	var content chart
	if err := webcache.GetJSON(ctx, c.HTTP, addr, &content); err != nil {
		var serr *webcache.StatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("yahoo %s: %w", ticker, congress.ErrUnresolvedTicker)
		}
		return nil, fmt.Errorf("yahoo %s: %w", ticker, err)
	}
	if e := content.Chart.Error; e != nil {
		return nil, fmt.Errorf("yahoo %s: %w: %s", ticker, congress.ErrUnresolvedTicker, e.Description)
	}
	if len(content.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w: no result", ticker, congress.ErrUnresolvedTicker)
	}
	result := content.Chart.Result[0]

	loc := time.UTC
	if tz := result.Meta.ExchangeTimezoneName; tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("yahoo %s: unknown exchange timezone: %w", ticker, err)
		}
		loc = l
	}

	series := congress.NewPriceSeries(ticker)
	series.Name = result.Meta.LongName
	if series.Name == "" {
		series.Name = result.Meta.ShortName
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w: no quote", ticker, congress.ErrUnresolvedTicker)
	}
	closes := result.Indicators.Quote[0].Close
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue // yahoo reports halted days as null
		}
		y, m, d := time.Unix(ts, 0).In(loc).Date()
		series.Append(time.Date(y, m, d, 0, 0, 0, 0, loc), decimal.NewFromFloat(*closes[i]))
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("yahoo %s: %w: no data", ticker, congress.ErrUnresolvedTicker)
	}
	return series, nil
}
