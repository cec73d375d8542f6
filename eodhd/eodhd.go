// Package eodhd fetches daily close prices from eodhd.com.
//
// It requires an API key, see https://eodhd.com/. The public "demo" key
// serves a handful of US tickers.
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
	_ "time/tzdata" // exchange timezone must resolve on any host

	"github.com/etnz/congress"
	"github.com/etnz/congress/webcache"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the EODHD API root.
const DefaultBaseURL = "https://eodhd.com/api/"

// exchange is EODHD's virtual exchange for all US listings.
const exchange = "US"

// Client fetches price series from EODHD.
type Client struct {
	APIKey  string
	HTTP    *http.Client
	BaseURL string
}

// New returns a Client using the daily cached http client.
func New(apiKey string) *Client {
	return &Client{APIKey: apiKey, HTTP: webcache.NewDaily("", 5), BaseURL: DefaultBaseURL}
}

// symbol returns the EODHD code for a US ticker, e.g. "BRK-B.US".
func symbol(ticker string) string { return ticker + "." + exchange }

// Prices returns the daily closes of ticker between from and to, included.
//
// EODHD only reports dates; each one is stamped at midnight America/New_York
// so that the series aligns like a yfinance history. Unknown tickers and
// empty histories are reported as congress.ErrUnresolvedTicker.
func (c *Client) Prices(ctx context.Context, ticker string, from, to congress.Date) (*congress.PriceSeries, error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json&from=2022-01-05&to=2022-02-10
	// [
	//	{
	//		"date": "2022-01-05",
	//		"open": 267.5,
	//		"high": 270.93,
	//		"low": 266.63,
	//		"close": 267.54,
	//		"adjusted_close": 252.7214,
	//		"volume": 2957200
	//	},
	// bounds are included in the response.
	q := url.Values{}
	q.Set("api_token", c.APIKey)
	q.Set("fmt", "json")
	q.Set("from", from.String())
	q.Set("to", to.String())
	addr := c.BaseURL + "eod/" + url.PathEscape(symbol(ticker)) + "?" + q.Encode()

	type Info struct {
		Date  congress.Date   `json:"date"`
		Close decimal.Decimal `json:"close"`
	}

	content := make([]Info, 0)
	if err := webcache.GetJSON(ctx, c.HTTP, addr, &content); err != nil {
		var serr *webcache.StatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("eodhd %s: %w", ticker, congress.ErrUnresolvedTicker)
		}
		return nil, fmt.Errorf("eodhd %s: %w", ticker, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("eodhd %s: %w: no data", ticker, congress.ErrUnresolvedTicker)
	}

	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, err
	}
	series := congress.NewPriceSeries(ticker)
	for _, info := range content {
		d := info.Date
		series.Append(time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, newYork), info.Close)
	}

	// The name is a nice to have.
	if name, err := c.name(ctx, ticker); err == nil {
		series.Name = name
	}
	return series, nil
}

// SearchResult matches the structure of a single item in the EODHD search API response.
type SearchResult struct {
	Code     string `json:"Code"`
	Exchange string `json:"Exchange"`
	Name     string `json:"Name"`
	Type     string `json:"Type"`
	Country  string `json:"Country"`
	Currency string `json:"Currency"`
	ISIN     string `json:"ISIN"`
}

// Search searches for securities via EOD Historical Data API.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("api_token", c.APIKey)
	q.Set("fmt", "json")
	addr := c.BaseURL + "search/" + url.PathEscape(query) + "?" + q.Encode()

	var results []SearchResult
	if err := webcache.GetJSON(ctx, c.HTTP, addr, &results); err != nil {
		return nil, fmt.Errorf("eodhd search %q: %w", query, err)
	}
	return results, nil
}

// name returns the company name of a US ticker.
func (c *Client) name(ctx context.Context, ticker string) (string, error) {
	results, err := c.Search(ctx, ticker)
	if err != nil {
		return "", err
	}
	for _, r := range results {
		if r.Code == ticker && r.Exchange == exchange {
			return r.Name, nil
		}
	}
	return "", fmt.Errorf("eodhd search %q: no US listing", ticker)
}
