// Package wiki describes companies with the introduction of their Wikipedia article.
package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/congress"
	"github.com/etnz/congress/webcache"
)

// DefaultBaseURL is the English Wikipedia action API.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

var (
	// ErrNotFound is returned when no article matches the name.
	ErrNotFound = errors.New("no wikipedia article")
	// ErrAmbiguous is returned when the name leads to a disambiguation page.
	ErrAmbiguous = errors.New("ambiguous wikipedia article")
)

// Client fetches article summaries.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Sentences int // Number of sentences of the introduction, 0 for all of it.
}

// New returns a Client keeping two sentences, using the daily cached http client.
func New() *Client {
	return &Client{HTTP: webcache.NewDaily("", 5), BaseURL: DefaultBaseURL, Sentences: 2}
}

// query returns the extracts query about title.
//
// Wikipedia cuts the sentences itself, it knows "Inc." does not end one.
func (c *Client) query(title string) string {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	q.Set("prop", "extracts|pageprops")
	q.Set("ppprop", "disambiguation")
	q.Set("exintro", "1")
	q.Set("explaintext", "1")
	q.Set("redirects", "1")
	q.Set("titles", title)
	if c.Sentences > 0 {
		q.Set("exsentences", strconv.Itoa(c.Sentences))
	}
	return c.BaseURL + "?" + q.Encode()
}

// Summary returns the first sentences of the article about name.
//
// Every error matches congress.ErrSummaryUnavailable, and ErrNotFound or
// ErrAmbiguous when that's the reason.
func (c *Client) Summary(ctx context.Context, name string) (string, error) {
	// {"batchcomplete": true, "query": {"pages": [{
	//   "pageid": 856, "title": "Apple Inc.",
	//   "extract": "Apple Inc. is an American multinational technology company ..."
	// }]}}
	//
	// unknown pages are {"title": "...", "missing": true}, and disambiguation
	// pages carry {"pageprops": {"disambiguation": ""}}.
	name = strings.TrimSpace(name)
	var jobj any
	if err := webcache.GetJSON(ctx, c.HTTP, c.query(name), &jobj); err != nil {
		return "", fmt.Errorf("%w: %w", congress.ErrSummaryUnavailable, err)
	}

	if missing, _ := jsonpath.Get("$.query.pages[0].missing", jobj); missing == true {
		return "", fmt.Errorf("%w: %w %q", congress.ErrSummaryUnavailable, ErrNotFound, name)
	}
	if _, err := jsonpath.Get("$.query.pages[0].pageprops.disambiguation", jobj); err == nil {
		return "", fmt.Errorf("%w: %w %q", congress.ErrSummaryUnavailable, ErrAmbiguous, name)
	}
	extract, err := get(jobj, "$.query.pages[0].extract")
	if err != nil || strings.TrimSpace(extract) == "" {
		return "", fmt.Errorf("%w: %w %q", congress.ErrSummaryUnavailable, ErrNotFound, name)
	}
	return strings.TrimSpace(extract), nil
}

// get returns the string at path in jobj.
func get(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string: %v", path, jval)
	}
	return s, nil
}
