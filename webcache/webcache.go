// Package webcache provides the HTTP client shared by price and summary providers.
//
// Responses are cached on disk in the OS temp dir for a day, and network
// requests are rate limited.
package webcache

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/congress"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// UserAgent is sent with every request. Some public APIs reject Go's default one.
const UserAgent = "cfr/1.0 (+https://github.com/etnz/congress)"

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base    http.RoundTripper
	dir     string
	limiter *rate.Limiter
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If a cached response is not found, it waits for the
// rate limiter, proceeds with the actual HTTP request and caches the new
// response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", congress.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("cfr-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Str("status", resp.Status).Msg("http")
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	// otherwise attempt to store it in cache
	if err := c.put(key, resp); err != nil {
		log.Warn().Err(err).Msg("cache write failed (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}

// NewDaily returns an http.Client that uses a disk cache in dir where entries
// expire daily, and issues at most perSecond network requests per second.
//
// An empty dir means the OS temp dir.
func NewDaily(dir string, perSecond float64) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &diskCache{
			base:    http.DefaultTransport,
			dir:     dir,
			limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		},
	}
}

// StatusError is returned by GetJSON for non 200 responses.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string { return fmt.Sprintf("cannot http GET %v: %v", e.URL, e.Status) }

// GetJSON performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
//
// Non 200 responses are returned as *StatusError.
func GetJSON(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &StatusError{
			URL:        resp.Request.URL.Host + resp.Request.URL.Path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
