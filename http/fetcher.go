// Package http provides an HTTP-based implementation of cmdref.Fetcher
// for retrieving the catalog document from the website that publishes it.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/cmdref"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements cmdref.Fetcher at compile time.
var _ cmdref.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves the catalog document from a fixed URL.
type Fetcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher for the catalog at url.
func NewFetcher(url string, opts ...Option) *Fetcher {
	f := &Fetcher{
		url:     url,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Source returns the catalog URL.
func (f *Fetcher) Source() string {
	return f.url
}

// Fetch retrieves the raw catalog document. Transport failures and non-200
// responses are reported as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "invalid catalog URL %q: %v", f.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "fetch %s: %v", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, f.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "read %s: %v", f.url, err)
	}

	return body, nil
}

// CatalogURL returns the location of the catalog document relative to the
// site root at baseURL.
func CatalogURL(baseURL string) (string, error) {
	u, err := url.JoinPath(baseURL, cmdref.CatalogPath)
	if err != nil {
		return "", cmdref.Errorf(cmdref.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	return u, nil
}
