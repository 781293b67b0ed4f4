package main

import (
	"strings"
	"time"

	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/fs"
	cmdrefhttp "github.com/fwojciec/cmdref/http"
)

// ResolveFetcher returns the fetcher for a SOURCE argument. An empty
// source means the well-known catalog path under baseURL; http and https
// URLs are fetched over HTTP; anything without a scheme is a local file.
func ResolveFetcher(source, baseURL string, timeout time.Duration) (cmdref.Fetcher, error) {
	if source == "" {
		u, err := cmdrefhttp.CatalogURL(baseURL)
		if err != nil {
			return nil, err
		}
		source = u
	}

	scheme, _, ok := strings.Cut(source, "://")
	if !ok {
		return fs.NewFetcher(source), nil
	}

	switch strings.ToLower(scheme) {
	case "http", "https":
		return cmdrefhttp.NewFetcher(source, cmdrefhttp.WithTimeout(timeout)), nil
	default:
		return nil, cmdref.Errorf(cmdref.EINVALID, "unsupported source %q: expected an http(s) URL or a file path", source)
	}
}
