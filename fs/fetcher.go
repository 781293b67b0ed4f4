// Package fs provides a filesystem implementation of cmdref.Fetcher for
// reading catalog documents stored on disk.
package fs

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/cmdref"
)

// Ensure Fetcher implements cmdref.Fetcher at compile time.
var _ cmdref.Fetcher = (*Fetcher)(nil)

// Fetcher reads the catalog document from a local file.
type Fetcher struct {
	path string
}

// NewFetcher creates a Fetcher for the file at path.
func NewFetcher(path string) *Fetcher {
	return &Fetcher{path: path}
}

// Source returns the file path.
func (f *Fetcher) Source() string {
	return f.path
}

// Fetch reads the whole file. Missing or unreadable files are reported
// as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "catalog file not found: %s", f.path)
	} else if err != nil {
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "read %s: %v", f.path, err)
	}

	return data, nil
}
