package mock

import (
	"context"

	"github.com/fwojciec/cmdref"
)

var _ cmdref.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of cmdref.Fetcher.
type Fetcher struct {
	FetchFn  func(ctx context.Context) ([]byte, error)
	SourceFn func() string
}

func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	return f.FetchFn(ctx)
}

func (f *Fetcher) Source() string {
	return f.SourceFn()
}
