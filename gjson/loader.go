package gjson

import (
	"context"
	"errors"

	"github.com/fwojciec/cmdref"
)

// Ensure Loader implements cmdref.Loader at compile time.
var _ cmdref.Loader = (*Loader)(nil)

// Loader loads a catalog by fetching raw bytes and decoding them.
// Each call to Load is a fresh attempt; nothing is cached.
type Loader struct {
	fetcher cmdref.Fetcher
}

// NewLoader creates a Loader reading from fetcher.
func NewLoader(fetcher cmdref.Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches and decodes the catalog. Fetch failures that are not
// already application errors are reported as EUNAVAILABLE.
func (l *Loader) Load(ctx context.Context) (*cmdref.RawCatalog, error) {
	data, err := l.fetcher.Fetch(ctx)
	if err != nil {
		var e *cmdref.Error
		if errors.As(err, &e) {
			return nil, err
		}
		return nil, cmdref.Errorf(cmdref.EUNAVAILABLE, "fetch %s: %v", l.fetcher.Source(), err)
	}
	return Decode(data)
}
