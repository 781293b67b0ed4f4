package mock

import (
	"context"

	"github.com/fwojciec/cmdref"
)

var _ cmdref.Loader = (*Loader)(nil)

// Loader is a mock implementation of cmdref.Loader.
type Loader struct {
	LoadFn func(ctx context.Context) (*cmdref.RawCatalog, error)
}

func (l *Loader) Load(ctx context.Context) (*cmdref.RawCatalog, error) {
	return l.LoadFn(ctx)
}
