package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Loader is expected
	var _ cmdref.Loader = &mock.Loader{}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("delegates to LoadFn", func(t *testing.T) {
		t.Parallel()

		want := &cmdref.RawCatalog{Digest: "abc"}
		l := &mock.Loader{
			LoadFn: func(_ context.Context) (*cmdref.RawCatalog, error) {
				return want, nil
			},
		}

		got, err := l.Load(context.Background())

		require.NoError(t, err)
		assert.Same(t, want, got)
	})
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates to FetchFn and SourceFn", func(t *testing.T) {
		t.Parallel()

		f := &mock.Fetcher{
			FetchFn: func(_ context.Context) ([]byte, error) {
				return []byte(`{}`), nil
			},
			SourceFn: func() string { return "catalog.json" },
		}

		data, err := f.Fetch(context.Background())

		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
		assert.Equal(t, "catalog.json", f.Source())
	})
}
