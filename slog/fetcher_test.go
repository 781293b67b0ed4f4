package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/cmdref/mock"
	cmdslog "github.com/fwojciec/cmdref/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with source, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context) ([]byte, error) {
				return []byte(`{"prefix_commands":{}}`), nil
			},
			SourceFn: func() string { return "https://example.com/bot-commands.json" },
		}

		fetcher := cmdslog.NewLoggingFetcher(inner, logger)
		data, err := fetcher.Fetch(context.Background())

		require.NoError(t, err)
		assert.Equal(t, `{"prefix_commands":{}}`, string(data))
		output := buf.String()
		assert.Contains(t, output, "catalog fetch")
		assert.Contains(t, output, "source=https://example.com/bot-commands.json")
		assert.Contains(t, output, "bytes=22")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context) ([]byte, error) {
				return nil, errors.New("connection refused")
			},
			SourceFn: func() string { return "x" },
		}

		fetcher := cmdslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection refused\"")
	})

	t.Run("delegates source", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{SourceFn: func() string { return "catalog.json" }}

		fetcher := cmdslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))

		assert.Equal(t, "catalog.json", fetcher.Source())
	})
}
