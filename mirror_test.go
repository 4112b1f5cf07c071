package ucd_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/ucd"
	"github.com/fwojciec/ucd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirror_Run(t *testing.T) {
	t.Parallel()

	t.Run("skips everything when the sentinel exists", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		m := &ucd.Mirror{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					t.Fatal("fetch should not be called")
					return nil, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(ctx context.Context, archive []byte, dir string) (int, error) {
					t.Fatal("extract should not be called")
					return 0, nil
				},
			},
			Store: &mock.DataStore{
				DirFn:         func() string { return "/data/ucd" },
				HasSentinelFn: func() bool { return true },
				EnsureFn: func() error {
					t.Fatal("ensure should not be called")
					return nil
				},
			},
			Stdout: &out,
		}

		err := m.Run(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out.String(), "skipping")
	})

	t.Run("fetches and extracts on first run", func(t *testing.T) {
		t.Parallel()

		archive := []byte("zip-bytes")
		ensured := false
		var fetchedURL, extractDir string
		var extracted []byte

		var out bytes.Buffer
		m := &ucd.Mirror{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					fetchedURL = url
					return archive, nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(ctx context.Context, data []byte, dir string) (int, error) {
					extracted, extractDir = data, dir
					return 3, nil
				},
			},
			Store: &mock.DataStore{
				DirFn:         func() string { return "/data/ucd" },
				HasSentinelFn: func() bool { return false },
				EnsureFn: func() error {
					ensured = true
					return nil
				},
			},
			Stdout: &out,
		}

		err := m.Run(context.Background())
		require.NoError(t, err)

		assert.True(t, ensured, "data directory should be created before extraction")
		assert.Equal(t, ucd.DefaultURL, fetchedURL)
		assert.Equal(t, archive, extracted)
		assert.Equal(t, "/data/ucd", extractDir)
		assert.Contains(t, out.String(), "Downloaded 9 bytes")
		assert.Contains(t, out.String(), "Extracted 3 files to /data/ucd")
	})

	t.Run("uses a custom URL when set", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		m := &ucd.Mirror{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					fetchedURL = url
					return []byte("x"), nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(ctx context.Context, data []byte, dir string) (int, error) { return 1, nil },
			},
			Store: &mock.DataStore{
				DirFn:         func() string { return "/data/ucd" },
				HasSentinelFn: func() bool { return false },
			},
			URL: "https://example.com/UCD.zip",
		}

		require.NoError(t, m.Run(context.Background()))
		assert.Equal(t, "https://example.com/UCD.zip", fetchedURL)
	})

	t.Run("non-200 status is a soft failure", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		m := &ucd.Mirror{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return nil, ucd.Errorf(ucd.EUNAVAILABLE, "HTTP 404 for %s", url)
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(ctx context.Context, data []byte, dir string) (int, error) {
					t.Fatal("extract should not be called")
					return 0, nil
				},
			},
			Store: &mock.DataStore{
				DirFn:         func() string { return "/data/ucd" },
				HasSentinelFn: func() bool { return false },
			},
			Stdout: &out,
		}

		err := m.Run(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out.String(), "download failed")
		assert.Contains(t, out.String(), "404")
	})

	t.Run("transport faults propagate", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("connection refused")
		m := &ucd.Mirror{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return nil, wantErr
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(ctx context.Context, data []byte, dir string) (int, error) { return 0, nil },
			},
			Store: &mock.DataStore{
				DirFn:         func() string { return "/data/ucd" },
				HasSentinelFn: func() bool { return false },
			},
		}

		err := m.Run(context.Background())
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("archive decode faults propagate", func(t *testing.T) {
		t.Parallel()

		m := &ucd.Mirror{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) ([]byte, error) {
					return []byte("not a zip"), nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(ctx context.Context, data []byte, dir string) (int, error) {
					return 0, ucd.Errorf(ucd.EINVALID, "not a valid ZIP archive")
				},
			},
			Store: &mock.DataStore{
				DirFn:         func() string { return "/data/ucd" },
				HasSentinelFn: func() bool { return false },
			},
		}

		err := m.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, ucd.EINVALID, ucd.ErrorCode(err))
	})
}
