package zip_test

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/ucd"
	ucdzip "github.com/fwojciec/ucd/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip assembles an in-memory ZIP archive from name/content pairs.
func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts entries preserving relative paths", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		archive := buildZip(t, map[string]string{
			"Index.txt":                "index contents\n",
			"extracted/DerivedAge.txt": "derived age\n",
		})

		n, err := ucdzip.NewExtractor().Extract(context.Background(), archive, dir)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		data, err := os.ReadFile(filepath.Join(dir, "Index.txt"))
		require.NoError(t, err)
		assert.Equal(t, "index contents\n", string(data))

		data, err = os.ReadFile(filepath.Join(dir, "extracted", "DerivedAge.txt"))
		require.NoError(t, err)
		assert.Equal(t, "derived age\n", string(data))
	})

	t.Run("overwrites existing files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Index.txt"), []byte("old"), 0644))

		archive := buildZip(t, map[string]string{"Index.txt": "new"})
		_, err := ucdzip.NewExtractor().Extract(context.Background(), archive, dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "Index.txt"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("rejects a non-ZIP body", func(t *testing.T) {
		t.Parallel()

		_, err := ucdzip.NewExtractor().Extract(context.Background(), []byte("not a zip"), t.TempDir())
		require.Error(t, err)
		assert.Equal(t, ucd.EINVALID, ucd.ErrorCode(err))
	})

	t.Run("rejects entries escaping the target directory", func(t *testing.T) {
		t.Parallel()

		archive := buildZip(t, map[string]string{"../escape.txt": "nope"})
		_, err := ucdzip.NewExtractor().Extract(context.Background(), archive, t.TempDir())
		require.Error(t, err)
		assert.Equal(t, ucd.EINVALID, ucd.ErrorCode(err))
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		archive := buildZip(t, map[string]string{"Index.txt": "x"})
		_, err := ucdzip.NewExtractor().Extract(ctx, archive, t.TempDir())
		require.Error(t, err)
	})
}
