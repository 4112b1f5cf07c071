package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/ucd"
	"github.com/fwojciec/ucd/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDir(t *testing.T) {
	t.Parallel()

	// The result depends only on the root, never on the working
	// directory of the caller.
	assert.Equal(t, filepath.Join("/repo", "data", "ucd"), fs.DataDir("/repo"))
	assert.Equal(t, filepath.Join(".", "data", "ucd"), fs.DataDir("."))
}

func TestStore_HasSentinel(t *testing.T) {
	t.Parallel()

	t.Run("false when the directory does not exist", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(filepath.Join(t.TempDir(), "missing"))
		assert.False(t, store.HasSentinel())
	})

	t.Run("false when the directory is empty", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(root)
		require.NoError(t, store.Ensure())
		assert.False(t, store.HasSentinel())
	})

	t.Run("true when Index.txt exists", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(root)
		require.NoError(t, store.Ensure())
		require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), ucd.SentinelFile), []byte("index"), 0644))
		assert.True(t, store.HasSentinel())
	})
}

func TestStore_Ensure(t *testing.T) {
	t.Parallel()

	t.Run("creates the directory tree", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(root)
		require.NoError(t, store.Ensure())

		info, err := os.Stat(store.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("is a no-op when the directory exists", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(root)
		require.NoError(t, store.Ensure())
		require.NoError(t, store.Ensure())
	})
}

func TestStore_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads an existing data file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		store := fs.NewStore(root)
		require.NoError(t, store.Ensure())
		require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), ucd.BlocksFile), []byte("0000..007F; Basic Latin\n"), 0644))

		f, err := store.ReadFile(ucd.BlocksFile)
		require.NoError(t, err)
		assert.Equal(t, ucd.BlocksFile, f.Name)
		assert.Equal(t, "0000..007F; Basic Latin\n", string(f.Data))
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())
		_, err := store.ReadFile(ucd.BlocksFile)
		require.Error(t, err)
		assert.Equal(t, ucd.ENOTFOUND, ucd.ErrorCode(err))
	})
}
