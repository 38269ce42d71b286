package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

func TestWriteReadRoundTrip(t *testing.T) {
	w := newTestWorkspace(t)

	content := []byte("FROM python:3.12-slim\nCOPY . .\n\x00\xff binary tail")
	require.NoError(t, w.Write("Dockerfile", content))

	got, err := w.Read("Dockerfile")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	t.Run("overwrite replaces the content", func(t *testing.T) {
		require.NoError(t, w.Write("Dockerfile", []byte("v2")))
		got, err := w.Read("Dockerfile")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		entries, err := os.ReadDir(w.Root())
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".dockhand-write-")
		}
	})

	t.Run("write creates parent directories", func(t *testing.T) {
		require.NoError(t, w.Write("deep/nested/file.txt", []byte("hi")))
		got, err := w.Read("deep/nested/file.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte("hi"), got)
	})
}

func TestReadErrors(t *testing.T) {
	w := newTestWorkspace(t)

	_, err := w.Read("missing.txt")
	assert.True(t, apierr.Is(err, apierr.CodeFileNotFound))

	require.NoError(t, w.Create("dir", "directory", nil))
	_, err = w.Read("dir")
	assert.True(t, apierr.Is(err, apierr.CodeIsADirectory))
}

func TestCreateDeleteList(t *testing.T) {
	w := newTestWorkspace(t)

	require.NoError(t, w.Create("src", "directory", nil))
	require.NoError(t, w.Create("src/app.py", "file", []byte("print('hi')")))

	t.Run("creating an existing path fails", func(t *testing.T) {
		err := w.Create("src/app.py", "file", nil)
		assert.True(t, apierr.Is(err, apierr.CodeFileAlreadyExists))
	})

	t.Run("list shows the entry with metadata", func(t *testing.T) {
		result, err := w.List("src")
		require.NoError(t, err)
		assert.True(t, result.Exists)
		assert.True(t, result.IsDir)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "app.py", result.Entries[0].Name)
		assert.Equal(t, "/workspace/src/app.py", result.Entries[0].Path)
		assert.False(t, result.Entries[0].IsDir)
		assert.Equal(t, int64(11), result.Entries[0].Size)
	})

	t.Run("delete then list shows it absent", func(t *testing.T) {
		require.NoError(t, w.Delete("src/app.py"))
		result, err := w.List("src")
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
	})

	t.Run("listing a missing path reports exists=false", func(t *testing.T) {
		result, err := w.List("nope")
		require.NoError(t, err)
		assert.False(t, result.Exists)
	})

	t.Run("deleting the root is rejected", func(t *testing.T) {
		err := w.Delete("")
		assert.True(t, apierr.Is(err, apierr.CodeInvalidPath))
	})
}

func TestRename(t *testing.T) {
	w := newTestWorkspace(t)

	content := []byte("hello")
	require.NoError(t, w.Write("a.txt", content))
	require.NoError(t, w.Rename("a.txt", "b/c.txt"))

	got, err := w.Read("b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = w.Read("a.txt")
	assert.True(t, apierr.Is(err, apierr.CodeFileNotFound))

	t.Run("renaming a missing path fails", func(t *testing.T) {
		err := w.Rename("ghost.txt", "x.txt")
		assert.True(t, apierr.Is(err, apierr.CodeFileNotFound))
	})
}

func TestSeed(t *testing.T) {
	starter := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(starter, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(starter, "Dockerfile"), []byte("FROM scratch"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(starter, "src", "app.py"), []byte("app"), 0o644))

	w := newTestWorkspace(t)
	require.NoError(t, w.Seed(starter))

	got, err := w.Read("Dockerfile")
	require.NoError(t, err)
	assert.Equal(t, []byte("FROM scratch"), got)

	got, err = w.Read("src/app.py")
	require.NoError(t, err)
	assert.Equal(t, []byte("app"), got)
}
