package labs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippedCatalog(t *testing.T) {
	c := NewShippedCatalog(t.TempDir())

	t.Run("the three shipped labs are listed in slug order", func(t *testing.T) {
		list := c.List()
		require.Len(t, list, 3)
		assert.Equal(t, "first-image", list[0].Slug)
		assert.Equal(t, "layer-cache", list[1].Slug)
		assert.Equal(t, "multi-stage", list[2].Slug)
	})

	t.Run("lookup by slug", func(t *testing.T) {
		lab, ok := c.Get("first-image")
		require.True(t, ok)
		assert.Equal(t, 8000, lab.Port)
		assert.Equal(t, "first-image", lab.GraderKey)

		_, ok = c.Get("missing")
		assert.False(t, ok)
	})
}

func TestDescribe(t *testing.T) {
	root := t.TempDir()
	c := NewShippedCatalog(root)

	t.Run("falls back to the summary without a README", func(t *testing.T) {
		detail, err := c.Describe("layer-cache")
		require.NoError(t, err)
		assert.Equal(t, detail.Summary.Summary, detail.Description)
	})

	t.Run("reads the markdown description when present", func(t *testing.T) {
		dir := filepath.Join(root, "first-image")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"),
			[]byte("# Your First Image\n\nBuild it."), 0o644))

		detail, err := c.Describe("first-image")
		require.NoError(t, err)
		assert.Contains(t, detail.Description, "Build it.")
	})

	t.Run("unknown slug errors", func(t *testing.T) {
		_, err := c.Describe("missing")
		assert.Error(t, err)
	})
}

func TestRegisterAndStarterPath(t *testing.T) {
	c := NewCatalog("/labs")
	c.Register(&Lab{Slug: "custom", Title: "Custom", Port: 9000})

	lab, ok := c.Get("custom")
	require.True(t, ok)
	assert.Equal(t, "custom", lab.GraderKey)

	path, ok := c.StarterPath("custom")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/labs", "custom", "starter"), path)
}
