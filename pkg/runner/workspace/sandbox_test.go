package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w, err := New(t.TempDir(), "/workspace")
	require.NoError(t, err)
	return w
}

func TestResolve(t *testing.T) {
	w := newTestWorkspace(t)

	t.Run("relative paths resolve under the root", func(t *testing.T) {
		abs, err := w.Resolve("src/app.py")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(w.Root(), "src/app.py"), abs)
	})

	t.Run("the empty path is the root itself", func(t *testing.T) {
		abs, err := w.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, w.Root(), abs)
	})

	t.Run("absolute paths under the mount are rewritten", func(t *testing.T) {
		abs, err := w.Resolve("/workspace/Dockerfile")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(w.Root(), "Dockerfile"), abs)
	})

	t.Run("absolute paths outside the mount are rejected", func(t *testing.T) {
		for _, p := range []string{"/etc/passwd", "/workspacex/file", "/"} {
			_, err := w.Resolve(p)
			assert.True(t, apierr.Is(err, apierr.CodePathEscapesRoot), "path %q", p)
		}
	})

	t.Run("dotdot segments are rejected outright", func(t *testing.T) {
		for _, p := range []string{"..", "../etc/passwd", "a/../../b", "/workspace/../etc/passwd"} {
			_, err := w.Resolve(p)
			assert.True(t, apierr.Is(err, apierr.CodePathEscapesRoot), "path %q", p)
		}
	})

	t.Run("NUL bytes are rejected", func(t *testing.T) {
		_, err := w.Resolve("a\x00b")
		assert.True(t, apierr.Is(err, apierr.CodePathContainsNul))
	})

	t.Run("a symlinked parent escaping the root is rejected", func(t *testing.T) {
		outside := t.TempDir()
		require.NoError(t, os.Symlink(outside, filepath.Join(w.Root(), "evil")))

		_, err := w.Resolve("evil/secrets.txt")
		assert.True(t, apierr.Is(err, apierr.CodePathEscapesRoot))
	})

	t.Run("a symlink inside the root is allowed", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(w.Root(), "real"), 0o755))
		require.NoError(t, os.Symlink(filepath.Join(w.Root(), "real"), filepath.Join(w.Root(), "alias")))

		abs, err := w.Resolve("alias/file.txt")
		require.NoError(t, err)
		assert.Contains(t, abs, "real")
	})
}

func TestMountPath(t *testing.T) {
	w := newTestWorkspace(t)

	assert.Equal(t, "/workspace", w.MountPath(w.Root()))
	assert.Equal(t, "/workspace/a/b.py", w.MountPath(filepath.Join(w.Root(), "a", "b.py")))
}
