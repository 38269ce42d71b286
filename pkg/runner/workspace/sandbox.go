package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
)

// Resolve maps a client-supplied path to an absolute host path inside the
// workspace root, or rejects it.
//
// The rules, applied in order:
//  1. Paths containing NUL bytes are rejected outright.
//  2. Paths containing ".." segments are rejected before any normalization;
//     there is no legitimate use for them through this API.
//  3. The path is taken relative to the workspace root. Absolute client
//     paths are accepted only when they already start with the advertised
//     mount prefix (e.g. "/workspace/app.py"), which is rewritten onto the
//     root.
//  4. The result is lexically cleaned and must still have the root as a
//     prefix.
//  5. Symlinks are resolved at the leaf's parent; the resolved parent must
//     also live under the root. The leaf itself may not exist yet (writes,
//     creates), so it is checked lexically only.
func (w *Workspace) Resolve(clientPath string) (string, error) {
	if strings.ContainsRune(clientPath, 0) {
		return "", apierr.New(apierr.CodePathContainsNul, "path contains a NUL byte")
	}

	for _, segment := range strings.Split(filepath.ToSlash(clientPath), "/") {
		if segment == ".." {
			return "", apierr.New(apierr.CodePathEscapesRoot, "path contains a '..' segment")
		}
	}

	rel := clientPath
	if filepath.IsAbs(clientPath) {
		if clientPath != w.mount && !strings.HasPrefix(clientPath, w.mount+"/") {
			return "", apierr.Newf(apierr.CodePathEscapesRoot,
				"absolute paths must start with %s", w.mount)
		}
		rel = strings.TrimPrefix(clientPath, w.mount)
		rel = strings.TrimPrefix(rel, "/")
	}

	abs := filepath.Clean(filepath.Join(w.root, rel))
	if abs == w.root {
		return abs, nil
	}
	if !strings.HasPrefix(abs, w.root+string(filepath.Separator)) {
		return "", apierr.New(apierr.CodePathEscapesRoot, "path escapes the workspace")
	}

	// A symlinked parent directory could point anywhere; resolve it and
	// re-check before touching the leaf.
	parent := filepath.Dir(abs)
	resolvedParent, err := filepath.EvalSymlinks(parent)
	if err != nil {
		if os.IsNotExist(err) {
			// Parent does not exist yet (recursive create); the lexical
			// check above already constrained it.
			return abs, nil
		}
		return "", apierr.Wrap(apierr.CodeInvalidPath, "cannot resolve path", err)
	}

	resolvedRoot, err := filepath.EvalSymlinks(w.root)
	if err != nil {
		return "", apierr.Wrap(apierr.CodeInvalidPath, "cannot resolve workspace root", err)
	}
	if resolvedParent != resolvedRoot &&
		!strings.HasPrefix(resolvedParent, resolvedRoot+string(filepath.Separator)) {
		return "", apierr.New(apierr.CodePathEscapesRoot, "path escapes the workspace via a symlink")
	}

	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}

// MountPath converts a resolved host path back to the path advertised to
// clients (under the in-worker mount).
func (w *Workspace) MountPath(hostPath string) string {
	rel, err := filepath.Rel(w.root, hostPath)
	if err != nil || rel == "." {
		return w.mount
	}
	return w.mount + "/" + filepath.ToSlash(rel)
}
