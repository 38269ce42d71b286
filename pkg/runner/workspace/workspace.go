// Package workspace implements the sandboxed per-session filesystem: path
// resolution jailed to a root directory, byte-exact reads and atomic
// writes, and recursive starter-tree seeding.
package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/codeready-toolchain/dockhand/pkg/apierr"
	"github.com/codeready-toolchain/dockhand/pkg/supervisor"
)

// Workspace is one session's filesystem, rooted at a host directory that
// is bind-mounted into the worker at the mount path.
type Workspace struct {
	root  string // absolute host directory
	mount string // path advertised to clients, e.g. "/workspace"
}

// New creates (if needed) and returns the workspace rooted at root.
func New(root, mount string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create workspace root: %w", err)
	}
	return &Workspace{root: abs, mount: mount}, nil
}

// Root returns the absolute host directory backing this workspace.
func (w *Workspace) Root() string { return w.root }

// List returns the entries at path. A missing path is not an error: the
// result carries Exists=false so the UI can render empty directories.
func (w *Workspace) List(path string) (*supervisor.ListResult, error) {
	abs, err := w.Resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return &supervisor.ListResult{Entries: []supervisor.FileEntry{}, Exists: false}, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	result := &supervisor.ListResult{
		Entries: []supervisor.FileEntry{},
		Exists:  true,
		IsDir:   info.IsDir(),
	}
	if !info.IsDir() {
		return result, nil
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	for _, entry := range entries {
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		result.Entries = append(result.Entries, supervisor.FileEntry{
			Name:       entry.Name(),
			Path:       w.MountPath(filepath.Join(abs, entry.Name())),
			IsDir:      entry.IsDir(),
			Size:       fi.Size(),
			ModifiedAt: fi.ModTime().UTC(),
		})
	}
	sort.Slice(result.Entries, func(i, j int) bool {
		return result.Entries[i].Name < result.Entries[j].Name
	})
	return result, nil
}

// Read returns the file's exact bytes.
func (w *Workspace) Read(path string) ([]byte, error) {
	abs, err := w.Resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apierr.Newf(apierr.CodeFileNotFound, "%s does not exist", path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, apierr.Newf(apierr.CodeIsADirectory, "%s is a directory", path)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Write stores exact bytes at path, creating parent directories as needed.
// The write is atomic: a temp file in the same directory is renamed over
// the destination, so concurrent readers see either the old or the new
// content, never a torn file.
func (w *Workspace) Write(path string, data []byte) error {
	abs, err := w.Resolve(path)
	if err != nil {
		return err
	}

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return apierr.Newf(apierr.CodeIsADirectory, "%s is a directory", path)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create parent directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dockhand-write-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Create makes a file (with optional content) or a directory. Directory
// creation is recursive; creating an existing path fails.
func (w *Workspace) Create(path, kind string, data []byte) error {
	abs, err := w.Resolve(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(abs); err == nil {
		return apierr.Newf(apierr.CodeFileAlreadyExists, "%s already exists", path)
	}

	if kind == "directory" {
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
		return nil
	}
	return w.Write(path, data)
}

// Rename moves from → to within the workspace.
func (w *Workspace) Rename(from, to string) error {
	absFrom, err := w.Resolve(from)
	if err != nil {
		return err
	}
	absTo, err := w.Resolve(to)
	if err != nil {
		return err
	}

	if _, err := os.Stat(absFrom); err != nil {
		if os.IsNotExist(err) {
			return apierr.Newf(apierr.CodeFileNotFound, "%s does not exist", from)
		}
		return fmt.Errorf("failed to stat %s: %w", from, err)
	}

	if err := os.MkdirAll(filepath.Dir(absTo), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directories: %w", err)
	}
	if err := os.Rename(absFrom, absTo); err != nil {
		return fmt.Errorf("failed to rename %s: %w", from, err)
	}
	return nil
}

// Delete removes path, recursively for directories. Deleting the workspace
// root itself is rejected.
func (w *Workspace) Delete(path string) error {
	abs, err := w.Resolve(path)
	if err != nil {
		return err
	}
	if abs == w.root {
		return apierr.New(apierr.CodeInvalidPath, "cannot delete the workspace root")
	}

	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return apierr.Newf(apierr.CodeFileNotFound, "%s does not exist", path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// Seed recursively copies the starter tree at src into the workspace root.
// Symlinks in starter trees are skipped: labs are authored as plain files.
func (w *Workspace) Seed(src string) error {
	return filepath.Walk(src, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		dst := filepath.Join(w.root, rel)

		switch {
		case info.IsDir():
			return os.MkdirAll(dst, 0o755)
		case info.Mode().IsRegular():
			return copyFile(p, dst, info.Mode().Perm())
		default:
			return nil
		}
	})
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
