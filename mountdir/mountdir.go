// Package mountdir manages the local mount points under <home>/.sftp-mounts.
//
// A bookmark's directory is created on its first mount and never removed;
// its existence is the only record of whether the bookmark was mounted.
package mountdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// RootName is the directory under the home directory holding all mount points.
const RootName = ".sftp-mounts"

// ErrCreate wraps mount directory creation failures.
var ErrCreate = errors.New("failed to create mount directory")

// Manager computes and creates per-bookmark mount directories.
type Manager struct {
	root string
}

// New returns a Manager rooted at <home>/.sftp-mounts.
func New(home string) *Manager {
	return &Manager{root: filepath.Join(home, RootName)}
}

// NewForUser returns a Manager for the current user's home directory.
func NewForUser() (*Manager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return New(home), nil
}

// Root returns <home>/.sftp-mounts.
func (m *Manager) Root() string {
	return m.root
}

// Path returns the mount point for a bookmark name.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.root, name)
}

// Exists reports whether the bookmark's mount directory is present.
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.Path(name))
	if err == nil {
		return true
	}
	// A dead FUSE mount fails stat with ENOTCONN; the directory entry itself
	// is still there.
	return !errors.Is(err, os.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR)
}

// Ensure creates the mount directory and any missing parents. created is
// false when the directory was already there. A non-directory at the mount
// path is an error.
func (m *Manager) Ensure(name string) (path string, created bool, err error) {
	path = m.Path(name)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, false, fmt.Errorf("%w %s: not a directory", ErrCreate, path)
	}
	if m.Exists(name) {
		return path, false, nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return path, false, fmt.Errorf("%w %s: %w", ErrCreate, path, err)
	}
	return path, true, nil
}
