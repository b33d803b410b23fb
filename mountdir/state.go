//go:build unix

package mountdir

import (
	"errors"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// State is the observed condition of a bookmark's mount directory.
type State string

const (
	StateUnmounted State = "unmounted"
	StateMounted   State = "mounted"
	// StateStale is a leftover directory with nothing attached.
	StateStale   State = "stale"
	StateUnknown State = "unknown"
)

// State probes whether the mount directory is an active mount point by
// comparing its device with its parent's.
func (m *Manager) State(name string) State {
	path := m.Path(name)

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return StateUnmounted
		}
		return StateUnknown
	}

	var parent unix.Stat_t
	if err := unix.Stat(filepath.Dir(path), &parent); err != nil {
		return StateUnknown
	}
	if st.Dev != parent.Dev {
		return StateMounted
	}
	return StateStale
}
