// Package lockfile guards a directory against concurrent conversion runs.
package lockfile

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Name is the lock file created inside the target directory.
const Name = ".mkv2mp4.lock"

// ErrLocked is returned when another process holds the directory lock.
var ErrLocked = errors.New("another mkv2mp4 run is active in this directory")

// Lock is a held directory lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes an exclusive, non-blocking lock on <dir>/.mkv2mp4.lock.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, Name)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.path }

// Release unlocks the lock file. The file stays on disk: removing it would
// let a later run lock a fresh inode while another still holds the old one.
// Safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	err := l.lock.Unlock()
	l.lock = nil
	return err
}
