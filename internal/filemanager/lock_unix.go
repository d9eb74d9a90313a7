//go:build !windows

package filemanager

import "github.com/gofrs/flock"

// createLock creates a file lock for the given path.
// On Unix systems the target file itself can be locked.
func createLock(path string) *flock.Flock {
	return flock.New(path)
}

// cleanupLockFile is a no-op on Unix since the target file is the lock.
func cleanupLockFile(path string) {
}
