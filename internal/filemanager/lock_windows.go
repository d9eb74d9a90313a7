//go:build windows

package filemanager

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// getLockPath returns the sidecar lock file for path.
func getLockPath(path string) string {
	return path + ".lock"
}

// createLock creates a file lock for the given path.
// On Windows a separate lock file avoids conflicts with rename operations.
func createLock(path string) *flock.Flock {
	lockPath := getLockPath(path)

	dir := filepath.Dir(lockPath)
	_ = os.MkdirAll(dir, 0o755)

	return flock.New(lockPath)
}

// cleanupLockFile removes stale lock files. Only old ones are removed to
// avoid racing with another process that still holds the lock.
func cleanupLockFile(path string) {
	lockPath := getLockPath(path)

	info, err := os.Stat(lockPath)
	if err == nil && time.Since(info.ModTime()) > 5*time.Second {
		_ = os.Remove(lockPath)
	}
}
