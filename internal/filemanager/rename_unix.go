//go:build !windows

package filemanager

import "os"

// atomicRename replaces dst with src. On Unix, os.Rename is already atomic.
func atomicRename(src, dst string) error {
	return os.Rename(src, dst)
}
