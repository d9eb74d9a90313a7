//go:build windows

package filemanager

import (
	"math/rand"
	"os"
	"strings"
	"time"
)

// readFileWithRetry attempts to read a file with retries on Windows
// to handle sharing violations while the responder writes its side.
func readFileWithRetry(path string) ([]byte, error) {
	var data []byte
	var err error

	// Small random delay to reduce contention
	time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)

	for i := 0; i < 5; i++ {
		data, err = os.ReadFile(path)
		if err == nil {
			return data, nil
		}

		if os.IsPermission(err) || isFileLocked(err) {
			delay := time.Duration(10*(1<<uint(i))) * time.Millisecond
			jitter := time.Duration(rand.Intn(10)) * time.Millisecond
			time.Sleep(delay + jitter)
			continue
		}

		return nil, err
	}

	return nil, err
}

// isFileLocked checks if the error is due to the file being locked
func isFileLocked(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "being used by another process") ||
		strings.Contains(errStr, "The process cannot access")
}
