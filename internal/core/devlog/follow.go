package devlog

import (
	"context"
	"io"
	"os"
	"strings"
	"time"
)

// FollowOptions configures log following
type FollowOptions struct {
	// PollInterval is how often to check the file for appended lines
	PollInterval time.Duration
	// Category filters entries the same way Options.Category does
	Category string
}

// DefaultFollowOptions returns default follow options
func DefaultFollowOptions() FollowOptions {
	return FollowOptions{
		PollInterval: 500 * time.Millisecond,
	}
}

// Follow streams entries appended to the log file until the context is
// cancelled. It starts at the current end of file; existing entries are not
// replayed. A log file that does not exist yet is waited for, not an error.
func Follow(ctx context.Context, path string, opts FollowOptions, emit func(Entry)) error {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultFollowOptions().PollInterval
	}

	var offset int64
	if info, err := os.Stat(path); err == nil {
		offset = info.Size()
	}

	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	// Carry over a trailing partial line between polls
	var pending string

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Size() < offset {
			// File was replaced by the responder; start over
			offset = 0
			pending = ""
		}
		if info.Size() == offset {
			continue
		}

		chunk, err := readFrom(path, offset)
		if err != nil {
			continue
		}
		offset += int64(len(chunk))

		text := pending + string(chunk)
		lines := strings.Split(text, "\n")
		pending = lines[len(lines)-1]

		for _, line := range lines[:len(lines)-1] {
			if line == "" {
				continue
			}
			if opts.Category != "" && len(filterCategory([]string{line}, opts.Category)) == 0 {
				continue
			}
			emit(parseLine(line))
		}
	}
}

func readFrom(path string, offset int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(f)
}
