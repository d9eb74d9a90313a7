// Package devlog reads the append-only log stream the in-game responder
// writes next to the command and result files. The CLI only ever reads this
// file; entries are never mutated, truncated, or rotated from this side.
package devlog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry is one line of the log stream. Lines that are not valid JSON keep
// their text in Raw and nothing else, so the reader loses structure but
// never data.
type Entry struct {
	Timestamp float64 `json:"timestamp"`
	Category  string  `json:"category"`
	Message   string  `json:"message"`

	// Raw is the original line for entries that failed to parse
	Raw string `json:"-"`
}

// Parsed reports whether the entry carries structured fields
func (e Entry) Parsed() bool {
	return e.Raw == ""
}

// Options filters the log stream
type Options struct {
	// Category keeps only lines mentioning this category. The match is
	// literal text containment against both JSON spacing styles, same as
	// the responder's own tooling, not a structured field comparison.
	Category string
	// Tail keeps only the last N entries, applied after the category filter
	Tail int
}

// Read returns log entries from path. An absent log file is a normal state
// and yields an empty slice, not an error.
func Read(path string, opts Options) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}

	if opts.Category != "" {
		lines = filterCategory(lines, opts.Category)
	}

	if opts.Tail > 0 && len(lines) > opts.Tail {
		lines = lines[len(lines)-opts.Tail:]
	}

	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, parseLine(line))
	}
	return entries, nil
}

func filterCategory(lines []string, category string) []string {
	compact := fmt.Sprintf(`"category":"%s"`, category)
	spaced := fmt.Sprintf(`"category": "%s"`, category)

	var kept []string
	for _, line := range lines {
		if strings.Contains(line, compact) || strings.Contains(line, spaced) {
			kept = append(kept, line)
		}
	}
	return kept
}

func parseLine(line string) Entry {
	var entry Entry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return Entry{Raw: line}
	}
	return entry
}
