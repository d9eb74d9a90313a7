// Package mailbox models the shared directory through which the CLI and the
// in-game DevTools responder exchange files. Both sides derive the same
// directory from the project, so the three well-known filenames are the whole
// coordination surface.
package mailbox

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// CommandsFile holds the single pending command, overwritten each call
	CommandsFile = "devtools_commands.json"
	// ResultsFile holds the single pending result, consumed by the CLI
	ResultsFile = "devtools_results.json"
	// LogFile is the append-only line-delimited JSON log stream
	LogFile = "devtools_log.jsonl"
)

// Mailbox is a shared directory holding the command, result, and log files
type Mailbox struct {
	dir string
}

// New creates a mailbox rooted at dir. The directory is created lazily by
// Ensure, not here.
func New(dir string) *Mailbox {
	return &Mailbox{dir: dir}
}

// Dir returns the mailbox directory
func (m *Mailbox) Dir() string {
	return m.dir
}

// CommandsPath returns the path of the command file
func (m *Mailbox) CommandsPath() string {
	return filepath.Join(m.dir, CommandsFile)
}

// ResultsPath returns the path of the result file
func (m *Mailbox) ResultsPath() string {
	return filepath.Join(m.dir, ResultsFile)
}

// LogPath returns the path of the log file
func (m *Mailbox) LogPath() string {
	return filepath.Join(m.dir, LogFile)
}

// Ensure creates the mailbox directory if it does not exist
func (m *Mailbox) Ensure() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create mailbox directory: %w", err)
	}
	return nil
}
