package mailbox

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMailbox_Paths(t *testing.T) {
	mb := New("/data/game")

	if mb.CommandsPath() != filepath.Join("/data/game", CommandsFile) {
		t.Errorf("Unexpected commands path: %s", mb.CommandsPath())
	}
	if mb.ResultsPath() != filepath.Join("/data/game", ResultsFile) {
		t.Errorf("Unexpected results path: %s", mb.ResultsPath())
	}
	if mb.LogPath() != filepath.Join("/data/game", LogFile) {
		t.Errorf("Unexpected log path: %s", mb.LogPath())
	}
}

func TestMailbox_Ensure(t *testing.T) {
	tmpDir := t.TempDir()
	mb := New(filepath.Join(tmpDir, "app_userdata", "My Game"))

	if err := mb.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	info, err := os.Stat(mb.Dir())
	if err != nil {
		t.Fatalf("Mailbox directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Mailbox path is not a directory")
	}

	// Ensure is idempotent
	if err := mb.Ensure(); err != nil {
		t.Errorf("Second Ensure failed: %v", err)
	}
}
