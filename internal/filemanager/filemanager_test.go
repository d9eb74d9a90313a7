package filemanager

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type testDoc struct {
	Action string         `json:"action"`
	Args   map[string]any `json:"args"`
}

func TestManager_WriteRead(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.json")
	manager := NewManager[testDoc]()
	ctx := context.Background()

	doc := &testDoc{
		Action: "ping",
		Args:   map[string]any{"strength": 1.0},
	}

	if err := manager.Write(ctx, path, doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := manager.Read(ctx, path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got.Action != "ping" {
		t.Errorf("Expected action 'ping', got %q", got.Action)
	}
}

func TestManager_WriteCreatesMissingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "doc.json")
	manager := NewManager[testDoc]()

	if err := manager.Write(context.Background(), path, &testDoc{Action: "quit"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file to exist: %v", err)
	}
}

func TestManager_WriteOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.json")
	manager := NewManager[testDoc]()
	ctx := context.Background()

	if err := manager.Write(ctx, path, &testDoc{Action: "first"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := manager.Write(ctx, path, &testDoc{Action: "second"}); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	got, err := manager.Read(ctx, path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.Action != "second" {
		t.Errorf("Expected overwritten action 'second', got %q", got.Action)
	}
}

func TestManager_ReadMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	manager := NewManager[testDoc]()

	_, err := manager.Read(context.Background(), filepath.Join(tmpDir, "absent.json"))
	if !os.IsNotExist(err) {
		t.Errorf("Expected os.IsNotExist error, got %v", err)
	}
}

func TestManager_ReadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	manager := NewManager[testDoc]()
	if _, err := manager.Read(context.Background(), path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestManager_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.json")
	manager := NewManager[testDoc]()
	ctx := context.Background()

	if err := manager.Write(ctx, path, &testDoc{Action: "ping"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := manager.Delete(ctx, path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected file to be removed")
	}

	// Deleting again is not an error
	if err := manager.Delete(ctx, path); err != nil {
		t.Errorf("Delete of missing file failed: %v", err)
	}
}
