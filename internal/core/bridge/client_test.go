package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aki/gdctl/internal/core/mailbox"
)

// fakeResponder polls the command file the way the in-game autoload does:
// read the command, remove it, write a result. It stops when the test ends.
func fakeResponder(t *testing.T, mb *mailbox.Mailbox, handle func(Command) Result) {
	t.Helper()

	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	go func() {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}

			data, err := os.ReadFile(mb.CommandsPath())
			if err != nil {
				continue
			}
			var cmd Command
			if err := json.Unmarshal(data, &cmd); err != nil {
				continue
			}
			_ = os.Remove(mb.CommandsPath())

			result := handle(cmd)
			out, _ := json.Marshal(result)
			_ = os.WriteFile(mb.ResultsPath(), out, 0o644)
		}
	}()
}

func newTestClient(t *testing.T) (*Client, *mailbox.Mailbox) {
	t.Helper()
	mb := mailbox.New(t.TempDir())
	client := NewClient(mb, WithPollInterval(5*time.Millisecond))
	return client, mb
}

func TestSend_EchoCorrelation(t *testing.T) {
	client, mb := newTestClient(t)

	// Echo the action name back so each result can be matched to its command
	fakeResponder(t, mb, func(cmd Command) Result {
		return Result{Success: true, Message: "echo:" + cmd.Action}
	})

	ctx := context.Background()
	for _, action := range []string{"ping", "performance", "scene_tree"} {
		result, err := client.SendTimeout(ctx, action, nil, 2*time.Second)
		if err != nil {
			t.Fatalf("Send(%s) failed: %v", action, err)
		}
		if result.Message != "echo:"+action {
			t.Errorf("Result for %q carries message %q", action, result.Message)
		}
	}
}

func TestSend_ConsumesResultFile(t *testing.T) {
	client, mb := newTestClient(t)

	fakeResponder(t, mb, func(cmd Command) Result {
		return Result{Success: true, Message: "ok"}
	})

	if _, err := client.SendTimeout(context.Background(), "ping", nil, 2*time.Second); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if _, err := os.Stat(mb.ResultsPath()); !os.IsNotExist(err) {
		t.Error("Expected result file to be deleted after consumption")
	}
}

func TestSend_ClearsStaleResult(t *testing.T) {
	client, mb := newTestClient(t)
	if err := mb.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	// Simulate an abandoned prior call leaving a result behind
	stale, _ := json.Marshal(Result{Success: true, Message: "stale"})
	if err := os.WriteFile(mb.ResultsPath(), stale, 0o644); err != nil {
		t.Fatalf("Failed to write stale result: %v", err)
	}

	fakeResponder(t, mb, func(cmd Command) Result {
		return Result{Success: true, Message: "fresh"}
	})

	result, err := client.SendTimeout(context.Background(), "ping", nil, 2*time.Second)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if result.Message != "fresh" {
		t.Errorf("Stale result was returned: %q", result.Message)
	}
}

func TestSend_Timeout(t *testing.T) {
	client, _ := newTestClient(t)

	timeout := 100 * time.Millisecond
	start := time.Now()
	_, err := client.SendTimeout(context.Background(), "ping", nil, timeout)
	elapsed := time.Since(start)

	var noResponse *NoResponseError
	if !errors.As(err, &noResponse) {
		t.Fatalf("Expected NoResponseError, got %v", err)
	}
	if noResponse.Action != "ping" {
		t.Errorf("Expected action 'ping' in error, got %q", noResponse.Action)
	}
	if noResponse.Timeout != timeout {
		t.Errorf("Expected timeout %s in error, got %s", timeout, noResponse.Timeout)
	}

	if elapsed < timeout {
		t.Errorf("Timed out after %s, before the %s window elapsed", elapsed, timeout)
	}
	if elapsed > timeout+200*time.Millisecond {
		t.Errorf("Timeout took %s, far beyond the %s window", elapsed, timeout)
	}
}

func TestSend_RecoversFromPartialWrite(t *testing.T) {
	client, mb := newTestClient(t)
	if err := mb.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	// Responder writes garbage first (a result caught mid-write), then the
	// real result shortly after
	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = os.WriteFile(mb.ResultsPath(), []byte(`{"success": tr`), 0o644)
		time.Sleep(50 * time.Millisecond)
		out, _ := json.Marshal(Result{Success: true, Message: "finally"})
		_ = os.WriteFile(mb.ResultsPath(), out, 0o644)
	}()

	result, err := client.SendTimeout(context.Background(), "screenshot", nil, 2*time.Second)
	if err != nil {
		t.Fatalf("Send failed despite valid result within window: %v", err)
	}
	if result.Message != "finally" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
}

func TestSend_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := client.SendTimeout(ctx, "ping", nil, 5*time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSend_ApplicationFailurePassedThrough(t *testing.T) {
	client, mb := newTestClient(t)

	fakeResponder(t, mb, func(cmd Command) Result {
		return Result{Success: false, Message: "node not found: /root/Game/Player"}
	})

	result, err := client.SendTimeout(context.Background(), "get_state", map[string]any{"node_path": "/root/Game/Player"}, 2*time.Second)
	if err != nil {
		t.Fatalf("Application failure must not be a protocol error: %v", err)
	}
	if result.Success {
		t.Error("Expected Success=false")
	}
	if result.Message != "node not found: /root/Game/Player" {
		t.Errorf("Unexpected message: %q", result.Message)
	}
}

func TestSend_OverwritesPriorCommand(t *testing.T) {
	client, mb := newTestClient(t)
	if err := mb.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	// A command nobody consumed is still in the slot
	orphan, _ := json.Marshal(Command{Action: "orphaned", Args: map[string]any{}})
	if err := os.WriteFile(mb.CommandsPath(), orphan, 0o644); err != nil {
		t.Fatalf("Failed to write orphan command: %v", err)
	}

	var seen Command
	fakeResponder(t, mb, func(cmd Command) Result {
		seen = cmd
		return Result{Success: true}
	})

	if _, err := client.SendTimeout(context.Background(), "ping", nil, 2*time.Second); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if seen.Action != "ping" {
		t.Errorf("Responder saw %q instead of the new command", seen.Action)
	}
}

func TestSendTimeout_ErrorMessageNamesAction(t *testing.T) {
	err := &NoResponseError{Action: "validate_all_scenes", Timeout: 60 * time.Second}
	msg := err.Error()
	for _, want := range []string{"validate_all_scenes", "1m0s"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected %q in error message %q", want, msg)
		}
	}
}
