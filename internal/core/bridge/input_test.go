package bridge

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/aki/gdctl/internal/core/sequence"
)

func TestStartSequence_AcceptanceIsNotCompletion(t *testing.T) {
	client, mb := newTestClient(t)

	// The responder accepts immediately and only logs completion much later;
	// the call must return as soon as the identifier is present.
	fakeResponder(t, mb, func(cmd Command) Result {
		if cmd.Action != "input_sequence" {
			t.Errorf("Unexpected action %q", cmd.Action)
		}
		go func() {
			time.Sleep(500 * time.Millisecond)
			entry := `{"timestamp": 1700000000, "category": "input", "message": "sequence seq-7 complete"}` + "\n"
			f, err := os.OpenFile(mb.LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err == nil {
				_, _ = f.WriteString(entry)
				_ = f.Close()
			}
		}()
		return Result{
			Success: true,
			Message: "sequence accepted",
			Data:    map[string]any{"sequence_id": "seq-7"},
		}
	})

	seq := &sequence.Sequence{Steps: []sequence.Step{{"action": "jump", "type": "tap"}}}

	start := time.Now()
	result, err := client.StartSequence(context.Background(), seq, 5*time.Second)
	if err != nil {
		t.Fatalf("StartSequence failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Errorf("StartSequence waited %s, it must not wait for completion", elapsed)
	}

	acceptance, ok := result.Acceptance()
	if !ok {
		t.Fatal("Expected an acceptance with a sequence identifier")
	}
	if acceptance.SequenceID != "seq-7" {
		t.Errorf("Expected sequence id 'seq-7', got %q", acceptance.SequenceID)
	}
}

func TestStartSequence_WaitWindowIncludesGrace(t *testing.T) {
	client, mb := newTestClient(t)

	var published Command
	fakeResponder(t, mb, func(cmd Command) Result {
		published = cmd
		return Result{Success: true, Data: map[string]any{"sequence_id": "seq-1"}}
	})

	seq := &sequence.Sequence{Steps: []sequence.Step{{"action": "jump"}}}
	if _, err := client.StartSequence(context.Background(), seq, 15*time.Second); err != nil {
		t.Fatalf("StartSequence failed: %v", err)
	}

	if published.Args["timeout"] != 15.0 {
		t.Errorf("Expected sequence timeout 15s in args, got %v", published.Args["timeout"])
	}
}

func TestStartSequence_DefaultTimeout(t *testing.T) {
	client, mb := newTestClient(t)

	var published Command
	fakeResponder(t, mb, func(cmd Command) Result {
		published = cmd
		return Result{Success: true, Data: map[string]any{"sequence_id": "seq-2"}}
	})

	seq := &sequence.Sequence{Steps: []sequence.Step{{"action": "jump"}}}
	if _, err := client.StartSequence(context.Background(), seq, 0); err != nil {
		t.Fatalf("StartSequence failed: %v", err)
	}

	if published.Args["timeout"] != DefaultSequenceTimeout.Seconds() {
		t.Errorf("Expected default sequence timeout in args, got %v", published.Args["timeout"])
	}
}

func TestResult_Acceptance(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		wantID string
		wantOK bool
	}{
		{
			name:   "accepted",
			result: Result{Success: true, Data: map[string]any{"sequence_id": "seq-3"}},
			wantID: "seq-3",
			wantOK: true,
		},
		{
			name:   "failure",
			result: Result{Success: false, Data: map[string]any{"sequence_id": "seq-3"}},
			wantOK: false,
		},
		{
			name:   "no identifier",
			result: Result{Success: true, Data: map[string]any{}},
			wantOK: false,
		},
		{
			name:   "wrong type",
			result: Result{Success: true, Data: map[string]any{"sequence_id": 12.0}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acceptance, ok := tt.result.Acceptance()
			if ok != tt.wantOK {
				t.Fatalf("Acceptance() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && acceptance.SequenceID != tt.wantID {
				t.Errorf("SequenceID = %q, want %q", acceptance.SequenceID, tt.wantID)
			}
		})
	}
}

func TestInputTap_Args(t *testing.T) {
	client, mb := newTestClient(t)

	var published Command
	fakeResponder(t, mb, func(cmd Command) Result {
		published = cmd
		return Result{Success: true}
	})

	if _, err := client.InputTap(context.Background(), "jump", 0.5, 0.8); err != nil {
		t.Fatalf("InputTap failed: %v", err)
	}

	want := map[string]any{"action": "jump", "hold_seconds": 0.5, "strength": 0.8}
	got, _ := json.Marshal(published.Args)
	expected, _ := json.Marshal(want)
	if string(got) != string(expected) {
		t.Errorf("InputTap args = %s, want %s", got, expected)
	}
}

func TestInputPress_OmitsNegativeStrength(t *testing.T) {
	client, mb := newTestClient(t)

	var published Command
	fakeResponder(t, mb, func(cmd Command) Result {
		published = cmd
		return Result{Success: true}
	})

	if _, err := client.InputPress(context.Background(), "move_left", -1); err != nil {
		t.Fatalf("InputPress failed: %v", err)
	}

	if _, present := published.Args["strength"]; present {
		t.Error("Negative strength must be omitted from args")
	}
}
