package bridge

import (
	"context"
	"time"

	"github.com/aki/gdctl/internal/core/sequence"
)

const (
	// DefaultSequenceTimeout is how long the responder gets to run a
	// sequence when the file does not specify its own limit
	DefaultSequenceTimeout = 60 * time.Second
	// sequenceGrace pads the wait window so the acceptance round-trip does
	// not race the sequence timeout itself
	sequenceGrace = 10 * time.Second
)

// InputPress presses and holds an input action. A negative strength means
// full pressure.
func (c *Client) InputPress(ctx context.Context, action string, strength float64) (*Result, error) {
	args := map[string]any{"action": action}
	if strength >= 0 {
		args["strength"] = strength
	}
	return c.Send(ctx, "input_press", args)
}

// InputRelease releases a held input action
func (c *Client) InputRelease(ctx context.Context, action string) (*Result, error) {
	return c.Send(ctx, "input_release", map[string]any{"action": action})
}

// InputTap presses and releases an input action, optionally holding it for
// hold seconds first
func (c *Client) InputTap(ctx context.Context, action string, hold, strength float64) (*Result, error) {
	args := map[string]any{"action": action}
	if hold > 0 {
		args["hold_seconds"] = hold
	}
	if strength >= 0 {
		args["strength"] = strength
	}
	return c.Send(ctx, "input_tap", args)
}

// InputClear releases every simulated input
func (c *Client) InputClear(ctx context.Context) (*Result, error) {
	return c.Send(ctx, "input_clear", nil)
}

// InputActions lists the input actions the game knows about
func (c *Client) InputActions(ctx context.Context, includeBuiltin bool) (*Result, error) {
	return c.Send(ctx, "input_actions", map[string]any{"include_builtin": includeBuiltin})
}

// StartSequence submits an input sequence for execution. The call returns as
// soon as the responder has accepted the sequence; the wait window is the
// sequence timeout plus a grace margin for the acceptance round-trip, not the
// execution time. Use Result.Acceptance for the identifier of the running
// sequence and the log stream to observe completion.
func (c *Client) StartSequence(ctx context.Context, seq *sequence.Sequence, timeout time.Duration) (*Result, error) {
	if timeout <= 0 {
		timeout = DefaultSequenceTimeout
	}

	args := map[string]any{
		"steps":   seq.Steps,
		"timeout": timeout.Seconds(),
	}
	return c.SendTimeout(ctx, "input_sequence", args, timeout+sequenceGrace)
}
