// Package bridge implements the file-based command protocol between the CLI
// and a running game instance. One command and one result file act as a
// single-slot rendezvous channel: the CLI clears any stale result, publishes
// the command atomically, then polls for the result and consumes it. There is
// no request ID; correlation relies on strict alternation and the pre-publish
// clear, so exactly one command may be in flight per mailbox.
package bridge

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/aki/gdctl/internal/core/logger"
	"github.com/aki/gdctl/internal/core/mailbox"
	"github.com/aki/gdctl/internal/filemanager"
)

const (
	// DefaultTimeout is the wait window for ordinary commands
	DefaultTimeout = 30 * time.Second
	// PingTimeout is the short wait window for liveness checks and quit
	PingTimeout = 5 * time.Second
	// ValidateAllTimeout covers a full-project validation sweep
	ValidateAllTimeout = 60 * time.Second
	// DefaultPollInterval is the sleep between result file checks
	DefaultPollInterval = 100 * time.Millisecond
)

// Client sends commands through a mailbox and awaits results
type Client struct {
	mb       *mailbox.Mailbox
	commands *filemanager.Manager[Command]
	results  *filemanager.Manager[Result]
	log      logger.Logger

	pollInterval   time.Duration
	defaultTimeout time.Duration

	// mu serializes sends: the mailbox has one command slot and one result
	// slot, so two in-flight commands would misattribute results
	mu sync.Mutex
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the logger used for protocol debug output
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithPollInterval overrides the result poll interval
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = d
	}
}

// WithDefaultTimeout overrides the default wait window
func WithDefaultTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.defaultTimeout = d
	}
}

// NewClient creates a client for the given mailbox
func NewClient(mb *mailbox.Mailbox, opts ...Option) *Client {
	c := &Client{
		mb:             mb,
		commands:       filemanager.NewManager[Command](),
		results:        filemanager.NewManager[Result](),
		log:            logger.Nop(),
		pollInterval:   DefaultPollInterval,
		defaultTimeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send publishes a command and waits for its result with the default timeout
func (c *Client) Send(ctx context.Context, action string, args map[string]any) (*Result, error) {
	return c.SendTimeout(ctx, action, args, c.defaultTimeout)
}

// SendTimeout publishes a command and waits for its result.
//
// Any result file left over from a previous, possibly abandoned, call is
// deleted before the command is published. That clear is the only correlation
// guard the protocol has: a result found after publish belongs to this
// command.
func (c *Client) SendTimeout(ctx context.Context, action string, args map[string]any, timeout time.Duration) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mb.Ensure(); err != nil {
		return nil, err
	}

	if err := c.results.Delete(ctx, c.mb.ResultsPath()); err != nil {
		return nil, err
	}

	if args == nil {
		args = map[string]any{}
	}
	cmd := &Command{Action: action, Args: args}
	if err := c.commands.Write(ctx, c.mb.CommandsPath(), cmd); err != nil {
		return nil, err
	}
	c.log.Debug("command published", "action", action, "timeout", timeout)

	return c.awaitResult(ctx, action, timeout)
}

// awaitResult polls the result file until a parseable result appears or the
// wall-clock deadline passes. A file that exists but fails to parse is
// treated as still being written and retried on the next tick.
func (c *Client) awaitResult(ctx context.Context, action string, timeout time.Duration) (*Result, error) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		result, err := c.results.Read(ctx, c.mb.ResultsPath())
		if err == nil {
			if err := c.results.Delete(ctx, c.mb.ResultsPath()); err != nil {
				return nil, err
			}
			c.log.Debug("result consumed", "action", action, "success", result.Success)
			return result, nil
		}
		if !os.IsNotExist(err) {
			// Partially written or locked; retry within the window
			c.log.Debug("result not yet readable", "action", action, "error", err)
		}

		if time.Now().After(deadline) {
			c.log.Debug("wait window elapsed", "action", action, "timeout", timeout)
			return nil, &NoResponseError{Action: action, Timeout: timeout}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
