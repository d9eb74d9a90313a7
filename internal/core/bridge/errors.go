package bridge

import (
	"fmt"
	"time"
)

// NoResponseError is returned when no parseable result appeared within the
// deadline. It is distinct from an application failure: nothing answered at
// all, which usually means the game is not running with DevTools enabled.
type NoResponseError struct {
	Action  string
	Timeout time.Duration
}

func (e NoResponseError) Error() string {
	return fmt.Sprintf("no response for %q after %s: is the game running with DevTools?", e.Action, e.Timeout)
}
