package bridge

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceValue converts a user-supplied property value to the type the
// responder expects. JSON parse wins, then integer, then float; anything else
// stays a string. The order matters: a quoted numeric string stays a string,
// an unquoted one becomes numeric, and malformed tokens degrade to strings
// instead of failing the call.
func CoerceValue(raw string) any {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		// JSON numbers decode as float64; keep integer literals integral
		if _, isNumber := parsed.(float64); isNumber {
			if i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
				return i
			}
		}
		return parsed
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
