// Package sequence loads and validates input sequence files: ordered lists
// of input steps that the in-game responder executes over time after
// accepting them in a single command.
package sequence

import (
	"encoding/json"
	"fmt"
	"os"
)

// Step is a single input step. Its shape is owned by the responder; the CLI
// only checks the parts it needs to reject obviously broken files early.
type Step map[string]any

// Sequence is an ordered list of input steps plus optional metadata
type Sequence struct {
	Description string  `json:"description,omitempty"`
	Steps       []Step  `json:"steps"`
	Timeout     float64 `json:"timeout,omitempty"`
}

// Load reads and validates a sequence file
func Load(path string) (*Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence file: %w", err)
	}

	var seq Sequence
	if err := json.Unmarshal(data, &seq); err != nil {
		return nil, fmt.Errorf("invalid JSON in sequence file: %w", err)
	}

	if err := seq.Validate(); err != nil {
		return nil, err
	}

	return &seq, nil
}

// Validate rejects sequences the responder would refuse anyway
func (s *Sequence) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("sequence has no steps")
	}

	for i, step := range s.Steps {
		if len(step) == 0 {
			return fmt.Errorf("step %d is empty", i)
		}
		if action, ok := step["action"]; ok {
			name, isString := action.(string)
			if !isString || name == "" {
				return fmt.Errorf("step %d has an invalid action", i)
			}
		}
	}

	return nil
}
