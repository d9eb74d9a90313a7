package bridge

// Command is the single pending request written to the mailbox command file.
// The action name and arguments are opaque to the bridge; the in-game
// responder owns their semantics.
type Command struct {
	Action string         `json:"action"`
	Args   map[string]any `json:"args"`
}

// Result is the responder's reply, consumed from the mailbox result file.
// Success=false is an application failure, not a protocol fault: Message
// carries the responder's explanation and Data is ignored by the bridge.
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// Acceptance identifies an input sequence the responder has accepted for
// execution. Acceptance means the sequence is running, not that it finished;
// completion is only observable through the log stream.
type Acceptance struct {
	SequenceID string
}

// Acceptance extracts the sequence identifier from a sequence-start result.
// It returns false when the result is a failure or carries no identifier.
func (r *Result) Acceptance() (*Acceptance, bool) {
	if !r.Success {
		return nil, false
	}
	id, ok := r.Data["sequence_id"].(string)
	if !ok || id == "" {
		return nil, false
	}
	return &Acceptance{SequenceID: id}, true
}
