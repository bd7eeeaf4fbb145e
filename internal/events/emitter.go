package events

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Event types written by the CLI.
const (
	TypeCommandStart    = "command-start"
	TypeCommandFinished = "command-finished"
	TypeCommandFailed   = "command-failed"
	TypeFoldersReady    = "folders-ready"
	TypeBenchmark       = "benchmark"
)

// Event is a single NDJSON record consumed by orchestration scripts.
type Event struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Message   string                 `json:"message,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Emitter writes NDJSON events to an io.Writer safely across goroutines.
// A nil Emitter, or one built on a nil writer, discards events.
type Emitter struct {
	writer io.Writer
	now    func() time.Time
	mu     sync.Mutex
}

// NewEmitter returns a new NDJSON emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{writer: w, now: func() time.Time { return time.Now().UTC() }}
}

// Emit serializes the event as one JSON line. A zero timestamp is filled in.
func (e *Emitter) Emit(evt Event) error {
	if e == nil || e.writer == nil {
		return nil
	}

	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now()
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	_, err = e.writer.Write(append(payload, '\n'))
	return err
}

// EmitFields is shorthand for Emit with a fresh event.
func (e *Emitter) EmitFields(eventType, message string, fields map[string]interface{}) error {
	return e.Emit(Event{Type: eventType, Message: message, Fields: fields})
}
