package riglog

import (
	"time"
)

// Event is one rig control event. CBOR encoding uses integer keys for
// compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RigID uniquely identifies the rig handle (UUID).
	RigID string `cbor:"2,keyasint"`

	// Model is the resolved numeric rig model.
	Model int `cbor:"3,keyasint,omitempty"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Call        *CallEvent        `cbor:"5,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"6,keyasint,omitempty"`
}

// CallEvent describes one completed driver call.
type CallEvent struct {
	// Op is the operation name (set_freq, get_mode, ...).
	Op string `cbor:"1,keyasint"`

	// Latency is the wall time spent executing the call.
	Latency time.Duration `cbor:"2,keyasint"`

	// Error is the failure description, empty on success.
	Error string `cbor:"3,keyasint,omitempty"`
}

// StateChangeEvent describes a handle lifecycle transition.
type StateChangeEvent struct {
	OldState string `cbor:"1,keyasint"`
	NewState string `cbor:"2,keyasint"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCall indicates a successfully completed driver call.
	CategoryCall Category = 0

	// CategoryState indicates a lifecycle state change.
	CategoryState Category = 1

	// CategoryError indicates a failed driver call.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCall:
		return "CALL"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is a sink for rig events. Implementations must be safe for
// concurrent use and must never block the dispatcher for long.
type Logger interface {
	Log(event Event)
}

// NopLogger discards all events.
type NopLogger struct{}

// Log discards the event.
func (NopLogger) Log(Event) {}
