package rig

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/riglog"
)

// State is the lifecycle state of a rig handle.
type State int

const (
	// StateClosed means the handle exists but no device session is open.
	// This is the state right after New and after Close.
	StateClosed State = iota

	// StateOpen means the device session is established.
	StateOpen

	// StateDestroyed means the native handle has been released. Terminal.
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateDestroyed:
		return "DESTROYED"
	default:
		return "UNKNOWN"
	}
}

// Config configures a rig handle.
type Config struct {
	// Model is the requested rig model. Ignored for network addresses,
	// which always use the network control backend.
	Model driver.Model

	// Address is a serial device path or a host:port pair. Empty selects
	// DefaultSerialPath.
	Address string

	// Timeout bounds one device I/O exchange inside the driver.
	// Zero keeps the driver default; negative is rejected.
	Timeout time.Duration

	// Retry is the driver-internal retry count. Negative is rejected.
	Retry int

	// WriteDelay and PostWriteDelay tune serial pacing. Negative is
	// rejected.
	WriteDelay     time.Duration
	PostWriteDelay time.Duration

	// Logger receives rig events. Nil disables logging.
	Logger riglog.Logger
}

// ConnectionInfo is a synchronous snapshot of how a handle is connected.
type ConnectionInfo struct {
	ConnectionType string `json:"connectionType"`
	Address        string `json:"address"`
	IsOpen         bool   `json:"isOpen"`
	RequestedModel int    `json:"requestedModel"`
	ResolvedModel  int    `json:"resolvedModel"`
}

// Rig is a handle to one rig. It owns the driver exclusively: no other
// component may retain the driver reference or outlive the handle.
type Rig struct {
	id             string
	requestedModel driver.Model
	model          driver.Model
	portType       driver.PortType
	address        string
	logger         riglog.Logger

	drv  driver.Driver
	disp *dispatcher

	stateMu sync.RWMutex
	state   State
}

// New creates a rig handle for a model and address with default settings.
// The address defaults to a local serial path; host:port strings select the
// network control backend regardless of model (see resolveAddress).
func New(model driver.Model, address string) (*Rig, error) {
	return NewWithConfig(Config{Model: model, Address: address})
}

// NewWithConfig creates a rig handle. Construction resolves the address,
// validates the tunables and initializes the backend; any failure here is
// returned immediately rather than producing a half-initialized handle.
func NewWithConfig(cfg Config) (*Rig, error) {
	if cfg.Timeout < 0 {
		return nil, &ArgsError{Op: "init", Reason: "timeout must not be negative"}
	}
	if cfg.Retry < 0 {
		return nil, &ArgsError{Op: "init", Reason: "retry count must not be negative"}
	}
	if cfg.WriteDelay < 0 || cfg.PostWriteDelay < 0 {
		return nil, &ArgsError{Op: "init", Reason: "write delays must not be negative"}
	}

	portType, model, address := resolveAddress(cfg.Model, cfg.Address)

	port := driver.DefaultPort(portType, address)
	if cfg.Timeout > 0 {
		port.Timeout = cfg.Timeout
	}
	if cfg.Retry > 0 {
		port.Retry = cfg.Retry
	}
	port.WriteDelay = cfg.WriteDelay
	port.PostWriteDelay = cfg.PostWriteDelay

	drv, err := driver.New(model, port)
	if err != nil {
		return nil, fmt.Errorf("rig init failed: %w", err)
	}

	r := &Rig{
		id:             uuid.New().String(),
		requestedModel: cfg.Model,
		model:          model,
		portType:       portType,
		address:        address,
		logger:         cfg.Logger,
		drv:            drv,
		disp:           newDispatcher(),
		state:          StateClosed,
	}
	go r.worker()
	return r, nil
}

// ID returns the handle's unique identifier, stamped on log events.
func (r *Rig) ID() string {
	return r.id
}

// State returns the current lifecycle state.
func (r *Rig) State() State {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	return r.state
}

// guard is the state check run on the worker right before every task and on
// the caller for metadata queries. It fails closed: a destroyed handle
// rejects everything, and session operations demand an open session.
func (r *Rig) guard(op string, requireOpen bool) error {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()

	if r.state == StateDestroyed || r.drv == nil {
		return &StateError{Op: op, State: StateDestroyed}
	}
	if requireOpen && r.state != StateOpen {
		return &StateError{Op: op, State: r.state}
	}
	return nil
}

// setState transitions the lifecycle state and logs the change.
func (r *Rig) setState(next State) {
	r.stateMu.Lock()
	prev := r.state
	r.state = next
	r.stateMu.Unlock()

	if prev != next {
		r.logState(prev, next)
	}
}

// Open establishes the device session. Opening an already-open rig is a
// driver-level no-op and succeeds.
func (r *Rig) Open(ctx context.Context) error {
	_, err := r.submit(ctx, &task{
		name: "open",
		run: func() (any, error) {
			if status := r.drv.Open(); !status.IsOK() {
				return nil, driverErr("open", status)
			}
			r.setState(StateOpen)
			return nil, nil
		},
	})
	return err
}

// Close ends the device session. Closing a rig that is already closed is a
// no-op success.
func (r *Rig) Close(ctx context.Context) error {
	_, err := r.submit(ctx, &task{
		name: "close",
		run: func() (any, error) {
			if r.State() != StateOpen {
				return nil, nil
			}
			if status := r.drv.Close(); !status.IsOK() {
				return nil, driverErr("close", status)
			}
			r.setState(StateClosed)
			return nil, nil
		},
	})
	return err
}

// Destroy closes the session if needed and releases the native handle.
// It waits for all previously queued work to drain, then seals the queue:
// everything submitted afterwards fails with a StateError. Destroy is
// irreversible and succeeds at most once.
func (r *Rig) Destroy(ctx context.Context) error {
	_, err := r.submit(ctx, &task{
		name:  "destroy",
		final: true,
		run: func() (any, error) {
			if r.State() == StateOpen {
				r.drv.Close()
			}
			status := r.drv.Cleanup()

			r.setState(StateDestroyed)
			r.stateMu.Lock()
			r.drv = nil
			r.stateMu.Unlock()

			if !status.IsOK() {
				return nil, driverErr("destroy", status)
			}
			return nil, nil
		},
	})
	return err
}

// Caps returns the static capability descriptor of the resolved model.
// Available in any state except after Destroy.
func (r *Rig) Caps() (*driver.Caps, error) {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()

	if r.state == StateDestroyed || r.drv == nil {
		return nil, &StateError{Op: "caps", State: StateDestroyed}
	}
	return r.drv.Caps(), nil
}

// ConnectionInfo returns a snapshot of the handle's connection parameters.
// It never performs I/O.
func (r *Rig) ConnectionInfo() (ConnectionInfo, error) {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()

	if r.state == StateDestroyed {
		return ConnectionInfo{}, &StateError{Op: "connection_info", State: StateDestroyed}
	}

	typ := "serial"
	if r.portType == driver.PortNetwork {
		typ = "network"
	}
	return ConnectionInfo{
		ConnectionType: typ,
		Address:        r.address,
		IsOpen:         r.state == StateOpen,
		RequestedModel: int(r.requestedModel),
		ResolvedModel:  int(r.model),
	}, nil
}

// logState emits a state-change event.
func (r *Rig) logState(prev, next State) {
	if r.logger == nil {
		return
	}
	r.logger.Log(riglog.Event{
		Timestamp: time.Now(),
		RigID:     r.id,
		Model:     int(r.model),
		Category:  riglog.CategoryState,
		StateChange: &riglog.StateChangeEvent{
			OldState: prev.String(),
			NewState: next.String(),
		},
	})
}

// logResult emits a call-result event for one dispatched task.
func (r *Rig) logResult(op string, latency time.Duration, err error) {
	if r.logger == nil {
		return
	}
	ev := riglog.Event{
		Timestamp: time.Now(),
		RigID:     r.id,
		Model:     int(r.model),
		Category:  riglog.CategoryCall,
		Call: &riglog.CallEvent{
			Op:      op,
			Latency: latency,
		},
	}
	if err != nil {
		ev.Category = riglog.CategoryError
		ev.Call.Error = err.Error()
	}
	r.logger.Log(ev)
}
