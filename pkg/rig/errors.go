package rig

import (
	"errors"
	"fmt"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// ErrUnsupported marks operations the current backend does not provide.
// DriverError wraps it when the driver answers with an "unsupported" status,
// so callers can tell "not supported" from "failed" with errors.Is.
var ErrUnsupported = errors.New("not supported by this rig")

// ArgsError reports an invalid argument: an out-of-range numeric value or a
// malformed parameter. It is raised synchronously, before any dispatch.
type ArgsError struct {
	Op     string
	Reason string
}

// Error describes the rejected argument.
func (e *ArgsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// StateError reports an operation attempted in the wrong lifecycle state,
// typically on a closed or destroyed handle.
type StateError struct {
	Op    string
	State State
}

// Error describes the state violation.
func (e *StateError) Error() string {
	if e.State == StateDestroyed {
		return fmt.Sprintf("%s: rig has been destroyed", e.Op)
	}
	return fmt.Sprintf("%s: rig is not open", e.Op)
}

// DriverError reports a failed driver call, carrying the driver's status
// code and its human-readable error text.
type DriverError struct {
	Op     string
	Status driver.Status
}

// Error returns the driver's error text for the failed call.
func (e *DriverError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, driver.StrError(e.Status))
}

// Unwrap exposes ErrUnsupported for unsupported-operation statuses.
func (e *DriverError) Unwrap() error {
	if e.Status.IsUnsupported() {
		return ErrUnsupported
	}
	return nil
}

// driverErr converts a non-OK status into a DriverError.
func driverErr(op string, status driver.Status) error {
	return &DriverError{Op: op, Status: status}
}

// checkStatus maps a driver status to nil on success or a DriverError.
func checkStatus(op string, status driver.Status) error {
	if status.IsOK() {
		return nil
	}
	return driverErr(op, status)
}

// IsArgsError reports whether err is an argument error: an unknown symbolic
// token or an out-of-range value rejected before dispatch.
func IsArgsError(err error) bool {
	var ae *ArgsError
	var ue *token.UnknownError
	return errors.As(err, &ae) || errors.As(err, &ue)
}

// IsStateError reports whether err is a lifecycle state violation.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

// IsDriverError reports whether err came back from a driver call.
func IsDriverError(err error) bool {
	var de *DriverError
	return errors.As(err, &de)
}
