package rig

import (
	"context"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// SetRepeaterShift sets the repeater shift direction ("+", "-" or "NONE").
func (r *Rig) SetRepeaterShift(ctx context.Context, shift string, vfo ...string) error {
	const op = "set_rptr_shift"
	s, err := token.RptShifts.Encode(shift)
	if err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetRptShift(v, s))
	})
}

// GetRepeaterShift reads the repeater shift direction.
func (r *Rig) GetRepeaterShift(ctx context.Context, vfo ...string) (string, error) {
	const op = "get_rptr_shift"
	v, err := optVFO(op, vfo)
	if err != nil {
		return "", err
	}
	return dispatch(ctx, r, op, func() (string, error) {
		s, status := r.drv.GetRptShift(v)
		if !status.IsOK() {
			return "", driverErr(op, status)
		}
		return token.RptShifts.Decode(s), nil
	})
}

// SetRepeaterOffset sets the repeater offset in Hz.
func (r *Rig) SetRepeaterOffset(ctx context.Context, hz int64, vfo ...string) error {
	const op = "set_rptr_offs"
	if hz < 0 {
		return &ArgsError{Op: op, Reason: "repeater offset must not be negative"}
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetRptOffset(v, driver.Freq(hz)))
	})
}

// GetRepeaterOffset reads the repeater offset in Hz.
func (r *Rig) GetRepeaterOffset(ctx context.Context, vfo ...string) (int64, error) {
	const op = "get_rptr_offs"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int64, error) {
		offset, status := r.drv.GetRptOffset(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return int64(offset), nil
	})
}
