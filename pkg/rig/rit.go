package rig

import (
	"context"

	"github.com/boybook/hamlib-go/pkg/driver"
)

// SetRit sets the receive incremental tuning offset of the given VFO in Hz.
func (r *Rig) SetRit(ctx context.Context, hz int64, vfo ...string) error {
	const op = "set_rit"
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetRit(v, driver.Freq(hz)))
	})
}

// GetRit reads the receive incremental tuning offset of the given VFO in Hz.
func (r *Rig) GetRit(ctx context.Context, vfo ...string) (int64, error) {
	const op = "get_rit"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int64, error) {
		offset, status := r.drv.GetRit(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return int64(offset), nil
	})
}

// ClearRit resets the receive incremental tuning offset to zero.
func (r *Rig) ClearRit(ctx context.Context, vfo ...string) error {
	return r.SetRit(ctx, 0, vfo...)
}

// SetXit sets the transmit incremental tuning offset of the given VFO in Hz.
func (r *Rig) SetXit(ctx context.Context, hz int64, vfo ...string) error {
	const op = "set_xit"
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetXit(v, driver.Freq(hz)))
	})
}

// GetXit reads the transmit incremental tuning offset of the given VFO in Hz.
func (r *Rig) GetXit(ctx context.Context, vfo ...string) (int64, error) {
	const op = "get_xit"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int64, error) {
		offset, status := r.drv.GetXit(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return int64(offset), nil
	})
}

// ClearXit resets the transmit incremental tuning offset to zero.
func (r *Rig) ClearXit(ctx context.Context, vfo ...string) error {
	return r.SetXit(ctx, 0, vfo...)
}
