package rig

import (
	"context"

	"github.com/boybook/hamlib-go/pkg/driver"
)

// SetFrequency tunes the given VFO (or the current one) to hz.
func (r *Rig) SetFrequency(ctx context.Context, hz int64, vfo ...string) error {
	const op = "set_freq"
	if err := validateFreq(op, hz); err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetFreq(v, driver.Freq(hz)))
	})
}

// GetFrequency reads the frequency of the given VFO (or the current one)
// in Hz.
func (r *Rig) GetFrequency(ctx context.Context, vfo ...string) (int64, error) {
	const op = "get_freq"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int64, error) {
		f, status := r.drv.GetFreq(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return int64(f), nil
	})
}

// SetTuningStep sets the tuning step of the given VFO in Hz.
func (r *Rig) SetTuningStep(ctx context.Context, hz int64, vfo ...string) error {
	const op = "set_ts"
	if hz <= 0 {
		return &ArgsError{Op: op, Reason: "tuning step must be positive"}
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetTuningStep(v, driver.Freq(hz)))
	})
}

// GetTuningStep reads the tuning step of the given VFO in Hz.
func (r *Rig) GetTuningStep(ctx context.Context, vfo ...string) (int64, error) {
	const op = "get_ts"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int64, error) {
		step, status := r.drv.GetTuningStep(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return int64(step), nil
	})
}
