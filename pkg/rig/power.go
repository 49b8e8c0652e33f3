package rig

import (
	"context"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// SetPowerState sets the rig power status ("ON", "OFF", "STANDBY",
// "OPERATE"). Power-off does not destroy the handle; the session stays
// usable for a later power-on.
func (r *Rig) SetPowerState(ctx context.Context, state string) error {
	const op = "set_powerstat"
	s, err := token.PowerStates.Encode(state)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetPowerState(s))
	})
}

// GetPowerState reads the rig power status.
func (r *Rig) GetPowerState(ctx context.Context) (string, error) {
	const op = "get_powerstat"
	return dispatch(ctx, r, op, func() (string, error) {
		s, status := r.drv.GetPowerState()
		if !status.IsOK() {
			return "", driverErr(op, status)
		}
		return token.PowerStates.Decode(s), nil
	})
}

// Power2mW converts a relative power setting in [0.0, 1.0] to milliwatts
// for the given frequency and mode.
func (r *Rig) Power2mW(ctx context.Context, power float64, freqHz int64, mode string) (int, error) {
	const op = "power2mW"
	if err := validateFraction(op, "power", power); err != nil {
		return 0, err
	}
	if err := validateFreq(op, freqHz); err != nil {
		return 0, err
	}
	m, err := token.Modes.Encode(mode)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int, error) {
		mw, status := r.drv.Power2mW(power, driver.Freq(freqHz), m)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return mw, nil
	})
}

// MW2Power converts milliwatts to a relative power setting in [0.0, 1.0]
// for the given frequency and mode.
func (r *Rig) MW2Power(ctx context.Context, mw int, freqHz int64, mode string) (float64, error) {
	const op = "mW2power"
	if err := validateNonNegative(op, "milliwatts", mw); err != nil {
		return 0, err
	}
	if err := validateFreq(op, freqHz); err != nil {
		return 0, err
	}
	m, err := token.Modes.Encode(mode)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (float64, error) {
		power, status := r.drv.MW2Power(mw, driver.Freq(freqHz), m)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return power, nil
	})
}

// Reset performs a rig reset ("SOFT", "VFO", "MCAL", "MASTER").
func (r *Rig) Reset(ctx context.Context, resetType string) error {
	const op = "reset"
	rt, err := token.Resets.Encode(resetType)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.Reset(rt))
	})
}

// SetAntenna selects an antenna by number.
func (r *Rig) SetAntenna(ctx context.Context, ant int, vfo ...string) error {
	const op = "set_ant"
	if err := validateNonNegative(op, "antenna", ant); err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetAnt(v, ant))
	})
}

// GetAntenna reads the selected antenna number.
func (r *Rig) GetAntenna(ctx context.Context, vfo ...string) (int, error) {
	const op = "get_ant"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int, error) {
		ant, status := r.drv.GetAnt(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return ant, nil
	})
}
