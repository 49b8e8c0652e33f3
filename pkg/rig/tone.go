package rig

import (
	"context"
	"fmt"
)

// validateTone checks a CTCSS tone given in tenths of Hz (885 is 88.5 Hz).
func validateTone(op string, tone int) error {
	if tone <= 0 {
		return &ArgsError{Op: op, Reason: fmt.Sprintf("tone must be positive tenths of Hz, got %d", tone)}
	}
	return nil
}

// validateDCS checks a DCS code (octal convention, 023..754).
func validateDCS(op string, code int) error {
	if code <= 0 {
		return &ArgsError{Op: op, Reason: fmt.Sprintf("DCS code must be positive, got %d", code)}
	}
	return nil
}

// SetCtcssTone sets the CTCSS transmit tone in tenths of Hz.
func (r *Rig) SetCtcssTone(ctx context.Context, tone int, vfo ...string) error {
	const op = "set_ctcss_tone"
	if err := validateTone(op, tone); err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetCTCSSTone(v, tone))
	})
}

// GetCtcssTone reads the CTCSS transmit tone in tenths of Hz.
func (r *Rig) GetCtcssTone(ctx context.Context, vfo ...string) (int, error) {
	const op = "get_ctcss_tone"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int, error) {
		tone, status := r.drv.GetCTCSSTone(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return tone, nil
	})
}

// SetDcsCode sets the DCS transmit code.
func (r *Rig) SetDcsCode(ctx context.Context, code int, vfo ...string) error {
	const op = "set_dcs_code"
	if err := validateDCS(op, code); err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetDCSCode(v, code))
	})
}

// GetDcsCode reads the DCS transmit code.
func (r *Rig) GetDcsCode(ctx context.Context, vfo ...string) (int, error) {
	const op = "get_dcs_code"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int, error) {
		code, status := r.drv.GetDCSCode(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return code, nil
	})
}

// SetCtcssSquelch sets the CTCSS squelch tone in tenths of Hz.
func (r *Rig) SetCtcssSquelch(ctx context.Context, tone int, vfo ...string) error {
	const op = "set_ctcss_sql"
	if err := validateTone(op, tone); err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetCTCSSSql(v, tone))
	})
}

// GetCtcssSquelch reads the CTCSS squelch tone in tenths of Hz.
func (r *Rig) GetCtcssSquelch(ctx context.Context, vfo ...string) (int, error) {
	const op = "get_ctcss_sql"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int, error) {
		tone, status := r.drv.GetCTCSSSql(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return tone, nil
	})
}

// SetDcsSquelch sets the DCS squelch code.
func (r *Rig) SetDcsSquelch(ctx context.Context, code int, vfo ...string) error {
	const op = "set_dcs_sql"
	if err := validateDCS(op, code); err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetDCSSql(v, code))
	})
}

// GetDcsSquelch reads the DCS squelch code.
func (r *Rig) GetDcsSquelch(ctx context.Context, vfo ...string) (int, error) {
	const op = "get_dcs_sql"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int, error) {
		code, status := r.drv.GetDCSSql(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return code, nil
	})
}
