package rig

import (
	"context"
	"math"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// SetLevel sets an adjustable level by symbolic name. Gain-style levels
// ("AF", "RFPOWER", "SQL", ...) take a fraction in [0.0, 1.0]; discrete
// levels ("ATT", "KEYSPD", ...) take an integer-valued number.
func (r *Rig) SetLevel(ctx context.Context, name string, value float64, vfo ...string) error {
	const op = "set_level"
	level, err := token.Levels.Encode(name)
	if err != nil {
		return err
	}
	val, err := encodeLevelValue(op, name, token.LevelKind(level), value)
	if err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetLevel(v, level, val))
	})
}

// GetLevel reads an adjustable level by symbolic name. Fraction and float
// levels return their float value; integer levels return the integer as a
// float.
func (r *Rig) GetLevel(ctx context.Context, name string, vfo ...string) (float64, error) {
	const op = "get_level"
	level, err := token.Levels.Encode(name)
	if err != nil {
		return 0, err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (float64, error) {
		val, status := r.drv.GetLevel(v, level)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return decodeValue(token.LevelKind(level), val), nil
	})
}

// GetStrength reads the signal strength in dB relative to S9.
func (r *Rig) GetStrength(ctx context.Context, vfo ...string) (int, error) {
	const op = "get_strength"
	v, err := optVFO(op, vfo)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (int, error) {
		db, status := r.drv.GetStrength(v)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return db, nil
	})
}

// SetFunction switches a rig function ("NB", "VOX", "TUNER", ...) on or off.
func (r *Rig) SetFunction(ctx context.Context, name string, on bool, vfo ...string) error {
	const op = "set_func"
	fn, err := token.Funcs.Encode(name)
	if err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetFunc(v, fn, on))
	})
}

// GetFunction reports whether a rig function is switched on.
func (r *Rig) GetFunction(ctx context.Context, name string, vfo ...string) (bool, error) {
	const op = "get_func"
	fn, err := token.Funcs.Encode(name)
	if err != nil {
		return false, err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return false, err
	}
	return dispatch(ctx, r, op, func() (bool, error) {
		on, status := r.drv.GetFunc(v, fn)
		if !status.IsOK() {
			return false, driverErr(op, status)
		}
		return on, nil
	})
}

// SetParm sets a rig-wide parameter ("BACKLIGHT", "BEEP", ...).
func (r *Rig) SetParm(ctx context.Context, name string, value float64) error {
	const op = "set_parm"
	parm, err := token.Parms.Encode(name)
	if err != nil {
		return err
	}
	val, err := encodeLevelValue(op, name, token.ParmKind(parm), value)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetParm(parm, val))
	})
}

// GetParm reads a rig-wide parameter.
func (r *Rig) GetParm(ctx context.Context, name string) (float64, error) {
	const op = "get_parm"
	parm, err := token.Parms.Encode(name)
	if err != nil {
		return 0, err
	}
	return dispatch(ctx, r, op, func() (float64, error) {
		val, status := r.drv.GetParm(parm)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return decodeValue(token.ParmKind(parm), val), nil
	})
}

// encodeLevelValue converts a caller-supplied number into a driver value
// of the right shape, enforcing the [0.0, 1.0] window on fractions.
func encodeLevelValue(op, name string, kind token.ValueKind, value float64) (driver.Value, error) {
	switch kind {
	case token.KindFraction:
		if err := validateFraction(op, name, value); err != nil {
			return driver.Value{}, err
		}
		return driver.FloatValue(value), nil
	case token.KindFloat:
		return driver.FloatValue(value), nil
	default:
		return driver.IntValue(int(math.Round(value))), nil
	}
}

// decodeValue flattens a driver value back into a float.
func decodeValue(kind token.ValueKind, val driver.Value) float64 {
	if kind == token.KindInt {
		return float64(val.I)
	}
	return val.F
}
