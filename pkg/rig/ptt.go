package rig

import (
	"context"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// SetPtt keys or unkeys the transmitter on the given VFO (or the current one).
func (r *Rig) SetPtt(ctx context.Context, on bool, vfo ...string) error {
	const op = "set_ptt"
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	ptt := driver.PTTOff
	if on {
		ptt = driver.PTTOn
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetPTT(v, ptt))
	})
}

// GetPtt reports whether the transmitter is keyed on the given VFO (or the
// current one).
func (r *Rig) GetPtt(ctx context.Context, vfo ...string) (bool, error) {
	const op = "get_ptt"
	v, err := optVFO(op, vfo)
	if err != nil {
		return false, err
	}
	return dispatch(ctx, r, op, func() (bool, error) {
		ptt, status := r.drv.GetPTT(v)
		if !status.IsOK() {
			return false, driverErr(op, status)
		}
		return ptt != driver.PTTOff, nil
	})
}

// GetDcd reports whether the squelch is open on the given VFO (or the
// current one).
func (r *Rig) GetDcd(ctx context.Context, vfo ...string) (bool, error) {
	const op = "get_dcd"
	v, err := optVFO(op, vfo)
	if err != nil {
		return false, err
	}
	return dispatch(ctx, r, op, func() (bool, error) {
		dcd, status := r.drv.GetDCD(v)
		if !status.IsOK() {
			return false, driverErr(op, status)
		}
		return dcd == driver.DCDOn, nil
	})
}

// SetPttType selects how PTT is keyed ("RIG", "DTR", "RTS", ...).
func (r *Rig) SetPttType(ctx context.Context, pttType string) error {
	const op = "set_ptt_type"
	t, err := token.PTTTypes.Encode(pttType)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetPTTType(t))
	})
}

// GetPttType reads the configured PTT keying method.
func (r *Rig) GetPttType(ctx context.Context) (string, error) {
	const op = "get_ptt_type"
	return dispatch(ctx, r, op, func() (string, error) {
		t, status := r.drv.GetPTTType()
		if !status.IsOK() {
			return "", driverErr(op, status)
		}
		return token.PTTTypes.Decode(t), nil
	})
}

// SetDcdType selects how squelch state is sensed ("RIG", "DSR", "CTS", ...).
func (r *Rig) SetDcdType(ctx context.Context, dcdType string) error {
	const op = "set_dcd_type"
	t, err := token.DCDTypes.Encode(dcdType)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetDCDType(t))
	})
}

// GetDcdType reads the configured squelch sensing method.
func (r *Rig) GetDcdType(ctx context.Context) (string, error) {
	const op = "get_dcd_type"
	return dispatch(ctx, r, op, func() (string, error) {
		t, status := r.drv.GetDCDType()
		if !status.IsOK() {
			return "", driverErr(op, status)
		}
		return token.DCDTypes.Decode(t), nil
	})
}
