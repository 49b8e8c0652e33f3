package rig

import (
	"context"
	"fmt"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// SetVFO selects the active VFO by symbolic name ("VFO-A", "VFO-B", "MEM", ...).
func (r *Rig) SetVFO(ctx context.Context, vfo string) error {
	const op = "set_vfo"
	v, err := token.VFOs.Encode(vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetVFO(v))
	})
}

// GetVFO reads the currently selected VFO's symbolic name.
func (r *Rig) GetVFO(ctx context.Context) (string, error) {
	const op = "get_vfo"
	return dispatch(ctx, r, op, func() (string, error) {
		v, status := r.drv.GetVFO()
		if !status.IsOK() {
			return "", driverErr(op, status)
		}
		return decodeVFO(v), nil
	})
}

// VFOOperation performs a VFO operation ("CPY", "XCHG", "UP", "DOWN", ...)
// on the given VFO (or the current one).
func (r *Rig) VFOOperation(ctx context.Context, opName string, vfo ...string) error {
	const op = "vfo_op"
	vop, err := token.VFOOps.Encode(opName)
	if err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.VFOOp(v, vop))
	})
}

// decodeVFO names a VFO code, falling back to its numeric form for codes
// absent from the symbol table.
func decodeVFO(v driver.VFO) string {
	if name := token.VFOs.Decode(v); name != "" {
		return name
	}
	return fmt.Sprintf("VFO(0x%x)", int64(v))
}
