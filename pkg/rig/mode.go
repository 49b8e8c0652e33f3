package rig

import (
	"context"
	"fmt"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// ModeInfo is a decoded operating mode with its passband width in Hz.
type ModeInfo struct {
	Mode  string `json:"mode"`
	Width int64  `json:"width"`
}

// SetMode sets the operating mode of the given VFO (or the current one).
// The bandwidth is "" for the mode's default passband, "narrow" or "wide"
// for the model's filter presets, or a width in Hz.
func (r *Rig) SetMode(ctx context.Context, mode, bandwidth string, vfo ...string) error {
	const op = "set_mode"
	m, err := token.Modes.Encode(mode)
	if err != nil {
		return err
	}
	width, err := r.resolvePassband(op, bandwidth, m)
	if err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetMode(v, m, width))
	})
}

// GetMode reads the operating mode and passband width of the given VFO
// (or the current one).
func (r *Rig) GetMode(ctx context.Context, vfo ...string) (ModeInfo, error) {
	const op = "get_mode"
	v, err := optVFO(op, vfo)
	if err != nil {
		return ModeInfo{}, err
	}
	return dispatch(ctx, r, op, func() (ModeInfo, error) {
		m, width, status := r.drv.GetMode(v)
		if !status.IsOK() {
			return ModeInfo{}, driverErr(op, status)
		}
		return ModeInfo{Mode: decodeMode(m), Width: int64(width)}, nil
	})
}

// decodeMode names a mode code, falling back to its numeric form for codes
// absent from the symbol table.
func decodeMode(m driver.Mode) string {
	if name := token.Modes.Decode(m); name != "" {
		return name
	}
	return fmt.Sprintf("MODE(0x%x)", int64(m))
}
