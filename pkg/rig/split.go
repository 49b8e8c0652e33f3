package rig

import (
	"context"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// SplitInfo is the decoded split operation state.
type SplitInfo struct {
	Enabled bool   `json:"enabled"`
	TxVFO   string `json:"txVfo"`
}

// SetSplit enables or disables split operation. The transmit VFO defaults
// to "VFO-B" when enabling and may be overridden by name.
func (r *Rig) SetSplit(ctx context.Context, enabled bool, txVFO ...string) error {
	const op = "set_split_vfo"
	tx := driver.VFOB
	switch len(txVFO) {
	case 0:
	case 1:
		var err error
		tx, err = token.VFOs.Encode(txVFO[0])
		if err != nil {
			return err
		}
	default:
		return &ArgsError{Op: op, Reason: "at most one TX VFO may be given"}
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetSplitVFO(driver.VFOCurr, enabled, tx))
	})
}

// GetSplit reads the split state and the transmit VFO. The transmit VFO is
// reported as "VFO-A" when the rig answers with VFO A and "VFO-B" in every
// other case.
func (r *Rig) GetSplit(ctx context.Context) (SplitInfo, error) {
	const op = "get_split_vfo"
	return dispatch(ctx, r, op, func() (SplitInfo, error) {
		enabled, tx, status := r.drv.GetSplitVFO(driver.VFOCurr)
		if !status.IsOK() {
			return SplitInfo{}, driverErr(op, status)
		}
		name := "VFO-B"
		if tx == driver.VFOA {
			name = "VFO-A"
		}
		return SplitInfo{Enabled: enabled, TxVFO: name}, nil
	})
}

// SetSplitFrequency sets the transmit frequency used in split operation.
func (r *Rig) SetSplitFrequency(ctx context.Context, hz int64) error {
	const op = "set_split_freq"
	if err := validateFreq(op, hz); err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetSplitFreq(driver.VFOCurr, driver.Freq(hz)))
	})
}

// GetSplitFrequency reads the transmit frequency used in split operation.
func (r *Rig) GetSplitFrequency(ctx context.Context) (int64, error) {
	const op = "get_split_freq"
	return dispatch(ctx, r, op, func() (int64, error) {
		f, status := r.drv.GetSplitFreq(driver.VFOCurr)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return int64(f), nil
	})
}

// SetSplitMode sets the transmit mode used in split operation. The
// bandwidth argument follows the same rules as SetMode.
func (r *Rig) SetSplitMode(ctx context.Context, mode, bandwidth string) error {
	const op = "set_split_mode"
	m, err := token.Modes.Encode(mode)
	if err != nil {
		return err
	}
	width, err := r.resolvePassband(op, bandwidth, m)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetSplitMode(driver.VFOCurr, m, width))
	})
}

// GetSplitMode reads the transmit mode and passband used in split operation.
func (r *Rig) GetSplitMode(ctx context.Context) (ModeInfo, error) {
	const op = "get_split_mode"
	return dispatch(ctx, r, op, func() (ModeInfo, error) {
		m, width, status := r.drv.GetSplitMode(driver.VFOCurr)
		if !status.IsOK() {
			return ModeInfo{}, driverErr(op, status)
		}
		return ModeInfo{Mode: decodeMode(m), Width: int64(width)}, nil
	})
}
