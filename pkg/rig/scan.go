package rig

import (
	"context"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// StartScan starts a scan of the given type ("MEM", "VFO", "PROG", ...).
// The channel argument carries the scan parameter where the type needs one
// and is ignored otherwise.
func (r *Rig) StartScan(ctx context.Context, scanType string, channel int, vfo ...string) error {
	const op = "scan"
	scan, err := token.Scans.Encode(scanType)
	if err != nil {
		return err
	}
	if scan == driver.ScanStop {
		return &ArgsError{Op: op, Reason: "use StopScan to stop a scan"}
	}
	if err := validateNonNegative(op, "channel", channel); err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.StartScan(v, scan, channel))
	})
}

// StopScan stops a running scan.
func (r *Rig) StopScan(ctx context.Context, vfo ...string) error {
	const op = "stop_scan"
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.StopScan(v))
	})
}
