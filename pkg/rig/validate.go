package rig

import (
	"fmt"
	"strconv"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// Frequency bounds accepted by the control layer, in Hz. Values outside
// this window are rejected before dispatch.
const (
	MinFrequencyHz = 1_000
	MaxFrequencyHz = 10_000_000_000
)

// optVFO resolves an optional VFO argument. No argument means the rig's
// currently selected VFO; more than one argument is a wrong-arity error.
func optVFO(op string, vfo []string) (driver.VFO, error) {
	switch len(vfo) {
	case 0:
		return driver.VFOCurr, nil
	case 1:
		return token.VFOs.Encode(vfo[0])
	default:
		return driver.VFONone, &ArgsError{Op: op, Reason: "at most one VFO may be given"}
	}
}

// validateFreq checks a frequency against the accepted window.
func validateFreq(op string, hz int64) error {
	if hz < MinFrequencyHz || hz > MaxFrequencyHz {
		return &ArgsError{
			Op:     op,
			Reason: fmt.Sprintf("frequency %d Hz outside [%d, %d]", hz, int64(MinFrequencyHz), int64(MaxFrequencyHz)),
		}
	}
	return nil
}

// validateFraction checks a float value constrained to [0.0, 1.0].
func validateFraction(op, name string, v float64) error {
	if v < 0 || v > 1 {
		return &ArgsError{Op: op, Reason: fmt.Sprintf("%s %g outside [0.0, 1.0]", name, v)}
	}
	return nil
}

// validateNonNegative checks an integer field that must not be negative.
func validateNonNegative(op, name string, v int) error {
	if v < 0 {
		return &ArgsError{Op: op, Reason: fmt.Sprintf("%s must not be negative, got %d", name, v)}
	}
	return nil
}

// resolvePassband turns a bandwidth argument into a driver passband. The
// empty string selects the default passband for the mode; "narrow" and
// "wide" resolve against the model's per-mode filter table; a decimal
// number is an explicit width in Hz.
func (r *Rig) resolvePassband(op, bandwidth string, mode driver.Mode) (driver.Passband, error) {
	switch bandwidth {
	case "":
		return driver.PassbandNormal, nil
	case "narrow":
		c, err := r.Caps()
		if err != nil {
			return 0, err
		}
		return c.PassbandNarrow(mode), nil
	case "wide":
		c, err := r.Caps()
		if err != nil {
			return 0, err
		}
		return c.PassbandWide(mode), nil
	}
	hz, err := strconv.Atoi(bandwidth)
	if err != nil || hz <= 0 {
		return 0, &ArgsError{Op: op, Reason: fmt.Sprintf("bandwidth must be \"narrow\", \"wide\" or a width in Hz, got %q", bandwidth)}
	}
	return driver.Passband(hz), nil
}
