package rig

import (
	"context"
	"fmt"
	"strings"
)

const dtmfDigits = "0123456789ABCD*#"

// SendDtmf transmits a DTMF digit sequence. Digits 0-9, A-D, * and # are
// accepted.
func (r *Rig) SendDtmf(ctx context.Context, digits string, vfo ...string) error {
	const op = "send_dtmf"
	if digits == "" {
		return &ArgsError{Op: op, Reason: "digit sequence is empty"}
	}
	for _, c := range digits {
		if !strings.ContainsRune(dtmfDigits, c) {
			return &ArgsError{Op: op, Reason: fmt.Sprintf("invalid DTMF digit %q", c)}
		}
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SendDTMF(v, digits))
	})
}

// ReceiveDtmf reads up to maxLen received DTMF digits.
func (r *Rig) ReceiveDtmf(ctx context.Context, maxLen int, vfo ...string) (string, error) {
	const op = "recv_dtmf"
	if maxLen <= 0 {
		return "", &ArgsError{Op: op, Reason: "max length must be positive"}
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return "", err
	}
	return dispatch(ctx, r, op, func() (string, error) {
		digits, status := r.drv.RecvDTMF(v, maxLen)
		if !status.IsOK() {
			return "", driverErr(op, status)
		}
		return digits, nil
	})
}

// SendMorse queues a message for CW keying.
func (r *Rig) SendMorse(ctx context.Context, message string, vfo ...string) error {
	const op = "send_morse"
	if message == "" {
		return &ArgsError{Op: op, Reason: "message is empty"}
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SendMorse(v, message))
	})
}

// StopMorse aborts CW keying in progress.
func (r *Rig) StopMorse(ctx context.Context, vfo ...string) error {
	const op = "stop_morse"
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.StopMorse(v))
	})
}

// WaitMorse blocks until queued CW keying has finished.
func (r *Rig) WaitMorse(ctx context.Context, vfo ...string) error {
	const op = "wait_morse"
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.WaitMorse(v))
	})
}

// SendVoiceMem plays a stored voice memory by number.
func (r *Rig) SendVoiceMem(ctx context.Context, ch int, vfo ...string) error {
	const op = "send_voice_mem"
	if err := validateNonNegative(op, "memory number", ch); err != nil {
		return err
	}
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SendVoiceMem(v, ch))
	})
}

// StopVoiceMem stops voice memory playback.
func (r *Rig) StopVoiceMem(ctx context.Context, vfo ...string) error {
	const op = "stop_voice_mem"
	v, err := optVFO(op, vfo)
	if err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.StopVoiceMem(v))
	})
}
