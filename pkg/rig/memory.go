package rig

import (
	"context"
	"fmt"

	"github.com/boybook/hamlib-go/pkg/driver"
)

// MemoryChannel is the decoded contents of one memory channel.
type MemoryChannel struct {
	Number      int    `json:"channelNumber"`
	Frequency   int64  `json:"frequency"`
	Mode        string `json:"mode"`
	Width       int64  `json:"width"`
	TXFrequency int64  `json:"txFrequency,omitempty"`
	Split       bool   `json:"split"`
	Name        string `json:"name,omitempty"`
}

// validateChannel checks a channel number against the model's memory range.
func (r *Rig) validateChannel(op string, ch int) error {
	c, err := r.Caps()
	if err != nil {
		return err
	}
	if ch < c.MemMin || ch > c.MemMax {
		return &ArgsError{
			Op:     op,
			Reason: fmt.Sprintf("channel %d outside [%d, %d]", ch, c.MemMin, c.MemMax),
		}
	}
	return nil
}

// SetMemoryChannel sets the active memory channel number.
func (r *Rig) SetMemoryChannel(ctx context.Context, ch int) error {
	const op = "set_mem"
	if err := r.validateChannel(op, ch); err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetMem(driver.VFOCurr, ch))
	})
}

// GetMemoryChannelNumber reads the active memory channel number.
func (r *Rig) GetMemoryChannelNumber(ctx context.Context) (int, error) {
	const op = "get_mem"
	return dispatch(ctx, r, op, func() (int, error) {
		ch, status := r.drv.GetMem(driver.VFOCurr)
		if !status.IsOK() {
			return 0, driverErr(op, status)
		}
		return ch, nil
	})
}

// GetMemoryChannel reads the contents of a memory channel. With readOnly
// false the rig may switch to the channel to read it.
func (r *Rig) GetMemoryChannel(ctx context.Context, ch int, readOnly bool) (MemoryChannel, error) {
	const op = "get_channel"
	if err := r.validateChannel(op, ch); err != nil {
		return MemoryChannel{}, err
	}
	return dispatch(ctx, r, op, func() (MemoryChannel, error) {
		data, status := r.drv.GetChannel(ch, readOnly)
		if !status.IsOK() {
			return MemoryChannel{}, driverErr(op, status)
		}
		return MemoryChannel{
			Number:      data.Number,
			Frequency:   int64(data.Freq),
			Mode:        decodeMode(data.Mode),
			Width:       int64(data.Width),
			TXFrequency: int64(data.TXFreq),
			Split:       data.Split,
			Name:        data.Name,
		}, nil
	})
}

// SelectMemoryChannel switches the rig into memory mode on the given
// channel. The mode switch and the channel selection run as one unit of
// work, so no other call can interleave between them.
func (r *Rig) SelectMemoryChannel(ctx context.Context, ch int) error {
	const op = "select_mem"
	if err := r.validateChannel(op, ch); err != nil {
		return err
	}
	return dispatchVoid(ctx, r, op, func() error {
		if status := r.drv.SetVFO(driver.VFOMem); !status.IsOK() {
			return driverErr(op, status)
		}
		return checkStatus(op, r.drv.SetMem(driver.VFOMem, ch))
	})
}
