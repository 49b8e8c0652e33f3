package rig

import (
	"context"
	"fmt"

	"github.com/boybook/hamlib-go/pkg/token"
)

// SetSerialConfig sets a serial port parameter ("serial_speed", "data_bits",
// "stop_bits", "serial_parity", "serial_handshake", "rts_state",
// "dtr_state") or a communication tunable ("timeout", "retry",
// "write_delay", "post_write_delay"). Key and value are validated before
// dispatch.
func (r *Rig) SetSerialConfig(ctx context.Context, key, value string) error {
	const op = "set_conf"
	if err := token.ValidateSerialConfig(key, value); err != nil {
		return &ArgsError{Op: op, Reason: err.Error()}
	}
	return dispatchVoid(ctx, r, op, func() error {
		return checkStatus(op, r.drv.SetConf(key, value))
	})
}

// GetSerialConfig reads a serial port parameter or communication tunable.
func (r *Rig) GetSerialConfig(ctx context.Context, key string) (string, error) {
	const op = "get_conf"
	if !supportedSerialKey(key) {
		return "", &ArgsError{Op: op, Reason: fmt.Sprintf("unknown config key %q", key)}
	}
	return dispatch(ctx, r, op, func() (string, error) {
		value, status := r.drv.GetConf(key)
		if !status.IsOK() {
			return "", driverErr(op, status)
		}
		return value, nil
	})
}

// SupportedSerialConfig lists the accepted config keys with their accepted
// values. Keys that take free-form numbers map to an empty list.
func (r *Rig) SupportedSerialConfig() map[string][]string {
	out := make(map[string][]string)
	for _, key := range token.SerialConfigKeys() {
		out[key] = token.SerialConfigValues(key)
	}
	return out
}

func supportedSerialKey(key string) bool {
	for _, k := range token.SerialConfigKeys() {
		if k == key {
			return true
		}
	}
	return false
}
