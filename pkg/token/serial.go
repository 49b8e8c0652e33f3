package token

import (
	"fmt"
	"strconv"
)

// Serial configuration keys accepted by SetSerialConfig. Enumerated keys
// constrain their values to a closed token set; numeric keys are validated
// by range.
const (
	SerialSpeed     = "serial_speed"
	SerialDataBits  = "data_bits"
	SerialStopBits  = "stop_bits"
	SerialParity    = "serial_parity"
	SerialHandshake = "serial_handshake"
	SerialRTSState  = "rts_state"
	SerialDTRState  = "dtr_state"
	ConfTimeout     = "timeout"
	ConfRetry       = "retry"
	ConfWriteDelay  = "write_delay"
	ConfPostWriteDelay = "post_write_delay"
)

// serialParm describes one configuration key: either a closed value set or
// a numeric range check.
type serialParm struct {
	key    string
	values []string
	check  func(int) bool
}

// serialParms is the ordered table of configuration keys.
var serialParms = []serialParm{
	{key: SerialSpeed, check: func(v int) bool { return v > 0 }},
	{key: SerialDataBits, check: func(v int) bool { return v >= 5 && v <= 8 }},
	{key: SerialStopBits, check: func(v int) bool { return v >= 0 && v <= 3 }},
	{key: SerialParity, values: []string{"None", "Odd", "Even", "Mark", "Space"}},
	{key: SerialHandshake, values: []string{"None", "XONXOFF", "Hardware"}},
	{key: SerialRTSState, values: []string{"Unset", "ON", "OFF"}},
	{key: SerialDTRState, values: []string{"Unset", "ON", "OFF"}},
	{key: ConfTimeout, check: func(v int) bool { return v >= 0 }},
	{key: ConfRetry, check: func(v int) bool { return v >= 0 }},
	{key: ConfWriteDelay, check: func(v int) bool { return v >= 0 }},
	{key: ConfPostWriteDelay, check: func(v int) bool { return v >= 0 }},
}

// SerialConfigKeys returns the supported configuration keys in table order.
func SerialConfigKeys() []string {
	keys := make([]string, len(serialParms))
	for i, p := range serialParms {
		keys[i] = p.key
	}
	return keys
}

// SerialConfigValues returns the closed value set of an enumerated key, or
// nil for numeric keys and unknown keys.
func SerialConfigValues(key string) []string {
	for _, p := range serialParms {
		if p.key == key {
			return p.values
		}
	}
	return nil
}

// ValidateSerialConfig checks a key/value pair against the table. Unknown
// keys and out-of-domain values return an UnknownError or a range error.
func ValidateSerialConfig(key, value string) error {
	for _, p := range serialParms {
		if p.key != key {
			continue
		}
		if p.values != nil {
			for _, v := range p.values {
				if v == value {
					return nil
				}
			}
			return &UnknownError{Domain: key, Name: value}
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: value %q is not an integer", key, value)
		}
		if !p.check(n) {
			return fmt.Errorf("%s: value %d out of range", key, n)
		}
		return nil
	}
	return &UnknownError{Domain: "serial config", Name: key}
}
