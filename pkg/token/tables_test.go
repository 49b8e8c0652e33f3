package token

import (
	"testing"

	"github.com/boybook/hamlib-go/pkg/driver"
)

func TestVFOTableRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		code driver.VFO
	}{
		{"VFO-A", driver.VFOA},
		{"VFO-B", driver.VFOB},
		{"MEM", driver.VFOMem},
		{"currVFO", driver.VFOCurr},
	}

	for _, tt := range tests {
		code, err := VFOs.Encode(tt.name)
		if err != nil {
			t.Errorf("Encode(%s) returned error: %v", tt.name, err)
			continue
		}
		if code != tt.code {
			t.Errorf("Encode(%s) = %v, want %v", tt.name, code, tt.code)
		}
		if got := VFOs.Decode(tt.code); got != tt.name {
			t.Errorf("Decode(%v) = %q, want %q", tt.code, got, tt.name)
		}
	}
}

func TestModeTableRoundTrip(t *testing.T) {
	for _, e := range Modes.Entries() {
		code, err := Modes.Encode(e.Name)
		if err != nil {
			t.Errorf("Encode(%s) returned error: %v", e.Name, err)
			continue
		}
		if got := Modes.Decode(code); got != e.Name {
			t.Errorf("round trip of %s gave %q", e.Name, got)
		}
	}
}

func TestLevelKindDefaults(t *testing.T) {
	tests := []struct {
		level driver.Level
		want  ValueKind
	}{
		{driver.LevelAF, KindFraction},
		{driver.LevelRFPower, KindFraction},
		{driver.LevelSWR, KindFloat},
		{driver.LevelAtt, KindInt},
		{driver.LevelKeySpeed, KindInt},
		{driver.LevelStrength, KindInt},
	}

	for _, tt := range tests {
		if got := LevelKind(tt.level); got != tt.want {
			t.Errorf("LevelKind(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParmKind(t *testing.T) {
	if got := ParmKind(driver.ParmBacklight); got != KindFraction {
		t.Errorf("ParmKind(BACKLIGHT) = %v, want KindFraction", got)
	}
	if got := ParmKind(driver.ParmBeep); got != KindInt {
		t.Errorf("ParmKind(BEEP) = %v, want KindInt", got)
	}
}

func TestRptShiftNames(t *testing.T) {
	for _, name := range []string{"NONE", "-", "+"} {
		if !RptShifts.Has(name) {
			t.Errorf("RptShifts missing %q", name)
		}
	}
}

func TestPowerStateCodes(t *testing.T) {
	tests := []struct {
		name string
		code driver.PowerState
	}{
		{"OFF", driver.PowerOff},
		{"ON", driver.PowerOn},
		{"STANDBY", driver.PowerStandby},
		{"OPERATE", driver.PowerOperate},
	}
	for _, tt := range tests {
		code, err := PowerStates.Encode(tt.name)
		if err != nil || code != tt.code {
			t.Errorf("Encode(%s) = %v, %v, want %v, nil", tt.name, code, err, tt.code)
		}
	}
}

func TestValidateSerialConfig(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{SerialSpeed, "38400", false},
		{SerialSpeed, "0", true},
		{SerialSpeed, "fast", true},
		{SerialDataBits, "8", false},
		{SerialDataBits, "4", true},
		{SerialStopBits, "2", false},
		{SerialParity, "None", false},
		{SerialParity, "none", true},
		{SerialHandshake, "XONXOFF", false},
		{SerialRTSState, "Unset", false},
		{SerialDTRState, "MAYBE", true},
		{ConfTimeout, "500", false},
		{ConfRetry, "-1", true},
		{"bogus_key", "1", true},
	}

	for _, tt := range tests {
		err := ValidateSerialConfig(tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateSerialConfig(%s, %s) error = %v, wantErr %v",
				tt.key, tt.value, err, tt.wantErr)
		}
	}
}

func TestSerialConfigKeysAndValues(t *testing.T) {
	keys := SerialConfigKeys()
	if len(keys) == 0 {
		t.Fatal("SerialConfigKeys() is empty")
	}
	if keys[0] != SerialSpeed {
		t.Errorf("first key = %q, want %q", keys[0], SerialSpeed)
	}

	if values := SerialConfigValues(SerialParity); len(values) != 5 {
		t.Errorf("SerialConfigValues(serial_parity) has %d values, want 5", len(values))
	}
	if values := SerialConfigValues(SerialSpeed); values != nil {
		t.Errorf("SerialConfigValues(serial_speed) = %v, want nil for numeric key", values)
	}
}
