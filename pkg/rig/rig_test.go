package rig_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/rig"

	_ "github.com/boybook/hamlib-go/pkg/driver/netrigctl"
	_ "github.com/boybook/hamlib-go/pkg/driver/simrig"
)

func newTestRig(t *testing.T) *rig.Rig {
	t.Helper()
	r, err := rig.New(driver.ModelDummy, "/dev/null")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		r.Destroy(ctx)
	})
	return r
}

func openTestRig(t *testing.T) *rig.Rig {
	t.Helper()
	r := newTestRig(t)
	if err := r.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return r
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  rig.Config
	}{
		{"negative timeout", rig.Config{Model: driver.ModelDummy, Timeout: -time.Second}},
		{"negative retry", rig.Config{Model: driver.ModelDummy, Retry: -1}},
		{"negative write delay", rig.Config{Model: driver.ModelDummy, WriteDelay: -time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rig.NewWithConfig(tt.cfg)
			if err == nil {
				t.Fatal("NewWithConfig should fail")
			}
			if !rig.IsArgsError(err) {
				t.Errorf("error %v is not an args error", err)
			}
		})
	}
}

func TestLifecycle(t *testing.T) {
	r := newTestRig(t)
	ctx := context.Background()

	if got := r.State(); got != rig.StateClosed {
		t.Fatalf("initial state = %v, want closed", got)
	}

	if err := r.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got := r.State(); got != rig.StateOpen {
		t.Fatalf("state after open = %v, want open", got)
	}

	if err := r.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := r.State(); got != rig.StateClosed {
		t.Fatalf("state after close = %v, want closed", got)
	}

	// Close on a closed rig is a no-op success.
	if err := r.Close(ctx); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// The session can be reopened.
	if err := r.Open(ctx); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
}

func TestOperationOnClosedRig(t *testing.T) {
	r := newTestRig(t)

	_, err := r.GetFrequency(context.Background())
	if err == nil {
		t.Fatal("GetFrequency on closed rig should fail")
	}
	if !rig.IsStateError(err) {
		t.Errorf("error %v is not a state error", err)
	}
}

func TestDestroySealsHandle(t *testing.T) {
	r, err := rig.New(driver.ModelDummy, "/dev/null")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	if err := r.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := r.Destroy(ctx); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if got := r.State(); got != rig.StateDestroyed {
		t.Fatalf("state after destroy = %v, want destroyed", got)
	}

	// Everything after destroy is rejected, including a second destroy.
	if _, err := r.GetFrequency(ctx); !rig.IsStateError(err) {
		t.Errorf("GetFrequency after destroy = %v, want state error", err)
	}
	if err := r.Open(ctx); !rig.IsStateError(err) {
		t.Errorf("Open after destroy = %v, want state error", err)
	}
	if err := r.Destroy(ctx); !rig.IsStateError(err) {
		t.Errorf("second Destroy = %v, want state error", err)
	}
	if _, err := r.Caps(); !rig.IsStateError(err) {
		t.Errorf("Caps after destroy = %v, want state error", err)
	}
}

func TestFrequencyRangeCheckedBeforeDispatch(t *testing.T) {
	// The rig stays closed: an argument error must win over the state
	// error because validation happens before anything is queued.
	r := newTestRig(t)

	tests := []int64{0, 999, -1, 10_000_000_001}
	for _, hz := range tests {
		err := r.SetFrequency(context.Background(), hz)
		if !rig.IsArgsError(err) {
			t.Errorf("SetFrequency(%d) = %v, want args error", hz, err)
		}
	}
}

func TestFrequencyRoundTrip(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	if err := r.SetFrequency(ctx, 7_074_000); err != nil {
		t.Fatalf("SetFrequency failed: %v", err)
	}
	hz, err := r.GetFrequency(ctx)
	if err != nil {
		t.Fatalf("GetFrequency failed: %v", err)
	}
	if hz != 7_074_000 {
		t.Errorf("GetFrequency = %d, want 7074000", hz)
	}

	// Per-VFO targeting.
	if err := r.SetFrequency(ctx, 14_250_000, "VFO-B"); err != nil {
		t.Fatalf("SetFrequency(VFO-B) failed: %v", err)
	}
	hzB, err := r.GetFrequency(ctx, "VFO-B")
	if err != nil {
		t.Fatalf("GetFrequency(VFO-B) failed: %v", err)
	}
	if hzB != 14_250_000 {
		t.Errorf("GetFrequency(VFO-B) = %d, want 14250000", hzB)
	}
}

func TestVFOArity(t *testing.T) {
	r := openTestRig(t)

	_, err := r.GetFrequency(context.Background(), "VFO-A", "VFO-B")
	if !rig.IsArgsError(err) {
		t.Errorf("two VFO arguments = %v, want args error", err)
	}
}

func TestUnknownTokenIsArgsError(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	if err := r.SetMode(ctx, "BOGUS", ""); !rig.IsArgsError(err) {
		t.Errorf("SetMode(BOGUS) = %v, want args error", err)
	}
	if _, err := r.GetFrequency(ctx, "VFO-Z"); !rig.IsArgsError(err) {
		t.Errorf("GetFrequency(VFO-Z) = %v, want args error", err)
	}
	if _, err := r.GetLevel(ctx, "NOSUCH"); !rig.IsArgsError(err) {
		t.Errorf("GetLevel(NOSUCH) = %v, want args error", err)
	}
}

func TestModeBandwidthResolution(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	tests := []struct {
		bandwidth string
		wantWidth int64
	}{
		{"", 2400},
		{"narrow", 1800},
		{"wide", 3000},
		{"2700", 2700},
	}

	for _, tt := range tests {
		if err := r.SetMode(ctx, "USB", tt.bandwidth); err != nil {
			t.Fatalf("SetMode(USB, %q) failed: %v", tt.bandwidth, err)
		}
		info, err := r.GetMode(ctx)
		if err != nil {
			t.Fatalf("GetMode failed: %v", err)
		}
		if info.Mode != "USB" {
			t.Errorf("mode = %q, want USB", info.Mode)
		}
		if info.Width != tt.wantWidth {
			t.Errorf("bandwidth %q: width = %d, want %d", tt.bandwidth, info.Width, tt.wantWidth)
		}
	}

	if err := r.SetMode(ctx, "USB", "medium"); !rig.IsArgsError(err) {
		t.Errorf("SetMode(USB, medium) = %v, want args error", err)
	}
	if err := r.SetMode(ctx, "USB", "-100"); !rig.IsArgsError(err) {
		t.Errorf("SetMode(USB, -100) = %v, want args error", err)
	}
}

func TestLevelFractionValidation(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	if err := r.SetLevel(ctx, "AF", 1.5); !rig.IsArgsError(err) {
		t.Errorf("SetLevel(AF, 1.5) = %v, want args error", err)
	}
	if err := r.SetLevel(ctx, "AF", -0.1); !rig.IsArgsError(err) {
		t.Errorf("SetLevel(AF, -0.1) = %v, want args error", err)
	}

	if err := r.SetLevel(ctx, "AF", 0.75); err != nil {
		t.Fatalf("SetLevel(AF, 0.75) failed: %v", err)
	}
	got, err := r.GetLevel(ctx, "AF")
	if err != nil {
		t.Fatalf("GetLevel(AF) failed: %v", err)
	}
	if got != 0.75 {
		t.Errorf("GetLevel(AF) = %g, want 0.75", got)
	}

	// Integer levels round instead of range-checking.
	if err := r.SetLevel(ctx, "AGC", 2.6); err != nil {
		t.Fatalf("SetLevel(AGC, 2.6) failed: %v", err)
	}
	agc, err := r.GetLevel(ctx, "AGC")
	if err != nil {
		t.Fatalf("GetLevel(AGC) failed: %v", err)
	}
	if agc != 3 {
		t.Errorf("GetLevel(AGC) = %g, want 3", agc)
	}
}

func TestSplitDefaultsAndQuirk(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	// Default TX VFO is VFO-B.
	if err := r.SetSplit(ctx, true); err != nil {
		t.Fatalf("SetSplit failed: %v", err)
	}
	info, err := r.GetSplit(ctx)
	if err != nil {
		t.Fatalf("GetSplit failed: %v", err)
	}
	if !info.Enabled || info.TxVFO != "VFO-B" {
		t.Errorf("GetSplit = %+v, want enabled with VFO-B", info)
	}

	if err := r.SetSplit(ctx, true, "VFO-A"); err != nil {
		t.Fatalf("SetSplit(VFO-A) failed: %v", err)
	}
	info, err = r.GetSplit(ctx)
	if err != nil {
		t.Fatalf("GetSplit failed: %v", err)
	}
	if info.TxVFO != "VFO-A" {
		t.Errorf("TxVFO = %q, want VFO-A", info.TxVFO)
	}

	if err := r.SetSplit(ctx, false); err != nil {
		t.Fatalf("SetSplit(false) failed: %v", err)
	}
	info, err = r.GetSplit(ctx)
	if err != nil {
		t.Fatalf("GetSplit failed: %v", err)
	}
	if info.Enabled {
		t.Error("split still enabled after disable")
	}
}

func TestMemoryChannelValidation(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	if err := r.SetMemoryChannel(ctx, -5); !rig.IsArgsError(err) {
		t.Errorf("SetMemoryChannel(-5) = %v, want args error", err)
	}
	if err := r.SetMemoryChannel(ctx, 1000); !rig.IsArgsError(err) {
		t.Errorf("SetMemoryChannel(1000) = %v, want args error", err)
	}

	if err := r.SetMemoryChannel(ctx, 42); err != nil {
		t.Fatalf("SetMemoryChannel(42) failed: %v", err)
	}
	ch, err := r.GetMemoryChannelNumber(ctx)
	if err != nil {
		t.Fatalf("GetMemoryChannelNumber failed: %v", err)
	}
	if ch != 42 {
		t.Errorf("channel = %d, want 42", ch)
	}
}

func TestScanStopRejected(t *testing.T) {
	r := openTestRig(t)

	err := r.StartScan(context.Background(), "STOP", 0)
	if !rig.IsArgsError(err) {
		t.Errorf("StartScan(STOP) = %v, want args error", err)
	}
}

func TestPttRoundTrip(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	on, err := r.GetPtt(ctx)
	if err != nil {
		t.Fatalf("GetPtt failed: %v", err)
	}
	if on {
		t.Fatal("PTT initially on")
	}

	if err := r.SetPtt(ctx, true); err != nil {
		t.Fatalf("SetPtt failed: %v", err)
	}
	on, err = r.GetPtt(ctx)
	if err != nil {
		t.Fatalf("GetPtt failed: %v", err)
	}
	if !on {
		t.Error("PTT still off after keying")
	}
}

func TestConnectionInfoResolution(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		wantType  string
		wantAddr  string
		wantModel int
	}{
		{"network address", "localhost:4532", "network", "localhost:4532", int(driver.ModelNetRigctl)},
		{"serial path", "/dev/ttyUSB1", "serial", "/dev/ttyUSB1", int(driver.ModelDummy)},
		{"trailing colon", "COM3:", "serial", "COM3:", int(driver.ModelDummy)},
		{"empty address", "", "serial", rig.DefaultSerialPath, int(driver.ModelDummy)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := rig.New(driver.ModelDummy, tt.address)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			defer r.Destroy(context.Background())

			info, err := r.ConnectionInfo()
			if err != nil {
				t.Fatalf("ConnectionInfo failed: %v", err)
			}
			if info.ConnectionType != tt.wantType {
				t.Errorf("type = %q, want %q", info.ConnectionType, tt.wantType)
			}
			if info.Address != tt.wantAddr {
				t.Errorf("address = %q, want %q", info.Address, tt.wantAddr)
			}
			if info.ResolvedModel != tt.wantModel {
				t.Errorf("resolved model = %d, want %d", info.ResolvedModel, tt.wantModel)
			}
			if info.RequestedModel != int(driver.ModelDummy) {
				t.Errorf("requested model = %d, want %d", info.RequestedModel, driver.ModelDummy)
			}
			if info.IsOpen {
				t.Error("IsOpen = true before Open")
			}
		})
	}
}

func TestCapabilityListings(t *testing.T) {
	r := newTestRig(t)

	modes, err := r.SupportedModes()
	if err != nil {
		t.Fatalf("SupportedModes failed: %v", err)
	}
	if len(modes) == 0 {
		t.Fatal("no modes listed")
	}

	settable, err := r.SettableLevels()
	if err != nil {
		t.Fatalf("SettableLevels failed: %v", err)
	}
	gettable, err := r.GettableLevels()
	if err != nil {
		t.Fatalf("GettableLevels failed: %v", err)
	}
	// The simulated model can read more levels than it can write.
	if len(gettable) <= len(settable) {
		t.Errorf("gettable %d <= settable %d", len(gettable), len(settable))
	}
}

func TestSerialConfig(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	if err := r.SetSerialConfig(ctx, "serial_speed", "19200"); err != nil {
		t.Fatalf("SetSerialConfig failed: %v", err)
	}
	got, err := r.GetSerialConfig(ctx, "serial_speed")
	if err != nil {
		t.Fatalf("GetSerialConfig failed: %v", err)
	}
	if got != "19200" {
		t.Errorf("serial_speed = %q, want 19200", got)
	}

	if err := r.SetSerialConfig(ctx, "serial_parity", "Sometimes"); !rig.IsArgsError(err) {
		t.Errorf("invalid parity = %v, want args error", err)
	}
	if err := r.SetSerialConfig(ctx, "no_such_key", "1"); !rig.IsArgsError(err) {
		t.Errorf("unknown key = %v, want args error", err)
	}
}

func TestPowerConversion(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	mw, err := r.Power2mW(ctx, 0.5, 14_250_000, "USB")
	if err != nil {
		t.Fatalf("Power2mW failed: %v", err)
	}
	if mw <= 0 {
		t.Errorf("Power2mW = %d, want positive", mw)
	}

	power, err := r.MW2Power(ctx, mw, 14_250_000, "USB")
	if err != nil {
		t.Fatalf("MW2Power failed: %v", err)
	}
	if power < 0.49 || power > 0.51 {
		t.Errorf("MW2Power round trip = %g, want ~0.5", power)
	}

	if _, err := r.Power2mW(ctx, 1.5, 14_250_000, "USB"); !rig.IsArgsError(err) {
		t.Errorf("Power2mW(1.5) = %v, want args error", err)
	}
}

func TestDtmfValidation(t *testing.T) {
	r := openTestRig(t)
	ctx := context.Background()

	if err := r.SendDtmf(ctx, ""); !rig.IsArgsError(err) {
		t.Errorf("empty DTMF = %v, want args error", err)
	}
	if err := r.SendDtmf(ctx, "12G4"); !rig.IsArgsError(err) {
		t.Errorf("invalid DTMF digit = %v, want args error", err)
	}
	if err := r.SendDtmf(ctx, "123*#ABCD"); err != nil {
		t.Errorf("valid DTMF failed: %v", err)
	}
}

func TestUnsupportedDetection(t *testing.T) {
	err := &rig.DriverError{Op: "get_ant", Status: driver.StatusNotImplemented}
	if !errors.Is(err, rig.ErrUnsupported) {
		t.Error("not-implemented status should unwrap to ErrUnsupported")
	}

	failed := &rig.DriverError{Op: "get_ant", Status: driver.StatusIO}
	if errors.Is(failed, rig.ErrUnsupported) {
		t.Error("IO failure must not read as unsupported")
	}
}
