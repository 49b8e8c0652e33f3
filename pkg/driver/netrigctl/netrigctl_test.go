package netrigctl

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/boybook/hamlib-go/internal/rigctld"
	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/rig"

	_ "github.com/boybook/hamlib-go/pkg/driver/simrig"
)

func TestParseRPRT(t *testing.T) {
	tests := []struct {
		line     string
		wantCode driver.Status
		wantOK   bool
	}{
		{"RPRT 0", driver.StatusOK, true},
		{"RPRT -1", driver.StatusInvalidParam, true},
		{"RPRT -11", driver.StatusNotAvailable, true},
		{"RPRT x", driver.StatusProtocol, true},
		{"14250000", driver.StatusOK, false},
		{"", driver.StatusOK, false},
	}

	for _, tt := range tests {
		code, ok := parseRPRT(tt.line)
		if ok != tt.wantOK || code != tt.wantCode {
			t.Errorf("parseRPRT(%q) = %v, %v, want %v, %v",
				tt.line, code, ok, tt.wantCode, tt.wantOK)
		}
	}
}

func TestNetCapsIsPermissive(t *testing.T) {
	c := netCaps()

	if c.Modes&driver.ModeUSB == 0 || c.Modes&driver.ModeC4FM == 0 {
		t.Error("mode mask misses table entries")
	}
	if c.HasGetLevel&driver.LevelStrength == 0 || c.HasSetLevel&driver.LevelAF == 0 {
		t.Error("level masks miss table entries")
	}
	if c.MemMax != 999 {
		t.Errorf("MemMax = %d, want 999", c.MemMax)
	}
}

// scriptedServer answers each received line with the next canned reply.
func scriptedServer(t *testing.T, replies []string) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		rd := bufio.NewReader(conn)
		for _, reply := range replies {
			if _, err := rd.ReadString('\n'); err != nil {
				return
			}
			fmt.Fprint(conn, reply)
		}
		// Drain until the client hangs up.
		for {
			if _, err := rd.ReadString('\n'); err != nil {
				return
			}
		}
	}()
	return ln.Addr().String()
}

func dialScripted(t *testing.T, addr string) *Rig {
	t.Helper()
	r := &Rig{port: driver.DefaultPort(driver.PortNetwork, addr), caps: netCaps()}
	if status := r.Open(); !status.IsOK() {
		t.Fatalf("Open = %v", status)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestExchangeValueLines(t *testing.T) {
	addr := scriptedServer(t, []string{
		"14250000\n",
		"USB\n2400\n",
		"RPRT 0\n",
		"RPRT -9\n",
	})
	r := dialScripted(t, addr)

	freq, status := r.GetFreq(driver.VFOCurr)
	if !status.IsOK() || freq != 14_250_000 {
		t.Errorf("GetFreq = %v, %v", freq, status)
	}

	mode, width, status := r.GetMode(driver.VFOCurr)
	if !status.IsOK() || mode != driver.ModeUSB || width != 2400 {
		t.Errorf("GetMode = %v, %v, %v", mode, width, status)
	}

	if status := r.SetFreq(driver.VFOCurr, 7_074_000); !status.IsOK() {
		t.Errorf("SetFreq = %v", status)
	}
	if status := r.SetFreq(driver.VFOCurr, 7_074_000); status != driver.StatusRejected {
		t.Errorf("SetFreq = %v, want rejected", status)
	}
}

func TestExchangeRPRTInPlaceOfValue(t *testing.T) {
	// A query answered with an error line carries the remote status.
	addr := scriptedServer(t, []string{"RPRT -11\n"})
	r := dialScripted(t, addr)

	_, status := r.GetFreq(driver.VFOCurr)
	if status != driver.StatusNotAvailable {
		t.Errorf("GetFreq = %v, want not available", status)
	}
}

func TestExchangeProtocolErrors(t *testing.T) {
	// A value line where a result line was expected, and garbage where a
	// number was expected.
	addr := scriptedServer(t, []string{"14250000\n", "not-a-number\n"})
	r := dialScripted(t, addr)

	if status := r.SetFreq(driver.VFOCurr, 14_000_000); status != driver.StatusProtocol {
		t.Errorf("SetFreq = %v, want protocol error", status)
	}
	if _, status := r.GetFreq(driver.VFOCurr); status != driver.StatusProtocol {
		t.Errorf("GetFreq = %v, want protocol error", status)
	}
}

func TestCallsWithoutOpenFail(t *testing.T) {
	r := &Rig{port: driver.DefaultPort(driver.PortNetwork, "127.0.0.1:1"), caps: netCaps()}
	if _, status := r.GetFreq(driver.VFOCurr); status != driver.StatusIO {
		t.Errorf("GetFreq before Open = %v, want IO error", status)
	}
	// Close before Open is a no-op.
	if status := r.Close(); !status.IsOK() {
		t.Errorf("Close = %v", status)
	}
}

func TestEndToEndAgainstDaemon(t *testing.T) {
	backend, err := rig.New(driver.ModelDummy, "/dev/null")
	if err != nil {
		t.Fatalf("rig.New failed: %v", err)
	}
	if err := backend.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { backend.Destroy(context.Background()) })

	srv := rigctld.NewServer(backend, rigctld.Config{Address: "127.0.0.1:0"})
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("server start failed: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })

	r := dialScripted(t, srv.Addr().String())

	if status := r.SetFreq(driver.VFOCurr, 21_200_000); !status.IsOK() {
		t.Fatalf("SetFreq = %v", status)
	}
	freq, status := r.GetFreq(driver.VFOCurr)
	if !status.IsOK() || freq != 21_200_000 {
		t.Errorf("GetFreq = %v, %v", freq, status)
	}

	if status := r.SetMode(driver.VFOCurr, driver.ModeCW, 500); !status.IsOK() {
		t.Fatalf("SetMode = %v", status)
	}
	mode, width, status := r.GetMode(driver.VFOCurr)
	if !status.IsOK() || mode != driver.ModeCW || width != 500 {
		t.Errorf("GetMode = %v, %v, %v", mode, width, status)
	}

	if status := r.SetSplitVFO(driver.VFOCurr, true, driver.VFOB); !status.IsOK() {
		t.Fatalf("SetSplitVFO = %v", status)
	}
	split, tx, status := r.GetSplitVFO(driver.VFOCurr)
	if !status.IsOK() || !split || tx != driver.VFOB {
		t.Errorf("GetSplitVFO = %v, %v, %v", split, tx, status)
	}

	if status := r.SetPowerState(driver.PowerStandby); !status.IsOK() {
		t.Fatalf("SetPowerState = %v", status)
	}
	state, status := r.GetPowerState()
	if !status.IsOK() || state != driver.PowerStandby {
		t.Errorf("GetPowerState = %v, %v", state, status)
	}

	// An out-of-range frequency is rejected remotely with the invalid
	// parameter code.
	if status := r.SetFreq(driver.VFOCurr, 10); status != driver.StatusInvalidParam {
		t.Errorf("SetFreq(10) = %v, want invalid param", status)
	}
}
