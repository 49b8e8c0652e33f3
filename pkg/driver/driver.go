package driver

import (
	"time"
)

// PortType distinguishes how a rig is reached.
type PortType int

const (
	// PortSerial is a local serial device path.
	PortSerial PortType = iota

	// PortNetwork is a host:port address of a network control daemon.
	PortNetwork
)

// String returns the port type name.
func (p PortType) String() string {
	switch p {
	case PortSerial:
		return "SERIAL"
	case PortNetwork:
		return "NETWORK"
	default:
		return "UNKNOWN"
	}
}

// Port describes how to reach the device. It is immutable after the driver
// is constructed except for the tunables, which may be adjusted through
// Conf entries before Open.
type Port struct {
	// Type selects serial or network addressing.
	Type PortType

	// Address is the device path or host:port string.
	Address string

	// Timeout bounds a single device I/O exchange.
	Timeout time.Duration

	// Retry is the number of driver-internal retries per exchange.
	Retry int

	// WriteDelay is the inter-byte write delay.
	WriteDelay time.Duration

	// PostWriteDelay is the delay after each command write.
	PostWriteDelay time.Duration
}

// DefaultPort returns port settings suitable for most serial rigs.
func DefaultPort(typ PortType, address string) Port {
	return Port{
		Type:    typ,
		Address: address,
		Timeout: 500 * time.Millisecond,
		Retry:   3,
	}
}

// Driver is the synchronous, blocking call surface of a rig backend.
//
// Every call may take up to the port timeout (times retries) to complete.
// Outputs are only meaningful when the returned Status is StatusOK. Drivers
// are not required to be goroutine safe; the rig layer guarantees at most
// one in-flight call per driver.
type Driver interface {
	// Caps returns the static capability descriptor. Valid in any state.
	Caps() *Caps

	// Open establishes the device session.
	Open() Status

	// Close ends the device session. The driver may be reopened.
	Close() Status

	// Cleanup releases all backend resources. The driver is unusable after.
	Cleanup() Status

	// SetConf sets a configuration token (serial params, ptt_type, ...).
	SetConf(key, value string) Status

	// GetConf reads a configuration token.
	GetConf(key string) (string, Status)

	SetFreq(vfo VFO, freq Freq) Status
	GetFreq(vfo VFO) (Freq, Status)

	SetMode(vfo VFO, mode Mode, width Passband) Status
	GetMode(vfo VFO) (Mode, Passband, Status)

	SetVFO(vfo VFO) Status
	GetVFO() (VFO, Status)

	SetPTT(vfo VFO, ptt PTT) Status
	GetPTT(vfo VFO) (PTT, Status)
	GetDCD(vfo VFO) (DCD, Status)

	SetPTTType(t PTTType) Status
	GetPTTType() (PTTType, Status)
	SetDCDType(t DCDType) Status
	GetDCDType() (DCDType, Status)

	GetStrength(vfo VFO) (int, Status)

	SetLevel(vfo VFO, level Level, val Value) Status
	GetLevel(vfo VFO, level Level) (Value, Status)

	SetFunc(vfo VFO, fn Func, on bool) Status
	GetFunc(vfo VFO, fn Func) (bool, Status)

	SetParm(parm Parm, val Value) Status
	GetParm(parm Parm) (Value, Status)

	SetMem(vfo VFO, ch int) Status
	GetMem(vfo VFO) (int, Status)
	GetChannel(ch int, readOnly bool) (Channel, Status)

	SetRit(vfo VFO, offset Freq) Status
	GetRit(vfo VFO) (Freq, Status)
	SetXit(vfo VFO, offset Freq) Status
	GetXit(vfo VFO) (Freq, Status)

	StartScan(vfo VFO, scan Scan, ch int) Status
	StopScan(vfo VFO) Status

	SetSplitVFO(vfo VFO, split bool, txVFO VFO) Status
	GetSplitVFO(vfo VFO) (bool, VFO, Status)
	SetSplitFreq(vfo VFO, txFreq Freq) Status
	GetSplitFreq(vfo VFO) (Freq, Status)
	SetSplitMode(vfo VFO, mode Mode, width Passband) Status
	GetSplitMode(vfo VFO) (Mode, Passband, Status)

	VFOOp(vfo VFO, op VFOOp) Status

	SetAnt(vfo VFO, ant int) Status
	GetAnt(vfo VFO) (int, Status)

	SetPowerState(state PowerState) Status
	GetPowerState() (PowerState, Status)

	SetTuningStep(vfo VFO, step Freq) Status
	GetTuningStep(vfo VFO) (Freq, Status)

	SetRptShift(vfo VFO, shift RptShift) Status
	GetRptShift(vfo VFO) (RptShift, Status)
	SetRptOffset(vfo VFO, offset Freq) Status
	GetRptOffset(vfo VFO) (Freq, Status)

	SetCTCSSTone(vfo VFO, tone int) Status
	GetCTCSSTone(vfo VFO) (int, Status)
	SetDCSCode(vfo VFO, code int) Status
	GetDCSCode(vfo VFO) (int, Status)
	SetCTCSSSql(vfo VFO, tone int) Status
	GetCTCSSSql(vfo VFO) (int, Status)
	SetDCSSql(vfo VFO, code int) Status
	GetDCSSql(vfo VFO) (int, Status)

	SendDTMF(vfo VFO, digits string) Status
	RecvDTMF(vfo VFO, maxLen int) (string, Status)

	SendMorse(vfo VFO, msg string) Status
	StopMorse(vfo VFO) Status
	WaitMorse(vfo VFO) Status

	SendVoiceMem(vfo VFO, ch int) Status
	StopVoiceMem(vfo VFO) Status

	Power2mW(power float64, freq Freq, mode Mode) (int, Status)
	MW2Power(mw int, freq Freq, mode Mode) (float64, Status)

	Reset(reset Reset) Status
}
