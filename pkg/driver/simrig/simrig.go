// Package simrig provides a simulated rig backend.
//
// The simulated rig holds all state in memory and answers every driver call
// successfully by default. Tests and tools can inject per-call failures,
// add artificial latency, and inspect a journal of driver-call windows.
// Importing the package registers it as driver.ModelDummy.
package simrig

import (
	"fmt"
	"sync"
	"time"

	"github.com/boybook/hamlib-go/pkg/driver"
)

func init() {
	driver.Register(driver.ModelDummy, func(port driver.Port) driver.Driver {
		return New(port)
	})
}

// Call records one driver-call window in the journal.
type Call struct {
	Name  string
	Enter time.Time
	Exit  time.Time
}

// vfoState is the per-VFO slice of rig state.
type vfoState struct {
	freq   driver.Freq
	mode   driver.Mode
	width  driver.Passband
	rit    driver.Freq
	xit    driver.Freq
	step   driver.Freq
	ant    int
	shift  driver.RptShift
	rptOfs driver.Freq
	ctcss  int
	dcs    int
	ctcssSql int
	dcsSql   int
}

// Rig is a simulated rig. The zero value is not usable; construct with New.
type Rig struct {
	port driver.Port
	caps *driver.Caps

	mu       sync.Mutex
	opened   bool
	released bool

	curr    driver.VFO
	vfos    map[driver.VFO]*vfoState
	ptt     driver.PTT
	dcd     driver.DCD
	pttType driver.PTTType
	dcdType driver.DCDType
	power   driver.PowerState
	split   bool
	txVFO   driver.VFO
	mem     int
	chans   map[int]driver.Channel
	levels  map[driver.Level]driver.Value
	funcs   map[driver.Func]bool
	parms   map[driver.Parm]driver.Value
	conf    map[string]string

	morseQueue []string
	dtmfRecv   string

	// CallDelay adds artificial latency inside every driver call. Set it
	// before sharing the rig; it is read without synchronization.
	CallDelay time.Duration

	failMu  sync.Mutex
	fail    map[string]driver.Status
	journal []Call
}

// New constructs a simulated rig for the given port settings.
func New(port driver.Port) *Rig {
	r := &Rig{
		port:   port,
		caps:   simCaps(),
		curr:   driver.VFOA,
		txVFO:  driver.VFOB,
		power:  driver.PowerOn,
		vfos:   make(map[driver.VFO]*vfoState),
		chans:  make(map[int]driver.Channel),
		levels: make(map[driver.Level]driver.Value),
		funcs:  make(map[driver.Func]bool),
		parms:  make(map[driver.Parm]driver.Value),
		conf:   make(map[string]string),
	}
	r.vfos[driver.VFOA] = &vfoState{freq: 14250000, mode: driver.ModeUSB, width: 2400, step: 100, ant: 1}
	r.vfos[driver.VFOB] = &vfoState{freq: 7074000, mode: driver.ModeLSB, width: 2400, step: 100, ant: 1}
	r.levels[driver.LevelStrength] = driver.IntValue(-30)
	r.levels[driver.LevelRawStr] = driver.IntValue(120)
	r.levels[driver.LevelRFPower] = driver.FloatValue(0.5)
	return r
}

// simCaps builds the static capability descriptor of the simulated model.
func simCaps() *driver.Caps {
	return &driver.Caps{
		Model:     driver.ModelDummy,
		ModelName: "Dummy",
		MfgName:   "Hamlib-Go",
		Version:   "1.0",
		Modes: driver.ModeAM | driver.ModeCW | driver.ModeUSB | driver.ModeLSB |
			driver.ModeFM | driver.ModeWFM | driver.ModeRTTY | driver.ModeCWR,
		VFOs: driver.VFOA | driver.VFOB | driver.VFOMem,
		HasGetLevel: driver.LevelAF | driver.LevelRF | driver.LevelSQL |
			driver.LevelRFPower | driver.LevelMicGain | driver.LevelStrength |
			driver.LevelRawStr | driver.LevelSWR | driver.LevelALC | driver.LevelAGC,
		HasSetLevel: driver.LevelAF | driver.LevelRF | driver.LevelSQL |
			driver.LevelRFPower | driver.LevelMicGain | driver.LevelAGC,
		HasGetFunc: driver.FuncNB | driver.FuncComp | driver.FuncVOX |
			driver.FuncTone | driver.FuncTSQL | driver.FuncLock,
		HasSetFunc: driver.FuncNB | driver.FuncComp | driver.FuncVOX |
			driver.FuncTone | driver.FuncTSQL | driver.FuncLock,
		HasGetParm: driver.ParmTime | driver.ParmBat | driver.ParmBacklight,
		HasSetParm: driver.ParmTime | driver.ParmBacklight,
		ScanOps:    driver.ScanMem | driver.ScanVFO | driver.ScanProg | driver.ScanStop,
		VFOOps: driver.VFOOpCpy | driver.VFOOpXchg | driver.VFOOpFromVFO |
			driver.VFOOpToVFO | driver.VFOOpUp | driver.VFOOpDown | driver.VFOOpTune |
			driver.VFOOpToggle,
		Passbands: map[driver.Mode]driver.PassbandRange{
			driver.ModeUSB: {Normal: 2400, Narrow: 1800, Wide: 3000},
			driver.ModeLSB: {Normal: 2400, Narrow: 1800, Wide: 3000},
			driver.ModeCW:  {Normal: 500, Narrow: 250, Wide: 2400},
			driver.ModeCWR: {Normal: 500, Narrow: 250, Wide: 2400},
			driver.ModeAM:  {Normal: 6000, Narrow: 4000, Wide: 8000},
			driver.ModeFM:  {Normal: 12000, Narrow: 8000, Wide: 16000},
		},
		MemMin: 0,
		MemMax: 99,
	}
}

// FailWith makes the named call return the given status until cleared.
func (r *Rig) FailWith(name string, status driver.Status) {
	r.failMu.Lock()
	defer r.failMu.Unlock()
	if r.fail == nil {
		r.fail = make(map[string]driver.Status)
	}
	r.fail[name] = status
}

// ClearFailures removes all injected failures.
func (r *Rig) ClearFailures() {
	r.failMu.Lock()
	defer r.failMu.Unlock()
	r.fail = nil
}

// Journal returns a copy of the recorded driver-call windows.
func (r *Rig) Journal() []Call {
	r.failMu.Lock()
	defer r.failMu.Unlock()
	out := make([]Call, len(r.journal))
	copy(out, r.journal)
	return out
}

// call opens a journal window for one driver call and returns a function
// closing it together with any injected failure status. The artificial
// delay runs outside the state lock so overlapping calls are observable.
func (r *Rig) call(name string) (func(), driver.Status) {
	enter := time.Now()
	if r.CallDelay > 0 {
		time.Sleep(r.CallDelay)
	}

	r.failMu.Lock()
	status, failed := r.fail[name]
	r.failMu.Unlock()
	if !failed {
		status = driver.StatusOK
	}

	exit := func() {
		r.failMu.Lock()
		r.journal = append(r.journal, Call{Name: name, Enter: enter, Exit: time.Now()})
		r.failMu.Unlock()
	}
	return exit, status
}

// state resolves a VFO argument to its state slice, treating VFOCurr and
// VFONone as the currently selected VFO.
func (r *Rig) state(vfo driver.VFO) *vfoState {
	if vfo == driver.VFOCurr || vfo == driver.VFONone {
		vfo = r.curr
	}
	st, ok := r.vfos[vfo]
	if !ok {
		st = &vfoState{freq: 14250000, mode: driver.ModeUSB, width: 2400, step: 100, ant: 1}
		r.vfos[vfo] = st
	}
	return st
}

// Caps returns the static capability descriptor.
func (r *Rig) Caps() *driver.Caps { return r.caps }

// Open establishes the simulated session.
func (r *Rig) Open() driver.Status {
	done, status := r.call("open")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return driver.StatusInvalidArg
	}
	r.opened = true
	return driver.StatusOK
}

// Close ends the simulated session. Closing a closed rig succeeds.
func (r *Rig) Close() driver.Status {
	done, status := r.call("close")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = false
	return driver.StatusOK
}

// Cleanup releases the simulated rig.
func (r *Rig) Cleanup() driver.Status {
	done, status := r.call("cleanup")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = false
	r.released = true
	return driver.StatusOK
}

// Opened reports whether the session is open.
func (r *Rig) Opened() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opened
}

// SetConf stores a configuration token.
func (r *Rig) SetConf(key, value string) driver.Status {
	done, status := r.call("set_conf")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conf[key] = value
	return driver.StatusOK
}

// GetConf reads a configuration token.
func (r *Rig) GetConf(key string) (string, driver.Status) {
	done, status := r.call("get_conf")
	defer done()
	if !status.IsOK() {
		return "", status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.conf[key]
	if !ok {
		return "", driver.StatusInvalidConfig
	}
	return v, driver.StatusOK
}

func (r *Rig) SetFreq(vfo driver.VFO, freq driver.Freq) driver.Status {
	done, status := r.call("set_freq")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).freq = freq
	return driver.StatusOK
}

func (r *Rig) GetFreq(vfo driver.VFO) (driver.Freq, driver.Status) {
	done, status := r.call("get_freq")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).freq, driver.StatusOK
}

func (r *Rig) SetMode(vfo driver.VFO, mode driver.Mode, width driver.Passband) driver.Status {
	done, status := r.call("set_mode")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.Modes&mode == 0 {
		return driver.StatusInvalidParam
	}
	st := r.state(vfo)
	st.mode = mode
	switch width {
	case driver.PassbandNoChange:
	case driver.PassbandNormal:
		st.width = r.caps.Passbands[mode].Normal
	default:
		st.width = width
	}
	return driver.StatusOK
}

func (r *Rig) GetMode(vfo driver.VFO) (driver.Mode, driver.Passband, driver.Status) {
	done, status := r.call("get_mode")
	defer done()
	if !status.IsOK() {
		return driver.ModeNone, 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.state(vfo)
	return st.mode, st.width, driver.StatusOK
}

func (r *Rig) SetVFO(vfo driver.VFO) driver.Status {
	done, status := r.call("set_vfo")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if vfo == driver.VFOCurr {
		return driver.StatusOK
	}
	if r.caps.VFOs&vfo == 0 {
		return driver.StatusInvalidVFO
	}
	r.curr = vfo
	return driver.StatusOK
}

func (r *Rig) GetVFO() (driver.VFO, driver.Status) {
	done, status := r.call("get_vfo")
	defer done()
	if !status.IsOK() {
		return driver.VFONone, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.curr, driver.StatusOK
}

func (r *Rig) SetPTT(vfo driver.VFO, ptt driver.PTT) driver.Status {
	done, status := r.call("set_ptt")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ptt = ptt
	return driver.StatusOK
}

func (r *Rig) GetPTT(vfo driver.VFO) (driver.PTT, driver.Status) {
	done, status := r.call("get_ptt")
	defer done()
	if !status.IsOK() {
		return driver.PTTOff, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ptt, driver.StatusOK
}

func (r *Rig) GetDCD(vfo driver.VFO) (driver.DCD, driver.Status) {
	done, status := r.call("get_dcd")
	defer done()
	if !status.IsOK() {
		return driver.DCDOff, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dcd, driver.StatusOK
}

func (r *Rig) SetPTTType(t driver.PTTType) driver.Status {
	done, status := r.call("set_ptt_type")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pttType = t
	return driver.StatusOK
}

func (r *Rig) GetPTTType() (driver.PTTType, driver.Status) {
	done, status := r.call("get_ptt_type")
	defer done()
	if !status.IsOK() {
		return driver.PTTTypeNone, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pttType, driver.StatusOK
}

func (r *Rig) SetDCDType(t driver.DCDType) driver.Status {
	done, status := r.call("set_dcd_type")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dcdType = t
	return driver.StatusOK
}

func (r *Rig) GetDCDType() (driver.DCDType, driver.Status) {
	done, status := r.call("get_dcd_type")
	defer done()
	if !status.IsOK() {
		return driver.DCDTypeNone, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dcdType, driver.StatusOK
}

func (r *Rig) GetStrength(vfo driver.VFO) (int, driver.Status) {
	done, status := r.call("get_strength")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levels[driver.LevelStrength].I, driver.StatusOK
}

func (r *Rig) SetLevel(vfo driver.VFO, level driver.Level, val driver.Value) driver.Status {
	done, status := r.call("set_level")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.HasSetLevel&level == 0 {
		return driver.StatusNotAvailable
	}
	r.levels[level] = val
	return driver.StatusOK
}

func (r *Rig) GetLevel(vfo driver.VFO, level driver.Level) (driver.Value, driver.Status) {
	done, status := r.call("get_level")
	defer done()
	if !status.IsOK() {
		return driver.Value{}, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.HasGetLevel&level == 0 {
		return driver.Value{}, driver.StatusNotAvailable
	}
	return r.levels[level], driver.StatusOK
}

func (r *Rig) SetFunc(vfo driver.VFO, fn driver.Func, on bool) driver.Status {
	done, status := r.call("set_func")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.HasSetFunc&fn == 0 {
		return driver.StatusNotAvailable
	}
	r.funcs[fn] = on
	return driver.StatusOK
}

func (r *Rig) GetFunc(vfo driver.VFO, fn driver.Func) (bool, driver.Status) {
	done, status := r.call("get_func")
	defer done()
	if !status.IsOK() {
		return false, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.HasGetFunc&fn == 0 {
		return false, driver.StatusNotAvailable
	}
	return r.funcs[fn], driver.StatusOK
}

func (r *Rig) SetParm(parm driver.Parm, val driver.Value) driver.Status {
	done, status := r.call("set_parm")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.HasSetParm&parm == 0 {
		return driver.StatusNotAvailable
	}
	r.parms[parm] = val
	return driver.StatusOK
}

func (r *Rig) GetParm(parm driver.Parm) (driver.Value, driver.Status) {
	done, status := r.call("get_parm")
	defer done()
	if !status.IsOK() {
		return driver.Value{}, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.HasGetParm&parm == 0 {
		return driver.Value{}, driver.StatusNotAvailable
	}
	return r.parms[parm], driver.StatusOK
}

func (r *Rig) SetMem(vfo driver.VFO, ch int) driver.Status {
	done, status := r.call("set_mem")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch < r.caps.MemMin || ch > r.caps.MemMax {
		return driver.StatusInvalidParam
	}
	r.mem = ch
	return driver.StatusOK
}

func (r *Rig) GetMem(vfo driver.VFO) (int, driver.Status) {
	done, status := r.call("get_mem")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mem, driver.StatusOK
}

func (r *Rig) GetChannel(ch int, readOnly bool) (driver.Channel, driver.Status) {
	done, status := r.call("get_channel")
	defer done()
	if !status.IsOK() {
		return driver.Channel{}, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch < r.caps.MemMin || ch > r.caps.MemMax {
		return driver.Channel{}, driver.StatusInvalidParam
	}
	c, ok := r.chans[ch]
	if !ok {
		c = driver.Channel{Number: ch, Freq: 0, Mode: driver.ModeNone}
	}
	if !readOnly {
		r.mem = ch
	}
	return c, driver.StatusOK
}

// StoreChannel seeds a memory channel; test and daemon helper.
func (r *Rig) StoreChannel(c driver.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chans[c.Number] = c
}

func (r *Rig) SetRit(vfo driver.VFO, offset driver.Freq) driver.Status {
	done, status := r.call("set_rit")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).rit = offset
	return driver.StatusOK
}

func (r *Rig) GetRit(vfo driver.VFO) (driver.Freq, driver.Status) {
	done, status := r.call("get_rit")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).rit, driver.StatusOK
}

func (r *Rig) SetXit(vfo driver.VFO, offset driver.Freq) driver.Status {
	done, status := r.call("set_xit")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).xit = offset
	return driver.StatusOK
}

func (r *Rig) GetXit(vfo driver.VFO) (driver.Freq, driver.Status) {
	done, status := r.call("get_xit")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).xit, driver.StatusOK
}

func (r *Rig) StartScan(vfo driver.VFO, scan driver.Scan, ch int) driver.Status {
	done, status := r.call("scan")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if scan != driver.ScanStop && r.caps.ScanOps&scan == 0 {
		return driver.StatusNotAvailable
	}
	return driver.StatusOK
}

func (r *Rig) StopScan(vfo driver.VFO) driver.Status {
	done, status := r.call("scan_stop")
	defer done()
	if !status.IsOK() {
		return status
	}
	return driver.StatusOK
}

func (r *Rig) SetSplitVFO(vfo driver.VFO, split bool, txVFO driver.VFO) driver.Status {
	done, status := r.call("set_split_vfo")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.split = split
	r.txVFO = txVFO
	return driver.StatusOK
}

func (r *Rig) GetSplitVFO(vfo driver.VFO) (bool, driver.VFO, driver.Status) {
	done, status := r.call("get_split_vfo")
	defer done()
	if !status.IsOK() {
		return false, driver.VFONone, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.split, r.txVFO, driver.StatusOK
}

func (r *Rig) SetSplitFreq(vfo driver.VFO, txFreq driver.Freq) driver.Status {
	done, status := r.call("set_split_freq")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(r.txVFO).freq = txFreq
	return driver.StatusOK
}

func (r *Rig) GetSplitFreq(vfo driver.VFO) (driver.Freq, driver.Status) {
	done, status := r.call("get_split_freq")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(r.txVFO).freq, driver.StatusOK
}

func (r *Rig) SetSplitMode(vfo driver.VFO, mode driver.Mode, width driver.Passband) driver.Status {
	done, status := r.call("set_split_mode")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.state(r.txVFO)
	st.mode = mode
	if width != driver.PassbandNoChange && width != driver.PassbandNormal {
		st.width = width
	}
	return driver.StatusOK
}

func (r *Rig) GetSplitMode(vfo driver.VFO) (driver.Mode, driver.Passband, driver.Status) {
	done, status := r.call("get_split_mode")
	defer done()
	if !status.IsOK() {
		return driver.ModeNone, 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.state(r.txVFO)
	return st.mode, st.width, driver.StatusOK
}

func (r *Rig) VFOOp(vfo driver.VFO, op driver.VFOOp) driver.Status {
	done, status := r.call("vfo_op")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.caps.VFOOps&op == 0 {
		return driver.StatusNotAvailable
	}
	switch op {
	case driver.VFOOpToggle:
		if r.curr == driver.VFOA {
			r.curr = driver.VFOB
		} else {
			r.curr = driver.VFOA
		}
	case driver.VFOOpCpy:
		src := *r.state(driver.VFOA)
		*r.state(driver.VFOB) = src
	case driver.VFOOpXchg:
		a, b := r.state(driver.VFOA), r.state(driver.VFOB)
		*a, *b = *b, *a
	case driver.VFOOpUp:
		st := r.state(vfo)
		st.freq += st.step
	case driver.VFOOpDown:
		st := r.state(vfo)
		st.freq -= st.step
	}
	return driver.StatusOK
}

func (r *Rig) SetAnt(vfo driver.VFO, ant int) driver.Status {
	done, status := r.call("set_ant")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).ant = ant
	return driver.StatusOK
}

func (r *Rig) GetAnt(vfo driver.VFO) (int, driver.Status) {
	done, status := r.call("get_ant")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).ant, driver.StatusOK
}

func (r *Rig) SetPowerState(state driver.PowerState) driver.Status {
	done, status := r.call("set_powerstat")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.power = state
	return driver.StatusOK
}

func (r *Rig) GetPowerState() (driver.PowerState, driver.Status) {
	done, status := r.call("get_powerstat")
	defer done()
	if !status.IsOK() {
		return driver.PowerOff, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.power, driver.StatusOK
}

func (r *Rig) SetTuningStep(vfo driver.VFO, step driver.Freq) driver.Status {
	done, status := r.call("set_ts")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).step = step
	return driver.StatusOK
}

func (r *Rig) GetTuningStep(vfo driver.VFO) (driver.Freq, driver.Status) {
	done, status := r.call("get_ts")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).step, driver.StatusOK
}

func (r *Rig) SetRptShift(vfo driver.VFO, shift driver.RptShift) driver.Status {
	done, status := r.call("set_rptr_shift")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).shift = shift
	return driver.StatusOK
}

func (r *Rig) GetRptShift(vfo driver.VFO) (driver.RptShift, driver.Status) {
	done, status := r.call("get_rptr_shift")
	defer done()
	if !status.IsOK() {
		return driver.RptShiftNone, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).shift, driver.StatusOK
}

func (r *Rig) SetRptOffset(vfo driver.VFO, offset driver.Freq) driver.Status {
	done, status := r.call("set_rptr_offs")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).rptOfs = offset
	return driver.StatusOK
}

func (r *Rig) GetRptOffset(vfo driver.VFO) (driver.Freq, driver.Status) {
	done, status := r.call("get_rptr_offs")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).rptOfs, driver.StatusOK
}

func (r *Rig) SetCTCSSTone(vfo driver.VFO, tone int) driver.Status {
	done, status := r.call("set_ctcss_tone")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).ctcss = tone
	return driver.StatusOK
}

func (r *Rig) GetCTCSSTone(vfo driver.VFO) (int, driver.Status) {
	done, status := r.call("get_ctcss_tone")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).ctcss, driver.StatusOK
}

func (r *Rig) SetDCSCode(vfo driver.VFO, code int) driver.Status {
	done, status := r.call("set_dcs_code")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).dcs = code
	return driver.StatusOK
}

func (r *Rig) GetDCSCode(vfo driver.VFO) (int, driver.Status) {
	done, status := r.call("get_dcs_code")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).dcs, driver.StatusOK
}

func (r *Rig) SetCTCSSSql(vfo driver.VFO, tone int) driver.Status {
	done, status := r.call("set_ctcss_sql")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).ctcssSql = tone
	return driver.StatusOK
}

func (r *Rig) GetCTCSSSql(vfo driver.VFO) (int, driver.Status) {
	done, status := r.call("get_ctcss_sql")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).ctcssSql, driver.StatusOK
}

func (r *Rig) SetDCSSql(vfo driver.VFO, code int) driver.Status {
	done, status := r.call("set_dcs_sql")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(vfo).dcsSql = code
	return driver.StatusOK
}

func (r *Rig) GetDCSSql(vfo driver.VFO) (int, driver.Status) {
	done, status := r.call("get_dcs_sql")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(vfo).dcsSql, driver.StatusOK
}

func (r *Rig) SendDTMF(vfo driver.VFO, digits string) driver.Status {
	done, status := r.call("send_dtmf")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Loopback so RecvDTMF has something to report.
	r.dtmfRecv += digits
	return driver.StatusOK
}

func (r *Rig) RecvDTMF(vfo driver.VFO, maxLen int) (string, driver.Status) {
	done, status := r.call("recv_dtmf")
	defer done()
	if !status.IsOK() {
		return "", status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	digits := r.dtmfRecv
	if maxLen > 0 && len(digits) > maxLen {
		digits = digits[:maxLen]
	}
	r.dtmfRecv = r.dtmfRecv[len(digits):]
	return digits, driver.StatusOK
}

func (r *Rig) SendMorse(vfo driver.VFO, msg string) driver.Status {
	done, status := r.call("send_morse")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.morseQueue = append(r.morseQueue, msg)
	return driver.StatusOK
}

func (r *Rig) StopMorse(vfo driver.VFO) driver.Status {
	done, status := r.call("stop_morse")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.morseQueue = nil
	return driver.StatusOK
}

func (r *Rig) WaitMorse(vfo driver.VFO) driver.Status {
	done, status := r.call("wait_morse")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.morseQueue = nil
	return driver.StatusOK
}

func (r *Rig) SendVoiceMem(vfo driver.VFO, ch int) driver.Status {
	done, status := r.call("send_voice_mem")
	defer done()
	if !status.IsOK() {
		return status
	}
	return driver.StatusOK
}

func (r *Rig) StopVoiceMem(vfo driver.VFO) driver.Status {
	done, status := r.call("stop_voice_mem")
	defer done()
	if !status.IsOK() {
		return status
	}
	return driver.StatusOK
}

// Power2mW converts a power fraction to milliwatts against the simulated
// 100 W final stage.
func (r *Rig) Power2mW(power float64, freq driver.Freq, mode driver.Mode) (int, driver.Status) {
	done, status := r.call("power2mW")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	if power < 0 || power > 1 {
		return 0, driver.StatusInvalidParam
	}
	return int(power * 100000), driver.StatusOK
}

// MW2Power converts milliwatts back to a power fraction.
func (r *Rig) MW2Power(mw int, freq driver.Freq, mode driver.Mode) (float64, driver.Status) {
	done, status := r.call("mW2power")
	defer done()
	if !status.IsOK() {
		return 0, status
	}
	if mw < 0 {
		return 0, driver.StatusInvalidParam
	}
	p := float64(mw) / 100000
	if p > 1 {
		p = 1
	}
	return p, driver.StatusOK
}

func (r *Rig) Reset(reset driver.Reset) driver.Status {
	done, status := r.call("reset")
	defer done()
	if !status.IsOK() {
		return status
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if reset == driver.ResetMaster || reset == driver.ResetVFO {
		r.vfos = map[driver.VFO]*vfoState{
			driver.VFOA: {freq: 14250000, mode: driver.ModeUSB, width: 2400, step: 100, ant: 1},
			driver.VFOB: {freq: 7074000, mode: driver.ModeLSB, width: 2400, step: 100, ant: 1},
		}
		r.curr = driver.VFOA
	}
	return driver.StatusOK
}

// Compile-time interface satisfaction check.
var _ driver.Driver = (*Rig)(nil)

// String identifies the rig in logs.
func (r *Rig) String() string {
	return fmt.Sprintf("simrig(%s)", r.port.Address)
}
