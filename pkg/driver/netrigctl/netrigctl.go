// Package netrigctl is the network control backend. It speaks the rigctld
// line protocol over TCP: one command per line, long command names prefixed
// with a backslash, value lines for queries and an "RPRT <code>" line for
// command results.
//
// Importing this package registers the backend for driver.ModelNetRigctl.
package netrigctl

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

func init() {
	driver.Register(driver.ModelNetRigctl, func(port driver.Port) driver.Driver {
		return &Rig{port: port, caps: netCaps()}
	})
}

// Rig is a client session to a remote rig control daemon. Commands target
// the remote's currently selected VFO; the VFO argument of per-VFO calls is
// not forwarded.
type Rig struct {
	port driver.Port
	caps *driver.Caps

	conn net.Conn
	rd   *bufio.Reader
}

// netCaps builds the permissive descriptor advertised for remote rigs. The
// remote model is not known ahead of time, so every symbol the tables name
// is reported as available and unsupported operations surface as driver
// statuses at call time.
func netCaps() *driver.Caps {
	c := &driver.Caps{
		Model:     driver.ModelNetRigctl,
		ModelName: "NET rigctl",
		MfgName:   "Hamlib",
		Version:   "1.0",
		MemMin:    0,
		MemMax:    999,
		Passbands: map[driver.Mode]driver.PassbandRange{},
	}
	for _, e := range token.Modes.Entries() {
		c.Modes |= e.Code
	}
	for _, e := range token.VFOs.Entries() {
		c.VFOs |= e.Code
	}
	for _, e := range token.Levels.Entries() {
		c.HasGetLevel |= e.Code
		c.HasSetLevel |= e.Code
	}
	for _, e := range token.Funcs.Entries() {
		c.HasGetFunc |= e.Code
		c.HasSetFunc |= e.Code
	}
	for _, e := range token.Parms.Entries() {
		c.HasGetParm |= e.Code
		c.HasSetParm |= e.Code
	}
	for _, e := range token.Scans.Entries() {
		c.ScanOps |= e.Code
	}
	for _, e := range token.VFOOps.Entries() {
		c.VFOOps |= e.Code
	}
	return c
}

// Caps returns the permissive network descriptor.
func (r *Rig) Caps() *driver.Caps { return r.caps }

// Open dials the remote daemon.
func (r *Rig) Open() driver.Status {
	if r.conn != nil {
		return driver.StatusOK
	}
	conn, err := net.DialTimeout("tcp", r.port.Address, r.dialTimeout())
	if err != nil {
		return driver.StatusIO
	}
	r.conn = conn
	r.rd = bufio.NewReader(conn)
	return driver.StatusOK
}

// Close drops the connection. The session can be reopened.
func (r *Rig) Close() driver.Status {
	if r.conn == nil {
		return driver.StatusOK
	}
	// Best effort; the remote drops the session either way.
	fmt.Fprint(r.conn, "q\n")
	r.conn.Close()
	r.conn = nil
	r.rd = nil
	return driver.StatusOK
}

// Cleanup releases the session.
func (r *Rig) Cleanup() driver.Status {
	return r.Close()
}

func (r *Rig) dialTimeout() time.Duration {
	if r.port.Timeout > 0 {
		return r.port.Timeout
	}
	return 2 * time.Second
}

// exchange sends one command line and reads nvals value lines. An "RPRT"
// line in place of the first value carries the remote status. With nvals
// zero, exactly one RPRT line is expected.
func (r *Rig) exchange(nvals int, args ...string) ([]string, driver.Status) {
	if r.conn == nil {
		return nil, driver.StatusIO
	}

	deadline := time.Now().Add(r.dialTimeout() * time.Duration(r.port.Retry+1))
	if err := r.conn.SetDeadline(deadline); err != nil {
		return nil, driver.StatusIO
	}

	if _, err := fmt.Fprintf(r.conn, "%s\n", strings.Join(args, " ")); err != nil {
		return nil, driver.StatusIO
	}

	first, err := r.readLine()
	if err != nil {
		return nil, driver.StatusTimeout
	}
	if code, ok := parseRPRT(first); ok {
		return nil, code
	}
	if nvals == 0 {
		// A bare value line where a result line was expected.
		return nil, driver.StatusProtocol
	}

	vals := make([]string, 0, nvals)
	vals = append(vals, first)
	for len(vals) < nvals {
		line, err := r.readLine()
		if err != nil {
			return nil, driver.StatusTimeout
		}
		vals = append(vals, line)
	}
	return vals, driver.StatusOK
}

func (r *Rig) readLine() (string, error) {
	line, err := r.rd.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseRPRT recognizes a result line and extracts its status code.
func parseRPRT(line string) (driver.Status, bool) {
	rest, ok := strings.CutPrefix(line, "RPRT ")
	if !ok {
		return driver.StatusOK, false
	}
	code, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return driver.StatusProtocol, true
	}
	return driver.Status(code), true
}

// set runs a command that answers with a bare result line.
func (r *Rig) set(args ...string) driver.Status {
	_, status := r.exchange(0, args...)
	return status
}

// getInt runs a single-value query and parses the value as an integer.
func (r *Rig) getInt(args ...string) (int64, driver.Status) {
	vals, status := r.exchange(1, args...)
	if !status.IsOK() {
		return 0, status
	}
	n, err := strconv.ParseInt(strings.TrimSpace(vals[0]), 10, 64)
	if err != nil {
		return 0, driver.StatusProtocol
	}
	return n, driver.StatusOK
}

// getFloat runs a single-value query and parses the value as a float.
func (r *Rig) getFloat(args ...string) (float64, driver.Status) {
	vals, status := r.exchange(1, args...)
	if !status.IsOK() {
		return 0, status
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
	if err != nil {
		return 0, driver.StatusProtocol
	}
	return f, driver.StatusOK
}

func (r *Rig) SetConf(key, value string) driver.Status {
	return r.set("\\set_conf", key, value)
}

func (r *Rig) GetConf(key string) (string, driver.Status) {
	vals, status := r.exchange(1, "\\get_conf", key)
	if !status.IsOK() {
		return "", status
	}
	return vals[0], driver.StatusOK
}

func (r *Rig) SetFreq(_ driver.VFO, freq driver.Freq) driver.Status {
	return r.set("\\set_freq", strconv.FormatInt(int64(freq), 10))
}

func (r *Rig) GetFreq(_ driver.VFO) (driver.Freq, driver.Status) {
	f, status := r.getInt("\\get_freq")
	return driver.Freq(f), status
}

func (r *Rig) SetMode(_ driver.VFO, mode driver.Mode, width driver.Passband) driver.Status {
	return r.set("\\set_mode", token.Modes.Decode(mode), strconv.Itoa(int(width)))
}

func (r *Rig) GetMode(_ driver.VFO) (driver.Mode, driver.Passband, driver.Status) {
	vals, status := r.exchange(2, "\\get_mode")
	if !status.IsOK() {
		return driver.ModeNone, 0, status
	}
	mode, err := token.Modes.Encode(strings.TrimSpace(vals[0]))
	if err != nil {
		return driver.ModeNone, 0, driver.StatusProtocol
	}
	width, err := strconv.Atoi(strings.TrimSpace(vals[1]))
	if err != nil {
		return driver.ModeNone, 0, driver.StatusProtocol
	}
	return mode, driver.Passband(width), driver.StatusOK
}

func (r *Rig) SetVFO(vfo driver.VFO) driver.Status {
	return r.set("\\set_vfo", token.VFOs.Decode(vfo))
}

func (r *Rig) GetVFO() (driver.VFO, driver.Status) {
	vals, status := r.exchange(1, "\\get_vfo")
	if !status.IsOK() {
		return driver.VFONone, status
	}
	vfo, err := token.VFOs.Encode(strings.TrimSpace(vals[0]))
	if err != nil {
		return driver.VFONone, driver.StatusProtocol
	}
	return vfo, driver.StatusOK
}

func (r *Rig) SetPTT(_ driver.VFO, ptt driver.PTT) driver.Status {
	return r.set("\\set_ptt", strconv.Itoa(int(ptt)))
}

func (r *Rig) GetPTT(_ driver.VFO) (driver.PTT, driver.Status) {
	n, status := r.getInt("\\get_ptt")
	return driver.PTT(n), status
}

func (r *Rig) GetDCD(_ driver.VFO) (driver.DCD, driver.Status) {
	n, status := r.getInt("\\get_dcd")
	return driver.DCD(n), status
}

func (r *Rig) SetPTTType(t driver.PTTType) driver.Status {
	return r.set("\\set_ptt_type", token.PTTTypes.Decode(t))
}

func (r *Rig) GetPTTType() (driver.PTTType, driver.Status) {
	vals, status := r.exchange(1, "\\get_ptt_type")
	if !status.IsOK() {
		return driver.PTTTypeNone, status
	}
	t, err := token.PTTTypes.Encode(strings.TrimSpace(vals[0]))
	if err != nil {
		return driver.PTTTypeNone, driver.StatusProtocol
	}
	return t, driver.StatusOK
}

func (r *Rig) SetDCDType(t driver.DCDType) driver.Status {
	return r.set("\\set_dcd_type", token.DCDTypes.Decode(t))
}

func (r *Rig) GetDCDType() (driver.DCDType, driver.Status) {
	vals, status := r.exchange(1, "\\get_dcd_type")
	if !status.IsOK() {
		return driver.DCDTypeNone, status
	}
	t, err := token.DCDTypes.Encode(strings.TrimSpace(vals[0]))
	if err != nil {
		return driver.DCDTypeNone, driver.StatusProtocol
	}
	return t, driver.StatusOK
}

func (r *Rig) GetStrength(_ driver.VFO) (int, driver.Status) {
	n, status := r.getInt("\\get_strength")
	return int(n), status
}

func (r *Rig) SetLevel(_ driver.VFO, level driver.Level, val driver.Value) driver.Status {
	return r.set("\\set_level", token.Levels.Decode(level), formatValue(token.LevelKind(level), val))
}

func (r *Rig) GetLevel(_ driver.VFO, level driver.Level) (driver.Value, driver.Status) {
	f, status := r.getFloat("\\get_level", token.Levels.Decode(level))
	if !status.IsOK() {
		return driver.Value{}, status
	}
	if token.LevelKind(level) == token.KindInt {
		return driver.IntValue(int(f)), driver.StatusOK
	}
	return driver.FloatValue(f), driver.StatusOK
}

func (r *Rig) SetFunc(_ driver.VFO, fn driver.Func, on bool) driver.Status {
	return r.set("\\set_func", token.Funcs.Decode(fn), boolArg(on))
}

func (r *Rig) GetFunc(_ driver.VFO, fn driver.Func) (bool, driver.Status) {
	n, status := r.getInt("\\get_func", token.Funcs.Decode(fn))
	return n != 0, status
}

func (r *Rig) SetParm(parm driver.Parm, val driver.Value) driver.Status {
	return r.set("\\set_parm", token.Parms.Decode(parm), formatValue(token.ParmKind(parm), val))
}

func (r *Rig) GetParm(parm driver.Parm) (driver.Value, driver.Status) {
	f, status := r.getFloat("\\get_parm", token.Parms.Decode(parm))
	if !status.IsOK() {
		return driver.Value{}, status
	}
	if token.ParmKind(parm) == token.KindInt {
		return driver.IntValue(int(f)), driver.StatusOK
	}
	return driver.FloatValue(f), driver.StatusOK
}

func (r *Rig) SetMem(_ driver.VFO, ch int) driver.Status {
	return r.set("\\set_mem", strconv.Itoa(ch))
}

func (r *Rig) GetMem(_ driver.VFO) (int, driver.Status) {
	n, status := r.getInt("\\get_mem")
	return int(n), status
}

func (r *Rig) GetChannel(ch int, readOnly bool) (driver.Channel, driver.Status) {
	vals, status := r.exchange(7, "\\get_channel", strconv.Itoa(ch), boolArg(readOnly))
	if !status.IsOK() {
		return driver.Channel{}, status
	}
	number, err0 := strconv.Atoi(strings.TrimSpace(vals[0]))
	freq, err1 := strconv.ParseInt(strings.TrimSpace(vals[1]), 10, 64)
	mode, err2 := token.Modes.Encode(strings.TrimSpace(vals[2]))
	width, err3 := strconv.Atoi(strings.TrimSpace(vals[3]))
	txFreq, err4 := strconv.ParseInt(strings.TrimSpace(vals[4]), 10, 64)
	for _, err := range []error{err0, err1, err2, err3, err4} {
		if err != nil {
			return driver.Channel{}, driver.StatusProtocol
		}
	}
	return driver.Channel{
		Number: number,
		Freq:   driver.Freq(freq),
		Mode:   mode,
		Width:  driver.Passband(width),
		TXFreq: driver.Freq(txFreq),
		Split:  strings.TrimSpace(vals[5]) == "1",
		Name:   vals[6],
	}, driver.StatusOK
}

func (r *Rig) SetRit(_ driver.VFO, offset driver.Freq) driver.Status {
	return r.set("\\set_rit", strconv.FormatInt(int64(offset), 10))
}

func (r *Rig) GetRit(_ driver.VFO) (driver.Freq, driver.Status) {
	n, status := r.getInt("\\get_rit")
	return driver.Freq(n), status
}

func (r *Rig) SetXit(_ driver.VFO, offset driver.Freq) driver.Status {
	return r.set("\\set_xit", strconv.FormatInt(int64(offset), 10))
}

func (r *Rig) GetXit(_ driver.VFO) (driver.Freq, driver.Status) {
	n, status := r.getInt("\\get_xit")
	return driver.Freq(n), status
}

func (r *Rig) StartScan(_ driver.VFO, scan driver.Scan, ch int) driver.Status {
	return r.set("\\scan", token.Scans.Decode(scan), strconv.Itoa(ch))
}

func (r *Rig) StopScan(_ driver.VFO) driver.Status {
	return r.set("\\scan", "STOP", "0")
}

func (r *Rig) SetSplitVFO(_ driver.VFO, split bool, txVFO driver.VFO) driver.Status {
	return r.set("\\set_split_vfo", boolArg(split), token.VFOs.Decode(txVFO))
}

func (r *Rig) GetSplitVFO(_ driver.VFO) (bool, driver.VFO, driver.Status) {
	vals, status := r.exchange(2, "\\get_split_vfo")
	if !status.IsOK() {
		return false, driver.VFONone, status
	}
	tx, err := token.VFOs.Encode(strings.TrimSpace(vals[1]))
	if err != nil {
		return false, driver.VFONone, driver.StatusProtocol
	}
	return strings.TrimSpace(vals[0]) == "1", tx, driver.StatusOK
}

func (r *Rig) SetSplitFreq(_ driver.VFO, txFreq driver.Freq) driver.Status {
	return r.set("\\set_split_freq", strconv.FormatInt(int64(txFreq), 10))
}

func (r *Rig) GetSplitFreq(_ driver.VFO) (driver.Freq, driver.Status) {
	n, status := r.getInt("\\get_split_freq")
	return driver.Freq(n), status
}

func (r *Rig) SetSplitMode(_ driver.VFO, mode driver.Mode, width driver.Passband) driver.Status {
	return r.set("\\set_split_mode", token.Modes.Decode(mode), strconv.Itoa(int(width)))
}

func (r *Rig) GetSplitMode(_ driver.VFO) (driver.Mode, driver.Passband, driver.Status) {
	vals, status := r.exchange(2, "\\get_split_mode")
	if !status.IsOK() {
		return driver.ModeNone, 0, status
	}
	mode, err := token.Modes.Encode(strings.TrimSpace(vals[0]))
	if err != nil {
		return driver.ModeNone, 0, driver.StatusProtocol
	}
	width, err := strconv.Atoi(strings.TrimSpace(vals[1]))
	if err != nil {
		return driver.ModeNone, 0, driver.StatusProtocol
	}
	return mode, driver.Passband(width), driver.StatusOK
}

func (r *Rig) VFOOp(_ driver.VFO, op driver.VFOOp) driver.Status {
	return r.set("\\vfo_op", token.VFOOps.Decode(op))
}

func (r *Rig) SetAnt(_ driver.VFO, ant int) driver.Status {
	return r.set("\\set_ant", strconv.Itoa(ant))
}

func (r *Rig) GetAnt(_ driver.VFO) (int, driver.Status) {
	n, status := r.getInt("\\get_ant")
	return int(n), status
}

func (r *Rig) SetPowerState(state driver.PowerState) driver.Status {
	return r.set("\\set_powerstat", strconv.Itoa(int(state)))
}

func (r *Rig) GetPowerState() (driver.PowerState, driver.Status) {
	n, status := r.getInt("\\get_powerstat")
	return driver.PowerState(n), status
}

func (r *Rig) SetTuningStep(_ driver.VFO, step driver.Freq) driver.Status {
	return r.set("\\set_ts", strconv.FormatInt(int64(step), 10))
}

func (r *Rig) GetTuningStep(_ driver.VFO) (driver.Freq, driver.Status) {
	n, status := r.getInt("\\get_ts")
	return driver.Freq(n), status
}

func (r *Rig) SetRptShift(_ driver.VFO, shift driver.RptShift) driver.Status {
	return r.set("\\set_rptr_shift", token.RptShifts.Decode(shift))
}

func (r *Rig) GetRptShift(_ driver.VFO) (driver.RptShift, driver.Status) {
	vals, status := r.exchange(1, "\\get_rptr_shift")
	if !status.IsOK() {
		return driver.RptShiftNone, status
	}
	shift, err := token.RptShifts.Encode(strings.TrimSpace(vals[0]))
	if err != nil {
		return driver.RptShiftNone, driver.StatusProtocol
	}
	return shift, driver.StatusOK
}

func (r *Rig) SetRptOffset(_ driver.VFO, offset driver.Freq) driver.Status {
	return r.set("\\set_rptr_offs", strconv.FormatInt(int64(offset), 10))
}

func (r *Rig) GetRptOffset(_ driver.VFO) (driver.Freq, driver.Status) {
	n, status := r.getInt("\\get_rptr_offs")
	return driver.Freq(n), status
}

func (r *Rig) SetCTCSSTone(_ driver.VFO, tone int) driver.Status {
	return r.set("\\set_ctcss_tone", strconv.Itoa(tone))
}

func (r *Rig) GetCTCSSTone(_ driver.VFO) (int, driver.Status) {
	n, status := r.getInt("\\get_ctcss_tone")
	return int(n), status
}

func (r *Rig) SetDCSCode(_ driver.VFO, code int) driver.Status {
	return r.set("\\set_dcs_code", strconv.Itoa(code))
}

func (r *Rig) GetDCSCode(_ driver.VFO) (int, driver.Status) {
	n, status := r.getInt("\\get_dcs_code")
	return int(n), status
}

func (r *Rig) SetCTCSSSql(_ driver.VFO, tone int) driver.Status {
	return r.set("\\set_ctcss_sql", strconv.Itoa(tone))
}

func (r *Rig) GetCTCSSSql(_ driver.VFO) (int, driver.Status) {
	n, status := r.getInt("\\get_ctcss_sql")
	return int(n), status
}

func (r *Rig) SetDCSSql(_ driver.VFO, code int) driver.Status {
	return r.set("\\set_dcs_sql", strconv.Itoa(code))
}

func (r *Rig) GetDCSSql(_ driver.VFO) (int, driver.Status) {
	n, status := r.getInt("\\get_dcs_sql")
	return int(n), status
}

func (r *Rig) SendDTMF(_ driver.VFO, digits string) driver.Status {
	return r.set("\\send_dtmf", digits)
}

func (r *Rig) RecvDTMF(_ driver.VFO, maxLen int) (string, driver.Status) {
	vals, status := r.exchange(1, "\\recv_dtmf", strconv.Itoa(maxLen))
	if !status.IsOK() {
		return "", status
	}
	return vals[0], driver.StatusOK
}

func (r *Rig) SendMorse(_ driver.VFO, msg string) driver.Status {
	return r.set("\\send_morse", msg)
}

func (r *Rig) StopMorse(_ driver.VFO) driver.Status {
	return r.set("\\stop_morse")
}

func (r *Rig) WaitMorse(_ driver.VFO) driver.Status {
	return r.set("\\wait_morse")
}

func (r *Rig) SendVoiceMem(_ driver.VFO, ch int) driver.Status {
	return r.set("\\send_voice_mem", strconv.Itoa(ch))
}

func (r *Rig) StopVoiceMem(_ driver.VFO) driver.Status {
	return r.set("\\stop_voice_mem")
}

func (r *Rig) Power2mW(power float64, freq driver.Freq, mode driver.Mode) (int, driver.Status) {
	n, status := r.getInt("\\power2mW",
		strconv.FormatFloat(power, 'f', -1, 64),
		strconv.FormatInt(int64(freq), 10),
		token.Modes.Decode(mode))
	return int(n), status
}

func (r *Rig) MW2Power(mw int, freq driver.Freq, mode driver.Mode) (float64, driver.Status) {
	return r.getFloat("\\mW2power",
		strconv.Itoa(mw),
		strconv.FormatInt(int64(freq), 10),
		token.Modes.Decode(mode))
}

func (r *Rig) Reset(reset driver.Reset) driver.Status {
	return r.set("\\reset", token.Resets.Decode(reset))
}

// formatValue renders a level or parm value for the wire.
func formatValue(kind token.ValueKind, val driver.Value) string {
	if kind == token.KindInt {
		return strconv.Itoa(val.I)
	}
	return strconv.FormatFloat(val.F, 'f', -1, 64)
}

func boolArg(on bool) string {
	if on {
		return "1"
	}
	return "0"
}

var _ driver.Driver = (*Rig)(nil)
