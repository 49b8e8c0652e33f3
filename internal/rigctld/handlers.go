package rigctld

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/rig"
	"github.com/boybook/hamlib-go/pkg/token"
)

var errUsage = errors.New("wrong argument count")

// dispatch runs one command and renders the protocol reply: value lines
// for queries, an RPRT line for commands and failures.
func (s *Server) dispatch(ctx context.Context, cmd string, args []string) string {
	lines, err := s.handle(ctx, cmd, args)
	if err != nil {
		return fmt.Sprintf("RPRT %d\n", errorCode(err))
	}
	if len(lines) == 0 {
		return "RPRT 0\n"
	}
	return strings.Join(lines, "\n") + "\n"
}

// errorCode maps an error onto the wire status convention.
func errorCode(err error) int {
	var de *rig.DriverError
	if errors.As(err, &de) {
		return int(de.Status)
	}
	if errors.Is(err, errUsage) || rig.IsArgsError(err) {
		return int(driver.StatusInvalidParam)
	}
	if rig.IsStateError(err) {
		return int(driver.StatusRejected)
	}
	return int(driver.StatusInternal)
}

// handle executes one decoded command against the rig handle. A nil line
// slice with nil error means plain success.
func (s *Server) handle(ctx context.Context, cmd string, args []string) ([]string, error) {
	switch cmd {
	case "set_freq":
		hz, err := wantInt64(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetFrequency(ctx, hz)

	case "get_freq":
		hz, err := s.rig.GetFrequency(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatInt(hz)}, nil

	case "set_mode":
		if len(args) != 2 {
			return nil, errUsage
		}
		bandwidth := args[1]
		if bandwidth == "0" {
			bandwidth = ""
		}
		return nil, s.rig.SetMode(ctx, args[0], bandwidth)

	case "get_mode":
		info, err := s.rig.GetMode(ctx)
		if err != nil {
			return nil, err
		}
		return []string{info.Mode, formatInt(info.Width)}, nil

	case "set_vfo":
		if len(args) != 1 {
			return nil, errUsage
		}
		return nil, s.rig.SetVFO(ctx, args[0])

	case "get_vfo":
		name, err := s.rig.GetVFO(ctx)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil

	case "vfo_op":
		if len(args) != 1 {
			return nil, errUsage
		}
		return nil, s.rig.VFOOperation(ctx, args[0])

	case "set_ptt":
		on, err := wantBool(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetPtt(ctx, on)

	case "get_ptt":
		on, err := s.rig.GetPtt(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatBool(on)}, nil

	case "get_dcd":
		on, err := s.rig.GetDcd(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatBool(on)}, nil

	case "set_ptt_type":
		if len(args) != 1 {
			return nil, errUsage
		}
		return nil, s.rig.SetPttType(ctx, args[0])

	case "get_ptt_type":
		t, err := s.rig.GetPttType(ctx)
		if err != nil {
			return nil, err
		}
		return []string{t}, nil

	case "set_dcd_type":
		if len(args) != 1 {
			return nil, errUsage
		}
		return nil, s.rig.SetDcdType(ctx, args[0])

	case "get_dcd_type":
		t, err := s.rig.GetDcdType(ctx)
		if err != nil {
			return nil, err
		}
		return []string{t}, nil

	case "get_strength":
		db, err := s.rig.GetStrength(ctx)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(db)}, nil

	case "set_level":
		if len(args) != 2 {
			return nil, errUsage
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, errUsage
		}
		return nil, s.rig.SetLevel(ctx, args[0], value)

	case "get_level":
		if len(args) != 1 {
			return nil, errUsage
		}
		value, err := s.rig.GetLevel(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return []string{formatFloat(value)}, nil

	case "set_func":
		if len(args) != 2 {
			return nil, errUsage
		}
		return nil, s.rig.SetFunction(ctx, args[0], args[1] == "1")

	case "get_func":
		if len(args) != 1 {
			return nil, errUsage
		}
		on, err := s.rig.GetFunction(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return []string{formatBool(on)}, nil

	case "set_parm":
		if len(args) != 2 {
			return nil, errUsage
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, errUsage
		}
		return nil, s.rig.SetParm(ctx, args[0], value)

	case "get_parm":
		if len(args) != 1 {
			return nil, errUsage
		}
		value, err := s.rig.GetParm(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return []string{formatFloat(value)}, nil

	case "set_mem":
		ch, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetMemoryChannel(ctx, ch)

	case "get_mem":
		ch, err := s.rig.GetMemoryChannelNumber(ctx)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(ch)}, nil

	case "get_channel":
		if len(args) != 2 {
			return nil, errUsage
		}
		ch, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errUsage
		}
		data, err := s.rig.GetMemoryChannel(ctx, ch, args[1] == "1")
		if err != nil {
			return nil, err
		}
		return []string{
			strconv.Itoa(data.Number),
			formatInt(data.Frequency),
			data.Mode,
			formatInt(data.Width),
			formatInt(data.TXFrequency),
			formatBool(data.Split),
			data.Name,
		}, nil

	case "set_rit":
		hz, err := wantInt64(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetRit(ctx, hz)

	case "get_rit":
		hz, err := s.rig.GetRit(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatInt(hz)}, nil

	case "set_xit":
		hz, err := wantInt64(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetXit(ctx, hz)

	case "get_xit":
		hz, err := s.rig.GetXit(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatInt(hz)}, nil

	case "scan":
		if len(args) != 2 {
			return nil, errUsage
		}
		if args[0] == "STOP" {
			return nil, s.rig.StopScan(ctx)
		}
		ch, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, errUsage
		}
		return nil, s.rig.StartScan(ctx, args[0], ch)

	case "set_split_vfo":
		if len(args) != 2 {
			return nil, errUsage
		}
		return nil, s.rig.SetSplit(ctx, args[0] == "1", args[1])

	case "get_split_vfo":
		info, err := s.rig.GetSplit(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatBool(info.Enabled), info.TxVFO}, nil

	case "set_split_freq":
		hz, err := wantInt64(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetSplitFrequency(ctx, hz)

	case "get_split_freq":
		hz, err := s.rig.GetSplitFrequency(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatInt(hz)}, nil

	case "set_split_mode":
		if len(args) != 2 {
			return nil, errUsage
		}
		bandwidth := args[1]
		if bandwidth == "0" {
			bandwidth = ""
		}
		return nil, s.rig.SetSplitMode(ctx, args[0], bandwidth)

	case "get_split_mode":
		info, err := s.rig.GetSplitMode(ctx)
		if err != nil {
			return nil, err
		}
		return []string{info.Mode, formatInt(info.Width)}, nil

	case "set_ant":
		ant, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetAntenna(ctx, ant)

	case "get_ant":
		ant, err := s.rig.GetAntenna(ctx)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(ant)}, nil

	case "set_powerstat":
		n, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		name := token.PowerStates.Decode(driver.PowerState(n))
		if name == "" {
			return nil, errUsage
		}
		return nil, s.rig.SetPowerState(ctx, name)

	case "get_powerstat":
		name, err := s.rig.GetPowerState(ctx)
		if err != nil {
			return nil, err
		}
		state, err := token.PowerStates.Encode(name)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(int(state))}, nil

	case "set_ts":
		hz, err := wantInt64(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetTuningStep(ctx, hz)

	case "get_ts":
		hz, err := s.rig.GetTuningStep(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatInt(hz)}, nil

	case "set_rptr_shift":
		if len(args) != 1 {
			return nil, errUsage
		}
		return nil, s.rig.SetRepeaterShift(ctx, args[0])

	case "get_rptr_shift":
		shift, err := s.rig.GetRepeaterShift(ctx)
		if err != nil {
			return nil, err
		}
		return []string{shift}, nil

	case "set_rptr_offs":
		hz, err := wantInt64(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetRepeaterOffset(ctx, hz)

	case "get_rptr_offs":
		hz, err := s.rig.GetRepeaterOffset(ctx)
		if err != nil {
			return nil, err
		}
		return []string{formatInt(hz)}, nil

	case "set_ctcss_tone":
		tone, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetCtcssTone(ctx, tone)

	case "get_ctcss_tone":
		tone, err := s.rig.GetCtcssTone(ctx)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(tone)}, nil

	case "set_dcs_code":
		code, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetDcsCode(ctx, code)

	case "get_dcs_code":
		code, err := s.rig.GetDcsCode(ctx)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(code)}, nil

	case "set_ctcss_sql":
		tone, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetCtcssSquelch(ctx, tone)

	case "get_ctcss_sql":
		tone, err := s.rig.GetCtcssSquelch(ctx)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(tone)}, nil

	case "set_dcs_sql":
		code, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SetDcsSquelch(ctx, code)

	case "get_dcs_sql":
		code, err := s.rig.GetDcsSquelch(ctx)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(code)}, nil

	case "send_dtmf":
		if len(args) != 1 {
			return nil, errUsage
		}
		return nil, s.rig.SendDtmf(ctx, args[0])

	case "recv_dtmf":
		maxLen, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		digits, err := s.rig.ReceiveDtmf(ctx, maxLen)
		if err != nil {
			return nil, err
		}
		return []string{digits}, nil

	case "send_morse":
		if len(args) == 0 {
			return nil, errUsage
		}
		return nil, s.rig.SendMorse(ctx, strings.Join(args, " "))

	case "stop_morse":
		return nil, s.rig.StopMorse(ctx)

	case "wait_morse":
		return nil, s.rig.WaitMorse(ctx)

	case "send_voice_mem":
		ch, err := wantInt(args, 0, 1)
		if err != nil {
			return nil, err
		}
		return nil, s.rig.SendVoiceMem(ctx, ch)

	case "stop_voice_mem":
		return nil, s.rig.StopVoiceMem(ctx)

	case "power2mW":
		if len(args) != 3 {
			return nil, errUsage
		}
		power, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, errUsage
		}
		freq, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, errUsage
		}
		mw, err := s.rig.Power2mW(ctx, power, freq, args[2])
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(mw)}, nil

	case "mW2power":
		if len(args) != 3 {
			return nil, errUsage
		}
		mw, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errUsage
		}
		freq, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, errUsage
		}
		power, err := s.rig.MW2Power(ctx, mw, freq, args[2])
		if err != nil {
			return nil, err
		}
		return []string{formatFloat(power)}, nil

	case "reset":
		if len(args) != 1 {
			return nil, errUsage
		}
		return nil, s.rig.Reset(ctx, args[0])

	case "set_conf":
		if len(args) != 2 {
			return nil, errUsage
		}
		return nil, s.rig.SetSerialConfig(ctx, args[0], args[1])

	case "get_conf":
		if len(args) != 1 {
			return nil, errUsage
		}
		value, err := s.rig.GetSerialConfig(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return []string{value}, nil

	default:
		return nil, fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func wantBool(args []string, idx, count int) (bool, error) {
	if len(args) != count {
		return false, errUsage
	}
	switch args[idx] {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, errUsage
	}
}

func wantInt(args []string, idx, count int) (int, error) {
	if len(args) != count {
		return 0, errUsage
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, errUsage
	}
	return n, nil
}

func wantInt64(args []string, idx, count int) (int64, error) {
	if len(args) != count {
		return 0, errUsage
	}
	n, err := strconv.ParseInt(args[idx], 10, 64)
	if err != nil {
		return 0, errUsage
	}
	return n, nil
}

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func formatBool(on bool) string {
	if on {
		return "1"
	}
	return "0"
}
