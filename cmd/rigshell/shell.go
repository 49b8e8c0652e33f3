package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/boybook/hamlib-go/pkg/rig"
)

// commandTimeout bounds the wait for one rig operation.
const commandTimeout = 10 * time.Second

// Shell handles the interactive command loop.
type Shell struct {
	r  *rig.Rig
	rl *readline.Instance
}

// NewShell creates the interactive shell for a rig handle.
func NewShell(r *rig.Rig) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rig> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{r: r, rl: rl}, nil
}

func completer() readline.AutoCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("open"),
		readline.PcItem("close"),
		readline.PcItem("state"),
		readline.PcItem("info"),
		readline.PcItem("caps"),
		readline.PcItem("freq"),
		readline.PcItem("mode"),
		readline.PcItem("vfo"),
		readline.PcItem("vfoop"),
		readline.PcItem("ptt", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("dcd"),
		readline.PcItem("strength"),
		readline.PcItem("level"),
		readline.PcItem("func"),
		readline.PcItem("parm"),
		readline.PcItem("mem"),
		readline.PcItem("channel"),
		readline.PcItem("select"),
		readline.PcItem("split", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("splitfreq"),
		readline.PcItem("splitmode"),
		readline.PcItem("rit"),
		readline.PcItem("xit"),
		readline.PcItem("scan", readline.PcItem("stop")),
		readline.PcItem("tone"),
		readline.PcItem("tsql"),
		readline.PcItem("dcs"),
		readline.PcItem("dsql"),
		readline.PcItem("shift"),
		readline.PcItem("offset"),
		readline.PcItem("ant"),
		readline.PcItem("ts"),
		readline.PcItem("powerstat"),
		readline.PcItem("conf"),
		readline.PcItem("dtmf"),
		readline.PcItem("morse", readline.PcItem("stop"), readline.PcItem("wait")),
		readline.PcItem("voice", readline.PcItem("stop")),
		readline.PcItem("reset"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (s *Shell) out() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	fmt.Fprintln(s.out(), "type 'help' for commands")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if cmd == "quit" || cmd == "exit" || cmd == "q" {
			fmt.Fprintln(s.out(), "Exiting...")
			cancel()
			return
		}

		cmdCtx, cmdCancel := context.WithTimeout(ctx, commandTimeout)
		s.execute(cmdCtx, cmd, args)
		cmdCancel()
	}
}

func (s *Shell) execute(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help", "?":
		s.printHelp()

	case "open":
		s.report(s.r.Open(ctx))

	case "close":
		s.report(s.r.Close(ctx))

	case "state":
		fmt.Fprintln(s.out(), s.r.State())

	case "info":
		s.cmdInfo()

	case "caps":
		s.cmdCaps()

	case "freq":
		s.cmdFreq(ctx, args)

	case "mode":
		s.cmdMode(ctx, args)

	case "vfo":
		s.cmdVFO(ctx, args)

	case "vfoop":
		if len(args) != 1 {
			fmt.Fprintln(s.out(), "Usage: vfoop <CPY|XCHG|UP|DOWN|...>")
			return
		}
		s.report(s.r.VFOOperation(ctx, args[0]))

	case "ptt":
		s.cmdPtt(ctx, args)

	case "dcd":
		s.show(s.r.GetDcd(ctx))

	case "strength":
		s.show(s.r.GetStrength(ctx))

	case "level":
		s.cmdLevel(ctx, args)

	case "func":
		s.cmdFunc(ctx, args)

	case "parm":
		s.cmdParm(ctx, args)

	case "mem":
		s.cmdMem(ctx, args)

	case "channel":
		s.cmdChannel(ctx, args)

	case "select":
		if len(args) != 1 {
			fmt.Fprintln(s.out(), "Usage: select <channel>")
			return
		}
		ch, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(s.out(), "Invalid channel number")
			return
		}
		s.report(s.r.SelectMemoryChannel(ctx, ch))

	case "split":
		s.cmdSplit(ctx, args)

	case "splitfreq":
		if len(args) == 0 {
			s.show(s.r.GetSplitFrequency(ctx))
			return
		}
		hz, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(s.out(), "Invalid frequency")
			return
		}
		s.report(s.r.SetSplitFrequency(ctx, hz))

	case "splitmode":
		if len(args) == 0 {
			info, err := s.r.GetSplitMode(ctx)
			if err != nil {
				s.report(err)
				return
			}
			fmt.Fprintf(s.out(), "%s %d Hz\n", info.Mode, info.Width)
			return
		}
		bandwidth := ""
		if len(args) > 1 {
			bandwidth = args[1]
		}
		s.report(s.r.SetSplitMode(ctx, args[0], bandwidth))

	case "rit":
		s.cmdOffset(ctx, args, "rit")

	case "xit":
		s.cmdOffset(ctx, args, "xit")

	case "scan":
		s.cmdScan(ctx, args)

	case "tone":
		s.cmdToneValue(ctx, args, s.r.SetCtcssTone, s.r.GetCtcssTone)

	case "tsql":
		s.cmdToneValue(ctx, args, s.r.SetCtcssSquelch, s.r.GetCtcssSquelch)

	case "dcs":
		s.cmdToneValue(ctx, args, s.r.SetDcsCode, s.r.GetDcsCode)

	case "dsql":
		s.cmdToneValue(ctx, args, s.r.SetDcsSquelch, s.r.GetDcsSquelch)

	case "shift":
		if len(args) == 0 {
			s.show(s.r.GetRepeaterShift(ctx))
			return
		}
		s.report(s.r.SetRepeaterShift(ctx, args[0]))

	case "offset":
		if len(args) == 0 {
			s.show(s.r.GetRepeaterOffset(ctx))
			return
		}
		hz, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(s.out(), "Invalid offset")
			return
		}
		s.report(s.r.SetRepeaterOffset(ctx, hz))

	case "ant":
		if len(args) == 0 {
			s.show(s.r.GetAntenna(ctx))
			return
		}
		ant, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(s.out(), "Invalid antenna number")
			return
		}
		s.report(s.r.SetAntenna(ctx, ant))

	case "ts":
		if len(args) == 0 {
			s.show(s.r.GetTuningStep(ctx))
			return
		}
		hz, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(s.out(), "Invalid tuning step")
			return
		}
		s.report(s.r.SetTuningStep(ctx, hz))

	case "powerstat":
		if len(args) == 0 {
			s.show(s.r.GetPowerState(ctx))
			return
		}
		s.report(s.r.SetPowerState(ctx, strings.ToUpper(args[0])))

	case "conf":
		s.cmdConf(ctx, args)

	case "dtmf":
		s.cmdDtmf(ctx, args)

	case "morse":
		s.cmdMorse(ctx, args)

	case "voice":
		s.cmdVoice(ctx, args)

	case "reset":
		if len(args) != 1 {
			fmt.Fprintln(s.out(), "Usage: reset <SOFT|VFO|MCAL|MASTER>")
			return
		}
		s.report(s.r.Reset(ctx, strings.ToUpper(args[0])))

	default:
		fmt.Fprintf(s.out(), "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out(), `
Rig Commands:
  Session:
    open / close           - Open or close the device session
    state                  - Show lifecycle state
    info                   - Show connection parameters
    caps                   - Show model capabilities

  Tuning:
    freq [hz]              - Get or set frequency
    mode [mode [bw]]       - Get or set mode (bw: narrow, wide or Hz)
    vfo [name]             - Get or set active VFO
    vfoop <op>             - VFO operation (CPY, XCHG, UP, ...)
    ts [hz]                - Get or set tuning step
    rit [hz|clear]         - Get, set or clear RIT offset
    xit [hz|clear]         - Get, set or clear XIT offset

  Transmit:
    ptt [on|off]           - Get or set PTT
    dcd                    - Read squelch state
    split [on|off [vfo]]   - Get or set split operation
    splitfreq [hz]         - Get or set TX frequency
    splitmode [mode [bw]]  - Get or set TX mode

  Levels:
    strength               - Read signal strength (dB over S9)
    level <name> [value]   - Get or set a level
    func <name> [on|off]   - Get or set a function
    parm <name> [value]    - Get or set a parameter

  Memory:
    mem [ch]               - Get or set memory channel number
    channel <ch>           - Show memory channel contents
    select <ch>            - Switch to memory mode on a channel
    scan <type> [ch]       - Start a scan; 'scan stop' stops

  Signaling:
    tone/tsql [tenths-hz]  - CTCSS tone / squelch tone
    dcs/dsql [code]        - DCS code / squelch code
    shift [+|-|NONE]       - Repeater shift
    offset [hz]            - Repeater offset

  Misc:
    ant [n]                - Get or set antenna
    powerstat [state]      - Get or set power state
    conf <key> [value]     - Get or set a serial config token
    dtmf <digits> | dtmf recv [n]  - Send or receive DTMF
    morse <text> | morse stop | morse wait
    voice <ch> | voice stop
    reset <type>           - Reset the rig
    quit                   - Exit`)
}

// report prints OK or the error of a set-style command.
func (s *Shell) report(err error) {
	if err != nil {
		fmt.Fprintf(s.out(), "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out(), "OK")
}

// show prints the value or error of a get-style command.
func (s *Shell) show(value any, err error) {
	if err != nil {
		fmt.Fprintf(s.out(), "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out(), value)
}

func (s *Shell) cmdInfo() {
	info, err := s.r.ConnectionInfo()
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out(), "  Connection: %s\n", info.ConnectionType)
	fmt.Fprintf(s.out(), "  Address:    %s\n", info.Address)
	fmt.Fprintf(s.out(), "  Open:       %v\n", info.IsOpen)
	fmt.Fprintf(s.out(), "  Model:      %d (requested %d)\n", info.ResolvedModel, info.RequestedModel)
}

func (s *Shell) cmdCaps() {
	c, err := s.r.Caps()
	if err != nil {
		s.report(err)
		return
	}
	modes, _ := s.r.SupportedModes()
	vfos, _ := s.r.SupportedVFOs()
	setLevels, _ := s.r.SettableLevels()
	setFuncs, _ := s.r.SettableFunctions()

	fmt.Fprintf(s.out(), "  Model:  %s %s (#%d)\n", c.MfgName, c.ModelName, c.Model)
	fmt.Fprintf(s.out(), "  Modes:  %s\n", strings.Join(modes, " "))
	fmt.Fprintf(s.out(), "  VFOs:   %s\n", strings.Join(vfos, " "))
	fmt.Fprintf(s.out(), "  Levels: %s\n", strings.Join(setLevels, " "))
	fmt.Fprintf(s.out(), "  Funcs:  %s\n", strings.Join(setFuncs, " "))
	fmt.Fprintf(s.out(), "  Memory: %d..%d\n", c.MemMin, c.MemMax)
}

func (s *Shell) cmdFreq(ctx context.Context, args []string) {
	if len(args) == 0 {
		hz, err := s.r.GetFrequency(ctx)
		if err != nil {
			s.report(err)
			return
		}
		fmt.Fprintf(s.out(), "%d Hz\n", hz)
		return
	}
	hz, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(s.out(), "Invalid frequency")
		return
	}
	s.report(s.r.SetFrequency(ctx, hz))
}

func (s *Shell) cmdMode(ctx context.Context, args []string) {
	if len(args) == 0 {
		info, err := s.r.GetMode(ctx)
		if err != nil {
			s.report(err)
			return
		}
		fmt.Fprintf(s.out(), "%s %d Hz\n", info.Mode, info.Width)
		return
	}
	bandwidth := ""
	if len(args) > 1 {
		bandwidth = args[1]
	}
	s.report(s.r.SetMode(ctx, strings.ToUpper(args[0]), bandwidth))
}

func (s *Shell) cmdVFO(ctx context.Context, args []string) {
	if len(args) == 0 {
		s.show(s.r.GetVFO(ctx))
		return
	}
	s.report(s.r.SetVFO(ctx, args[0]))
}

func (s *Shell) cmdPtt(ctx context.Context, args []string) {
	if len(args) == 0 {
		on, err := s.r.GetPtt(ctx)
		if err != nil {
			s.report(err)
			return
		}
		if on {
			fmt.Fprintln(s.out(), "TX")
		} else {
			fmt.Fprintln(s.out(), "RX")
		}
		return
	}
	s.report(s.r.SetPtt(ctx, args[0] == "on"))
}

func (s *Shell) cmdLevel(ctx context.Context, args []string) {
	switch len(args) {
	case 1:
		s.show(s.r.GetLevel(ctx, strings.ToUpper(args[0])))
	case 2:
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintln(s.out(), "Invalid value")
			return
		}
		s.report(s.r.SetLevel(ctx, strings.ToUpper(args[0]), value))
	default:
		fmt.Fprintln(s.out(), "Usage: level <name> [value]")
	}
}

func (s *Shell) cmdFunc(ctx context.Context, args []string) {
	switch len(args) {
	case 1:
		s.show(s.r.GetFunction(ctx, strings.ToUpper(args[0])))
	case 2:
		s.report(s.r.SetFunction(ctx, strings.ToUpper(args[0]), args[1] == "on"))
	default:
		fmt.Fprintln(s.out(), "Usage: func <name> [on|off]")
	}
}

func (s *Shell) cmdParm(ctx context.Context, args []string) {
	switch len(args) {
	case 1:
		s.show(s.r.GetParm(ctx, strings.ToUpper(args[0])))
	case 2:
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintln(s.out(), "Invalid value")
			return
		}
		s.report(s.r.SetParm(ctx, strings.ToUpper(args[0]), value))
	default:
		fmt.Fprintln(s.out(), "Usage: parm <name> [value]")
	}
}

func (s *Shell) cmdMem(ctx context.Context, args []string) {
	if len(args) == 0 {
		s.show(s.r.GetMemoryChannelNumber(ctx))
		return
	}
	ch, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.out(), "Invalid channel number")
		return
	}
	s.report(s.r.SetMemoryChannel(ctx, ch))
}

func (s *Shell) cmdChannel(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out(), "Usage: channel <ch>")
		return
	}
	ch, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.out(), "Invalid channel number")
		return
	}
	data, err := s.r.GetMemoryChannel(ctx, ch, true)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out(), "  Channel %d", data.Number)
	if data.Name != "" {
		fmt.Fprintf(s.out(), " (%s)", data.Name)
	}
	fmt.Fprintln(s.out())
	fmt.Fprintf(s.out(), "  Freq:  %d Hz\n", data.Frequency)
	fmt.Fprintf(s.out(), "  Mode:  %s %d Hz\n", data.Mode, data.Width)
	if data.Split {
		fmt.Fprintf(s.out(), "  TX:    %d Hz (split)\n", data.TXFrequency)
	}
}

func (s *Shell) cmdSplit(ctx context.Context, args []string) {
	if len(args) == 0 {
		info, err := s.r.GetSplit(ctx)
		if err != nil {
			s.report(err)
			return
		}
		if info.Enabled {
			fmt.Fprintf(s.out(), "on (TX %s)\n", info.TxVFO)
		} else {
			fmt.Fprintln(s.out(), "off")
		}
		return
	}
	if len(args) > 1 {
		s.report(s.r.SetSplit(ctx, args[0] == "on", args[1]))
		return
	}
	s.report(s.r.SetSplit(ctx, args[0] == "on"))
}

func (s *Shell) cmdOffset(ctx context.Context, args []string, which string) {
	get := s.r.GetRit
	set := s.r.SetRit
	clear := s.r.ClearRit
	if which == "xit" {
		get = s.r.GetXit
		set = s.r.SetXit
		clear = s.r.ClearXit
	}

	if len(args) == 0 {
		s.show(get(ctx))
		return
	}
	if args[0] == "clear" {
		s.report(clear(ctx))
		return
	}
	hz, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(s.out(), "Invalid offset")
		return
	}
	s.report(set(ctx, hz))
}

func (s *Shell) cmdScan(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out(), "Usage: scan <MEM|VFO|PROG|...> [ch] | scan stop")
		return
	}
	if strings.EqualFold(args[0], "stop") {
		s.report(s.r.StopScan(ctx))
		return
	}
	ch := 0
	if len(args) > 1 {
		var err error
		ch, err = strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(s.out(), "Invalid channel number")
			return
		}
	}
	s.report(s.r.StartScan(ctx, strings.ToUpper(args[0]), ch))
}

func (s *Shell) cmdToneValue(ctx context.Context, args []string,
	set func(context.Context, int, ...string) error,
	get func(context.Context, ...string) (int, error)) {
	if len(args) == 0 {
		s.show(get(ctx))
		return
	}
	value, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.out(), "Invalid value")
		return
	}
	s.report(set(ctx, value))
}

func (s *Shell) cmdConf(ctx context.Context, args []string) {
	switch len(args) {
	case 0:
		for key, values := range s.r.SupportedSerialConfig() {
			if len(values) > 0 {
				fmt.Fprintf(s.out(), "  %s: %s\n", key, strings.Join(values, " "))
			} else {
				fmt.Fprintf(s.out(), "  %s: <number>\n", key)
			}
		}
	case 1:
		s.show(s.r.GetSerialConfig(ctx, args[0]))
	case 2:
		s.report(s.r.SetSerialConfig(ctx, args[0], args[1]))
	default:
		fmt.Fprintln(s.out(), "Usage: conf <key> [value]")
	}
}

func (s *Shell) cmdDtmf(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out(), "Usage: dtmf <digits> | dtmf recv [n]")
		return
	}
	if args[0] == "recv" {
		maxLen := 32
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[1]); err == nil {
				maxLen = n
			}
		}
		s.show(s.r.ReceiveDtmf(ctx, maxLen))
		return
	}
	s.report(s.r.SendDtmf(ctx, args[0]))
}

func (s *Shell) cmdMorse(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out(), "Usage: morse <text> | morse stop | morse wait")
		return
	}
	switch args[0] {
	case "stop":
		s.report(s.r.StopMorse(ctx))
	case "wait":
		s.report(s.r.WaitMorse(ctx))
	default:
		s.report(s.r.SendMorse(ctx, strings.Join(args, " ")))
	}
}

func (s *Shell) cmdVoice(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out(), "Usage: voice <ch> | voice stop")
		return
	}
	if args[0] == "stop" {
		s.report(s.r.StopVoiceMem(ctx))
		return
	}
	ch, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.out(), "Invalid memory number")
		return
	}
	s.report(s.r.SendVoiceMem(ctx, ch))
}
