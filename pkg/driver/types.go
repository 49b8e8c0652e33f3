package driver

// Model identifies a rig model understood by a backend.
type Model int

const (
	// ModelDummy is the built-in simulated rig model.
	ModelDummy Model = 1

	// ModelNetRigctl is the network control daemon backend. The rig layer
	// substitutes this model whenever a host:port address is given.
	ModelNetRigctl Model = 2
)

// Freq is a frequency in Hz.
type Freq int64

// Passband is a filter passband width in Hz.
type Passband int

const (
	// PassbandNormal selects the backend's default passband for a mode.
	PassbandNormal Passband = 0

	// PassbandNoChange keeps the current passband.
	PassbandNoChange Passband = -1
)

// VFO identifies one of the rig's frequency/mode contexts. VFO values are
// bit flags so capability masks can enumerate them.
type VFO int

const (
	// VFONone means no VFO specified.
	VFONone VFO = 0

	// VFOA is the main receiver VFO A.
	VFOA VFO = 1 << 0

	// VFOB is VFO B.
	VFOB VFO = 1 << 1

	// VFOC is VFO C where present.
	VFOC VFO = 1 << 2

	// VFOSub addresses the sub receiver.
	VFOSub VFO = 1 << 25

	// VFOMain addresses the main receiver.
	VFOMain VFO = 1 << 26

	// VFOLast addresses the last active VFO.
	VFOLast VFO = 1 << 27

	// VFOMem addresses memory mode.
	VFOMem VFO = 1 << 28

	// VFOCurr addresses whichever VFO is currently selected.
	VFOCurr VFO = 1 << 29
)

// Mode is a modulation mode. Modes are bit flags; a model's capability
// descriptor ORs together the modes it supports.
type Mode int64

const (
	ModeNone   Mode = 0
	ModeAM     Mode = 1 << 0
	ModeCW     Mode = 1 << 1
	ModeUSB    Mode = 1 << 2
	ModeLSB    Mode = 1 << 3
	ModeRTTY   Mode = 1 << 4
	ModeFM     Mode = 1 << 5
	ModeWFM    Mode = 1 << 6
	ModeCWR    Mode = 1 << 7
	ModeRTTYR  Mode = 1 << 8
	ModeAMS    Mode = 1 << 9
	ModePktLSB Mode = 1 << 10
	ModePktUSB Mode = 1 << 11
	ModePktFM  Mode = 1 << 12
	ModeFAX    Mode = 1 << 13
	ModeSAM    Mode = 1 << 14
	ModeDSB    Mode = 1 << 15
	ModeFMN    Mode = 1 << 16
	ModePktAM  Mode = 1 << 17
	ModeDStar  Mode = 1 << 18
	ModeC4FM   Mode = 1 << 19
)

// Level identifies an adjustable analog or discrete level. Levels are bit
// flags shared between the set/get masks of a capability descriptor.
type Level int64

const (
	LevelPreamp   Level = 1 << 0
	LevelAtt      Level = 1 << 1
	LevelVoxDelay Level = 1 << 2
	LevelAF       Level = 1 << 3
	LevelRF       Level = 1 << 4
	LevelSQL      Level = 1 << 5
	LevelIF       Level = 1 << 6
	LevelAPF      Level = 1 << 7
	LevelNR       Level = 1 << 8
	LevelPBTIn    Level = 1 << 9
	LevelPBTOut   Level = 1 << 10
	LevelCWPitch  Level = 1 << 11
	LevelRFPower  Level = 1 << 12
	LevelMicGain  Level = 1 << 13
	LevelKeySpeed Level = 1 << 14
	LevelNotchF   Level = 1 << 15
	LevelComp     Level = 1 << 16
	LevelAGC      Level = 1 << 17
	LevelBkinDelay Level = 1 << 18
	LevelBalance  Level = 1 << 19
	LevelMeter    Level = 1 << 20
	LevelVoxGain  Level = 1 << 21
	LevelAntiVox  Level = 1 << 22
	LevelRawStr   Level = 1 << 26
	LevelSWR      Level = 1 << 28
	LevelALC      Level = 1 << 29
	LevelStrength Level = 1 << 30
)

// Func identifies a switchable function (on/off feature).
type Func int64

const (
	FuncFAGC    Func = 1 << 0
	FuncNB      Func = 1 << 1
	FuncComp    Func = 1 << 2
	FuncVOX     Func = 1 << 3
	FuncTone    Func = 1 << 4
	FuncTSQL    Func = 1 << 5
	FuncSBkin   Func = 1 << 6
	FuncFBkin   Func = 1 << 7
	FuncANF     Func = 1 << 8
	FuncNR      Func = 1 << 9
	FuncAIP     Func = 1 << 10
	FuncAPF     Func = 1 << 11
	FuncMon     Func = 1 << 12
	FuncMN      Func = 1 << 13
	FuncRF      Func = 1 << 14
	FuncARO     Func = 1 << 15
	FuncLock    Func = 1 << 16
	FuncMute    Func = 1 << 17
	FuncVSC     Func = 1 << 18
	FuncRev     Func = 1 << 19
	FuncSQL     Func = 1 << 20
	FuncABM     Func = 1 << 21
	FuncBC      Func = 1 << 22
	FuncMBC     Func = 1 << 23
	FuncRIT     Func = 1 << 24
	FuncAFC     Func = 1 << 25
	FuncSatMode Func = 1 << 26
	FuncScope   Func = 1 << 27
	FuncResume  Func = 1 << 28
	FuncTBurst  Func = 1 << 29
	FuncTuner   Func = 1 << 30
)

// Parm identifies a rig-wide parameter (not tied to a VFO).
type Parm int64

const (
	ParmAnnounce  Parm = 1 << 0
	ParmAPO       Parm = 1 << 1
	ParmBacklight Parm = 1 << 2
	ParmBeep      Parm = 1 << 4
	ParmTime      Parm = 1 << 5
	ParmBat       Parm = 1 << 6
	ParmKeyLight  Parm = 1 << 7
)

// Scan identifies a scan operation.
type Scan int

const (
	ScanNone  Scan = 0
	ScanMem   Scan = 1 << 0
	ScanSlct  Scan = 1 << 1
	ScanPrio  Scan = 1 << 2
	ScanProg  Scan = 1 << 3
	ScanDelta Scan = 1 << 4
	ScanVFO   Scan = 1 << 5
	ScanPlt   Scan = 1 << 6
	ScanStop  Scan = 1 << 7
)

// VFOOp identifies a VFO operation (memory copy, band up, and so on).
type VFOOp int

const (
	VFOOpCpy      VFOOp = 1 << 0
	VFOOpXchg     VFOOp = 1 << 1
	VFOOpFromVFO  VFOOp = 1 << 2
	VFOOpToVFO    VFOOp = 1 << 3
	VFOOpMCL      VFOOp = 1 << 4
	VFOOpUp       VFOOp = 1 << 5
	VFOOpDown     VFOOp = 1 << 6
	VFOOpBandUp   VFOOp = 1 << 7
	VFOOpBandDown VFOOp = 1 << 8
	VFOOpLeft     VFOOp = 1 << 9
	VFOOpRight    VFOOp = 1 << 10
	VFOOpTune     VFOOp = 1 << 11
	VFOOpToggle   VFOOp = 1 << 12
)

// PTT represents push-to-talk state.
type PTT int

const (
	// PTTOff is receive mode.
	PTTOff PTT = 0

	// PTTOn is transmit mode.
	PTTOn PTT = 1

	// PTTOnMic is transmit with mic audio source.
	PTTOnMic PTT = 2

	// PTTOnData is transmit with data audio source.
	PTTOnData PTT = 3
)

// DCD represents squelch/data-carrier-detect state.
type DCD int

const (
	// DCDOff means squelch closed.
	DCDOff DCD = 0

	// DCDOn means squelch open.
	DCDOn DCD = 1
)

// PTTType selects how PTT is keyed.
type PTTType int

const (
	PTTTypeNone PTTType = iota
	PTTTypeRig
	PTTTypeSerialDTR
	PTTTypeSerialRTS
	PTTTypeParallel
	PTTTypeRigMicData
	PTTTypeCM108
	PTTTypeGPIO
	PTTTypeGPION
)

// DCDType selects how squelch state is sensed.
type DCDType int

const (
	DCDTypeNone DCDType = iota
	DCDTypeRig
	DCDTypeSerialDSR
	DCDTypeSerialCTS
	DCDTypeSerialCAR
	DCDTypeParallel
	DCDTypeCM108
	DCDTypeGPIO
	DCDTypeGPION
)

// RptShift is a repeater shift direction.
type RptShift int

const (
	RptShiftNone  RptShift = 0
	RptShiftMinus RptShift = 1
	RptShiftPlus  RptShift = 2
)

// PowerState is the rig's power status.
type PowerState int

const (
	PowerOff     PowerState = 0
	PowerOn      PowerState = 1
	PowerStandby PowerState = 2
	PowerOperate PowerState = 4
)

// Reset selects a reset operation.
type Reset int

const (
	ResetNone   Reset = 0
	ResetSoft   Reset = 1 << 0
	ResetVFO    Reset = 1 << 1
	ResetMCall  Reset = 1 << 2
	ResetMaster Reset = 1 << 3
)

// Value carries a level or parm value. Levels are either float-valued
// (gains and fractions, typically 0.0..1.0) or integer-valued (dB steps,
// counts); exactly one field is meaningful for a given level.
type Value struct {
	I int
	F float64
}

// IntValue returns a Value holding an integer.
func IntValue(i int) Value { return Value{I: i} }

// FloatValue returns a Value holding a float.
func FloatValue(f float64) Value { return Value{F: f} }

// Channel is the contents of one memory channel.
type Channel struct {
	Number  int
	Freq    Freq
	Mode    Mode
	Width   Passband
	TXFreq  Freq
	Split   bool
	Name    string
}
