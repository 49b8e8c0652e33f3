package token

import (
	"github.com/boybook/hamlib-go/pkg/driver"
)

// VFOs maps VFO names. "currVFO" addresses whichever VFO the rig has
// selected and is the default for operations that take an optional VFO.
var VFOs = NewTable("vfo", []Entry[driver.VFO]{
	{Name: "VFO-A", Code: driver.VFOA},
	{Name: "VFO-B", Code: driver.VFOB},
	{Name: "VFO-C", Code: driver.VFOC},
	{Name: "Sub", Code: driver.VFOSub},
	{Name: "Main", Code: driver.VFOMain},
	{Name: "VFO", Code: driver.VFOLast},
	{Name: "MEM", Code: driver.VFOMem},
	{Name: "currVFO", Code: driver.VFOCurr},
})

// Modes maps modulation mode names.
var Modes = NewTable("mode", []Entry[driver.Mode]{
	{Name: "AM", Code: driver.ModeAM},
	{Name: "CW", Code: driver.ModeCW},
	{Name: "USB", Code: driver.ModeUSB},
	{Name: "LSB", Code: driver.ModeLSB},
	{Name: "RTTY", Code: driver.ModeRTTY},
	{Name: "FM", Code: driver.ModeFM},
	{Name: "WFM", Code: driver.ModeWFM},
	{Name: "CWR", Code: driver.ModeCWR},
	{Name: "RTTYR", Code: driver.ModeRTTYR},
	{Name: "AMS", Code: driver.ModeAMS},
	{Name: "PKTLSB", Code: driver.ModePktLSB},
	{Name: "PKTUSB", Code: driver.ModePktUSB},
	{Name: "PKTFM", Code: driver.ModePktFM},
	{Name: "FAX", Code: driver.ModeFAX},
	{Name: "SAM", Code: driver.ModeSAM},
	{Name: "DSB", Code: driver.ModeDSB},
	{Name: "FMN", Code: driver.ModeFMN},
	{Name: "PKTAM", Code: driver.ModePktAM},
	{Name: "DSTAR", Code: driver.ModeDStar},
	{Name: "C4FM", Code: driver.ModeC4FM},
})

// Levels maps level names.
var Levels = NewTable("level", []Entry[driver.Level]{
	{Name: "PREAMP", Code: driver.LevelPreamp},
	{Name: "ATT", Code: driver.LevelAtt},
	{Name: "VOXDELAY", Code: driver.LevelVoxDelay},
	{Name: "AF", Code: driver.LevelAF},
	{Name: "RF", Code: driver.LevelRF},
	{Name: "SQL", Code: driver.LevelSQL},
	{Name: "IF", Code: driver.LevelIF},
	{Name: "APF", Code: driver.LevelAPF},
	{Name: "NR", Code: driver.LevelNR},
	{Name: "PBT_IN", Code: driver.LevelPBTIn},
	{Name: "PBT_OUT", Code: driver.LevelPBTOut},
	{Name: "CWPITCH", Code: driver.LevelCWPitch},
	{Name: "RFPOWER", Code: driver.LevelRFPower},
	{Name: "MICGAIN", Code: driver.LevelMicGain},
	{Name: "KEYSPD", Code: driver.LevelKeySpeed},
	{Name: "NOTCHF", Code: driver.LevelNotchF},
	{Name: "COMP", Code: driver.LevelComp},
	{Name: "AGC", Code: driver.LevelAGC},
	{Name: "BKINDL", Code: driver.LevelBkinDelay},
	{Name: "BAL", Code: driver.LevelBalance},
	{Name: "METER", Code: driver.LevelMeter},
	{Name: "VOXGAIN", Code: driver.LevelVoxGain},
	{Name: "ANTIVOX", Code: driver.LevelAntiVox},
	{Name: "RAWSTR", Code: driver.LevelRawStr},
	{Name: "SWR", Code: driver.LevelSWR},
	{Name: "ALC", Code: driver.LevelALC},
	{Name: "STRENGTH", Code: driver.LevelStrength},
})

// Funcs maps switchable function names.
var Funcs = NewTable("function", []Entry[driver.Func]{
	{Name: "FAGC", Code: driver.FuncFAGC},
	{Name: "NB", Code: driver.FuncNB},
	{Name: "COMP", Code: driver.FuncComp},
	{Name: "VOX", Code: driver.FuncVOX},
	{Name: "TONE", Code: driver.FuncTone},
	{Name: "TSQL", Code: driver.FuncTSQL},
	{Name: "SBKIN", Code: driver.FuncSBkin},
	{Name: "FBKIN", Code: driver.FuncFBkin},
	{Name: "ANF", Code: driver.FuncANF},
	{Name: "NR", Code: driver.FuncNR},
	{Name: "AIP", Code: driver.FuncAIP},
	{Name: "APF", Code: driver.FuncAPF},
	{Name: "MON", Code: driver.FuncMon},
	{Name: "MN", Code: driver.FuncMN},
	{Name: "RF", Code: driver.FuncRF},
	{Name: "ARO", Code: driver.FuncARO},
	{Name: "LOCK", Code: driver.FuncLock},
	{Name: "MUTE", Code: driver.FuncMute},
	{Name: "VSC", Code: driver.FuncVSC},
	{Name: "REV", Code: driver.FuncRev},
	{Name: "SQL", Code: driver.FuncSQL},
	{Name: "ABM", Code: driver.FuncABM},
	{Name: "BC", Code: driver.FuncBC},
	{Name: "MBC", Code: driver.FuncMBC},
	{Name: "RIT", Code: driver.FuncRIT},
	{Name: "AFC", Code: driver.FuncAFC},
	{Name: "SATMODE", Code: driver.FuncSatMode},
	{Name: "SCOPE", Code: driver.FuncScope},
	{Name: "RESUME", Code: driver.FuncResume},
	{Name: "TBURST", Code: driver.FuncTBurst},
	{Name: "TUNER", Code: driver.FuncTuner},
})

// Parms maps rig-wide parameter names.
var Parms = NewTable("parm", []Entry[driver.Parm]{
	{Name: "ANN", Code: driver.ParmAnnounce},
	{Name: "APO", Code: driver.ParmAPO},
	{Name: "BACKLIGHT", Code: driver.ParmBacklight},
	{Name: "BEEP", Code: driver.ParmBeep},
	{Name: "TIME", Code: driver.ParmTime},
	{Name: "BAT", Code: driver.ParmBat},
	{Name: "KEYLIGHT", Code: driver.ParmKeyLight},
})

// Scans maps scan operation names.
var Scans = NewTable("scan", []Entry[driver.Scan]{
	{Name: "MEM", Code: driver.ScanMem},
	{Name: "SLCT", Code: driver.ScanSlct},
	{Name: "PRIO", Code: driver.ScanPrio},
	{Name: "PROG", Code: driver.ScanProg},
	{Name: "DELTA", Code: driver.ScanDelta},
	{Name: "VFO", Code: driver.ScanVFO},
	{Name: "PLT", Code: driver.ScanPlt},
	{Name: "STOP", Code: driver.ScanStop},
})

// VFOOps maps VFO operation names.
var VFOOps = NewTable("vfo operation", []Entry[driver.VFOOp]{
	{Name: "CPY", Code: driver.VFOOpCpy},
	{Name: "XCHG", Code: driver.VFOOpXchg},
	{Name: "FROM_VFO", Code: driver.VFOOpFromVFO},
	{Name: "TO_VFO", Code: driver.VFOOpToVFO},
	{Name: "MCL", Code: driver.VFOOpMCL},
	{Name: "UP", Code: driver.VFOOpUp},
	{Name: "DOWN", Code: driver.VFOOpDown},
	{Name: "BAND_UP", Code: driver.VFOOpBandUp},
	{Name: "BAND_DOWN", Code: driver.VFOOpBandDown},
	{Name: "LEFT", Code: driver.VFOOpLeft},
	{Name: "RIGHT", Code: driver.VFOOpRight},
	{Name: "TUNE", Code: driver.VFOOpTune},
	{Name: "TOGGLE", Code: driver.VFOOpToggle},
})

// PTTTypes maps PTT keying type names.
var PTTTypes = NewTable("ptt type", []Entry[driver.PTTType]{
	{Name: "NONE", Code: driver.PTTTypeNone},
	{Name: "RIG", Code: driver.PTTTypeRig},
	{Name: "DTR", Code: driver.PTTTypeSerialDTR},
	{Name: "RTS", Code: driver.PTTTypeSerialRTS},
	{Name: "PARALLEL", Code: driver.PTTTypeParallel},
	{Name: "RIG_MICDATA", Code: driver.PTTTypeRigMicData},
	{Name: "CM108", Code: driver.PTTTypeCM108},
	{Name: "GPIO", Code: driver.PTTTypeGPIO},
	{Name: "GPION", Code: driver.PTTTypeGPION},
})

// DCDTypes maps squelch sensing type names.
var DCDTypes = NewTable("dcd type", []Entry[driver.DCDType]{
	{Name: "NONE", Code: driver.DCDTypeNone},
	{Name: "RIG", Code: driver.DCDTypeRig},
	{Name: "DSR", Code: driver.DCDTypeSerialDSR},
	{Name: "CTS", Code: driver.DCDTypeSerialCTS},
	{Name: "CD", Code: driver.DCDTypeSerialCAR},
	{Name: "PARALLEL", Code: driver.DCDTypeParallel},
	{Name: "CM108", Code: driver.DCDTypeCM108},
	{Name: "GPIO", Code: driver.DCDTypeGPIO},
	{Name: "GPION", Code: driver.DCDTypeGPION},
})

// Resets maps reset operation names.
var Resets = NewTable("reset", []Entry[driver.Reset]{
	{Name: "NONE", Code: driver.ResetNone},
	{Name: "SOFT", Code: driver.ResetSoft},
	{Name: "VFO", Code: driver.ResetVFO},
	{Name: "MCAL", Code: driver.ResetMCall},
	{Name: "MASTER", Code: driver.ResetMaster},
})

// RptShifts maps repeater shift direction names.
var RptShifts = NewTable("repeater shift", []Entry[driver.RptShift]{
	{Name: "NONE", Code: driver.RptShiftNone},
	{Name: "-", Code: driver.RptShiftMinus},
	{Name: "+", Code: driver.RptShiftPlus},
})

// PowerStates maps power status names.
var PowerStates = NewTable("power state", []Entry[driver.PowerState]{
	{Name: "OFF", Code: driver.PowerOff},
	{Name: "ON", Code: driver.PowerOn},
	{Name: "STANDBY", Code: driver.PowerStandby},
	{Name: "OPERATE", Code: driver.PowerOperate},
})
