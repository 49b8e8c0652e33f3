package token

import (
	"github.com/boybook/hamlib-go/pkg/driver"
)

// ValueKind describes how a level or parm value is carried.
type ValueKind int

const (
	// KindInt is an integer value (dB steps, Hz, counts).
	KindInt ValueKind = iota

	// KindFloat is an unconstrained float value.
	KindFloat

	// KindFraction is a float constrained to [0.0, 1.0].
	KindFraction
)

// levelKinds records the value kind per level. Levels missing from the map
// default to KindInt.
var levelKinds = map[driver.Level]ValueKind{
	driver.LevelAF:      KindFraction,
	driver.LevelRF:      KindFraction,
	driver.LevelSQL:     KindFraction,
	driver.LevelAPF:     KindFraction,
	driver.LevelNR:      KindFraction,
	driver.LevelPBTIn:   KindFraction,
	driver.LevelPBTOut:  KindFraction,
	driver.LevelRFPower: KindFraction,
	driver.LevelMicGain: KindFraction,
	driver.LevelComp:    KindFraction,
	driver.LevelVoxGain: KindFraction,
	driver.LevelAntiVox: KindFraction,
	driver.LevelBalance: KindFraction,
	driver.LevelSWR:     KindFloat,
	driver.LevelALC:     KindFloat,
}

// LevelKind returns the value kind of a level.
func LevelKind(level driver.Level) ValueKind {
	if k, ok := levelKinds[level]; ok {
		return k
	}
	return KindInt
}

// parmKinds records the value kind per parm; parms default to KindInt.
var parmKinds = map[driver.Parm]ValueKind{
	driver.ParmBacklight: KindFraction,
}

// ParmKind returns the value kind of a parm.
func ParmKind(parm driver.Parm) ValueKind {
	if k, ok := parmKinds[parm]; ok {
		return k
	}
	return KindInt
}
