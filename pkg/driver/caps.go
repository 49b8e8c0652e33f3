package driver

// PassbandRange holds the normal, narrow and wide passbands a model offers
// for one mode. A zero Narrow or Wide means the model has no such filter and
// the normal passband is used instead.
type PassbandRange struct {
	Normal Passband
	Narrow Passband
	Wide   Passband
}

// Caps is the static capability descriptor of a rig model. It is metadata
// of the model, not of a live session: it is valid before Open and after
// Close, and must never change once published.
type Caps struct {
	// Model is the numeric model identifier.
	Model Model

	// ModelName is the display name of the model.
	ModelName string

	// MfgName is the manufacturer name.
	MfgName string

	// Version is the backend version string.
	Version string

	// Modes is the bitmask of supported modes.
	Modes Mode

	// VFOs is the bitmask of addressable VFOs.
	VFOs VFO

	// HasGetLevel and HasSetLevel are bitmasks of readable/writable levels.
	HasGetLevel Level
	HasSetLevel Level

	// HasGetFunc and HasSetFunc are bitmasks of readable/switchable functions.
	HasGetFunc Func
	HasSetFunc Func

	// HasGetParm and HasSetParm are bitmasks of readable/writable parameters.
	HasGetParm Parm
	HasSetParm Parm

	// ScanOps is the bitmask of supported scan operations.
	ScanOps Scan

	// VFOOps is the bitmask of supported VFO operations.
	VFOOps VFOOp

	// Passbands lists filter widths per mode.
	Passbands map[Mode]PassbandRange

	// MemRange is the inclusive range of memory channel numbers.
	MemMin, MemMax int
}

// PassbandNarrow returns the narrow passband for a mode, falling back to
// the normal passband when the model has no narrow filter for it.
func (c *Caps) PassbandNarrow(m Mode) Passband {
	pb, ok := c.Passbands[m]
	if !ok {
		return PassbandNormal
	}
	if pb.Narrow != 0 {
		return pb.Narrow
	}
	return pb.Normal
}

// PassbandWide returns the wide passband for a mode, falling back to the
// normal passband when the model has no wide filter for it.
func (c *Caps) PassbandWide(m Mode) Passband {
	pb, ok := c.Passbands[m]
	if !ok {
		return PassbandNormal
	}
	if pb.Wide != 0 {
		return pb.Wide
	}
	return pb.Normal
}
