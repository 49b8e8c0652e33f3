package rig

import (
	"github.com/boybook/hamlib-go/pkg/caps"
	"github.com/boybook/hamlib-go/pkg/driver"
)

// Capability listings are decoded from the model's static descriptor, so
// they are synchronous and never touch the device.

func (r *Rig) listCaps(fn func(*driver.Caps) []string) ([]string, error) {
	c, err := r.Caps()
	if err != nil {
		return nil, err
	}
	return fn(c), nil
}

// SupportedModes lists the modes the resolved model supports.
func (r *Rig) SupportedModes() ([]string, error) {
	return r.listCaps(caps.Modes)
}

// SupportedVFOs lists the VFOs the resolved model can address.
func (r *Rig) SupportedVFOs() ([]string, error) {
	return r.listCaps(caps.VFOs)
}

// GettableLevels lists the levels the resolved model can read.
func (r *Rig) GettableLevels() ([]string, error) {
	return r.listCaps(caps.GettableLevels)
}

// SettableLevels lists the levels the resolved model can write.
func (r *Rig) SettableLevels() ([]string, error) {
	return r.listCaps(caps.SettableLevels)
}

// GettableFunctions lists the functions the resolved model can read.
func (r *Rig) GettableFunctions() ([]string, error) {
	return r.listCaps(caps.GettableFuncs)
}

// SettableFunctions lists the functions the resolved model can switch.
func (r *Rig) SettableFunctions() ([]string, error) {
	return r.listCaps(caps.SettableFuncs)
}

// GettableParms lists the parameters the resolved model can read.
func (r *Rig) GettableParms() ([]string, error) {
	return r.listCaps(caps.GettableParms)
}

// SettableParms lists the parameters the resolved model can write.
func (r *Rig) SettableParms() ([]string, error) {
	return r.listCaps(caps.SettableParms)
}

// SupportedScanOps lists the scan operations the resolved model supports.
func (r *Rig) SupportedScanOps() ([]string, error) {
	return r.listCaps(caps.ScanOps)
}

// SupportedVFOOps lists the VFO operations the resolved model supports.
func (r *Rig) SupportedVFOOps() ([]string, error) {
	return r.listCaps(caps.VFOOps)
}
