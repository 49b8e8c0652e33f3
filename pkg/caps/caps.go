// Package caps decodes capability bitmasks into token listings.
//
// Capability masks are static metadata of a rig model, so every query here
// is a pure function over the driver's capability descriptor: no device
// session is needed and results are deterministic, in symbol-table order.
package caps

import (
	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

// Bits constrains the integer encodings used for capability masks.
type Bits interface {
	~int | ~int32 | ~int64
}

// List returns the names of all table entries whose bit is set in mask,
// in table order. Entries that decode to an empty name are skipped.
func List[T Bits](t *token.Table[T], mask T) []string {
	names := make([]string, 0)
	for _, e := range t.Entries() {
		if mask&e.Code == 0 {
			continue
		}
		if e.Name == "" {
			continue
		}
		names = append(names, e.Name)
	}
	return names
}

// Modes lists the modes a model supports.
func Modes(c *driver.Caps) []string {
	return List(token.Modes, c.Modes)
}

// VFOs lists the VFOs a model can address.
func VFOs(c *driver.Caps) []string {
	return List(token.VFOs, c.VFOs)
}

// GettableLevels lists the levels a model can read.
func GettableLevels(c *driver.Caps) []string {
	return List(token.Levels, c.HasGetLevel)
}

// SettableLevels lists the levels a model can write.
func SettableLevels(c *driver.Caps) []string {
	return List(token.Levels, c.HasSetLevel)
}

// GettableFuncs lists the functions a model can read.
func GettableFuncs(c *driver.Caps) []string {
	return List(token.Funcs, c.HasGetFunc)
}

// SettableFuncs lists the functions a model can switch.
func SettableFuncs(c *driver.Caps) []string {
	return List(token.Funcs, c.HasSetFunc)
}

// GettableParms lists the parameters a model can read.
func GettableParms(c *driver.Caps) []string {
	return List(token.Parms, c.HasGetParm)
}

// SettableParms lists the parameters a model can write.
func SettableParms(c *driver.Caps) []string {
	return List(token.Parms, c.HasSetParm)
}

// ScanOps lists the scan operations a model supports.
func ScanOps(c *driver.Caps) []string {
	return List(token.Scans, c.ScanOps)
}

// VFOOps lists the VFO operations a model supports.
func VFOOps(c *driver.Caps) []string {
	return List(token.VFOOps, c.VFOOps)
}
