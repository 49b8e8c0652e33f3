package caps

import (
	"testing"

	"github.com/boybook/hamlib-go/pkg/driver"
	"github.com/boybook/hamlib-go/pkg/token"
)

func TestListTableOrder(t *testing.T) {
	// SQL is declared after AF in the level table, so the listing keeps
	// that order regardless of the mask's bit positions.
	mask := driver.LevelSQL | driver.LevelAF
	got := List(token.Levels, mask)

	want := []string{"AF", "SQL"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListEmptyMask(t *testing.T) {
	got := List(token.Modes, driver.Mode(0))
	if len(got) != 0 {
		t.Errorf("List(empty mask) = %v, want empty", got)
	}
}

func TestModes(t *testing.T) {
	c := &driver.Caps{Modes: driver.ModeAM | driver.ModeFM | driver.ModeUSB}
	got := Modes(c)

	want := []string{"AM", "USB", "FM"}
	if len(got) != len(want) {
		t.Fatalf("Modes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Modes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestVFOs(t *testing.T) {
	c := &driver.Caps{VFOs: driver.VFOA | driver.VFOB | driver.VFOMem}

	vfos := VFOs(c)
	want := []string{"VFO-A", "VFO-B", "MEM"}
	if len(vfos) != len(want) {
		t.Fatalf("VFOs() = %v, want %v", vfos, want)
	}
	for i := range want {
		if vfos[i] != want[i] {
			t.Errorf("VFOs()[%d] = %q, want %q", i, vfos[i], want[i])
		}
	}
}

func TestGetSetSplitMasks(t *testing.T) {
	c := &driver.Caps{
		HasGetLevel: driver.LevelStrength,
		HasSetLevel: driver.LevelAF,
		HasGetFunc:  driver.FuncNB,
		HasSetFunc:  driver.FuncNB | driver.FuncVOX,
	}

	if got := GettableLevels(c); len(got) != 1 || got[0] != "STRENGTH" {
		t.Errorf("GettableLevels() = %v, want [STRENGTH]", got)
	}
	if got := SettableLevels(c); len(got) != 1 || got[0] != "AF" {
		t.Errorf("SettableLevels() = %v, want [AF]", got)
	}
	if got := GettableFuncs(c); len(got) != 1 || got[0] != "NB" {
		t.Errorf("GettableFuncs() = %v, want [NB]", got)
	}
	if got := SettableFuncs(c); len(got) != 2 {
		t.Errorf("SettableFuncs() = %v, want two entries", got)
	}
}

func TestScanAndVFOOps(t *testing.T) {
	c := &driver.Caps{
		ScanOps: driver.ScanMem | driver.ScanVFO,
		VFOOps:  driver.VFOOpCpy | driver.VFOOpUp,
	}

	scans := ScanOps(c)
	if len(scans) != 2 || scans[0] != "MEM" || scans[1] != "VFO" {
		t.Errorf("ScanOps() = %v, want [MEM VFO]", scans)
	}
	ops := VFOOps(c)
	if len(ops) != 2 || ops[0] != "CPY" || ops[1] != "UP" {
		t.Errorf("VFOOps() = %v, want [CPY UP]", ops)
	}
}
