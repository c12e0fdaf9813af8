package symbols_test

import (
	"testing"

	"github.com/deadleaf/apple2core/disassembly/symbols"
)

func TestNewSeedsSoftswitchNames(t *testing.T) {
	tbl := symbols.New()
	name, ok := tbl.Label(0xC000)
	if !ok || name != "KBD" {
		t.Fatalf("Label(0xC000) = (%q, %v), want (\"KBD\", true)", name, ok)
	}
}

func TestLabelUnknownAddress(t *testing.T) {
	tbl := symbols.New()
	if _, ok := tbl.Label(0x1234); ok {
		t.Fatalf("Label(0x1234) reported a builtin name for an unseeded address")
	}
}

func TestAddOverridesBuiltin(t *testing.T) {
	tbl := symbols.New()
	tbl.Add(0xC000, "MYKBD")
	name, ok := tbl.Label(0xC000)
	if !ok || name != "MYKBD" {
		t.Fatalf("Label(0xC000) = (%q, %v) after Add, want (\"MYKBD\", true)", name, ok)
	}
}

func TestAddNewLabel(t *testing.T) {
	tbl := symbols.New()
	tbl.Add(0x6000, "LOOP")
	name, ok := tbl.Label(0x6000)
	if !ok || name != "LOOP" {
		t.Fatalf("Label(0x6000) = (%q, %v), want (\"LOOP\", true)", name, ok)
	}
}
