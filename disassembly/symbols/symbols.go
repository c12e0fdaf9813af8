// Package symbols resolves bus addresses to human-readable labels for
// the disassembler, grounded on the teacher's disassembly/symbols
// package (an address-to-name table keyed by canonical address) but
// reduced to the single flat table an unbanked Apple II address space
// needs, seeded with the well-known softswitch names instead of the
// VCS's TIA/RIOT register names.
package symbols

// Table maps bus addresses to labels.
type Table struct {
	names map[uint32]string
}

// New returns a Table pre-populated with the well-known C0xx softswitch
// names (spec.md §4.1).
func New() *Table {
	t := &Table{names: make(map[uint32]string)}
	for addr, name := range softswitchNames {
		t.names[addr] = name
	}
	return t
}

// Label implements disassembly.Symbols.
func (t *Table) Label(addr uint32) (string, bool) {
	name, ok := t.names[addr]
	return name, ok
}

// Add records a user- or loader-supplied label, overriding any built-in
// name at the same address.
func (t *Table) Add(addr uint32, name string) {
	t.names[addr] = name
}

var softswitchNames = map[uint32]string{
	0xC000: "KBD",
	0xC010: "KBDSTRB",
	0xC020: "TAPEOUT",
	0xC030: "SPKR",
	0xC050: "TXTCLR",
	0xC051: "TXTSET",
	0xC052: "MIXCLR",
	0xC053: "MIXSET",
	0xC054: "PAGE2OFF",
	0xC055: "PAGE2ON",
	0xC056: "HIRESOFF",
	0xC057: "HIRESON",
	0xC068: "STATEREG",
	0xC080: "LCBANK2_RD_RAM_WR_OFF",
	0xC081: "LCBANK2_RD_ROM_WR_ON",
	0xC088: "LCBANK1_RD_RAM_WR_OFF",
	0xC089: "LCBANK1_RD_ROM_WR_ON",
}
