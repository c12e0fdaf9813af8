// Package langcard implements the four-flip-flop language card automaton
// described in spec.md §4.3: D000-FFFF bank switching driven entirely by
// the pattern of accesses to C080-C08F, independent of any data written
// through those addresses. It is grounded on the teacher's
// hardware/memory/cartridge/banks package, which holds the same shape of
// problem for the VCS (a small named set of banks, switched by address
// pattern rather than by data value) though none of the VCS bank
// mappers need a secondary write-enable latch the way this automaton
// does.
package langcard

// Automaton holds the four flip-flops from spec.md §4.3. Bank1 selects
// between the D000-DFFF bank 1 and bank 2 images (E000-FFFF is shared
// between both banks and unaffected by Bank1); ReadEnable selects RAM or
// ROM as the D0-FF read source; WriteEnable, when true, allows the CPU to
// write through to the D0-FF RAM.
type Automaton struct {
	Bank1       bool
	ReadEnable  bool
	PreWrite    bool
	WriteEnable bool
}

// New returns an Automaton in its power-on-reset state: ROM read, writes
// disabled, bank 2 selected (the configuration the real hardware resets
// into, per the Apple IIe Technical Reference).
func New() *Automaton {
	return &Automaton{
		Bank1:       false,
		ReadEnable:  false,
		PreWrite:    false,
		WriteEnable: false,
	}
}

// Access updates the automaton for one read or write access to address
// addr in the range C080-C08F (only the low 4 bits matter), per the
// rules in spec.md §4.3:
//
//  1. Any access to an even address clears PreWrite and clears
//     WriteEnable (it always forces writes back off, read or write).
//  2. A read of an odd address sets PreWrite if it was not already set;
//     if it WAS already set, this second consecutive odd-address read
//     sets WriteEnable.
//  3. Any write to this range clears PreWrite.
//  4. Bit A3 selects bank 1 (set) vs bank 2 (clear).
//  5. Bits A0-A1 of {00, 11} select RAM read; {01, 10} select ROM read.
func (a *Automaton) Access(addr uint32, isWrite bool) {
	low := addr & 0x0F
	a.Bank1 = low&0x08 != 0

	switch low & 0x03 {
	case 0x00, 0x03:
		a.ReadEnable = true
	case 0x01, 0x02:
		a.ReadEnable = false
	}

	odd := low&0x01 != 0

	if isWrite {
		a.PreWrite = false
		if !odd {
			a.WriteEnable = false
		}
		return
	}

	if !odd {
		a.WriteEnable = false
		a.PreWrite = false
		return
	}

	if a.PreWrite {
		a.WriteEnable = true
	} else {
		a.PreWrite = true
	}
}
