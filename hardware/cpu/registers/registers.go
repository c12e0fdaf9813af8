package registers

// Registers is the full register file, a superset covering every variant
// spec.md §3.3 names. 6502/65C02 code only ever touches A/X/Y as the
// low 8 bits and leaves E, M8, X8 at their Reset values; the 65816-only
// fields (DB, PB, D, E, M8, X8) are meaningful only when the owning
// CPU's variant trait selects the 65816 core.
type Registers struct {
	A  uint16
	X  uint16
	Y  uint16
	SP uint16
	PC uint16
	P  Status

	// DB (data bank) and PB (program bank) extend every effective
	// address to 24 bits on the 65816.
	DB uint8
	PB uint8

	// D is the 65816's direct-page register, replacing the fixed
	// zero-page base of the 8-bit cores.
	D uint16

	// E is true in 65816 "emulation" mode (6502-compatible), false in
	// "native" mode. M8 and X8 are native-mode width selectors: true
	// means 8-bit, matching the 65816's inverted sense for the
	// accumulator/index-width status bits.
	E   bool
	M8  bool
	X8  bool
}

// Reset returns the registers to their power-on-reset state: 65816 cores
// start in emulation mode with 8-bit A/X/Y and SP forced to page 1
// (spec.md §4.2's "65816 variant composes four sub-cores" note - E=true
// is one of those four).
func Reset() Registers {
	return Registers{
		SP: 0x01FF,
		P:  NewStatus(),
		E:  true,
		M8: true,
		X8: true,
	}
}

// AByte returns the low 8 bits of A.
func (r *Registers) AByte() uint8 { return uint8(r.A) }

// SetAByte sets the low 8 bits of A, leaving the high byte untouched (as
// real 65816 8-bit-mode arithmetic does - the hidden high byte survives
// a REP #$20 back to 16-bit mode, spec.md §9's open question on variant
// reselection notwithstanding).
func (r *Registers) SetAByte(v uint8) {
	r.A = r.A&0xFF00 | uint16(v)
}

// StackAddr returns the bus address of the current stack pointer,
// wrapping within page 1 when E is true (6502-compatible stack).
func (r *Registers) StackAddr() uint32 {
	if r.E {
		return 0x0100 | uint32(uint8(r.SP))
	}
	return uint32(r.SP)
}

// StackDec decrements SP by n, wrapping within page 1 when E is true.
func (r *Registers) StackDec(n uint16) {
	r.SP -= n
	if r.E {
		r.SP = 0x0100 | (r.SP & 0xFF)
	}
}

// StackInc increments SP by n, wrapping within page 1 when E is true.
func (r *Registers) StackInc(n uint16) {
	r.SP += n
	if r.E {
		r.SP = 0x0100 | (r.SP & 0xFF)
	}
}
