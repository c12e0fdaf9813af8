// Package registers implements the CPU's register file described in
// spec.md §3.3: A, X, Y, SP, P, PC for every variant, plus DB, PB, D, and
// the E/M/X mode bits the 65816 adds. It is adapted from the teacher's
// hardware/cpu/registers package, which represents the status register
// as a struct of named bools with Value()/Load() conversions to and from
// the packed byte form; this core keeps that shape (it reads far better
// at every call site than bit-twiddling) and adds the emulation-mode and
// width flags the 65816 needs alongside it.
package registers

import "strings"

// Status is the processor status register, bit layout N V U B D I Z C
// (spec.md §4.2 "Status register").
type Status struct {
	Negative  bool
	Overflow  bool
	Break     bool
	Decimal   bool
	Interrupt bool
	Zero      bool
	Carry     bool
}

// NewStatus returns the power-on-reset status: I set, everything else
// clear.
func NewStatus() Status {
	return Status{Interrupt: true}
}

// Value packs the flags into a byte. The unused bit (U) always reads as
// 1 (spec.md §4.2); Break is included here since most callers pushing
// the byte (BRK, PHP) want B=1 and the IRQ entry path clears it
// explicitly afterward.
func (s Status) Value() uint8 {
	var v uint8 = 0x20
	if s.Negative {
		v |= 0x80
	}
	if s.Overflow {
		v |= 0x40
	}
	if s.Break {
		v |= 0x10
	}
	if s.Decimal {
		v |= 0x08
	}
	if s.Interrupt {
		v |= 0x04
	}
	if s.Zero {
		v |= 0x02
	}
	if s.Carry {
		v |= 0x01
	}
	return v
}

// Load unpacks a byte into the flags (U is discarded).
func (s *Status) Load(v uint8) {
	s.Negative = v&0x80 != 0
	s.Overflow = v&0x40 != 0
	s.Break = v&0x10 != 0
	s.Decimal = v&0x08 != 0
	s.Interrupt = v&0x04 != 0
	s.Zero = v&0x02 != 0
	s.Carry = v&0x01 != 0
}

// SetNZ sets Zero and Negative from an 8-bit result.
func (s *Status) SetNZ(v uint8) {
	s.Zero = v == 0
	s.Negative = v&0x80 != 0
}

// SetNZ16 sets Zero and Negative from a 16-bit result, used when the
// 65816 is in 16-bit accumulator or index mode.
func (s *Status) SetNZ16(v uint16) {
	s.Zero = v == 0
	s.Negative = v&0x8000 != 0
}

func (s Status) String() string {
	var b strings.Builder
	pairs := []struct {
		set  bool
		c, l byte
	}{
		{s.Negative, 'N', 'n'}, {s.Overflow, 'V', 'v'},
		{s.Break, 'B', 'b'}, {s.Decimal, 'D', 'd'},
		{s.Interrupt, 'I', 'i'}, {s.Zero, 'Z', 'z'}, {s.Carry, 'C', 'c'},
	}
	for _, p := range pairs {
		if p.set {
			b.WriteByte(p.c)
		} else {
			b.WriteByte(p.l)
		}
	}
	return b.String()
}
