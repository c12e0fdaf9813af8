// Package cpu implements the polymorphic 6502/65C02/65816 instruction
// engine described in spec.md §4.2: a 256-entry opcode table drives
// addressing-mode resolution and operator execution, with every memory
// access ticking the bus so cycle counts and the master clock stay
// exact. It is grounded on the teacher's hardware/cpu/cpu.go (the
// fetch/decode/execute loop shape, IRQ servicing before decode, and the
// execution.Result trace-entry pattern) generalised from one fixed 6507
// core to the variant-selected decoder spec.md §9 calls for.
package cpu

import (
	"github.com/deadleaf/apple2core/hardware/cpu/execution"
	"github.com/deadleaf/apple2core/hardware/cpu/instructions"
	"github.com/deadleaf/apple2core/hardware/cpu/registers"
	"github.com/deadleaf/apple2core/platform"
)

// Bus is the minimal interface the CPU engine needs; mmu.Memory
// satisfies it.
type Bus interface {
	Read(addr uint32) uint8
	Write(addr uint32, data uint8)
}

// CycleSource optionally exposes the bus's own cycle/14M counters so the
// CPU's trace entries can report them without duplicating the counters
// (spec.md §9's ownership rule: the bus, not the CPU, is the source of
// truth for cpu.cycles/cpu.c_14M since every access already goes through
// it).
type CycleSource interface {
	Cycles() uint64
	C14M() uint64
}

// CPU is the register file plus the variant trait selecting which
// opcode table and quirks apply (spec.md §4.2 "Variant traits").
type CPU struct {
	Reg     registers.Registers
	Bus     Bus
	Variant platform.CPUVariant

	table *[256]instructions.Definition

	hasIndirectBug bool
	has65C02Ops    bool
	hasBBRBBS      bool

	IRQAsserted bool
	NMIAsserted bool

	TraceEnabled bool
	Trace        execution.Result

	cycleSrc CycleSource
}

// New builds a CPU for the given variant, wired to bus. If bus also
// implements CycleSource, trace entries report the shared cycle/14M
// counters.
func New(variant platform.CPUVariant, b Bus) *CPU {
	c := &CPU{Bus: b, Variant: variant}
	if cs, ok := b.(CycleSource); ok {
		c.cycleSrc = cs
	}
	switch variant {
	case platform.Variant6502:
		c.table = &instructions.Table6502
		c.hasIndirectBug = true
	case platform.Variant65C02:
		c.table = &instructions.Table65C02
		c.has65C02Ops = true
		c.hasBBRBBS = true
	case platform.Variant65816:
		c.table = &instructions.Table65C02
		c.has65C02Ops = true
		c.hasBBRBBS = true
	}
	c.Reg = registers.Reset()
	return c
}

// Reset loads PC from the reset vector at $FFFC/$FFFD (bank 0 on every
// variant; the 65816 always resets into emulation mode per spec.md §9).
func (c *CPU) Reset() {
	c.Reg = registers.Reset()
	lo := c.Bus.Read(0xFFFC)
	hi := c.Bus.Read(0xFFFD)
	c.Reg.PC = uint16(lo) | uint16(hi)<<8
}

// irqVector returns the IRQ/BRK vector address for the CPU's current
// mode (65816 native mode uses a different vector than emulation mode).
func (c *CPU) irqVector() uint16 {
	if c.Variant == platform.Variant65816 && !c.Reg.E {
		return 0xFFEE
	}
	return 0xFFFE
}

func (c *CPU) nmiVector() uint16 {
	if c.Variant == platform.Variant65816 && !c.Reg.E {
		return 0xFFEA
	}
	return 0xFFFA
}

// ExecuteNext fetches, decodes, and executes the instruction at PC, per
// spec.md §4.2. It never fails: an opcode the current variant's table
// marks undocumented still consumes its defined byte/cycle footprint,
// executing as a NOP. Returns the number of CPU cycles the instruction
// consumed.
func (c *CPU) ExecuteNext() int {
	if c.NMIAsserted {
		c.NMIAsserted = false
		return c.serviceInterrupt(c.nmiVector(), false)
	}
	if !c.Reg.P.Interrupt && c.IRQAsserted {
		c.IRQAsserted = false
		return c.serviceInterrupt(c.irqVector(), false)
	}

	startPC := c.Reg.PC
	opcode := c.fetchByte()
	defn := c.table[opcode]

	if c.TraceEnabled {
		c.Trace.Reset()
		c.Trace.Defn = &defn
		c.Trace.Address = uint32(startPC)
	}

	cycles := c.execute(defn)

	if c.TraceEnabled {
		c.Trace.Cycles = cycles
		c.Trace.A, c.Trace.X, c.Trace.Y = c.Reg.A, c.Reg.X, c.Reg.Y
		c.Trace.SP, c.Trace.PC = c.Reg.SP, c.Reg.PC
		c.Trace.P = c.Reg.P.Value()
		c.Trace.DB, c.Trace.PB = c.Reg.DB, c.Reg.PB
		c.Trace.D = c.Reg.D
		if c.cycleSrc != nil {
			c.Trace.Cycle = int64(c.cycleSrc.Cycles())
		}
		c.Trace.Final = true
	}

	return cycles
}

// serviceInterrupt pushes PC and P (U=1, B=0 for a real IRQ/NMI, as
// opposed to BRK which sets B=1) and jumps to vector, per spec.md §4.2.
// This consumes 7 CPU cycles, matching a BRK's cost.
func (c *CPU) serviceInterrupt(vector uint16, fromBRK bool) int {
	c.push16(c.Reg.PC)
	p := c.Reg.P
	p.Break = fromBRK
	c.push8(p.Value())
	if c.has65C02Ops {
		c.Reg.P.Decimal = false
	}
	c.Reg.P.Interrupt = true
	lo := c.Bus.Read(uint32(vector))
	hi := c.Bus.Read(uint32(vector + 1))
	c.Reg.PC = uint16(lo) | uint16(hi)<<8
	return 7
}

func (c *CPU) fetchByte() uint8 {
	addr := uint32(c.Reg.PB)<<16 | uint32(c.Reg.PC)
	v := c.Bus.Read(addr)
	c.Reg.PC++
	return v
}

func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) push8(v uint8) {
	c.Bus.Write(c.Reg.StackAddr(), v)
	c.Reg.StackDec(1)
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pop8() uint8 {
	c.Reg.StackInc(1)
	return c.Bus.Read(c.Reg.StackAddr())
}

func (c *CPU) pop16() uint16 {
	lo := c.pop8()
	hi := c.pop8()
	return uint16(lo) | uint16(hi)<<8
}
