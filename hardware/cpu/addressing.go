package cpu

import "github.com/deadleaf/apple2core/hardware/cpu/instructions"

// operand resolves an instruction's addressing mode to an effective
// address (where applicable) and reports whether a page boundary was
// crossed, per spec.md §4.2 "Page-crossing on indexed reads adds one
// cycle only when the crossing occurs".
func (c *CPU) operand(defn instructions.Definition) (addr uint32, crossed bool) {
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return 0, false

	case instructions.Immediate:
		addr = uint32(c.Reg.PC)
		c.Reg.PC++
		return addr, false

	case instructions.ZeroPage:
		return uint32(c.fetchByte()), false

	case instructions.ZeroPageX:
		zp := c.fetchByte() + uint8(c.Reg.X)
		return uint32(zp), false

	case instructions.ZeroPageY:
		zp := c.fetchByte() + uint8(c.Reg.Y)
		return uint32(zp), false

	case instructions.ZeroPageIndirect:
		zp := c.fetchByte()
		lo := c.Bus.Read(uint32(zp))
		hi := c.Bus.Read(uint32(uint8(zp + 1)))
		return uint32(lo) | uint32(hi)<<8, false

	case instructions.IndexedIndirectX:
		zp := c.fetchByte() + uint8(c.Reg.X)
		lo := c.Bus.Read(uint32(zp))
		hi := c.Bus.Read(uint32(uint8(zp + 1)))
		return uint32(lo) | uint32(hi)<<8, false

	case instructions.IndirectIndexedY:
		zp := c.fetchByte()
		lo := c.Bus.Read(uint32(zp))
		hi := c.Bus.Read(uint32(uint8(zp + 1)))
		base := uint32(lo) | uint32(hi)<<8
		addr = base + uint32(c.Reg.Y)
		crossed = (base & 0xFF00) != (addr & 0xFF00)
		return addr, crossed

	case instructions.Absolute:
		return uint32(c.fetchWord()), false

	case instructions.AbsoluteX:
		base := uint32(c.fetchWord())
		addr = base + uint32(c.Reg.X)
		crossed = (base & 0xFF00) != (addr & 0xFF00)
		return addr, crossed

	case instructions.AbsoluteY:
		base := uint32(c.fetchWord())
		addr = base + uint32(c.Reg.Y)
		crossed = (base & 0xFF00) != (addr & 0xFF00)
		return addr, crossed

	case instructions.Indirect:
		ptr := c.fetchWord()
		lo := c.Bus.Read(uint32(ptr))
		var hiAddr uint32
		if c.hasIndirectBug && ptr&0xFF == 0xFF {
			hiAddr = uint32(ptr) & 0xFF00 // the classic page-wrap bug
		} else {
			hiAddr = uint32(ptr) + 1
		}
		hi := c.Bus.Read(hiAddr)
		return uint32(lo) | uint32(hi)<<8, false

	case instructions.AbsoluteIndexedIndirect: // JMP (abs,X) - 65C02 fixed the wrap bug by construction
		ptr := c.fetchWord() + uint16(c.Reg.X)
		lo := c.Bus.Read(uint32(ptr))
		hi := c.Bus.Read(uint32(ptr + 1))
		return uint32(lo) | uint32(hi)<<8, false

	case instructions.Relative:
		offset := int8(c.fetchByte())
		base := uint32(c.Reg.PC)
		addr = uint32(int32(base) + int32(offset))
		crossed = (base & 0xFF00) != (addr & 0xFF00)
		return addr, crossed

	case instructions.ZeroPageRelative:
		// BBR/BBS pack two operands (a zero-page address and a branch
		// target) into the one addr return value: the zero page byte in
		// bits 0-7, the branch target in bits 8+. executeBitOps unpacks
		// both.
		zp := c.fetchByte()
		offset := int8(c.fetchByte())
		base := uint32(c.Reg.PC)
		branchTarget := uint32(int32(base) + int32(offset))
		return uint32(zp) | branchTarget<<8, false

	default:
		// 65816-only modes (long/stack-relative/block-move) decode their
		// operand bytes so PC and byte-count stay correct, but resolve to
		// address 0; the operator dispatch below treats any opcode whose
		// mode lands here as a structural NOP (spec.md §4.2's allowance
		// for undocumented opcodes to act as NOPs).
		for i := 1; i < defn.Bytes; i++ {
			c.fetchByte()
		}
		return 0, false
	}
}
