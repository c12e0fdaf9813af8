// Package disassembly formats decoded CPU instructions (mnemonic,
// operand, addressing mode) from an execution.Result, per SPEC_FULL.md
// §4.2's disassembly expansion. It is grounded on the teacher's
// disassembly/disassembly.go and disassembly/entry.go, stripped of the
// VCS's bank/cartridge-mapper bookkeeping (this core has no
// bank-switched cartridges) and generalised to the three CPU variants'
// instructions.Definition tables instead of one fixed 6507 table.
package disassembly

import (
	"fmt"
	"strings"

	"github.com/deadleaf/apple2core/hardware/cpu/execution"
	"github.com/deadleaf/apple2core/hardware/cpu/instructions"
)

// Entry is one disassembled instruction.
type Entry struct {
	Address  string
	Bytecode string
	Mnemonic string
	Operand  string
	Cycles   int
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s  %-8s  %-4s %s", e.Address, e.Bytecode, e.Mnemonic, e.Operand)
}

// Symbols optionally resolves an address to a label, for operands of
// absolute/zero-page instructions; a nil Symbols behaves as if every
// address were unlabelled.
type Symbols interface {
	Label(addr uint32) (string, bool)
}

// FormatResult builds an Entry from a completed execution.Result,
// mirroring the teacher's formatResult (address, bytecode, mnemonic,
// operand columns) without the bank/EntryLevel machinery the VCS's
// bank-switched cartridges needed.
func FormatResult(result execution.Result, syms Symbols) *Entry {
	if result.Defn == nil {
		return &Entry{}
	}
	defn := *result.Defn

	e := &Entry{
		Address:  fmt.Sprintf("$%04X", result.Address),
		Mnemonic: defn.Operator,
		Cycles:   result.Cycles,
	}

	bytes := make([]string, 0, defn.Bytes)
	bytes = append(bytes, fmt.Sprintf("%02X", defn.OpCode))
	for i := 1; i < result.ByteCount; i++ {
		shift := uint(8 * (i - 1))
		bytes = append(bytes, fmt.Sprintf("%02X", uint8(result.InstructionData>>shift)))
	}
	e.Bytecode = strings.Join(bytes, " ")

	e.Operand = formatOperand(defn, result, syms)
	return e
}

func formatOperand(defn instructions.Definition, result execution.Result, syms Symbols) string {
	label := func(addr uint32) string {
		if syms != nil {
			if name, ok := syms.Label(addr); ok {
				return name
			}
		}
		return ""
	}

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", uint8(result.InstructionData))
	case instructions.ZeroPage:
		return withLabel(fmt.Sprintf("$%02X", uint8(result.InstructionData)), label(result.EffectiveAddr))
	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02X,X", uint8(result.InstructionData))
	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", uint8(result.InstructionData))
	case instructions.ZeroPageIndirect:
		return fmt.Sprintf("($%02X)", uint8(result.InstructionData))
	case instructions.IndexedIndirectX:
		return fmt.Sprintf("($%02X,X)", uint8(result.InstructionData))
	case instructions.IndirectIndexedY:
		return fmt.Sprintf("($%02X),Y", uint8(result.InstructionData))
	case instructions.Absolute:
		return withLabel(fmt.Sprintf("$%04X", result.InstructionData), label(result.EffectiveAddr))
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04X,X", result.InstructionData)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", result.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", result.InstructionData)
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04X,X)", result.InstructionData)
	case instructions.Relative:
		return withLabel(fmt.Sprintf("$%04X", result.EffectiveAddr), label(result.EffectiveAddr))
	case instructions.ZeroPageRelative:
		return fmt.Sprintf("$%02X,$%04X", uint8(result.InstructionData), result.EffectiveAddr)
	default:
		return ""
	}
}

func withLabel(addr, name string) string {
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s (%s)", addr, name)
}
