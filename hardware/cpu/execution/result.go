// Package execution tracks the result of instruction execution, the
// basis of the CPU's trace entry slot (spec.md §3.3, §6.1's binary trace
// log format). It is adapted from the teacher's
// hardware/cpu/execution/result.go, generalised from the VCS's 16-bit
// address space to this core's 24-bit one and carrying the extra 65816
// register snapshot fields the trace log format in spec.md §6.1 names
// (DB, PB, D).
package execution

import "github.com/deadleaf/apple2core/hardware/cpu/instructions"

// Bug names a known CPU quirk triggered by the instruction just executed
// (spec.md §4.2 "has_indirect_bug").
type Bug string

// The CPU bugs this core models.
const (
	NoBug            Bug = ""
	JmpIndirectPageWrapBug Bug = "JMP indirect page-wrap bug"
)

// Result is one instruction's trace entry: cycle, opcode, operand,
// register snapshot, effective address, data, and flags, matching the
// fixed-size binary record spec.md §6.1 describes.
type Result struct {
	Defn    *instructions.Definition
	Address uint32

	ByteCount       int
	InstructionData uint32

	Cycles int

	PageFault     bool
	BranchSuccess bool
	CPUBug        Bug

	Cycle int64

	A, X, Y uint16
	SP, PC  uint16
	P       uint8
	DB, PB  uint8
	D       uint16

	EffectiveAddr uint32
	Data          uint8

	Final bool
}

// Reset clears the result so a fresh instruction can populate it.
func (r *Result) Reset() {
	*r = Result{}
}
