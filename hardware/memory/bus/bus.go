// Package bus defines the memory bus contracts described in spec.md §4.1.
// It is adapted from the teacher's hardware/memory/bus package, which
// splits CPU-facing, chip-facing, and debugger-facing access into
// separate interfaces; this core keeps that split but collapses
// ChipBus/InputDeviceBus into the single softswitch callback table since
// every Apple II chip-style register lives in the same C0xx page rather
// than the VCS's several independent chip address spaces.
package bus

// CPUBus is the interface the CPU engine uses for every memory access.
// Every implementation advances the clock by the correct number of 14M
// ticks before returning (spec.md §4.1).
type CPUBus interface {
	Read(addr uint32) uint8
	Write(addr uint32, data uint8)
}

// DebuggerBus exposes Peek/Poke: reads and writes that do not advance the
// clock or trigger softswitch side effects, used by tracing and tooling.
type DebuggerBus interface {
	Peek(addr uint32) uint8
	Poke(addr uint32, data uint8)
}

// CycleType distinguishes a normal bus access from an IIgs fast-ROM
// access, which advances the clock by a smaller fixed increment
// regardless of the configured speed mode (spec.md §4.1).
type CycleType int

// The cycle type hints a Tick call can carry.
const (
	CycleNormal CycleType = iota
	CycleFastROM
)

// SoftswitchHandler is a (callback, context)-style handler registered for
// one C0xx address. Read handlers return the byte to present on the bus;
// write handlers receive the written byte. A nil entry means "floating
// bus for reads, discard for writes" (spec.md §4.1).
type SoftswitchReadHandler func(addr uint32) uint8
type SoftswitchWriteHandler func(addr uint32, data uint8)

// ReadSourceKind and WriteSinkKind enumerate a PageEntry's possible
// sources/sinks (spec.md §3.2).
type ReadSourceKind int

const (
	ReadNone ReadSourceKind = iota
	ReadRAM
	ReadROM
	ReadSoftswitch
	ReadFloating
)

type WriteSinkKind int

const (
	WriteDiscard WriteSinkKind = iota
	WriteRAM
	WriteSoftswitch
)
