package mmu

import (
	"github.com/deadleaf/apple2core/hardware/clock"
	"github.com/deadleaf/apple2core/hardware/clock/timer"
	"github.com/deadleaf/apple2core/hardware/memory/bus"
	"github.com/deadleaf/apple2core/hardware/memory/langcard"
	"github.com/deadleaf/apple2core/hardware/memory/shadow"
	"github.com/deadleaf/apple2core/hardware/video"
	"github.com/deadleaf/apple2core/platform"
	"github.com/deadleaf/apple2core/random"
)

// Memory is the bus/MMU core described in spec.md §4.1. It owns RAM, ROM,
// the language card and shadow automata, the composed page table, the
// softswitch handler tables, and the clock/timer/scanner coupling -
// every memory access on the machine passes through one of its methods.
// Per spec.md §9's "cyclic references" design note, Memory owns RAM/ROM
// outright and the CPU only ever borrows it through the bus.CPUBus
// interface.
type Memory struct {
	traits platform.Traits

	table *PageTable

	mainRAM []byte
	auxRAM  []byte
	rom     []byte
	charROM []byte

	lcBank1  []byte // private D000-DFFF for language-card bank 1
	lcBank2  []byte // private D000-DFFF for language-card bank 2
	lcShared []byte // shared E000-FFFF

	lc *langcard.Automaton

	flag80Store   bool
	flagRamRD     bool
	flagRamWR     bool
	flagAltZP     bool
	flagIntCXROM  bool
	flagSlotC3ROM bool
	flagHiRes     bool
	flagPage2     bool
	flag80Col     bool

	shadowReg *shadow.Register

	readHandlers  [256]bus.SoftswitchReadHandler
	writeHandlers [256]bus.SoftswitchWriteHandler

	Scanner *video.Scanner

	timing    clock.Timing
	scanAccum int
	c14M      uint64
	cycles    uint64
	TimerQ    *timer.Queue

	shadowTarget ShadowWriter
}

// SetShadowTarget registers the callback that receives IIgs
// shadow-mirrored writes; the extended bank-E storage itself is owned by
// the emulation root, not by Memory (spec.md §9's ownership rule).
func (m *Memory) SetShadowTarget(w ShadowWriter) {
	m.shadowTarget = w
}

// New allocates a Memory for the given platform, with RAM/ROM/char-ROM
// contents supplied by the caller (spec.md's "out of scope" ROM loading
// boundary). timing selects US or PAL; most callers pass clock.US.
func New(traits platform.Traits, mainROM, charROM []byte, timing clock.Timing) *Memory {
	m := &Memory{
		traits:   traits,
		table:    NewPageTable(),
		mainRAM:  make([]byte, 64*1024),
		rom:      mainROM,
		charROM:  charROM,
		lcBank1:  make([]byte, 0x1000),
		lcBank2:  make([]byte, 0x1000),
		lcShared: make([]byte, 0x2000),
		lc:       langcard.New(),
		timing:   timing,
		Scanner:  video.NewScanner(),
		TimerQ:   timer.New(),
	}
	if traits.Has80Column {
		m.auxRAM = make([]byte, 64*1024)
	}
	if traits.HasIIgsShadowing {
		m.shadowReg = shadow.NewRegister()
	}
	m.recompute()
	return m
}

// SetSoftswitchHandler registers a (read, write) handler pair for one
// C0xx address, used by the speaker, keyboard latch, and disk/IWM
// controller to hook into the bus (spec.md §4.1).
func (m *Memory) SetSoftswitchHandler(addr uint32, read bus.SoftswitchReadHandler, write bus.SoftswitchWriteHandler) {
	low := addr & 0xFF
	if read != nil {
		m.readHandlers[low] = read
	}
	if write != nil {
		m.writeHandlers[low] = write
	}
}

// Read implements bus.CPUBus.
func (m *Memory) Read(addr uint32) uint8 {
	v := m.readNoTick(addr)
	m.tick(m.cycleTypeFor(addr))
	return v
}

// Write implements bus.CPUBus.
func (m *Memory) Write(addr uint32, data uint8) {
	m.writeNoTick(addr, data)
	m.tick(m.cycleTypeFor(addr))
}

// Peek implements bus.DebuggerBus: reads without side effects or clock
// advance.
func (m *Memory) Peek(addr uint32) uint8 {
	page := (addr & 0xFF00) >> 8
	off := int(addr & 0xFF)
	if page == 0xC0 {
		return uint8(m.Scanner.FloatingBusAddress()) // best-effort: softswitch peeks have no stable value
	}
	if v, ok := m.table[page].Read(off); ok {
		return v
	}
	return uint8(m.Scanner.FloatingBusAddress())
}

// Poke implements bus.DebuggerBus: writes without side effects or
// softswitch dispatch.
func (m *Memory) Poke(addr uint32, data uint8) {
	page := (addr & 0xFF00) >> 8
	off := int(addr & 0xFF)
	m.table[page].Write(off, data)
}

func (m *Memory) readNoTick(addr uint32) uint8 {
	page := (addr & 0xFF00) >> 8
	off := int(addr & 0xFF)

	if page == 0xC0 {
		low := addr & 0xFF
		m.dispatchAutoswitch(addr, false)
		if h := m.readHandlers[low]; h != nil {
			return h(addr)
		}
		return m.mainRAM[m.Scanner.FloatingBusAddress()&0xFFFF]
	}

	if v, ok := m.table[page].Read(off); ok {
		return v
	}
	return m.mainRAM[m.Scanner.FloatingBusAddress()&0xFFFF]
}

func (m *Memory) writeNoTick(addr uint32, data uint8) {
	page := (addr & 0xFF00) >> 8
	off := int(addr & 0xFF)

	if page == 0xC0 {
		low := addr & 0xFF
		m.dispatchAutoswitch(addr, true)
		if h := m.writeHandlers[low]; h != nil {
			h(addr, data)
		}
		return
	}

	if m.table[page].Write(off, data) && m.shadowReg != nil {
		m.maybeShadow(page, off, data)
	}
}

// dispatchAutoswitch updates the flip-flop-style softswitches that C000
// range writes/reads control directly (80store, ramrd, ramwrt, altzp,
// intcxrom, slotc3rom, hires, page2) and the language card automaton
// (C080-C08F), then recomposes the page table. Per spec.md §4.1 "Bank
// composition (IIe)": the MMU handles intcxrom/slotc3rom itself even
// though every other flag pair is a plain C000-C009 style latch.
func (m *Memory) dispatchAutoswitch(addr uint32, isWrite bool) {
	low := addr & 0xFF
	switch {
	case low >= 0x80 && low <= 0x8F:
		m.lc.Access(addr, isWrite)
		m.recompute()
		return
	}

	changed := true
	switch low {
	case 0x00:
		m.flag80Store = false
	case 0x01:
		m.flag80Store = true
	case 0x02:
		m.flagRamRD = false
	case 0x03:
		m.flagRamRD = true
	case 0x04:
		m.flagRamWR = false
	case 0x05:
		m.flagRamWR = true
	case 0x06:
		m.flagIntCXROM = false
	case 0x07:
		m.flagIntCXROM = true
	case 0x08:
		m.flagAltZP = false
	case 0x09:
		m.flagAltZP = true
	case 0x0A:
		m.flagSlotC3ROM = false
	case 0x0B:
		m.flagSlotC3ROM = true
	case 0x0C:
		m.flag80Col = false
	case 0x0D:
		m.flag80Col = true
	case 0x0E:
		m.flagHiRes = false
	case 0x0F:
		m.flagHiRes = true
	case 0x54:
		m.flagPage2 = false
	case 0x55:
		m.flagPage2 = true
	default:
		changed = false
	}
	if changed {
		m.recompute()
	}
}

// cycleTypeFor returns clock.CycleFastROM for an IIgs ROM access in fast
// mode, clock.CycleNormal otherwise (spec.md §4.1).
func (m *Memory) cycleTypeFor(addr uint32) clock.CycleType {
	if !m.traits.HasIIgsShadowing || m.shadowReg == nil || !m.shadowReg.FastMode {
		return clock.CycleNormal
	}
	page := (addr & 0xFF00) >> 8
	if m.table[page].ReadKind == bus.ReadROM {
		return clock.CycleFastROM
	}
	return clock.CycleNormal
}

func (m *Memory) tick(ct clock.CycleType) {
	delta := m.timing.Cycles14MPerCPUCycle
	if ct == clock.CycleFastROM {
		delta = clock.FastROMCycles14M
	}
	m.c14M += uint64(delta)
	m.cycles++
	m.TimerQ.Advance(int64(delta))
	m.scanAccum += delta
	for m.scanAccum >= 14 {
		m.scanAccum -= 14
		m.Scanner.TickColumn()
	}
}

// Cycles returns the CPU cycle counter (spec.md §3.3 cpu.cycles).
func (m *Memory) Cycles() uint64 { return m.cycles }

// C14M returns the 14M master-clock counter (spec.md §3.3 cpu.c_14M).
func (m *Memory) C14M() uint64 { return m.c14M }

// Table returns the active page table, for the pagetable dump tool
// (spec.md §3.2's "tag: ... for debugging/dumping"). The returned
// table must not be mutated by the caller.
func (m *Memory) Table() *PageTable { return m.table }

// RandomizeRAM fills main and (if present) auxiliary RAM with rnd's
// noise, standing in for the unpredictable charge real silicon powers
// on with, per the instance.RuntimeConfig.RandomState option. Called
// once at startup, before Reset reads the reset vector.
func (m *Memory) RandomizeRAM(rnd *random.Random) {
	for i := range m.mainRAM {
		m.mainRAM[i] = byte(rnd.NoRewind(256))
	}
	for i := range m.auxRAM {
		m.auxRAM[i] = byte(rnd.NoRewind(256))
	}
}

// maybeShadow mirrors a just-completed write into bank E0/E1 when the
// written page falls in a shadowed region and the IIgs shadow register
// says to (spec.md §4.1 "Bank composition (IIgs)").
func (m *Memory) maybeShadow(page uint32, off int, data uint8) {
	var f shadow.Flag
	switch {
	case page == 0x04 || page == 0x05 || page == 0x06 || page == 0x07:
		f = shadow.FlagText1
	case page >= 0x20 && page <= 0x3F:
		f = shadow.FlagHGR1
	case page >= 0x40 && page <= 0x5F:
		f = shadow.FlagHGR2
	default:
		return
	}
	if !m.shadowReg.Shadows(f) {
		return
	}
	aux := m.flagRamWR
	_ = shadow.ShadowBank(aux)
	// The shadow bank's backing store lives outside the II-series 64KiB
	// RAM this core always allocates; a full IIgs bank-E implementation
	// is wired up by the emulation root, which owns the extended bank
	// array and registers it here via SetShadowTarget.
	if m.shadowTarget != nil {
		m.shadowTarget(aux, page, off, data)
	}
}

// ShadowWriter receives shadowed writes: aux selects bank E1 (true) vs
// E0 (false), page/off/data give the location within that bank.
type ShadowWriter func(aux bool, page uint32, off int, data uint8)
