// Package mmu implements the 256-entry paged address space and softswitch
// dispatcher described in spec.md §3.2 and §4.1. It is grounded on the
// teacher's hardware/memory/bus package for the CPUBus/DebuggerBus split,
// and on hardware/memory/cartridge/banks for the idea of a small
// fixed-shape table of named, independently-swappable regions - the
// language card and 80-column auxiliary memory are this core's
// equivalent of cartridge bank-switching.
package mmu

import (
	"github.com/deadleaf/apple2core/hardware/memory/bus"
	"github.com/deadleaf/apple2core/hwerrors"

	"github.com/deadleaf/apple2core/curated"
)

// PageEntry is one page's read source and write sink (spec.md §3.2). A
// pointer-kind entry (RAM/ROM) reads/writes through Mem at Base+offset; a
// softswitch-kind entry never appears here because C000-C0FF is
// dispatched separately by address (invariant 3).
type PageEntry struct {
	ReadKind bus.ReadSourceKind
	ReadMem  []byte
	ReadBase int

	WriteKind bus.WriteSinkKind
	WriteMem  []byte
	WriteBase int

	Tag string

	// ShadowFlags records which IIgs shadow banks this page's writes
	// must additionally be mirrored to; 0 on platforms without
	// shadowing (spec.md §3.2, §4.1 "Bank composition (IIgs)").
	ShadowFlags uint8
}

// PageTable is the 256-entry table for one 64KiB bank (spec.md §3.1,
// invariant 4 in §3.2: exactly 256 entries, always present).
type PageTable [256]PageEntry

// NewPageTable returns a table with every page reading floating-bus and
// discarding writes, the safe default until Map* calls populate it.
func NewPageTable() *PageTable {
	t := &PageTable{}
	for i := range t {
		t[i] = PageEntry{ReadKind: bus.ReadFloating, WriteKind: bus.WriteDiscard, Tag: "unmapped"}
	}
	return t
}

// MapRead points page's read source at mem[base:base+256], tagged tag.
func (t *PageTable) MapRead(page int, mem []byte, base int, tag string) error {
	if page < 0 || page > 255 {
		return curated.Errorf(hwerrors.PageOutOfRange, page)
	}
	kind := bus.ReadRAM
	t[page].ReadKind = kind
	t[page].ReadMem = mem
	t[page].ReadBase = base
	t[page].Tag = tag
	return nil
}

// MapReadROM is MapRead but tags the source as ROM, which the MMU uses
// to decide the bus cycle-type hint on IIgs (spec.md §4.1).
func (t *PageTable) MapReadROM(page int, mem []byte, base int, tag string) error {
	if err := t.MapRead(page, mem, base, tag); err != nil {
		return err
	}
	t[page].ReadKind = bus.ReadROM
	return nil
}

// MapWrite points page's write sink at mem[base:base+256].
func (t *PageTable) MapWrite(page int, mem []byte, base int, tag string) error {
	if page < 0 || page > 255 {
		return curated.Errorf(hwerrors.PageOutOfRange, page)
	}
	t[page].WriteKind = bus.WriteRAM
	t[page].WriteMem = mem
	t[page].WriteBase = base
	if t[page].Tag == "" {
		t[page].Tag = tag
	}
	return nil
}

// DiscardWrite marks page's writes as dropped (spec.md §3.2 invariant 2:
// the only legitimate way to make a page read-only).
func (t *PageTable) DiscardWrite(page int, tag string) error {
	if page < 0 || page > 255 {
		return curated.Errorf(hwerrors.PageOutOfRange, page)
	}
	t[page].WriteKind = bus.WriteDiscard
	t[page].WriteMem = nil
	if t[page].Tag == "" {
		t[page].Tag = tag
	}
	return nil
}

// Read returns the byte at page's stored offset off (0-255), or false if
// this page has no RAM/ROM-backed source (caller then consults floating
// bus or a softswitch handler).
func (e PageEntry) Read(off int) (uint8, bool) {
	switch e.ReadKind {
	case bus.ReadRAM, bus.ReadROM:
		return e.ReadMem[e.ReadBase+off], true
	default:
		return 0, false
	}
}

// Write stores data at page's stored offset off, reporting whether the
// write landed anywhere (false for a discarded or softswitch page).
func (e PageEntry) Write(off int, data uint8) bool {
	if e.WriteKind != bus.WriteRAM || e.WriteMem == nil {
		return false
	}
	e.WriteMem[e.WriteBase+off] = data
	return true
}
