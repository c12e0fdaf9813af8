package mmu_test

import (
	"testing"

	"github.com/deadleaf/apple2core/hardware/memory/mmu"
)

func TestNewPageTableDefaultsToFloatingBusAndDiscard(t *testing.T) {
	table := mmu.NewPageTable()
	e := table[0]
	if _, ok := e.Read(0); ok {
		t.Fatalf("Read() ok=true on an unmapped page, want false")
	}
	if e.Write(0, 0xFF) {
		t.Fatalf("Write() succeeded on an unmapped page, want discarded")
	}
}

func TestMapReadRoundTrips(t *testing.T) {
	table := mmu.NewPageTable()
	mem := make([]byte, 512)
	mem[0x100] = 0x7A
	if err := table.MapRead(3, mem, 0x100, "ram"); err != nil {
		t.Fatalf("MapRead() error: %v", err)
	}
	v, ok := table[3].Read(0)
	if !ok || v != 0x7A {
		t.Fatalf("Read(0) = (%#02x, %v), want (0x7A, true)", v, ok)
	}
}

func TestMapReadROMTagsSourceAsROM(t *testing.T) {
	table := mmu.NewPageTable()
	mem := make([]byte, 256)
	if err := table.MapReadROM(5, mem, 0, "rom"); err != nil {
		t.Fatalf("MapReadROM() error: %v", err)
	}
	if _, ok := table[5].Read(0); !ok {
		t.Fatalf("Read() ok=false on a ROM-mapped page")
	}
}

func TestMapWriteRoundTrips(t *testing.T) {
	table := mmu.NewPageTable()
	mem := make([]byte, 256)
	if err := table.MapWrite(7, mem, 0, "ram"); err != nil {
		t.Fatalf("MapWrite() error: %v", err)
	}
	if !table[7].Write(10, 0x55) {
		t.Fatalf("Write() returned false on a RAM-mapped page")
	}
	if mem[10] != 0x55 {
		t.Fatalf("mem[10] = %#02x, want 0x55", mem[10])
	}
}

func TestDiscardWriteDropsWrites(t *testing.T) {
	table := mmu.NewPageTable()
	mem := make([]byte, 256)
	_ = table.MapWrite(9, mem, 0, "ram")
	if err := table.DiscardWrite(9, "rom"); err != nil {
		t.Fatalf("DiscardWrite() error: %v", err)
	}
	if table[9].Write(0, 0xFF) {
		t.Fatalf("Write() succeeded after DiscardWrite")
	}
}

func TestMapReadOutOfRangeRejected(t *testing.T) {
	table := mmu.NewPageTable()
	if err := table.MapRead(256, nil, 0, "x"); err == nil {
		t.Fatalf("MapRead(256, ...) = nil error, want a PageOutOfRange error")
	}
	if err := table.MapRead(-1, nil, 0, "x"); err == nil {
		t.Fatalf("MapRead(-1, ...) = nil error, want a PageOutOfRange error")
	}
}
