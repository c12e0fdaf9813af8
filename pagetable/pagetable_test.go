package pagetable_test

import (
	"bytes"
	"testing"

	"github.com/deadleaf/apple2core/hardware/memory/mmu"
	"github.com/deadleaf/apple2core/pagetable"
)

func TestDumpWritesNonEmptyGraph(t *testing.T) {
	table := mmu.NewPageTable()
	var buf bytes.Buffer
	pagetable.Dump(&buf, table)
	if buf.Len() == 0 {
		t.Fatalf("Dump() wrote no output for a populated page table")
	}
}
