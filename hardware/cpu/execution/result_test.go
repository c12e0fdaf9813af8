package execution_test

import (
	"testing"

	"github.com/deadleaf/apple2core/hardware/cpu/execution"
	"github.com/deadleaf/apple2core/hardware/cpu/instructions"
)

func TestResetClearsEveryField(t *testing.T) {
	defn := instructions.Definition{Operator: "LDA"}
	r := execution.Result{
		Defn: &defn, Address: 0x1234, Cycles: 7, Final: true,
		A: 1, X: 2, Y: 3, CPUBug: execution.JmpIndirectPageWrapBug,
	}
	r.Reset()
	if r != (execution.Result{}) {
		t.Fatalf("Reset() left %+v, want zero value", r)
	}
}
