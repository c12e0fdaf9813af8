package clock_test

import (
	"testing"

	"github.com/deadleaf/apple2core/hardware/clock"
)

func TestUSFrameIdentity(t *testing.T) {
	for mode, timing := range clock.US {
		if timing.Cycles14MPerScanline != 910 {
			t.Errorf("mode %v: Cycles14MPerScanline = %d, want 910", mode, timing.Cycles14MPerScanline)
		}
		if timing.Cycles14MPerFrame != 238944 {
			t.Errorf("mode %v: Cycles14MPerFrame = %d, want 238944", mode, timing.Cycles14MPerFrame)
		}
	}
}

func TestPALFrameCounts(t *testing.T) {
	for mode, timing := range clock.PAL {
		if timing.CPUCyclesPerFrame != 20280 {
			t.Errorf("mode %v: CPUCyclesPerFrame = %d, want 20280", mode, timing.CPUCyclesPerFrame)
		}
		if timing.Cycles14MPerFrame != 284544 {
			t.Errorf("mode %v: Cycles14MPerFrame = %d, want 284544", mode, timing.Cycles14MPerFrame)
		}
	}
}

func TestPALPreservesPerCPUCycleConstants(t *testing.T) {
	for mode, us := range clock.US {
		pal := clock.PAL[mode]
		if pal.Cycles14MPerCPUCycle != us.Cycles14MPerCPUCycle {
			t.Errorf("mode %v: PAL Cycles14MPerCPUCycle = %d, want %d (same as US)", mode, pal.Cycles14MPerCPUCycle, us.Cycles14MPerCPUCycle)
		}
	}
}

func TestMode1MHzCyclesPerFrame(t *testing.T) {
	timing := clock.US[clock.Mode1MHz]
	if timing.Cycles14MPerCPUCycle != 14 {
		t.Fatalf("Mode1MHz Cycles14MPerCPUCycle = %d, want 14", timing.Cycles14MPerCPUCycle)
	}
}
