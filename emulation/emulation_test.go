package emulation_test

import (
	"testing"

	"github.com/deadleaf/apple2core/emulation"
	"github.com/deadleaf/apple2core/hardware"
	"github.com/deadleaf/apple2core/hardware/clock"
	"github.com/deadleaf/apple2core/hardware/video"
	"github.com/deadleaf/apple2core/instance"
	"github.com/deadleaf/apple2core/platform"
)

func newComputer(t *testing.T) *hardware.Computer {
	t.Helper()
	traits := platform.Of(platform.IIe)
	cfg := instance.Default()
	return hardware.New(&cfg, make([]byte, traits.MainROMSize), nil, clock.US[clock.Mode1MHz])
}

func TestRunFrameProducesExpectedSampleCount(t *testing.T) {
	c := newComputer(t)
	c.CPU.Reset()

	fb := video.NewFramebuffer(280, 192)
	const samplesPerFrame = 735 // 44100 / 60
	em := emulation.New(c, fb, clock.US[clock.Mode1MHz], true, samplesPerFrame)

	samples := em.RunFrame()
	if len(samples) != samplesPerFrame {
		t.Fatalf("len(samples) = %d, want %d", len(samples), samplesPerFrame)
	}
}

func TestPauseTransitionsState(t *testing.T) {
	c := newComputer(t)
	c.CPU.Reset()
	em := emulation.New(c, nil, clock.US[clock.Mode1MHz], true, 735)

	if em.State() != emulation.Initialising {
		t.Fatalf("State() = %v, want Initialising", em.State())
	}
	em.Pause(false)
	if em.State() != emulation.Running {
		t.Fatalf("State() = %v, want Running", em.State())
	}
	em.Pause(true)
	if em.State() != emulation.Paused {
		t.Fatalf("State() = %v, want Paused", em.State())
	}
}

func TestQueueKeyIsDrainedNextFrame(t *testing.T) {
	c := newComputer(t)
	c.CPU.Reset()
	em := emulation.New(c, nil, clock.US[clock.Mode1MHz], true, 735)

	em.QueueKey('A', true)
	em.RunFrame()

	if c.Keyboard.ReadC000()&0x7F != 'A' {
		t.Fatalf("keyboard latch not updated after RunFrame drained the queued key")
	}
}

func TestPlatformReportsWiredMachine(t *testing.T) {
	c := newComputer(t)
	em := emulation.New(c, nil, clock.US[clock.Mode1MHz], true, 735)
	if em.Platform() != platform.IIe {
		t.Fatalf("Platform() = %v, want IIe", em.Platform())
	}
}
