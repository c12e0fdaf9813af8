// Package emulation implements the per-frame dispatch loop described in
// spec.md §4.7: run the CPU until the next frame boundary, drain host
// input events, generate one audio frame, render dirty scanlines, and
// pace real time against the machine's target Hz. It is grounded on
// the teacher's hardware/hardware.go Run loop (fetch-execute-until-
// condition, feature-request channel, state machine) generalised from
// the VCS's television-frame-driven stop condition to the Apple II's
// explicit c_14M/frame-boundary comparison.
package emulation

import (
	"github.com/deadleaf/apple2core/assert"
	"github.com/deadleaf/apple2core/emulation/devstats"
	"github.com/deadleaf/apple2core/emulation/limiter"
	"github.com/deadleaf/apple2core/hardware"
	"github.com/deadleaf/apple2core/hardware/clock"
	"github.com/deadleaf/apple2core/hardware/input"
	"github.com/deadleaf/apple2core/hardware/video"
	"github.com/deadleaf/apple2core/platform"
)

// State indicates the emulation's run state.
type State int

// The states an Emulation can be in.
const (
	Initialising State = iota
	Running
	Paused
	Stepping
	Ending
)

// Event describes a state transition the dispatcher reports to a host
// (spec.md §4.7's "notify the host of pause/run transitions").
type Event int

// The events a host can observe on the Events channel.
const (
	EventPause Event = iota
	EventRun
	EventEnding
)

// Emulation drives one hardware.Computer's frame loop.
type Emulation struct {
	Computer *hardware.Computer
	Renderer video.Renderer
	Timing   clock.Timing

	limiter *limiter.Limiter

	state  State
	events chan Event

	samplesPerFrame int
	frameNum        int

	pendingKeys []input.KeyEvent

	// Stats, when non-nil, receives per-frame gauges for the live stats
	// page (SPEC_FULL.md §4.7). A host that doesn't start a devstats
	// server leaves this nil and pays nothing for it.
	Stats *devstats.Gauges

	mainThread assert.MainThread
}

// New builds an Emulation for computer, rendering into r and pacing to
// timing's even/odd microsecond frame periods (spec.md §3.6), with
// busyWait selecting the limiter's wait strategy.
func New(computer *hardware.Computer, r video.Renderer, timing clock.Timing, busyWait bool, samplesPerFrame int) *Emulation {
	return &Emulation{
		Computer:        computer,
		Renderer:        r,
		Timing:          timing,
		limiter:         limiter.New(timing.MicrosecondsEvenFrame, timing.MicrosecondsOddFrame, busyWait),
		state:           Initialising,
		events:          make(chan Event, 8),
		samplesPerFrame: samplesPerFrame,
	}
}

// State reports the current run state.
func (e *Emulation) State() State { return e.state }

// Events returns the channel the dispatcher posts state-transition
// notifications to; a host drains it to stay in sync.
func (e *Emulation) Events() <-chan Event { return e.events }

// QueueKey records a translated key event for the next frame's input
// drain (spec.md §4.7 step 2).
func (e *Emulation) QueueKey(code uint8, down bool) {
	e.pendingKeys = append(e.pendingKeys, input.KeyEvent{Code: code, Down: down})
}

// Pause sets or clears the paused state and notifies the host.
func (e *Emulation) Pause(set bool) {
	if set {
		e.state = Paused
		e.postEvent(EventPause)
		return
	}
	e.state = Running
	e.postEvent(EventRun)
}

func (e *Emulation) postEvent(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

// RunFrame executes exactly one frame's worth of CPU cycles, generates
// its audio, and renders its dirty scanlines, per spec.md §4.7's six
// numbered steps. It is the unit of work a host's main loop calls once
// per iteration; callers wanting continuous playback call it in a loop
// and let the internal limiter regulate real time.
func (e *Emulation) RunFrame() []int16 {
	e.mainThread.Check()

	mem := e.Computer.Mem

	e.drainInput()

	startC14M := mem.C14M()
	frameLen := int64(e.Timing.Cycles14MPerFrame)
	frameEndC14M := startC14M + uint64(frameLen)

	for mem.C14M() < frameEndC14M {
		e.Computer.CPU.ExecuteNext()
	}

	samples := e.Computer.Speaker.GenerateFrame(e.samplesPerFrame, int64(frameEndC14M), frameLen)

	if e.Renderer != nil {
		e.Renderer.NewFrame(e.frameNum)
	}

	e.frameNum++
	e.limiter.Wait()

	if e.Stats != nil {
		e.Stats.PutAchievedHz(e.limiter.AchievedHz())
		e.Stats.SlipMicroseconds.Store(e.limiter.Slip().Microseconds())
		e.Stats.SpeakerPending.Store(int32(e.Computer.Speaker.Pending()))
		e.Stats.FrameNumber.Store(uint64(e.frameNum))
	}

	return samples
}

func (e *Emulation) drainInput() {
	for _, ev := range e.pendingKeys {
		e.Computer.Keyboard.Push(ev)
	}
	e.pendingKeys = e.pendingKeys[:0]
	e.Computer.Keyboard.Poll()
}

// AchievedHz reports the limiter's most recently measured frame rate.
func (e *Emulation) AchievedHz() float64 { return e.limiter.AchievedHz() }

// Slip reports how far the last frame's wall-clock pacing overran.
func (e *Emulation) Slip() (microseconds int64) {
	return e.limiter.Slip().Microseconds()
}

// Platform returns the wired machine's platform ID.
func (e *Emulation) Platform() platform.ID { return e.Computer.Platform }
