// Package speaker converts a sparse stream of C030 toggle timestamps
// into a band-limited S16LE PCM stream, per spec.md §4.5. It is
// grounded on the teacher's hardware/tia mixing approach (a per-sample
// integrator fed by a ring of recorded events rather than a per-cycle
// simulation) and the ring buffer introduced in internal/ring for
// spec.md §3.4's event buffer.
package speaker

import (
	"github.com/deadleaf/apple2core/internal/ring"
)

// eventBufferCapacity is the next power of two at or above 128K events
// (spec.md §3.4).
const eventBufferCapacity = 1 << 17

// Event is one C030 toggle, timestamped in 14M master-clock units.
type Event struct {
	C14M uint64
}

// Generator integrates toggle events into PCM samples, per spec.md
// §4.5's "Integration" and "Rates" rules.
type Generator struct {
	events *ring.Buffer[Event]

	inputHz  float64
	outputHz int

	cyclesPerSample int64 // fixed point, 20 fractional bits
	sampleScale     int64 // fixed point, 20 fractional bits

	lastEventTime int64
	rectRemain    int64
	polarity      int64 // +1 or -1, scaled by the hold decay

	holdCounter    int64
	holdResetValue int64
}

const fixedPointShift = 20

// New builds a Generator for the given CPU input rate and PCM output
// rate (spec.md §4.5's "Rates": cycles_per_sample = (input_hz<<20) /
// output_hz, sample_scale = (5120<<20) / cycles_per_sample).
func New(inputHz float64, outputHz int) *Generator {
	g := &Generator{
		events:   ring.New[Event](eventBufferCapacity),
		inputHz:  inputHz,
		outputHz: outputHz,
		polarity: -1 << fixedPointShift,
	}
	g.SetRate(inputHz, outputHz)
	return g
}

// SetRate reconfigures the generator's sample-rate conversion constants
// without discarding queued events, for use when the clock mode changes.
func (g *Generator) SetRate(inputHz float64, outputHz int) {
	g.inputHz = inputHz
	g.outputHz = outputHz
	g.cyclesPerSample = int64(inputHz*float64(int64(1)<<fixedPointShift)) / int64(outputHz)
	if g.cyclesPerSample == 0 {
		g.cyclesPerSample = 1
	}
	g.sampleScale = (5120 << fixedPointShift) / g.cyclesPerSample
	g.holdResetValue = int64(0.030 * float64(outputHz))
}

// AddEvent records a C030 touch at the given 14M timestamp (the bus's
// contract from spec.md §4.5: "The bus calls add_event(c_14M, ...) on
// every read or write in the C030-C03F (II/IIe) or C030 (IIgs) range").
// It never blocks; an overflowing event is dropped silently, matching
// the event buffer's non-blocking producer contract (spec.md §3.4).
func (g *Generator) AddEvent(c14M uint64) {
	g.events.TryPush(Event{C14M: c14M})
}

// Pending reports how many queued toggle events have not yet been
// integrated.
func (g *Generator) Pending() int {
	return g.events.Len()
}

// popEvent returns the next queued event, or a synthetic end-of-frame
// event at endOfFrame14M if the queue is empty (spec.md §4.5 step 2:
// "pop the next event (or a fake end-of-frame event)").
func (g *Generator) popEvent(endOfFrame14M int64) int64 {
	if e, ok := g.events.TryPop(); ok {
		return int64(e.C14M)
	}
	return endOfFrame14M
}

// GenerateFrame integrates queued events into count S16LE samples,
// advancing the clock to endOfFrame14M by the time it returns. It
// implements spec.md §4.5's per-sample integration loop and end-of-
// frame skew recovery.
func (g *Generator) GenerateFrame(count int, endOfFrame14M int64, oneFrame14M int64) []int16 {
	out := make([]int16, count)

	for i := 0; i < count; i++ {
		sampleRemain := g.cyclesPerSample
		var contribution int64

		for sampleRemain > 0 {
			if g.rectRemain == 0 {
				eventTime := g.popEvent(endOfFrame14M)
				g.flip()
				g.rectRemain = (eventTime - g.lastEventTime) << fixedPointShift
				g.lastEventTime = eventTime
				if g.rectRemain <= 0 {
					g.rectRemain = sampleRemain // degenerate same-timestamp event: consume the rest
				}
			}

			take := sampleRemain
			if g.rectRemain < take {
				take = g.rectRemain
			}
			contribution += take * g.sign()
			g.rectRemain -= take
			sampleRemain -= take
		}

		out[i] = int16((contribution * g.sampleScale) >> fixedPointShift)

		g.holdCounter--
		if g.holdCounter <= 0 {
			g.holdCounter = 0
			g.polarity = (g.polarity * 9990) / 10000
		}
	}

	g.recoverSkew(endOfFrame14M, oneFrame14M)
	return out
}

// flip toggles the polarity impulse and resets the 30ms decay hold
// counter, per spec.md §4.5 step 2.
func (g *Generator) flip() {
	mag := g.polarity
	if mag < 0 {
		mag = -mag
	}
	if mag < (1 << (fixedPointShift - 4)) {
		mag = 1 << fixedPointShift // a fully decayed magnitude still flips to full scale on the next toggle
	}
	if g.sign() >= 0 {
		g.polarity = -mag
	} else {
		g.polarity = mag
	}
	g.holdCounter = g.holdResetValue
}

func (g *Generator) sign() int64 {
	if g.polarity < 0 {
		return -1
	}
	return 1
}

// recoverSkew implements spec.md §4.5's "Skew recovery": if the event
// stream has drifted more than three frame lengths ahead of
// last_event_time, jump last_event_time forward and drop the backlog
// rather than let the integrator lock up after a long pause.
func (g *Generator) recoverSkew(endOfFrame14M, oneFrame14M int64) {
	if endOfFrame14M-g.lastEventTime <= 3*oneFrame14M {
		return
	}
	threshold := endOfFrame14M - oneFrame14M
	g.lastEventTime = threshold
	var keep []Event
	g.events.Drain(func(e Event) {
		if int64(e.C14M) >= threshold {
			keep = append(keep, e)
		}
	})
	for _, e := range keep {
		g.events.TryPush(e)
	}
}
