// Package limiter paces the frame dispatcher to ~59.9227Hz, either by
// sleeping or busy-waiting until the wall-clock deadline (the -s CLI
// flag's choice, spec.md §4.7 step 6), and tracks the achieved rate
// and slip for the stats page. Grounded on the teacher's
// gui/sdl/limiter.go (a ticker goroutine with drift correction), here
// folded into a synchronous Wait() call so the frame dispatcher stays
// single-threaded per spec.md §5.
package limiter

import "time"

// Limiter paces calls to Wait to a target frame period, alternating
// even/odd frame periods per spec.md §3.6 ("the frame period alternates
// by 1ns to average to 59.9227Hz").
type Limiter struct {
	evenPeriod time.Duration
	oddPeriod  time.Duration
	busyWait   bool

	last     time.Time
	frameNum int

	achievedHz float64
	slip       time.Duration
}

// New builds a Limiter from the even/odd microsecond frame periods
// clock.Timing supplies (spec.md §3.6's MicrosecondsEvenFrame/
// MicrosecondsOddFrame). busyWait selects spin-waiting over
// time.Sleep for the deadline (lower jitter, full core usage).
func New(evenUs, oddUs float64, busyWait bool) *Limiter {
	return &Limiter{
		evenPeriod: time.Duration(evenUs * float64(time.Microsecond)),
		oddPeriod:  time.Duration(oddUs * float64(time.Microsecond)),
		busyWait:   busyWait,
		last:       nowPlaceholder(),
	}
}

// nowPlaceholder exists only so New doesn't need a caller-supplied
// clock reading; the first Wait call always measures a fresh
// reference point instead of trusting this value.
func nowPlaceholder() time.Time { return time.Time{} }

// Wait blocks until this frame's wall-clock deadline, then records the
// achieved rate and any slip (time overrun past the deadline).
func (l *Limiter) Wait() {
	period := l.evenPeriod
	if l.frameNum%2 == 1 {
		period = l.oddPeriod
	}
	l.frameNum++

	if l.last.IsZero() {
		l.last = time.Now()
		return
	}

	deadline := l.last.Add(period)

	if l.busyWait {
		for time.Now().Before(deadline) {
		}
	} else {
		if d := time.Until(deadline); d > 0 {
			time.Sleep(d)
		}
	}

	now := time.Now()
	elapsed := now.Sub(l.last)
	if elapsed > period {
		l.slip = elapsed - period
	} else {
		l.slip = 0
	}
	if elapsed > 0 {
		l.achievedHz = float64(time.Second) / float64(elapsed)
	}
	l.last = now
}

// AchievedHz returns the most recently measured frame rate.
func (l *Limiter) AchievedHz() float64 { return l.achievedHz }

// Slip returns how far the last frame ran past its deadline.
func (l *Limiter) Slip() time.Duration { return l.slip }
