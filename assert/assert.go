// Package assert collects small runtime-invariant checks used by debug
// builds. The core is specified (spec.md §5) as single-threaded and
// cooperatively scheduled: the CPU, bus, MMU, scanner and device frame
// handlers all run on one goroutine and never take a lock between them.
// That invariant is cheap to assert and expensive to debug if silently
// violated, so components that are only ever meant to be touched from the
// frame loop's goroutine can call MainThread.Check() to catch a violation
// immediately instead of producing a hard-to-reproduce data race later.
package assert

import "fmt"

// MainThread records the goroutine ID that first called it, and panics if
// called again from a different goroutine. Call it once at the start of
// the frame loop, and again from any device callback that must only ever
// run from that loop.
type MainThread struct {
	id  uint64
	set bool
}

// Check panics if this is not the first call, or the goroutine recorded
// on the first call.
func (m *MainThread) Check() {
	id := GetGoRoutineID()
	if !m.set {
		m.id = id
		m.set = true
		return
	}
	if m.id != id {
		panic(fmt.Sprintf("invariant violated: called from goroutine %d, expected %d", id, m.id))
	}
}
