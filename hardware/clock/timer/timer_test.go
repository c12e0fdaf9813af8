package timer_test

import (
	"testing"

	"github.com/deadleaf/apple2core/hardware/clock/timer"
)

func TestScheduleFiresAtDeadline(t *testing.T) {
	q := timer.New()
	fired := false
	q.Schedule(10, func(late int) { fired = true })

	q.Advance(9)
	if fired {
		t.Fatalf("callback fired before its deadline")
	}
	q.Advance(1)
	if !fired {
		t.Fatalf("callback did not fire at its deadline")
	}
}

func TestOrderingByDeadlineThenScheduleOrder(t *testing.T) {
	q := timer.New()
	var order []int
	q.Schedule(5, func(late int) { order = append(order, 1) })
	q.Schedule(5, func(late int) { order = append(order, 2) })
	q.Schedule(1, func(late int) { order = append(order, 3) })

	q.Advance(10)
	want := []int{3, 1, 2}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestCancelPreventsCallback(t *testing.T) {
	q := timer.New()
	fired := false
	h := q.Schedule(5, func(late int) { fired = true })
	q.Cancel(h)
	q.Advance(10)
	if fired {
		t.Fatalf("cancelled callback still fired")
	}
}

func TestCancelAfterFiringIsNoop(t *testing.T) {
	q := timer.New()
	h := q.Schedule(1, func(late int) {})
	q.Advance(1)
	q.Cancel(h) // must not panic
}

func TestPendingReflectsQueueDepth(t *testing.T) {
	q := timer.New()
	if q.Pending() != 0 {
		t.Fatalf("Pending() = %d on a new queue, want 0", q.Pending())
	}
	q.Schedule(5, func(late int) {})
	q.Schedule(10, func(late int) {})
	if q.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", q.Pending())
	}
	q.Advance(5)
	if q.Pending() != 1 {
		t.Fatalf("Pending() = %d after one callback fired, want 1", q.Pending())
	}
}

func TestNowTracksCumulativeAdvance(t *testing.T) {
	q := timer.New()
	q.Advance(3)
	q.Advance(4)
	if q.Now() != 7 {
		t.Fatalf("Now() = %d, want 7", q.Now())
	}
}

func TestNegativeDelayFiresImmediately(t *testing.T) {
	q := timer.New()
	fired := false
	q.Schedule(-5, func(late int) { fired = true })
	q.Advance(0)
	if !fired {
		t.Fatalf("negative-delay callback did not fire at the next Advance")
	}
}
