// Package ring implements the fixed-capacity, single-producer/single-
// consumer ring buffer spec.md §3.4 and §5 both call for: the speaker
// event buffer, the modem's inbound byte stream, and the disk write-back
// queue are all instances of this one generic type. A plain buffered
// channel very nearly serves, but spec.md §3.4 requires overflow to be
// visible to the producer as a bool return rather than a block, which a
// channel send cannot give without an additional select/default dance at
// every call site; wrapping that dance once here keeps every call site a
// one-line TryPush.
package ring

import "sync/atomic"

// Buffer is a lock-free ring of a fixed capacity, rounded up by the
// caller to whatever size suits (spec.md §3.4 specifies the speaker's
// capacity as the next power of two at or above 128K events, but Buffer
// itself works for any positive capacity).
type Buffer[T any] struct {
	data []T
	cap  uint64

	// head is the next slot the consumer will read; tail is the next
	// slot the producer will write. Both only ever increase; the
	// occupied count is tail-head, which can never exceed cap because
	// TryPush refuses to advance tail past head+cap.
	head atomic.Uint64
	tail atomic.Uint64
}

// New creates a Buffer with room for capacity items.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Buffer[T]{
		data: make([]T, capacity),
		cap:  uint64(capacity),
	}
}

// TryPush appends v without blocking. It returns false, and drops v,
// if the buffer is full - the producer must never block (spec.md §5).
func (b *Buffer[T]) TryPush(v T) bool {
	tail := b.tail.Load()
	head := b.head.Load()
	if tail-head >= b.cap {
		return false
	}
	b.data[tail%b.cap] = v
	b.tail.Store(tail + 1)
	return true
}

// TryPop removes and returns the oldest item, reporting false if the
// buffer is empty.
func (b *Buffer[T]) TryPop() (T, bool) {
	var zero T
	head := b.head.Load()
	tail := b.tail.Load()
	if head >= tail {
		return zero, false
	}
	v := b.data[head%b.cap]
	b.head.Store(head + 1)
	return v, true
}

// Len returns the number of items currently occupied.
func (b *Buffer[T]) Len() int {
	return int(b.tail.Load() - b.head.Load())
}

// Cap returns the buffer's fixed capacity.
func (b *Buffer[T]) Cap() int {
	return int(b.cap)
}

// Drain calls fn for every currently-occupied item, oldest first,
// removing each as it is delivered. Used at end-of-frame to hand the
// whole queued batch to a consumer in one call.
func (b *Buffer[T]) Drain(fn func(T)) {
	for {
		v, ok := b.TryPop()
		if !ok {
			return
		}
		fn(v)
	}
}
