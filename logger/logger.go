// Package logger implements a small ring-buffer logger shared by every
// component of the core. It is deliberately not an ecosystem structured
// logger: log lines here are rare (a handful per frame at most — a
// soft-switch touch that fell outside the composed page table, a disk
// image that needed reformatting on mount) and are consumed by reading the
// tail of the buffer, not by shipping structured fields to a collector.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission is implemented by anything that can be asked whether it is
// allowed to add entries to the log. The RuntimeConfig type implements
// this so that, for example, a throwaway headless conformance-test run
// doesn't pollute the log of the main emulation.
type Permission interface {
	AllowLogging() bool
}

// alwaysAllow is the Permission used by the package-level convenience
// functions and by any caller that has no finer-grained policy.
type alwaysAllow struct{}

func (alwaysAllow) AllowLogging() bool { return true }

// Allow is the permission value used when logging should never be
// suppressed.
var Allow Permission = alwaysAllow{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Logger is a fixed-capacity ring of log entries.
type Logger struct {
	mu      sync.Mutex
	entries []entry
	cap     int
	next    int
	count   int
}

// NewLogger creates a Logger that retains at most capacity entries.
func NewLogger(capacity int) *Logger {
	return &Logger{
		entries: make([]entry, capacity),
		cap:     capacity,
	}
}

// Log appends a new entry, formatting detail with the same rules as Logf's
// %v verb: errors are rendered with Error(), fmt.Stringer with String(),
// everything else with %v.
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm != nil && !perm.AllowLogging() {
		return
	}
	l.append(tag, detailString(detail))
}

// Logf appends a new entry built with a format string, in the manner of
// fmt.Sprintf.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...interface{}) {
	if perm != nil && !perm.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func detailString(detail interface{}) string {
	switch v := detail.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) append(tag, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[l.next] = entry{tag: tag, detail: detail}
	l.next = (l.next + 1) % l.cap
	if l.count < l.cap {
		l.count++
	}
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next = 0
	l.count = 0
}

// ordered returns the entries in chronological order.
func (l *Logger) ordered() []entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entry, 0, l.count)
	start := (l.next - l.count + l.cap) % l.cap
	for i := 0; i < l.count; i++ {
		out = append(out, l.entries[(start+i)%l.cap])
	}
	return out
}

// Write writes every retained entry, oldest first, to w.
func (l *Logger) Write(w io.Writer) {
	for _, e := range l.ordered() {
		io.WriteString(w, e.String())
	}
}

// Tail writes at most n of the most recently retained entries to w, oldest
// of those first. Asking for more entries than are retained, or for zero
// entries, is not an error.
func (l *Logger) Tail(w io.Writer, n int) {
	all := l.ordered()
	if n > len(all) {
		n = len(all)
	}
	if n <= 0 {
		return
	}
	for _, e := range all[len(all)-n:] {
		io.WriteString(w, e.String())
	}
}

// String returns every retained entry as a single string, for convenience
// in contexts that don't have an io.Writer to hand.
func (l *Logger) String() string {
	var b strings.Builder
	l.Write(&b)
	return b.String()
}

// defaultLogger is the package-level logger used by the free functions below. It
// is also what RuntimeConfig-less components (instructions decoder
// self-tests, disassembly, etc.) log into.
var defaultLogger = NewLogger(1024)

// Log appends to the default logger.
func Log(perm Permission, tag string, detail interface{}) { defaultLogger.Log(perm, tag, detail) }

// Logf appends to the default logger using a format string.
func Logf(perm Permission, tag string, format string, args ...interface{}) {
	defaultLogger.Logf(perm, tag, format, args...)
}

// Write writes the default logger's entries to w.
func Write(w io.Writer) { defaultLogger.Write(w) }

// Tail writes the default logger's most recent n entries to w.
func Tail(w io.Writer, n int) { defaultLogger.Tail(w, n) }

// Clear empties the default logger.
func Clear() { defaultLogger.Clear() }
