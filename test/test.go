// Package test collects the small assertion helpers used by every _test.go
// file in this module. It deliberately mirrors the one-assertion-per-call
// style used throughout rather than pulling in a matcher library: most
// checks here are either "these two things are equal" or "this condition
// holds", and a plain if-statement with t.Fatalf underneath reads better in
// a CPU-cycle-by-cycle trace than a fluent assertion chain would.
package test

import (
	"fmt"
	"reflect"
	"testing"
)

// Equate fails the test if got and want are not equal, as judged by
// reflect.DeepEqual (falling back to a formatted-string comparison for
// anything reflect.DeepEqual finds awkward, like function values).
func Equate(t *testing.T, got, want interface{}) bool {
	t.Helper()
	if reflect.DeepEqual(got, want) {
		return true
	}
	if fmt.Sprintf("%v", got) == fmt.Sprintf("%v", want) {
		return true
	}
	t.Errorf("unexpected value: got %v, wanted %v", got, want)
	return false
}

// ExpectSuccess fails the test if condition is false.
func ExpectSuccess(t *testing.T, condition bool) bool {
	t.Helper()
	if !condition {
		t.Errorf("expected success, got failure")
	}
	return condition
}

// ExpectFailure fails the test if condition is true.
func ExpectFailure(t *testing.T, condition bool) bool {
	t.Helper()
	if condition {
		t.Errorf("expected failure, got success")
	}
	return !condition
}

// ExpectedSuccess is an alias of ExpectSuccess kept because both spellings
// are in use across the package's history.
func ExpectedSuccess(t *testing.T, condition bool) bool {
	t.Helper()
	return ExpectSuccess(t, condition)
}

// ExpectedFailure is an alias of ExpectFailure.
func ExpectedFailure(t *testing.T, condition bool) bool {
	t.Helper()
	return ExpectFailure(t, condition)
}

// ExpectEquality fails the test if a and b are not equal.
func ExpectEquality(t *testing.T, a, b interface{}) bool {
	t.Helper()
	return Equate(t, a, b)
}

// ExpectInequality fails the test if a and b are equal.
func ExpectInequality(t *testing.T, a, b interface{}) bool {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality but both values are %v", a)
		return false
	}
	return true
}

// ExpectApproximate fails the test unless a and b are within tolerance of
// each other. Used for frame-rate and audio-integrator comparisons where
// exact equality is neither possible nor desirable.
func ExpectApproximate(t *testing.T, a, b, tolerance float64) bool {
	t.Helper()
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > tolerance {
		t.Errorf("expected %v to be within %v of %v (difference %v)", a, tolerance, b, d)
		return false
	}
	return true
}

// DemandSuccess is ExpectSuccess but calls t.Fatalf, aborting the test
// immediately. Use for preconditions later assertions depend on.
func DemandSuccess(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Fatalf("required condition failed")
	}
}

// DemandFailure is ExpectFailure but calls t.Fatalf.
func DemandFailure(t *testing.T, condition bool) {
	t.Helper()
	if condition {
		t.Fatalf("required condition unexpectedly succeeded")
	}
}

// DemandEquality is Equate but calls t.Fatalf.
func DemandEquality(t *testing.T, got, want interface{}) {
	t.Helper()
	if !reflect.DeepEqual(got, want) && fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
		t.Fatalf("required equality failed: got %v, wanted %v", got, want)
	}
}
