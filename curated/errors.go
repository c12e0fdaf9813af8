// Package curated wraps the plain Go error interface so that error chains
// can be pattern-matched by callers without resorting to sentinel values or
// type assertions on every wrapper.
//
// Curated errors are created with Errorf(). Is() checks whether the
// outermost error of a chain has a specific pattern; Has() checks whether
// the pattern occurs anywhere in the chain:
//
//	e := curated.Errorf("disk: wrong size for %s", ext)
//	if curated.Is(e, "disk: wrong size for %s") { ... }
package curated

import (
	"fmt"
	"strings"
)

// curated is the concrete implementation of the error interface used
// throughout this module.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. The first argument is named "pattern"
// rather than "format" because it doubles as the key used by Is()/Has().
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message, removing duplicate adjacent
// parts that tend to accumulate when every layer wraps the one below it.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// IsAny reports whether err was created by Errorf.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is reports whether err is a curated error created with the given pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has reports whether pattern occurs anywhere in err's wrap chain.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if !IsAny(err) {
		return false
	}
	if Is(err, pattern) {
		return true
	}
	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}
	return false
}
