package hwerrors_test

import (
	"testing"

	"github.com/deadleaf/apple2core/curated"
	"github.com/deadleaf/apple2core/hwerrors"
)

func TestPatternsRoundTripThroughCurated(t *testing.T) {
	err := curated.Errorf(hwerrors.DiskWrongSize, "boot.dsk", 12345, ".DSK")
	if !curated.Is(err, hwerrors.DiskWrongSize) {
		t.Fatalf("curated.Is did not recognise the pattern it was created with")
	}
	if curated.Is(err, hwerrors.DiskUnrecognised) {
		t.Fatalf("curated.Is matched the wrong pattern")
	}
}

func TestErrorMessageSubstitutesArguments(t *testing.T) {
	err := curated.Errorf(hwerrors.ROMWrongSize, "apple2e.rom", 100, 16384)
	msg := err.Error()
	if msg == "" {
		t.Fatalf("Error() returned empty string")
	}
	if !curated.Is(err, hwerrors.ROMWrongSize) {
		t.Fatalf("curated.Is did not recognise ROMWrongSize")
	}
}
