package platform_test

import (
	"testing"

	"github.com/deadleaf/apple2core/platform"
)

func TestParseIDRange(t *testing.T) {
	for n := 0; n <= 4; n++ {
		id, ok := platform.ParseID(n)
		if !ok {
			t.Fatalf("ParseID(%d) reported invalid", n)
		}
		if int(id) != n {
			t.Fatalf("ParseID(%d) = %d", n, id)
		}
	}
	if _, ok := platform.ParseID(-1); ok {
		t.Fatalf("ParseID(-1) reported valid")
	}
	if _, ok := platform.ParseID(5); ok {
		t.Fatalf("ParseID(5) reported valid")
	}
}

func TestTraitsPerPlatform(t *testing.T) {
	cases := []struct {
		id      platform.ID
		cpu     platform.CPUVariant
		romSize int
		aux     bool
		shadow  bool
	}{
		{platform.II, platform.Variant6502, 12 * 1024, false, false},
		{platform.IIPlus, platform.Variant6502, 12 * 1024, false, false},
		{platform.IIe, platform.Variant6502, 16 * 1024, true, false},
		{platform.IIeEnhanced, platform.Variant65C02, 16 * 1024, true, false},
		{platform.IIgs, platform.Variant65816, 128 * 1024, true, true},
	}
	for _, c := range cases {
		tr := platform.Of(c.id)
		if tr.CPU != c.cpu {
			t.Errorf("%s: CPU = %v, want %v", c.id, tr.CPU, c.cpu)
		}
		if tr.MainROMSize != c.romSize {
			t.Errorf("%s: MainROMSize = %d, want %d", c.id, tr.MainROMSize, c.romSize)
		}
		if tr.Has80Column != c.aux {
			t.Errorf("%s: Has80Column = %v, want %v", c.id, tr.Has80Column, c.aux)
		}
		if tr.HasIIgsShadowing != c.shadow {
			t.Errorf("%s: HasIIgsShadowing = %v, want %v", c.id, tr.HasIIgsShadowing, c.shadow)
		}
		if !tr.HasLanguageCard {
			t.Errorf("%s: HasLanguageCard = false, want true", c.id)
		}
	}
}

func TestStringNamesEveryPlatform(t *testing.T) {
	for n := 0; n <= 4; n++ {
		id, _ := platform.ParseID(n)
		if id.String() == "unknown platform" {
			t.Errorf("ID(%d).String() returned the unknown fallback", n)
		}
	}
}
