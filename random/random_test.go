package random_test

import (
	"testing"

	"github.com/deadleaf/apple2core/hardware/video/coords"
	"github.com/deadleaf/apple2core/random"
	"github.com/deadleaf/apple2core/test"
)

type tv struct {
}

func (m *tv) GetCoords() coords.Position {
	return coords.Position{
		Frame:    100,
		Scanline: 32,
		Column:   10,
	}
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&tv{})
	b := random.NewRandom(&tv{})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}
