package instance_test

import (
	"testing"

	"github.com/deadleaf/apple2core/hardware/video/coords"
	"github.com/deadleaf/apple2core/instance"
	"github.com/deadleaf/apple2core/platform"
)

func TestDefault(t *testing.T) {
	cfg := instance.Default()
	if cfg.Platform != platform.IIe {
		t.Fatalf("Default().Platform = %v, want IIe", cfg.Platform)
	}
	if cfg.SampleRate != 44100 {
		t.Fatalf("Default().SampleRate = %d, want 44100", cfg.SampleRate)
	}
}

func TestNewInstanceNilConfigAndTV(t *testing.T) {
	ins := instance.NewInstance(nil, nil)
	if ins.Config == nil {
		t.Fatalf("NewInstance(nil, nil).Config is nil")
	}
	if ins.Random == nil {
		t.Fatalf("NewInstance(nil, nil).Random is nil")
	}
	// Must not panic reading noise from the zero TV stand-in.
	_ = ins.Random.NoRewind(256)
}

type fakeTV struct{ pos coords.Position }

func (f fakeTV) GetCoords() coords.Position { return f.pos }

func TestNewInstanceUsesSuppliedTV(t *testing.T) {
	tv := fakeTV{pos: coords.Position{Frame: 3, Scanline: 10, Column: 42}}
	ins := instance.NewInstance(&instance.RuntimeConfig{}, tv)
	if ins.Random == nil {
		t.Fatalf("Random is nil")
	}
}

func TestNormaliseForcesZeroSeed(t *testing.T) {
	ins := instance.NewInstance(&instance.RuntimeConfig{RandomState: true}, nil)
	ins.Normalise()
	if !ins.Random.ZeroSeed {
		t.Fatalf("Normalise() did not set ZeroSeed")
	}
	if ins.Config.RandomState {
		t.Fatalf("Normalise() left RandomState true")
	}
}

func TestAllowLogging(t *testing.T) {
	var cfg *instance.RuntimeConfig
	if cfg.AllowLogging() {
		t.Fatalf("nil RuntimeConfig reported AllowLogging true")
	}
	cfg = &instance.RuntimeConfig{}
	if !cfg.AllowLogging() {
		t.Fatalf("non-nil RuntimeConfig reported AllowLogging false")
	}
}
