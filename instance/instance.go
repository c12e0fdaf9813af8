// Package instance carries the RuntimeConfig described in spec.md §9's
// design notes: the one explicit, threaded-through-init structure that
// stands in for the several module-global singletons the original source
// keeps (app paths, debug level, preferences). It is adapted from the
// teacher's hardware/instance package, which serves the same purpose for
// the VCS: things that vary between independent emulation instances
// (useful when running more than one machine in the same process, for
// example an A/B comparison) but are not the machine itself.
package instance

import (
	"github.com/deadleaf/apple2core/hardware/video/coords"
	"github.com/deadleaf/apple2core/platform"
	"github.com/deadleaf/apple2core/random"
)

// DiskMount names an image to mount at a given slot/drive pair, per the
// -d flag in spec.md §6.3.
type DiskMount struct {
	Slot     int
	Drive    int
	Path     string
	ReadOnly bool
}

// RuntimeConfig is the explicit configuration struct threaded through
// init, standing in for the module-global state spec.md §9 warns
// against. The only legitimate process-global left is the paths resolver
// (package paths), which this struct does not attempt to replace.
type RuntimeConfig struct {
	Platform platform.ID

	ROMPath     string
	CharROMPath string

	Mounts []DiskMount

	// UseOSSleep selects OS sleep over busy-wait between frames (-s flag).
	UseOSSleep bool

	// TraceEnabled turns on population of the CPU's per-instruction
	// trace entry slot (spec.md §3.3).
	TraceEnabled bool

	// RandomState, if true, seeds CPU/RAM power-on state from Random
	// rather than zeroing it.
	RandomState bool

	SampleRate int

	// StatsAddr, when non-empty, starts the live stats page (SPEC_FULL.md
	// §4.7) listening on this address.
	StatsAddr string

	// WAVPath, when non-empty, tees the speaker's PCM output to a WAV
	// file at this path (SPEC_FULL.md §4.5 "Debug capture").
	WAVPath string

	// UseSDLWindow opens a real SDL window and audio device instead of
	// running headless (spec.md §6.3's "-s" headless control surface
	// otherwise has no on-screen presentation at all).
	UseSDLWindow bool
}

// Default returns a RuntimeConfig with the values a bare invocation (no
// flags) should use.
func Default() RuntimeConfig {
	return RuntimeConfig{
		Platform:   platform.IIe,
		SampleRate: 44100,
	}
}

// AllowLogging implements logger.Permission: it reports true for any
// non-nil RuntimeConfig and false for a nil one.
func (c *RuntimeConfig) AllowLogging() bool {
	return c != nil
}

// Instance bundles a RuntimeConfig with the per-instance random source,
// which needs a coords.Position source (the video scanner) to seed
// against and so cannot simply be a package global.
type Instance struct {
	Config *RuntimeConfig
	Random *random.Random
}

// NewInstance creates an Instance. tv supplies the raster position used to
// seed Random; pass nil only in contexts (unit tests of leaf components)
// that never call Random.Rewindable.
func NewInstance(cfg *RuntimeConfig, tv random.TV) *Instance {
	if cfg == nil {
		cfg = &RuntimeConfig{}
	}
	if tv == nil {
		tv = zeroTV{}
	}
	return &Instance{
		Config: cfg,
		Random: random.NewRandom(tv),
	}
}

type zeroTV struct{}

func (zeroTV) GetCoords() coords.Position { return coords.Position{} }

// Normalise puts the instance into a reproducible default state, used by
// the conformance harness and by tests that must not depend on wall-clock
// or goroutine-scheduling entropy.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Config.RandomState = false
}
