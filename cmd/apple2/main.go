// Command apple2 is the CLI entry point for the emulator core, per
// spec.md §6.3. It is grounded on the teacher's top-level command
// (stdlib flag parsing, explicit exit codes, no config file/env
// layer), generalized from the VCS's ROM-file-only argument to the
// Apple II's platform-id/disk-mount/sleep-mode flag set.
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/deadleaf/apple2core/curated"
	"github.com/deadleaf/apple2core/emulation"
	"github.com/deadleaf/apple2core/emulation/devstats"
	"github.com/deadleaf/apple2core/gui"
	"github.com/deadleaf/apple2core/gui/sdl"
	"github.com/deadleaf/apple2core/gui/sdlaudio"
	"github.com/deadleaf/apple2core/hardware"
	"github.com/deadleaf/apple2core/hardware/clock"
	"github.com/deadleaf/apple2core/hardware/speaker/wavdump"
	"github.com/deadleaf/apple2core/hardware/video"
	"github.com/deadleaf/apple2core/hwerrors"
	"github.com/deadleaf/apple2core/instance"
	"github.com/deadleaf/apple2core/internal/rawterm"
	"github.com/deadleaf/apple2core/logger"
	"github.com/deadleaf/apple2core/platform"
)

const (
	displayWidth  = 280
	displayHeight = 192
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses flags, loads ROMs, mounts disks, and drives the frame
// loop until quit or an unrecoverable error, returning the process
// exit code named in spec.md §6.3 ("0 normal, 1 failed to load ROM or
// invalid argument").
func run(args []string) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	mainROM, charROM, err := loadROMs(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	timing := clock.US

	computer := hardware.New(&cfg, mainROM, charROM, timing[clock.Mode1MHz])
	computer.CPU.Reset()

	for _, d := range cfg.Mounts {
		image, err := os.ReadFile(d.Path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := computer.MountDisk(d.Drive, d.Path, image, d.ReadOnly); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	var window *sdl.Window
	var audio *sdlaudio.Audio
	var renderer video.Renderer
	var host gui.GUI = gui.Stub{}
	if cfg.UseSDLWindow {
		window, err = sdl.New("apple2core", displayWidth, displayHeight, 2.0)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer window.Close()
		renderer = window
		host = window

		audio, err = sdlaudio.New(cfg.SampleRate)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer audio.Close()
	}

	samplesPerFrame := cfg.SampleRate / 60
	em := emulation.New(computer, renderer, timing[clock.Mode1MHz], !cfg.UseOSSleep, samplesPerFrame)
	host.SetFeatureNoError(gui.ReqState, gui.StateInitialising)

	if cfg.StatsAddr != "" {
		srv := devstats.New(cfg.StatsAddr)
		srv.Start()
		em.Stats = srv.Gauges
		logger.Logf(logger.Allow, "apple2", "stats page listening on %s", cfg.StatsAddr)
	}

	em.Pause(false)
	host.SetFeatureNoError(gui.ReqState, gui.StateRunning)

	if window == nil {
		term, err := rawterm.Enable()
		if err == nil {
			defer term.Close()
			go watchQuit(em)
		}
	}

	var dump *wavdump.Dumper
	if cfg.WAVPath != "" {
		f, err := os.Create(cfg.WAVPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		dump = wavdump.New(f, cfg.SampleRate)
		defer dump.Close()
	}

	for em.State() != emulation.Paused {
		if window != nil {
			for _, ev := range window.PollEvents() {
				switch e := ev.(type) {
				case gui.EventQuit:
					em.Pause(true)
				case gui.EventKeyboard:
					if len(e.Key) == 1 {
						em.QueueKey(e.Key[0], e.Down)
					}
				}
			}
			if em.State() == emulation.Paused {
				break
			}
		}

		samples := em.RunFrame()

		if window != nil {
			if err := window.Present(); err != nil {
				logger.Logf(logger.Allow, "apple2", "present failed: %v", err)
			}
			if err := audio.QueueSamples(samples); err != nil {
				logger.Logf(logger.Allow, "apple2", "audio queue failed: %v", err)
			}
		}

		if dump != nil {
			if err := dump.Write(samples); err != nil {
				logger.Logf(logger.Allow, "apple2", "wav capture write failed: %v", err)
			}
		}
	}

	host.SetFeatureNoError(gui.ReqState, gui.StateEnding)

	logger.Log(logger.Allow, "apple2", "shutting down")
	return 0
}

// watchQuit reads single keystrokes from the raw terminal and pauses
// the emulation on 'q', per spec.md §6.3's "-s use OS sleep ... between
// frames" headless control surface.
func watchQuit(em *emulation.Emulation) {
	for {
		b, err := rawterm.ReadKey()
		if err != nil {
			return
		}
		switch b {
		case 'q':
			em.Pause(true)
			return
		case 'p':
			em.Pause(em.State() != emulation.Paused)
		}
	}
}

var diskFlagPattern = regexp.MustCompile(`^s(\d+)d(\d+)=(.+)$`)

func parseFlags(args []string) (instance.RuntimeConfig, error) {
	cfg := instance.Default()

	fs := flag.NewFlagSet("apple2", flag.ContinueOnError)
	platformID := fs.Int("p", int(cfg.Platform), "platform id (0=II, 1=II+, 2=IIe, 3=IIe Enhanced, 4=IIgs)")
	romPath := fs.String("rom", "", "path to the platform's main ROM image")
	charROMPath := fs.String("charrom", "", "path to the character ROM image")
	sleepMode := fs.Bool("s", false, "use OS sleep, not busy-wait, between frames")
	randomState := fs.Bool("r", false, "seed RAM power-on state from noise instead of zeroing it")
	statsAddr := fs.String("stats", "", "serve a live stats page at this address (e.g. 127.0.0.1:18066); disabled if empty")
	wavPath := fs.String("wav", "", "capture speaker output to this WAV file path; disabled if empty")
	useSDL := fs.Bool("gui", false, "open an SDL window and audio device instead of running headless")

	var diskArgs multiFlag
	fs.Var(&diskArgs, "d", "mount disk image: sNdM=path")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	id, ok := platform.ParseID(*platformID)
	if !ok {
		return cfg, curated.Errorf(hwerrors.InvalidArgument, fmt.Sprintf("-p %d", *platformID))
	}
	cfg.Platform = id
	cfg.ROMPath = *romPath
	cfg.CharROMPath = *charROMPath
	cfg.UseOSSleep = *sleepMode
	cfg.RandomState = *randomState
	cfg.StatsAddr = *statsAddr
	cfg.WAVPath = *wavPath
	cfg.UseSDLWindow = *useSDL

	for _, d := range diskArgs {
		m := diskFlagPattern.FindStringSubmatch(d)
		if m == nil {
			return cfg, curated.Errorf(hwerrors.InvalidArgument, fmt.Sprintf("-d %s", d))
		}
		slot, _ := strconv.Atoi(m[1])
		drive, _ := strconv.Atoi(m[2])
		cfg.Mounts = append(cfg.Mounts, instance.DiskMount{Slot: slot, Drive: drive, Path: m[3]})
	}

	return cfg, nil
}

// multiFlag accumulates every occurrence of a repeated flag.
type multiFlag []string

func (f *multiFlag) String() string { return strings.Join(*f, ",") }
func (f *multiFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func loadROMs(cfg instance.RuntimeConfig) (mainROM, charROM []byte, err error) {
	traits := platform.Of(cfg.Platform)

	if cfg.ROMPath == "" {
		return nil, nil, curated.Errorf(hwerrors.ROMNotFound, "(no -rom path given)")
	}
	mainROM, err = os.ReadFile(cfg.ROMPath)
	if err != nil {
		return nil, nil, curated.Errorf(hwerrors.ROMNotFound, cfg.ROMPath)
	}
	if len(mainROM) != traits.MainROMSize {
		return nil, nil, curated.Errorf(hwerrors.ROMWrongSize, cfg.ROMPath, len(mainROM), traits.MainROMSize)
	}

	if cfg.CharROMPath != "" {
		charROM, err = os.ReadFile(cfg.CharROMPath)
		if err != nil {
			return nil, nil, curated.Errorf(hwerrors.ROMNotFound, cfg.CharROMPath)
		}
	}

	return mainROM, charROM, nil
}
