// Package hardware assembles one platform.ID's worth of mmu.Memory,
// cpu.CPU, speaker.Generator, disk/iwm.Controller, and input devices
// into a single Computer, registering every softswitch handler the
// individual device packages expose. It is grounded on the teacher's
// hardware/hardware.go (the VCS struct wiring TIA, RIOT, CPU, and
// cartridge mapper together behind one New), generalised from the
// VCS's fixed three-chip machine to the Apple II's variable softswitch
// set (spec.md §9's "ownership" design note: Memory owns RAM/ROM, the
// Computer owns every device Memory merely dispatches to).
package hardware

import (
	"github.com/deadleaf/apple2core/diskloader"
	"github.com/deadleaf/apple2core/hardware/clock"
	"github.com/deadleaf/apple2core/hardware/cpu"
	"github.com/deadleaf/apple2core/hardware/disk"
	"github.com/deadleaf/apple2core/hardware/disk/iwm"
	"github.com/deadleaf/apple2core/hardware/input"
	"github.com/deadleaf/apple2core/hardware/memory/bus"
	"github.com/deadleaf/apple2core/hardware/memory/mmu"
	"github.com/deadleaf/apple2core/hardware/speaker"
	"github.com/deadleaf/apple2core/instance"
	"github.com/deadleaf/apple2core/platform"
)

// diskSlot is the fixed slot number Disk II/IWM controllers occupy
// (spec.md §4.6 names slot 6 as the conventional boot-disk slot; a
// second controller in slot 5 is wired for a four-drive setup).
const (
	diskSlot6 = 6
	diskSlot5 = 5
)

// slotRegisterBase returns the C0nX window's low-byte offset for slot
// n (n = 8 + slot, per spec.md §4.6).
func slotRegisterBase(slot int) uint32 {
	return uint32(0x80 + slot*0x10)
}

// Computer is one fully wired Apple II family machine.
type Computer struct {
	Platform platform.ID
	Traits   platform.Traits

	Mem *mmu.Memory
	CPU *cpu.CPU

	Speaker *speaker.Generator

	Disk6 *iwm.Controller
	Disk5 *iwm.Controller

	Keyboard *input.Keyboard
	Paddles  *input.Paddles
	Buttons  *input.Buttons

	Instance *instance.Instance

	bankE0 []byte
	bankE1 []byte
}

// New builds a Computer for cfg.Platform. cfg may be nil, in which case
// instance.Default() is used. Speaker output is paced to cfg.SampleRate
// (spec.md §4.5's "Rates"); power-on RAM is zeroed unless
// cfg.RandomState asks for silicon-noise seeding via package random.
func New(cfg *instance.RuntimeConfig, mainROM, charROM []byte, timing clock.Timing) *Computer {
	if cfg == nil {
		d := instance.Default()
		cfg = &d
	}
	traits := platform.Of(cfg.Platform)

	c := &Computer{
		Platform: cfg.Platform,
		Traits:   traits,
		Mem:      mmu.New(traits, mainROM, charROM, timing),
		Speaker:  speaker.New(timing.NominalHz, cfg.SampleRate),
		Keyboard: input.NewKeyboard(),
		Paddles:  input.NewPaddles(),
		Buttons:  &input.Buttons{},
	}

	c.Instance = instance.NewInstance(cfg, c.Mem.Scanner)
	if cfg.RandomState {
		c.Mem.RandomizeRAM(c.Instance.Random)
	}

	c.Disk6 = iwm.New(c.Mem.TimerQ)
	c.Disk5 = iwm.New(c.Mem.TimerQ)

	c.CPU = cpu.New(traits.CPU, c.Mem)

	if traits.HasIIgsShadowing {
		c.bankE0 = make([]byte, 64*1024)
		c.bankE1 = make([]byte, 64*1024)
		c.Mem.SetShadowTarget(func(aux bool, page uint32, off int, data uint8) {
			bank := c.bankE0
			if aux {
				bank = c.bankE1
			}
			bank[page<<8|uint32(off)] = data
		})
	}

	c.wireSoftswitches()
	return c
}

// wireSoftswitches registers every C0xx handler the device packages
// need. mmu.Memory itself handles the C000-C00F memory flags, C054/C055
// (page 2) and the C080-C08F language-card softswitches (spec.md §4.1),
// so they are not touched here; the other C05x addresses get no handler.
func (c *Computer) wireSoftswitches() {
	c.Mem.SetSoftswitchHandler(0xC000,
		func(addr uint32) uint8 { return c.Keyboard.ReadC000() },
		nil,
	)
	c.Mem.SetSoftswitchHandler(0xC010,
		func(addr uint32) uint8 { return c.Keyboard.TouchC010() },
		func(addr uint32, data uint8) { c.Keyboard.TouchC010() },
	)

	for a := uint32(0xC030); a <= 0xC03F; a++ {
		c.Mem.SetSoftswitchHandler(a,
			func(addr uint32) uint8 { c.Speaker.AddEvent(c.Mem.C14M()); return 0 },
			func(addr uint32, data uint8) { c.Speaker.AddEvent(c.Mem.C14M()) },
		)
	}

	for n := 0; n < 3; n++ {
		n := n
		c.Mem.SetSoftswitchHandler(0xC061+uint32(n),
			func(addr uint32) uint8 { return c.Buttons.ReadButton(n) },
			nil,
		)
	}
	for n := 0; n < 4; n++ {
		n := n
		c.Mem.SetSoftswitchHandler(0xC064+uint32(n),
			func(addr uint32) uint8 { return c.Paddles.ReadPaddle(n) },
			nil,
		)
	}
	c.Mem.SetSoftswitchHandler(0xC070,
		func(addr uint32) uint8 { c.Paddles.TouchC070(); return 0 },
		func(addr uint32, data uint8) { c.Paddles.TouchC070() },
	)

	c.wireDisk(diskSlot6, c.Disk6)
	c.wireDisk(diskSlot5, c.Disk5)
}

func (c *Computer) wireDisk(slot int, ctrl *iwm.Controller) {
	base := slotRegisterBase(slot)
	for reg := 0; reg < 16; reg++ {
		reg := reg
		addr := base + uint32(reg)
		c.Mem.SetSoftswitchHandler(addr,
			func(a uint32) uint8 { return ctrl.Read(reg) },
			func(a uint32, data uint8) { ctrl.Write(reg, data) },
		)
	}
}

// MountDisk identifies and mounts image onto drive n (0 or 1) of the
// slot-6 controller, per spec.md §4.6. Format identification goes
// through a diskloader.Loader so embedded boot disks and path-loaded
// images are fingerprinted identically.
func (c *Computer) MountDisk(drive int, filename string, image []byte, writeProtected bool) error {
	format := diskloader.FingerprintExtension(filename)
	ld, err := diskloader.NewLoaderFromData(filename, image, format)
	if err != nil {
		return err
	}
	f, err := disk.FromLoaderFormat(ld.Format)
	if err != nil {
		return err
	}
	return disk.Mount(c.Disk6.Drives[drive], f, ld.Bytes(), writeProtected)
}

var _ bus.CPUBus = (*mmu.Memory)(nil)
