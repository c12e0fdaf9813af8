// Package clock implements the CPU-cycle to "14M" master-clock conversion
// and the fixed set of machine speed modes described in spec.md §3.6 and
// §4.4. It is adapted from the teacher's hardware/clocks package, which
// defines the VCS's own small constant table of NTSC/PAL/PAL-M/SECAM
// colour-clock multipliers; the Apple II equivalent is a richer table
// (five modes instead of four, each carrying its own per-scanline stretch
// and per-frame cycle counts) so it is a struct-valued table here rather
// than a handful of untyped float constants.
package clock

// Mode identifies one of the machine's speed modes.
type Mode int

// The speed modes named in spec.md §3.6.
const (
	Mode1MHz Mode = iota
	Mode2_8MHz
	Mode7_14MHz
	Mode14_32MHz
	ModeFreeRun
)

// Timing is the per-mode constant table from spec.md §3.6. All values are
// for US (NTSC) scanning; PAL carries its own Cycles14MPerFrame /
// CPUCyclesPerFrame pair as noted.
type Timing struct {
	Mode Mode

	// NominalHz is the mode's nominal CPU clock rate.
	NominalHz float64

	// Cycles14MPerCPUCycle is how many 14M ticks one CPU cycle
	// consumes in this mode. 14 in 1MHz mode (spec.md §4.4).
	Cycles14MPerCPUCycle int

	// ExtraCyclesPerScanline is the scanline-stretch: 2 extra 14M
	// ticks are added once per scanline so that 65 CPU cycles * 262
	// scanlines * stretch lands on exactly 238944 14M ticks (US
	// timing, spec.md §4.4 and the GLOSSARY's "scanline stretch").
	ExtraCyclesPerScanline int

	// CPUCyclesPerScanline and Cycles14MPerScanline are the unstretched
	// totals (65 * 14 = 910); ExtraCyclesPerScanline is not included.
	CPUCyclesPerScanline   int
	Cycles14MPerScanline   int

	// CPUCyclesPerFrame / Cycles14MPerFrame: US 17030/238944, PAL
	// 20280/284544 (spec.md §3.6).
	CPUCyclesPerFrame   int
	Cycles14MPerFrame   int

	// MicrosecondsEvenFrame / MicrosecondsOddFrame alternate by 1ns to
	// average to 59.9227Hz (spec.md §3.6).
	MicrosecondsEvenFrame float64
	MicrosecondsOddFrame  float64
}

// US is the standard NTSC Apple II timing table, keyed by Mode.
var US = map[Mode]Timing{
	Mode1MHz: {
		Mode:                   Mode1MHz,
		NominalHz:              1020500,
		Cycles14MPerCPUCycle:   14,
		ExtraCyclesPerScanline: 2,
		CPUCyclesPerScanline:   65,
		Cycles14MPerScanline:   910,
		CPUCyclesPerFrame:      17030,
		Cycles14MPerFrame:      238944,
		MicrosecondsEvenFrame:  16688.154,
		MicrosecondsOddFrame:   16688.155,
	},
	Mode2_8MHz: {
		Mode:                   Mode2_8MHz,
		NominalHz:              2800000,
		Cycles14MPerCPUCycle:   5,
		ExtraCyclesPerScanline: 2,
		CPUCyclesPerScanline:   65,
		Cycles14MPerScanline:   910,
		CPUCyclesPerFrame:      17030,
		Cycles14MPerFrame:      238944,
		MicrosecondsEvenFrame:  16688.154,
		MicrosecondsOddFrame:   16688.155,
	},
	Mode7_14MHz: {
		Mode:                   Mode7_14MHz,
		NominalHz:              7140000,
		Cycles14MPerCPUCycle:   2,
		ExtraCyclesPerScanline: 2,
		CPUCyclesPerScanline:   65,
		Cycles14MPerScanline:   910,
		CPUCyclesPerFrame:      17030,
		Cycles14MPerFrame:      238944,
		MicrosecondsEvenFrame:  16688.154,
		MicrosecondsOddFrame:   16688.155,
	},
	Mode14_32MHz: {
		Mode:                   Mode14_32MHz,
		NominalHz:              14318180,
		Cycles14MPerCPUCycle:   1,
		ExtraCyclesPerScanline: 2,
		CPUCyclesPerScanline:   65,
		Cycles14MPerScanline:   910,
		CPUCyclesPerFrame:      17030,
		Cycles14MPerFrame:      238944,
		MicrosecondsEvenFrame:  16688.154,
		MicrosecondsOddFrame:   16688.155,
	},
	ModeFreeRun: {
		Mode:                   ModeFreeRun,
		NominalHz:              0,
		Cycles14MPerCPUCycle:   1,
		ExtraCyclesPerScanline: 2,
		CPUCyclesPerScanline:   65,
		Cycles14MPerScanline:   910,
		CPUCyclesPerFrame:      17030,
		Cycles14MPerFrame:      238944,
		MicrosecondsEvenFrame:  16688.154,
		MicrosecondsOddFrame:   16688.155,
	},
}

// PAL gives the PAL-region per-frame counts named explicitly in spec.md
// §3.6 (20280 CPU / 284544 14M cycles per frame); everything else about a
// mode is unchanged by region.
var PAL = map[Mode]Timing{}

func init() {
	for m, t := range US {
		pt := t
		pt.CPUCyclesPerFrame = 20280
		pt.Cycles14MPerFrame = 284544
		PAL[m] = pt
	}
}

// CycleType distinguishes the two bus-access timing hints named in
// spec.md §4.1: a normal access advances the clock by the mode's full
// Cycles14MPerCPUCycle, while an IIgs "fast ROM" access advances it by a
// smaller, fixed increment regardless of speed mode.
type CycleType int

// The cycle types a bus.Tick call can be given.
const (
	CycleNormal CycleType = iota
	CycleFastROM
)

// FastROMCycles14M is the 14M increment used for an IIgs fast-ROM access,
// independent of the configured speed mode.
const FastROMCycles14M = 5
