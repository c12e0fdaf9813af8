// Package platform enumerates the Apple II models this core emulates and
// the fixed hardware facts that follow from picking one: ROM sizes, which
// softswitches exist, and which CPU variant trait the machine was built
// around. spec.md §6.3 names these five platforms by the same integer IDs
// used on the command line.
package platform

// ID identifies one member of the Apple II family.
type ID int

// The platform IDs, matching the -p command line flag in spec.md §6.3.
const (
	II ID = iota
	IIPlus
	IIe
	IIeEnhanced
	IIgs
)

func (id ID) String() string {
	switch id {
	case II:
		return "Apple II"
	case IIPlus:
		return "Apple II+"
	case IIe:
		return "Apple IIe"
	case IIeEnhanced:
		return "Apple IIe Enhanced"
	case IIgs:
		return "Apple IIgs"
	default:
		return "unknown platform"
	}
}

// ParseID converts the -p integer argument to an ID, reporting false
// for anything outside 0-4 (the caller turns that into
// hwerrors.InvalidArgument).
func ParseID(n int) (ID, bool) {
	if n < int(II) || n > int(IIgs) {
		return 0, false
	}
	return ID(n), true
}

// CPUVariant identifies which instruction-decoder trait set a platform's
// CPU uses.
type CPUVariant int

// The CPU variants named in spec.md §4.2.
const (
	Variant6502 CPUVariant = iota
	Variant65C02
	Variant65816
)

// Traits describes the fixed hardware facts implied by an ID.
type Traits struct {
	CPU CPUVariant

	// MainROMSize is the expected size, in bytes, of roms/<platform>/main.rom.
	MainROMSize int

	// Has80Column is true for any platform with the 80-column/AUX memory
	// card built in (IIe and later).
	Has80Column bool

	// HasLanguageCard is true for every platform in scope; the II and
	// II+ require an add-in card but the automaton is identical, so the
	// core always wires it.
	HasLanguageCard bool

	// HasIIgsShadowing is true only for the IIgs, which adds bank
	// E0/E1 write-through shadowing on top of the IIe's memory model.
	HasIIgsShadowing bool

	// PAL is true for machines whose clock mode table entry (spec.md
	// §3.6) should default to PAL timing. None of the platform IDs
	// imply PAL on their own; it is a per-ROM-region configuration
	// choice layered on top, defaulting to false (NTSC/US timing).
	PAL bool
}

// Of returns the fixed hardware traits for id.
func Of(id ID) Traits {
	switch id {
	case II:
		return Traits{CPU: Variant6502, MainROMSize: 12 * 1024, HasLanguageCard: true}
	case IIPlus:
		return Traits{CPU: Variant6502, MainROMSize: 12 * 1024, HasLanguageCard: true}
	case IIe:
		return Traits{CPU: Variant6502, MainROMSize: 16 * 1024, Has80Column: true, HasLanguageCard: true}
	case IIeEnhanced:
		return Traits{CPU: Variant65C02, MainROMSize: 16 * 1024, Has80Column: true, HasLanguageCard: true}
	case IIgs:
		return Traits{CPU: Variant65816, MainROMSize: 128 * 1024, Has80Column: true, HasLanguageCard: true, HasIIgsShadowing: true}
	default:
		return Traits{CPU: Variant6502, MainROMSize: 12 * 1024, HasLanguageCard: true}
	}
}
