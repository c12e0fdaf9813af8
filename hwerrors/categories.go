// Package hwerrors names the curated.Errorf patterns used across the core,
// grouped by the four kinds of failure spec.md §7 distinguishes:
// fatal-at-init, recoverable, silent/expected, and assertion. Keeping the
// patterns as named constants lets a caller write
// curated.Is(err, hwerrors.DiskWrongSize) instead of repeating the literal
// format string, and lets every caller agree on exactly what the pattern
// looks like.
package hwerrors

// Fatal-at-init: missing ROM, invalid disk image at mount time, failure to
// open the audio device. These are surfaced to the user and the process
// exits.
const (
	ROMNotFound       = "rom: %s not found"
	ROMWrongSize      = "rom: %s is %d bytes, expected %d"
	AudioDeviceFailed = "audio: failed to open output device: %w"
	InvalidArgument   = "cli: invalid argument: %s"
)

// Recoverable: logged, the triggering operation is refused, and the
// emulation continues in a well-defined degraded state.
const (
	DiskWrongSize       = "disk: %s is %d bytes, not a valid size for extension %s"
	DiskUnrecognised    = "disk: could not identify format of %s"
	DiskWriteProtected  = "disk: %s is write protected"
	ModemNoCarrier      = "modem: NO CARRIER"
	ModemTimeout        = "modem: connection timed out"
	UnsupportedFeature  = "emulation: unsupported feature request: %s"
)

// Assertion: a programmer error, detected in debug builds. Production
// builds that hit these have a bug; the bus and MMU never surface them to
// the emulated program.
const (
	SoftSwitchOutOfRange = "assert: softswitch dispatch received address %#04x outside C000-C0FF"
	PageOutOfRange       = "assert: page index %d outside 0-255"
	BankOutOfRange       = "assert: bank index %d outside active range"
)
