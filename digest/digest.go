// Package digest implements the video- and audio-sink interfaces with a
// cryptographic-hash backend instead of a real display/speaker. Feeding an
// emulation run through a Digest and comparing the resulting Hash() against
// a previously recorded value is the basis of this module's regression
// tests: if a trace that used to produce hash X now produces hash Y, a
// scanline or sample computation has changed.
package digest

// Digest is implemented by both the video and audio digest sinks.
type Digest interface {
	Hash() string
	ResetDigest()
}
