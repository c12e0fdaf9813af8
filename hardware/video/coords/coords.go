// Package coords names a point in the video scanner's raster: which frame,
// which scanline within the frame, and which 14M column within the
// scanline. It exists as its own tiny package (rather than a handful of
// ints passed around) because several unrelated components need to agree
// on the same triple: the random-state seed, the floating-bus resolver,
// and the trace log all stamp entries with a Position.
package coords

// FrameIsUndefined is used in place of a frame number when the frame count
// is not relevant to a comparison (for example, when comparing two
// Positions produced by independent runs that started at different
// frames).
const FrameIsUndefined = -1

// Position is a single point in the video raster.
type Position struct {
	Frame    int
	Scanline int
	Column   int
}

// Equal compares two positions, treating FrameIsUndefined on either side
// as a wildcard for the frame field.
func Equal(a, b Position) bool {
	if a.Frame != FrameIsUndefined && b.Frame != FrameIsUndefined && a.Frame != b.Frame {
		return false
	}
	return a.Scanline == b.Scanline && a.Column == b.Column
}

// GreaterThan reports whether a occurred after b in raster order, frame
// taking precedence over scanline over column.
func GreaterThan(a, b Position) bool {
	if a.Frame != b.Frame {
		return a.Frame > b.Frame
	}
	if a.Scanline != b.Scanline {
		return a.Scanline > b.Scanline
	}
	return a.Column > b.Column
}
