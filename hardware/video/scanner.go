// Package video implements the scanline/column video scanner coupled to
// the master clock, per spec.md §4.4: it turns a stream of 14M ticks
// into (scanline, column) position, raises the VBL edge, and resolves
// the floating-bus byte for any instant. It is grounded on the teacher's
// hardware/television/coords package (test-only in the retrieval pack,
// used here as the contract for a Position type) generalised from the
// VCS's frame/scanline/clock triple to the Apple II's scanline/column
// pair, plus a frame count that TickColumn advances when the last
// scanline wraps.
package video

import "github.com/deadleaf/apple2core/hardware/video/coords"

// Mode records the softswitch-derived display mode bits the scanner
// needs in order to resolve a floating-bus address: text vs graphics,
// lo-res vs hi-res, page 1 vs page 2, and 40 vs 80 column (IIe+).
type Mode struct {
	Text     bool
	Mixed    bool
	HiRes    bool
	Page2    bool
	Column80 bool
}

// Scanner tracks the current raster position for one Timing table
// (US NTSC by default) and resolves floating-bus reads.
type Scanner struct {
	scanline int
	column   int
	frame    int

	vblBand int // first scanline of the vertical-blank band (192 in US timing)
	total   int // scanlines per frame (262 in US timing)

	mode Mode

	vblWasSet bool
}

// NewScanner returns a Scanner configured for US (NTSC) timing: 262
// scanlines per frame, VBL asserted for the last 70 (scanlines 192-261),
// per spec.md §4.4 and the GLOSSARY's VBL entry.
func NewScanner() *Scanner {
	return &Scanner{vblBand: 192, total: 262}
}

// NewScannerPAL returns a Scanner configured for PAL timing's longer
// frame (spec.md §3.6 names only the cycle counts; the scanline/VBL
// split scales proportionally and is not pinned down further by the
// spec, so this core keeps the US ratio of roughly 73% visible lines).
func NewScannerPAL() *Scanner {
	return &Scanner{vblBand: 228, total: 312}
}

// SetMode updates the display-mode bits the floating-bus address
// function consults.
func (s *Scanner) SetMode(m Mode) { s.mode = m }

// TickColumn advances the scanner by one video cycle (one column); the
// caller (the bus) is responsible for invoking this once per 14 14M
// ticks as spec.md §4.4 describes. After 65 columns (910 14M ticks)
// TickColumn wraps to the next scanline itself, and to a new frame after
// the last scanline.
func (s *Scanner) TickColumn() {
	s.column++
	if s.column >= 65 {
		s.column = 0
		s.scanline++
		if s.scanline >= s.total {
			s.scanline = 0
			s.frame++
		}
	}
}

// VBL reports whether the current scanline is in the vertical-blank
// band.
func (s *Scanner) VBL() bool {
	return s.scanline >= s.vblBand
}

// VBLEdge reports whether VBL has just transitioned since the last call
// to this method, and in which direction (true = rising/entering VBL).
// Callers poll this once per TickColumn to detect the edge spec.md §4.4
// requires firing.
func (s *Scanner) VBLEdge() (fired bool, rising bool) {
	now := s.VBL()
	if now != s.vblWasSet {
		s.vblWasSet = now
		return true, now
	}
	return false, now
}

// Position returns the scanner's current raster position.
func (s *Scanner) Position() coords.Position {
	return coords.Position{Frame: s.frame, Scanline: s.scanline, Column: s.column}
}

// GetCoords implements random.TV.
func (s *Scanner) GetCoords() coords.Position { return s.Position() }

// FloatingBusAddress computes the byte address the video hardware is
// reading at the scanner's current position, per the standard Apple II
// text/LoRes/HiRes address mapping (spec.md §4.4, boundary scenario 4 in
// §8.3). Returns 0 for scanlines in VBL.
func (s *Scanner) FloatingBusAddress() uint32 {
	if s.VBL() {
		return 0
	}

	row := s.scanline / 8
	subRow := s.scanline % 8
	col := s.column

	if s.mode.HiRes && !s.mode.Text {
		return hiresAddress(row, subRow, col, s.mode.Page2)
	}
	return textAddress(row, col, s.mode.Page2)
}

// textAddress reproduces the Apple II's famously non-linear text/LoRes
// page layout: 8 interleaved groups of 3 rows, 40 (or 41, one column is
// a horizontal-blank artifact the real hardware also reads) columns
// each, 128-byte row stride within a group.
func textAddress(row, col int, page2 bool) uint32 {
	base := uint32(0x0400)
	if page2 {
		base = 0x0800
	}
	group := row % 8
	band := row / 8
	offset := uint32(group)*0x80 + uint32(band)*0x28 + uint32(col%40)
	return base + offset
}

// hiresAddress reproduces the HiRes bitmap's address mapping: the same
// 8-way row interleave as text mode, but with a 1024-byte page and an
// 8-row-deep sub-bank selected by subRow.
func hiresAddress(row, subRow, col int, page2 bool) uint32 {
	base := uint32(0x2000)
	if page2 {
		base = 0x4000
	}
	group := row % 8
	band := row / 8
	offset := uint32(group)*0x80 + uint32(band)*0x28 + uint32(col%40) + uint32(subRow)*0x400
	return base + offset
}
