package video_test

import (
	"testing"

	"github.com/deadleaf/apple2core/hardware/video"
)

type fakeMem struct {
	data map[uint32]uint8
}

func (m *fakeMem) Peek(addr uint32) uint8 { return m.data[addr] }

func TestFramebufferSetPixelInBounds(t *testing.T) {
	f := video.NewFramebuffer(4, 4)
	f.SetPixel(1, 2, 10, 20, 30, 255)
	i := (2*4 + 1) * 4
	if f.Pix[i] != 10 || f.Pix[i+1] != 20 || f.Pix[i+2] != 30 || f.Pix[i+3] != 255 {
		t.Fatalf("pixel at (1,2) = %v, want [10 20 30 255]", f.Pix[i:i+4])
	}
}

func TestFramebufferSetPixelOutOfBoundsIgnored(t *testing.T) {
	f := video.NewFramebuffer(2, 2)
	f.SetPixel(-1, 0, 1, 2, 3, 4)
	f.SetPixel(5, 5, 1, 2, 3, 4)
	for _, b := range f.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds SetPixel wrote into the buffer: %v", f.Pix)
		}
	}
}

func TestTextRendererDrawScanlineWritesGlyphPixels(t *testing.T) {
	chars := make([]byte, 8*8) // one glyph, all bits set on its rows
	for i := range chars {
		chars[i] = 0x7F
	}
	mem := &fakeMem{data: map[uint32]uint8{}}
	// character 0 at every text cell
	dst := video.NewFramebuffer(280, 192)
	r := video.NewTextRenderer(mem, chars, video.CharSet4KPlus, dst)
	r.DrawScanline(0, false, false, false)

	i := (0*280 + 0) * 4
	if dst.Pix[i] != 0xFF {
		t.Fatalf("glyph pixel not drawn white, got %v", dst.Pix[i:i+4])
	}
}

func TestTextRendererIgnoresScanlinesPastVisibleArea(t *testing.T) {
	mem := &fakeMem{data: map[uint32]uint8{}}
	dst := video.NewFramebuffer(280, 192)
	r := video.NewTextRenderer(mem, nil, video.CharSet2K, dst)
	r.DrawScanline(192, false, false, false) // must not panic or write
	for _, b := range dst.Pix {
		if b != 0 {
			t.Fatalf("DrawScanline(192, ...) wrote pixels past the visible 192 lines")
		}
	}
}

func TestHiResRendererLowHighColourPhase(t *testing.T) {
	mem := &fakeMem{data: map[uint32]uint8{}}
	dst := video.NewFramebuffer(280, 192)
	r := video.NewHiResRenderer(mem, dst)

	// addr for row 0, subRow 0, col 0, page1 resolves via hiresAddress;
	// we don't know the exact address without re-deriving it, so instead
	// populate every plausible HiRes page1 byte with the same pattern.
	for addr := uint32(0x2000); addr < 0x2000+0x2000; addr++ {
		mem.data[addr] = 0x01 // bit 0 set, high bit clear
	}
	r.DrawScanline(0, false)

	i := (0*280 + 0) * 4
	if dst.Pix[i] != 0xFF || dst.Pix[i+1] != 0xC0 || dst.Pix[i+2] != 0x40 {
		t.Fatalf("low-phase HiRes pixel = %v, want [0xFF 0xC0 0x40 0xFF]", dst.Pix[i:i+4])
	}
}
