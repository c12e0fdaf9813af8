package digest

import (
	"crypto/sha1"
	"fmt"
)

// Video implements video.Renderer with a SHA-1 hash accumulator
// instead of a real display, for regression tests that compare a
// run's rendered frame against a recorded hash. Grounded on the
// teacher's digest/video.go (one running digest updated per pixel,
// chained the same way digest/audio.go chains its samples), adapted
// from the VCS's fixed NTSC/PAL frame geometry to this core's
// variable framebuffer size (spec.md §6.2's 280x192 or 640x400).
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	cursor   int
	width    int
	height   int
	frameNum int
}

const videoPixelDepth = 4 // RGBA8888, matching video.Renderer.SetPixel

// NewVideo allocates a Video digest for a width x height framebuffer.
func NewVideo(width, height int) *Video {
	v := &Video{width: width, height: height}
	v.pixels = make([]byte, len(v.digest)+width*height*videoPixelDepth)
	copy(v.pixels, v.digest[:])
	v.cursor = len(v.digest)
	return v
}

// Hash implements Digest.
func (v *Video) Hash() string {
	return fmt.Sprintf("%x", v.digest)
}

// ResetDigest implements Digest.
func (v *Video) ResetDigest() {
	for i := range v.digest {
		v.digest[i] = 0
	}
}

// NewFrame implements video.Renderer: folds the previous frame's
// pixels into the running digest and restarts the pixel buffer.
func (v *Video) NewFrame(frameNum int) {
	v.frameNum = frameNum
	v.digest = sha1.Sum(v.pixels)
	copy(v.pixels, v.digest[:])
	v.cursor = len(v.digest)
}

// NewScanline implements video.Renderer; nothing to do per scanline
// since SetPixel already writes directly into the buffer.
func (v *Video) NewScanline(scanline int) {}

// SetPixel implements video.Renderer.
func (v *Video) SetPixel(x, y int, r, g, b, a byte) {
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return
	}
	i := len(v.digest) + (y*v.width+x)*videoPixelDepth
	if i+4 > len(v.pixels) {
		return
	}
	v.pixels[i+0] = r
	v.pixels[i+1] = g
	v.pixels[i+2] = b
	v.pixels[i+3] = a
}
