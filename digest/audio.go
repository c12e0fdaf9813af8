package digest

import (
	"crypto/sha1"
	"fmt"
)

// audioBufferLength mirrors the teacher's digest/audio.go approach:
// chain digests by stuffing the previous SHA-1 into the front of the
// next buffer, rather than hashing the whole (potentially enormous)
// sample stream in one shot.
const audioBufferLength = 1024 + sha1.Size
const audioBufferStart = sha1.Size

// Audio hashes a stream of S16LE samples (speaker.Generator's
// GenerateFrame output) into a running SHA-1 digest, for regression
// tests that compare a run's audio output against a recorded value
// instead of a real playback device.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio returns an Audio digest ready to receive samples.
func NewAudio() *Audio {
	a := &Audio{buffer: make([]byte, audioBufferLength)}
	a.bufferCt = audioBufferStart
	return a
}

// Hash implements Digest.
func (a *Audio) Hash() string {
	return fmt.Sprintf("%x", a.digest)
}

// ResetDigest implements Digest.
func (a *Audio) ResetDigest() {
	for i := range a.digest {
		a.digest[i] = 0
	}
}

// Write feeds one frame's worth of samples into the digest (S16LE,
// little-endian byte order, matching speaker.Generator's output).
func (a *Audio) Write(samples []int16) {
	for _, s := range samples {
		a.push(byte(s))
		a.push(byte(s >> 8))
	}
}

func (a *Audio) push(b byte) {
	a.buffer[a.bufferCt] = b
	a.bufferCt++
	if a.bufferCt >= audioBufferLength {
		a.flush()
	}
}

func (a *Audio) flush() {
	a.digest = sha1.Sum(a.buffer)
	copy(a.buffer, a.digest[:])
	a.bufferCt = audioBufferStart
}
