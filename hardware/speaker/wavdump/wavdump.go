// Package wavdump tees a speaker.Generator's PCM output to a .wav file
// for offline inspection, per SPEC_FULL.md §4.5's "Debug capture"
// expansion. It is grounded on the teacher's digest/audio.go, which
// periodically folds the audio stream into a running SHA-1 digest
// rather than archiving it; this generalizes that "accumulate the
// audio stream somewhere" shape from hashing to writing a real WAV
// file, using the teacher's own go-audio/wav and go-audio/audio
// dependencies (otherwise unused once the digest approach is dropped
// in favour of a file, per the DESIGN.md entry for hwerrors around
// audio capture).
package wavdump

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Dumper writes every frame handed to it into a mono S16LE WAV stream.
type Dumper struct {
	enc        *wav.Encoder
	sampleRate int
}

// New wraps w in a WAV encoder at the given sample rate. The caller
// owns w and must call Close when done.
func New(w io.WriteSeeker, sampleRate int) *Dumper {
	return &Dumper{
		enc:        wav.NewEncoder(w, sampleRate, 16, 1, 1),
		sampleRate: sampleRate,
	}
}

// Write appends one frame's worth of samples (as produced by
// speaker.Generator.GenerateFrame) to the WAV stream.
func (d *Dumper) Write(samples []int16) error {
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: d.sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}
	return d.enc.Write(buf)
}

// Close finalises the WAV header and flushes any buffered audio.
func (d *Dumper) Close() error {
	return d.enc.Close()
}
