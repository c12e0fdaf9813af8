// Package sdlaudio opens an SDL audio device and queues the mono
// S16LE PCM frames speaker.Generator.GenerateFrame produces (spec.md
// §4.5), for a host frontend that wants real audio output instead of
// the digest/audio sink used by tests. It is grounded on the teacher's
// gui/sdlaudio/audio.go (device open/reopen-on-spec-change, queued-
// bytes backlog measurement, logger-tagged diagnostics), pared down
// from that file's stereo/discrete-channel mixing (the Apple II
// speaker is a single mono toggle, spec.md §4.5) to a single-channel
// device.
package sdlaudio

import (
	"sync/atomic"
	"time"

	"github.com/deadleaf/apple2core/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Audio queues mono S16LE sample frames to an SDL audio device.
type Audio struct {
	id         sdl.AudioDeviceID
	sampleRate int
	muted      bool

	QueuedBytes atomic.Int32
	measure     *time.Ticker
}

// New opens an SDL audio device at sampleRate Hz, mono S16LE, matching
// the rate the caller configured its speaker.Generator with.
func New(sampleRate int) (*Audio, error) {
	a := &Audio{sampleRate: sampleRate, measure: time.NewTicker(250 * time.Millisecond)}

	request := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  2048,
	}
	var actual sdl.AudioSpec

	var err error
	a.id, err = sdl.OpenAudioDevice("", false, request, &actual, 0)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "sdlaudio", "requested frequency: %d samples/sec", sampleRate)
	logger.Logf(logger.Allow, "sdlaudio", "actual frequency: %d samples/sec", actual.Freq)

	sdl.PauseAudioDevice(a.id, false)
	return a, nil
}

// QueueSamples pushes one frame's worth of PCM onto the device's
// playback queue (called once per frame with speaker.Generator's
// GenerateFrame output).
func (a *Audio) QueueSamples(samples []int16) error {
	if a.muted {
		return nil
	}
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	if err := sdl.QueueAudio(a.id, buf); err != nil {
		return err
	}
	a.QueuedBytes.Store(int32(sdl.GetQueuedAudioSize(a.id)))
	return nil
}

// SetMuted silences playback without closing the device.
func (a *Audio) SetMuted(muted bool) {
	a.muted = muted
	sdl.PauseAudioDevice(a.id, muted)
}

// Close stops the measurement ticker and closes the audio device.
func (a *Audio) Close() {
	a.measure.Stop()
	sdl.ClearQueuedAudio(a.id)
	sdl.CloseAudioDevice(a.id)
}
