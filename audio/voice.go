package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// output abstracts the speaker so the engine can be exercised without an
// audio device. The real implementation is the process-wide beep speaker.
type output interface {
	init(sr beep.SampleRate, bufSize int) error
	play(s beep.Streamer)
	lock()
	unlock()
}

// speakerOutput drives the gopxl/beep speaker
type speakerOutput struct{}

func (speakerOutput) init(sr beep.SampleRate, bufSize int) error {
	return speaker.Init(sr, bufSize)
}

func (speakerOutput) play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) lock()                { speaker.Lock() }
func (speakerOutput) unlock()              { speaker.Unlock() }

// voice is the single playback voice. At most one buffer sounds at a
// time; starting a new one halts the previous one first. The guard is
// acquired with TryLock: a contended voice skips the action instead of
// blocking the caller.
type voice struct {
	mu    sync.Mutex
	out   output
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
}

// newVoice initializes the output device once for the engine's lifetime.
// Device failure here is fatal to construction.
func newVoice(sr beep.SampleRate, out output) (*voice, error) {
	v := &voice{
		out:   out,
		mixer: &beep.Mixer{},
	}
	if err := out.init(sr, sr.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceInit, err)
	}
	out.play(v.mixer)
	return v, nil
}

// play replaces the sounding buffer with buf. Returns false if the voice
// guard was contended and the request was skipped.
func (v *voice) play(buf floatBuffer) bool {
	if !v.mu.TryLock() {
		return false
	}
	defer v.mu.Unlock()

	v.out.lock()
	if v.ctrl != nil {
		v.ctrl.Paused = true
	}
	v.mixer.Clear()
	v.ctrl = &beep.Ctrl{Streamer: &bufferStreamer{buf: buf}}
	v.mixer.Add(v.ctrl)
	v.out.unlock()
	return true
}

// stop halts the current buffer. No-op when idle; returns false if the
// guard was contended.
func (v *voice) stop() bool {
	if !v.mu.TryLock() {
		return false
	}
	defer v.mu.Unlock()

	v.out.lock()
	if v.ctrl != nil {
		v.ctrl.Paused = true
		v.ctrl = nil
	}
	v.mixer.Clear()
	v.out.unlock()
	return true
}

// sounding reports whether a buffer is queued on the voice
func (v *voice) sounding() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ctrl != nil
}

// bufferStreamer streams a finite mono buffer to both channels
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		sample := s.buf[s.pos]
		samples[i][0] = sample
		samples[i][1] = sample
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
