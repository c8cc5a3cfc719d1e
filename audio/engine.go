package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
)

// Engine is the monophonic note-synthesis engine. It owns the playback
// configuration, the waveform cache and the single output voice. One
// engine drives one output stream for its whole lifetime.
type Engine struct {
	mu     sync.RWMutex // Protects cfg
	cfg    *Config
	cache  *waveCache
	voice  *voice
	logger *log.Logger
}

// Settings is a snapshot of the live configuration
type Settings struct {
	SampleRate int
	Duration   float64
	Instrument string
	Basetone   string
	Volume     float64
}

// New creates an engine, eagerly rendering the full note vocabulary.
// Invalid instrument or basetone names and output device failures abort
// construction.
func New(cfg ...*Config) (*Engine, error) {
	config := DefaultConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		c := *cfg[0]
		config = &c
	}
	return newEngine(config, speakerOutput{})
}

// newEngine is the device-injectable constructor used by New and tests
func newEngine(cfg *Config, out output) (*Engine, error) {
	if _, ok := ParseInstrument(cfg.Instrument); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInstrument, cfg.Instrument)
	}
	if !validBasetone(cfg.Basetone) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBasetone, cfg.Basetone)
	}
	cfg.Volume = clampVolume(cfg.Volume)
	cfg.Duration = clampDuration(cfg.Duration)

	e := &Engine{
		cfg:    cfg,
		cache:  newWaveCache(),
		logger: log.Default(),
	}
	if err := e.cache.rebuild(cfg); err != nil {
		return nil, err
	}

	v, err := newVoice(beep.SampleRate(cfg.SampleRate), out)
	if err != nil {
		return nil, err
	}
	e.voice = v
	return e, nil
}

// SetLogger replaces the diagnostic logger
func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// PlayNote plays a note from the fixed vocabulary, halting whatever is
// currently sounding. Unknown symbols and contended voice guards are
// logged no-ops; playback never fails observably.
func (e *Engine) PlayNote(note string) {
	buf, ok := e.cache.get(note)
	if !ok {
		e.logger.Printf("audio: unknown note %q, ignoring", note)
		return
	}
	if !e.voice.play(buf) {
		e.logger.Printf("audio: voice busy, skipped note %q", note)
	}
}

// Stop halts the current output. Safe to call when nothing is sounding.
func (e *Engine) Stop() {
	if !e.voice.stop() {
		e.logger.Printf("audio: voice busy, skipped stop")
	}
}

// Close stops playback and detaches the engine from the output stream.
// The beep speaker itself stays open for the process lifetime.
func (e *Engine) Close() {
	e.Stop()
}

// SetInstrument switches the timbre and synchronously rebuilds the
// cache. The configuration is left unchanged on an invalid name.
func (e *Engine) SetInstrument(name string) error {
	if _, ok := ParseInstrument(name); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidInstrument, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := *e.cfg
	next.Instrument = name
	if err := e.cache.rebuild(&next); err != nil {
		return err
	}
	e.cfg = &next
	e.logger.Printf("audio: instrument set to %s, %d waveforms regenerated", name, e.cache.len())
	return nil
}

// SetBasetone switches the pitch class treated as scale degree 1 and
// synchronously rebuilds the cache
func (e *Engine) SetBasetone(name string) error {
	if !validBasetone(name) {
		return fmt.Errorf("%w: %q", ErrInvalidBasetone, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := *e.cfg
	next.Basetone = name
	if err := e.cache.rebuild(&next); err != nil {
		return err
	}
	e.cfg = &next
	e.logger.Printf("audio: basetone set to %s, %d waveforms regenerated", name, e.cache.len())
	return nil
}

// SetVolume clamps and stores the master volume. Cached buffers bake the
// volume in at render time, so the change is audible only after the next
// instrument or basetone rebuild.
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg := *e.cfg
	cfg.Volume = clampVolume(v)
	e.cfg = &cfg
}

// VolumeUp raises the volume by one step
func (e *Engine) VolumeUp() {
	e.SetVolume(e.Volume() + VolumeStep)
}

// VolumeDown lowers the volume by one step
func (e *Engine) VolumeDown() {
	e.SetVolume(e.Volume() - VolumeStep)
}

// Instrument returns the current instrument name
func (e *Engine) Instrument() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg.Instrument
}

// Basetone returns the current basetone pitch class
func (e *Engine) Basetone() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg.Basetone
}

// Volume returns the current master volume
func (e *Engine) Volume() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg.Volume
}

// Settings returns a snapshot of the live configuration
func (e *Engine) Settings() Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Settings{
		SampleRate: e.cfg.SampleRate,
		Duration:   e.cfg.Duration,
		Instrument: e.cfg.Instrument,
		Basetone:   e.cfg.Basetone,
		Volume:     e.cfg.Volume,
	}
}

// Stats returns the total number of waveforms regenerated since
// construction, for diagnostics
func (e *Engine) Stats() (regenerated uint64) {
	return e.cache.regenerated.Load()
}

// config returns a copy of the live configuration
func (e *Engine) config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return *e.cfg
}
