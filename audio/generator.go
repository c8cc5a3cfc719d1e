package audio

import (
	"fmt"
	"math"
)

// floatBuffer is mono float64 samples with envelope and volume baked in
type floatBuffer []float64

// partial is one sine component of an additively synthesized tone
type partial struct {
	ratio float64 // Frequency ratio to the fundamental
	amp   float64 // Relative amplitude
}

// instrumentPartials holds the fixed harmonic mix per instrument. The
// output of summing these is not normalized or clamped; the envelope and
// volume scaling downstream keep playback in range.
var instrumentPartials = [instrumentCount][3]partial{
	InstrumentPiano:     {{1, 1.0}, {2, 0.5}, {3, 0.25}},
	InstrumentGuitar:    {{1, 1.0}, {1.5, 0.3}, {2, 0.2}},
	InstrumentSaxophone: {{1, 1.0}, {3, 0.6}, {5, 0.4}},
	InstrumentViolin:    {{1, 1.0}, {2, 0.4}, {4, 0.3}},
}

// Envelope constants
const (
	attackTime   = 0.1 // Seconds, linear 0 -> 1
	decayTime    = 0.2 // Seconds, linear 1 -> sustainLevel
	sustainLevel = 0.7
	releaseFrac  = 0.3 // Release time as a fraction of total duration
)

// oscSample returns the instantaneous amplitude of an instrument's
// harmonic mix at time t. An out-of-range instrument plays the piano
// table rather than failing; play requests never crash on bad data.
func oscSample(instr Instrument, freq, t float64) float64 {
	if instr < 0 || instr >= instrumentCount {
		instr = InstrumentPiano
	}
	var sum float64
	for _, p := range instrumentPartials[instr] {
		sum += p.amp * math.Sin(2*math.Pi*freq*p.ratio*t)
	}
	return sum
}

// envelopeGain returns the ADSR gain multiplier at elapsed time t for a
// note of the given total duration. The piecewise formula is applied
// literally; for very short durations the regions overlap as written.
func envelopeGain(t, duration float64) float64 {
	releaseTime := duration * releaseFrac
	switch {
	case t < attackTime:
		return t / attackTime
	case t < attackTime+decayTime:
		return 1.0 - (1.0-sustainLevel)*((t-attackTime)/decayTime)
	case t < duration-releaseTime:
		return sustainLevel
	default:
		return sustainLevel * (1.0 - (t-(duration-releaseTime))/releaseTime)
	}
}

// renderWaveform synthesizes the finite buffer for one note under the
// given configuration. Harmonics above Nyquist are not filtered.
func renderWaveform(note string, cfg *Config) (floatBuffer, error) {
	semitones, ok := SemitoneOffset(note)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNote, note)
	}
	baseFreq, ok := BasetoneFrequency(cfg.Basetone)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBasetone, cfg.Basetone)
	}

	freq := baseFreq * math.Exp2(float64(semitones)/12.0)
	samples := int(math.Round(float64(cfg.SampleRate) * cfg.Duration))

	instr, ok := ParseInstrument(cfg.Instrument)
	if !ok {
		instr = InstrumentPiano
	}

	buf := make(floatBuffer, samples)
	for i := range buf {
		t := float64(i) / float64(cfg.SampleRate)
		buf[i] = oscSample(instr, freq, t) * envelopeGain(t, cfg.Duration) * cfg.Volume
	}
	return buf, nil
}
