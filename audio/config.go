package audio

import (
	"os"
	"strconv"
)

// Defaults and bounds for the playback configuration
const (
	DefaultSampleRate = 44100
	DefaultDuration   = 1.0
	DefaultInstrument = "piano"
	DefaultBasetone   = "C"
	DefaultVolume     = 0.7

	MinDuration = 0.1
	MaxDuration = 10.0
	MinVolume   = 0.0
	MaxVolume   = 1.0
	VolumeStep  = 0.05
)

// Config is the playback configuration owned by the engine. Mutations go
// through the engine setters, which rebuild the waveform cache.
type Config struct {
	SampleRate int     // Output sample rate in Hz
	Duration   float64 // Note length in seconds, clamped to [MinDuration, MaxDuration]
	Instrument string  // One of Instruments()
	Basetone   string  // One of the 12 chromatic pitch classes
	Volume     float64 // Master volume in [MinVolume, MaxVolume], baked into buffers at render time
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		SampleRate: DefaultSampleRate,
		Duration:   DefaultDuration,
		Instrument: DefaultInstrument,
		Basetone:   DefaultBasetone,
		Volume:     DefaultVolume,
	}
}

// LoadConfig loads configuration from environment variables, falling
// back to defaults for unset or unparseable values
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if rate := os.Getenv("PIANO_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if duration := os.Getenv("PIANO_DURATION"); duration != "" {
		if val, err := strconv.ParseFloat(duration, 64); err == nil {
			cfg.Duration = clampDuration(val)
		}
	}

	if instrument := os.Getenv("PIANO_INSTRUMENT"); instrument != "" {
		if _, ok := ParseInstrument(instrument); ok {
			cfg.Instrument = instrument
		}
	}

	if basetone := os.Getenv("PIANO_BASETONE"); basetone != "" {
		if validBasetone(basetone) {
			cfg.Basetone = basetone
		}
	}

	// Volume is 0-100 in the environment, converted to 0.0-1.0
	if volume := os.Getenv("PIANO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = clampVolume(float64(val) / 100.0)
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}

func clampDuration(d float64) float64 {
	if d < MinDuration {
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}
