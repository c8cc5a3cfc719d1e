package audio

import (
	"testing"
)

// TestDefaultConfig verifies built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.Duration != 1.0 {
		t.Errorf("Expected duration 1.0, got %g", cfg.Duration)
	}
	if cfg.Instrument != "piano" {
		t.Errorf("Expected instrument piano, got %s", cfg.Instrument)
	}
	if cfg.Basetone != "C" {
		t.Errorf("Expected basetone C, got %s", cfg.Basetone)
	}
	if cfg.Volume != 0.7 {
		t.Errorf("Expected volume 0.7, got %g", cfg.Volume)
	}
}

// TestLoadConfigFromEnv verifies environment overrides
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PIANO_SAMPLE_RATE", "48000")
	t.Setenv("PIANO_DURATION", "0.8")
	t.Setenv("PIANO_INSTRUMENT", "violin")
	t.Setenv("PIANO_BASETONE", "F#")
	t.Setenv("PIANO_VOLUME", "50")

	cfg := LoadConfig()
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
	if cfg.Duration != 0.8 {
		t.Errorf("Expected duration 0.8, got %g", cfg.Duration)
	}
	if cfg.Instrument != "violin" {
		t.Errorf("Expected instrument violin, got %s", cfg.Instrument)
	}
	if cfg.Basetone != "F#" {
		t.Errorf("Expected basetone F#, got %s", cfg.Basetone)
	}
	if cfg.Volume != 0.5 {
		t.Errorf("Expected volume 0.5, got %g", cfg.Volume)
	}
}

// TestLoadConfigIgnoresInvalid verifies unparseable or out-of-set values
// fall back to defaults
func TestLoadConfigIgnoresInvalid(t *testing.T) {
	t.Setenv("PIANO_SAMPLE_RATE", "loud")
	t.Setenv("PIANO_INSTRUMENT", "kazoo")
	t.Setenv("PIANO_BASETONE", "H")
	t.Setenv("PIANO_VOLUME", "not-a-number")

	cfg := LoadConfig()
	if cfg.SampleRate != DefaultSampleRate {
		t.Errorf("Expected default sample rate, got %d", cfg.SampleRate)
	}
	if cfg.Instrument != DefaultInstrument {
		t.Errorf("Expected default instrument, got %s", cfg.Instrument)
	}
	if cfg.Basetone != DefaultBasetone {
		t.Errorf("Expected default basetone, got %s", cfg.Basetone)
	}
	if cfg.Volume != DefaultVolume {
		t.Errorf("Expected default volume, got %g", cfg.Volume)
	}
}

// TestLoadConfigClamps verifies env duration and volume are clamped
func TestLoadConfigClamps(t *testing.T) {
	t.Setenv("PIANO_DURATION", "60")
	t.Setenv("PIANO_VOLUME", "250")

	cfg := LoadConfig()
	if cfg.Duration != MaxDuration {
		t.Errorf("Expected duration clamped to %g, got %g", MaxDuration, cfg.Duration)
	}
	if cfg.Volume != MaxVolume {
		t.Errorf("Expected volume clamped to %g, got %g", MaxVolume, cfg.Volume)
	}
}

// TestClampVolume verifies the clamp helper bounds
func TestClampVolume(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-0.1, 0.0},
		{0.0, 0.0},
		{0.42, 0.42},
		{1.0, 1.0},
		{1.01, 1.0},
	}
	for _, c := range cases {
		if got := clampVolume(c.in); got != c.want {
			t.Errorf("clampVolume(%g): expected %g, got %g", c.in, c.want, got)
		}
	}
}
