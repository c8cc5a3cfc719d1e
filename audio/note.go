package audio

// noteSemitones maps the 36-symbol note vocabulary to signed semitone
// offsets from the basetone. Three octave bands: "." prefix one octave
// below, no prefix the base octave, "^" prefix one octave above. Sharps
// carry a "#" before the degree digit.
var noteSemitones = map[string]int{
	// Low octave
	".1": -12, ".#1": -11,
	".2": -10, ".#2": -9,
	".3": -8,
	".4": -7, ".#4": -6,
	".5": -5, ".#5": -4,
	".6": -3, ".#6": -2,
	".7": -1,

	// Base octave
	"1": 0, "#1": 1,
	"2": 2, "#2": 3,
	"3": 4,
	"4": 5, "#4": 6,
	"5": 7, "#5": 8,
	"6": 9, "#6": 10,
	"7": 11,

	// High octave
	"^1": 12, "^#1": 13,
	"^2": 14, "^#2": 15,
	"^3": 16,
	"^4": 17, "^#4": 18,
	"^5": 19, "^#5": 20,
	"^6": 21, "^#6": 22,
	"^7": 23,
}

// basetoneFrequencies holds the 4th-octave reference frequency in Hz for
// each chromatic pitch class, equal temperament with A=440
var basetoneFrequencies = map[string]float64{
	"C":  261.63,
	"C#": 277.18,
	"D":  293.66,
	"D#": 311.13,
	"E":  329.63,
	"F":  349.23,
	"F#": 369.99,
	"G":  392.00,
	"G#": 415.30,
	"A":  440.00,
	"A#": 466.16,
	"B":  493.88,
}

// SemitoneOffset returns the semitone distance of a note symbol from the
// basetone, and whether the symbol is part of the vocabulary
func SemitoneOffset(note string) (int, bool) {
	offset, ok := noteSemitones[note]
	return offset, ok
}

// BasetoneFrequency returns the reference frequency for a pitch class
func BasetoneFrequency(basetone string) (float64, bool) {
	freq, ok := basetoneFrequencies[basetone]
	return freq, ok
}

// BasetoneFrequencies returns a copy of the pitch-class frequency table
func BasetoneFrequencies() map[string]float64 {
	out := make(map[string]float64, len(basetoneFrequencies))
	for k, v := range basetoneFrequencies {
		out[k] = v
	}
	return out
}

// Notes returns the full note vocabulary in unspecified order
func Notes() []string {
	out := make([]string, 0, len(noteSemitones))
	for note := range noteSemitones {
		out = append(out, note)
	}
	return out
}

// validBasetone reports whether the name is one of the 12 pitch classes
func validBasetone(name string) bool {
	_, ok := basetoneFrequencies[name]
	return ok
}
