package audio

import (
	"errors"
)

// Instrument identifies one of the fixed timbres
type Instrument int

const (
	InstrumentPiano Instrument = iota
	InstrumentGuitar
	InstrumentSaxophone
	InstrumentViolin
	instrumentCount
)

// instrumentNames is the canonical ordering exposed by Instruments()
var instrumentNames = [instrumentCount]string{
	InstrumentPiano:     "piano",
	InstrumentGuitar:    "guitar",
	InstrumentSaxophone: "saxophone",
	InstrumentViolin:    "violin",
}

// String returns the instrument name, or "unknown" out of range
func (in Instrument) String() string {
	if in < 0 || in >= instrumentCount {
		return "unknown"
	}
	return instrumentNames[in]
}

// ParseInstrument maps a name to its Instrument value
func ParseInstrument(name string) (Instrument, bool) {
	for i, n := range instrumentNames {
		if n == name {
			return Instrument(i), true
		}
	}
	return 0, false
}

// Instruments returns the ordered list of valid instrument names
func Instruments() []string {
	out := make([]string, instrumentCount)
	copy(out, instrumentNames[:])
	return out
}

// Sentinel errors
var (
	ErrInvalidInstrument = errors.New("invalid instrument")
	ErrInvalidBasetone   = errors.New("invalid basetone")
	ErrUnknownNote       = errors.New("unknown note")
	ErrDeviceInit        = errors.New("audio device initialization failed")
)
