package main

import (
	"fmt"
	"io"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/gdamore/tcell/v2"

	"github.com/sinnud/piano-code/audio"
)

// Keyboard rows mapped onto the three octave bands. Uppercase plays the
// sharp of the same degree where one exists.
const (
	lowRowKeys  = "zxcvbnm" // .1 .. .7
	baseRowKeys = "asdfghj" // 1 .. 7
	highRowKeys = "qwertyu" // ^1 .. ^7
)

var basetoneOrder = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

type args struct {
	Rate       int     `arg:"--rate" help:"output sample rate in Hz"`
	Duration   float64 `arg:"--duration" help:"note length in seconds (0.1-10)"`
	Instrument string  `arg:"--instrument" help:"piano, guitar, saxophone or violin"`
	Basetone   string  `arg:"--basetone" help:"pitch class treated as scale degree 1"`
	Volume     float64 `arg:"--volume" default:"-1" help:"master volume 0.0-1.0"`
	Song       string  `arg:"--song" help:"play a JSON song file and exit"`
}

func (args) Description() string {
	return "piano-code: play notes on your keyboard through a monophonic synthesis engine"
}

func main() {
	var a args
	arg.MustParse(&a)

	cfg := audio.LoadConfig()
	if a.Rate > 0 {
		cfg.SampleRate = a.Rate
	}
	if a.Duration > 0 {
		cfg.Duration = a.Duration
	}
	if a.Instrument != "" {
		cfg.Instrument = a.Instrument
	}
	if a.Basetone != "" {
		cfg.Basetone = a.Basetone
	}
	if a.Volume >= 0 {
		cfg.Volume = a.Volume
	}

	engine, err := audio.New(cfg)
	if err != nil {
		log.Fatalf("piano-code: %v", err)
	}
	defer engine.Close()

	if a.Song != "" {
		song, err := audio.LoadSong(a.Song)
		if err != nil {
			log.Fatalf("piano-code: %v", err)
		}
		if err := engine.PlaySong(song); err != nil {
			log.Fatalf("piano-code: %v", err)
		}
		return
	}

	if err := runKeyboard(engine); err != nil {
		log.Fatalf("piano-code: %v", err)
	}
}

// runKeyboard drives the interactive terminal keyboard
func runKeyboard(engine *audio.Engine) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Diagnostics would corrupt the terminal while tcell owns it
	engine.SetLogger(log.New(io.Discard, "", 0))

	instrIdx := indexOf(audio.Instruments(), engine.Instrument())
	toneIdx := indexOf(basetoneOrder, engine.Basetone())

	for {
		drawStatus(screen, engine)
		screen.Show()

		ev := screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch {
		case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
			return nil

		case key.Rune() == ' ':
			engine.Stop()

		case key.Rune() == '-':
			engine.VolumeDown()
		case key.Rune() == '=':
			engine.VolumeUp()

		case key.Rune() == 'p':
			instrIdx = (instrIdx + 1) % len(audio.Instruments())
			if err := engine.SetInstrument(audio.Instruments()[instrIdx]); err != nil {
				return err
			}

		case key.Rune() == 'o':
			toneIdx = (toneIdx + 1) % len(basetoneOrder)
			if err := engine.SetBasetone(basetoneOrder[toneIdx]); err != nil {
				return err
			}

		default:
			if note, ok := noteForRune(key.Rune()); ok {
				engine.PlayNote(note)
			}
		}
	}
}

// noteForRune translates a key rune into a note symbol. Lowercase plays
// the natural degree, uppercase the sharp; degrees 3 and 7 have no sharp.
func noteForRune(r rune) (string, bool) {
	sharp := r >= 'A' && r <= 'Z'
	if sharp {
		r += 'a' - 'A'
	}

	var prefix string
	var degree int
	for i, row := range []string{lowRowKeys, baseRowKeys, highRowKeys} {
		for d, k := range row {
			if k == r {
				prefix = []string{".", "", "^"}[i]
				degree = d + 1
			}
		}
	}
	if degree == 0 {
		return "", false
	}
	if sharp {
		if degree == 3 || degree == 7 {
			return "", false
		}
		return fmt.Sprintf("%s#%d", prefix, degree), true
	}
	return fmt.Sprintf("%s%d", prefix, degree), true
}

func drawStatus(screen tcell.Screen, engine *audio.Engine) {
	screen.Clear()
	s := engine.Settings()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bold := style.Bold(true)

	drawText(screen, 0, 0, bold, "piano-code")
	drawText(screen, 0, 1, style, fmt.Sprintf("instrument: %-10s (p to cycle)", s.Instrument))
	drawText(screen, 0, 2, style, fmt.Sprintf("basetone:   %-10s (o to cycle)", s.Basetone))
	drawText(screen, 0, 3, style, fmt.Sprintf("volume:     %-10.2f (-/= to adjust)", s.Volume))
	drawText(screen, 0, 5, style, "rows: zxcvbnm = low, asdfghj = base, qwertyu = high")
	drawText(screen, 0, 6, style, "shift = sharp, space = stop, esc = quit")
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return 0
}
