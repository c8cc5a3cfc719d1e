package audio

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Song is a sequence of timed notes loaded from a JSON file:
//
//	{
//	  "title": "Song Title",
//	  "basetone": "C",
//	  "notes": [{"note": "1", "duration": 0.5}, ...]
//	}
type Song struct {
	Title    string     `json:"title"`
	Basetone string     `json:"basetone"`
	Notes    []SongNote `json:"notes"`
}

// SongNote is one entry of a song. Note holds the raw JSON value so that
// chord entries (arrays) can be detected and skipped.
type SongNote struct {
	Note     json.RawMessage `json:"note"`
	Duration float64         `json:"duration"`
}

// symbol returns the note symbol, or false for chord (array) entries
func (n SongNote) symbol() (string, bool) {
	var s string
	if err := json.Unmarshal(n.Note, &s); err != nil {
		return "", false
	}
	return s, true
}

// LoadSong reads and decodes a song file
func LoadSong(path string) (*Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read song: %w", err)
	}
	var song Song
	if err := json.Unmarshal(data, &song); err != nil {
		return nil, fmt.Errorf("decode song %s: %w", path, err)
	}
	if song.Basetone == "" {
		song.Basetone = DefaultBasetone
	}
	return &song, nil
}

// PlaySong plays the song's notes in sequence, one voice at a time,
// blocking until the last note has run its duration. The engine switches
// to the song's basetone for the run and restores the previous one
// afterwards. Chord entries and unknown notes are skipped.
func (e *Engine) PlaySong(song *Song) error {
	prev := e.Basetone()
	if song.Basetone != prev {
		if err := e.SetBasetone(song.Basetone); err != nil {
			return err
		}
		defer func() {
			if err := e.SetBasetone(prev); err != nil {
				e.logger.Printf("audio: restoring basetone %s: %v", prev, err)
			}
		}()
	}

	if song.Title != "" {
		e.logger.Printf("audio: playing %q in %s, %d notes", song.Title, song.Basetone, len(song.Notes))
	}

	for i, entry := range song.Notes {
		note, ok := entry.symbol()
		if !ok {
			e.logger.Printf("audio: song entry %d is a chord, skipping", i)
			continue
		}

		duration := entry.Duration
		if duration <= 0 {
			duration = 0.5
		}

		e.playSongNote(note, duration)
		time.Sleep(time.Duration(duration * float64(time.Second)))
	}
	e.Stop()
	return nil
}

// playSongNote plays a note at an arbitrary duration, rendering ad hoc
// when the duration differs from the cached configuration
func (e *Engine) playSongNote(note string, duration float64) {
	cfg := e.config()
	if duration == cfg.Duration {
		e.PlayNote(note)
		return
	}

	cfg.Duration = clampDuration(duration)
	buf, err := renderWaveform(note, &cfg)
	if err != nil {
		e.logger.Printf("audio: song note %q: %v", note, err)
		return
	}
	if !e.voice.play(buf) {
		e.logger.Printf("audio: voice busy, skipped song note %q", note)
	}
}
