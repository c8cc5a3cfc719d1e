package audio

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

const testSongJSON = `{
	"title": "Scale Fragment",
	"basetone": "D",
	"notes": [
		{"note": "1", "duration": 0.01},
		{"note": ["1", "3", "5"], "duration": 0.01},
		{"note": "no-such-note", "duration": 0.01},
		{"note": "^1", "duration": 0.01}
	]
}`

func writeSongFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "song.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadSong verifies song decoding
func TestLoadSong(t *testing.T) {
	song, err := LoadSong(writeSongFile(t, testSongJSON))
	if err != nil {
		t.Fatal(err)
	}

	if song.Title != "Scale Fragment" {
		t.Errorf("Expected title %q, got %q", "Scale Fragment", song.Title)
	}
	if song.Basetone != "D" {
		t.Errorf("Expected basetone D, got %s", song.Basetone)
	}
	if len(song.Notes) != 4 {
		t.Fatalf("Expected 4 note entries, got %d", len(song.Notes))
	}

	if sym, ok := song.Notes[0].symbol(); !ok || sym != "1" {
		t.Errorf("Entry 0: expected note symbol 1, got %q (ok=%v)", sym, ok)
	}
	if _, ok := song.Notes[1].symbol(); ok {
		t.Error("Entry 1 is a chord, expected symbol() to report false")
	}
}

// TestLoadSongDefaultsBasetone verifies a missing basetone falls back
func TestLoadSongDefaultsBasetone(t *testing.T) {
	song, err := LoadSong(writeSongFile(t, `{"notes": [{"note": "1", "duration": 0.5}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if song.Basetone != DefaultBasetone {
		t.Errorf("Expected default basetone, got %s", song.Basetone)
	}
}

// TestLoadSongErrors verifies missing files and bad JSON fail
func TestLoadSongErrors(t *testing.T) {
	if _, err := LoadSong(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := LoadSong(writeSongFile(t, "{not json")); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

// TestPlaySong verifies sequential playback skips chords and unknown
// notes and restores the engine basetone
func TestPlaySong(t *testing.T) {
	e := newTestEngine(t, nil)
	e.SetLogger(log.New(io.Discard, "", 0))

	song, err := LoadSong(writeSongFile(t, testSongJSON))
	if err != nil {
		t.Fatal(err)
	}

	if err := e.PlaySong(song); err != nil {
		t.Fatalf("PlaySong failed: %v", err)
	}
	if e.Basetone() != "C" {
		t.Errorf("Expected basetone restored to C, got %s", e.Basetone())
	}
	if e.voice.sounding() {
		t.Error("Expected idle voice after song end")
	}
}

// TestPlaySongInvalidBasetone verifies a bad song key is rejected before
// any note plays
func TestPlaySongInvalidBasetone(t *testing.T) {
	e := newTestEngine(t, nil)

	song := &Song{Basetone: "Z"}
	if err := e.PlaySong(song); err == nil {
		t.Fatal("Expected error for invalid song basetone")
	}
	if e.Basetone() != "C" {
		t.Errorf("Engine basetone changed on rejected song: %s", e.Basetone())
	}
}
