package audio

import (
	"sync"
	"sync/atomic"
)

// waveCache holds the rendered buffer for every note in the vocabulary.
// It is rebuilt wholesale on instrument or basetone changes; readers
// never observe a partially built cache.
type waveCache struct {
	mu          sync.RWMutex
	store       map[string]floatBuffer
	regenerated atomic.Uint64
}

func newWaveCache() *waveCache {
	return &waveCache{
		store: make(map[string]floatBuffer, len(noteSemitones)),
	}
}

// rebuild renders the full vocabulary under cfg into a fresh map and
// swaps it in. The render loop runs on the caller's goroutine and blocks
// until every note is done.
func (c *waveCache) rebuild(cfg *Config) error {
	next := make(map[string]floatBuffer, len(noteSemitones))
	for note := range noteSemitones {
		buf, err := renderWaveform(note, cfg)
		if err != nil {
			return err
		}
		next[note] = buf
	}

	c.mu.Lock()
	c.store = next
	c.mu.Unlock()

	c.regenerated.Add(uint64(len(next)))
	return nil
}

// get returns the cached buffer for a note, or false for any symbol
// outside the vocabulary
func (c *waveCache) get(note string) (floatBuffer, bool) {
	c.mu.RLock()
	buf, ok := c.store[note]
	c.mu.RUnlock()
	return buf, ok
}

// len returns the number of cached buffers
func (c *waveCache) len() int {
	c.mu.RLock()
	n := len(c.store)
	c.mu.RUnlock()
	return n
}
