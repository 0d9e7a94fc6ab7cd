package audio

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// cacheEntry is a decoded resource or the error that prevented decoding
type cacheEntry struct {
	buf *beep.Buffer
	err error
}

// bufferCache stores decoded unity-gain buffers per resource
// Failures are cached too so a broken file is decoded and logged once
type bufferCache struct {
	mu     sync.RWMutex
	rate   beep.SampleRate
	format beep.Format
	store  map[string]cacheEntry
}

func newBufferCache(rate beep.SampleRate) *bufferCache {
	return &bufferCache{
		rate:   rate,
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		store:  make(map[string]cacheEntry),
	}
}

// get returns the cached buffer or decodes on demand
func (c *bufferCache) get(resource string) (*beep.Buffer, error) {
	c.mu.RLock()
	if e, ok := c.store[resource]; ok {
		c.mu.RUnlock()
		return e.buf, e.err
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if e, ok := c.store[resource]; ok {
		return e.buf, e.err
	}

	buf, err := c.load(resource)
	if err != nil {
		log.Printf("audio: cannot load %q: %v", resource, err)
	}
	c.store[resource] = cacheEntry{buf: buf, err: err}
	return buf, err
}

// preload decodes a resource ahead of the first request
func (c *bufferCache) preload(resource string) error {
	_, err := c.get(resource)
	return err
}

func (c *bufferCache) load(resource string) (*beep.Buffer, error) {
	switch classify(resource) {
	case kindBell:
		buf := beep.NewBuffer(c.format)
		buf.Append(CreateBellSound(c.rate))
		return buf, nil
	case kindWav, kindMP3:
		return c.decodeFile(resource)
	default:
		return nil, fmt.Errorf("%q: %w", resource, ErrUnsupportedResource)
	}
}

// decodeFile reads a wav or mp3 file into a buffer at the cache sample rate
func (c *bufferCache) decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if classify(path) == kindWav {
		streamer, format, err = wav.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != c.rate {
		src = beep.Resample(4, format.SampleRate, c.rate, streamer)
	}

	buf := beep.NewBuffer(c.format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}
