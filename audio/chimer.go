package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/teatime/constants"
)

// Chimer plays overshoot chimes on a worker goroutine
// Requests never block the caller; until Unlock they are held in a bounded queue
type Chimer struct {
	config AudioConfig
	sink   Sink
	cache  *bufferCache

	requests chan string
	unlockCh chan struct{}
	stopCh   chan struct{}
	wg       sync.WaitGroup

	running    atomic.Bool
	unlocked   atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewChimer creates a chimer over the given sink; nil sink uses the system speaker
func NewChimer(cfg *AudioConfig, sink Sink) *Chimer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	c := cfg.normalized()
	if sink == nil {
		sink = NewSpeakerSink()
	}

	ch := &Chimer{
		config:   c,
		sink:     sink,
		cache:    newBufferCache(beep.SampleRate(c.SampleRate)),
		requests: make(chan string, c.QueueSize),
		unlockCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
	ch.muted.Store(!c.Enabled)
	return ch
}

// Start launches the worker
func (c *Chimer) Start() {
	if !c.running.CompareAndSwap(false, true) {
		return
	}
	c.wg.Add(1)
	go c.run()
}

// Stop terminates the worker and closes the sink
func (c *Chimer) Stop() {
	if !c.running.CompareAndSwap(true, false) {
		return
	}
	close(c.stopCh)
	c.wg.Wait()
	c.sink.Close()
}

// Preload decodes a resource ahead of the first chime
// Decode errors are cached and only reported here
func (c *Chimer) Preload(resource string) error {
	return c.cache.preload(resource)
}

// RequestChime queues a chime for the resource without blocking
func (c *Chimer) RequestChime(resource string) {
	if !c.running.Load() || c.muted.Load() || c.silentMode.Load() {
		c.dropped.Add(1)
		return
	}
	select {
	case c.requests <- resource:
	default:
		c.dropped.Add(1)
	}
}

// Unlock opens the audio output, called on the first user gesture
func (c *Chimer) Unlock() {
	if !c.unlocked.CompareAndSwap(false, true) {
		return
	}
	select {
	case c.unlockCh <- struct{}{}:
	default:
	}
}

// IsUnlocked reports whether Unlock has been called
func (c *Chimer) IsUnlocked() bool {
	return c.unlocked.Load()
}

// ToggleMute flips mute and returns true if audio is now audible
func (c *Chimer) ToggleMute() bool {
	newMute := !c.muted.Load()
	c.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (c *Chimer) IsMuted() bool {
	return c.muted.Load()
}

// IsSilent reports whether the output failed to open
func (c *Chimer) IsSilent() bool {
	return c.silentMode.Load()
}

// Stats returns played and dropped chime counts
func (c *Chimer) Stats() (played, dropped uint64) {
	return c.played.Load(), c.dropped.Load()
}

func (c *Chimer) run() {
	defer c.wg.Done()

	var (
		open    bool
		pending []string
	)

	for {
		select {
		case <-c.stopCh:
			return

		case <-c.unlockCh:
			if err := c.sink.Open(beep.SampleRate(c.config.SampleRate)); err != nil {
				log.Printf("audio: output unavailable, continuing silently: %v", err)
				c.silentMode.Store(true)
				c.dropped.Add(uint64(len(pending)))
				pending = nil
				continue
			}
			open = true
			c.flush(pending)
			pending = nil

		case res := <-c.requests:
			if !open {
				if len(pending) >= constants.LockedQueueSize {
					c.dropped.Add(1)
					continue
				}
				pending = append(pending, res)
				continue
			}
			c.play(res)
		}
	}
}

// flush replays each distinct queued resource once or drops them all
func (c *Chimer) flush(pending []string) {
	if !c.config.ReplayQueued {
		c.dropped.Add(uint64(len(pending)))
		return
	}
	seen := make(map[string]bool, len(pending))
	for _, res := range pending {
		if seen[res] {
			c.dropped.Add(1)
			continue
		}
		seen[res] = true
		c.play(res)
	}
}

func (c *Chimer) play(resource string) {
	if c.muted.Load() {
		c.dropped.Add(1)
		return
	}
	buf, err := c.cache.get(resource)
	if err != nil {
		c.dropped.Add(1)
		return
	}
	c.sink.Play(newVolume(buf.Streamer(0, buf.Len()), c.config.Volume))
	c.played.Add(1)
}
