package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/teatime/constants"
)

// Sink is an audio output
// Open is called once, on unlock, before any Play
type Sink interface {
	Open(rate beep.SampleRate) error
	Play(s beep.Streamer)
	Close()
}

// SpeakerSink plays through the system speaker via a shared mixer
type SpeakerSink struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	opened bool
}

// NewSpeakerSink creates an unopened speaker sink
func NewSpeakerSink() *SpeakerSink {
	return &SpeakerSink{mixer: &beep.Mixer{}}
}

// Open initializes the speaker and starts the mixer
func (s *SpeakerSink) Open(rate beep.SampleRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil
	}
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoOutput, err)
	}
	speaker.Play(s.mixer)
	s.opened = true
	return nil
}

// Play adds a stream to the mixer
func (s *SpeakerSink) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close clears the mixer and releases the speaker
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.opened = false
}
