package audio

import "github.com/lixenwraith/teatime/constants"

// AudioConfig holds chime playback settings
type AudioConfig struct {
	Enabled      bool
	Volume       float64 // master gain 0.0-1.0
	SampleRate   int
	ReplayQueued bool // replay chimes requested before unlock instead of dropping them
	QueueSize    int
}

// DefaultAudioConfig returns the default configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		Volume:       0.8,
		SampleRate:   constants.DefaultSampleRate,
		ReplayQueued: true,
		QueueSize:    constants.ChimeQueueSize,
	}
}

// normalized returns a copy with out-of-range fields replaced by defaults
func (c AudioConfig) normalized() AudioConfig {
	def := DefaultAudioConfig()
	if c.Volume < 0 {
		c.Volume = 0
	} else if c.Volume > 1 {
		c.Volume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = def.SampleRate
	}
	if c.QueueSize <= 0 {
		c.QueueSize = def.QueueSize
	}
	return c
}
