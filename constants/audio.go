package constants

import "time"

// Chime Queue
const (
	// ChimeQueueSize bounds pending chime requests before the worker drops them
	ChimeQueueSize = 16

	// LockedQueueSize bounds requests held while audio output is still locked
	LockedQueueSize = 8

	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultSampleRate is the synthesized chime sample rate
	DefaultSampleRate = 48000
)

// Bell Chime Timing
const (
	BellSoundDuration           = 900 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 850 * time.Millisecond
	BellSoundOvertoneRelease    = 300 * time.Millisecond
	BellSoundEchoDelay          = 120 * time.Millisecond
)

// Bell Chime Pitch
const (
	BellFundamentalHz = 880.0
	BellOvertoneHz    = 1760.0
	BellEchoHz        = 1318.51
)
