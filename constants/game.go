package constants

import "time"

// Frame Loop Timing Constants
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameInterval bounds configured frame intervals from below
	MinFrameInterval = 4 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)
