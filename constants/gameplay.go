package constants

import "math"

// Bubble Geometry Constants
const (
	// MinRadius separates a click from a create drag (world units)
	MinRadius = 5.0

	// MsPerRadiusUnit maps radius to base countdown duration
	MsPerRadiusUnit = 1000.0
)

// Duration Multiplier Constants
const (
	// MultiplierBase is the growth factor per half turn of accumulated rotation
	MultiplierBase = 2.0

	// MaxAccumulatedAngle clamps rotation to two full turns either way
	MaxAccumulatedAngle = 4 * math.Pi
)

// Display Geometry
const (
	// DefaultCellAspect is the world height of one terminal row relative to one column
	DefaultCellAspect = 2.0
)
