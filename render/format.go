package render

import (
	"fmt"
	"math"
)

// FormatSeconds renders whole seconds as m:ss
func FormatSeconds(sec float64) string {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return "-:--"
	}
	total := int64(math.Floor(math.Abs(sec)))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatMillis renders the magnitude of a millisecond count as m:ss
// Overshot bubbles show elapsed time since expiry counting up
func FormatMillis(ms float64) string {
	return FormatSeconds(math.Abs(ms) / 1000)
}
