package game

import (
	"fmt"
	"math"
	"time"
)

// formatElapsed formats a render duration as milliseconds with one decimal.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}

// ceilInt rounds a measured text extent up to whole pixels.
func ceilInt(v float64) int {
	return int(math.Ceil(v))
}
