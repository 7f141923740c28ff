// Package timefmt turns second counts into text like "3 hours 43 minutes 12.3 seconds".
//
// Hours are the largest unit, so multi-day values show a large hour count.
// Negative input is not special-cased: it is below a minute and prints as-is.
package timefmt

import (
	"fmt"
	"math"

	"elevride/src/config"
)

// Readable formats seconds for status reports.
func Readable(seconds float64) string {
	switch {
	case seconds < config.SecondsPerMinute:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < config.SecondsPerHour:
		minutes := int(math.Floor(seconds / config.SecondsPerMinute))
		rest := math.Mod(seconds, config.SecondsPerMinute)
		return fmt.Sprintf("%d minutes %.1f seconds", minutes, rest)
	default:
		hours := int(math.Floor(seconds / config.SecondsPerHour))
		minutes := int(math.Floor(math.Mod(seconds, config.SecondsPerHour) / config.SecondsPerMinute))
		rest := math.Mod(seconds, config.SecondsPerMinute)
		return fmt.Sprintf("%d hours %d minutes %.1f seconds", hours, minutes, rest)
	}
}
