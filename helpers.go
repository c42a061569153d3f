package meetingfinder

import (
	"fmt"
)

func ternary[T any](condition bool, value1, value2 T) T {
	if condition {
		return value1
	}

	return value2
}

// formatMinute renders minute of day as HH:MM, day end as 24:00.
func formatMinute(minute int) string {
	return fmt.Sprintf(
		"%02d:%02d",

		minute/60,
		minute%60,
	)
}
