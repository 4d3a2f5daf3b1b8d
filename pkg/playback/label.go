package playback

import (
	"fmt"
	"time"
)

// AgeLabel renders how long ago a story was posted, "3h" from an hour on and "12m" below that.
// Fresh stories read "1m".
func AgeLabel(now, createdAt time.Time) string {
	age := now.Sub(createdAt)
	if age >= time.Hour {
		return fmt.Sprintf("%dh", int(age/time.Hour))
	}

	minutes := int(age / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%dm", minutes)
}
