package util

import (
	"fmt"
	"time"
)

// FormatElapsed renders a run duration as whole minutes and seconds.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d minutes, %d seconds", secs/60, secs%60)
}
