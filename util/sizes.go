package util

import "fmt"

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// FormatFileSize renders a byte count in the byte/KB/MB/GB bands used by the
// run summary.
func FormatFileSize(size int64) string {
	switch {
	case size < kib:
		return fmt.Sprintf("%d bytes", size)
	case size < mib:
		return fmt.Sprintf("%.2f KB", float64(size)/kib)
	case size < gib:
		return fmt.Sprintf("%.2f MB", float64(size)/mib)
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/gib)
	}
}
