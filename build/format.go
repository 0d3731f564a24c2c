package build

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// siteDigest hashes rendered pages in nav order. Identical inputs always
// produce the same digest regardless of render scheduling.
func siteDigest(urls, contents []string) string {
	h := xxhash.New()
	for i := range urls {
		_, _ = h.WriteString(urls[i])
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(contents[i])
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
