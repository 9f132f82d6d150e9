package utils

import (
	"fmt"
	"strings"
	"time"
)

// Initials returns up to two uppercase initials for an avatar fallback,
// "U" when the name is empty.
func Initials(name string) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
		count++
		if count == 2 {
			break
		}
	}
	if count == 0 {
		return "U"
	}
	return b.String()
}

// TimeAgo formats a timestamp as a rough relative duration.
func TimeAgo(t time.Time) string {
	seconds := int(time.Since(t).Seconds())
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	case seconds < 2592000:
		return fmt.Sprintf("%dd ago", seconds/86400)
	case seconds < 31536000:
		return fmt.Sprintf("%dmo ago", seconds/2592000)
	}
	return fmt.Sprintf("%dy ago", seconds/31536000)
}
