package timeutil

import (
	"strconv"
	"time"
)

// ProviderLayout is the minute-precision UTC layout used by scoreboard feeds (e.g. 2023-10-10T23:00Z).
const ProviderLayout = "2006-01-02T15:04Z"

// HoursApart returns the absolute distance between a and b in whole hours, truncated.
func HoursApart(a, b time.Time) int64 {
	hours := int64(a.Sub(b) / time.Hour)
	if hours < 0 {
		return -hours
	}
	return hours
}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func Ordinal(n uint64) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.FormatUint(n, 10) + suffix
}
