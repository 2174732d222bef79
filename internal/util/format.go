// Package util provides common formatting helpers used across the codebase.
package util

import (
	"fmt"
	"math"
)

// FormatPercent renders a 0-100 value as an integer percentage, rounding to
// the nearest whole number: 42.7 -> "43%".
func FormatPercent(v float64) string {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}

// FormatRate renders a throughput value given in KB/s.
// Values below 1024 KB/s render as whole KB/s; at or above 1024 the value
// switches to MB/s with one decimal: 512 -> "512 KB/s", 2048 -> "2.0 MB/s".
func FormatRate(kbPerSec float64) string {
	if kbPerSec < 0 || math.IsNaN(kbPerSec) {
		kbPerSec = 0
	}
	if kbPerSec >= 1024 {
		return fmt.Sprintf("%.1f MB/s", kbPerSec/1024)
	}
	return fmt.Sprintf("%.0f KB/s", kbPerSec)
}

// FormatKB renders a size given in KB using the largest unit that keeps the
// value above 1: KB, MB, or GB.
func FormatKB(kb float64) string {
	if kb < 0 || math.IsNaN(kb) {
		kb = 0
	}
	switch {
	case kb >= 1024*1024:
		return fmt.Sprintf("%.1f GB", kb/(1024*1024))
	case kb >= 1024:
		return fmt.Sprintf("%.1f MB", kb/1024)
	default:
		return fmt.Sprintf("%.0f KB", kb)
	}
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
