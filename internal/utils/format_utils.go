package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
)

// FormatHours renders a number of seconds as "H hours, M minutes, and S seconds".
// Seconds are rounded to two decimals.
func FormatHours(total float64) string {
	hours := math.Floor(total / secondsPerHour)
	rest := math.Mod(total, secondsPerHour)
	minutes := math.Floor(rest / secondsPerMinute)
	seconds := math.Mod(rest, secondsPerMinute)

	return fmt.Sprintf("%d hours, %d minutes, and %s seconds", int64(hours), int64(minutes), FormatSeconds(seconds))
}

// FormatMinutes renders a number of seconds as "M minutes, and S seconds".
func FormatMinutes(total float64) string {
	minutes := math.Floor(total / secondsPerMinute)
	seconds := math.Mod(total, secondsPerMinute)

	return fmt.Sprintf("%d minutes, and %s seconds", int64(minutes), FormatSeconds(seconds))
}

// FormatSeconds rounds to two decimals and always keeps at least one
// fractional digit, so 1 renders as "1.0" and 12.346 as "12.35".
func FormatSeconds(s float64) string {
	rounded := math.Round(s*100) / 100
	out := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// FormatCount adds thousands separators to n.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
