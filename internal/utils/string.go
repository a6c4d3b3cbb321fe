package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatWithCommas formats a count with thousands separators.
func FormatWithCommas(n uint) string {
	return humanize.Comma(int64(n))
}

// FormatMillis renders a duration as milliseconds with two decimals.
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d.Nanoseconds())/float64(time.Millisecond))
}
