// ABOUTME: Server timestamp normalization to milliseconds
// ABOUTME: Detects 10-digit second values and scales them to milliseconds
package timesync

import (
	"errors"
	"math"
)

// ErrInvalidTimestamp reports a timestamp field that is not a finite number.
var ErrInvalidTimestamp = errors.New("timesync: invalid timestamp")

// NormalizeMillis converts a server-reported timestamp of unknown unit to
// milliseconds. The value is rounded to the nearest integer; if its absolute
// value has exactly 10 decimal digits it is taken to be Unix seconds and
// scaled by 1000, any other digit count passes through unchanged.
func NormalizeMillis(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidTimestamp
	}

	n := int64(math.Round(v))
	if digitCount(n) == 10 {
		return n * 1000, nil
	}
	return n, nil
}

// digitCount returns the number of decimal digits in |n|.
func digitCount(n int64) int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return 1
	}

	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}
