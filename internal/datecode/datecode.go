// Package datecode converts between calendar dates, the day-count keys used
// to order files, and the YYYY/MM/DD path segments that encode a file's
// birth date.
package datecode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPathFormat reports a path that does not encode a valid
// year/month/day in the three segments before the file name.
var ErrInvalidPathFormat = errors.New("path does not encode a birth date")

const secondsPerDay = 24 * 60 * 60

// DaysSinceEpoch returns the day count of t's calendar date relative to
// 1970-01-01. Dates before the epoch yield negative values.
func DaysSinceEpoch(t time.Time) int {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / secondsPerDay)
}

// DateFromDays is the inverse of DaysSinceEpoch. It returns midnight UTC of
// the encoded date.
func DateFromDays(days int) time.Time {
	return time.Unix(int64(days)*secondsPerDay, 0).UTC()
}

// ParseBornDate decodes the birth date from the three path segments
// immediately preceding the file name, e.g. ".../2023/11/07/capture.jpg".
// The returned time is midnight UTC of that date.
func ParseBornDate(path string) (time.Time, error) {
	parts := strings.Split(filepath.Clean(path), string(filepath.Separator))
	if len(parts) < 4 {
		return time.Time{}, fmt.Errorf("%w: %q has fewer than 4 segments", ErrInvalidPathFormat, path)
	}

	nums := make([]int, 3)
	for i, seg := range parts[len(parts)-4 : len(parts)-1] {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("%w: segment %q of %q is not a date component", ErrInvalidPathFormat, seg, path)
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range components (month 13, Feb 31); a
	// mismatch after construction means the encoded date was not real.
	gotY, gotM, gotD := t.Date()
	if gotY != year || gotM != time.Month(month) || gotD != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d is not a valid calendar date in %q", ErrInvalidPathFormat, year, month, day, path)
	}

	return t, nil
}
