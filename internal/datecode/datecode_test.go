package datecode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysSinceEpoch(t *testing.T) {
	cases := []struct {
		date time.Time
		days int
	}{
		{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC), -1},
		{time.Date(1972, 3, 1, 0, 0, 0, 0, time.UTC), 790}, // 1972 is a leap year
		{time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC), 11017},
		{time.Date(2023, 11, 7, 0, 0, 0, 0, time.UTC), 19668},
	}

	for _, c := range cases {
		assert.Equal(t, c.days, DaysSinceEpoch(c.date), "date %s", c.date)
	}
}

func TestDaysSinceEpochIgnoresTimeOfDay(t *testing.T) {
	noon := time.Date(2023, 11, 7, 12, 34, 56, 0, time.UTC)
	midnight := time.Date(2023, 11, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, DaysSinceEpoch(midnight), DaysSinceEpoch(noon))
}

func TestRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		assert.Equal(t, d, DateFromDays(DaysSinceEpoch(d)), "round trip %s", d)
	}
}

func TestMonotonic(t *testing.T) {
	prev := DaysSinceEpoch(time.Date(1999, 12, 25, 0, 0, 0, 0, time.UTC))
	d := time.Date(1999, 12, 26, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		key := DaysSinceEpoch(d)
		require.Equal(t, prev+1, key, "date %s", d)
		prev = key
		d = d.AddDate(0, 0, 1)
	}
}

func TestParseBornDate(t *testing.T) {
	got, err := ParseBornDate("/data/2023/11/07/img.jpg")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 7, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseBornDate("root/2020/01/01/a.txt")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseBornDateInvalid(t *testing.T) {
	bad := []string{
		"/data/bad/path.jpg",       // too few segments
		"a.txt",                    // bare file name
		"/data/2023/xx/07/img.jpg", // non-numeric month
		"/data/2023/13/07/img.jpg", // month out of range
		"/data/2023/02/31/img.jpg", // day not in February
		"/data/-2023/11/07/im.jpg", // negative year
	}
	for _, path := range bad {
		_, err := ParseBornDate(path)
		assert.ErrorIs(t, err, ErrInvalidPathFormat, "path %q", path)
	}
}
