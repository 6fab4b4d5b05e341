package index

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozyrev/agekeeper/internal/datecode"
)

func dated(path string, size int64, y int, m time.Month, d int) File {
	return File{Path: path, Size: size, BornDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestPopOldestOrder(t *testing.T) {
	s := NewStorage()
	s.Insert(dated("/data/2021/06/15/b.jpg", 5, 2021, 6, 15))
	s.Insert(dated("/data/2020/01/01/a.jpg", 10, 2020, 1, 1))
	s.Insert(dated("/data/2023/11/07/c.jpg", 7, 2023, 11, 7))

	age, ok := s.PeekOldestAge()
	require.True(t, ok)
	assert.Equal(t, datecode.DaysSinceEpoch(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), age)

	f, ok := s.PopOldest()
	require.True(t, ok)
	assert.Equal(t, "/data/2020/01/01/a.jpg", f.Path)

	f, ok = s.PopOldest()
	require.True(t, ok)
	assert.Equal(t, "/data/2021/06/15/b.jpg", f.Path)

	f, ok = s.PopOldest()
	require.True(t, ok)
	assert.Equal(t, "/data/2023/11/07/c.jpg", f.Path)

	assert.True(t, s.IsEmpty())
	_, ok = s.PopOldest()
	assert.False(t, ok)
	_, ok = s.PeekOldestAge()
	assert.False(t, ok)
}

func TestPopOldestRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewStorage()

	base := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		d := base.AddDate(0, 0, rng.Intn(3000))
		path := fmt.Sprintf("/data/%04d/%02d/%02d/f%03d.jpg", d.Year(), d.Month(), d.Day(), i)
		s.Insert(File{Path: path, Size: 1, BornDate: d})
	}

	prev := -1 << 31
	for !s.IsEmpty() {
		key, ok := s.PeekOldestAge()
		require.True(t, ok)
		require.GreaterOrEqual(t, key, prev, "pop order must be non-decreasing")

		f, ok := s.PopOldest()
		require.True(t, ok)
		require.Equal(t, key, datecode.DaysSinceEpoch(f.BornDate))
		prev = key
	}
}

func TestInsertDeduplicates(t *testing.T) {
	s := NewStorage()
	s.Insert(dated("/data/2020/01/01/a.jpg", 10, 2020, 1, 1))
	s.Insert(dated("/data/2020/01/01/a.jpg", 99, 2021, 2, 2))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, int64(10), s.TotalSize(), "duplicate insert must not overwrite")

	f, ok := s.PopOldest()
	require.True(t, ok)
	assert.Equal(t, int64(10), f.Size)
	assert.False(t, s.Contains("/data/2020/01/01/a.jpg"))
}

func TestTotalSize(t *testing.T) {
	s := NewStorage()
	assert.Equal(t, int64(0), s.TotalSize())

	s.Insert(dated("/data/2020/01/01/a.jpg", 10, 2020, 1, 1))
	s.Insert(dated("/data/2020/06/15/b.jpg", 5, 2020, 6, 15))
	assert.Equal(t, int64(15), s.TotalSize())

	_, ok := s.PopOldest()
	require.True(t, ok)
	assert.Equal(t, int64(5), s.TotalSize())
}
