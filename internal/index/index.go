// Package index holds the in-memory catalog of tracked files, ordered by
// encoded birth date so the oldest file is always one pop away.
package index

import (
	"container/heap"
	"time"

	"github.com/dkozyrev/agekeeper/internal/datecode"
)

// File is one tracked on-disk file. BornDate is the date decoded from the
// file's path segments, not filesystem metadata.
type File struct {
	Path     string
	Size     int64
	BornDate time.Time
}

// Storage owns every tracked file record. A min-heap keyed by day count
// yields the oldest file, a path set gives O(1) membership checks. It is not
// safe for concurrent use; the sweep loop is its only owner.
type Storage struct {
	heap  fileHeap
	paths map[string]struct{}
	bytes int64
}

func NewStorage() *Storage {
	return &Storage{paths: make(map[string]struct{})}
}

// Contains reports whether path is already tracked.
func (s *Storage) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Insert tracks f keyed by its birth-date day count. Inserting an already
// tracked path is a no-op; callers that care use Contains first.
func (s *Storage) Insert(f File) {
	if s.Contains(f.Path) {
		return
	}
	heap.Push(&s.heap, entry{key: datecode.DaysSinceEpoch(f.BornDate), file: f})
	s.paths[f.Path] = struct{}{}
	s.bytes += f.Size
}

// PeekOldestAge returns the day-count key of the oldest tracked file.
// The second return is false when nothing is tracked.
func (s *Storage) PeekOldestAge() (int, bool) {
	if len(s.heap) == 0 {
		return 0, false
	}
	return s.heap[0].key, true
}

// PopOldest removes and returns the oldest tracked file. The second return
// is false when nothing is tracked.
func (s *Storage) PopOldest() (File, bool) {
	if len(s.heap) == 0 {
		return File{}, false
	}
	e := heap.Pop(&s.heap).(entry)
	delete(s.paths, e.file.Path)
	s.bytes -= e.file.Size
	return e.file, true
}

func (s *Storage) IsEmpty() bool {
	return len(s.heap) == 0
}

// Len returns the number of tracked files.
func (s *Storage) Len() int {
	return len(s.heap)
}

// TotalSize returns the summed size in bytes of all tracked files.
func (s *Storage) TotalSize() int64 {
	return s.bytes
}

type entry struct {
	key  int
	file File
}

type fileHeap []entry

func (h fileHeap) Len() int            { return len(h) }
func (h fileHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h fileHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *fileHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

func (h *fileHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
