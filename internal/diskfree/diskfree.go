// Package diskfree reports free and total capacity of the volume hosting a
// directory. Platform-specific queries live in build-tagged files.
package diskfree

// Usage describes the capacity of one volume.
type Usage struct {
	FreeBytes  uint64
	TotalBytes uint64
}

// FreeFraction returns free capacity as a fraction of total, in [0, 1].
func (u Usage) FreeFraction() float64 {
	if u.TotalBytes == 0 {
		return 0
	}
	return float64(u.FreeBytes) / float64(u.TotalBytes)
}
