// Package trigger provides a single-slot wake-up signal for the sweep loop.
// Any number of Notify calls while a sweep is running coalesce into one
// pending wake-up; it is a latest-wins slot, not a queue.
package trigger

// Trigger coalesces wake-up requests into at most one pending signal.
type Trigger struct {
	ch chan struct{}
}

func New() *Trigger {
	return &Trigger{ch: make(chan struct{}, 1)}
}

// Notify requests a wake-up. It never blocks; a request arriving while one
// is already pending is absorbed.
func (t *Trigger) Notify() {
	select {
	case t.ch <- struct{}{}:
	default:
	}
}

// C returns the channel the sweep loop selects on.
func (t *Trigger) C() <-chan struct{} {
	return t.ch
}
