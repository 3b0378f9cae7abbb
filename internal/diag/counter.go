package diag

import "sync/atomic"

// Counter is the run-wide error count. It only grows; several reporters
// (one per scanned file) may share a single Counter, including across
// goroutines.
type Counter struct {
	n atomic.Int64
}

// Inc records one error.
func (c *Counter) Inc() {
	if c == nil {
		return
	}
	c.n.Add(1)
}

// Load returns the number of errors recorded so far.
func (c *Counter) Load() int {
	if c == nil {
		return 0
	}
	return int(c.n.Load())
}
