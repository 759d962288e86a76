package snapshot

import "sync/atomic"

// Sequence hands out monotonically increasing identifiers. It is in-memory
// only: repositories reseed it at startup from the maximum id already
// persisted, so restarts continue above the prior maximum.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a Sequence whose first Next call yields start.
// A start below 1 is clamped to 1.
func NewSequence(start int64) *Sequence {
	if start < 1 {
		start = 1
	}
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// Next returns the current value and atomically advances the counter.
// Concurrent callers never observe the same value twice.
func (s *Sequence) Next() int64 {
	return s.next.Add(1) - 1
}
