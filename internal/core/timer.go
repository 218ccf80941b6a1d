package core

import "time"

// Stopwatch measures the time between successive input operations so that
// movement and rotation scale with elapsed seconds rather than frame count.
type Stopwatch struct {
	now  func() time.Time
	last time.Time
}

// NewStopwatch constructs a Stopwatch backed by the wall clock.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Lap returns the seconds since the previous Lap. The first call returns 0.
func (s *Stopwatch) Lap() float64 {
	now := s.now()
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	delta := now.Sub(s.last)
	s.last = now
	return delta.Seconds()
}

// Reset forgets the previous lap so the next Lap returns 0.
func (s *Stopwatch) Reset() { s.last = time.Time{} }
