package common

import (
	"time"
)

// This stopwatch keeps track of time. You can set a timeout for it,
// make it start counting time, and ask it if the timeout has been reached
type Stopwatch struct {
	Timeout   time.Duration
	startTime time.Time
	running   bool
	clock     func() time.Time
}

func NewStopwatch(timeout time.Duration) Stopwatch {
	return Stopwatch{Timeout: timeout, clock: time.Now}
}

func (s *Stopwatch) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

func (s *Stopwatch) Start() {
	s.running = true
	s.startTime = s.now()
}

func (s *Stopwatch) Stop() {
	s.running = false
}

// Report if the timeout has been reached, and the time elapsed since then.
// A stopwatch that is not running counts as stopped
func (s *Stopwatch) Stopped() (bool, time.Duration) {
	if !s.running {
		return true, 0
	}
	overtime := s.now().Sub(s.startTime.Add(s.Timeout))
	if overtime < 0 {
		return false, 0
	}
	return true, overtime
}
