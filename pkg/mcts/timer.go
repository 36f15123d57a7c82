package mcts

import (
	"time"
)

type _Timer struct {
	now   func() time.Time
	start time.Time
}

func _NewTimer(now func() time.Time) *_Timer {
	if now == nil {
		now = time.Now
	}
	return &_Timer{now: now, start: now()}
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = t.now()
}

// Time since the last reset
func (t *_Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Elapsed milliseconds, at least 1 so it can be used as a divisor
func (t *_Timer) Deltatime() int {
	return max(int(t.Elapsed().Milliseconds()), 1)
}
