package mcts

import (
	"math"
	"time"

	"github.com/pbnjay/memory"
)

type StopReason int

const (
	StopNone     StopReason = 0
	StopMovetime StopReason = 2  // Time limit reached
	StopMemory   StopReason = 4  // Memory limit reached, tree stopped growing
	StopCycles   StopReason = 16 // Cycle limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopMovetime, "Movetime"},
		{StopMemory, "Memory"},
		{StopCycles, "Cycles"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

func (sr StopReason) MarshalText() ([]byte, error) {
	return []byte(sr.String()), nil
}

// Decides when a single search ends, built fresh for every search call
type Limiter struct {
	limits  *Limits
	timer   *_Timer
	budget  time.Duration
	maxSize int
	reason  StopReason
}

func NewLimiter(limits *Limits, now func() time.Time) *Limiter {
	l := &Limiter{
		limits: limits,
		timer:  _NewTimer(now),
		budget: time.Duration(limits.Movetime) * time.Millisecond,
	}

	// Calculate 'nodes' based on memory
	bytesize := limits.ByteSize
	if bytesize == DefaultByteSizeLimit {
		bytesize = int64(memory.TotalMemory() / 4)
	}
	if bytesize > 0 {
		l.maxSize = int(max(bytesize/nodeSize, 1))
	} else {
		l.maxSize = math.MaxInt
	}
	return l
}

// Restart the clock, called right before the first iteration
func (l *Limiter) Reset() {
	l.timer.Reset()
	l.reason = StopNone
}

// Whether another iteration may start, given the number of completed ones.
// In time mode the average iteration time so far is used to predict if
// the next one would end past the budget.
func (l *Limiter) Ok(cycles int) bool {
	if l.limits.Mode == ModeIterations {
		if cycles < l.limits.Cycles {
			return true
		}
		l.reason |= StopCycles
		return false
	}

	elapsed := l.timer.Elapsed()
	var average time.Duration
	if cycles > 0 {
		average = elapsed / time.Duration(cycles)
	}
	if elapsed+average < l.budget {
		return true
	}
	l.reason |= StopMovetime
	return false
}

// Whether the tree of given size may grow
func (l *Limiter) Expand(size int) bool {
	if size < l.maxSize {
		return true
	}
	l.reason |= StopMemory
	return false
}

// Get elapsed time in ms (from the last 'Reset' call)
func (l *Limiter) Elapsed() int {
	return l.timer.Deltatime()
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}
