package mcts

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Which budget ends the search, exactly one is active
type LimitMode int

const (
	ModeTime LimitMode = iota
	ModeIterations
)

func (m LimitMode) String() string {
	if m == ModeIterations {
		return "iterations"
	}
	return "time"
}

func (m LimitMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *LimitMode) UnmarshalText(text []byte) error {
	mode, err := ParseLimitMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func ParseLimitMode(s string) (LimitMode, error) {
	switch strings.ToLower(s) {
	case "time", "movetime":
		return ModeTime, nil
	case "iterations", "cycles":
		return ModeIterations, nil
	}
	return ModeTime, fmt.Errorf("mcts: unknown limit mode %q", s)
}

type Limits struct {
	Mode     LimitMode `json:"mode"`
	Cycles   int       `json:"cycles"`
	Movetime int       `json:"movetime"`
	ByteSize int64     `json:"bytesize"`
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

const (
	DefaultMovetimeLimit int   = 1000
	DefaultCyclesLimit   int   = 10000
	DefaultByteSizeLimit int64 = -1 // derived from the machine's memory
)

func DefaultLimits() *Limits {
	return &Limits{
		Mode:     ModeTime,
		Cycles:   DefaultCyclesLimit,
		Movetime: DefaultMovetimeLimit,
		ByteSize: DefaultByteSizeLimit,
	}
}

// Set the number of iterations of the search, switches to iteration mode
func (l *Limits) SetCycles(cycles int) *Limits {
	l.Cycles = max(cycles, 0)
	l.Mode = ModeIterations
	return l
}

// Set the maximum time for engine to think in milliseconds, switches to time mode
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = max(movetime, 0)
	l.Mode = ModeTime
	return l
}

func (l *Limits) SetMbSize(mbsize int) *Limits {
	return l.SetByteSize(int64(mbsize) * (1 << 20))
}

// Cap the tree size, once reached the tree stops growing and the search
// keeps running rollouts from the existing leaves
func (l *Limits) SetByteSize(bytesize int64) *Limits {
	l.ByteSize = bytesize
	return l
}
