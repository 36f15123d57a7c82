package mcts

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-uct/pkg/game"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Statistics of a single root child after the search
type ChildStats struct {
	Move   game.Move `json:"move" yaml:"move"`
	Visits int32     `json:"visits" yaml:"visits"`
	Eval   float64   `json:"eval" yaml:"eval"`
}

// Struct holding information about the outcome of a search
type SearchResult struct {
	BestMove   game.Move    `json:"bestmove" yaml:"bestmove"`
	Eval       float64      `json:"eval" yaml:"eval"`
	Pv         []game.Move  `json:"pv" yaml:"pv"`
	Children   []ChildStats `json:"children" yaml:"children"`
	Cycles     int          `json:"cycles" yaml:"cycles"`
	TimeMs     int          `json:"time_ms" yaml:"time_ms"`
	Cps        uint32       `json:"cps" yaml:"cps"`
	Depth      int          `json:"depth" yaml:"depth"`
	Size       int          `json:"size" yaml:"size"`
	StopReason StopReason   `json:"stop_reason" yaml:"stop_reason"`
}

func (s SearchResult) String() string {
	if s.BestMove == game.NoMove {
		return fmt.Sprintf("eval NaN depth %d cps %d nodes %d cycles %d pv empty",
			s.Depth, s.Cps, s.Size, s.Cycles)
	}
	return fmt.Sprintf("bestmove %s eval %.2f depth %d cps %d nodes %d cycles %d stop %s pv %v",
		s.BestMove, s.Eval, s.Depth, s.Cps, s.Size, s.Cycles, s.StopReason, s.Pv)
}

type engineConfig struct {
	limits     *Limits
	rand       *rand.Rand
	logger     zerolog.Logger
	listener   *StatsListener
	maxRollout int
	now        func() time.Time
}

type Option func(*engineConfig)

func WithLimits(limits *Limits) Option {
	return func(c *engineConfig) { c.limits = limits }
}

// Use given random number generator for expansion and rollouts
func WithRand(r *rand.Rand) Option {
	return func(c *engineConfig) { c.rand = r }
}

// Seed a default random number generator
func WithSeed(seed int64) Option {
	return WithRand(NewRand(RandDefault, seed))
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

func WithListener(listener *StatsListener) Option {
	return func(c *engineConfig) { c.listener = listener }
}

func WithMaxRolloutLength(n int) Option {
	return func(c *engineConfig) { c.maxRollout = max(n, 1) }
}

// Clock used by the time budget
func WithClock(now func() time.Time) Option {
	return func(c *engineConfig) { c.now = now }
}

// Single threaded UCT search over any game.State, the engine itself keeps
// no tree between searches. Not safe for concurrent use, since it owns
// its random number generator.
type Engine[S game.State[S]] struct {
	engineConfig
	moves []game.Move // rollout buffer
}

func NewEngine[S game.State[S]](opts ...Option) *Engine[S] {
	e := &Engine[S]{
		engineConfig: engineConfig{
			limits:     DefaultLimits(),
			logger:     log.Logger,
			maxRollout: DefaultMaxRolloutLength,
			now:        time.Now,
		},
		moves: make([]game.Move, 0, 81),
	}
	for _, opt := range opts {
		opt(&e.engineConfig)
	}
	if e.rand == nil {
		e.rand = NewRand(RandDefault, SeedGeneratorFn())
	}
	return e
}

func (e *Engine[S]) SetLimits(limits *Limits) {
	e.limits = limits
}

func (e *Engine[S]) Limits() *Limits {
	return e.limits
}

func (e *Engine[S]) SetListener(listener *StatsListener) {
	e.listener = listener
}

// Run the search from given state and return the recommended move
func (e *Engine[S]) Search(root S) (game.Move, error) {
	result, err := e.SearchResult(root)
	return result.BestMove, err
}
