package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "UCT"

var ErrInvalidConfig = errors.New("invalid config")

type SearchConfig struct {
	Mode       string `mapstructure:"mode" yaml:"mode"`
	Movetime   int    `mapstructure:"movetime" yaml:"movetime"`
	Cycles     int    `mapstructure:"cycles" yaml:"cycles"`
	MaxRollout int    `mapstructure:"max_rollout" yaml:"max_rollout"`
	MbSize     int    `mapstructure:"mbsize" yaml:"mbsize"`
}

type ArenaConfig struct {
	Games    int    `mapstructure:"games" yaml:"games"`
	Workers  int    `mapstructure:"workers" yaml:"workers"`
	Opponent string `mapstructure:"opponent" yaml:"opponent"`
	Report   string `mapstructure:"report" yaml:"report"`
}

type Config struct {
	Game     string       `mapstructure:"game" yaml:"game"`
	Position string       `mapstructure:"position" yaml:"position"`
	Seed     int64        `mapstructure:"seed" yaml:"seed"`
	Rand     string       `mapstructure:"rand" yaml:"rand"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Search   SearchConfig `mapstructure:"search" yaml:"search"`
	Arena    ArenaConfig  `mapstructure:"arena" yaml:"arena"`
}

type flagSpec struct {
	key   string
	name  string
	value any
	usage string
}

var _flags = []flagSpec{
	{"game", "game", "uttt", "game to play: uttt or ttt"},
	{"position", "position", "startpos", "ultimate tic tac toe notation to search from"},
	{"seed", "seed", int64(0), "random seed, 0 draws a random one"},
	{"rand", "rand", "default", "random source: default or mt19937"},
	{"log_level", "log-level", "info", "log level: trace, debug, info, warn, error"},
	{"search.mode", "mode", "time", "search budget: time or iterations"},
	{"search.movetime", "movetime", mcts.DefaultMovetimeLimit, "time budget per move in milliseconds"},
	{"search.cycles", "cycles", mcts.DefaultCyclesLimit, "iterations per move"},
	{"search.max_rollout", "max-rollout", mcts.DefaultMaxRolloutLength, "maximum length of a single rollout"},
	{"search.mbsize", "mbsize", 0, "tree size limit in MiB, 0 derives it from the machine's memory"},
	{"arena.games", "games", 100, "number of arena games"},
	{"arena.workers", "workers", 2, "number of games played in parallel"},
	{"arena.opponent", "opponent", "random", "uct's opponent: random, tactical or uct"},
	{"arena.report", "report", "", "write the arena summary as yaml to this path"},
}

// Load the configuration, later sources override earlier ones: defaults,
// the config file (--config), UCT_ prefixed environment variables, flags
func (c *Config) Load(args []string) error {
	v := viper.New()
	fs := pflag.NewFlagSet("uct", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to a yaml, json or toml config file")

	for _, f := range _flags {
		v.SetDefault(f.key, f.value)
		switch value := f.value.(type) {
		case string:
			fs.String(f.name, value, f.usage)
		case int:
			fs.Int(f.name, value, f.usage)
		case int64:
			fs.Int64(f.name, value, f.usage)
		}
		if err := v.BindPFlag(f.key, fs.Lookup(f.name)); err != nil {
			return err
		}
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", *configPath, err)
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.Game {
	case "uttt", "ttt":
	default:
		return fmt.Errorf("%w: unknown game %q", ErrInvalidConfig, c.Game)
	}

	switch c.Arena.Opponent {
	case "random", "tactical", "uct":
	default:
		return fmt.Errorf("%w: unknown opponent %q", ErrInvalidConfig, c.Arena.Opponent)
	}

	mode, err := mcts.ParseLimitMode(c.Search.Mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	// the active budget must allow at least one iteration
	switch {
	case mode == mcts.ModeIterations && c.Search.Cycles < 1:
		return fmt.Errorf("%w: iterations mode needs positive cycles, got %d", ErrInvalidConfig, c.Search.Cycles)
	case mode == mcts.ModeTime && c.Search.Movetime < 1:
		return fmt.Errorf("%w: time mode needs positive movetime, got %d", ErrInvalidConfig, c.Search.Movetime)
	}
	if _, err := mcts.ParseRandKind(c.Rand); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch {
	case c.Search.Movetime < 0:
		return fmt.Errorf("%w: negative movetime %d", ErrInvalidConfig, c.Search.Movetime)
	case c.Search.Cycles < 0:
		return fmt.Errorf("%w: negative cycles %d", ErrInvalidConfig, c.Search.Cycles)
	case c.Search.MaxRollout < 1:
		return fmt.Errorf("%w: max rollout must be positive, got %d", ErrInvalidConfig, c.Search.MaxRollout)
	case c.Search.MbSize < 0:
		return fmt.Errorf("%w: negative mbsize %d", ErrInvalidConfig, c.Search.MbSize)
	case c.Arena.Games < 0:
		return fmt.Errorf("%w: negative number of games %d", ErrInvalidConfig, c.Arena.Games)
	case c.Arena.Workers < 1:
		return fmt.Errorf("%w: at least one worker required, got %d", ErrInvalidConfig, c.Arena.Workers)
	}
	return nil
}

// Search budget described by the config
func (c *Config) Limits() *mcts.Limits {
	limits := mcts.DefaultLimits()
	if mode, _ := mcts.ParseLimitMode(c.Search.Mode); mode == mcts.ModeIterations {
		limits.SetCycles(c.Search.Cycles)
	} else {
		limits.SetMovetime(c.Search.Movetime)
	}
	if c.Search.MbSize > 0 {
		limits.SetMbSize(c.Search.MbSize)
	}
	return limits
}

func (c *Config) RandKind() mcts.RandKind {
	kind, _ := mcts.ParseRandKind(c.Rand)
	return kind
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
