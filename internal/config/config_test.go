package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := Config{}
	is.NoErr(c.Load(nil))

	is.Equal(c.Game, "uttt")
	is.Equal(c.Position, "startpos")
	is.Equal(c.Search.Mode, "time")
	is.Equal(c.Search.Movetime, mcts.DefaultMovetimeLimit)
	is.Equal(c.Arena.Games, 100)
	is.Equal(c.Arena.Workers, 2)
	is.Equal(c.Arena.Opponent, "random")
	is.Equal(c.Level(), zerolog.InfoLevel)
	is.Equal(c.RandKind(), mcts.RandDefault)

	limits := c.Limits()
	is.Equal(limits.Mode, mcts.ModeTime)
	is.Equal(limits.Movetime, mcts.DefaultMovetimeLimit)
	is.Equal(limits.ByteSize, mcts.DefaultByteSizeLimit)
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	c := Config{}
	is.NoErr(c.Load([]string{
		"--game", "ttt", "--mode", "iterations", "--cycles", "500",
		"--rand", "mt19937", "--seed", "12", "--mbsize", "64",
	}))

	is.Equal(c.Game, "ttt")
	is.Equal(c.Seed, int64(12))
	is.Equal(c.RandKind(), mcts.RandMT19937)

	limits := c.Limits()
	is.Equal(limits.Mode, mcts.ModeIterations)
	is.Equal(limits.Cycles, 500)
	is.Equal(limits.ByteSize, int64(64<<20))
}

func TestEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("UCT_SEARCH_MOVETIME", "250")
	t.Setenv("UCT_ARENA_OPPONENT", "tactical")

	c := Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.Search.Movetime, 250)
	is.Equal(c.Arena.Opponent, "tactical")

	// flags win over the environment
	is.NoErr(c.Load([]string{"--movetime", "75"}))
	is.Equal(c.Search.Movetime, 75)
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "uct.yaml")
	content := `
game: ttt
log_level: debug
search:
  mode: iterations
  cycles: 2000
arena:
  games: 10
  workers: 4
  opponent: uct
`
	is.NoErr(os.WriteFile(path, []byte(content), 0o644))

	c := Config{}
	is.NoErr(c.Load([]string{"--config", path, "--workers", "8"}))
	is.Equal(c.Game, "ttt")
	is.Equal(c.Level(), zerolog.DebugLevel)
	is.Equal(c.Search.Cycles, 2000)
	is.Equal(c.Arena.Games, 10)
	is.Equal(c.Arena.Workers, 8)
	is.Equal(c.Arena.Opponent, "uct")
	is.Equal(c.Limits().Mode, mcts.ModeIterations)
}

func TestInvalid(t *testing.T) {
	is := is.New(t)
	for _, args := range [][]string{
		{"--game", "chess"},
		{"--opponent", "human"},
		{"--mode", "forever"},
		{"--rand", "dice"},
		{"--movetime", "-1"},
		{"--workers", "0"},
		{"--max-rollout", "0"},
		{"--log-level", "loud"},
		{"--movetime", "0"},
		{"--mode", "iterations", "--cycles", "0"},
	} {
		c := Config{}
		err := c.Load(args)
		is.True(errors.Is(err, ErrInvalidConfig)) // invalid config must be rejected
	}

	c := Config{}
	is.True(c.Load([]string{"--config", "/nonexistent/uct.yaml"}) != nil)
}

func TestInactiveBudgetIgnored(t *testing.T) {
	is := is.New(t)
	c := Config{}
	// cycles only matter in iterations mode
	is.NoErr(c.Load([]string{"--mode", "time", "--cycles", "0"}))
	is.NoErr(c.Load([]string{"--mode", "iterations", "--movetime", "0"}))
	is.Equal(c.Limits().Mode, mcts.ModeIterations)
}
