package main

/*

Runs a single search and prints the board, the recommended move and the
search statistics.

	search --position "9/9/9/9/4x4/9/9/9/9 o 4" --mode iterations --cycles 50000
	search --game ttt --movetime 200

*/

import (
	"fmt"
	"os"

	"github.com/IlikeChooros/go-uct/internal/config"
	"github.com/IlikeChooros/go-uct/internal/render"
	"github.com/IlikeChooros/go-uct/pkg/game"
	"github.com/IlikeChooros/go-uct/pkg/mcts"
	"github.com/IlikeChooros/go-uct/pkg/ttt"
	"github.com/IlikeChooros/go-uct/pkg/uttt"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	out := termenv.NewOutput(os.Stdout)

	switch cfg.Game {
	case "ttt":
		search(out, &cfg, ttt.NewPosition())
	default:
		pos, err := uttt.FromNotation(cfg.Position)
		if err != nil {
			log.Fatal().Err(err).Str("position", cfg.Position).Msg("invalid-position")
		}
		search(out, &cfg, pos)
	}
}

func search[S interface {
	game.State[S]
	fmt.Stringer
}](out *termenv.Output, cfg *config.Config, pos S) {
	seed := cfg.Seed
	if seed == 0 {
		seed = mcts.SeedGeneratorFn()
	}

	listener := mcts.NewStatsListener().
		SetCycleInterval(max(cfg.Search.Cycles/10, 1000)).
		OnCycle(func(stats mcts.ListenerTreeStats) {
			log.Debug().
				Int("cycles", stats.Cycles).
				Int("depth", stats.Maxdepth).
				Uint32("cps", stats.Cps).
				Float64("eval", stats.Eval).
				Interface("pv", stats.Pv).
				Msg("search-progress")
		})

	engine := mcts.NewEngine[S](
		mcts.WithLimits(cfg.Limits()),
		mcts.WithRand(mcts.NewRand(cfg.RandKind(), seed)),
		mcts.WithMaxRolloutLength(cfg.Search.MaxRollout),
		mcts.WithListener(listener),
	)

	fmt.Println(render.Board(out, pos.String()))
	result, err := engine.SearchResult(pos)
	if err != nil {
		log.Fatal().Err(err).Msg("search-failed")
	}

	fmt.Println(render.Field(out, "bestmove", result.BestMove.String()))
	fmt.Println(render.Field(out, "eval", fmt.Sprintf("%.3f", result.Eval)))
	fmt.Println(render.Field(out, "pv", fmt.Sprint(result.Pv)))
	fmt.Println(render.Field(out, "stats", fmt.Sprintf("cycles %d time %dms cps %d depth %d nodes %d stop %s",
		result.Cycles, result.TimeMs, result.Cps, result.Depth, result.Size, result.StopReason)))

	after := pos.Clone()
	after.DoMove(result.BestMove)
	fmt.Println()
	fmt.Println(render.Board(out, after.String()))
}
