package main

/*

Plays a series of games between the UCT engine and an opponent (random,
tactical or another UCT engine) and reports the engine's score.

	arena --game uttt --games 200 --workers 4 --mode iterations --cycles 2000
	UCT_ARENA_OPPONENT=tactical arena --report summary.yaml

*/

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/IlikeChooros/go-uct/internal/config"
	"github.com/IlikeChooros/go-uct/internal/render"
	"github.com/IlikeChooros/go-uct/pkg/bench"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = mcts.SeedGeneratorFn()
	}
	log.Info().Str("game", cfg.Game).Int64("seed", seed).Str("limits", cfg.Limits().String()).Msg("config-loaded")

	var (
		summary bench.VersusSummaryInfo
		err     error
	)
	switch cfg.Game {
	case "ttt":
		summary, err = run(ctx, &cfg, seed, ttt.NewPosition())
	default:
		summary, err = run(ctx, &cfg, seed, uttt.NewPosition())
	}
	if err != nil {
		log.Error().Err(err).Msg("arena-failed")
	}

	out := termenv.NewOutput(os.Stdout)
	fmt.Println(render.Field(out, "games", fmt.Sprintf("%d (%d unique)", summary.TotalGames, summary.UniqueGames)))
	fmt.Println(render.Field(out, summary.P1Name, fmt.Sprintf("%d wins", summary.P1Wins)))
	fmt.Println(render.Field(out, summary.P2Name, fmt.Sprintf("%d wins", summary.P2Wins)))
	fmt.Println(render.Field(out, "draws", fmt.Sprint(summary.Draws)))
	fmt.Println(render.Field(out, "first/second to move wins",
		fmt.Sprintf("%d/%d", summary.FirstToMoveWins, summary.SecondToMoveWins)))
	fmt.Println(render.Field(out, "score", fmt.Sprintf("%.3f [%.3f, %.3f]",
		summary.P1Score, summary.P1ScoreLow, summary.P1ScoreHigh)))

	if cfg.Arena.Report != "" {
		if err := writeReport(cfg.Arena.Report, summary); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Arena.Report).Msg("report-failed")
		}
		log.Info().Str("path", cfg.Arena.Report).Msg("report-written")
	}

	if err != nil {
		os.Exit(1)
	}
}

func run[S game.State[S]](ctx context.Context, cfg *config.Config, seed int64, start S) (bench.VersusSummaryInfo, error) {
	uct := func(name string, offset int64) bench.PlayerFactory[S] {
		return func(i int) bench.Player[S] {
			return bench.NewUCTPlayer[S](name,
				mcts.WithLimits(cfg.Limits()),
				mcts.WithRand(mcts.NewRand(cfg.RandKind(), seed+offset+int64(i))),
				mcts.WithMaxRolloutLength(cfg.Search.MaxRollout),
			)
		}
	}

	var opponent bench.PlayerFactory[S]
	switch cfg.Arena.Opponent {
	case "tactical":
		opponent = func(i int) bench.Player[S] { return bench.NewTacticalPlayer[S](seed + int64(i)) }
	case "uct":
		opponent = uct("uct-2", 1<<32)
	default:
		opponent = func(i int) bench.Player[S] { return bench.NewRandomPlayer[S](seed + int64(i)) }
	}

	return bench.NewVersusArena(start, uct("uct", 0), opponent).
		Setup(cfg.Arena.Games, cfg.Arena.Workers).
		WithListener(bench.NewDefaultListener(log.Logger)).
		WithLogger(log.Logger).
		Run(ctx)
}

func writeReport(path string, summary bench.VersusSummaryInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return summary.WriteYAML(f)
}
