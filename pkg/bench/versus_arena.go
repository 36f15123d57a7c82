package bench

import (
	"context"
	"time"

	"github.com/IlikeChooros/go-uct/pkg/game"
	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, allows to play a series of games between two
players and estimate the first one's win rate.
*/

type VersusArena[S game.State[S]] struct {
	VersusArenaStats
	Player1  PlayerFactory[S]
	Player2  PlayerFactory[S]
	NGames   int
	NWorkers int
	Position S
	listener ListenerLike
	logger   zerolog.Logger
}

func NewVersusArena[S game.State[S]](position S, player1, player2 PlayerFactory[S]) *VersusArena[S] {
	return &VersusArena[S]{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NWorkers: 2,
		Position: position,
		logger:   log.Logger,
	}
}

func (va *VersusArena[S]) Setup(nGames, nWorkers int) *VersusArena[S] {
	va.NGames = max(nGames, 0)
	va.NWorkers = max(nWorkers, 1)
	return va
}

func (va *VersusArena[S]) WithListener(listener ListenerLike) *VersusArena[S] {
	va.listener = listener
	return va
}

func (va *VersusArena[S]) WithLogger(logger zerolog.Logger) *VersusArena[S] {
	va.logger = logger
	return va
}

// Play all games, distributed between the workers. Every game gets its own
// players and position, sides alternate between games (player 1 moves first
// in even games). Stops early on the first error or when ctx is cancelled.
// Totals of a previous run are discarded.
func (va *VersusArena[S]) Run(ctx context.Context) (VersusSummaryInfo, error) {
	start := time.Now()
	va.reset()
	if va.listener != nil {
		va.listener.OnStart(va.NGames, va.NWorkers)
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range va.NGames {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})

	for id := range va.NWorkers {
		g.Go(func() error {
			for i := range jobs {
				if err := va.playOne(gctx, id, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	summary := va.summary(time.Since(start))
	if va.listener != nil {
		va.listener.Summary(summary)
	}
	if err != nil {
		va.logger.Error().Err(err).Int("finished", summary.TotalGames).Msg("arena-stopped")
	}
	return summary, err
}

func (va *VersusArena[S]) playOne(ctx context.Context, workerID, gameIndex int) error {
	p1, p2 := va.Player1(gameIndex), va.Player2(gameIndex)
	p1WentFirst := gameIndex%2 == 0

	first, second := p1, p2
	if !p1WentFirst {
		first, second = p2, p1
	}

	record, err := PlayGame(ctx, first, second, va.Position)
	if err != nil {
		return err
	}

	info := VersusWorkerInfo{
		WorkerID:    workerID,
		GameIndex:   gameIndex,
		Moves:       record.Moves,
		GameMoveNum: len(record.Moves),
		Result:      toAgentResult(record.Outcome, p1WentFirst),
		P1WentFirst: p1WentFirst,
		P1Name:      p1.Name(),
		P2Name:      p2.Name(),
	}
	info.P1Wins, info.P2Wins, info.Draws = va.record(info, record.Outcome, fingerprint(record.Moves))
	info.FinishedGames = info.P1Wins + info.P2Wins + info.Draws

	if va.listener != nil {
		va.listener.OnFinishedGame(info)
	}
	return nil
}

// Hash of the move sequence, identical games share a fingerprint
func fingerprint(moves []game.Move) uint64 {
	buf := make([]byte, len(moves))
	for i, mv := range moves {
		buf[i] = byte(mv)
	}
	return xxhash.Sum64(buf)
}
