package bench

import (
	"github.com/rs/zerolog"
)

// Receives the arena's progress, called from the worker goroutines so
// implementations must be safe for concurrent use
type ListenerLike interface {
	OnStart(nGames, nWorkers int)
	OnFinishedGame(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
}

// Logs the progress with the given logger
type DefaultListener struct {
	logger zerolog.Logger
}

func NewDefaultListener(logger zerolog.Logger) *DefaultListener {
	return &DefaultListener{logger: logger}
}

func (d *DefaultListener) OnStart(nGames, nWorkers int) {
	d.logger.Info().Int("games", nGames).Int("workers", nWorkers).Msg("arena-started")
}

func (d *DefaultListener) OnFinishedGame(info VersusWorkerInfo) {
	d.logger.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.GameIndex).
		Int("moves", info.GameMoveNum).
		Stringer("result", info.Result).
		Bool("p1-first", info.P1WentFirst).
		Int("p1-wins", info.P1Wins).
		Int("p2-wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("game-finished")
}

func (d *DefaultListener) Summary(summary VersusSummaryInfo) {
	d.logger.Info().
		Int("games", summary.TotalGames).
		Int("p1-wins", summary.P1Wins).
		Int("p2-wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Float64("p1-score", summary.P1Score).
		Int64("elapsed-ms", summary.ElapsedMs).
		Msg("arena-finished")
}
