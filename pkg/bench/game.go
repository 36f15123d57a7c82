package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-uct/pkg/game"
	"github.com/samber/lo"
)

var (
	ErrNoMoves           = errors.New("bench: no legal moves")
	ErrIllegalPlayerMove = errors.New("bench: player chose an illegal move")
)

// A finished (or interrupted) game
type GameRecord struct {
	Moves   []game.Move
	Outcome GameOutcome
	// Result from the first mover's perspective
	Result float64
}

// Alternate the two players from given start position until the game ends,
// 'first' plays for the side to move in 'start'. Returns the context's
// error if it's cancelled between moves.
func PlayGame[S game.State[S]](ctx context.Context, first, second Player[S], start S) (GameRecord, error) {
	pos := start.Clone()
	firstSide := pos.PlayerJustMoved().Next()
	players := [2]Player[S]{first, second}
	record := GameRecord{Moves: make([]game.Move, 0, 81)}

	for ply := 0; ; ply++ {
		moves := pos.Moves()
		if len(moves) == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return record, err
		}

		player := players[ply%2]
		mv, err := player.Move(pos.Clone())
		if err != nil {
			return record, fmt.Errorf("%s: %w", player.Name(), err)
		}
		if !lo.Contains(moves, mv) {
			return record, fmt.Errorf("%w: %s played %s", ErrIllegalPlayerMove, player.Name(), mv)
		}

		pos.DoMove(mv)
		record.Moves = append(record.Moves, mv)
	}

	record.Result = pos.Result(firstSide)
	record.Outcome = GameOutcome{
		FirstPlayerWon: record.Result == 1.0,
		IsDraw:         record.Result == 0.5,
	}
	return record, nil
}
