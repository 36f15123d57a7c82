package uttt

import (
	"errors"
	"fmt"

	"github.com/IlikeChooros/go-uct/pkg/bitboard"
	"github.com/IlikeChooros/go-uct/pkg/game"
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidPosition = errors.New("invalid position")
)

// Ultimate tic tac toe position, moves are global cell indices 0-80
// (row-major over the 9x9 grid)
type Position struct {
	boards    [2]bitboard.Board // [PlayerOne, PlayerTwo], always disjoint
	outcomes  [9]Outcome
	outcome   Outcome
	justMoved game.Player
	lastMove  game.Move
	// Sub-board the next player is sent to, -1 before the first move
	sendTo int8
}

func NewPosition() *Position {
	return &Position{lastMove: game.NoMove, sendTo: -1}
}

// Make a deep copy of the position (has no shared memory with this object)
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

func (p *Position) PlayerJustMoved() game.Player {
	return p.justMoved
}

// Side to move
func (p *Position) Turn() game.Player {
	return p.justMoved.Next()
}

func (p *Position) LastMove() game.Move {
	return p.lastMove
}

// State of the whole game
func (p *Position) Outcome() Outcome {
	return p.outcome
}

func (p *Position) SubBoardOutcomes() [9]Outcome {
	return p.outcomes
}

// Sub-board the side to move must play in, -1 if it may play in any
// undecided sub-board
func (p *Position) Target() int {
	if p.sendTo < 0 || p.outcomes[p.sendTo].IsDecided() {
		return -1
	}
	return int(p.sendTo)
}

// Player occupying given cell, NoPlayer if it's empty
func (p *Position) At(cell int) game.Player {
	switch {
	case p.boards[0].Has(cell):
		return game.PlayerOne
	case p.boards[1].Has(cell):
		return game.PlayerTwo
	}
	return game.NoPlayer
}

// Check if given move is legal
func (p *Position) IsLegal(move game.Move) bool {
	if move < 0 || move >= bitboard.Cells || p.outcome.IsDecided() {
		return false
	}

	cell := int(move)
	sub := bitboard.SubBoardOf(cell)
	if target := p.Target(); target != -1 && target != sub {
		return false
	}

	return !p.outcomes[sub].IsDecided() && p.At(cell) == game.NoPlayer
}

// Verifies legality of given move, then if it's valid, makes it on the board
func (p *Position) MakeLegalMove(move game.Move) error {
	if !p.IsLegal(move) {
		return fmt.Errorf("%w: %s, possible moves=%v", ErrIllegalMove, move, p.Moves())
	}
	p.DoMove(move)
	return nil
}

// Put the side to move's piece on given cell, update the sub-board and
// super-board states and send the opponent to the matching sub-board.
// Panics if the move is illegal.
func (p *Position) DoMove(move game.Move) {
	if !p.IsLegal(move) {
		panic(fmt.Errorf("uttt: %w: %s", ErrIllegalMove, move))
	}

	cell := int(move)
	sub := bitboard.SubBoardOf(cell)
	mover := p.Turn()
	idx := mover - 1

	p.boards[idx] = p.boards[idx].Occupy(cell)
	p.outcomes[sub] = checkSubBoard(
		p.boards[0].ExtractSubBoard(sub), p.boards[1].ExtractSubBoard(sub),
	)
	if p.outcomes[sub].IsDecided() {
		p.outcome = checkSuperBoard(&p.outcomes)
	}

	p.justMoved = mover
	p.lastMove = move
	p.sendTo = int8(bitboard.LocalIndexOf(cell))
}

// Score from the perspective of given player: 1.0 for a win, 0.0 for a
// loss, 0.5 for a draw or an unfinished game
func (p *Position) Result(player game.Player) float64 {
	switch p.outcome.Winner() {
	case game.NoPlayer:
		return 0.5
	case player:
		return 1.0
	}
	return 0.0
}

// Recompute every derived field from the bitboards
func (p *Position) setupBoardState() error {
	if p.boards[0].Intersects(p.boards[1]) {
		return fmt.Errorf("%w: overlapping pieces", ErrInvalidPosition)
	}

	for sub := range 9 {
		one := p.boards[0].ExtractSubBoard(sub)
		two := p.boards[1].ExtractSubBoard(sub)
		if bitboard.CheckSmallWin(one) && bitboard.CheckSmallWin(two) {
			return fmt.Errorf("%w: both players won sub-board %d", ErrInvalidPosition, sub)
		}
		p.outcomes[sub] = checkSubBoard(one, two)
	}
	if one, two := superLines(&p.outcomes); one && two {
		return fmt.Errorf("%w: both players have a line of sub-boards", ErrInvalidPosition)
	}
	p.outcome = checkSuperBoard(&p.outcomes)
	return nil
}
