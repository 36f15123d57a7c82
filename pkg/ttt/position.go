package ttt

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/IlikeChooros/go-uct/pkg/bitboard"
	"github.com/IlikeChooros/go-uct/pkg/game"
	"github.com/samber/lo"
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidPosition = errors.New("invalid position")
)

// Single 3x3 tic tac toe board
type Position struct {
	bitboards   [2]uint16 // [PlayerOne, PlayerTwo]
	justMoved   game.Player
	lastMove    game.Move
	termination Termination
}

func NewPosition() *Position {
	return &Position{lastMove: game.NoMove}
}

// Build a position from a cell array (local order, row-major), the side
// that just moved is deduced from the piece counts
func NewPositionFrom(cells [9]game.Player) (*Position, error) {
	if c, ok := lo.Find(cells[:], func(c game.Player) bool { return c > game.PlayerTwo }); ok {
		return nil, fmt.Errorf("%w: unknown player %d", ErrInvalidPosition, c)
	}

	ones := lo.Count(cells[:], game.PlayerOne)
	twos := lo.Count(cells[:], game.PlayerTwo)

	p := NewPosition()
	switch {
	case ones == twos && ones == 0:
		p.justMoved = game.NoPlayer
	case ones == twos:
		p.justMoved = game.PlayerTwo
	case ones == twos+1:
		p.justMoved = game.PlayerOne
	default:
		return nil, fmt.Errorf("%w: %d x and %d o pieces", ErrInvalidPosition, ones, twos)
	}

	for i, c := range cells {
		if c != game.NoPlayer {
			p.bitboards[c-1] |= 1 << i
		}
	}
	p.termination = checkTermination(p.bitboards[0], p.bitboards[1])
	return p, nil
}

func (p *Position) Clone() *Position {
	c := *p
	return &c
}

func (p *Position) PlayerJustMoved() game.Player {
	return p.justMoved
}

func (p *Position) Turn() game.Player {
	return p.justMoved.Next()
}

func (p *Position) LastMove() game.Move {
	return p.lastMove
}

func (p *Position) Termination() Termination {
	return p.termination
}

// Player occupying given cell, NoPlayer if it's empty
func (p *Position) At(cell int) game.Player {
	switch {
	case p.bitboards[0]&(1<<cell) != 0:
		return game.PlayerOne
	case p.bitboards[1]&(1<<cell) != 0:
		return game.PlayerTwo
	}
	return game.NoPlayer
}

func (p *Position) IsLegal(move game.Move) bool {
	return move >= 0 && move < 9 &&
		p.termination == TerminationNone &&
		(p.bitboards[0]|p.bitboards[1])&(1<<move) == 0
}

// Verifies legality of given move, then if it's valid, makes it on the board
func (p *Position) MakeLegalMove(move game.Move) error {
	if !p.IsLegal(move) {
		return fmt.Errorf("%w: %s, possible moves=%v", ErrIllegalMove, move, p.Moves())
	}
	p.DoMove(move)
	return nil
}

// Make a move for the side to move, panics on illegal moves
func (p *Position) DoMove(move game.Move) {
	if !p.IsLegal(move) {
		panic(fmt.Errorf("ttt: %w: %s", ErrIllegalMove, move))
	}

	mover := p.Turn()
	p.bitboards[mover-1] |= 1 << move
	p.justMoved = mover
	p.lastMove = move
	p.termination = checkTermination(p.bitboards[0], p.bitboards[1])
}

func (p *Position) Moves() []game.Move {
	return p.AppendMoves(make([]game.Move, 0, 9))
}

func (p *Position) AppendMoves(dst []game.Move) []game.Move {
	if p.termination != TerminationNone {
		return dst
	}

	free := uint(bitboard.Full ^ (p.bitboards[0] | p.bitboards[1]))
	for free != 0 {
		dst = append(dst, game.Move(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return dst
}

// 1.0 if given player completed a line, 0.0 if the opponent did, 0.5 otherwise
func (p *Position) Result(player game.Player) float64 {
	switch p.termination {
	case TerminationCrossWon:
		if player == game.PlayerOne {
			return 1.0
		}
		return 0.0
	case TerminationCircleWon:
		if player == game.PlayerTwo {
			return 1.0
		}
		return 0.0
	}
	return 0.5
}

func (p *Position) String() string {
	builder := strings.Builder{}
	for row := range 3 {
		if row > 0 {
			builder.WriteString("---------\n")
		}
		for col := range 3 {
			if col > 0 {
				builder.WriteString(" | ")
			}
			switch p.At(row*3 + col) {
			case game.PlayerOne:
				builder.WriteByte('x')
			case game.PlayerTwo:
				builder.WriteByte('o')
			default:
				builder.WriteByte('.')
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
