package uttt

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-uct/pkg/bitboard"
	"github.com/IlikeChooros/go-uct/pkg/game"
)

const StartingPosition = "9/9/9/9/9/9/9/9/9 x -"

// string notation for the ultimate tic tac toe position,
// much like the FEN representation of a chessboard:
//
//	S/S/S/S/S/S/S/S/S <turn> <target>
//
// where each `S` is one sub-board (0-8, row-major), its cells written in
// local order: 'x' and 'o' for pieces, a digit for a run of empty cells.
// For example the sub-board
//
//	o | x | x
//	x | o |
//	o |   |
//
// is written as oxxxo1o2.
//
// <turn> - side to move, 'x' (player one) or 'o'
//
// <target> - sub-board the side to move is sent to, 0-8, or '-' if it
// may play anywhere. A target must be an undecided sub-board and needs at
// least one move on the board.
//
// Examples:
//
//   - 9/9/9/9/9/9/9/9/9 x -
//   - 9/9/9/7x1/4xo3/8x/9/4o4/o8 x 0
func (p *Position) Notation() string {
	builder := strings.Builder{}

	for sub := range 9 {
		if sub > 0 {
			builder.WriteByte('/')
		}

		counter := 0
		for local := range 9 {
			piece := p.At(bitboard.TranslateLocalToGlobal(local, sub))
			if piece == game.NoPlayer {
				counter++
				continue
			}
			if counter > 0 {
				builder.WriteByte('0' + byte(counter))
				counter = 0
			}
			builder.WriteString(piece.String())
		}
		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}
	}

	builder.WriteByte(' ')
	builder.WriteString(p.Turn().String())

	builder.WriteByte(' ')
	if target := p.Target(); target == -1 {
		builder.WriteByte('-')
	} else {
		builder.WriteByte('0' + byte(target))
	}

	return builder.String()
}

// Create the position from given notation string, "startpos" is accepted
// as an alias of the starting position
func FromNotation(notation string) (*Position, error) {
	if notation == "startpos" {
		notation = StartingPosition
	}

	fields := strings.Fields(notation)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 space separated sections, got %d",
			ErrInvalidPosition, len(fields))
	}

	sections := strings.Split(fields[0], "/")
	if len(sections) != 9 {
		return nil, fmt.Errorf("%w: expected 9 sub-boards, got %d", ErrInvalidPosition, len(sections))
	}

	pos := NewPosition()
	for sub, section := range sections {
		local := 0
		for i, v := range section {
			switch {
			case v == 'x' || v == 'o':
				if local >= 9 {
					return nil, fmt.Errorf("%w: too many cells in sub-board %d", ErrInvalidPosition, sub)
				}
				idx := 0
				if v == 'o' {
					idx = 1
				}
				cell := bitboard.TranslateLocalToGlobal(local, sub)
				pos.boards[idx] = pos.boards[idx].Occupy(cell)
				local++
			case '1' <= v && v <= '9':
				local += int(v - '0')
			default:
				return nil, fmt.Errorf("%w: invalid token %q in sub-board %d at %d",
					ErrInvalidPosition, v, sub, i)
			}
		}
		if local != 9 {
			return nil, fmt.Errorf("%w: sub-board %d has %d cells", ErrInvalidPosition, sub, local)
		}
	}

	if err := pos.setupBoardState(); err != nil {
		return nil, err
	}

	ones, twos := pos.boards[0].Count(), pos.boards[1].Count()
	switch fields[1] {
	case "x":
		if ones != twos {
			return nil, fmt.Errorf("%w: x to move with %d x and %d o pieces", ErrInvalidPosition, ones, twos)
		}
		if ones > 0 {
			pos.justMoved = game.PlayerTwo
		}
	case "o":
		if ones != twos+1 {
			return nil, fmt.Errorf("%w: o to move with %d x and %d o pieces", ErrInvalidPosition, ones, twos)
		}
		pos.justMoved = game.PlayerOne
	default:
		return nil, fmt.Errorf("%w: invalid side %q", ErrInvalidPosition, fields[1])
	}

	switch t := fields[2]; {
	case t == "-":
		pos.sendTo = -1
	case len(t) == 1 && '0' <= t[0] && t[0] <= '8':
		sub := int(t[0] - '0')
		if ones == 0 {
			return nil, fmt.Errorf("%w: target %d before the first move", ErrInvalidPosition, sub)
		}
		if pos.outcomes[sub].IsDecided() {
			return nil, fmt.Errorf("%w: target %d is already %s", ErrInvalidPosition, sub, pos.outcomes[sub])
		}
		pos.sendTo = int8(sub)
	default:
		return nil, fmt.Errorf("%w: invalid target %q, expected a digit 0-8 or '-'", ErrInvalidPosition, t)
	}

	return pos, nil
}
