package uttt

import (
	"github.com/IlikeChooros/go-uct/pkg/bitboard"
	"github.com/IlikeChooros/go-uct/pkg/game"
)

// Legal moves in ascending cell order, empty once the game is decided
func (p *Position) Moves() []game.Move {
	return p.AppendMoves(make([]game.Move, 0, 16))
}

func (p *Position) AppendMoves(dst []game.Move) []game.Move {
	if p.outcome.IsDecided() {
		return dst
	}

	var allowed bitboard.Board
	if target := p.Target(); target != -1 {
		allowed = bitboard.SubBoardMask(target)
	} else {
		// free move, any undecided sub-board
		for sub, o := range p.outcomes {
			if !o.IsDecided() {
				allowed = allowed.Union(bitboard.SubBoardMask(sub))
			}
		}
	}

	free := allowed.AndNot(p.boards[0].Union(p.boards[1]))
	for ; !free.IsEmpty(); free = free.ClearLowest() {
		dst = append(dst, game.Move(free.Lowest()))
	}
	return dst
}
