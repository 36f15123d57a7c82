package ttt

import "github.com/IlikeChooros/go-uct/pkg/bitboard"

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationCircleWon:
		return "circle-won"
	case TerminationCrossWon:
		return "cross-won"
	case TerminationDraw:
		return "draw"
	}
	return "none"
}

func checkTermination(crossbb, circlebb uint16) Termination {
	if bitboard.CheckSmallWin(crossbb) {
		return TerminationCrossWon
	}
	if bitboard.CheckSmallWin(circlebb) {
		return TerminationCircleWon
	}

	// If not, check if that's a draw (this square is fully filled)
	if crossbb|circlebb == bitboard.Full {
		return TerminationDraw
	}
	return TerminationNone
}
