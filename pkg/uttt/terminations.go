package uttt

import (
	"github.com/IlikeChooros/go-uct/pkg/bitboard"
	"github.com/IlikeChooros/go-uct/pkg/game"
)

// State of a small board, or of the whole super-board
type Outcome uint8

const (
	Undecided Outcome = iota
	WonByOne
	WonByTwo
	Drawn
)

func (o Outcome) String() string {
	switch o {
	case WonByOne:
		return "won-by-one"
	case WonByTwo:
		return "won-by-two"
	case Drawn:
		return "drawn"
	}
	return "undecided"
}

func (o Outcome) IsDecided() bool {
	return o != Undecided
}

// Player that won, NoPlayer for undecided and drawn boards
func (o Outcome) Winner() game.Player {
	switch o {
	case WonByOne:
		return game.PlayerOne
	case WonByTwo:
		return game.PlayerTwo
	}
	return game.NoPlayer
}

func wonBy(p game.Player) Outcome {
	if p == game.PlayerOne {
		return WonByOne
	}
	return WonByTwo
}

// lines of the super-board, as sub-board indices
var _patterns = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Resolve given small board from both players' patterns
func checkSubBoard(one, two uint16) Outcome {
	if bitboard.CheckSmallWin(one) {
		return WonByOne
	}
	if bitboard.CheckSmallWin(two) {
		return WonByTwo
	}
	if one|two == bitboard.Full {
		return Drawn
	}
	return Undecided
}

// Whether each player has a line of won sub-boards
func superLines(outcomes *[9]Outcome) (one, two bool) {
	for _, line := range _patterns {
		if v := outcomes[line[0]]; v == outcomes[line[1]] && v == outcomes[line[2]] {
			one = one || v == WonByOne
			two = two || v == WonByTwo
		}
	}
	return one, two
}

// Resolve the super-board: a line of won sub-boards decides the game,
// otherwise once every sub-board is decided the player with more won
// sub-boards wins, equal counts are a draw
func checkSuperBoard(outcomes *[9]Outcome) Outcome {
	for _, line := range _patterns {
		if v := outcomes[line[0]]; v == outcomes[line[1]] &&
			v == outcomes[line[2]] &&
			(v == WonByOne || v == WonByTwo) {
			return v
		}
	}

	ones, twos := 0, 0
	for _, o := range outcomes {
		switch o {
		case Undecided:
			return Undecided
		case WonByOne:
			ones++
		case WonByTwo:
			twos++
		}
	}

	switch {
	case ones > twos:
		return WonByOne
	case twos > ones:
		return WonByTwo
	}
	return Drawn
}
