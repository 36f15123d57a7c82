package uttt

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-uct/pkg/bitboard"
	"github.com/IlikeChooros/go-uct/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPlayout(t *testing.T, rng *rand.Rand, p *Position) []game.Move {
	t.Helper()
	var played []game.Move
	for {
		moves := p.Moves()
		// moves are generated iff the game is still undecided
		require.Equal(t, len(moves) > 0, !p.Outcome().IsDecided(), p.Notation())
		if len(moves) == 0 {
			return played
		}
		mv := moves[rng.Intn(len(moves))]
		p.DoMove(mv)
		played = append(played, mv)
		require.LessOrEqual(t, len(played), bitboard.Cells)
	}
}

func TestRandomPlayout(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 2000 {
		p := NewPosition()
		randomPlayout(t, rng, p)

		one, two := p.Result(game.PlayerOne), p.Result(game.PlayerTwo)
		assert.InDelta(t, 1.0, one+two, 1e-9)
		if winner := p.Outcome().Winner(); winner != game.NoPlayer {
			assert.Equal(t, 1.0, p.Result(winner))
		} else {
			assert.Equal(t, 0.5, one)
		}
	}
}

func TestMovesAscendingAndLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := NewPosition()
	for len(p.Moves()) > 0 {
		moves := p.Moves()
		for i, mv := range moves {
			assert.True(t, p.IsLegal(mv))
			if i > 0 {
				assert.Less(t, moves[i-1], mv)
			}
		}
		p.DoMove(moves[rng.Intn(len(moves))])
	}
}

func TestCloneIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 200 {
		p := NewPosition()
		for i := 0; i < 10 && len(p.Moves()) > 0; i++ {
			moves := p.Moves()
			p.DoMove(moves[rng.Intn(len(moves))])
		}

		c := p.Clone()
		for moves := p.Moves(); len(moves) > 0; moves = p.Moves() {
			mv := moves[rng.Intn(len(moves))]
			p.DoMove(mv)
			c.DoMove(mv)
		}
		assert.Equal(t, p.Notation(), c.Notation())
		assert.Equal(t, p.Outcome(), c.Outcome())
		assert.Equal(t, p.Result(game.PlayerOne), c.Result(game.PlayerOne))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPosition()
	p.DoMove(40)
	c := p.Clone()
	c.DoMove(30)

	assert.Equal(t, game.NoPlayer, p.At(30))
	assert.Equal(t, game.PlayerTwo, c.At(30))
	assert.Equal(t, game.PlayerOne, p.PlayerJustMoved())
	assert.Equal(t, game.PlayerTwo, c.PlayerJustMoved())
}

func TestSendToRule(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, game.NoPlayer, p.PlayerJustMoved())
	assert.Equal(t, game.PlayerOne, p.Turn())
	assert.Len(t, p.Moves(), bitboard.Cells)

	// center of the center sub-board sends the opponent back there
	p.DoMove(40)
	assert.Equal(t, 4, p.Target())
	moves := p.Moves()
	assert.Len(t, moves, 8)
	for _, mv := range moves {
		assert.Equal(t, 4, bitboard.SubBoardOf(int(mv)))
	}
	assert.False(t, p.IsLegal(0))
	assert.ErrorIs(t, p.MakeLegalMove(0), ErrIllegalMove)

	// top left cell of the center sub-board, sends to sub-board 0
	require.NoError(t, p.MakeLegalMove(30))
	assert.Equal(t, 0, p.Target())
	for _, mv := range p.Moves() {
		assert.Equal(t, 0, bitboard.SubBoardOf(int(mv)))
	}
}

func TestFreeMoveWhenTargetDecided(t *testing.T) {
	// x wins sub-board 4 through its center, which sends o back there
	p, err := FromNotation("9/9/9/9/x2o1o2x/9/9/9/9 x 4")
	require.NoError(t, err)
	p.DoMove(40)
	assert.Equal(t, WonByOne, p.SubBoardOutcomes()[4])
	assert.Equal(t, -1, p.Target())
	assert.Equal(t, "9/9/9/9/x2oxo2x/9/9/9/9 o -", p.Notation())

	moves := p.Moves()
	assert.Len(t, moves, bitboard.Cells-9)
	for _, mv := range moves {
		assert.NotEqual(t, 4, bitboard.SubBoardOf(int(mv)))
	}

	// an undecided target restricts the moves
	p, err = FromNotation("9/9/9/9/xxxoo4/9/9/9/9 o 0")
	require.NoError(t, err)
	assert.Len(t, p.Moves(), 9)
}

func TestSuperBoardLine(t *testing.T) {
	// super-board [1,1,1, 2,2,0, 0,0,0]
	p, err := FromNotation("xxx6/xxx6/xxx6/ooo6/ooo6/oo1o5/9/9/9 x -")
	require.NoError(t, err)
	assert.Equal(t, WonByOne, p.Outcome())
	assert.Equal(t, 1.0, p.Result(game.PlayerOne))
	assert.Equal(t, 0.0, p.Result(game.PlayerTwo))
	assert.Empty(t, p.Moves())
	assert.False(t, p.IsLegal(80))
}

func TestSuperBoardMajority(t *testing.T) {
	// X O X / X O O / O X X, no line, 5 sub-boards for x
	const xWon, oWon = "xxxoo4", "oooxx4"
	sections := []string{xWon, oWon, xWon, xWon, oWon, oWon, oWon, xWon, xWon}
	p, err := FromNotation(strings.Join(sections, "/") + " o -")
	require.NoError(t, err)
	assert.Equal(t, WonByOne, p.Outcome())
	assert.Equal(t, 1.0, p.Result(game.PlayerOne))
	assert.Empty(t, p.Moves())

	// X O X / X = O / O X O, equal counts
	const drawn = "xoxxoooxx"
	sections = []string{xWon, oWon, xWon, xWon, drawn, oWon, oWon, xWon, oWon}
	p, err = FromNotation(strings.Join(sections, "/") + " o -")
	require.NoError(t, err)
	assert.Equal(t, Drawn, p.Outcome())
	assert.Equal(t, 0.5, p.Result(game.PlayerOne))
	assert.Equal(t, 0.5, p.Result(game.PlayerTwo))
}

func TestUnfinishedResult(t *testing.T) {
	p := NewPosition()
	p.DoMove(0)
	assert.Equal(t, 0.5, p.Result(game.PlayerOne))
	assert.Equal(t, Undecided, p.Outcome())
}

func TestIllegalMovePanics(t *testing.T) {
	p := NewPosition()
	p.DoMove(40)
	assert.Panics(t, func() { p.DoMove(40) })
	assert.Panics(t, func() { p.DoMove(0) })
	assert.Panics(t, func() { p.DoMove(81) })
	assert.Panics(t, func() { p.DoMove(game.NoMove) })
}

func TestNotationRoundTrip(t *testing.T) {
	p, err := FromNotation("startpos")
	require.NoError(t, err)
	assert.Equal(t, StartingPosition, p.Notation())
	assert.Equal(t, game.NoPlayer, p.PlayerJustMoved())

	rng := rand.New(rand.NewSource(5))
	for range 300 {
		p := NewPosition()
		n := rng.Intn(60)
		for i := 0; i < n && len(p.Moves()) > 0; i++ {
			moves := p.Moves()
			p.DoMove(moves[rng.Intn(len(moves))])
		}

		loaded, err := FromNotation(p.Notation())
		require.NoError(t, err, p.Notation())
		assert.Equal(t, p.Notation(), loaded.Notation())
		assert.Equal(t, p.Moves(), loaded.Moves())
		assert.Equal(t, p.Outcome(), loaded.Outcome())
		assert.Equal(t, p.SubBoardOutcomes(), loaded.SubBoardOutcomes())
		assert.Equal(t, p.PlayerJustMoved(), loaded.PlayerJustMoved())
	}
}

func TestNotationErrors(t *testing.T) {
	for _, notation := range []string{
		"",
		"9/9/9 x -",
		"9/9/9/9/9/9/9/9/9 z -",
		"9/9/9/9/9/9/9/9/9 o -",
		"9/9/9/9/9/9/9/9/9 x 9",
		"9/9/9/9/9/9/9/9/8 x -",
		"9/9/9/9/9/9/9/9/9a x -",
		"x9/9/9/9/9/9/9/9/9 o -",
		"xxx6/ooo6/9/9/9/9/9/9/9 x -x",
		// target before the first move
		"9/9/9/9/9/9/9/9/9 x 4",
		// target already won
		"9/9/9/9/xxxoo4/9/9/9/9 o 4",
		// both players have a line of sub-boards
		"xxx6/xxx6/xxx6/ooo6/ooo6/ooo6/9/9/9 x -",
	} {
		_, err := FromNotation(notation)
		assert.ErrorIs(t, err, ErrInvalidPosition, notation)
	}
}

func TestString(t *testing.T) {
	p := NewPosition()
	p.DoMove(0)
	lines := strings.Split(p.String(), "\n")
	assert.Equal(t, "x . . | . . . | . . .", lines[0])
	assert.Equal(t, "------+-------+------", lines[3])
}
