package render

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestBoardWithoutColors(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	board := "x . o\n---\nX=O\n"
	assert.Equal(t, board, Board(out, board))
	assert.Equal(t, "bestmove 40", Field(out, "bestmove", "40"))
}

func TestBoardWithColors(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI))
	s := Board(out, "x o")
	assert.NotEqual(t, "x o", s)
	assert.Contains(t, s, "x")
	assert.Contains(t, s, "\x1b[")
}
