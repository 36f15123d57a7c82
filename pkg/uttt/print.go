package uttt

import (
	"strings"

	"github.com/IlikeChooros/go-uct/pkg/game"
)

func cellRune(p game.Player) byte {
	switch p {
	case game.PlayerOne:
		return 'x'
	case game.PlayerTwo:
		return 'o'
	}
	return '.'
}

func outcomeRune(o Outcome) byte {
	switch o {
	case WonByOne:
		return 'X'
	case WonByTwo:
		return 'O'
	case Drawn:
		return '='
	}
	return '.'
}

// Render the 9x9 grid with sub-board separators, followed by the
// super-board states
func (p *Position) String() string {
	builder := strings.Builder{}

	for row := range 9 {
		if row > 0 && row%3 == 0 {
			builder.WriteString("------+-------+------\n")
		}
		for col := range 9 {
			if col > 0 {
				if col%3 == 0 {
					builder.WriteString(" | ")
				} else {
					builder.WriteByte(' ')
				}
			}
			builder.WriteByte(cellRune(p.At(row*9 + col)))
		}
		builder.WriteByte('\n')
	}

	builder.WriteByte('\n')
	for row := range 3 {
		for col := range 3 {
			builder.WriteByte(outcomeRune(p.outcomes[row*3+col]))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
