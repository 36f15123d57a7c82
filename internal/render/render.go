package render

import (
	"strings"

	"github.com/muesli/termenv"
)

// Colorize a board printout: player one's pieces red, player two's blue,
// decided sub-boards (upper case) in bold
func Board(out *termenv.Output, board string) string {
	one := out.Color("1")
	two := out.Color("4")

	builder := strings.Builder{}
	for _, r := range board {
		s := string(r)
		switch r {
		case 'x':
			builder.WriteString(out.String(s).Foreground(one).String())
		case 'o':
			builder.WriteString(out.String(s).Foreground(two).String())
		case 'X':
			builder.WriteString(out.String(s).Foreground(one).Bold().String())
		case 'O':
			builder.WriteString(out.String(s).Foreground(two).Bold().String())
		case '.', '|', '-', '+':
			builder.WriteString(out.String(s).Faint().String())
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Label in bold, followed by the value
func Field(out *termenv.Output, label, value string) string {
	return out.String(label).Bold().String() + " " + value
}
