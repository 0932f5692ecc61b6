package render

import (
	"strings"

	"github.com/camchamb/custom-chess-server/internal/chess"
)

// Text returns a diagram of the board, one rank per line, with '.' for empty
// squares. Highlighted empty squares are drawn as '*'.
func Text(board *chess.Board, opts Options) string {
	var sb strings.Builder

	for _, row := range opts.rows() {
		if opts.Coordinates {
			sb.WriteByte(byte('0' + row))
			sb.WriteByte(' ')
		}
		for i, col := range opts.cols() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			p := chess.NewPosition(row, col)
			piece := board.Get(p)
			switch {
			case !piece.IsEmpty():
				sb.WriteByte(piece.Letter())
			case opts.highlighted(p):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	if opts.Coordinates {
		sb.WriteString(" ")
		for _, col := range opts.cols() {
			sb.WriteByte(' ')
			sb.WriteByte(fileLetter(col))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
