package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/camchamb/custom-chess-server/internal/chess"
)

const (
	lightSquare     = "fill:#f0d9b5"
	darkSquare      = "fill:#b58863"
	highlightSquare = "fill:#cdd26a"
	labelStyle      = "font-family:sans-serif;fill:#333333"
)

// glyphs maps each piece to its Unicode chess symbol, indexed by colour then type.
var glyphs = [2][]string{
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
}

// Glyph returns the Unicode symbol of a piece, or "" for an empty square.
func Glyph(piece chess.Piece) string {
	if piece.IsEmpty() {
		return ""
	}
	return glyphs[piece.Colour][piece.Type]
}

// SVG writes the board as an SVG document to w.
func SVG(w io.Writer, board *chess.Board, opts Options) {
	size := opts.SquareSize
	if size <= 0 {
		size = DefaultOptions().SquareSize
	}
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	boardPx := size * chess.BoardSize

	canvas := svg.New(w)
	canvas.Start(boardPx+margin, boardPx+margin)

	pieceStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*4/5)
	for y, row := range opts.rows() {
		for x, col := range opts.cols() {
			p := chess.NewPosition(row, col)
			px, py := margin+x*size, y*size

			canvas.Rect(px, py, size, size, squareStyle(p, opts))
			if glyph := Glyph(board.Get(p)); glyph != "" {
				canvas.Text(px+size/2, py+size/2, glyph, pieceStyle)
			}
		}
	}

	if opts.Coordinates {
		labelFont := fmt.Sprintf("%s;font-size:%dpx;text-anchor:middle;dominant-baseline:central", labelStyle, size/3)
		for y, row := range opts.rows() {
			canvas.Text(margin/2, y*size+size/2, fmt.Sprint(row), labelFont)
		}
		for x, col := range opts.cols() {
			canvas.Text(margin+x*size+size/2, boardPx+margin/2, string(fileLetter(col)), labelFont)
		}
	}

	canvas.End()
}

func squareStyle(p chess.Position, opts Options) string {
	switch {
	case opts.highlighted(p):
		return highlightSquare
	case (p.Row+p.Col)%2 == 0:
		return darkSquare
	default:
		return lightSquare
	}
}
