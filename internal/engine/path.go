package engine

import "github.com/camchamb/custom-chess-server/internal/chess"

// Direction tables as {row delta, column delta}.
var (
	straightDirs  = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// slide appends the moves along each ray from the given square. A ray stops
// at the first occupied square, which is included only if it holds an
// opposing piece.
func slide(board *chess.Board, from chess.Position, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.NewMove(from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to))
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// step appends a move to each in-bounds offset square not held by our own colour.
func step(board *chess.Board, from chess.Position, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		if target := board.Get(to); target.IsEmpty() || target.Colour != colour {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// isPathClear reports whether every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Position) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	p := from.Offset(rowDir, colDir)
	for p != to && p.Valid() {
		if !board.Get(p).IsEmpty() {
			return false
		}
		p = p.Offset(rowDir, colDir)
	}
	return true
}
