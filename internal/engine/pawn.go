package engine

import "github.com/camchamb/custom-chess-server/internal/chess"

// pawnHomeRow returns the row a pawn of the given colour starts on.
func pawnHomeRow(colour chess.Colour) int {
	if colour == chess.White {
		return 2
	}
	return chess.BoardSize - 1
}

// pawnMoves generates pawn pushes and diagonal captures. En passant is
// added at the game level because it depends on the previous move.
func pawnMoves(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(colour)

	// Forward move
	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = appendPawnMove(moves, from, one, colour)

		// Double push from starting rank
		if from.Row == pawnHomeRow(colour) {
			two := from.Offset(2*dir, 0)
			if board.Get(two).IsEmpty() {
				moves = append(moves, chess.NewMove(from, two))
			}
		}
	}

	// Captures
	for _, dc := range [...]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		if target := board.Get(to); !target.IsEmpty() && target.Colour != colour {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}
	return moves
}

// appendPawnMove appends a pawn move, expanding it into one move per
// promotion choice when it lands on the opponent's back rank.
func appendPawnMove(moves []chess.Move, from, to chess.Position, colour chess.Colour) []chess.Move {
	if to.Row != chess.BackRank(colour.Opposite()) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, promotion := range chess.PromotionTypes {
		moves = append(moves, chess.NewPromotion(from, to, promotion))
	}
	return moves
}

// isDoublePush reports whether a pawn move advanced two ranks.
func isDoublePush(piece chess.Piece, m chess.Move) bool {
	return piece.Type == chess.Pawn && abs(m.To.Row-m.From.Row) == 2
}

// isEnPassantCapture reports whether a pawn move is a diagonal step onto an
// empty square, which can only be an en passant capture.
func isEnPassantCapture(board *chess.Board, piece chess.Piece, m chess.Move) bool {
	return piece.Type == chess.Pawn && m.From.Col != m.To.Col && board.Get(m.To).IsEmpty()
}
