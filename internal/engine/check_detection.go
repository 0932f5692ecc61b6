package engine

import "github.com/camchamb/custom-chess-server/internal/chess"

// IsInCheck returns true if the given colour's king is attacked on board.
// A board without a king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingPosition(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could capture on sq.
// The square may be empty; a pawn attacks diagonally forward regardless.
func IsSquareAttacked(board *chess.Board, sq chess.Position, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn stands one row behind sq from its own side.
	pawn := chess.NewPiece(byColour, chess.Pawn)
	pawnRow := -chess.ColourOffset(byColour)
	for _, dc := range [...]int{-1, 1} {
		if board.Get(sq.Offset(pawnRow, dc)) == pawn {
			return true
		}
	}

	if attackedByStep(board, sq, chess.NewPiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.NewPiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.NewPiece(byColour, chess.Queen)
	if attackedBySlide(board, sq, chess.NewPiece(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedBySlide(board, sq, chess.NewPiece(byColour, chess.Rook), queen, straightDirs)
}

// attackedByStep checks the fixed-offset attackers (knight, king).
func attackedByStep(board *chess.Board, sq chess.Position, attacker chess.Piece, offsets [][2]int) bool {
	for _, offset := range offsets {
		if board.Get(sq.Offset(offset[0], offset[1])) == attacker {
			return true
		}
	}
	return false
}

// attackedBySlide walks each ray outward from sq until the first piece.
func attackedBySlide(board *chess.Board, sq chess.Position, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		p := sq.Offset(dir[0], dir[1])
		for p.Valid() {
			piece := board.Get(p)
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			p = p.Offset(dir[0], dir[1])
		}
	}
	return false
}
