package engine

import "github.com/camchamb/custom-chess-server/internal/chess"

// LegalMoves returns the legal moves of the piece on from, whichever side it
// belongs to. ok is false if the square is empty; an occupied square with no
// legal moves returns an empty slice and true.
func (g *Game) LegalMoves(from chess.Position) (moves []chess.Move, ok bool) {
	piece := g.board.Get(from)
	if piece.IsEmpty() {
		return nil, false
	}
	return g.legalMovesForPiece(from, piece), true
}

// AllLegalMoves returns the legal moves of every piece of the side to move.
func (g *Game) AllLegalMoves() []chess.Move {
	var moves []chess.Move
	for _, p := range chess.AllPositions() {
		piece := g.board.Get(p)
		if piece.IsEmpty() || piece.Colour != g.toMove {
			continue
		}
		moves = append(moves, g.legalMovesForPiece(p, piece)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (g *Game) HasLegalMoves(colour chess.Colour) bool {
	for _, p := range chess.AllPositions() {
		piece := g.board.Get(p)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		if len(g.legalMovesForPiece(p, piece)) > 0 {
			return true
		}
	}
	return false
}

// legalMovesForPiece generates candidates for the piece, adds castling and
// en passant where eligible, and keeps the moves that leave its king safe.
func (g *Game) legalMovesForPiece(from chess.Position, piece chess.Piece) []chess.Move {
	candidates := GenerateMoves(piece.Type, piece.Colour, g.board, from)
	switch piece.Type {
	case chess.King:
		candidates = append(candidates, g.castlingMoves(from, piece.Colour)...)
	case chess.Pawn:
		if m, ok := g.enPassantMove(from, piece.Colour); ok {
			candidates = append(candidates, m)
		}
	}

	moves := make([]chess.Move, 0, len(candidates))
	for _, m := range candidates {
		if g.leavesKingSafe(m, piece.Colour) {
			moves = append(moves, m)
		}
	}
	return moves
}

// enPassantMove returns the en passant capture for the pawn on from, if the
// pawn that just double-pushed stands beside it.
func (g *Game) enPassantMove(from chess.Position, colour chess.Colour) (chess.Move, bool) {
	target := g.enPassant
	if target == chess.NoPosition {
		return chess.Move{}, false
	}
	if target.Row != from.Row+chess.ColourOffset(colour) || abs(target.Col-from.Col) != 1 {
		return chess.Move{}, false
	}
	victim := chess.NewPosition(from.Row, target.Col)
	if g.board.Get(victim) != chess.NewPiece(colour.Opposite(), chess.Pawn) {
		return chess.Move{}, false
	}
	return chess.NewMove(from, target), true
}

// leavesKingSafe makes the move on a copied board and checks if it leaves
// the mover's king in check.
func (g *Game) leavesKingSafe(m chess.Move, colour chess.Colour) bool {
	testBoard := g.board.Clone()
	applyMove(testBoard, m)
	return !IsInCheck(testBoard, colour)
}
