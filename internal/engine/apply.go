package engine

import (
	"github.com/camchamb/custom-chess-server/internal/chess"
)

// applyMove relocates the pieces for m on board without any legality check.
// It honours promotion, removes an en passant victim and carries the rook
// along on a two-file king move. It returns the captured piece (Empty if
// none) and the square it was taken from.
func applyMove(board *chess.Board, m chess.Move) (captured chess.Piece, capturedAt chess.Position) {
	piece := board.Get(m.From)
	captured, capturedAt = board.Get(m.To), m.To

	switch {
	case isEnPassantCapture(board, piece, m):
		// The victim sits beside the mover, not on the destination.
		capturedAt = chess.NewPosition(m.From.Row, m.To.Col)
		captured = board.Get(capturedAt)
		board.Set(capturedAt, chess.Empty)

	case isCastle(piece, m):
		rookFrom, rookTo := castleRookSquares(m)
		rook := board.Get(rookFrom)
		board.Set(rookFrom, chess.Empty)
		board.Set(rookTo, rook)
	}

	if m.IsPromotion() {
		piece = chess.NewPiece(piece.Colour, m.Promotion)
	}
	board.Set(m.From, chess.Empty)
	board.Set(m.To, piece)

	return captured, capturedAt
}

// play applies an already validated move to the live board and updates the
// en passant target, castling rights, clocks and side to move.
func (g *Game) play(m chess.Move) {
	piece := g.board.Get(m.From)
	captured, capturedAt := applyMove(g.board, m)

	g.updateCastlingRights(piece, m, captured, capturedAt)

	// Set en passant square if double pawn push
	g.enPassant = chess.NoPosition
	if isDoublePush(piece, m) {
		g.enPassant = chess.NewPosition((m.From.Row+m.To.Row)/2, m.From.Col)
	}

	// Update halfmove clock
	if piece.Type == chess.Pawn || !captured.IsEmpty() {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}

	if piece.Colour == chess.Black {
		g.moveNumber++
	}
	g.toMove = piece.Colour.Opposite()
}
