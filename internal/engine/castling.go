package engine

import (
	"strings"

	"github.com/camchamb/custom-chess-server/internal/chess"
)

// CastlingRights holds the four per-side, per-wing castling permissions.
// Rights are only ever revoked during play.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// FullCastlingRights returns rights with all four permissions granted.
func FullCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports whether colour may still castle on the given wing.
func (r CastlingRights) Has(colour chess.Colour, kingside bool) bool {
	switch {
	case colour == chess.White && kingside:
		return r.WhiteKingside
	case colour == chess.White:
		return r.WhiteQueenside
	case kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// revoke removes the right for one wing of one colour.
func (r *CastlingRights) revoke(colour chess.Colour, kingside bool) {
	switch {
	case colour == chess.White && kingside:
		r.WhiteKingside = false
	case colour == chess.White:
		r.WhiteQueenside = false
	case kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	var sb strings.Builder
	if r.WhiteKingside {
		sb.WriteByte('K')
	}
	if r.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if r.BlackKingside {
		sb.WriteByte('k')
	}
	if r.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

const (
	kingHomeCol      = 5
	kingsideRookCol  = 8
	queensideRookCol = 1
)

// castlingWing describes one castling direction in file numbers.
type castlingWing struct {
	kingside bool
	rookCol  int
	kingTo   int
	// kingPath lists the squares the king crosses, destination last.
	kingPath []int
}

var castlingWings = []castlingWing{
	{kingside: true, rookCol: kingsideRookCol, kingTo: 7, kingPath: []int{6, 7}},
	{kingside: false, rookCol: queensideRookCol, kingTo: 3, kingPath: []int{4, 3}},
}

// castlingMoves returns the castling moves available to the king on from.
// The king must be on its home square and not in check, the right must be
// held, the rook must be on its home square, the squares between them
// empty, and neither the transit nor the destination square attacked.
func (g *Game) castlingMoves(from chess.Position, colour chess.Colour) []chess.Move {
	row := chess.BackRank(colour)
	if from != chess.NewPosition(row, kingHomeCol) || IsInCheck(g.board, colour) {
		return nil
	}

	var moves []chess.Move
	rook := chess.NewPiece(colour, chess.Rook)
	for _, wing := range castlingWings {
		if !g.castling.Has(colour, wing.kingside) {
			continue
		}
		rookSq := chess.NewPosition(row, wing.rookCol)
		if g.board.Get(rookSq) != rook || !isPathClear(g.board, from, rookSq) {
			continue
		}
		if g.isKingPathAttacked(row, wing.kingPath, colour) {
			continue
		}
		moves = append(moves, chess.NewMove(from, chess.NewPosition(row, wing.kingTo)))
	}
	return moves
}

// isKingPathAttacked reports whether any listed square on row is attacked by
// the opponent of colour.
func (g *Game) isKingPathAttacked(row int, cols []int, colour chess.Colour) bool {
	for _, col := range cols {
		if IsSquareAttacked(g.board, chess.NewPosition(row, col), colour.Opposite()) {
			return true
		}
	}
	return false
}

// isCastle reports whether m is a king moving two files.
func isCastle(piece chess.Piece, m chess.Move) bool {
	return piece.Type == chess.King && m.From.Row == m.To.Row && abs(m.To.Col-m.From.Col) == 2
}

// castleRookSquares returns the rook's origin and destination for a castle.
func castleRookSquares(m chess.Move) (from, to chess.Position) {
	row := m.From.Row
	if m.To.Col > m.From.Col {
		return chess.NewPosition(row, kingsideRookCol), chess.NewPosition(row, m.To.Col-1)
	}
	return chess.NewPosition(row, queensideRookCol), chess.NewPosition(row, m.To.Col+1)
}

// updateCastlingRights revokes rights after a move: a king move costs both
// wings, a rook leaving its home square costs that wing, and a rook captured
// on its home square costs the victim that wing.
func (g *Game) updateCastlingRights(piece chess.Piece, m chess.Move, captured chess.Piece, capturedAt chess.Position) {
	switch piece.Type {
	case chess.King:
		g.castling.revoke(piece.Colour, true)
		g.castling.revoke(piece.Colour, false)
	case chess.Rook:
		g.revokeRookWing(piece.Colour, m.From)
	}
	if captured.Type == chess.Rook {
		g.revokeRookWing(captured.Colour, capturedAt)
	}
}

// revokeRookWing removes the right tied to a rook home square, if sq is one.
func (g *Game) revokeRookWing(colour chess.Colour, sq chess.Position) {
	if sq.Row != chess.BackRank(colour) {
		return
	}
	switch sq.Col {
	case kingsideRookCol:
		g.castling.revoke(colour, true)
	case queensideRookCol:
		g.castling.revoke(colour, false)
	}
}
