package engine

import "github.com/camchamb/custom-chess-server/internal/chess"

// GenerateMoves returns the pseudo-legal moves of a piece of the given type
// and colour standing on from. Whether the mover's own king is left attacked
// is not considered.
func GenerateMoves(pieceType chess.PieceType, colour chess.Colour, board *chess.Board, from chess.Position) []chess.Move {
	if !from.Valid() {
		return nil
	}
	switch pieceType {
	case chess.Rook:
		return rookMoves(board, from, colour)
	case chess.Bishop:
		return bishopMoves(board, from, colour)
	case chess.Queen:
		return queenMoves(board, from, colour)
	case chess.Knight:
		return knightMoves(board, from, colour)
	case chess.King:
		return kingMoves(board, from, colour)
	case chess.Pawn:
		return pawnMoves(board, from, colour)
	}
	return nil
}

// PseudoLegalMoves returns the pseudo-legal moves of whatever piece stands on from.
func PseudoLegalMoves(board *chess.Board, from chess.Position) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	return GenerateMoves(piece.Type, piece.Colour, board, from)
}

func rookMoves(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Move {
	return slide(board, from, colour, straightDirs, nil)
}

func bishopMoves(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Move {
	return slide(board, from, colour, diagonalDirs, nil)
}

func queenMoves(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Move {
	return append(rookMoves(board, from, colour), bishopMoves(board, from, colour)...)
}

func knightMoves(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Move {
	return step(board, from, colour, knightOffsets, nil)
}

func kingMoves(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Move {
	return step(board, from, colour, kingOffsets, nil)
}
