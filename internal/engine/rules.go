package engine

import "github.com/camchamb/custom-chess-server/internal/chess"

// MaterialReport summarizes the material on a board. It is informational:
// none of it ends a game.
type MaterialReport struct {
	// Insufficient is true if neither side has mating material.
	Insufficient bool

	// Standard is true if both sides have exactly the starting set of pieces.
	Standard bool

	// Counts holds the number of pieces on the board per piece.
	Counts map[chess.Piece]int
}

// AnalyzeMaterial reports on the material of board.
func AnalyzeMaterial(board *chess.Board) MaterialReport {
	return MaterialReport{
		Insufficient: HasInsufficientMaterial(board),
		Standard:     isStandardMaterial(board),
		Counts:       countPieces(board),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.PieceType
	var bishopOnLight [2]bool

	for _, p := range chess.AllPositions() {
		piece := board.Get(p)
		if piece.IsEmpty() || piece.Type == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		switch piece.Type {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Bishop:
			bishopOnLight[piece.Colour] = isLightSquare(p)
		}
		minors[piece.Colour] = append(minors[piece.Colour], piece.Type)
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(p chess.Position) bool {
	return (p.Row+p.Col)%2 == 1
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	// Standard material: 8 pawns, 2 rooks, 2 knights, 2 bishops, 1 queen, 1 king per side
	expected := map[chess.PieceType]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	actual := countPieces(board)
	total := 0
	for pieceType, n := range expected {
		for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
			if actual[chess.NewPiece(colour, pieceType)] != n {
				return false
			}
			total += n
		}
	}
	return board.PieceCount() == total
}

func countPieces(board *chess.Board) map[chess.Piece]int {
	counts := make(map[chess.Piece]int)
	for _, p := range chess.AllPositions() {
		if piece := board.Get(p); !piece.IsEmpty() {
			counts[piece]++
		}
	}
	return counts
}
