package chess

import "hash/fnv"

// Board represents the 8x8 grid of squares plus cached king locations.
type Board struct {
	// squares[row-1][col-1]
	squares [BoardSize][BoardSize]Piece

	// Keep track of where the two kings are for check detection.
	// Indexed by Colour; NoPosition when the colour has no king on the board.
	kings [2]Position
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.Reset()
	return b
}

// Reset sets up the standard chess starting position.
func (b *Board) Reset() {
	b.squares = [BoardSize][BoardSize]Piece{}
	b.kings = [2]Position{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 1; col <= BoardSize; col++ {
		b.Set(NewPosition(1, col), W(backRank[col-1]))
		b.Set(NewPosition(2, col), W(Pawn))
		b.Set(NewPosition(7, col), B(Pawn))
		b.Set(NewPosition(8, col), B(backRank[col-1]))
	}
}

// Get returns the piece at the given position, or Empty for an empty or
// off-board square.
func (b *Board) Get(p Position) Piece {
	if !p.Valid() {
		return Empty
	}
	return b.squares[p.Row-1][p.Col-1]
}

// Set places a piece at the given position. Writing Empty clears the square.
// Off-board positions are ignored. The king cache follows every write.
func (b *Board) Set(p Position, piece Piece) {
	if !p.Valid() {
		return
	}
	if piece.IsEmpty() {
		piece = Empty
	}
	prev := b.squares[p.Row-1][p.Col-1]
	if prev.Type == King && b.kings[prev.Colour] == p {
		b.kings[prev.Colour] = NoPosition
	}
	b.squares[p.Row-1][p.Col-1] = piece
	if piece.Type == King {
		b.kings[piece.Colour] = p
	}
}

// KingPosition returns the cached king square for a colour.
// ok is false if that colour has no king on the board.
func (b *Board) KingPosition(colour Colour) (pos Position, ok bool) {
	pos = b.kings[colour]
	return pos, pos != NoPosition
}

// LocateKings re-derives both king caches by scanning the board.
func (b *Board) LocateKings() {
	b.kings = [2]Position{}
	for _, p := range AllPositions() {
		if piece := b.Get(p); piece.Type == King {
			b.kings[piece.Colour] = p
		}
	}
}

// Clone creates a deep copy of the board. Mutating the copy never affects b.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether two boards hold equal pieces on every square.
// King caches are not compared.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.squares == other.squares
}

// Hash returns a structural hash of the piece placement, stable across runs.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	var buf [BoardSize * BoardSize]byte
	i := 0
	for _, p := range AllPositions() {
		piece := b.Get(p)
		buf[i] = byte(piece.Type)<<1 | byte(piece.Colour)
		i++
	}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// PieceCount returns the number of occupied squares.
func (b *Board) PieceCount() int {
	count := 0
	for _, p := range AllPositions() {
		if !b.Get(p).IsEmpty() {
			count++
		}
	}
	return count
}

var allPositions = func() [BoardSize * BoardSize]Position {
	var out [BoardSize * BoardSize]Position
	i := 0
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			out[i] = NewPosition(row, col)
			i++
		}
	}
	return out
}()

// AllPositions returns every square, row 1 first, a-file to h-file within a row.
func AllPositions() [BoardSize * BoardSize]Position {
	return allPositions
}
