// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/camchamb/custom-chess-server/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceType represents a chess piece type without colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the piece types a pawn may promote to, in generation order.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// ParsePieceType converts a piece letter of either case to a piece type.
func ParsePieceType(c byte) (PieceType, error) {
	switch c {
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'R', 'r':
		return Rook, nil
	case 'B', 'b':
		return Bishop, nil
	case 'N', 'n':
		return Knight, nil
	case 'P', 'p':
		return Pawn, nil
	}
	return NoPieceType, fmt.Errorf("invalid piece character %q: %w", c, errors.ErrMalformedInput)
}

// Piece is a coloured piece. The zero value with Type NoPieceType is an empty square.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// Empty is the piece value of an unoccupied square.
var Empty = Piece{}

// NewPiece creates a coloured piece.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Colour: colour, Type: pieceType}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether p represents an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Letter returns the notation letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the notation letter of the piece, or "-" for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "-"
	}
	return string(p.Letter())
}

// ParsePiece decodes a single notation character into a coloured piece.
func ParsePiece(c byte) (Piece, error) {
	pieceType, err := ParsePieceType(c)
	if err != nil {
		return Empty, err
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return NewPiece(colour, pieceType), nil
}

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Position identifies a square by 1-indexed row (rank) and column (file).
// Row 1 is White's back rank; column 1 is the a-file.
type Position struct {
	Row int
	Col int
}

// NoPosition is the zero Position, used for "unset".
var NoPosition = Position{}

// NewPosition creates a position from a row and column.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 1 && p.Row <= BoardSize && p.Col >= 1 && p.Col <= BoardSize
}

// Offset returns the position shifted by the given row and column deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns algebraic notation such as "e1". Columns off the board
// fall back to a "<col>, <row>" form.
func (p Position) String() string {
	if p.Col >= 1 && p.Col <= BoardSize {
		return fmt.Sprintf("%c%d", 'a'+p.Col-1, p.Row)
	}
	return fmt.Sprintf("%d, %d", p.Col, p.Row)
}

// ParsePosition converts algebraic notation ("e4") into a position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return NoPosition, fmt.Errorf("invalid square %q: %w", s, errors.ErrMalformedInput)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoPosition, fmt.Errorf("invalid square %q: %w", s, errors.ErrMalformedInput)
	}
	return NewPosition(int(rank-'0'), int(file-'a')+1), nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// Intended for constants and tests.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// BackRank returns the home row of the given colour's pieces.
func BackRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize
}
