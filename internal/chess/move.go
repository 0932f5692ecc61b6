package chess

import (
	"fmt"
	"strings"

	"github.com/camchamb/custom-chess-server/internal/errors"
)

// Move represents a single move from one square to another. Promotion is
// NoPieceType unless a pawn reaches its final rank.
type Move struct {
	From      Position
	To        Position
	Promotion PieceType
}

// NewMove creates a non-promoting move.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promoting pawn move.
func NewPromotion(from, to Position, promotion PieceType) Move {
	return Move{From: from, To: to, Promotion: promotion}
}

// IsPromotion returns true if this move carries a promotion choice.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses coordinate notation: two squares and an optional
// promotion letter (q, r, b or n).
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, errors.ErrMalformedInput)
	}
	from, err := ParsePosition(s[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	to, err := ParsePosition(s[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	if len(s) == 4 {
		return NewMove(from, to), nil
	}
	promotion, err := ParsePieceType(s[4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	if promotion == King || promotion == Pawn {
		return Move{}, fmt.Errorf("invalid promotion %q in move %q: %w", s[4], s, errors.ErrMalformedInput)
	}
	return NewPromotion(from, to, promotion), nil
}
