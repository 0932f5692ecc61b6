package engine

import (
	"fmt"

	"github.com/camchamb/custom-chess-server/internal/chess"
)

// IsInCheck returns true if the given colour's king is currently attacked.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	return IsInCheck(g.board, colour)
}

// IsInCheckmate returns true if colour is in check with no legal move.
// A positive answer ends the game.
func (g *Game) IsInCheckmate(colour chess.Colour) bool {
	if !g.IsInCheck(colour) || g.HasLegalMoves(colour) {
		return false
	}
	g.terminal = true
	return true
}

// IsInStalemate returns true if colour is not in check and has no legal move.
// A positive answer ends the game.
func (g *Game) IsInStalemate(colour chess.Colour) bool {
	if g.IsInCheck(colour) || g.HasLegalMoves(colour) {
		return false
	}
	g.terminal = true
	return true
}

// Status classifies a position after a move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Ongoing", "Check", "Checkmate", "Stalemate"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Evaluation is the result of Evaluate. Colour is the side to move the
// status describes.
type Evaluation struct {
	Status Status
	Colour chess.Colour
}

// String returns a short description such as "White is in checkmate".
func (e Evaluation) String() string {
	switch e.Status {
	case Check:
		return fmt.Sprintf("%s is in check", e.Colour)
	case Checkmate:
		return fmt.Sprintf("%s is in checkmate", e.Colour)
	case Stalemate:
		return "Game ends in stalemate"
	}
	return "Game in progress"
}

// Evaluate classifies the position for the side to move. Checkmate and
// stalemate end the game.
func (g *Game) Evaluate() Evaluation {
	colour := g.toMove
	switch {
	case g.IsInCheckmate(colour):
		return Evaluation{Status: Checkmate, Colour: colour}
	case g.IsInStalemate(colour):
		return Evaluation{Status: Stalemate, Colour: colour}
	case g.IsInCheck(colour):
		return Evaluation{Status: Check, Colour: colour}
	}
	return Evaluation{Status: Ongoing, Colour: colour}
}
