package testutil

import (
	"strings"
	"testing"

	"github.com/camchamb/custom-chess-server/internal/chess"
)

// Sq parses an algebraic square and fails the test if it is malformed.
func Sq(t *testing.T, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("bad square %q: %v", s, err)
	}
	return p
}

// Mv parses a coordinate move such as "e2e4" or "a7a8q" and fails the test
// if it is malformed.
func Mv(t *testing.T, s string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(s)
	if err != nil {
		t.Fatalf("bad move %q: %v", s, err)
	}
	return m
}

// Mvs parses a space-separated list of coordinate moves.
func Mvs(t *testing.T, list string) []chess.Move {
	t.Helper()
	var moves []chess.Move
	for _, s := range strings.Fields(list) {
		moves = append(moves, Mv(t, s))
	}
	return moves
}

// PlaceBoard builds a board from "square:letter" pairs, e.g. "e1:K e8:k a8:r".
func PlaceBoard(t *testing.T, pieces string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for _, entry := range strings.Fields(pieces) {
		sq, letter, ok := strings.Cut(entry, ":")
		if !ok || len(letter) != 1 {
			t.Fatalf("bad placement entry %q", entry)
		}
		piece, err := chess.ParsePiece(letter[0])
		if err != nil {
			t.Fatalf("bad placement entry %q: %v", entry, err)
		}
		board.Set(Sq(t, sq), piece)
	}
	return board
}
