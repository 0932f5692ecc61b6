package engine

import "github.com/camchamb/custom-chess-server/internal/chess"

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The terminal flag is ignored; g is not modified.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(g.After(m), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, in move
// generation order.
func Divide(g *Game, depth int) []DivideEntry {
	moves := g.AllLegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(g.After(m), depth-1)})
	}
	return entries
}

// After returns a copy of the game with m played. m must be one of the
// legal moves of the side to move; it is not validated.
func (g *Game) After(m chess.Move) *Game {
	child := g.Clone()
	child.terminal = false
	child.play(m)
	return child
}
