package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/camchamb/custom-chess-server/internal/testutil"
)

// Positions compared against an independent bitboard move generator.
var crossCheckFENs = []string{
	InitialFEN,
	kiwipeteFEN,
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
}

func ownMoveStrings(g *Game) []string {
	moves := g.AllLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func referenceMoveStrings(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// crossCheck walks both move trees in lockstep and reports the first
// position where the legal move lists differ.
func crossCheck(t *testing.T, g *Game, ref *dragontoothmg.Board, depth int, line string) {
	t.Helper()

	own := ownMoveStrings(g)
	want := referenceMoveStrings(ref)
	testutil.AssertEqual(t, own, want, "legal moves after %q", line)
	if depth <= 1 || t.Failed() {
		return
	}

	byText := make(map[string]dragontoothmg.Move)
	for _, m := range ref.GenerateLegalMoves() {
		byText[m.String()] = m
	}
	for _, m := range g.AllLegalMoves() {
		refMove, ok := byText[m.String()]
		if !ok {
			continue
		}
		unapply := ref.Apply(refMove)
		crossCheck(t, g.After(m), ref, depth-1, line+" "+m.String())
		unapply()
	}
}

func TestLegalMoves_MatchReferenceGenerator(t *testing.T) {
	depth := 2
	if testing.Short() {
		depth = 1
	}

	for _, fen := range crossCheckFENs {
		t.Run(fen, func(t *testing.T) {
			g := mustGameFromFEN(t, fen)
			ref := dragontoothmg.ParseFen(fen)
			crossCheck(t, g, &ref, depth, "")
		})
	}
}

func TestPerft_MatchReferenceGenerator(t *testing.T) {
	for _, fen := range crossCheckFENs {
		t.Run(fen, func(t *testing.T) {
			g := mustGameFromFEN(t, fen)
			ref := dragontoothmg.ParseFen(fen)
			testutil.AssertEqual(t, Perft(g, 2), referencePerft(&ref, 2))
		})
	}
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
