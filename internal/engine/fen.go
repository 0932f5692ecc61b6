// Package engine provides chess move generation, legality checking and the
// game state machine built on the core types of package chess.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/camchamb/custom-chess-server/internal/chess"
	"github.com/camchamb/custom-chess-server/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// InitialPlacement is the piece placement field of InitialFEN.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// RankSeparator separates ranks in a placement string.
const RankSeparator = '/'

// PlacementString encodes the board as a FEN piece-placement field: rank 8
// first, ranks separated by '/', runs of empty squares replaced by their count.
func PlacementString(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize; row >= 1; row-- {
		emptyCount := 0
		for col := 1; col <= chess.BoardSize; col++ {
			piece := board.Get(chess.NewPosition(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 1 {
			sb.WriteByte(RankSeparator)
		}
	}
}

// ParsePlacement builds a board from a FEN piece-placement field. Each of the
// eight ranks must describe exactly eight squares. King caches are set.
func ParsePlacement(placement string) (*chess.Board, error) {
	ranks := strings.Split(placement, string(RankSeparator))
	if len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("placement %q has %d ranks: %w", placement, len(ranks), errors.ErrMalformedInput)
	}

	board := chess.NewBoard()
	for i, rank := range ranks {
		row := chess.BoardSize - i
		col := 1
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, err := chess.ParsePiece(c)
			if err != nil {
				return nil, errors.Wrapf(err, "rank %d", row)
			}
			if col > chess.BoardSize {
				return nil, fmt.Errorf("rank %d overflows: %w", row, errors.ErrMalformedInput)
			}
			board.Set(chess.NewPosition(row, col), piece)
			col++
		}
		if col != chess.BoardSize+1 {
			return nil, fmt.Errorf("rank %d describes %d squares: %w", row, col-1, errors.ErrMalformedInput)
		}
	}
	board.LocateKings()
	return board, nil
}

// FEN returns the full FEN string of the game.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())
	sb.WriteByte(' ')
	if g.enPassant != chess.NoPosition {
		sb.WriteString(g.enPassant.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", g.halfmoveClock, g.moveNumber)

	return sb.String()
}

// NewGameFromFEN creates a game from a FEN string. Only the placement field
// is required; missing fields default to White to move, no castling, no en
// passant target and clocks "0 1".
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrMalformedInput)
	}

	board, err := ParsePlacement(parts[0])
	if err != nil {
		return nil, err
	}
	g := &Game{board: board, toMove: chess.White, moveNumber: 1}

	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(g, parts); err != nil {
		return nil, err
	}
	return g, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrMalformedInput)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(g *Game, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			g.castling.WhiteKingside = true
		case 'Q':
			g.castling.WhiteQueenside = true
		case 'k':
			g.castling.BlackKingside = true
		case 'q':
			g.castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrMalformedInput)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(g *Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParsePosition(parts[3])
	if err != nil {
		return errors.Wrap(err, "en passant field")
	}
	want := 6
	if g.toMove == chess.Black {
		want = 3
	}
	if target.Row != want {
		return fmt.Errorf("en passant target %s with %s to move: %w", parts[3], g.toMove, errors.ErrMalformedInput)
	}
	g.enPassant = target
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(g *Game, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrMalformedInput)
		}
		g.halfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrMalformedInput)
		}
		g.moveNumber = n
	}
	return nil
}
