package engine

import (
	"github.com/camchamb/custom-chess-server/internal/chess"
	"github.com/camchamb/custom-chess-server/internal/errors"
)

// Game is the rules state machine for one chess game. It owns a single live
// board, the side to move, the en passant target, castling rights and the
// terminal flag.
//
// A Game is not safe for concurrent use; callers hosting a game for several
// clients must serialize every call on it.
type Game struct {
	board *chess.Board

	// Who has the next move.
	toMove chess.Colour

	// The square skipped by the most recent double pawn push, or NoPosition.
	enPassant chess.Position

	castling CastlingRights

	// Set once checkmate or stalemate has been detected, or a side resigned.
	terminal bool

	// The half-move clock since the last pawn move or capture.
	halfmoveClock int

	// The current move number.
	moveNumber int
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame() *Game {
	return &Game{
		board:      chess.NewInitialBoard(),
		toMove:     chess.White,
		castling:   FullCastlingRights(),
		moveNumber: 1,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Clone()
}

// PieceAt returns the piece on the given square of the live board.
func (g *Game) PieceAt(p chess.Position) chess.Piece {
	return g.board.Get(p)
}

// SetBoard installs an externally supplied board as the current position.
// Both king caches are re-derived, all castling rights are restored and the
// en passant target is cleared. The side to move and terminal flag are kept.
func (g *Game) SetBoard(board *chess.Board) {
	installed := board.Clone()
	installed.LocateKings()
	g.board = installed
	g.castling = FullCastlingRights()
	g.enPassant = chess.NoPosition
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.toMove
}

// SetTurn sets the side to move.
func (g *Game) SetTurn(colour chess.Colour) {
	g.toMove = colour
}

// IsTerminal reports whether the game has ended.
func (g *Game) IsTerminal() bool {
	return g.terminal
}

// CastlingRights returns the current castling permissions.
func (g *Game) CastlingRights() CastlingRights {
	return g.castling
}

// EnPassantTarget returns the square skipped by the last double pawn push.
func (g *Game) EnPassantTarget() (chess.Position, bool) {
	return g.enPassant, g.enPassant != chess.NoPosition
}

// MoveNumber returns the full-move number, starting at 1.
func (g *Game) MoveNumber() int {
	return g.moveNumber
}

// HalfmoveClock returns the number of half-moves since the last pawn move or capture.
func (g *Game) HalfmoveClock() int {
	return g.halfmoveClock
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.board = g.board.Clone()
	return &c
}

// MakeMove validates m against the legal moves of its start square and
// applies it. On any failure the game is left unchanged and the returned
// error wraps one of ErrIllegalState, ErrNoPieceAtSource, ErrWrongTurn or
// ErrIllegalMove.
func (g *Game) MakeMove(m chess.Move) error {
	if g.terminal {
		return g.moveError(errors.ErrIllegalState, m)
	}

	moves, _ := g.LegalMoves(m.From)
	if len(moves) == 0 {
		return g.moveError(errors.ErrNoPieceAtSource, m)
	}
	if g.board.Get(m.From).Colour != g.toMove {
		return g.moveError(errors.ErrWrongTurn, m)
	}
	if !containsMove(moves, m) {
		return g.moveError(errors.ErrIllegalMove, m)
	}

	g.play(m)
	return nil
}

// Resign ends the game without a checkmate or stalemate.
func (g *Game) Resign() error {
	if g.terminal {
		return &errors.MoveError{Err: errors.ErrIllegalState, Turn: g.toMove.String()}
	}
	g.terminal = true
	return nil
}

func (g *Game) moveError(err error, m chess.Move) error {
	return &errors.MoveError{
		Err:    err,
		Move:   m.String(),
		Square: m.From.String(),
		Turn:   g.toMove.String(),
	}
}

// containsMove checks whether m is one of moves.
func containsMove(moves []chess.Move, m chess.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
