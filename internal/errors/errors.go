// Package errors provides sentinel errors and error types for the chess engine.
// It defines the failure taxonomy of move validation and structured error types
// that preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedInput indicates unparseable piece, square, move or placement text.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNoPieceAtSource indicates the start square is empty or has no legal moves.
	ErrNoPieceAtSource = errors.New("no piece at source")

	// ErrWrongTurn indicates a move by the side not currently to move.
	ErrWrongTurn = errors.New("wrong turn")

	// ErrIllegalMove indicates a move that is not in the legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalState indicates an action attempted after the game has ended.
	ErrIllegalState = errors.New("game is finished")

	// ErrUnknownGame indicates a session lookup for a game id that does not exist.
	ErrUnknownGame = errors.New("unknown game")

	// ErrSessionFull indicates the session registry has reached its game limit.
	ErrSessionFull = errors.New("session limit reached")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// MoveError wraps a move failure with the square, move and turn context
// needed to produce a user-facing message. It supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel error
	Move   string // Coordinate text of the move (if applicable)
	Square string // The square involved (if applicable)
	Turn   string // The side to move when the error occurred (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}
	if e.Turn != "" {
		parts = append(parts, fmt.Sprintf("%s to move", e.Turn))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
