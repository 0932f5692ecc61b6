package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/camchamb/custom-chess-server/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, chess.W(chess.King), chess.W(chess.King))
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "value should be %d", 42)
}

func TestAssertMoveSet_IgnoresOrder(t *testing.T) {
	got := Mvs(t, "e2e4 e2e3 g1f3")
	want := Mvs(t, "g1f3 e2e3 e2e4")
	AssertMoveSet(t, got, want)
	AssertMoveSet(t, nil, []chess.Move{})
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertNoError(t, nil)
	AssertTrue(t, true)
	AssertFalse(t, false)
}

func TestPlaceBoard(t *testing.T) {
	board := PlaceBoard(t, "e1:K e8:k a8:r")

	AssertEqual(t, board.Get(Sq(t, "e1")), chess.W(chess.King))
	AssertEqual(t, board.Get(Sq(t, "a8")), chess.B(chess.Rook))
	AssertEqual(t, board.PieceCount(), 3)

	king, ok := board.KingPosition(chess.Black)
	AssertTrue(t, ok, "black king cached")
	AssertEqual(t, king, Sq(t, "e8"))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single non-string", []interface{}{42}, "42"},
		{"format string", []interface{}{"move %s", "e2e4"}, "move e2e4"},
		{"non-string first", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
