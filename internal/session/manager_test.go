package session

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camchamb/custom-chess-server/internal/chess"
	"github.com/camchamb/custom-chess-server/internal/config"
	"github.com/camchamb/custom-chess-server/internal/engine"
	chesserrors "github.com/camchamb/custom-chess-server/internal/errors"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(config.NewConfigBuilder().WithLog(&bytes.Buffer{}).Build())
}

func TestManager_Create(t *testing.T) {
	m := newManager(t)

	snap, err := m.Create()
	require.NoError(t, err)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, engine.InitialPlacement, snap.Placement)
	assert.Equal(t, chess.White, snap.Turn)
	assert.Equal(t, engine.Ongoing, snap.Status)
	assert.False(t, snap.Terminal)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{snap.ID}, m.IDs())
}

func TestManager_CreateFromFEN(t *testing.T) {
	m := newManager(t)

	t.Run("playable position", func(t *testing.T) {
		snap, err := m.CreateFromFEN("4k3/8/8/8/8/8/4P3/4K3 b - - 0 1")
		require.NoError(t, err)
		assert.Equal(t, chess.Black, snap.Turn)
		assert.Equal(t, "4k3/8/8/8/8/8/4P3/4K3", snap.Placement)
	})

	t.Run("already checkmated", func(t *testing.T) {
		snap, err := m.CreateFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
		require.NoError(t, err)
		assert.Equal(t, engine.Checkmate, snap.Status)
		assert.True(t, snap.Terminal)
	})

	t.Run("malformed", func(t *testing.T) {
		before := m.Len()
		_, err := m.CreateFromFEN("not a fen")
		assert.True(t, errors.Is(err, chesserrors.ErrMalformedInput), "got %v", err)
		assert.Equal(t, before, m.Len())
	})
}

func TestManager_MaxGames(t *testing.T) {
	m := NewManager(config.NewConfigBuilder().WithMaxGames(2).Build())

	first, err := m.Create()
	require.NoError(t, err)
	_, err = m.Create()
	require.NoError(t, err)

	_, err = m.Create()
	assert.True(t, errors.Is(err, chesserrors.ErrSessionFull), "got %v", err)

	require.NoError(t, m.Remove(first.ID))
	_, err = m.Create()
	assert.NoError(t, err, "removing a game frees a slot")
}

func TestManager_MakeMove(t *testing.T) {
	m := newManager(t)
	snap, err := m.Create()
	require.NoError(t, err)
	id := snap.ID

	snap, err = m.MakeMove(id, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, chess.Black, snap.Turn)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", snap.FEN)

	tests := []struct {
		name string
		move string
		want error
	}{
		{"malformed", "e7", chesserrors.ErrMalformedInput},
		{"opponent piece", "e4e5", chesserrors.ErrWrongTurn},
		{"no piece", "d4d5", chesserrors.ErrNoPieceAtSource},
		{"illegal", "e7e4", chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.MakeMove(id, tt.move)
			assert.True(t, errors.Is(err, tt.want), "MakeMove(%q) = %v, want %v", tt.move, err, tt.want)

			after, err := m.Snapshot(id)
			require.NoError(t, err)
			assert.Equal(t, snap, after, "rejected move changed the game")
		})
	}
}

func TestManager_FoolsMate(t *testing.T) {
	var logs bytes.Buffer
	m := NewManager(config.NewConfigBuilder().WithLog(&logs).WithVerbosity(1).Build())

	snap, err := m.Create()
	require.NoError(t, err)

	for _, mv := range []string{"f2f3", "e7e5", "g2g4"} {
		_, err = m.MakeMove(snap.ID, mv)
		require.NoError(t, err, mv)
	}
	snap, err = m.MakeMove(snap.ID, "d8h4")
	require.NoError(t, err)

	assert.Equal(t, engine.Checkmate, snap.Status)
	assert.True(t, snap.Terminal)
	assert.Contains(t, logs.String(), "White is in checkmate")
	assert.NotContains(t, logs.String(), "d8h4 played", "per-move logging needs verbosity 2")

	_, err = m.MakeMove(snap.ID, "a2a3")
	assert.True(t, errors.Is(err, chesserrors.ErrIllegalState), "got %v", err)
}

func TestManager_LegalMoves(t *testing.T) {
	m := newManager(t)
	snap, err := m.Create()
	require.NoError(t, err)

	moves, err := m.LegalMoves(snap.ID, "g1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []chess.Move{
		chess.NewMove(chess.MustParsePosition("g1"), chess.MustParsePosition("f3")),
		chess.NewMove(chess.MustParsePosition("g1"), chess.MustParsePosition("h3")),
	}, moves)

	moves, err = m.LegalMoves(snap.ID, "e4")
	require.NoError(t, err)
	assert.Empty(t, moves)

	_, err = m.LegalMoves(snap.ID, "z9")
	assert.True(t, errors.Is(err, chesserrors.ErrMalformedInput))
}

func TestManager_AllLegalMoves(t *testing.T) {
	m := newManager(t)
	snap, err := m.Create()
	require.NoError(t, err)

	moves, err := m.AllLegalMoves(snap.ID)
	require.NoError(t, err)
	assert.Len(t, moves, 20)

	_, err = m.Resign(snap.ID)
	require.NoError(t, err)
	moves, err = m.AllLegalMoves(snap.ID)
	require.NoError(t, err)
	assert.Empty(t, moves, "finished game")
}

func TestManager_Resign(t *testing.T) {
	m := newManager(t)
	snap, err := m.Create()
	require.NoError(t, err)

	snap, err = m.Resign(snap.ID)
	require.NoError(t, err)
	assert.True(t, snap.Terminal)
	assert.True(t, snap.Resigned)

	_, err = m.Resign(snap.ID)
	assert.True(t, errors.Is(err, chesserrors.ErrIllegalState))
}

func TestManager_Load(t *testing.T) {
	m := newManager(t)
	snap, err := m.Create()
	require.NoError(t, err)

	snap, err = m.Load(snap.ID, "4k3/8/8/8/8/8/8/R3K3")
	require.NoError(t, err)
	assert.Equal(t, "4k3/8/8/8/8/8/8/R3K3", snap.Placement)
	assert.Equal(t, chess.White, snap.Turn, "side to move is kept")

	_, err = m.Load(snap.ID, "4k3/8/8")
	assert.True(t, errors.Is(err, chesserrors.ErrMalformedInput))

	_, err = m.MakeMove(snap.ID, "a1a8")
	require.NoError(t, err)
}

func TestManager_UnknownGame(t *testing.T) {
	m := newManager(t)
	missing := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	calls := map[string]func(id string) error{
		"snapshot":   func(id string) error { _, err := m.Snapshot(id); return err },
		"move":       func(id string) error { _, err := m.MakeMove(id, "e2e4"); return err },
		"legalmoves": func(id string) error { _, err := m.LegalMoves(id, "e2"); return err },
		"allmoves":   func(id string) error { _, err := m.AllLegalMoves(id); return err },
		"resign":     func(id string) error { _, err := m.Resign(id); return err },
		"load":       func(id string) error { _, err := m.Load(id, engine.InitialPlacement); return err },
		"remove":     m.Remove,
	}

	for name, call := range calls {
		for _, id := range []string{missing, "not-a-uuid"} {
			t.Run(name+"/"+id, func(t *testing.T) {
				err := call(id)
				assert.True(t, errors.Is(err, chesserrors.ErrUnknownGame), "got %v", err)
			})
		}
	}
}

func TestManager_IDsSorted(t *testing.T) {
	m := newManager(t)
	for i := 0; i < 5; i++ {
		_, err := m.Create()
		require.NoError(t, err)
	}

	ids := m.IDs()
	require.Len(t, ids, 5)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestManager_Concurrent(t *testing.T) {
	m := NewManager(config.NewConfigBuilder().WithVerbosity(0).Build())
	const games = 8

	var wg sync.WaitGroup
	errs := make(chan error, games*2)
	for i := 0; i < games; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := m.Create()
			if err != nil {
				errs <- err
				return
			}
			for _, mv := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
				if _, err := m.MakeMove(snap.ID, mv); err != nil {
					errs <- fmt.Errorf("game %d %s: %w", i, mv, err)
					return
				}
			}
			// Readers race the writers on the other games.
			if _, err := m.Snapshot(snap.ID); err != nil {
				errs <- err
			}
			_ = m.IDs()
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, games, m.Len())

	// Two racing moves on one game: exactly one wins.
	snap, err := m.Create()
	require.NoError(t, err)
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := m.MakeMove(snap.ID, "e2e4")
			results <- err
		}()
	}
	first, second := <-results, <-results
	assert.True(t, (first == nil) != (second == nil), "one move must be rejected: %v, %v", first, second)
}
