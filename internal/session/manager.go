// Package session hosts many games for concurrent clients. Every call on one
// game runs under that game's lock; the engine itself does no locking.
package session

import (
	"fmt"
	"io"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/camchamb/custom-chess-server/internal/chess"
	"github.com/camchamb/custom-chess-server/internal/config"
	"github.com/camchamb/custom-chess-server/internal/engine"
	"github.com/camchamb/custom-chess-server/internal/errors"
)

// Snapshot is the state of a game as broadcast to viewers.
type Snapshot struct {
	ID        string
	Placement string
	FEN       string
	Turn      chess.Colour
	Status    engine.Status
	Terminal  bool
	Resigned  bool
}

// room is one hosted game and the lock that serializes access to it.
type room struct {
	mu       sync.Mutex
	game     *engine.Game
	status   engine.Status
	resigned bool
}

// Manager is a registry of hosted games keyed by UUID.
type Manager struct {
	mu       sync.RWMutex
	rooms    map[uuid.UUID]*room
	maxGames int

	verbosity int
	logger    *log.Logger
}

// NewManager creates an empty registry. Events are logged to cfg.LogFile
// at cfg.Verbosity.
func NewManager(cfg *config.Config) *Manager {
	out := cfg.LogFile
	if out == nil || cfg.Verbosity == 0 {
		out = io.Discard
	}
	return &Manager{
		rooms:     make(map[uuid.UUID]*room),
		maxGames:  cfg.Session.MaxGames,
		verbosity: cfg.Verbosity,
		logger:    log.New(out, "session: ", log.LstdFlags),
	}
}

func (m *Manager) logf(level int, format string, args ...interface{}) {
	if m.verbosity >= level {
		m.logger.Printf(format, args...)
	}
}

// Create starts a game in the standard starting position.
func (m *Manager) Create() (Snapshot, error) {
	return m.add(engine.NewGame())
}

// CreateFromFEN starts a game from a FEN string. A position that is already
// checkmate or stalemate is hosted as a finished game.
func (m *Manager) CreateFromFEN(fen string) (Snapshot, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return Snapshot{}, err
	}
	return m.add(g)
}

func (m *Manager) add(g *engine.Game) (Snapshot, error) {
	id := uuid.New()
	r := &room{game: g, status: g.Evaluate().Status}

	m.mu.Lock()
	if m.maxGames > 0 && len(m.rooms) >= m.maxGames {
		m.mu.Unlock()
		return Snapshot{}, fmt.Errorf("%d games hosted: %w", m.maxGames, errors.ErrSessionFull)
	}
	m.rooms[id] = r
	m.mu.Unlock()

	m.logf(1, "game %s created", id)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(id), nil
}

// lookup finds the room for a game id.
func (m *Manager) lookup(id string) (uuid.UUID, *room, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("game id %q: %w", id, errors.ErrUnknownGame)
	}
	m.mu.RLock()
	r, ok := m.rooms[key]
	m.mu.RUnlock()
	if !ok {
		return uuid.Nil, nil, fmt.Errorf("game %s: %w", key, errors.ErrUnknownGame)
	}
	return key, r, nil
}

// withRoom runs fn holding the game's lock.
func (m *Manager) withRoom(id string, fn func(key uuid.UUID, r *room) error) error {
	key, r, err := m.lookup(id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(key, r)
}

// Snapshot returns the current state of a game.
func (m *Manager) Snapshot(id string) (Snapshot, error) {
	var snap Snapshot
	err := m.withRoom(id, func(key uuid.UUID, r *room) error {
		snap = r.snapshot(key)
		return nil
	})
	return snap, err
}

// LegalMoves returns the legal moves of the piece on square. An empty square
// yields no moves and no error.
func (m *Manager) LegalMoves(id, square string) ([]chess.Move, error) {
	from, err := chess.ParsePosition(square)
	if err != nil {
		return nil, err
	}
	var moves []chess.Move
	err = m.withRoom(id, func(_ uuid.UUID, r *room) error {
		moves, _ = r.game.LegalMoves(from)
		return nil
	})
	return moves, err
}

// AllLegalMoves returns every legal move of the side to move. A finished game
// has none.
func (m *Manager) AllLegalMoves(id string) ([]chess.Move, error) {
	var moves []chess.Move
	err := m.withRoom(id, func(_ uuid.UUID, r *room) error {
		if !r.game.IsTerminal() {
			moves = r.game.AllLegalMoves()
		}
		return nil
	})
	return moves, err
}

// MakeMove applies a move in coordinate notation such as "e2e4" or "e7e8q"
// and classifies the resulting position for the side to move.
func (m *Manager) MakeMove(id, move string) (Snapshot, error) {
	mv, err := chess.ParseMove(move)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	err = m.withRoom(id, func(key uuid.UUID, r *room) error {
		if err := r.game.MakeMove(mv); err != nil {
			m.logf(2, "game %s: rejected %s: %v", key, mv, err)
			return err
		}
		eval := r.game.Evaluate()
		r.status = eval.Status
		m.logf(2, "game %s: %s played", key, mv)
		if eval.Status != engine.Ongoing {
			m.logf(1, "game %s: %s", key, eval)
		}
		snap = r.snapshot(key)
		return nil
	})
	return snap, err
}

// Resign ends a game on behalf of the side to move.
func (m *Manager) Resign(id string) (Snapshot, error) {
	var snap Snapshot
	err := m.withRoom(id, func(key uuid.UUID, r *room) error {
		if err := r.game.Resign(); err != nil {
			return err
		}
		r.resigned = true
		m.logf(1, "game %s: %s resigned", key, r.game.Turn())
		snap = r.snapshot(key)
		return nil
	})
	return snap, err
}

// Load installs a persisted piece placement into a running game. The side
// to move is kept; castling rights are restored and en passant cleared.
func (m *Manager) Load(id, placement string) (Snapshot, error) {
	board, err := engine.ParsePlacement(placement)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	err = m.withRoom(id, func(key uuid.UUID, r *room) error {
		if r.game.IsTerminal() {
			return fmt.Errorf("load into game %s: %w", key, errors.ErrIllegalState)
		}
		r.game.SetBoard(board)
		r.status = r.game.Evaluate().Status
		m.logf(1, "game %s: board loaded", key)
		snap = r.snapshot(key)
		return nil
	})
	return snap, err
}

// Remove drops a game from the registry.
func (m *Manager) Remove(id string) error {
	key, _, err := m.lookup(id)
	if err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.rooms, key)
	m.mu.Unlock()
	m.logf(1, "game %s removed", key)
	return nil
}

// IDs returns the ids of all hosted games in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	keys := maps.Keys(m.rooms)
	m.mu.RUnlock()

	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.String()
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of hosted games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// snapshot must be called with r.mu held.
func (r *room) snapshot(id uuid.UUID) Snapshot {
	board := r.game.Board()
	return Snapshot{
		ID:        id.String(),
		Placement: engine.PlacementString(board),
		FEN:       r.game.FEN(),
		Turn:      r.game.Turn(),
		Status:    r.status,
		Terminal:  r.game.IsTerminal(),
		Resigned:  r.resigned,
	}
}
