// Package output encodes positions as JSON documents for viewers.
package output

import (
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/camchamb/custom-chess-server/internal/chess"
	"github.com/camchamb/custom-chess-server/internal/engine"
	"github.com/camchamb/custom-chess-server/internal/session"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	ID         string              `json:"id,omitempty"`
	FEN        string              `json:"fen"`
	Placement  string              `json:"placement"`
	Turn       string              `json:"turn"` // "white" or "black"
	Status     string              `json:"status"`
	Terminal   bool                `json:"terminal"`
	Resigned   bool                `json:"resigned,omitempty"`
	LastMove   *JSONMove           `json:"lastMove,omitempty"`
	LegalMoves map[string][]string `json:"legalMoves,omitempty"` // keyed by start square
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// MoveToJSON converts a move to JSON format.
func MoveToJSON(m chess.Move) *JSONMove {
	jm := &JSONMove{
		UCI:  m.String(),
		From: m.From.String(),
		To:   m.To.String(),
	}
	if m.IsPromotion() {
		jm.Promotion = strings.ToLower(m.Promotion.String())
	}
	return jm
}

// GameToJSON converts a game to JSON format. The position is classified for
// the side to move; a finished game lists no legal moves.
func GameToJSON(g *engine.Game, last *chess.Move) *JSONPosition {
	eval := g.Evaluate()
	jp := &JSONPosition{
		FEN:       g.FEN(),
		Placement: engine.PlacementString(g.Board()),
		Turn:      colourName(g.Turn()),
		Status:    statusName(eval.Status),
		Terminal:  g.IsTerminal(),
	}
	if last != nil {
		jp.LastMove = MoveToJSON(*last)
	}
	if !jp.Terminal {
		jp.LegalMoves = groupMoves(g.AllLegalMoves())
	}
	return jp
}

// SnapshotToJSON converts a hosted game's snapshot to JSON format. moves are
// the legal moves to publish with it.
func SnapshotToJSON(snap session.Snapshot, moves []chess.Move) *JSONPosition {
	jp := &JSONPosition{
		ID:        snap.ID,
		FEN:       snap.FEN,
		Placement: snap.Placement,
		Turn:      colourName(snap.Turn),
		Status:    statusName(snap.Status),
		Terminal:  snap.Terminal,
		Resigned:  snap.Resigned,
	}
	if !snap.Terminal {
		jp.LegalMoves = groupMoves(moves)
	}
	return jp
}

// OutputPositionJSON writes a single position as indented JSON.
func OutputPositionJSON(w io.Writer, jp *JSONPosition) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jp)
}

// groupMoves indexes moves by start square, each list sorted.
func groupMoves(moves []chess.Move) map[string][]string {
	if len(moves) == 0 {
		return nil
	}
	grouped := make(map[string][]string)
	for _, m := range moves {
		from := m.From.String()
		grouped[from] = append(grouped[from], m.String())
	}
	for _, list := range grouped {
		sort.Strings(list)
	}
	return grouped
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func statusName(s engine.Status) string {
	return strings.ToLower(s.String())
}
