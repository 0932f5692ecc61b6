// play.go - Interactive play loop over a session manager
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/camchamb/custom-chess-server/internal/config"
	"github.com/camchamb/custom-chess-server/internal/engine"
	"github.com/camchamb/custom-chess-server/internal/output"
	"github.com/camchamb/custom-chess-server/internal/render"
	"github.com/camchamb/custom-chess-server/internal/session"
)

// player reads commands and routes them to the current game.
type player struct {
	games   *session.Manager
	current string
	out     io.Writer
	opts    render.Options
	stream  *output.JSONWriter // nil unless -format json
}

// runPlay hosts a game starting from fen (or the initial position) and plays
// commands read from in until EOF or "quit".
func runPlay(cfg *config.Config, fen string, in io.Reader) error {
	p := &player{
		games: session.NewManager(cfg),
		out:   cfg.OutputFile,
		opts:  render.OptionsFromConfig(cfg.Output),
	}
	if cfg.Output.Format == config.JSON {
		p.stream = output.NewJSONWriterSingle(cfg.OutputFile)
	}
	if err := p.newGame(fen); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := p.execute(line); quit {
			return nil
		}
	}
	return scanner.Err()
}

// execute runs one command line. Errors are reported and play continues.
func (p *player) execute(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "board":
		err = p.showBoard()
	case "fen":
		err = p.showFEN()
	case "moves":
		err = p.showMoves(args)
	case "load":
		err = p.load(args)
	case "resign":
		err = p.resign()
	case "new":
		err = p.newGame(strings.Join(args, " "))
	case "games":
		for _, id := range p.games.IDs() {
			marker := " "
			if id == p.current {
				marker = "*"
			}
			fmt.Fprintf(p.out, "%s %s\n", marker, id)
		}
	case "switch":
		err = p.switchGame(args)
	default:
		err = p.move(fields[0])
	}

	if err != nil {
		fmt.Fprintf(p.out, "error: %v\n", err)
	}
	return false
}

func (p *player) newGame(fen string) error {
	var (
		snap session.Snapshot
		err  error
	)
	if fen == "" {
		snap, err = p.games.Create()
	} else {
		snap, err = p.games.CreateFromFEN(fen)
	}
	if err != nil {
		return err
	}
	p.current = snap.ID
	fmt.Fprintf(p.out, "game %s\n", snap.ID)
	return p.printBoard(snap)
}

func (p *player) switchGame(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: switch <id>")
	}
	snap, err := p.games.Snapshot(args[0])
	if err != nil {
		return err
	}
	p.current = snap.ID
	return p.printBoard(snap)
}

func (p *player) move(text string) error {
	snap, err := p.games.MakeMove(p.current, text)
	if err != nil {
		return err
	}
	return p.printBoard(snap)
}

func (p *player) showMoves(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: moves <square>")
	}
	moves, err := p.games.LegalMoves(p.current, args[0])
	if err != nil {
		return err
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintln(p.out, strings.Join(names, " "))
	return nil
}

func (p *player) load(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load <placement>")
	}
	snap, err := p.games.Load(p.current, args[0])
	if err != nil {
		return err
	}
	return p.printBoard(snap)
}

func (p *player) resign() error {
	snap, err := p.games.Resign(p.current)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "%s resigns\n", snap.Turn)
	return nil
}

func (p *player) showBoard() error {
	snap, err := p.games.Snapshot(p.current)
	if err != nil {
		return err
	}
	return p.printBoard(snap)
}

func (p *player) showFEN() error {
	snap, err := p.games.Snapshot(p.current)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, snap.FEN)
	return nil
}

// printBoard draws a snapshot followed by a status line, or writes it as a
// JSON line in JSON mode.
func (p *player) printBoard(snap session.Snapshot) error {
	if p.stream != nil {
		moves, err := p.games.AllLegalMoves(snap.ID)
		if err != nil {
			return err
		}
		return p.stream.WritePosition(output.SnapshotToJSON(snap, moves))
	}

	board, err := engine.ParsePlacement(snap.Placement)
	if err != nil {
		return err
	}
	fmt.Fprint(p.out, render.Text(board, p.opts))
	fmt.Fprintln(p.out, statusLine(snap))
	return nil
}

// statusLine describes whose move it is and how the game stands.
func statusLine(snap session.Snapshot) string {
	switch {
	case snap.Resigned:
		return fmt.Sprintf("%s resigned", snap.Turn)
	case snap.Status == engine.Checkmate:
		return fmt.Sprintf("Checkmate, %s wins", snap.Turn.Opposite())
	case snap.Status == engine.Stalemate:
		return "Stalemate"
	case snap.Status == engine.Check:
		return fmt.Sprintf("%s to move, in check", snap.Turn)
	}
	return fmt.Sprintf("%s to move", snap.Turn)
}
