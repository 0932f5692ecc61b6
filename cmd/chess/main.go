// chess is a command-line front end to the rules engine: it prints and draws
// positions, applies move lists, counts perft nodes and plays games from stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/camchamb/custom-chess-server/internal/chess"
	"github.com/camchamb/custom-chess-server/internal/config"
	"github.com/camchamb/custom-chess-server/internal/engine"
	"github.com/camchamb/custom-chess-server/internal/output"
	"github.com/camchamb/custom-chess-server/internal/render"
	"github.com/camchamb/custom-chess-server/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(realMain())
}

// realMain runs the program and returns its exit status. Files opened for
// logs and output are closed before it returns.
func realMain() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	logOut, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logOut != nil {
		defer logOut.Close()
	}

	out, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *playMode {
		err = runPlay(cfg, *fenString, os.Stdin)
	} else {
		err = run(ctx, cfg)
	}
	if out != nil {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// run handles every non-interactive mode.
func run(ctx context.Context, cfg *config.Config) error {
	g, played, err := loadGame(*fenString, *moveList)
	if err != nil {
		return err
	}

	switch {
	case *showMoves != "":
		return printLegalMoves(cfg.OutputFile, g, *showMoves)
	case cfg.Perft.Depth > 0:
		return runPerft(ctx, cfg, g)
	}

	var last *chess.Move
	if len(played) > 0 {
		last = &played[len(played)-1]
	}
	return printPosition(cfg.OutputFile, cfg.Output, g, last)
}

// newLogger builds the diagnostics logger for the configured verbosity.
func newLogger(cfg *config.Config, prefix string) *log.Logger {
	out := cfg.LogFile
	if out == nil || cfg.Verbosity == 0 {
		out = io.Discard
	}
	return log.New(out, prefix, 0)
}

// loadGame creates the starting game and applies a space-separated move list.
func loadGame(fen, moves string) (*engine.Game, []chess.Move, error) {
	g := engine.NewGame()
	if fen != "" {
		var err error
		if g, err = engine.NewGameFromFEN(fen); err != nil {
			return nil, nil, err
		}
	}

	var played []chess.Move
	for i, text := range strings.Fields(moves) {
		m, err := chess.ParseMove(text)
		if err != nil {
			return nil, nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		if err := g.MakeMove(m); err != nil {
			return nil, nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		g.Evaluate()
		played = append(played, m)
	}
	return g, played, nil
}

// printPosition writes the position in the configured format. The last move,
// if any, is highlighted.
func printPosition(w io.Writer, cfg *config.OutputConfig, g *engine.Game, last *chess.Move) error {
	board := g.Board()
	opts := render.OptionsFromConfig(cfg)
	if last != nil {
		opts.Highlight = []chess.Position{last.From, last.To}
	}

	var err error
	switch cfg.Format {
	case config.Placement:
		_, err = fmt.Fprintln(w, engine.PlacementString(board))
	case config.FEN:
		_, err = fmt.Fprintln(w, g.FEN())
	case config.SVG:
		render.SVG(w, board, opts)
	case config.JSON:
		err = output.OutputPositionJSON(w, output.GameToJSON(g, last))
	default:
		_, err = fmt.Fprintf(w, "%s%s to move. %s\n", render.Text(board, opts), g.Turn(), g.Evaluate())
	}
	return err
}

// printLegalMoves lists the legal moves from one square, one per line.
func printLegalMoves(w io.Writer, g *engine.Game, square string) error {
	from, err := chess.ParsePosition(square)
	if err != nil {
		return err
	}
	moves, _ := g.LegalMoves(from)
	for _, m := range moves {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	return nil
}

// runPerft prints the node count, broken down by root move with -divide.
func runPerft(ctx context.Context, cfg *config.Config, g *engine.Game) error {
	logger := newLogger(cfg, "perft: ")
	start := time.Now()
	w := cfg.OutputFile
	depth := cfg.Perft.Depth

	var nodes uint64
	if cfg.Perft.Divide {
		entries, err := worker.Divide(ctx, g, depth, cfg.Perft.Workers)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
			nodes += e.Nodes
		}
		fmt.Fprintln(w)
	} else {
		var err error
		if nodes, err = worker.Perft(ctx, g, depth, cfg.Perft.Workers); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Nodes searched: %d\n", nodes)
	logger.Printf("depth %d, %d workers, %s", depth, cfg.Perft.Workers, time.Since(start).Round(time.Millisecond))
	return nil
}

// setupLogFile creates the -log file and points cfg.LogFile at it. It
// returns nil when no log file was requested.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	if *logFile == "" {
		return nil, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
	}
	cfg.LogFile = file
	return file, nil
}

// setupOutputFile creates the -o file and sends output to it. It returns nil
// when output stays on stdout.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if *outputFile == "" {
		return nil, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.SetOutput(file)
	return file, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Prints, draws and plays chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPlay mode commands (-play):\n")
	fmt.Fprintf(os.Stderr, "  e2e4          Play a move (append q, r, b or n to promote)\n")
	fmt.Fprintf(os.Stderr, "  moves <sq>    List legal moves from a square\n")
	fmt.Fprintf(os.Stderr, "  board, fen    Show the position\n")
	fmt.Fprintf(os.Stderr, "  load <place>  Install a piece placement\n")
	fmt.Fprintf(os.Stderr, "  new [fen]     Start another game\n")
	fmt.Fprintf(os.Stderr, "  games         List hosted games\n")
	fmt.Fprintf(os.Stderr, "  switch <id>   Play in another game\n")
	fmt.Fprintf(os.Stderr, "  resign, quit\n")
}
