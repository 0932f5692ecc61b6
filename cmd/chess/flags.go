// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/camchamb/custom-chess-server/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Start from this FEN (default: the standard starting position)")
	moveList  = flag.String("moves", "", "Space-separated coordinate moves to apply first (e.g. 'e2e4 e7e5')")
	showMoves = flag.String("legal", "", "List the legal moves of the piece on this square")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "text", "Output format: placement, fen, text, svg, json")
	squareSize   = flag.Int("size", 45, "SVG square size in pixels")
	flipBoard    = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords     = flag.Bool("nocoords", false, "Omit rank and file labels")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divideFlag = flag.Bool("divide", false, "Break the perft count down by root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Interactive play
	playMode = flag.Bool("play", false, "Read moves from stdin and play them against the board")
	maxGames = flag.Int("maxgames", 0, "Maximum hosted games in play mode (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("verbosity", 1, "Log level: 0 silent, 1 game events, 2 every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)
	cfg.Session.MaxGames = *maxGames

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyOutputFlags configures board output settings.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.SquareSize = *squareSize
	cfg.Output.Flip = *flipBoard
	cfg.Output.Coordinates = !*noCoords
	return nil
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divideFlag
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}
