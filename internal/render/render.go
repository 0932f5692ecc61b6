// Package render draws boards for viewers: a plain text diagram and an SVG
// image.
package render

import (
	"github.com/camchamb/custom-chess-server/internal/chess"
	"github.com/camchamb/custom-chess-server/internal/config"
)

// Options controls how a board is drawn.
type Options struct {
	// SquareSize is the SVG edge length of one square in pixels.
	SquareSize int

	// Flip draws the board from Black's side.
	Flip bool

	// Coordinates adds file letters and rank numbers.
	Coordinates bool

	// Highlight lists squares to mark, such as the last move.
	Highlight []chess.Position
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return OptionsFromConfig(config.NewOutputConfig())
}

// OptionsFromConfig maps output configuration onto drawing options.
func OptionsFromConfig(cfg *config.OutputConfig) Options {
	return Options{
		SquareSize:  cfg.SquareSize,
		Flip:        cfg.Flip,
		Coordinates: cfg.Coordinates,
	}
}

// rows returns the board rows top to bottom as drawn.
func (o Options) rows() []int {
	rows := make([]int, 0, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		if o.Flip {
			rows = append(rows, i+1)
		} else {
			rows = append(rows, chess.BoardSize-i)
		}
	}
	return rows
}

// cols returns the board columns left to right as drawn.
func (o Options) cols() []int {
	cols := make([]int, 0, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		if o.Flip {
			cols = append(cols, chess.BoardSize-i)
		} else {
			cols = append(cols, i+1)
		}
	}
	return cols
}

func (o Options) highlighted(p chess.Position) bool {
	for _, h := range o.Highlight {
		if h == p {
			return true
		}
	}
	return false
}

func fileLetter(col int) byte {
	return byte('a' + col - 1)
}
