package config

import (
	"fmt"
	"strings"

	"github.com/camchamb/custom-chess-server/internal/errors"
)

// OutputFormat selects how a position is written.
type OutputFormat int

const (
	Placement OutputFormat = iota // FEN piece-placement field only
	FEN                           // Full Forsyth-Edwards Notation
	Text                          // Text diagram
	SVG                           // SVG image
	JSON                          // JSON position document
)

var formatNames = []string{"placement", "fen", "text", "svg", "json"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value such as "fen" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return Placement, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to rendering positions.
type OutputConfig struct {
	// Format specifies how positions are printed.
	Format OutputFormat

	// SquareSize is the edge length of one square in SVG output, in pixels.
	SquareSize int

	// Flip draws the board from Black's side.
	Flip bool

	// Coordinates adds file letters and rank numbers to diagrams.
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Text,
		SquareSize:  45,
		Coordinates: true,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.Format < Placement || o.Format > JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.SquareSize <= 0 {
		return fmt.Errorf("square size %d must be positive: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
