package config

import (
	"fmt"
	"runtime"

	"github.com/camchamb/custom-chess-server/internal/errors"
)

// MaxPerftDepth bounds the search depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-tree node counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft.
	Depth int

	// Workers is the number of goroutines splitting the root moves.
	Workers int

	// Divide prints the count below each root move.
	Divide bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
