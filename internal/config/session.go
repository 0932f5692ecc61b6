package config

import (
	"fmt"

	"github.com/camchamb/custom-chess-server/internal/errors"
)

// SessionConfig holds settings for the game registry.
type SessionConfig struct {
	// MaxGames caps the number of live games; 0 means no limit.
	MaxGames int
}

// NewSessionConfig creates a SessionConfig with default values.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{}
}

// Validate checks that the session configuration is valid.
func (s *SessionConfig) Validate() error {
	if s.MaxGames < 0 {
		return fmt.Errorf("max games %d is negative: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
