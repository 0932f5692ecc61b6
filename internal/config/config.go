// Package config provides configuration for the chess command and the
// session layer.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/camchamb/custom-chess-server/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=every move

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Output  *OutputConfig
	Perft   *PerftConfig
	Session *SessionConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		Session:    NewSessionConfig(),
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Session.Validate()
}
