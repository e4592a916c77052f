package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int         // Screen width in characters
	ScreenH  int         // Screen height in characters
	TickRate int         // Simulation ticks per second (default 60)
	Seed     int64       // RNG seed for deterministic gameplay
	Logger   *log.Logger // Diagnostics; nil discards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed step length in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// Log returns the configured logger, or one that discards everything.
func (c RuntimeConfig) Log() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether the game ended by clearing the level
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	Contacts int // Overlapping pairs reported by the physics step
}
