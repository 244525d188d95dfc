package core

import "time"

// DefaultTickInterval paces the simulation at roughly 16 ticks per second.
const DefaultTickInterval = 60 * time.Millisecond

// GameState is a summary of the running session for the platform layer.
type GameState struct {
	Score    int  // Current score, never negative
	Level    int  // Current level (zero based)
	Lives    int  // Remaining lives
	GameOver bool // Whether the session has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the feedback events raised during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}
