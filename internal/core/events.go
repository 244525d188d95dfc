package core

import "time"

// EventKind identifies a feedback event raised by the simulation.
type EventKind int

const (
	EventShot     EventKind = iota // A bullet was fired
	EventHit                       // A bullet damaged an enemy
	EventKill                      // An enemy was destroyed
	EventLifeLost                  // An enemy collided with the player
	EventEscaped                   // An enemy passed the bottom row
	EventGameOver                  // Lives reached zero
)

// Event is a fire-and-forget notification for the presentation layer.
type Event struct {
	Kind EventKind
	Slot int // Enemy or bullet slot involved, -1 when not applicable
}

// Cue is an audible feedback tone.
type Cue int

const (
	CueNone Cue = iota
	CueShoot
	CueHit
	CueLifeLost
)

// Tone is a (frequency, duration) pair describing a cue.
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// CueFor maps a feedback event to the tone cue it should trigger.
func CueFor(kind EventKind) Cue {
	switch kind {
	case EventShot:
		return CueShoot
	case EventHit:
		return CueHit
	case EventLifeLost, EventGameOver:
		return CueLifeLost
	default:
		return CueNone
	}
}
