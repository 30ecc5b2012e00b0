package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second
	Seed      int64 // RNG seed for deterministic gameplay
	HighScore int   // Best score persisted from earlier runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score int // Current score
	Best  int // Best score seen this session
	Size  int // Body length, for logging
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventNone    EventKind = iota
	EventEat               // A target was consumed
	EventCrash             // Self-collision; the world was reset
	EventRespawn           // The grid changed size; the world was rebuilt
)

// String returns the event name used in log output.
func (k EventKind) String() string {
	switch k {
	case EventEat:
		return "eat"
	case EventCrash:
		return "crash"
	case EventRespawn:
		return "respawn"
	default:
		return "none"
	}
}

// Event is emitted by Step. For EventCrash and EventRespawn, Score is the
// score that was lost.
type Event struct {
	Kind  EventKind
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Crashed returns the crash event of this tick, if any.
func (r StepResult) Crashed() (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == EventCrash {
			return e, true
		}
	}
	return Event{}, false
}
