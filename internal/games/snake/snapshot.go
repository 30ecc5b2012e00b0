package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Variant string
	Score   int
	Best    int
	Length  int // Desired length
	BodyLen int // Current number of segments
	HeadX   int
	HeadY   int
	Dir     Direction
	TargetX int // -1 when no target is placed
	TargetY int
	GridW   int
	GridH   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.tooSmall {
		state = StatePausedSmall
	}

	head := g.world.Head()
	target, _ := g.world.Target()
	w, h := g.world.Size()

	return Snapshot{
		Tick:    g.tick,
		Variant: string(g.variant),
		Score:   g.score,
		Best:    g.best,
		Length:  g.world.Length(),
		BodyLen: len(g.world.Body()),
		HeadX:   head.X,
		HeadY:   head.Y,
		Dir:     g.world.Heading(),
		TargetX: target.X,
		TargetY: target.Y,
		GridW:   w,
		GridH:   h,
		State:   state,
	}
}
