package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's heading. DirNone means "no change
// requested" when passed as a pending heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

// World holds the snake body, its heading and the single target.
// It is owned by one goroutine; nothing here locks.
type World struct {
	width  int
	height int

	body    []Point // Head at index 0
	heading Direction
	length  int // Desired body length

	target    Point
	hasTarget bool

	// Tail cell dropped by the last Advance, if any.
	trimmed    Point
	hasTrimmed bool
}

// NewWorld creates a world on a width x height torus in its initial state.
func NewWorld(width, height int) *World {
	w := &World{
		width:  max(width, 1),
		height: max(height, 1),
	}
	w.Reset()
	return w
}

// Reset puts a one-segment snake at the grid center heading right.
// The target is left for the caller to relocate.
func (w *World) Reset() {
	w.body = append(w.body[:0], w.Center())
	w.heading = DirRight
	w.length = 1
	w.hasTrimmed = false
}

// Center returns the spawn cell.
func (w *World) Center() Point {
	return Point{X: w.width / 2, Y: w.height / 2}
}

// Advance moves the snake one cell and reports whether the new head ran
// into the body. On collision the world is left untouched; the caller
// resets it.
func (w *World) Advance(pending Direction) bool {
	if pending != DirNone && pending != w.heading.Opposite() {
		w.heading = pending
	}

	next := w.Step(w.body[0], w.heading)

	// The current head is excluded: only segments at index >= 1 count.
	for _, seg := range w.body[1:] {
		if seg == next {
			return true
		}
	}

	w.body = append(w.body, Point{})
	copy(w.body[1:], w.body)
	w.body[0] = next

	if len(w.body) > w.length {
		last := len(w.body) - 1
		w.trimmed = w.body[last]
		w.hasTrimmed = true
		w.body = w.body[:last]
	} else {
		w.hasTrimmed = false
	}
	return false
}

// Step returns the cell one move from p in direction d, wrapping at the edges.
func (w *World) Step(p Point, d Direction) Point {
	dx, dy := d.Delta()
	return Point{
		X: core.Wrap(p.X+dx, w.width),
		Y: core.Wrap(p.Y+dy, w.height),
	}
}

// Grow raises the desired length by one. The body catches up on the next
// Advance by keeping its tail.
func (w *World) Grow() {
	w.length++
}

// PlaceTarget moves the target to a random cell not covered by the body
// nor by the tail cell vacated this tick. It returns false, and hides the
// target, when no cell is left.
func (w *World) PlaceTarget(rng *rand.Rand) bool {
	excluded := make(map[Point]struct{}, len(w.body)+1)
	for _, seg := range w.body {
		excluded[seg] = struct{}{}
	}
	if w.hasTrimmed {
		excluded[w.trimmed] = struct{}{}
	}
	w.target, w.hasTarget = Relocate(rng, w.width, w.height, excluded)
	if !w.hasTarget && w.hasTrimmed {
		// The trimmed cell is the only free one left.
		delete(excluded, w.trimmed)
		w.target, w.hasTarget = Relocate(rng, w.width, w.height, excluded)
	}
	return w.hasTarget
}

// OnTarget reports whether the head sits on the target.
func (w *World) OnTarget() bool {
	return w.hasTarget && w.body[0] == w.target
}

// Head returns the head segment.
func (w *World) Head() Point { return w.body[0] }

// Body returns the segments, head first. Callers must not modify it.
func (w *World) Body() []Point { return w.body }

// Heading returns the committed heading.
func (w *World) Heading() Direction { return w.heading }

// Length returns the desired body length.
func (w *World) Length() int { return w.length }

// Target returns the target cell and whether one is placed.
func (w *World) Target() (Point, bool) { return w.target, w.hasTarget }

// Trimmed returns the tail cell removed by the last Advance. It reports
// false on the first tick, after a reset and on ticks where the body grew.
func (w *World) Trimmed() (Point, bool) { return w.trimmed, w.hasTrimmed }

// Size returns the grid dimensions.
func (w *World) Size() (width, height int) { return w.width, w.height }
