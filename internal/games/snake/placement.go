package snake

import "math/rand"

// maxPlacementTries bounds rejection sampling before Relocate falls back to
// scanning the free cells.
const maxPlacementTries = 64

// Relocate picks a cell uniformly from the width x height grid minus the
// excluded cells. It returns false when every cell is excluded.
func Relocate(rng *rand.Rand, width, height int, excluded map[Point]struct{}) (Point, bool) {
	none := Point{X: -1, Y: -1}
	if width <= 0 || height <= 0 {
		return none, false
	}

	// Cheap path while the board is mostly empty.
	for range maxPlacementTries {
		p := Point{X: rng.Intn(width), Y: rng.Intn(height)}
		if _, taken := excluded[p]; !taken {
			return p, true
		}
	}

	free := make([]Point, 0, max(width*height-len(excluded), 0))
	for y := range height {
		for x := range width {
			p := Point{X: x, Y: y}
			if _, taken := excluded[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return none, false
	}
	return free[rng.Intn(len(free))], true
}
