package main

/**
 * @file placement.go
 * @brief Collision-avoidance rule: turns a desired cell into a committed one.
 *
 * Mirrors step_par.go's "try the desired cell, fall back to an alternate,
 * else stay put" shape, generalised from Wa-Tor's four empty-neighbour
 * candidates to three priority-ordered candidates.
 */

// P is a 2D grid coordinate.
type P struct {
	X, Y int
}

// Taken answers whether a cell is currently occupied by a committed agent.
// takenNear (over a NeighbourIndex) and regionTaken (over a RegionMap) build
// one of these to hand to resolvePlacement.
type Taken interface {
	Occupied(p P) bool
}

// takenSet is the simplest Taken implementation: a fixed set of occupied
// cells, typically the committed positions of an agent's neighbours.
type takenSet map[P]bool

func (t takenSet) Occupied(p P) bool { return t[p] }

// candidates returns the three priority-ordered cells Placement tries: the
// desired cell first, then two alternates that depend on whether the
// intended move is axis-aligned or diagonal.
func candidates(x, y, dx, dy int) [3]P {
	diffX, diffY := dx-x, dy-y
	var p1, p2 P
	if diffX == 0 || diffY == 0 {
		// Axis-aligned move: the two cells perpendicular to the direction.
		p1 = P{dx + diffY, dy + diffX}
		p2 = P{dx - diffY, dy - diffX}
	} else {
		// Diagonal move: the two axis-aligned fall-backs.
		p1 = P{dx, y}
		p2 = P{x, dy}
	}
	return [3]P{{dx, dy}, p1, p2}
}

// resolvePlacement commits a's next position given the set of cells already
// taken by neighbours this tick. It tries each candidate in priority order
// and commits the first that is free; if all three are taken the agent does
// not move. Deterministic given a fixed taken set and (x, y, dx, dy).
func resolvePlacement(a *Agent, taken Taken) {
	for _, c := range candidates(a.X, a.Y, a.DX, a.DY) {
		if !taken.Occupied(c) {
			a.commit(c.X, c.Y)
			return
		}
	}
	// All three candidates taken: stay in place.
	a.commit(a.X, a.Y)
}
