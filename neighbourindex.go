package main

/**
 * @file neighbourindex.go
 * @brief Answers "which agents occupy cells within distance d of (x,y)?"
 *
 * Two implementations share one interface: GlobalIndex is the trivial O(N)
 * linear scan the reference baseline uses (a full grid-walk idiom
 * generalised directly to a full agent-slice walk); HashGrid is the spatial
 * hash upgrade, bucketed by cell so a box query only visits the handful of
 * buckets that can possibly overlap it. Both must return the same set of
 * agents for the same query, the contract is set-equality, not the
 * algorithm (verified by neighbourindex_test.go).
 */

// placementBoxRadius is the Chebyshev distance Placement draws its
// neighbour set from.
const placementBoxRadius = 2

// NeighbourIndex answers box queries: agents a' with |a'.X-x| <= d and
// |a'.Y-y| <= d.
type NeighbourIndex interface {
	Box(x, y, d int) []*Agent
}

// chebyshevWithin reports whether (ax, ay) is within Chebyshev distance d of
// (x, y).
func chebyshevWithin(x, y, ax, ay, d int) bool {
	dx := ax - x
	if dx < 0 {
		dx = -dx
	}
	dy := ay - y
	if dy < 0 {
		dy = -dy
	}
	return dx <= d && dy <= d
}

// GlobalIndex is the trivial NeighbourIndex: every query linearly scans the
// full agent set. Accepted by the sequential baseline; O(N) per query and
// therefore O(N^2) per tick.
type GlobalIndex struct {
	Agents []*Agent
}

// Box implements NeighbourIndex via a linear scan.
func (g *GlobalIndex) Box(x, y, d int) []*Agent {
	out := make([]*Agent, 0, 8)
	for _, a := range g.Agents {
		if chebyshevWithin(x, y, a.X, a.Y, d) {
			out = append(out, a)
		}
	}
	return out
}

// hashGridCellSize is twice placementBoxRadius, so a box query covering the
// full Placement neighbour radius never needs more than a 2x2 block of
// buckets.
const hashGridCellSize = 2 * placementBoxRadius

type gridKey struct{ cx, cy int }

func cellOf(x, y int) gridKey {
	return gridKey{floorDiv(x, hashGridCellSize), floorDiv(y, hashGridCellSize)}
}

// floorDiv is integer division that rounds toward negative infinity, so grid
// cells tile consistently across the origin.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// HashGrid is the spatial hash upgrade to NeighbourIndex: a grid hash keyed
// by (x/cellSize, y/cellSize). Must be rebuilt whenever agent positions
// change (i.e. once per tick, after commits settle).
type HashGrid struct {
	buckets map[gridKey][]*Agent
}

// NewHashGrid builds a HashGrid over the given agents' current positions.
func NewHashGrid(agents []*Agent) *HashGrid {
	g := &HashGrid{buckets: make(map[gridKey][]*Agent, len(agents))}
	g.Rebuild(agents)
	return g
}

// Rebuild re-buckets every agent by its current (X, Y); call once per tick.
func (g *HashGrid) Rebuild(agents []*Agent) {
	clear(g.buckets)
	for _, a := range agents {
		k := cellOf(a.X, a.Y)
		g.buckets[k] = append(g.buckets[k], a)
	}
}

// Move relocates a from the bucket matching its pre-commit (oldX, oldY) to
// the bucket matching its current position, if they differ. Keeps the grid
// accurate for agents that move mid-tick (e.g. under the sequential
// backend, where later agents query neighbours already committed earlier in
// the same tick).
func (g *HashGrid) Move(oldX, oldY int, a *Agent) {
	oldKey := cellOf(oldX, oldY)
	newKey := cellOf(a.X, a.Y)
	if oldKey == newKey {
		return
	}
	bucket := g.buckets[oldKey]
	for i, nb := range bucket {
		if nb == a {
			g.buckets[oldKey] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	g.buckets[newKey] = append(g.buckets[newKey], a)
}

// Box implements NeighbourIndex by visiting only the buckets that can
// overlap the query box.
func (g *HashGrid) Box(x, y, d int) []*Agent {
	minK := cellOf(x-d, y-d)
	maxK := cellOf(x+d, y+d)
	out := make([]*Agent, 0, 8)
	for cx := minK.cx; cx <= maxK.cx; cx++ {
		for cy := minK.cy; cy <= maxK.cy; cy++ {
			for _, a := range g.buckets[gridKey{cx, cy}] {
				if chebyshevWithin(x, y, a.X, a.Y, d) {
					out = append(out, a)
				}
			}
		}
	}
	return out
}

// takenNear builds a Taken set from every neighbour of self within
// placementBoxRadius, excluding self.
func takenNear(idx NeighbourIndex, self *Agent) Taken {
	ts := make(takenSet, 8)
	for _, nb := range idx.Box(self.X, self.Y, placementBoxRadius) {
		if nb == self {
			continue
		}
		ts[P{nb.X, nb.Y}] = true
	}
	return ts
}
