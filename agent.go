package main

import "math"

/**
 * @file agent.go
 * @brief Defines Agent, the per-pedestrian mutable state and its per-tick
 * desired-position algorithm.
 *
 * An Agent is exclusively owned by the Simulator. Its (X, Y) field is only
 * ever a cell that Placement (or the scenario loader) has committed it to,
 * never a transient desired value; its (DX, DY) field is scratch space, only
 * meaningful between a call to recomputeDesired and the matching commit
 * within the same tick.
 */

// epsilon guards the direction-vector division in recomputeDesired against
// division by zero when an agent is already sitting on its destination cell.
// Both the scalar and SIMD paths add it to L before dividing; the scalar
// arrival test compares L without it, while the SIMD reached mask compares
// L with it.
const epsilon = 1e-9

// Agent is a single simulated pedestrian.
type Agent struct {
	X, Y   int ///< Current cell; always a committed position.
	DX, DY int ///< Desired next cell; valid only within one tick.

	Queue   []*Waypoint ///< Ordered, rotating route; front is the current destination.
	Current *Waypoint   ///< Front of Queue, or nil if Queue is empty.

	DestX, DestY, DestR int ///< Cached copy of Current's fields.
}

// NewAgent constructs an Agent at (x, y) with an empty route. Callers should
// follow with addWaypoint for each destination and then initDestination.
func NewAgent(x, y int) *Agent {
	return &Agent{X: x, Y: y}
}

// addWaypoint appends w to the agent's route. w must be a live waypoint
// owned by the same Simulator for the agent's lifetime.
func (a *Agent) addWaypoint(w *Waypoint) {
	a.Queue = append(a.Queue, w)
}

// initDestination sets Current to the front of the route and refreshes the
// cached destination fields. A no-op if the route is empty.
func (a *Agent) initDestination() {
	if len(a.Queue) == 0 {
		return
	}
	a.Current = a.Queue[0]
	a.refreshCache()
}

func (a *Agent) refreshCache() {
	a.DestX, a.DestY, a.DestR = a.Current.X, a.Current.Y, a.Current.R
}

// rotate pops the front waypoint, appends it to the tail, and makes the new
// front current, refreshing the cached destination fields. The route cycles
// forever; a single-element route rotates onto itself.
func (a *Agent) rotate() {
	front := a.Queue[0]
	a.Queue = append(a.Queue[1:], front)
	a.Current = a.Queue[0]
	a.refreshCache()
}

// dist returns the Euclidean distance from (x, y) to (destX, destY).
func dist(x, y, destX, destY int) float64 {
	dx := float64(destX - x)
	dy := float64(destY - y)
	return math.Sqrt(dx*dx + dy*dy)
}

// recomputeDesired updates (DX, DY). If the agent's distance to its current
// waypoint has fallen below the waypoint's radius, the route is rotated
// first before the new desired cell is computed. If the route is empty,
// (DX, DY) is left equal to (X, Y).
func (a *Agent) recomputeDesired() {
	if a.Current == nil {
		a.DX, a.DY = a.X, a.Y
		return
	}

	l := dist(a.X, a.Y, a.DestX, a.DestY)
	if l < float64(a.DestR) {
		a.rotate()
		l = dist(a.X, a.Y, a.DestX, a.DestY)
	}

	lg := l + epsilon
	dx := float64(a.X) + float64(a.DestX-a.X)/lg
	dy := float64(a.Y) + float64(a.DestY-a.Y)/lg
	a.DX = int(math.RoundToEven(dx))
	a.DY = int(math.RoundToEven(dy))
}

// commit sets the agent's committed position. Only Placement or a TickEngine
// backend may call this; it is the sole writer of (X, Y).
func (a *Agent) commit(x, y int) {
	a.X, a.Y = x, y
}
