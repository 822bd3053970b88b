package main

import "github.com/ajroetker/go-highway/hwy"

/**
 * @file backend_simd.go
 * @brief Wide-SIMD, single-threaded, lane-parallel backend.
 *
 * Built on github.com/ajroetker/go-highway/hwy's portable, runtime-dispatched
 * vector primitives: hwy.Load/hwy.Store move AgentStore's columnar arrays
 * through hwy.Sub/hwy.Mul/hwy.Add/hwy.Sqrt/hwy.Div to compute the direction
 * vector, hwy.LessThan produces the "reached waypoint" lane mask, and
 * hwy.RoundToEven performs the vector rounding, the same round-half-to-even
 * convention agent.go's scalar recomputeDesired uses via math.RoundToEven so
 * the two backends agree bit for bit.
 */

// tickSIMD processes agents in hwy.MaxLanes[float64]()-wide blocks, with a
// scalar tail of (N mod W) agents run through the ordinary scalar path.
func tickSIMD(te *TickEngine, agents []*Agent) {
	n := len(agents)
	if te.Store == nil || te.Store.Len() != n {
		te.Store = NewAgentStore(n)
	}
	store := te.Store
	store.SyncFrom(agents)

	w := hwy.MaxLanes[float64]()
	if w < 1 {
		w = 1
	}

	i := 0
	for ; i+w <= n; i += w {
		simdBlock(store, agents, i, w)
	}
	for j := 0; j < i; j++ {
		agents[j].commit(int(store.Xs[j]), int(store.Ys[j]))
	}

	// Scalar tail: identical algorithm to the sequential backend's fast
	// path, not routed through AgentStore at all.
	for ; i < n; i++ {
		a := agents[i]
		a.recomputeDesired()
		a.commit(a.DX, a.DY)
	}
}

// simdBlock computes new desired positions for agents[lo:lo+w], rotating
// waypoints for any lane that has arrived.
func simdBlock(store *AgentStore, agents []*Agent, lo, w int) {
	xs := store.Xs[lo : lo+w]
	ys := store.Ys[lo : lo+w]
	destXs := store.DestXs[lo : lo+w]
	destYs := store.DestYs[lo : lo+w]
	destRs := store.DestRs[lo : lo+w]

	xv := hwy.Load(xs)
	yv := hwy.Load(ys)

	_, _, l := simdDirection(xv, yv, hwy.Load(destXs), hwy.Load(destYs))
	reached := hwy.LessThan(l, hwy.Load(destRs))

	// Queue rotation mutates a per-agent container and so cannot be
	// vectorised; break lane parallelism only for lanes whose mask bit is
	// set.
	for j := 0; j < reached.NumLanes(); j++ {
		if !reached.GetBit(j) {
			continue
		}
		a := agents[lo+j]
		a.rotate()
		store.refreshDestination(lo+j, a)
	}

	dX, dY, l := simdDirection(xv, yv, hwy.Load(destXs), hwy.Load(destYs))
	newX := hwy.RoundToEven(hwy.Add(xv, hwy.Div(dX, l)))
	newY := hwy.RoundToEven(hwy.Add(yv, hwy.Div(dY, l)))
	hwy.Store(newX, xs)
	hwy.Store(newY, ys)
}

// simdDirection computes the epsilon-guarded direction vector shared by both
// passes of simdBlock.
func simdDirection(xv, yv, destXv, destYv hwy.Vec[float64]) (dX, dY, l hwy.Vec[float64]) {
	dX = hwy.Sub(destXv, xv)
	dY = hwy.Sub(destYv, yv)
	l = hwy.Sqrt(hwy.Add(hwy.Mul(dX, dX), hwy.Mul(dY, dY)))
	l = hwy.Add(l, hwy.Set[float64](epsilon))
	return dX, dY, l
}
