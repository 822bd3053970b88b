package main

import "sync"

/**
 * @file regionmap.go
 * @brief Partitions the world into a fixed K×K grid of regions so Placement
 * can run safely under parallelism without a single global lock.
 *
 * Generalises step_par.go's row-strip decomposition (splitRows) from 1×K
 * horizontal strips to a full K×K grid, and borrows dragonfly's one-lock-
 * per-partition idiom (server/world/redstone) for the migration-drain phase
 * instead of a single lock over the whole map.
 */

// RegionMap partitions an W×H world into K×K regions and tracks which
// agents currently occupy each one. Every agent belongs to exactly one
// region, determined by its last committed (X, Y); after a tick completes
// the mapping reflects committed positions.
type RegionMap struct {
	K             int
	Width, Height int

	mu      []sync.Mutex
	members [][]*Agent
}

// NewRegionMap builds a RegionMap over a world of the given size, K^2
// regions (K=2 in the reference configuration).
func NewRegionMap(width, height, k int) *RegionMap {
	return &RegionMap{
		K: k, Width: width, Height: height,
		mu:      make([]sync.Mutex, k*k),
		members: make([][]*Agent, k*k),
	}
}

// RegionOf returns the region id (0..K²-1) a cell belongs to.
func (r *RegionMap) RegionOf(x, y int) int {
	rx := x * r.K / r.Width
	if rx >= r.K {
		rx = r.K - 1
	} else if rx < 0 {
		rx = 0
	}
	ry := y * r.K / r.Height
	if ry >= r.K {
		ry = r.K - 1
	} else if ry < 0 {
		ry = 0
	}
	return ry*r.K + rx
}

// Rebuild re-derives the region membership from the current committed
// positions of agents. Called once per tick boundary (sequentially; never
// concurrently with region-parallel workers).
func (r *RegionMap) Rebuild(agents []*Agent) {
	for i := range r.members {
		r.members[i] = r.members[i][:0]
	}
	for _, a := range agents {
		id := r.RegionOf(a.X, a.Y)
		r.members[id] = append(r.members[id], a)
	}
}

// Members returns the agents currently mapped to region id, the
// region-filtered form of NeighbourIndex.
func (r *RegionMap) Members(id int) []*Agent {
	return r.members[id]
}

// Lock/Unlock guard a single region's member list during the migration
// drain phase of the region-parallel backend. They are not used while
// workers process their own region, since each worker owns its region
// exclusively until the barrier.
func (r *RegionMap) Lock(id int)   { r.mu[id].Lock() }
func (r *RegionMap) Unlock(id int) { r.mu[id].Unlock() }

// Insert adds a migrated agent to region id's member list. Callers must hold
// Lock(id).
func (r *RegionMap) Insert(id int, a *Agent) {
	r.members[id] = append(r.members[id], a)
}

// regionTaken builds a Taken set from every other agent currently mapped to
// region id.
func regionTaken(r *RegionMap, id int, self *Agent) Taken {
	members := r.Members(id)
	ts := make(takenSet, len(members))
	for _, nb := range members {
		if nb == self {
			continue
		}
		ts[P{nb.X, nb.Y}] = true
	}
	return ts
}
