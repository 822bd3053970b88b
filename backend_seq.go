package main

/**
 * @file backend_seq.go
 * @brief Sequential baseline backend.
 *
 * Ports step_seq.go's "walk the grid once, in order" shape, but without
 * step_seq.go's double-buffering: since a sequential walk never races with
 * itself, each agent commits directly, exactly as the original pedsim
 * reference does.
 */

// tickSeq visits agents in slice order; for each, recomputeDesired, then
// either commits the desired cell directly (fast path) or resolves it
// through Placement (when te.Placement is set, per the usesPlacement rule).
func tickSeq(te *TickEngine, agents []*Agent) {
	var idx NeighbourIndex
	var hg *HashGrid
	if te.Placement {
		if te.UseHashGrid {
			hg = NewHashGrid(agents)
			idx = hg
		} else {
			idx = &GlobalIndex{Agents: agents}
		}
	}

	for _, a := range agents {
		oldX, oldY := a.X, a.Y
		a.recomputeDesired()
		if idx == nil {
			a.commit(a.DX, a.DY)
			continue
		}
		resolvePlacement(a, takenNear(idx, a))
		if hg != nil {
			hg.Move(oldX, oldY, a)
		}
	}
}
