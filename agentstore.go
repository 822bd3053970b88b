package main

/**
 * @file agentstore.go
 * @brief Columnar mirror of agent fields consumed by the SIMD backend.
 *
 * hwy.Load/hwy.Store copy into and out of freshly-allocated internal slices
 * rather than operating on caller memory in place, so vector-width alignment
 * is hwy's concern, not ours; AgentStore's job is only to keep these five
 * parallel arrays in lock-step with Agent fields, sized to exactly one entry
 * per agent. hwy.MaxLanes-wide blocks cover all but a scalar tail of at most
 * MaxLanes-1 agents, which the SIMD backend handles outside the store.
 */

// AgentStore is the SIMD view of a set of agents: five parallel arrays,
// written only by backend_simd.go's single thread and not authoritative
// across other backends.
type AgentStore struct {
	Xs, Ys             []float64
	DestXs, DestYs     []float64
	DestRs             []float64
}

// NewAgentStore allocates an AgentStore sized for n agents.
func NewAgentStore(n int) *AgentStore {
	return &AgentStore{
		Xs:     make([]float64, n),
		Ys:     make([]float64, n),
		DestXs: make([]float64, n),
		DestYs: make([]float64, n),
		DestRs: make([]float64, n),
	}
}

// Len reports the number of agents the store is sized for.
func (s *AgentStore) Len() int { return len(s.Xs) }

// SyncFrom copies each agent's current position and cached destination
// fields into the columnar arrays. Called at the start of a SIMD tick;
// agents and the store must be the same length and in the same order.
func (s *AgentStore) SyncFrom(agents []*Agent) {
	for i, a := range agents {
		s.Xs[i] = float64(a.X)
		s.Ys[i] = float64(a.Y)
		s.DestXs[i] = float64(a.DestX)
		s.DestYs[i] = float64(a.DestY)
		s.DestRs[i] = float64(a.DestR)
	}
}

// refreshDestination re-reads lane i's cached destination fields from its
// agent's (possibly just-rotated) Current waypoint.
func (s *AgentStore) refreshDestination(i int, a *Agent) {
	s.DestXs[i] = float64(a.DestX)
	s.DestYs[i] = float64(a.DestY)
	s.DestRs[i] = float64(a.DestR)
}
