package main

/**
 * @file simulator.go
 * @brief Drives ticks to completion and exposes hooks for the external
 * recorder/viewer.
 *
 * Named and shaped after dragonfly's server/world/tick.go ticker/tickLoop
 * (increment a counter, run one tick, notify subscribers) but run-to-
 * completion rather than wall-clock scheduled, matching teacher main.go's
 * fixed-step-count terminal-mode loop.
 */

// Subscriber is notified after every tick with the tick count just completed
// and a read-only view of current agent state. The trajectory recorder and
// the viewer are both external Subscribers.
type Subscriber func(tick int, agents []*Agent)

// Simulator owns all Agents and Waypoints for one run and drives ticks to
// completion via a chosen TickEngine backend.
type Simulator struct {
	Agents    []*Agent
	Waypoints []*Waypoint
	Engine    *TickEngine
	MaxSteps  int

	tickCount   int
	subscribers []Subscriber
}

// NewSimulator constructs a Simulator ready to run. Agents must already have
// initDestination called (by the scenario loader) so their first
// recomputeDesired has a Current waypoint to aim at.
func NewSimulator(agents []*Agent, waypoints []*Waypoint, engine *TickEngine, maxSteps int) *Simulator {
	return &Simulator{Agents: agents, Waypoints: waypoints, Engine: engine, MaxSteps: maxSteps}
}

// Subscribe registers a Subscriber to be notified after every tick.
func (s *Simulator) Subscribe(sub Subscriber) {
	s.subscribers = append(s.subscribers, sub)
}

// GetTickCount returns the number of ticks completed so far.
func (s *Simulator) GetTickCount() int { return s.tickCount }

// Tick advances the simulation by exactly one tick and notifies subscribers.
// A no-op (but still counted) when there are no agents (N=0 boundary case).
func (s *Simulator) Tick() {
	s.Engine.Tick(s.Agents)
	s.tickCount++
	for _, sub := range s.subscribers {
		sub(s.tickCount, s.Agents)
	}
}

// RunUntilDone runs ticks until GetTickCount reaches MaxSteps.
func (s *Simulator) RunUntilDone() {
	for s.tickCount < s.MaxSteps {
		s.Tick()
	}
}

// Paint is the pull interface the viewer calls each frame: it reads current
// committed positions without requiring the Simulator to push anything.
func (s *Simulator) Paint() []P {
	out := make([]P, len(s.Agents))
	for i, a := range s.Agents {
		out[i] = P{a.X, a.Y}
	}
	return out
}
