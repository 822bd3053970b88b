package main

import (
	"sort"
	"testing"
)

func agentSetKey(agents []*Agent) []P {
	keys := make([]P, len(agents))
	for i, a := range agents {
		keys[i] = P{a.X, a.Y}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		return keys[i].Y < keys[j].Y
	})
	return keys
}

func sliceEqual(a, b []P) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestNeighbourIndexSetEquality checks the §4.5 contract directly: for any
// layout of agents, GlobalIndex and HashGrid must answer the same Box query
// with the same set of agents, regardless of how each implementation finds
// them.
func TestNeighbourIndexSetEquality(t *testing.T) {
	positions := []P{
		{0, 0}, {1, 0}, {2, 2}, {-3, -3}, {5, 5}, {5, 6}, {-1, 1}, {100, 100},
	}
	agents := make([]*Agent, len(positions))
	for i, p := range positions {
		agents[i] = NewAgent(p.X, p.Y)
	}

	global := &GlobalIndex{Agents: agents}
	grid := NewHashGrid(agents)

	queries := []struct{ x, y, d int }{
		{0, 0, 2},
		{5, 5, 1},
		{-3, -3, 3},
		{50, 50, 10},
		{0, 0, 200},
	}

	for _, q := range queries {
		gotGlobal := agentSetKey(global.Box(q.x, q.y, q.d))
		gotGrid := agentSetKey(grid.Box(q.x, q.y, q.d))
		if !sliceEqual(gotGlobal, gotGrid) {
			t.Errorf("Box(%d,%d,%d): GlobalIndex = %v, HashGrid = %v, want equal sets", q.x, q.y, q.d, gotGlobal, gotGrid)
		}
	}
}

func TestHashGridMoveRelocatesBucket(t *testing.T) {
	a := NewAgent(0, 0)
	b := NewAgent(10, 10)
	grid := NewHashGrid([]*Agent{a, b})

	if got := agentSetKey(grid.Box(0, 0, 1)); !sliceEqual(got, []P{{0, 0}}) {
		t.Fatalf("before move: Box(0,0,1) = %v, want [(0,0)]", got)
	}

	oldX, oldY := a.X, a.Y
	a.commit(10, 10)
	grid.Move(oldX, oldY, a)

	if got := agentSetKey(grid.Box(0, 0, 1)); len(got) != 0 {
		t.Errorf("after move away: Box(0,0,1) = %v, want empty", got)
	}
	if got := agentSetKey(grid.Box(10, 10, 1)); len(got) != 2 {
		t.Errorf("after move: Box(10,10,1) = %v, want both agents", got)
	}
}

func TestHashGridMoveNoOpWhenSameBucket(t *testing.T) {
	a := NewAgent(0, 0)
	grid := NewHashGrid([]*Agent{a})
	oldX, oldY := a.X, a.Y
	a.commit(1, 0) // same cell, given hashGridCellSize > 1
	grid.Move(oldX, oldY, a)

	if got := agentSetKey(grid.Box(0, 0, 2)); len(got) != 1 {
		t.Errorf("Move within the same bucket should be a no-op; Box query = %v", got)
	}
}

func TestFloorDivNegative(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{-1, 4, -1},
		{-4, 4, -1},
		{-5, 4, -2},
		{3, 4, 0},
		{0, 4, 0},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestTakenNearExcludesSelf(t *testing.T) {
	self := NewAgent(0, 0)
	other := NewAgent(1, 0)
	idx := &GlobalIndex{Agents: []*Agent{self, other}}
	taken := takenNear(idx, self)
	if taken.Occupied(P{0, 0}) {
		t.Errorf("takenNear should exclude self's own cell")
	}
	if !taken.Occupied(P{1, 0}) {
		t.Errorf("takenNear should include neighbouring agent's cell")
	}
}
