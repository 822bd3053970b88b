package main

import "testing"

func TestRegionOfPartitionsEvenly(t *testing.T) {
	rm := NewRegionMap(100, 100, 2)
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{49, 49, 0},
		{50, 0, 1},
		{99, 49, 1},
		{0, 50, 2},
		{49, 99, 2},
		{50, 50, 3},
		{99, 99, 3},
	}
	for _, c := range cases {
		if got := rm.RegionOf(c.x, c.y); got != c.want {
			t.Errorf("RegionOf(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestRegionOfClampsOutOfBounds(t *testing.T) {
	rm := NewRegionMap(100, 100, 2)
	if got := rm.RegionOf(-5, -5); got != 0 {
		t.Errorf("RegionOf(-5,-5) = %d, want 0 (clamped)", got)
	}
	if got := rm.RegionOf(1000, 1000); got != 3 {
		t.Errorf("RegionOf(1000,1000) = %d, want 3 (clamped)", got)
	}
}

func TestRegionMapRebuildAndMembers(t *testing.T) {
	rm := NewRegionMap(100, 100, 2)
	a1 := NewAgent(10, 10)  // region 0
	a2 := NewAgent(90, 10)  // region 1
	a3 := NewAgent(10, 90)  // region 2
	a4 := NewAgent(90, 90)  // region 3
	agents := []*Agent{a1, a2, a3, a4}

	rm.Rebuild(agents)

	if members := rm.Members(0); len(members) != 1 || members[0] != a1 {
		t.Errorf("Members(0) = %v, want [a1]", members)
	}
	if members := rm.Members(3); len(members) != 1 || members[0] != a4 {
		t.Errorf("Members(3) = %v, want [a4]", members)
	}

	// Move a1 into region 3 and rebuild; membership should update, not
	// accumulate duplicates from the prior Rebuild.
	a1.commit(90, 90)
	rm.Rebuild(agents)
	if members := rm.Members(0); len(members) != 0 {
		t.Errorf("Members(0) after move = %v, want empty", members)
	}
	if members := rm.Members(3); len(members) != 2 {
		t.Errorf("Members(3) after move = %v, want 2 agents", members)
	}
}

func TestRegionMapLockUnlockInsert(t *testing.T) {
	rm := NewRegionMap(100, 100, 2)
	a := NewAgent(10, 10)
	rm.Lock(0)
	rm.Insert(0, a)
	rm.Unlock(0)
	if members := rm.Members(0); len(members) != 1 || members[0] != a {
		t.Errorf("Members(0) after Insert = %v, want [a]", members)
	}
}

func TestRegionTakenExcludesSelf(t *testing.T) {
	rm := NewRegionMap(100, 100, 2)
	self := NewAgent(10, 10)
	other := NewAgent(11, 10)
	rm.Rebuild([]*Agent{self, other})

	taken := regionTaken(rm, 0, self)
	if taken.Occupied(P{10, 10}) {
		t.Errorf("regionTaken should exclude self's own cell")
	}
	if !taken.Occupied(P{11, 10}) {
		t.Errorf("regionTaken should include other region members' cells")
	}
}
