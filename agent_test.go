package main

import "testing"

func TestNewAgent(t *testing.T) {
	a := NewAgent(3, 4)
	if a.X != 3 || a.Y != 4 {
		t.Fatalf("NewAgent(3,4) = %+v, want X=3 Y=4", a)
	}
	if a.Current != nil {
		t.Fatalf("NewAgent should start with no Current waypoint, got %+v", a.Current)
	}
}

func TestAgentEmptyQueueHoldsPosition(t *testing.T) {
	a := NewAgent(5, 5)
	a.recomputeDesired()
	if a.DX != a.X || a.DY != a.Y {
		t.Errorf("empty-queue agent: DX,DY = %d,%d, want %d,%d (I4: hold position)", a.DX, a.DY, a.X, a.Y)
	}
	a.commit(a.DX, a.DY)
	if a.X != 5 || a.Y != 5 {
		t.Errorf("empty-queue agent moved: X,Y = %d,%d, want unchanged 5,5", a.X, a.Y)
	}
}

func TestAgentStepsTowardWaypoint(t *testing.T) {
	a := NewAgent(0, 0)
	w := NewWaypoint("w1", 10, 0, 1)
	a.addWaypoint(w)
	a.initDestination()

	a.recomputeDesired()
	a.commit(a.DX, a.DY)

	if a.X <= 0 || a.X > 1 {
		t.Errorf("first step toward (10,0) from (0,0): X = %d, want in (0,1]", a.X)
	}
	if a.Y != 0 {
		t.Errorf("straight-line move along X axis should not drift in Y, got Y=%d", a.Y)
	}
}

func TestAgentRotatesOnArrival(t *testing.T) {
	a := NewAgent(0, 0)
	w1 := NewWaypoint("w1", 0, 0, 2) // already inside arrival radius
	w2 := NewWaypoint("w2", 20, 0, 1)
	a.addWaypoint(w1)
	a.addWaypoint(w2)
	a.initDestination()

	if a.Current != w1 {
		t.Fatalf("initDestination: Current = %+v, want w1", a.Current)
	}

	a.recomputeDesired()
	if a.Current != w2 {
		t.Errorf("recomputeDesired: Current after arrival = %+v, want w2 (I-WAYPOINT-ROTATION)", a.Current)
	}
	if len(a.Queue) != 2 || a.Queue[len(a.Queue)-1] != w1 {
		t.Errorf("rotate should append the old front to the tail, got Queue = %+v", a.Queue)
	}
}

func TestAgentRotateSingleWaypointCyclesOntoItself(t *testing.T) {
	a := NewAgent(0, 0)
	w := NewWaypoint("only", 0, 0, 2)
	a.addWaypoint(w)
	a.initDestination()

	a.recomputeDesired()
	if a.Current != w {
		t.Errorf("single-waypoint route should rotate onto itself, Current = %+v", a.Current)
	}
	if len(a.Queue) != 1 {
		t.Errorf("single-waypoint Queue length changed: %d, want 1", len(a.Queue))
	}
}

func TestAgentCommitIsSoleWriter(t *testing.T) {
	a := NewAgent(1, 1)
	a.DX, a.DY = 9, 9
	a.commit(7, 8)
	if a.X != 7 || a.Y != 8 {
		t.Errorf("commit(7,8): X,Y = %d,%d, want 7,8", a.X, a.Y)
	}
}

func TestDistPythagorean(t *testing.T) {
	if got, want := dist(0, 0, 3, 4), 5.0; got != want {
		t.Errorf("dist(0,0,3,4) = %v, want %v", got, want)
	}
}
