package physics

import (
	"slices"
	"testing"
)

func collect(g *SpatialGrid, pos, size Vec2) []int {
	var got []int
	g.Query(pos, size, func(i int) bool {
		got = append(got, i)
		return false
	})
	slices.Sort(got)
	return got
}

func TestSpatialGridQueryNearby(t *testing.T) {
	g := NewSpatialGrid(Rect{Pos: V(19, 9.5), Size: V(38, 19)}, 2)
	g.Insert(V(5, 5), V(1, 1), 0)
	g.Insert(V(30, 15), V(1, 1), 1)

	if got := collect(g, V(5.2, 5.1), V(0, 0)); !slices.Equal(got, []int{0}) {
		t.Errorf("query near first = %v, want [0]", got)
	}
	if got := collect(g, V(30, 15), V(0, 0)); !slices.Equal(got, []int{1}) {
		t.Errorf("query near second = %v, want [1]", got)
	}
}

func TestSpatialGridLargeObjectReportedOnce(t *testing.T) {
	g := NewSpatialGrid(Rect{Pos: V(19, 9.5), Size: V(38, 19)}, 2)
	// Tall wall spanning every row
	g.Insert(V(-0.5, 9.5), V(1, 100), 7)

	if got := collect(g, V(0.2, 0.5), V(1, 1)); !slices.Equal(got, []int{7}) {
		t.Errorf("query at bottom = %v, want [7]", got)
	}
	if got := collect(g, V(0.2, 18), V(1, 4)); !slices.Equal(got, []int{7}) {
		t.Errorf("query at top = %v, want [7] exactly once", got)
	}
}

func TestSpatialGridOffFieldClampsToBorder(t *testing.T) {
	g := NewSpatialGrid(Rect{Pos: V(19, 9.5), Size: V(38, 19)}, 2)
	g.Insert(V(45, 30), V(0.75, 0.75), 3)

	if got := collect(g, V(45, 30), V(0, 0)); !slices.Equal(got, []int{3}) {
		t.Errorf("off-field query = %v, want [3]", got)
	}
}

func TestSpatialGridClearAndEarlyStop(t *testing.T) {
	g := NewSpatialGrid(Rect{Pos: V(5, 5), Size: V(10, 10)}, 2)
	for i := 0; i < 5; i++ {
		g.Insert(V(5, 5), V(1, 1), i)
	}

	calls := 0
	g.Query(V(5, 5), V(1, 1), func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Errorf("early stop made %d calls, want 1", calls)
	}

	g.Clear()
	if got := collect(g, V(5, 5), V(10, 10)); len(got) != 0 {
		t.Errorf("after Clear got %v, want none", got)
	}
}
