package shrink

import "testing"

func TestAlternativesIncludesZeroWhenInRange(t *testing.T) {
	alts := Alternatives(87, -100, 100, BFS)
	found := false
	for _, a := range alts {
		if a == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 0 among alternatives for base 87 in [-100,100], got %v", alts)
	}
}

func TestAlternativesNeverRepeatsBase(t *testing.T) {
	alts := Alternatives(5, 0, 10, BFS)
	for _, a := range alts {
		if a == 5 {
			t.Fatalf("alternatives must not include the base value, got %v", alts)
		}
	}
}

func TestAlternativesIncludesBounds(t *testing.T) {
	alts := Alternatives(5, 0, 10, BFS)
	var hasMin, hasMax bool
	for _, a := range alts {
		if a == 0 {
			hasMin = true
		}
		if a == 10 {
			hasMax = true
		}
	}
	if !hasMin || !hasMax {
		t.Fatalf("expected both bounds among alternatives, got %v", alts)
	}
}

func TestAlternativesEmptyAtTarget(t *testing.T) {
	alts := Alternatives(0, -10, 10, BFS)
	if len(alts) != 2 {
		t.Fatalf("base already at target 0: expected only the two bounds, got %v", alts)
	}
}

func TestShrinkTargetPrefersZero(t *testing.T) {
	if got := shrinkTarget(-5, 5); got != 0 {
		t.Errorf("shrinkTarget(-5,5) = %d, want 0", got)
	}
	if got := shrinkTarget(3, 9); got != 3 {
		t.Errorf("shrinkTarget(3,9) = %d, want 3", got)
	}
	if got := shrinkTarget(-9, -3); got != -3 {
		t.Errorf("shrinkTarget(-9,-3) = %d, want -3", got)
	}
}

func TestDFSReversesBFSOrder(t *testing.T) {
	bfs := Alternatives(87, -100, 100, BFS)
	dfs := Alternatives(87, -100, 100, DFS)
	if len(bfs) != len(dfs) {
		t.Fatalf("expected same alternative set, different order: bfs=%v dfs=%v", bfs, dfs)
	}
	for i := range bfs {
		if bfs[i] != dfs[len(dfs)-1-i] {
			t.Fatalf("dfs should be bfs reversed: bfs=%v dfs=%v", bfs, dfs)
		}
	}
}
