package gen

import "testing"

func TestUint(t *testing.T) {
	g := Uint(Size{Min: 0, Max: 100})
	runGen(t, 123, func() {
		v := g()
		if v > 100 {
			t.Errorf("Uint(Size{0,100})() = %d, want <= 100", v)
		}
	})
}

func TestUintRange(t *testing.T) {
	g := UintRange(10, 20)
	runGen(t, 123, func() {
		v := g()
		if v < 10 || v > 20 {
			t.Errorf("UintRange(10, 20)() = %d, want in [10, 20]", v)
		}
	})
}

func TestUintShrinksTowardTarget(t *testing.T) {
	g := UintRange(10, 20)
	var shrunk uint
	if err := installShrinkFirst(func() { shrunk = g() }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shrunk != 10 {
		t.Errorf("UintRange(10, 20)() under shrink-first = %d, want 10", shrunk)
	}
}
