package gen

import (
	"math"
	"testing"
)

func TestFloat32(t *testing.T) {
	g := Float32(Size{Min: 0, Max: 100})
	runGen(t, 123, func() {
		v := g()
		if v < 0 || v > 100 {
			t.Errorf("Float32(Size{0,100})() = %f, want in [0, 100]", v)
		}
	})
}

func TestFloat32Range(t *testing.T) {
	g := Float32Range(10.0, 20.0, false, false)
	runGen(t, 123, func() {
		v := g()
		if v < 10.0 || v > 20.0 {
			t.Errorf("Float32Range(10, 20, false, false)() = %f, want in [10, 20]", v)
		}
	})
}

func TestFloat32RangeCanProduceNaNAndInf(t *testing.T) {
	g := Float32Range(10.0, 20.0, true, true)
	sawSpecial := false
	runGen(t, 1, func() {
		for i := 0; i < 200; i++ {
			v := g()
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				sawSpecial = true
				continue
			}
			if v < 10.0 || v > 20.0 {
				t.Errorf("Float32Range(10, 20, true, true)() = %f, want in [10, 20] or NaN/Inf", v)
			}
		}
	})
	if !sawSpecial {
		t.Error("Float32Range with includeNaN/includeInf never produced a special value over 200 draws")
	}
}

func TestFloat32ShrinksTowardTarget(t *testing.T) {
	g := Float32Range(10.0, 20.0, false, false)
	var shrunk float32
	if err := installShrinkFirst(func() { shrunk = g() }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shrunk != 10.0 {
		t.Errorf("Float32Range(10, 20, false, false)() under shrink-first = %f, want 10", shrunk)
	}
}
