package strategy

import (
	"errors"
	"testing"

	"github.com/lucaskalb/rapidx/eff"
)

func TestPipeNestsGInsideF(t *testing.T) {
	var order []string
	f := func(body eff.Property) error {
		order = append(order, "f-before")
		err := body()
		order = append(order, "f-after")
		return err
	}
	g := func(body eff.Property) error {
		order = append(order, "g-before")
		err := body()
		order = append(order, "g-after")
		return err
	}
	composed := Pipe(f, g)
	composed(func() error {
		order = append(order, "body")
		return nil
	})

	want := []string{"f-before", "g-before", "body", "g-after", "f-after"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestThenRunsSequentially(t *testing.T) {
	var order []string
	f := func(body eff.Property) error { order = append(order, "f"); return nil }
	g := func(body eff.Property) error { order = append(order, "g"); return nil }
	Then(f, g)(func() error { return nil })

	if len(order) != 2 || order[0] != "f" || order[1] != "g" {
		t.Fatalf("order = %v, want [f g]", order)
	}
}

func TestThenShortCircuitsOnError(t *testing.T) {
	sentinel := errors.New("boom")
	f := func(body eff.Property) error { return sentinel }
	called := false
	g := func(body eff.Property) error { called = true; return nil }

	err := Then(f, g)(func() error { return nil })
	if err != sentinel {
		t.Fatalf("err = %v, want %v", err, sentinel)
	}
	if called {
		t.Fatalf("expected g not to run after f failed")
	}
}

func TestRandomIsDeterministicForFixedSeed(t *testing.T) {
	sample := func() uint64 {
		var got uint64
		Random(42)(func() error {
			got = eff.Sample(1000)
			return nil
		})
		return got
	}
	a, b := sample(), sample()
	if a != b {
		t.Fatalf("Random(42) produced %d then %d, want equal", a, b)
	}
}

func TestSizedInstallsFixedSize(t *testing.T) {
	var got uint64
	Sized(7)(func() error {
		got = eff.Size()
		return nil
	})
	if got != 7 {
		t.Fatalf("Size() inside Sized(7) = %d, want 7", got)
	}
}

func TestLinearSizeGrowsWithProgress(t *testing.T) {
	if got := LinearSize(0, 10, 100); got != 1 {
		t.Errorf("LinearSize(0,10,100) = %d, want 1", got)
	}
	if got := LinearSize(9, 10, 100); got != 100 {
		t.Errorf("LinearSize(9,10,100) = %d, want 100", got)
	}
}
