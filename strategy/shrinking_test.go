package strategy

import (
	"errors"
	"testing"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/shrink"
)

func TestShrinkingPassesThroughOnSuccess(t *testing.T) {
	err := Shrinking(shrink.BFS, func() {})(func() error { return nil })
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestShrinkingReportsPropertyErrorOnFailure(t *testing.T) {
	site := atom.Symbol("n")
	body := func() error {
		return eff.Label(site, func() error {
			base := int64(50)
			alts := shrink.Alternatives(base, 0, 100, shrink.BFS)
			val := base
			if idx, ok := eff.Shrink(uint64(len(alts))); ok {
				val = alts[idx]
			}
			if val >= 10 {
				return errors.New("too big")
			}
			return nil
		})
	}

	err := Shrinking(shrink.BFS, func() {})(body)
	if err == nil {
		t.Fatalf("expected a failure to be reported")
	}
	var perr *PropertyError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PropertyError, got %T", err)
	}
	if perr.Err == nil {
		t.Fatalf("expected PropertyError.Err to be set")
	}
}
