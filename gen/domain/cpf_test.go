package domain

import (
	"strings"
	"testing"

	"github.com/lucaskalb/rapidx/shrink"
	"github.com/lucaskalb/rapidx/strategy"
)

func runWithRandom(t *testing.T, seed int64, f func()) {
	t.Helper()
	err := strategy.Random(seed)(func() error {
		f()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCPF(t *testing.T) {
	runWithRandom(t, 123, func() {
		value := CPF(false)()
		if len(value) != 11 {
			t.Errorf("CPF(false)() = %q (len=%d), expected length 11", value, len(value))
		}
		if !ValidCPF(value) {
			t.Errorf("CPF(false)() = %q is not a valid CPF", value)
		}
	})
}

func TestCPFMasked(t *testing.T) {
	runWithRandom(t, 123, func() {
		value := CPF(true)()
		if len(value) != 14 {
			t.Errorf("CPF(true)() = %q (len=%d), expected length 14", value, len(value))
		}
		if !ValidCPF(value) {
			t.Errorf("CPF(true)() = %q is not a valid CPF", value)
		}
	})
}

func TestCPFAny(t *testing.T) {
	runWithRandom(t, 123, func() {
		value := CPFAny()()
		if !ValidCPF(value) {
			t.Errorf("CPFAny()() = %q is not a valid CPF", value)
		}
	})
}

func TestValidCPF(t *testing.T) {
	if !ValidCPF("11144477735") {
		t.Error("ValidCPF() should return true for a valid CPF")
	}
	if ValidCPF("11111111111") {
		t.Error("ValidCPF() should return false for all-same digits")
	}
}

func TestMaskCPF(t *testing.T) {
	cpf := "12345678901"
	masked := MaskCPF(cpf)
	if len(masked) != 14 {
		t.Errorf("MaskCPF() = %q (len=%d), expected length 14", masked, len(masked))
	}
	if !strings.Contains(masked, ".") || !strings.Contains(masked, "-") {
		t.Errorf("MaskCPF() = %q, expected to contain dots and dashes", masked)
	}
}

func TestUnmaskCPF(t *testing.T) {
	masked := "123.456.789-01"
	unmasked := UnmaskCPF(masked)
	if unmasked != "12345678901" {
		t.Errorf("UnmaskCPF() = %q, expected %q", unmasked, "12345678901")
	}
}

func TestCPFDigitShrinkOffersZero(t *testing.T) {
	// A digit-bisection shrink site should always offer 0 as a candidate
	// for a nonzero base, mirroring the numeric shrinker's target rule.
	alts := shrink.Alternatives(7, 0, 9, shrink.BFS)
	found := false
	for _, a := range alts {
		if a == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("shrink.Alternatives(7, 0, 9, ...) = %v, want 0 present", alts)
	}
}
