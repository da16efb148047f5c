// Package domain holds generators tied to a specific real-world format
// rather than a Go type — CPF (the Brazilian taxpayer id) being the one
// the teacher carried. Kept separate from gen so a consumer that only
// wants general-purpose generators doesn't pull in domain-specific ones.
package domain

import (
	"errors"
	"strings"
	"unicode"

	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
	"github.com/lucaskalb/rapidx/gen"
	"github.com/lucaskalb/rapidx/shrink"
)

var (
	cpfDigitSite  = atom.Symbol("domain.CPF.digit")
	cpfMaskedSite = atom.Symbol("domain.CPF.masked")
)

// CPF generates valid CPF numbers; masked controls the format. Shrinking
// tames each root digit toward 0, right after which the verifier digits
// are recomputed — a failing-case minimizer never gets to see an
// inconsistent CPF.
func CPF(masked bool) gen.Generator[string] {
	return func() string {
		root := make([]byte, 9)
		eff.Label(cpfDigitSite, func() struct{} {
			for i := 0; i < 9; i++ {
				base := int64(eff.Sample(9))
				root[i] = byte(eff.Label(atom.Number(int64(i)), func() int64 {
					return shrinkDigit(base)
				}))
			}
			return struct{}{}
		})
		if allSameDigits(root) {
			root[8] = (root[8] + 1) % 10
		}
		d1, d2 := computeCPFVerifiersBytes(root)

		raw := make([]byte, 0, 11)
		for _, n := range root {
			raw = append(raw, '0'+n)
		}
		raw = append(raw, d1, d2)

		cur := string(raw)
		if masked {
			cur = MaskCPF(cur)
		}
		return cur
	}
}

// shrinkDigit offers shrink.Alternatives(base, 0, 9) under label, ordered by
// the ambient shrink strategy (matching the other gen generators).
func shrinkDigit(base int64) int64 {
	order := shrink.BFS
	if gen.GetShrinkStrategy() == "dfs" {
		order = shrink.DFS
	}
	alts := shrink.Alternatives(base, 0, 9, order)
	if len(alts) == 0 {
		return base
	}
	idx, ok := eff.Shrink(uint64(len(alts)))
	if !ok || idx >= uint64(len(alts)) {
		return base
	}
	return alts[idx]
}

// CPFAny generates CPF numbers with a 50/50 chance of being masked or
// unmasked, shrinking toward unmasked (the textually shorter form).
func CPFAny() gen.Generator[string] {
	return func() string {
		v := eff.Next(eff.W(1), eff.W(1))
		masked := eff.Label(cpfMaskedSite, func() bool {
			if !v {
				return false
			}
			idx, ok := eff.Shrink(1)
			if ok && idx == 0 {
				return false
			}
			return true
		})
		return CPF(masked)()
	}
}

// ValidCPF checks if a string is a valid CPF number.
func ValidCPF(s string) bool {
	raw := UnmaskCPF(s)
	if len(raw) != 11 {
		return false
	}
	b := []byte(raw)
	if allSame(b) {
		return false
	}
	d1, d2 := computeCPFVerifiers(b[:9])
	return b[9] == d1 && b[10] == d2
}

// MaskCPF formats a raw CPF string with dots and dashes.
func MaskCPF(raw string) string {
	raw = UnmaskCPF(raw)
	if len(raw) != 11 {
		panic(errors.New("MaskCPF: needs 11 digits"))
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// UnmaskCPF removes all non-digit characters from a CPF string.
func UnmaskCPF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteByte(byte((int(r) - int('0')) + int('0')))
		}
	}
	return b.String()
}

// allSame checks if all bytes in a slice are the same.
func allSame(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	f := b[0]
	for _, x := range b[1:] {
		if x != f {
			return false
		}
	}
	return true
}

// allSameDigits checks if all bytes in a slice represent the same digit.
func allSameDigits(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	f := b[0]
	for _, x := range b[1:] {
		if x != f {
			return false
		}
	}
	return true
}

// computeCPFVerifiers calculates the verification digits for a CPF root
// given as ASCII digit bytes ('0'-'9').
func computeCPFVerifiers(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiers: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]-'0') * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]-'0') * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}

// computeCPFVerifiersBytes is computeCPFVerifiers for a root given as raw
// digit values (0-9) instead of ASCII bytes.
func computeCPFVerifiersBytes(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiersBytes: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]) * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]) * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}
