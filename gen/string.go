package gen

import (
	"github.com/lucaskalb/rapidx/atom"
	"github.com/lucaskalb/rapidx/eff"
)

// Common alphabet shortcuts (plain ASCII to avoid surprises).
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
)

var (
	stringLenSite  = atom.Symbol("gen.String.len")
	stringCharSite = atom.Symbol("gen.String.char")
)

// String generates strings drawn from alphabet, with length controlled by
// size (defaults to [0, 32] with no size at all, same as Slice/Array).
// Shrinking first tries shorter lengths (keeping a prefix), then tames each
// remaining character toward alphabet[0], mirroring the order the teacher's
// original string shrinker used.
func String(alphabet string, size Size) Generator[string] {
	if len(alphabet) == 0 {
		alphabet = AlphabetAlphaNum
	}
	return func() string {
		min, max := localSize(size, 0, 32)
		if min < 0 {
			min = 0
		}
		length := min + int64(eff.Sample(uint64(max-min)))
		n := int(shrinkSite(stringLenSite, length, min, max))
		if n < 0 {
			n = 0
		}

		b := make([]byte, n)
		for i := 0; i < n; i++ {
			idx := int64(eff.Sample(uint64(len(alphabet) - 1)))
			eff.Label(atom.Number(int64(i)), func() struct{} {
				b[i] = alphabet[shrinkSite(stringCharSite, idx, 0, int64(len(alphabet)-1))]
				return struct{}{}
			})
		}
		return string(b)
	}
}

// StringAlpha, StringAlphaNum, StringDigits, and StringASCII are shorthand
// for String with the matching alphabet constant.
func StringAlpha(size Size) Generator[string]    { return String(AlphabetAlpha, size) }
func StringAlphaNum(size Size) Generator[string] { return String(AlphabetAlphaNum, size) }
func StringDigits(size Size) Generator[string]   { return String(AlphabetDigits, size) }
func StringASCII(size Size) Generator[string]    { return String(AlphabetASCII, size) }
