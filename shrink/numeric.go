package shrink

// Alternatives builds the ordered candidate list a numeric shrink site
// offers for the current value, ported directly from the teacher's
// gen/int.go intShrinkInit neighbor heuristics: aim for the target first
// (0 if in range, else the closest bound), then bisect toward it, then take
// a unit step, then finally offer the bounds themselves. base, min, max are
// expressed as int64 so callers generaliize the same heuristic to any sized
// signed integer; unsigned callers pass a shifted range.
func Alternatives(base, min, max int64, s Strategy) []int64 {
	if min > max {
		min, max = max, min
	}
	target := shrinkTarget(min, max)
	seen := map[int64]struct{}{base: {}}
	var out []int64
	push := func(x int64) {
		if x < min || x > max {
			return
		}
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}

	if base != target {
		push(target)
		next := midpointTowards(base, target)
		if next != base {
			push(next)
		}
		series := next
		for i := 0; i < 8 && series != target; i++ {
			series = midpointTowards(series, target)
			if series != base {
				push(series)
			}
		}
		step := stepTowards(base, target)
		if step != base {
			push(step)
		}
	}
	if base != min {
		push(min)
	}
	if base != max {
		push(max)
	}

	idx := order(len(out), s)
	ordered := make([]int64, len(out))
	for i, j := range idx {
		ordered[i] = out[j]
	}
	return ordered
}

func shrinkTarget(min, max int64) int64 {
	if min <= 0 && max >= 0 {
		return 0
	}
	if max < 0 {
		return max
	}
	return min
}

func midpointTowards(a, b int64) int64 {
	if a == b {
		return a
	}
	if a < b {
		return a + (b-a)/2
	}
	return a - (a-b)/2
}

func stepTowards(a, b int64) int64 {
	switch {
	case a < b:
		return a + 1
	case a > b:
		return a - 1
	default:
		return a
	}
}
