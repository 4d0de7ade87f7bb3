package quiz

import "math/rand/v2"

// Shuffle returns a shuffled copy of items (Fisher-Yates). The input is not
// modified. A nil r uses the package-level source.
func Shuffle[T any](r *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		var j int
		if r != nil {
			j = r.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}
