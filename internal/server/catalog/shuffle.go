package catalog

import "math/rand/v2"

// Shuffle permutes items in place with a Fisher–Yates pass driven by r.
// Every permutation is equally likely for a uniform source.
func Shuffle[T any](r *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
