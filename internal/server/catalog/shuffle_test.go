package catalog

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffle_IsPermutation(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := slices.Clone(in)

	Shuffle(r, out)

	got := slices.Clone(out)
	slices.Sort(got)
	assert.Equal(t, in, got)
}

func TestShuffle_Empty(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	assert.NotPanics(t, func() {
		Shuffle(r, []string(nil))
		Shuffle(r, []string{"only"})
	})
}

// Every permutation of four items should show up close to 1/24 of the time.
func TestShuffle_Uniform(t *testing.T) {
	const rounds = 240_000
	r := rand.New(rand.NewPCG(42, 1337))

	counts := map[[4]int]int{}
	for i := 0; i < rounds; i++ {
		p := []int{0, 1, 2, 3}
		Shuffle(r, p)
		counts[[4]int(p)]++
	}

	assert.Len(t, counts, 24)
	expected := rounds / 24
	for perm, n := range counts {
		assert.InDelta(t, expected, n, float64(expected)*0.05, "permutation %v", perm)
	}
}
