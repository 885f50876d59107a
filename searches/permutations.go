package searches

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of values in lexicographic order of
// positions. The yielded slice is reused between iterations.
func Permutations(values []int64) iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		n := len(values)
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		perm := make([]int64, n)
		for {
			for i, idx := range indices {
				perm[i] = values[idx]
			}
			if !yield(perm) {
				return
			}
			if !nextPermutation(indices) {
				return
			}
		}
	}
}

func nextPermutation(indices []int) bool {
	i := len(indices) - 2
	for i >= 0 && indices[i] >= indices[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(indices) - 1
	for indices[j] <= indices[i] {
		j--
	}
	indices[i], indices[j] = indices[j], indices[i]
	slices.Reverse(indices[i+1:])
	return true
}
