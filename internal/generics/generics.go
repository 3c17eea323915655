// Package generics implements generic data structure functions missing from the stdlib.
package generics

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SliceMap executes the given function sequentially for every element on in, and returns a mapped slice.
func SliceMap[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// SortedKeys returns an iterator over the sorted keys of the given map.
//
// It extracts the keys, sort them and then iterate over, so it's convenient but not fast.
func SortedKeys[M interface{ ~map[K]V }, K cmp.Ordered, V any](m M) iter.Seq[K] {
	sortedKeys := slices.Collect(maps.Keys(m))
	slices.Sort(sortedKeys)
	return slices.Values(sortedKeys)
}

// ArgBest returns the index of the best element of values, where better(a, b) reports whether a is strictly
// better than b. Ties are broken in favor of the first element. It returns -1 for an empty slice.
func ArgBest[T any](values []T, better func(a, b T) bool) int {
	if len(values) == 0 {
		return -1
	}
	best := 0
	for ii := 1; ii < len(values); ii++ {
		if better(values[ii], values[best]) {
			best = ii
		}
	}
	return best
}
