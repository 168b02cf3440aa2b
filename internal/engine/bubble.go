package engine

import (
	"cmp"
	"context"
)

// Bubble runs all n passes; there is no early exit on a pass without swaps.
// Only swaps are reported, so an already sorted array emits nothing.
func Bubble[T cmp.Ordered](ctx context.Context, data []T, em *Emitter[T]) Stats {
	s := newSorter(ctx, data, em)
	n := len(data)

	for i := 0; i < n; i++ {
		if !s.live() {
			break
		}
		s.stats.Passes++
		for j := 0; j < n-i-1; j++ {
			if !s.live() {
				return s.done()
			}
			if s.compare(data[j], data[j+1]) > 0 {
				data[j], data[j+1] = data[j+1], data[j]
				if !s.step(1, j, j+1) {
					return s.done()
				}
			}
		}
	}

	return s.done()
}
