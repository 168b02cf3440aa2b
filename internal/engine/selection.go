package engine

import (
	"cmp"
	"context"
)

// Selection emits on every comparison of the inner scan at half delay, then
// once for the swap that closes each pass, even when the minimum is already
// in place.
func Selection[T cmp.Ordered](ctx context.Context, data []T, em *Emitter[T]) Stats {
	s := newSorter(ctx, data, em)
	n := len(data)

	for i := 0; i < n; i++ {
		if !s.live() {
			break
		}
		s.stats.Passes++

		minIdx := i
		for j := i + 1; j < n; j++ {
			if !s.live() {
				return s.done()
			}
			if s.compare(data[j], data[minIdx]) < 0 {
				minIdx = j
			}
			if !s.step(0.5, minIdx, j) {
				return s.done()
			}
		}

		data[i], data[minIdx] = data[minIdx], data[i]
		if !s.step(1, i, minIdx) {
			break
		}
	}

	return s.done()
}
