package engine

import (
	"cmp"
	"context"
)

// ShellGaps returns the gap sequence used for n elements: n/2, n/4, ... down
// to 1. The sequence is empty for n < 2.
func ShellGaps(n int) []int {
	var gaps []int
	for gap := n / 2; gap > 0; gap /= 2 {
		gaps = append(gaps, gap)
	}
	return gaps
}

func Shell[T cmp.Ordered](ctx context.Context, data []T, em *Emitter[T]) Stats {
	s := newSorter(ctx, data, em)
	n := len(data)

	for _, gap := range ShellGaps(n) {
		if !s.live() {
			break
		}
		s.stats.Passes++

		for i := gap; i < n; i++ {
			if !s.live() {
				return s.done()
			}
			tmp := data[i]
			j := i
			for j >= gap && s.compare(data[j-gap], tmp) > 0 {
				if !s.live() {
					break
				}
				data[j] = data[j-gap]
				if !s.step(1, j, j-gap) {
					data[j-gap] = tmp
					return s.done()
				}
				j -= gap
			}

			data[j] = tmp
			if !s.step(1, j) {
				return s.done()
			}
		}
	}

	return s.done()
}
