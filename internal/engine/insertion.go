package engine

import (
	"cmp"
	"context"
)

func Insertion[T cmp.Ordered](ctx context.Context, data []T, em *Emitter[T]) Stats {
	s := newSorter(ctx, data, em)

	for i := 1; i < len(data); i++ {
		if !s.live() {
			break
		}
		s.stats.Passes++

		key := data[i]
		j := i - 1
		for j >= 0 && s.compare(key, data[j]) < 0 {
			if !s.live() {
				break
			}
			data[j+1] = data[j]
			if !s.step(1, j+1, j) {
				// slot j now holds a duplicate; the key belongs there
				data[j] = key
				return s.done()
			}
			j--
		}

		data[j+1] = key
		if !s.step(1, j+1) {
			break
		}
	}

	return s.done()
}
