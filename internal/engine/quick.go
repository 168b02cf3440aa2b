package engine

import (
	"cmp"
	"context"
)

// Quick is a recursive quicksort over the Lomuto partition scheme, sorting
// the left partition before the right one.
func Quick[T cmp.Ordered](ctx context.Context, data []T, em *Emitter[T]) Stats {
	s := newSorter(ctx, data, em)
	s.quick(0, len(data)-1)
	return s.done()
}

func (s *sorter[T]) quick(low, high int) {
	if low >= high || !s.live() {
		return
	}
	p, ok := s.partition(low, high)
	if !ok {
		return
	}
	s.quick(low, p-1)
	s.quick(p+1, high)
}

func (s *sorter[T]) partition(low, high int) (int, bool) {
	s.stats.Passes++
	d := s.data
	pivot := d[high]
	i := low - 1

	for j := low; j < high; j++ {
		if !s.live() {
			return 0, false
		}
		if s.compare(d[j], pivot) <= 0 {
			i++
			d[i], d[j] = d[j], d[i]
			if !s.step(1, i, j) {
				return 0, false
			}
		}
	}

	d[i+1], d[high] = d[high], d[i+1]
	if !s.step(1, i+1, high) {
		return 0, false
	}
	return i + 1, true
}
