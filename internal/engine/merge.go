package engine

import (
	"cmp"
	"context"
)

func Merge[T cmp.Ordered](ctx context.Context, data []T, em *Emitter[T]) Stats {
	s := newSorter(ctx, data, em)
	s.mergeSort(0, len(data)-1)
	return s.done()
}

func (s *sorter[T]) mergeSort(l, r int) {
	if l >= r || !s.live() {
		return
	}
	m := (l + r) / 2
	s.mergeSort(l, m)
	s.mergeSort(m+1, r)
	if !s.live() {
		return
	}
	s.merge(l, m, r)
}

// merge interleaves, drains left, then drains right. When the run is
// cancelled part way, the unwritten elements of both halves are copied back
// so the range stays a permutation of its input.
func (s *sorter[T]) merge(l, m, r int) {
	s.stats.Passes++
	d := s.data
	left := make([]T, m-l+1)
	right := make([]T, r-m)
	copy(left, d[l:m+1])
	copy(right, d[m+1:r+1])

	i, j, k := 0, 0, l
	abort := func() {
		k += copy(d[k:], left[i:])
		copy(d[k:], right[j:])
	}

	for i < len(left) && j < len(right) {
		if !s.live() {
			abort()
			return
		}
		if s.compare(left[i], right[j]) <= 0 {
			d[k] = left[i]
			i++
		} else {
			d[k] = right[j]
			j++
		}
		ok := s.step(1, k)
		k++
		if !ok {
			abort()
			return
		}
	}

	for i < len(left) {
		if !s.live() {
			abort()
			return
		}
		d[k] = left[i]
		ok := s.step(1, k)
		i++
		k++
		if !ok {
			abort()
			return
		}
	}

	for j < len(right) {
		if !s.live() {
			abort()
			return
		}
		d[k] = right[j]
		ok := s.step(1, k)
		j++
		k++
		if !ok {
			abort()
			return
		}
	}
}
