package engine

import (
	"cmp"
	"context"
)

// Stats describes the work done by one run. Passes counts the outer structure
// of each algorithm: bubble, selection and insertion passes, quicksort
// partitions, merge sort merges and shell sort gaps.
type Stats struct {
	Events      int
	Comparisons int
	Passes      int
}

type sorter[T cmp.Ordered] struct {
	ctx   context.Context
	data  []T
	em    *Emitter[T]
	start int
	stats Stats
}

func newSorter[T cmp.Ordered](ctx context.Context, data []T, em *Emitter[T]) *sorter[T] {
	if em == nil {
		em = NewEmitter[T](nil, nil)
	}
	return &sorter[T]{ctx: ctx, data: data, em: em, start: em.Sent()}
}

func (s *sorter[T]) live() bool { return s.ctx.Err() == nil }

func (s *sorter[T]) compare(a, b T) int {
	s.stats.Comparisons++
	return cmp.Compare(a, b)
}

// step reports a unit of work and reports whether the run may continue.
func (s *sorter[T]) step(factor float64, highlight ...int) bool {
	return s.em.Emit(s.ctx, s.data, factor, highlight...) == nil
}

func (s *sorter[T]) done() Stats {
	s.stats.Events = s.em.Sent() - s.start
	return s.stats
}
