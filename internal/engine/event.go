package engine

import "context"

// Event is one observable unit of work. Snapshot is a private copy and
// Highlight holds zero, one or two indices into it. Factor is the multiple of
// the current speed the worker waits after sending it.
type Event[T any] struct {
	Seq       int
	Snapshot  []T
	Highlight []int
	Factor    float64
}

type Sink[T any] interface {
	Send(Event[T])
}

type SinkFunc[T any] func(Event[T])

func (f SinkFunc[T]) Send(ev Event[T]) { f(ev) }

// Emitter is the only path by which interim states of a run become visible.
// An Emitter belongs to a single run and is not safe for concurrent use.
type Emitter[T any] struct {
	sink  Sink[T]
	pacer *Pacer
	sent  int
}

// NewEmitter returns an emitter delivering to sink and pacing with pacer.
// A nil sink discards events and a nil pacer never waits.
func NewEmitter[T any](sink Sink[T], pacer *Pacer) *Emitter[T] {
	return &Emitter[T]{sink: sink, pacer: pacer}
}

// Emit sends a copy of data with the given highlight, then waits factor times
// the current speed. It returns the context error if the run was cancelled
// before the event was sent or while waiting.
func (e *Emitter[T]) Emit(ctx context.Context, data []T, factor float64, highlight ...int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.sent++
	if e.sink != nil {
		snap := make([]T, len(data))
		copy(snap, data)
		hl := make([]int, len(highlight))
		copy(hl, highlight)
		e.sink.Send(Event[T]{Seq: e.sent, Snapshot: snap, Highlight: hl, Factor: factor})
	}

	return e.pacer.Wait(ctx, factor)
}

// Sent returns the number of events emitted so far.
func (e *Emitter[T]) Sent() int { return e.sent }
