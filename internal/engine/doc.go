// Package engine provides instrumented sorting algorithms.
//
// Instead of sorting silently, every algorithm reports each unit of work
// through an [Emitter] as an immutable [Event] (a snapshot of the slice plus
// the indices just touched) and then pauses for the delay held by a [Pacer]:
//
//   - [Bubble], [Selection], [Insertion]: quadratic passes
//   - [Quick]: Lomuto partition, pivot is the last element
//   - [Merge]: top-down, split at (l+r)/2
//   - [Shell]: gaps halve from n/2, see [ShellGaps]
//
// # Cancellation
//
// Every algorithm checks its context at each outer and inner loop iteration
// and returns as soon as it is done. A cancelled run leaves the slice
// partially sorted but always a permutation of its input.
//
// # Example
//
//	pacer := engine.NewPacer(0.05)
//	em := engine.NewEmitter[int](sink, pacer)
//	stats := engine.Quick(ctx, data, em)
package engine
