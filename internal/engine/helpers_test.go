package engine_test

import (
	"context"
	"math/rand"

	"github.com/san-kum/sortviz/internal/engine"
)

type recorder struct {
	events []engine.Event[int]
	after  int
	cancel context.CancelFunc
}

// Send records ev and cancels the run once the configured number of events
// has been seen.
func (r *recorder) Send(ev engine.Event[int]) {
	r.events = append(r.events, ev)
	if r.cancel != nil && len(r.events) == r.after {
		r.cancel()
	}
}

func (r *recorder) highlights() [][]int {
	out := make([][]int, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Highlight
	}
	return out
}

func run(alg engine.Algorithm, data []int) (*recorder, engine.Stats) {
	rec := &recorder{}
	stats := alg.Run(context.Background(), data, engine.NewEmitter[int](rec, nil))
	return rec, stats
}

func randomInts(rng *rand.Rand, n, lo, hi int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = lo + rng.Intn(hi-lo+1)
	}
	return data
}

func mustLookup(id string) engine.Algorithm {
	alg, err := engine.Lookup(id)
	if err != nil {
		panic(err)
	}
	return alg
}
