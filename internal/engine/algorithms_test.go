package engine_test

import (
	"context"
	"math/rand"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/engine"
)

var _ = Describe("Algorithms", func() {
	for _, alg := range engine.Algorithms() {
		Context(alg.ID, func() {
			It("sorts random arrays with duplicates into the same multiset", func() {
				rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
				for trial := 0; trial < 40; trial++ {
					input := randomInts(rng, rng.Intn(201), -20, 20)
					data := array.Clone(input)

					alg.Run(context.Background(), data, nil)

					Expect(slices.IsSorted(data)).To(BeTrue(), "input %v", input)
					Expect(array.SameMultiset(data, input)).To(BeTrue())
				}
			})

			It("emits nothing for an empty array", func() {
				rec, stats := run(alg, []int{})
				Expect(rec.events).To(BeEmpty())
				Expect(stats.Events).To(BeZero())
			})

			It("leaves an all-equal array unchanged", func() {
				data := []int{3, 3, 3}
				rec, _ := run(alg, data)
				Expect(data).To(Equal([]int{3, 3, 3}))
				if alg.ID == "bubble" {
					// bubble only reports swaps
					Expect(rec.events).To(BeEmpty())
				} else {
					Expect(len(rec.events)).To(BeNumerically(">=", 1))
				}
			})

			It("reports exactly the events it emitted", func() {
				rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
				rec, stats := run(alg, randomInts(rng, 25, 1, 100))
				Expect(stats.Events).To(Equal(len(rec.events)))
				for i, ev := range rec.events {
					Expect(ev.Seq).To(Equal(i + 1))
					Expect(len(ev.Highlight)).To(BeNumerically("<=", 2))
					for _, idx := range ev.Highlight {
						Expect(idx).To(BeNumerically(">=", 0))
						Expect(idx).To(BeNumerically("<", len(ev.Snapshot)))
					}
				}
			})

			It("stops within one unit of work and keeps a permutation when cancelled", func() {
				rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
				for trial := 0; trial < 20; trial++ {
					input := randomInts(rng, 10+rng.Intn(40), 1, 30)

					full, _ := run(alg, array.Clone(input))
					if len(full.events) == 0 {
						continue
					}
					after := 1 + rng.Intn(len(full.events))

					ctx, cancel := context.WithCancel(context.Background())
					rec := &recorder{after: after, cancel: cancel}
					data := array.Clone(input)
					alg.Run(ctx, data, engine.NewEmitter[int](rec, nil))
					cancel()

					Expect(rec.events).To(HaveLen(after))
					Expect(array.SameMultiset(data, input)).To(BeTrue(), "input %v cancelled after %d", input, after)
				}
			})

			It("does nothing when started with a cancelled context", func() {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				data := []int{4, 3, 2, 1}
				rec := &recorder{}
				alg.Run(ctx, data, engine.NewEmitter[int](rec, nil))
				Expect(rec.events).To(BeEmpty())
				Expect(data).To(Equal([]int{4, 3, 2, 1}))
			})
		})
	}
})

var _ = Describe("Bubble", func() {
	It("sorts [5,1,4,2,8] with four swaps over five passes", func() {
		data := []int{5, 1, 4, 2, 8}
		rec, stats := run(mustLookup("bubble"), data)

		Expect(data).To(Equal([]int{1, 2, 4, 5, 8}))
		Expect(rec.highlights()).To(Equal([][]int{{0, 1}, {1, 2}, {2, 3}, {1, 2}}))
		Expect(stats.Passes).To(Equal(5))
		Expect(stats.Comparisons).To(Equal(10))
	})

	It("emits nothing for a sorted array", func() {
		rec, stats := run(mustLookup("bubble"), []int{1, 2, 3, 4, 5})
		Expect(rec.events).To(BeEmpty())
		Expect(stats.Passes).To(Equal(5))
	})
})

var _ = Describe("Selection", func() {
	It("emits once per comparison plus once per pass", func() {
		data := []int{4, 2, 5, 1, 3}
		rec, stats := run(mustLookup("selection"), data)

		n := len(data)
		Expect(data).To(Equal([]int{1, 2, 3, 4, 5}))
		Expect(rec.events).To(HaveLen(n*(n-1)/2 + n))
		Expect(stats.Comparisons).To(Equal(n * (n - 1) / 2))
	})

	It("highlights the minimum candidate against the scan index", func() {
		rec, _ := run(mustLookup("selection"), []int{2, 1})
		Expect(rec.highlights()).To(Equal([][]int{{1, 1}, {0, 1}, {1, 1}}))
	})

	It("waits half as long after a comparison as after a swap", func() {
		rec, _ := run(mustLookup("selection"), []int{3, 2, 1})
		factors := make([]float64, len(rec.events))
		for i, ev := range rec.events {
			factors[i] = ev.Factor
		}
		// pass 0: two comparisons then the swap; pass 1: one comparison then the swap; pass 2: swap only
		Expect(factors).To(Equal([]float64{0.5, 0.5, 1, 0.5, 1, 1}))
	})

	It("paces each comparison at half the delay", func() {
		pacer := engine.NewPacer(0.2)
		data := []int{3, 2, 1}
		start := time.Now()
		engine.Selection(context.Background(), data, engine.NewEmitter[int](nil, pacer))
		// 3 comparisons at 0.1s and 3 swaps at 0.2s; full delay everywhere would take 1.2s
		Expect(time.Since(start)).To(And(
			BeNumerically(">=", 900*time.Millisecond),
			BeNumerically("<", 1150*time.Millisecond),
		))
	})
})

var _ = Describe("Insertion", func() {
	It("reports the shift as destination then source and the placement alone", func() {
		data := []int{2, 1}
		rec, _ := run(mustLookup("insertion"), data)
		Expect(data).To(Equal([]int{1, 2}))
		Expect(rec.highlights()).To(Equal([][]int{{1, 0}, {0}}))
	})

	It("does not shift equal keys", func() {
		rec, _ := run(mustLookup("insertion"), []int{3, 3, 3})
		Expect(rec.highlights()).To(Equal([][]int{{1}, {2}}))
	})
})

var _ = Describe("Quick", func() {
	It("partitions [2,1] once with only the pivot placement", func() {
		data := []int{2, 1}
		rec, stats := run(mustLookup("quick"), data)
		Expect(data).To(Equal([]int{1, 2}))
		Expect(stats.Passes).To(Equal(1))
		Expect(rec.highlights()).To(Equal([][]int{{0, 1}}))
	})

	It("reports a scan swap and a pivot placement for [1,2]", func() {
		data := []int{1, 2}
		rec, stats := run(mustLookup("quick"), data)
		Expect(data).To(Equal([]int{1, 2}))
		Expect(stats.Passes).To(Equal(1))
		Expect(rec.highlights()).To(Equal([][]int{{0, 0}, {1, 1}}))
	})
})

var _ = Describe("Merge", func() {
	It("reports every write into the destination range", func() {
		data := []int{3, 1, 2}
		rec, stats := run(mustLookup("merge"), data)
		Expect(data).To(Equal([]int{1, 2, 3}))
		// merge(0,0,1) writes 2 slots, merge(0,1,2) writes 3
		Expect(rec.highlights()).To(Equal([][]int{{0}, {1}, {0}, {1}, {2}}))
		Expect(stats.Passes).To(Equal(2))
	})
})

var _ = Describe("Shell", func() {
	It("halves the gap down to one", func() {
		Expect(engine.ShellGaps(10)).To(Equal([]int{5, 2, 1}))
		Expect(engine.ShellGaps(1)).To(BeEmpty())
		Expect(engine.ShellGaps(0)).To(BeEmpty())
	})

	It("uses one pass per gap", func() {
		rng := rand.New(rand.NewSource(3))
		_, stats := run(mustLookup("shell"), randomInts(rng, 10, 1, 100))
		Expect(stats.Passes).To(Equal(3))
	})

	It("reports the gapped shift and the placement", func() {
		data := []int{2, 1}
		rec, _ := run(mustLookup("shell"), data)
		Expect(data).To(Equal([]int{1, 2}))
		Expect(rec.highlights()).To(Equal([][]int{{1, 0}, {0}}))
	})
})

var _ = Describe("Generic element types", func() {
	It("sorts strings and floats", func() {
		words := []string{"pear", "apple", "fig"}
		engine.Shell(context.Background(), words, nil)
		Expect(words).To(Equal([]string{"apple", "fig", "pear"}))

		xs := []float64{2.5, -1, 0.5}
		engine.Merge(context.Background(), xs, nil)
		Expect(xs).To(Equal([]float64{-1, 0.5, 2.5}))
	})
})
