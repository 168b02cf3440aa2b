package engine_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/engine"
)

var _ = Describe("Pacer", func() {
	DescribeTable("clamps speed",
		func(in, want float64) {
			Expect(engine.NewPacer(in).Speed()).To(Equal(want))
		},
		Entry("below range", 0.0, engine.MinSpeed),
		Entry("above range", 5.0, engine.MaxSpeed),
		Entry("in range", 0.25, 0.25),
	)

	It("applies a new speed to the next wait", func() {
		p := engine.NewPacer(engine.MaxSpeed)
		p.Set(engine.MinSpeed)
		Expect(p.Delay()).To(Equal(10 * time.Millisecond))
	})

	It("wakes immediately when the run is cancelled", func() {
		p := engine.NewPacer(engine.MaxSpeed)
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(10*time.Millisecond, cancel)

		start := time.Now()
		err := p.Wait(ctx, 1)
		Expect(err).To(MatchError(context.Canceled))
		Expect(time.Since(start)).To(BeNumerically("<", 500*time.Millisecond))
	})

	It("never waits when nil", func() {
		var p *engine.Pacer
		Expect(p.Wait(context.Background(), 1)).To(Succeed())
	})
})

var _ = Describe("Emitter", func() {
	It("sends snapshots that later mutations cannot reach", func() {
		rec := &recorder{}
		em := engine.NewEmitter[int](rec, nil)
		data := []int{1, 2, 3}

		Expect(em.Emit(context.Background(), data, 1, 0, 2)).To(Succeed())
		data[0] = 99

		Expect(rec.events).To(HaveLen(1))
		Expect(rec.events[0].Snapshot).To(Equal([]int{1, 2, 3}))
		Expect(rec.events[0].Highlight).To(Equal([]int{0, 2}))
		Expect(em.Sent()).To(Equal(1))
	})

	It("drops the event when the run is already cancelled", func() {
		rec := &recorder{}
		em := engine.NewEmitter[int](rec, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Expect(em.Emit(ctx, []int{1}, 1, 0)).To(MatchError(context.Canceled))
		Expect(rec.events).To(BeEmpty())
	})
})

var _ = Describe("Registry", func() {
	It("lists the six algorithms in menu order", func() {
		Expect(engine.IDs()).To(Equal([]string{"bubble", "selection", "insertion", "quick", "merge", "shell"}))
	})

	It("rejects unknown ids", func() {
		_, err := engine.Lookup("bogo")
		Expect(err).To(MatchError(engine.ErrUnknownAlgorithm))
	})

	It("separates the identifier from the localized label", func() {
		alg := mustLookup("shell")
		Expect(alg.Label("en-US")).To(Equal("Shell sort"))
		Expect(alg.Label("ru")).To(Equal("Сортировка Шелла"))
		Expect(alg.Label("xx")).To(Equal("Shell sort"))
	})
})
