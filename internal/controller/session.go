package controller

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/engine"
)

// Session owns the array between runs and the single worker that sorts it.
//
// The running flag is set only by Start and cleared only by the worker when
// the algorithm returns. Cancel does not clear it; it cancels the run's
// context, which the algorithm observes at its next loop boundary.
type Session struct {
	mu     sync.Mutex
	data   []int
	rng    *rand.Rand
	cancel context.CancelFunc
	done   chan struct{}

	running atomic.Bool
	pacer   *engine.Pacer
	obs     Observer
	log     zerolog.Logger
}

type Option func(*Session)

func WithObserver(o Observer) Option     { return func(s *Session) { s.obs = o } }
func WithLogger(l zerolog.Logger) Option { return func(s *Session) { s.log = l } }
func WithRand(rng *rand.Rand) Option     { return func(s *Session) { s.rng = rng } }
func WithSpeed(seconds float64) Option   { return func(s *Session) { s.SetSpeed(seconds) } }

// WithoutPacing makes every step return immediately. Headless runs and
// benchmarks use it.
func WithoutPacing() Option { return func(s *Session) { s.pacer = nil } }

func New(opts ...Option) *Session {
	s := &Session{
		pacer: engine.NewPacer(engine.DefaultSpeed),
		obs:   NopObserver{},
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

func (s *Session) Running() bool { return s.running.Load() }

// Array returns a copy of the array as of the last completed run or
// generation. It does not reflect a run in progress.
func (s *Session) Array() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return array.Clone(s.data)
}

func (s *Session) SetSpeed(seconds float64) {
	if s.pacer != nil {
		s.pacer.Set(seconds)
	}
}

func (s *Session) Speed() float64 {
	if s.pacer == nil {
		return 0
	}
	return s.pacer.Speed()
}

// Generate replaces the array with a fresh random one. It leaves the array
// untouched and returns ErrBusy while a sort is running.
func (s *Session) Generate(size, values array.Range) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return ErrBusy
	}
	data, err := array.Generate(s.rng, size, values)
	if err != nil {
		return err
	}
	s.data = data
	s.log.Debug().Int("size", len(data)).Msg("array generated")
	return nil
}

// Load replaces the array with a copy of data.
func (s *Session) Load(data []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return ErrBusy
	}
	s.data = array.Clone(data)
	return nil
}

// Start launches the named algorithm on a worker goroutine. A request while
// a run is active returns ErrBusy and is not queued. A request on an empty
// array returns ErrEmpty after notifying the observer that the (empty) run
// finished, so a UI can restore its controls.
func (s *Session) Start(ctx context.Context, algorithm string) error {
	alg, err := engine.Lookup(algorithm)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.running.Load() {
		s.mu.Unlock()
		return ErrBusy
	}
	if len(s.data) == 0 {
		s.mu.Unlock()
		s.obs.OnFinished(Result{Algorithm: alg.ID, Final: []int{}})
		return ErrEmpty
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	work := array.Clone(s.data)
	s.running.Store(true)
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	started := Started{
		RunID:       uuid.NewString(),
		Algorithm:   alg.ID,
		Size:        len(work),
		Fingerprint: array.Fingerprint(work),
	}
	s.obs.OnStarted(started)

	go s.work(runCtx, cancel, done, alg, started, work)
	return nil
}

func (s *Session) work(ctx context.Context, cancel context.CancelFunc, done chan struct{}, alg engine.Algorithm, started Started, data []int) {
	defer close(done)
	defer cancel()

	log := s.log.With().Str("run", started.RunID).Str("algorithm", alg.ID).Logger()
	log.Debug().
		Int("size", started.Size).
		Str("fingerprint", fmt.Sprintf("%016x", started.Fingerprint)).
		Float64("speed", s.Speed()).
		Msg("worker started")

	begin := time.Now()
	em := engine.NewEmitter[int](engine.SinkFunc[int](s.obs.OnStep), s.pacer)
	stats := alg.Run(ctx, data, em)
	if len(data) != started.Size {
		panic(fmt.Sprintf("controller: %s changed array length %d -> %d", alg.ID, started.Size, len(data)))
	}

	res := Result{
		RunID:       started.RunID,
		Algorithm:   alg.ID,
		Cancelled:   ctx.Err() != nil,
		Stats:       stats,
		Elapsed:     time.Since(begin),
		Fingerprint: started.Fingerprint,
		Final:       array.Clone(data),
	}

	s.mu.Lock()
	s.data = data
	s.cancel = nil
	s.running.Store(false)
	s.mu.Unlock()

	log.Debug().Bool("cancelled", res.Cancelled).Int("events", stats.Events).Msg("worker finished")
	s.obs.OnFinished(res)
}

// Cancel asks the active run to stop. It is idempotent and a no-op when idle.
func (s *Session) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the most recently started run has finished and its
// observer has been notified.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}
