package controller

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/san-kum/sortviz/internal/engine"
)

type Started struct {
	RunID       string
	Algorithm   string
	Size        int
	Fingerprint uint64
}

type Result struct {
	RunID       string
	Algorithm   string
	Cancelled   bool
	Stats       engine.Stats
	Elapsed     time.Duration
	Fingerprint uint64
	Final       []int
}

// Observer receives the lifecycle of each run. OnStep is called from the
// worker goroutine and should hand the event off rather than render inline.
type Observer interface {
	OnStarted(Started)
	OnStep(engine.Event[int])
	OnFinished(Result)
}

type NopObserver struct{}

func (NopObserver) OnStarted(Started)        {}
func (NopObserver) OnStep(engine.Event[int]) {}
func (NopObserver) OnFinished(Result)        {}

// Multi fans every notification out to each observer in order.
type Multi []Observer

func (m Multi) OnStarted(s Started) {
	for _, o := range m {
		o.OnStarted(s)
	}
}

func (m Multi) OnStep(ev engine.Event[int]) {
	for _, o := range m {
		o.OnStep(ev)
	}
}

func (m Multi) OnFinished(r Result) {
	for _, o := range m {
		o.OnFinished(r)
	}
}

type LogObserver struct {
	log zerolog.Logger
}

func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnStarted(s Started) {
	o.log.Info().
		Str("run", s.RunID).
		Str("algorithm", s.Algorithm).
		Int("size", s.Size).
		Str("fingerprint", fmt.Sprintf("%016x", s.Fingerprint)).
		Msg("sort started")
}

func (o *LogObserver) OnStep(ev engine.Event[int]) {
	o.log.Trace().Int("seq", ev.Seq).Ints("highlight", ev.Highlight).Msg("step")
}

func (o *LogObserver) OnFinished(r Result) {
	o.log.Info().
		Str("run", r.RunID).
		Str("algorithm", r.Algorithm).
		Bool("cancelled", r.Cancelled).
		Int("events", r.Stats.Events).
		Int("comparisons", r.Stats.Comparisons).
		Dur("elapsed", r.Elapsed).
		Msg("sort finished")
}
