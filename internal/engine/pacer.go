package engine

import (
	"context"
	"math"
	"sync/atomic"
	"time"
)

const (
	MinSpeed     = 0.01
	MaxSpeed     = 1.0
	DefaultSpeed = 0.05
)

// ClampSpeed bounds seconds to [MinSpeed, MaxSpeed].
func ClampSpeed(seconds float64) float64 {
	if math.IsNaN(seconds) {
		return DefaultSpeed
	}
	return math.Max(MinSpeed, math.Min(MaxSpeed, seconds))
}

// Pacer holds the per-event delay. It may be changed from any goroutine while
// a run is in progress; the new value applies to the next wait.
type Pacer struct {
	bits atomic.Uint64
}

func NewPacer(seconds float64) *Pacer {
	p := &Pacer{}
	p.Set(seconds)
	return p
}

func (p *Pacer) Set(seconds float64) {
	p.bits.Store(math.Float64bits(ClampSpeed(seconds)))
}

func (p *Pacer) Speed() float64 {
	return math.Float64frombits(p.bits.Load())
}

func (p *Pacer) Delay() time.Duration {
	return time.Duration(p.Speed() * float64(time.Second))
}

// Wait sleeps for factor times the current delay or until ctx is done.
func (p *Pacer) Wait(ctx context.Context, factor float64) error {
	if p == nil {
		return ctx.Err()
	}
	d := time.Duration(float64(p.Delay()) * factor)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
