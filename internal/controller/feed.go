package controller

import (
	"sync"

	"github.com/san-kum/sortviz/internal/engine"
)

type (
	StepMsg     struct{ engine.Event[int] }
	StartedMsg  Started
	FinishedMsg Result
)

// Feed is an Observer that turns notifications into messages on a buffered
// channel, so a render loop can consume them at its own pace. A full buffer
// holds the worker back until the consumer catches up or the feed is closed.
type Feed struct {
	ch   chan any
	quit chan struct{}
	once sync.Once
}

func NewFeed(buffer int) *Feed {
	return &Feed{
		ch:   make(chan any, buffer),
		quit: make(chan struct{}),
	}
}

func (f *Feed) Messages() <-chan any { return f.ch }

// Done is closed by Close. Consumers select on it to stop waiting for
// messages that will never arrive.
func (f *Feed) Done() <-chan struct{} { return f.quit }

// Close releases any worker blocked on a full feed. Messages sent after Close
// are dropped.
func (f *Feed) Close() {
	f.once.Do(func() { close(f.quit) })
}

func (f *Feed) send(msg any) {
	select {
	case <-f.quit:
		return
	default:
	}
	select {
	case f.ch <- msg:
	case <-f.quit:
	}
}

func (f *Feed) OnStarted(s Started)         { f.send(StartedMsg(s)) }
func (f *Feed) OnStep(ev engine.Event[int]) { f.send(StepMsg{ev}) }
func (f *Feed) OnFinished(r Result)         { f.send(FinishedMsg(r)) }
