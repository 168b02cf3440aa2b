package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedDeliversInOrder(t *testing.T) {
	feed := NewFeed(64)
	s := New(WithObserver(feed), WithoutPacing())
	require.NoError(t, s.Load([]int{2, 1}))

	require.NoError(t, s.Start(context.Background(), "quick"))
	s.Wait()

	var msgs []any
	for len(feed.Messages()) > 0 {
		msgs = append(msgs, <-feed.Messages())
	}

	require.Len(t, msgs, 3)
	assert.IsType(t, StartedMsg{}, msgs[0])
	step, ok := msgs[1].(StepMsg)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, step.Highlight)
	assert.Equal(t, []int{1, 2}, step.Snapshot)
	fin, ok := msgs[2].(FinishedMsg)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, fin.Final)
}

func TestFeedCloseReleasesWorker(t *testing.T) {
	feed := NewFeed(1)
	s := New(WithObserver(feed), WithoutPacing())
	require.NoError(t, s.Load([]int{9, 8, 7, 6, 5, 4, 3, 2, 1}))

	require.NoError(t, s.Start(context.Background(), "bubble"))
	feed.Close()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker stayed blocked on a closed feed")
	}
}

func TestFeedDone(t *testing.T) {
	feed := NewFeed(1)
	select {
	case <-feed.Done():
		t.Fatal("done before Close")
	default:
	}

	feed.Close()
	feed.Close()
	select {
	case <-feed.Done():
	case <-time.After(time.Second):
		t.Fatal("done not closed by Close")
	}
}
