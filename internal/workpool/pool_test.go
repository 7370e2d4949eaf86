package workpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsSubmittedTasks(t *testing.T) {
	p := New(4)
	defer p.Close()

	var n int64
	ctx := context.Background()
	const count = 50
	done := make(chan struct{}, count)
	for i := 0; i < count; i++ {
		require.NoError(t, p.Submit(ctx, func() {
			atomic.AddInt64(&n, 1)
			done <- struct{}{}
		}))
	}
	for i := 0; i < count; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for tasks to run")
		}
	}
	assert.EqualValues(t, count, atomic.LoadInt64(&n))
}

func TestPool_SubmitAfterCloseFails(t *testing.T) {
	p := New(1)
	p.Close()

	err := p.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPool_SubmitRespectsContextCancellation(t *testing.T) {
	p := New(1)
	defer p.Close()

	// Block the single worker, then fill the queue buffer, so the next
	// Submit has to wait on ctx instead of a free slot.
	started := make(chan struct{})
	block := make(chan struct{})
	require.NoError(t, p.Submit(context.Background(), func() {
		close(started)
		<-block
	}))
	<-started

	for i := 0; i < cap(p.tasks); i++ {
		require.NoError(t, p.Submit(context.Background(), func() {}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Submit(ctx, func() {})
	assert.ErrorIs(t, err, context.Canceled)

	close(block)
}

func TestPool_CloseIsIdempotent(t *testing.T) {
	p := New(2)
	assert.NotPanics(t, func() {
		p.Close()
		p.Close()
	})
}
