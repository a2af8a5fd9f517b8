package pool

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDoRunsJob(t *testing.T) {
	p := MustPool(2, 4)
	defer p.Close()

	ran := false
	err := p.Do(context.Background(), func() { ran = true })

	assert.NoError(t, err)
	assert.True(t, ran)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	p := MustPool(2, 16)
	defer p.Close()

	var current, peak int64
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Do(context.Background(), func() {
				n := atomic.AddInt64(&current, 1)
				for {
					old := atomic.LoadInt64(&peak)
					if n <= old || atomic.CompareAndSwapInt64(&peak, old, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				atomic.AddInt64(&current, -1)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestDoReturnsErrorWhenContextAlreadyCancelled(t *testing.T) {
	p := MustPool(1, 2)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	err := p.Do(ctx, func() { ran.Store(true) })

	require.ErrorIs(t, err, context.Canceled)

	// give a worker the chance to (wrongly) pick it up
	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())
}

func TestQueuedJobIsAbandonedOnCancel(t *testing.T) {
	p := MustPool(1, 2)
	defer p.Close()

	release := make(chan struct{})
	blockerQueued := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func() {
			close(blockerQueued)
			<-release
		})
	}()
	<-blockerQueued

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	errs := make(chan error, 1)
	go func() {
		errs <- p.Do(ctx, func() { ran.Store(true) })
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	require.ErrorIs(t, <-errs, context.Canceled)

	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())
}

func TestMustPoolDefaults(t *testing.T) {
	p := MustPool(0, 0)
	defer p.Close()

	err := p.Do(context.Background(), func() {})
	assert.NoError(t, err)
}
