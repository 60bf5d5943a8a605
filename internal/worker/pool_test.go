package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countJob struct {
	n   *atomic.Int32
	err error
}

func (j *countJob) Name() string { return "count" }

func (j *countJob) Run(context.Context) error {
	j.n.Add(1)
	return j.err
}

type panicJob struct{}

func (panicJob) Name() string { return "panic" }
func (panicJob) Run(context.Context) error { panic("boom") }

type warmerFunc func(ctx context.Context, romaji string) error

func (f warmerFunc) Warm(ctx context.Context, romaji string) error { return f(ctx, romaji) }

func TestPool_RunsAllJobsBeforeStop(t *testing.T) {
	p := NewPool(3, 100)
	p.Start(context.Background())

	var n atomic.Int32
	for i := 0; i < 50; i++ {
		job := &countJob{n: &n}
		if i%5 == 0 {
			job.err = errors.New("failed")
		}
		require.NoError(t, p.Submit(job))
	}
	require.NoError(t, p.Submit(panicJob{}))

	p.Stop()
	assert.Equal(t, int32(50), n.Load())
}

func TestPool_SubmitAfterStop(t *testing.T) {
	p := NewPool(1, 1)
	p.Start(context.Background())
	p.Stop()
	p.Stop()

	var n atomic.Int32
	assert.ErrorIs(t, p.Submit(&countJob{n: &n}), ErrPoolStopped)
}

func TestPool_QueueFull(t *testing.T) {
	// Not started, so nothing drains the queue.
	p := NewPool(1, 2)
	var n atomic.Int32

	require.NoError(t, p.Submit(&countJob{n: &n}))
	require.NoError(t, p.Submit(&countJob{n: &n}))
	assert.Equal(t, 2, p.QueueSize())
	assert.ErrorIs(t, p.Submit(&countJob{n: &n}), ErrQueueFull)
}

func TestPrefetchAudioJob(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	job := &PrefetchAudioJob{
		Romaji: "ka",
		Warmer: warmerFunc(func(_ context.Context, romaji string) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, romaji)
			return nil
		}),
	}

	assert.Equal(t, "prefetch_audio", job.Name())
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, []string{"ka"}, seen)
}
