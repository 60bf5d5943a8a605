package jobs

import (
	"github.com/vytor/kanaflash/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	prefetchPool *worker.Pool
	warmer       worker.ClipWarmer
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(prefetchPool *worker.Pool, warmer worker.ClipWarmer) JobQueue {
	return &WorkerQueue{
		prefetchPool: prefetchPool,
		warmer:       warmer,
	}
}

func (q *WorkerQueue) EnqueuePrefetch(romaji string) error {
	return q.prefetchPool.Submit(&worker.PrefetchAudioJob{
		Warmer: q.warmer,
		Romaji: romaji,
	})
}
