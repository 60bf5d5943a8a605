package worker

import (
	"context"

	"github.com/vytor/kanaflash/internal/logger"
)

// PrefetchAudioJob warms the clip cache for one romaji.
type PrefetchAudioJob struct {
	Warmer ClipWarmer
	Romaji string
}

func (j *PrefetchAudioJob) Name() string { return "prefetch_audio" }

func (j *PrefetchAudioJob) Run(ctx context.Context) error {
	logger.FromContext(ctx).WithField("romaji", j.Romaji).Debug("prefetching clip")
	return j.Warmer.Warm(ctx, j.Romaji)
}
