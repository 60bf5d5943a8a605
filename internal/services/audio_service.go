package services

import (
	"context"
	stderrors "errors"

	"github.com/vytor/kanaflash/internal/audio"
	"github.com/vytor/kanaflash/internal/errors"
	"github.com/vytor/kanaflash/internal/jobs"
	"github.com/vytor/kanaflash/internal/kana"
	"github.com/vytor/kanaflash/internal/logger"
)

// ClipResolver finds the clip for a romaji.
type ClipResolver interface {
	Resolve(ctx context.Context, romaji string) (audio.Clip, error)
	Cached(romaji string) bool
}

// PrefetchResult counts what Prefetch did.
type PrefetchResult struct {
	Queued  int `json:"queued"`
	Cached  int `json:"cached"`
	Dropped int `json:"dropped"`
}

// AudioService resolves and plays pronunciation clips
type AudioService interface {
	Clip(ctx context.Context, romaji string) (audio.Clip, error)
	Play(ctx context.Context, romaji string) audio.Result
	Prefetch(ctx context.Context, romaji []string) (*PrefetchResult, error)
}

type audioService struct {
	resolver ClipResolver
	player   audio.Player
	jobQueue jobs.JobQueue
}

// NewAudioService creates a new AudioService. player and jobQueue may be nil.
func NewAudioService(resolver ClipResolver, player audio.Player, jobQueue jobs.JobQueue) AudioService {
	return &audioService{resolver: resolver, player: player, jobQueue: jobQueue}
}

func (s *audioService) Clip(ctx context.Context, romaji string) (audio.Clip, error) {
	log := logger.FromContext(ctx).WithPrefix("audio")

	if !audio.ValidRomaji(romaji) {
		return audio.Clip{}, errors.NewValidationError("romaji", "must be 1 to 4 lowercase letters")
	}
	clip, err := s.resolver.Resolve(ctx, romaji)
	switch {
	case err == nil:
		return clip, nil
	case stderrors.Is(err, audio.ErrClipNotFound):
		return audio.Clip{}, errors.NewNotFoundError("audio clip", romaji)
	default:
		log.Error("failed to resolve clip %s: %v", romaji, err)
		return audio.Clip{}, errors.NewUnavailableError("audio source unavailable", err)
	}
}

// Play resolves and plays a clip. Failures are reported in the Result.
func (s *audioService) Play(ctx context.Context, romaji string) audio.Result {
	log := logger.FromContext(ctx).WithPrefix("audio").WithField("romaji", romaji)
	result := audio.Result{Romaji: romaji}

	clip, err := s.Clip(ctx, romaji)
	if err != nil {
		result.Error = errors.AsAppError(err).Message
		log.Warn("cannot play: %s", result.Error)
		return result
	}
	result.Source = clip.Source

	if s.player == nil {
		result.Error = audio.ErrNoPlayer.Error()
		return result
	}
	if err := s.player.Play(ctx, clip); err != nil {
		log.Warn("playback failed: %v", err)
		result.Error = err.Error()
		return result
	}

	result.Success = true
	return result
}

// Prefetch queues a background load for every romaji not yet cached. An empty
// list means the whole table.
func (s *audioService) Prefetch(ctx context.Context, romaji []string) (*PrefetchResult, error) {
	log := logger.FromContext(ctx).WithPrefix("audio")

	if s.jobQueue == nil {
		return nil, errors.NewUnavailableError("prefetch is not enabled", nil)
	}
	if len(romaji) == 0 {
		romaji = kana.Romaji()
	}
	for _, r := range romaji {
		if !audio.ValidRomaji(r) {
			return nil, errors.NewValidationError("romaji", "invalid entry "+r)
		}
	}

	result := &PrefetchResult{}
	for _, r := range romaji {
		if s.resolver.Cached(r) {
			result.Cached++
			continue
		}
		if err := s.jobQueue.EnqueuePrefetch(r); err != nil {
			log.Warn("failed to enqueue prefetch for %s: %v", r, err)
			result.Dropped++
			continue
		}
		result.Queued++
	}
	log.Info("prefetch: queued=%d cached=%d dropped=%d", result.Queued, result.Cached, result.Dropped)
	return result, nil
}
