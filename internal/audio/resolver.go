package audio

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vytor/kanaflash/internal/logger"
)

// DefaultCacheSize holds every clip of the reference table.
const DefaultCacheSize = 128

// Resolver finds a clip locally, then remotely, and caches what it found.
type Resolver struct {
	local  Fetcher
	remote Fetcher
	cache  *lru.Cache[string, Clip]
}

// NewResolver builds a Resolver. Either source may be nil.
func NewResolver(local, remote Fetcher, cacheSize int) (*Resolver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, Clip](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{local: local, remote: remote, cache: cache}, nil
}

// Resolve returns the clip for romaji.
func (r *Resolver) Resolve(ctx context.Context, romaji string) (Clip, error) {
	if !ValidRomaji(romaji) {
		return Clip{}, ErrInvalidRomaji
	}
	if clip, ok := r.cache.Get(romaji); ok {
		return clip, nil
	}

	log := logger.FromContext(ctx).WithPrefix("audio").WithField("romaji", romaji)

	var localErr error
	if r.local != nil {
		data, err := r.local.Fetch(ctx, romaji)
		if err == nil {
			log.Debug("using local clip")
			return r.store(romaji, data, SourceLocal), nil
		}
		localErr = err
		log.Debug("local clip unavailable (%v), trying remote", err)
	}

	if r.remote != nil {
		data, err := r.remote.Fetch(ctx, romaji)
		if err == nil {
			log.Debug("using remote clip")
			return r.store(romaji, data, SourceRemote), nil
		}
		log.Warn("remote clip unavailable: %v", err)
		if errors.Is(err, ErrClipNotFound) && (localErr == nil || errors.Is(localErr, ErrClipNotFound)) {
			return Clip{}, ErrClipNotFound
		}
		return Clip{}, fmt.Errorf("load audio %s: %w", romaji, err)
	}

	if localErr != nil && !errors.Is(localErr, ErrClipNotFound) {
		return Clip{}, fmt.Errorf("load audio %s: %w", romaji, localErr)
	}
	return Clip{}, ErrClipNotFound
}

// Cached reports whether romaji is already in the cache.
func (r *Resolver) Cached(romaji string) bool {
	return r.cache.Contains(romaji)
}

func (r *Resolver) store(romaji string, data []byte, source string) Clip {
	clip := Clip{Romaji: romaji, Data: data, Source: source, ContentType: "audio/mpeg"}
	r.cache.Add(romaji, clip)
	return clip
}

// Warm resolves romaji so later requests are served from the cache.
func (r *Resolver) Warm(ctx context.Context, romaji string) error {
	_, err := r.Resolve(ctx, romaji)
	return err
}
