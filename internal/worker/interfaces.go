package worker

import "context"

// ClipWarmer loads an audio clip into the cache.
// This avoids import cycles by not importing the audio package
type ClipWarmer interface {
	Warm(ctx context.Context, romaji string) error
}
