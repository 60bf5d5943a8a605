// Package audio resolves pronunciation clips for a romaji and hands them to a
// player. Clips are looked up in a local directory first and fetched from a
// remote base URL when the local file is absent.
package audio

import (
	"context"
	"errors"
	"regexp"
)

// Sources a Clip can come from.
const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

var (
	ErrClipNotFound  = errors.New("audio clip not found")
	ErrInvalidRomaji = errors.New("invalid romaji")
	ErrNoPlayer      = errors.New("no audio player configured")
	ErrClipTooLarge  = errors.New("audio clip too large")
)

var romajiRe = regexp.MustCompile(`^[a-z]{1,4}$`)

// ValidRomaji reports whether r is safe to use as a clip name.
func ValidRomaji(r string) bool {
	return romajiRe.MatchString(r)
}

// Clip is an undecoded audio resource.
type Clip struct {
	Romaji      string
	Data        []byte
	Source      string
	ContentType string
}

// Fetcher loads the raw clip for a romaji from one source. Implementations
// return ErrClipNotFound when the source has no such clip.
type Fetcher interface {
	Fetch(ctx context.Context, romaji string) ([]byte, error)
}

// Player plays a resolved clip.
type Player interface {
	Play(ctx context.Context, clip Clip) error
}

// Result reports the outcome of a play request. Failures are carried in the
// value, never returned as errors.
type Result struct {
	Romaji  string `json:"romaji"`
	Success bool   `json:"success"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}
