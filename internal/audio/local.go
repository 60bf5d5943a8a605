package audio

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalSource reads <Dir>/<romaji>.mp3.
type LocalSource struct {
	Dir string
}

func (s LocalSource) Fetch(_ context.Context, romaji string) ([]byte, error) {
	if s.Dir == "" {
		return nil, ErrClipNotFound
	}
	if !ValidRomaji(romaji) {
		return nil, ErrInvalidRomaji
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, romaji+".mp3"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrClipNotFound
	}
	return data, err
}
