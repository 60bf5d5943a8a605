package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vytor/kanaflash/internal/logger"
)

// DefaultRemoteBase serves one mp3 per romaji.
const DefaultRemoteBase = "https://assets.languagepod101.com/dictionary/japanese/us_audio/kana"

// maxClipSize bounds a downloaded clip.
const maxClipSize = 2 << 20

// RemoteSource downloads <BaseURL>/<romaji>.mp3.
type RemoteSource struct {
	httpClient *http.Client
	baseURL    string
}

func NewRemoteSource(baseURL string, timeout time.Duration) *RemoteSource {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RemoteSource{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (s *RemoteSource) Fetch(ctx context.Context, romaji string) ([]byte, error) {
	if s.baseURL == "" {
		return nil, ErrClipNotFound
	}
	if !ValidRomaji(romaji) {
		return nil, ErrInvalidRomaji
	}
	log := logger.FromContext(ctx).WithPrefix("audio_remote").WithField("romaji", romaji)
	url := fmt.Sprintf("%s/%s.mp3", s.baseURL, romaji)

	log.Debug("fetching clip from: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch clip: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("clip response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrClipNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("clip request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("audio status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxClipSize+1))
	if err != nil {
		log.Error("failed to read clip body: %v", err)
		return nil, err
	}
	if len(data) > maxClipSize {
		log.Error("clip exceeds %d bytes", maxClipSize)
		return nil, ErrClipTooLarge
	}
	log.Debug("fetched %d bytes", len(data))
	return data, nil
}
