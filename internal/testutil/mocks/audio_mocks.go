package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/kanaflash/internal/audio"
)

// MockFetcher is a mock implementation of audio.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, romaji string) ([]byte, error) {
	args := m.Called(ctx, romaji)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPlayer is a mock implementation of audio.Player
type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Play(ctx context.Context, clip audio.Clip) error {
	args := m.Called(ctx, clip)
	return args.Error(0)
}
