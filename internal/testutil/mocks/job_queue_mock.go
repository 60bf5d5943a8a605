package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueuePrefetch(romaji string) error {
	args := m.Called(romaji)
	return args.Error(0)
}
