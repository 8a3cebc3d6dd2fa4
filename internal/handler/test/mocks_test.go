package test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"imagestorebot/internal/models"
)

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) Submit(ctx context.Context, ownerID int64, fileReference string) (int64, error) {
	args := m.Called(ctx, ownerID, fileReference)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoService) Tag(ctx context.Context, ownerID int64, tag string) error {
	args := m.Called(ctx, ownerID, tag)
	return args.Error(0)
}

func (m *MockPhotoService) Get(ctx context.Context, ownerID int64, tag string) (*models.Photo, error) {
	args := m.Called(ctx, ownerID, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Pending(ctx context.Context) ([]models.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockReviewService) Approve(ctx context.Context, fileReference string) error {
	args := m.Called(ctx, fileReference)
	return args.Error(0)
}

func (m *MockReviewService) Reject(ctx context.Context, fileReference string) error {
	args := m.Called(ctx, fileReference)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Counts(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck() error {
	args := m.Called()
	return args.Error(0)
}

// Sent is one outbound message captured by RecordingSender.
type Sent struct {
	ChatID int64
	Text   string
	Photo  string
}

type RecordingSender struct {
	mu   sync.Mutex
	sent []Sent
	err  error
}

func (s *RecordingSender) SendText(_ context.Context, chatID int64, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, Sent{ChatID: chatID, Text: text})
	return s.err
}

func (s *RecordingSender) SendPhoto(_ context.Context, chatID int64, fileReference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, Sent{ChatID: chatID, Photo: fileReference})
	return s.err
}

func (s *RecordingSender) Messages() []Sent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Sent, len(s.sent))
	copy(out, s.sent)
	return out
}

func (s *RecordingSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
}
