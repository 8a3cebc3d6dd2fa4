package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"imagestorebot/internal/models"
)

type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Create(ctx context.Context, ownerID int64, fileReference string) (int64, error) {
	args := m.Called(ctx, ownerID, fileReference)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRepository) TagLatest(ctx context.Context, ownerID int64, tag string) error {
	args := m.Called(ctx, ownerID, tag)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetApprovedByTag(ctx context.Context, ownerID int64, tag string) (*models.Photo, error) {
	args := m.Called(ctx, ownerID, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListPending(ctx context.Context) ([]models.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) Approve(ctx context.Context, fileReference string) error {
	args := m.Called(ctx, fileReference)
	return args.Error(0)
}

func (m *MockPhotoRepository) Reject(ctx context.Context, fileReference string) error {
	args := m.Called(ctx, fileReference)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ArchivePhoto(ctx context.Context, fileReference string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileReference, file, size)
	return args.String(0), args.Error(1)
}

type MockFileSource struct {
	mock.Mock
}

func (m *MockFileSource) OpenFile(ctx context.Context, fileReference string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, fileReference)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(int64), args.Error(2)
}
