package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/flashcord/internal/models"
)

// MockFlashcardService is a mock implementation of services.FlashcardService
type MockFlashcardService struct {
	mock.Mock
}

func (m *MockFlashcardService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Folder), args.Error(1)
}

func (m *MockFlashcardService) ListFlashcards(ctx context.Context, folderID string) ([]models.Flashcard, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flashcard), args.Error(1)
}

// MockHistoryService is a mock implementation of services.HistoryService
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) ChallengeHistory(ctx context.Context) ([]models.ChallengeRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengeRecord), args.Error(1)
}

func (m *MockHistoryService) FolderStatistics(ctx context.Context, folderID string) (models.FolderStats, error) {
	args := m.Called(ctx, folderID)
	return args.Get(0).(models.FolderStats), args.Error(1)
}

func (m *MockHistoryService) RecordChallenge(ctx context.Context, folderID string, correct, incorrect int) error {
	args := m.Called(ctx, folderID, correct, incorrect)
	return args.Error(0)
}
