package service

import (
	"context"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if quiz, ok := args.Get(0).(*domain.Quiz); ok {
		return quiz, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizRepository) GetPublishedQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if quizzes, ok := args.Get(0).([]*domain.Quiz); ok {
		return quizzes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizRepository) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if quizzes, ok := args.Get(0).([]*domain.Quiz); ok {
		return quizzes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuizRepository) SetPublished(ctx context.Context, id string, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) GetSubmissionByID(ctx context.Context, id string) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if sub, ok := args.Get(0).(*domain.Submission); ok {
		return sub, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubmissionRepository) SaveSubmission(ctx context.Context, submission *domain.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) FinishSubmission(ctx context.Context, submission *domain.Submission) (int64, error) {
	args := m.Called(ctx, submission)
	return args.Get(0).(int64), args.Error(1)
}

type MockQuizCacheService struct {
	mock.Mock
}

func (m *MockQuizCacheService) GetPublishedList(ctx context.Context) (*dto.QuizListResponse, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).(*dto.QuizListResponse); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizCacheService) PutPublishedList(ctx context.Context, list *dto.QuizListResponse) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockQuizCacheService) GetPublishedQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	args := m.Called(ctx, quizID)
	if quiz, ok := args.Get(0).(*dto.QuizResponse); ok {
		return quiz, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuizCacheService) PutPublishedQuiz(ctx context.Context, quizID string, quiz *dto.QuizResponse) error {
	args := m.Called(ctx, quizID, quiz)
	return args.Error(0)
}

func (m *MockQuizCacheService) InvalidateQuiz(ctx context.Context, quizID string) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}
