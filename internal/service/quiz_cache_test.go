package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizCacheService_GetPublishedQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit", func(t *testing.T) {
		backend := new(MockCache)
		svc := NewQuizCacheService(backend, time.Minute)

		stored := dto.QuizResponse{ID: "quiz-1", Title: "World Capitals"}
		data, err := json.Marshal(stored)
		require.NoError(t, err)
		backend.On("Get", ctx, quizKey("quiz-1")).Return(string(data), nil)

		quiz, err := svc.GetPublishedQuiz(ctx, "quiz-1")

		require.NoError(t, err)
		require.NotNil(t, quiz)
		assert.Equal(t, "World Capitals", quiz.Title)
	})

	t.Run("Miss", func(t *testing.T) {
		backend := new(MockCache)
		svc := NewQuizCacheService(backend, time.Minute)

		backend.On("Get", ctx, quizKey("quiz-1")).Return("", domain.ErrCacheMiss)

		quiz, err := svc.GetPublishedQuiz(ctx, "quiz-1")

		require.NoError(t, err)
		assert.Nil(t, quiz)
	})

	t.Run("CorruptEntryTreatedAsMiss", func(t *testing.T) {
		backend := new(MockCache)
		svc := NewQuizCacheService(backend, time.Minute)

		backend.On("Get", ctx, quizKey("quiz-1")).Return("{not json", nil)

		quiz, err := svc.GetPublishedQuiz(ctx, "quiz-1")

		require.NoError(t, err)
		assert.Nil(t, quiz)
	})

	t.Run("BackendError", func(t *testing.T) {
		backend := new(MockCache)
		svc := NewQuizCacheService(backend, time.Minute)

		backend.On("Get", ctx, quizKey("quiz-1")).Return("", errors.New("redis down"))

		_, err := svc.GetPublishedQuiz(ctx, "quiz-1")
		require.Error(t, err)
	})
}

func TestQuizCacheService_PutPublishedQuiz(t *testing.T) {
	ctx := context.Background()

	backend := new(MockCache)
	svc := NewQuizCacheService(backend, 5*time.Minute)

	quiz := &dto.QuizResponse{ID: "quiz-1", Title: "World Capitals"}
	backend.On("Set", ctx, quizKey("quiz-1"), mock.MatchedBy(func(data string) bool {
		var decoded dto.QuizResponse
		return json.Unmarshal([]byte(data), &decoded) == nil && decoded.ID == "quiz-1"
	}), 5*time.Minute).Return(nil)

	require.NoError(t, svc.PutPublishedQuiz(ctx, "quiz-1", quiz))
	require.Error(t, svc.PutPublishedQuiz(ctx, "quiz-1", nil))
	backend.AssertExpectations(t)
}

func TestQuizCacheService_PublishedList(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		backend := new(MockCache)
		svc := NewQuizCacheService(backend, time.Minute)

		list := &dto.QuizListResponse{Quizzes: []dto.QuizResponse{{ID: "quiz-1"}}}
		data, err := json.Marshal(list)
		require.NoError(t, err)

		backend.On("Set", ctx, quizListKey(), string(data), time.Minute).Return(nil)
		backend.On("Get", ctx, quizListKey()).Return(string(data), nil)

		require.NoError(t, svc.PutPublishedList(ctx, list))
		got, err := svc.GetPublishedList(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Len(t, got.Quizzes, 1)
	})

	t.Run("Miss", func(t *testing.T) {
		backend := new(MockCache)
		svc := NewQuizCacheService(backend, time.Minute)

		backend.On("Get", ctx, quizListKey()).Return("", domain.ErrCacheMiss)

		got, err := svc.GetPublishedList(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestQuizCacheService_InvalidateQuiz(t *testing.T) {
	ctx := context.Background()

	backend := new(MockCache)
	svc := NewQuizCacheService(backend, time.Minute)

	backend.On("Delete", ctx, quizKey("quiz-1")).Return(nil)
	backend.On("Delete", ctx, quizListKey()).Return(nil)

	require.NoError(t, svc.InvalidateQuiz(ctx, "quiz-1"))
	backend.AssertExpectations(t)
}

func TestQuizCacheService_NilCacheIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := NewQuizCacheService(nil, time.Minute)

	quiz, err := svc.GetPublishedQuiz(ctx, "quiz-1")
	require.NoError(t, err)
	assert.Nil(t, quiz)

	list, err := svc.GetPublishedList(ctx)
	require.NoError(t, err)
	assert.Nil(t, list)

	require.NoError(t, svc.PutPublishedQuiz(ctx, "quiz-1", &dto.QuizResponse{}))
	require.NoError(t, svc.PutPublishedList(ctx, &dto.QuizListResponse{}))
	require.NoError(t, svc.InvalidateQuiz(ctx, "quiz-1"))
}
