package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quizdeck/internal/cache"
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
)

const publishedListIdentifier = "all"

// QuizCacheService caches the public, redacted quiz views. Only redacted
// views ever go through here; scoring reads the quiz from the store.
type QuizCacheService interface {
	// GetPublishedList returns the cached published-quiz list, or (nil, nil)
	// on a cache miss.
	GetPublishedList(ctx context.Context) (*dto.QuizListResponse, error)
	PutPublishedList(ctx context.Context, list *dto.QuizListResponse) error

	// GetPublishedQuiz returns the cached redacted quiz, or (nil, nil) on a
	// cache miss.
	GetPublishedQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error)
	PutPublishedQuiz(ctx context.Context, quizID string, quiz *dto.QuizResponse) error

	// InvalidateQuiz drops the cached entry for one quiz and the list entry,
	// since any quiz mutation can change what the list shows.
	InvalidateQuiz(ctx context.Context, quizID string) error
}

type quizCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizCacheService creates a new instance of QuizCacheService. A nil
// cache yields a no-op implementation so callers need no nil checks.
func NewQuizCacheService(cacheClient domain.Cache, ttl time.Duration) QuizCacheService {
	if cacheClient == nil {
		logger.Get().Warn("QuizCacheService initialized with nil cache. Service will be no-op.")
		return &noopQuizCacheService{}
	}
	return &quizCacheServiceImpl{cache: cacheClient, ttl: ttl}
}

func quizListKey() string {
	return cache.GenerateCacheKey("quiz", "published", publishedListIdentifier)
}

func quizKey(quizID string) string {
	return cache.GenerateCacheKey("quiz", "redacted", quizID)
}

func (s *quizCacheServiceImpl) GetPublishedList(ctx context.Context) (*dto.QuizListResponse, error) {
	data, err := s.cache.Get(ctx, quizListKey())
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}

	var list dto.QuizListResponse
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		logger.Get().Warn("Failed to unmarshal cached quiz list, treating as miss", zap.Error(err))
		return nil, nil
	}
	return &list, nil
}

func (s *quizCacheServiceImpl) PutPublishedList(ctx context.Context, list *dto.QuizListResponse) error {
	if list == nil {
		return domain.NewInvalidInputError("cannot cache nil quiz list")
	}
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, quizListKey(), string(data), s.ttl)
}

func (s *quizCacheServiceImpl) GetPublishedQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	data, err := s.cache.Get(ctx, quizKey(quizID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}

	var quiz dto.QuizResponse
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		logger.Get().Warn("Failed to unmarshal cached quiz, treating as miss",
			zap.String("quizID", quizID), zap.Error(err))
		return nil, nil
	}
	return &quiz, nil
}

func (s *quizCacheServiceImpl) PutPublishedQuiz(ctx context.Context, quizID string, quiz *dto.QuizResponse) error {
	if quiz == nil {
		return domain.NewInvalidInputError("cannot cache nil quiz")
	}
	data, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, quizKey(quizID), string(data), s.ttl)
}

func (s *quizCacheServiceImpl) InvalidateQuiz(ctx context.Context, quizID string) error {
	if err := s.cache.Delete(ctx, quizKey(quizID)); err != nil {
		return err
	}
	return s.cache.Delete(ctx, quizListKey())
}

// noopQuizCacheService answers every read with a miss and swallows writes
type noopQuizCacheService struct{}

func (n *noopQuizCacheService) GetPublishedList(ctx context.Context) (*dto.QuizListResponse, error) {
	return nil, nil
}

func (n *noopQuizCacheService) PutPublishedList(ctx context.Context, list *dto.QuizListResponse) error {
	return nil
}

func (n *noopQuizCacheService) GetPublishedQuiz(ctx context.Context, quizID string) (*dto.QuizResponse, error) {
	return nil, nil
}

func (n *noopQuizCacheService) PutPublishedQuiz(ctx context.Context, quizID string, quiz *dto.QuizResponse) error {
	return nil
}

func (n *noopQuizCacheService) InvalidateQuiz(ctx context.Context, quizID string) error {
	return nil
}
