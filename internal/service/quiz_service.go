package service

import (
	"context"
	"errors"
	"strings"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"
	"quizdeck/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the quiz-authoring and public catalog operations
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.AdminQuizResponse, error)
	UpdateQuiz(ctx context.Context, id string, req *dto.UpdateQuizRequest) (*dto.AdminQuizResponse, error)
	DeleteQuiz(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) (*dto.AdminQuizResponse, error)
	GetQuizForAdmin(ctx context.Context, id string) (*dto.AdminQuizResponse, error)
	ListQuizzesForAdmin(ctx context.Context) (*dto.AdminQuizListResponse, error)

	// Public surface: only published quizzes, correct answers redacted.
	GetPublishedQuiz(ctx context.Context, id string) (*dto.QuizResponse, error)
	ListPublishedQuizzes(ctx context.Context) (*dto.QuizListResponse, error)
}

type quizService struct {
	repo      domain.QuizRepository
	quizCache QuizCacheService
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuizRepository, quizCache QuizCacheService) QuizService {
	return &quizService{
		repo:      repo,
		quizCache: quizCache,
	}
}

func questionsFromPayload(payloads []dto.QuestionPayload) []domain.Question {
	questions := make([]domain.Question, 0, len(payloads))
	for _, p := range payloads {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			// Question ids are minted server-side so they stay stable across
			// edits that keep the question.
			id = util.NewULID()
		}
		questions = append(questions, domain.Question{
			ID:            id,
			Type:          domain.QuestionType(p.Type),
			Question:      p.Question,
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
		})
	}
	return questions
}

func toAdminQuizResponse(quiz *domain.Quiz) *dto.AdminQuizResponse {
	questions := make([]dto.QuestionPayload, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, dto.QuestionPayload{
			ID:            q.ID,
			Type:          string(q.Type),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return &dto.AdminQuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		IsPublished: quiz.Published,
		Questions:   questions,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	questions := make([]dto.QuestionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, dto.QuestionView{
			ID:       q.ID,
			Type:     string(q.Type),
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return &dto.QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		IsPublished: quiz.Published,
		Questions:   questions,
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}
}

// CreateQuiz implements QuizService
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.AdminQuizResponse, error) {
	quiz := domain.NewQuiz(req.Title, req.Description, questionsFromPayload(req.Questions))
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	logger.Get().Info("Quiz created",
		zap.String("quizID", quiz.ID),
		zap.Int("questions", len(quiz.Questions)))
	return toAdminQuizResponse(quiz), nil
}

// UpdateQuiz implements QuizService. The publish flag is untouched; editing
// content never publishes or unpublishes a quiz.
func (s *quizService) UpdateQuiz(ctx context.Context, id string, req *dto.UpdateQuizRequest) (*dto.AdminQuizResponse, error) {
	existing, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if existing == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Questions = questionsFromPayload(req.Questions)
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuiz(ctx, existing); err != nil {
		return nil, domain.NewInternalError("Failed to update quiz", err)
	}

	s.invalidateCache(ctx, id)
	logger.Get().Info("Quiz updated", zap.String("quizID", id))
	return toAdminQuizResponse(existing), nil
}

// DeleteQuiz implements QuizService
func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	if err := s.repo.DeleteQuiz(ctx, id); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return err
		}
		return domain.NewInternalError("Failed to delete quiz", err)
	}

	s.invalidateCache(ctx, id)
	logger.Get().Info("Quiz deleted", zap.String("quizID", id))
	return nil
}

// SetPublished implements QuizService
func (s *quizService) SetPublished(ctx context.Context, id string, published bool) (*dto.AdminQuizResponse, error) {
	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to change publish state", err)
	}

	s.invalidateCache(ctx, id)

	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}

	logger.Get().Info("Quiz publish state changed",
		zap.String("quizID", id),
		zap.Bool("published", published))
	return toAdminQuizResponse(quiz), nil
}

// GetQuizForAdmin implements QuizService
func (s *quizService) GetQuizForAdmin(ctx context.Context, id string) (*dto.AdminQuizResponse, error) {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}
	return toAdminQuizResponse(quiz), nil
}

// ListQuizzesForAdmin implements QuizService
func (s *quizService) ListQuizzesForAdmin(ctx context.Context) (*dto.AdminQuizListResponse, error) {
	quizzes, err := s.repo.GetAllQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	responses := make([]dto.AdminQuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, *toAdminQuizResponse(quiz))
	}
	return &dto.AdminQuizListResponse{Quizzes: responses}, nil
}

// GetPublishedQuiz implements QuizService. Unpublished quizzes are
// indistinguishable from missing ones on the public surface.
func (s *quizService) GetPublishedQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	if cached, err := s.quizCache.GetPublishedQuiz(ctx, id); err != nil {
		logger.Get().Error("Quiz cache read failed, falling back to store",
			zap.String("quizID", id), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil || !quiz.Published {
		return nil, domain.NewQuizNotFoundError(id)
	}

	response := toQuizResponse(quiz)
	if err := s.quizCache.PutPublishedQuiz(ctx, id, response); err != nil {
		logger.Get().Error("Quiz cache write failed",
			zap.String("quizID", id), zap.Error(err))
	}
	return response, nil
}

// ListPublishedQuizzes implements QuizService
func (s *quizService) ListPublishedQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	if cached, err := s.quizCache.GetPublishedList(ctx); err != nil {
		logger.Get().Error("Quiz list cache read failed, falling back to store", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	quizzes, err := s.repo.GetPublishedQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list published quizzes", err)
	}

	responses := make([]dto.QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		responses = append(responses, *toQuizResponse(quiz))
	}

	list := &dto.QuizListResponse{Quizzes: responses}
	if err := s.quizCache.PutPublishedList(ctx, list); err != nil {
		logger.Get().Error("Quiz list cache write failed", zap.Error(err))
	}
	return list, nil
}

func (s *quizService) invalidateCache(ctx context.Context, id string) {
	if err := s.quizCache.InvalidateQuiz(ctx, id); err != nil {
		logger.Get().Error("Failed to invalidate quiz cache",
			zap.String("quizID", id), zap.Error(err))
	}
}
