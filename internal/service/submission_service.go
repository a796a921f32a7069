package service

import (
	"context"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
)

// SubmissionService defines the anonymous quiz-taking lifecycle
type SubmissionService interface {
	// StartSubmission opens an attempt at a quiz for a respondent and
	// returns the submission id used to finish it later.
	StartSubmission(ctx context.Context, req *dto.StartSubmissionRequest) (*dto.StartSubmissionResponse, error)

	// FinishSubmission grades the submitted answers against the quiz's
	// current questions and moves the submission to its terminal state.
	// Finishing an already-finished submission returns the stored score.
	FinishSubmission(ctx context.Context, req *dto.FinishSubmissionRequest) (*dto.FinishSubmissionResponse, error)
}

type submissionService struct {
	submissionRepo domain.SubmissionRepository
	quizRepo       domain.QuizRepository
}

// NewSubmissionService creates a new instance of submissionService
func NewSubmissionService(submissionRepo domain.SubmissionRepository, quizRepo domain.QuizRepository) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		quizRepo:       quizRepo,
	}
}

// StartSubmission implements SubmissionService. Any existing quiz can be
// started, published or not; the publish flag only gates the public catalog.
func (s *submissionService) StartSubmission(ctx context.Context, req *dto.StartSubmissionRequest) (*dto.StartSubmissionResponse, error) {
	respondent := domain.Respondent{
		Name:   req.Name,
		Email:  req.Email,
		Age:    req.Age,
		Gender: domain.Gender(req.Gender),
	}
	if err := respondent.Validate(); err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(req.QuizID)
	}

	submission := domain.NewSubmission(quiz.ID, respondent)
	if err := s.submissionRepo.SaveSubmission(ctx, submission); err != nil {
		return nil, domain.NewInternalError("Failed to save submission", err)
	}

	logger.Get().Info("Submission started",
		zap.String("submissionID", submission.ID),
		zap.String("quizID", quiz.ID))
	return &dto.StartSubmissionResponse{
		SubmissionID: submission.ID,
		Message:      "Quiz started successfully",
	}, nil
}

// FinishSubmission implements SubmissionService. Grading always reads the
// quiz's live question set, so answers to questions edited out since the
// attempt started simply do not count.
func (s *submissionService) FinishSubmission(ctx context.Context, req *dto.FinishSubmissionRequest) (*dto.FinishSubmissionResponse, error) {
	submission, err := s.submissionRepo.GetSubmissionByID(ctx, req.SubmissionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get submission", err)
	}
	if submission == nil {
		return nil, domain.NewSubmissionNotFoundError(req.SubmissionID)
	}

	quiz, err := s.quizRepo.GetQuizByID(ctx, submission.QuizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(submission.QuizID)
	}

	if submission.IsFinished() {
		logger.Get().Info("Submission already finished, returning stored score",
			zap.String("submissionID", submission.ID))
		return &dto.FinishSubmissionResponse{
			Score:          submission.Score,
			TotalQuestions: len(quiz.Questions),
			Message:        "Quiz submitted successfully",
		}, nil
	}

	answers := make([]domain.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.SubmittedAnswer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}

	score := quiz.Score(answers)
	submission.Finish(answers, score)

	rows, err := s.submissionRepo.FinishSubmission(ctx, submission)
	if err != nil {
		return nil, domain.NewInternalError("Failed to finish submission", err)
	}
	if rows == 0 {
		// Lost a race against a concurrent finish; the stored score wins.
		stored, err := s.submissionRepo.GetSubmissionByID(ctx, submission.ID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get submission", err)
		}
		if stored == nil {
			return nil, domain.NewSubmissionNotFoundError(submission.ID)
		}
		logger.Get().Info("Concurrent finish detected, returning stored score",
			zap.String("submissionID", submission.ID))
		return &dto.FinishSubmissionResponse{
			Score:          stored.Score,
			TotalQuestions: len(quiz.Questions),
			Message:        "Quiz submitted successfully",
		}, nil
	}

	logger.Get().Info("Submission finished",
		zap.String("submissionID", submission.ID),
		zap.String("quizID", quiz.ID),
		zap.Int("score", score),
		zap.Int("totalQuestions", len(quiz.Questions)))
	return &dto.FinishSubmissionResponse{
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Message:        "Quiz submitted successfully",
	}, nil
}
