package repository

import (
	"context"
	"database/sql"
	"fmt"
	"quizdeck/internal/domain"
	"quizdeck/internal/repository/models"
	"quizdeck/internal/util"
	"time"

	"github.com/jmoiron/sqlx"
)

// SubmissionDatabaseAdapter implements domain.SubmissionRepository using sqlx.DB
type SubmissionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewSubmissionDatabaseAdapter creates a new instance of SubmissionDatabaseAdapter
func NewSubmissionDatabaseAdapter(db *sqlx.DB) domain.SubmissionRepository {
	return &SubmissionDatabaseAdapter{db: db}
}

func toDomainSubmission(m *models.Submission) *domain.Submission {
	if m == nil {
		return nil
	}
	answers := make([]domain.SubmittedAnswer, 0, len(m.Answers))
	for _, a := range m.Answers {
		answers = append(answers, domain.SubmittedAnswer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}
	return &domain.Submission{
		ID:     m.ID,
		QuizID: m.QuizID,
		Respondent: domain.Respondent{
			Name:   m.Name,
			Email:  m.Email,
			Age:    int(m.Age.Int64),
			Gender: domain.Gender(m.Gender.String),
		},
		Answers:   answers,
		Score:     m.Score,
		Status:    domain.SubmissionStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toModelSubmission(s *domain.Submission) *models.Submission {
	if s == nil {
		return nil
	}
	answers := make(models.AnswerSlice, 0, len(s.Answers))
	for _, a := range s.Answers {
		answers = append(answers, models.SubmittedAnswer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
		})
	}
	return &models.Submission{
		ID:        s.ID,
		QuizID:    s.QuizID,
		Name:      s.Respondent.Name,
		Email:     s.Respondent.Email,
		Age:       util.IntToNullInt64(s.Respondent.Age),
		Gender:    util.StringToNullString(string(s.Respondent.Gender)),
		Answers:   answers,
		Score:     s.Score,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// GetSubmissionByID implements domain.SubmissionRepository
func (a *SubmissionDatabaseAdapter) GetSubmissionByID(ctx context.Context, id string) (*domain.Submission, error) {
	var modelSubmission models.Submission
	query := `SELECT
		id "id",
		quiz_id "quiz_id",
		name "name",
		email "email",
		age "age",
		gender "gender",
		answers "answers",
		score "score",
		status "status",
		created_at "created_at",
		updated_at "updated_at"
	FROM submissions
	WHERE id = :1`

	err := a.db.GetContext(ctx, &modelSubmission, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission by ID %s: %w", id, err)
	}
	return toDomainSubmission(&modelSubmission), nil
}

// SaveSubmission implements domain.SubmissionRepository
func (a *SubmissionDatabaseAdapter) SaveSubmission(ctx context.Context, submission *domain.Submission) error {
	modelSubmission := toModelSubmission(submission)
	if modelSubmission == nil {
		return fmt.Errorf("cannot save nil submission")
	}
	modelSubmission.ID = util.NewULID()
	modelSubmission.CreatedAt = time.Now()
	modelSubmission.UpdatedAt = time.Now()

	query := `INSERT INTO submissions (
		id, quiz_id, name, email, age, gender, answers, score, status, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelSubmission.ID,
		modelSubmission.QuizID,
		modelSubmission.Name,
		modelSubmission.Email,
		modelSubmission.Age,
		modelSubmission.Gender,
		modelSubmission.Answers,
		modelSubmission.Score,
		modelSubmission.Status,
		modelSubmission.CreatedAt,
		modelSubmission.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	submission.ID = modelSubmission.ID
	submission.CreatedAt = modelSubmission.CreatedAt
	submission.UpdatedAt = modelSubmission.UpdatedAt
	return nil
}

// FinishSubmission implements domain.SubmissionRepository. The status guard
// in the WHERE clause makes the started→finished transition happen at most
// once even under concurrent finish calls for the same id.
func (a *SubmissionDatabaseAdapter) FinishSubmission(ctx context.Context, submission *domain.Submission) (int64, error) {
	modelSubmission := toModelSubmission(submission)
	if modelSubmission == nil {
		return 0, fmt.Errorf("cannot finish nil submission")
	}
	if modelSubmission.ID == "" {
		return 0, fmt.Errorf("cannot finish submission with empty ID")
	}
	modelSubmission.UpdatedAt = time.Now()

	query := `UPDATE submissions SET
		answers = :1,
		score = :2,
		status = :3,
		updated_at = :4
	WHERE id = :5
	AND status = :6`

	result, err := a.db.ExecContext(ctx, query,
		modelSubmission.Answers,
		modelSubmission.Score,
		string(domain.SubmissionFinished),
		modelSubmission.UpdatedAt,
		modelSubmission.ID,
		string(domain.SubmissionStarted),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to finish submission %s: %w", submission.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		submission.UpdatedAt = modelSubmission.UpdatedAt
	}
	return rowsAffected, nil
}
