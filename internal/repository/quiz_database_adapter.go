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

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

const quizColumns = `id "id",
		title "title",
		description "description",
		published "published",
		questions "questions",
		created_at "created_at",
		updated_at "updated_at"`

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	questions := make([]domain.Question, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, domain.Question{
			ID:            q.ID,
			Type:          domain.QuestionType(q.Type),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return &domain.Quiz{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description.String,
		Published:   m.Published != 0,
		Questions:   questions,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toModelQuiz(q *domain.Quiz) *models.Quiz {
	if q == nil {
		return nil
	}
	questions := make(models.QuestionSlice, 0, len(q.Questions))
	for _, dq := range q.Questions {
		questions = append(questions, models.Question{
			ID:            dq.ID,
			Type:          string(dq.Type),
			Question:      dq.Question,
			Options:       dq.Options,
			CorrectAnswer: dq.CorrectAnswer,
		})
	}
	published := 0
	if q.Published {
		published = 1
	}
	return &models.Quiz{
		ID:          q.ID,
		Title:       q.Title,
		Description: util.StringToNullString(q.Description),
		Published:   published,
		Questions:   questions,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var modelQuiz models.Quiz
	query := `SELECT ` + quizColumns + `
	FROM quizzes
	WHERE id = :1`

	err := a.db.GetContext(ctx, &modelQuiz, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&modelQuiz), nil
}

// GetPublishedQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetPublishedQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	var modelQuizzes []models.Quiz
	query := `SELECT ` + quizColumns + `
	FROM quizzes
	WHERE published = 1
	ORDER BY created_at`

	if err := a.db.SelectContext(ctx, &modelQuizzes, query); err != nil {
		return nil, fmt.Errorf("failed to get published quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quizzes = append(quizzes, toDomainQuiz(&modelQuizzes[i]))
	}
	return quizzes, nil
}

// GetAllQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	var modelQuizzes []models.Quiz
	query := `SELECT ` + quizColumns + `
	FROM quizzes
	ORDER BY created_at`

	if err := a.db.SelectContext(ctx, &modelQuizzes, query); err != nil {
		return nil, fmt.Errorf("failed to get all quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quizzes = append(quizzes, toDomainQuiz(&modelQuizzes[i]))
	}
	return quizzes, nil
}

// SaveQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	modelQuiz := toModelQuiz(quiz)
	if modelQuiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	modelQuiz.ID = util.NewULID()
	modelQuiz.CreatedAt = time.Now()
	modelQuiz.UpdatedAt = time.Now()

	query := `INSERT INTO quizzes (
		id, title, description, published, questions, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelQuiz.ID,
		modelQuiz.Title,
		modelQuiz.Description,
		modelQuiz.Published,
		modelQuiz.Questions,
		modelQuiz.CreatedAt,
		modelQuiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	quiz.ID = modelQuiz.ID
	quiz.CreatedAt = modelQuiz.CreatedAt
	quiz.UpdatedAt = modelQuiz.UpdatedAt
	return nil
}

// UpdateQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	modelQuiz := toModelQuiz(quiz)
	if modelQuiz == nil {
		return fmt.Errorf("cannot update nil quiz")
	}
	if modelQuiz.ID == "" {
		return fmt.Errorf("cannot update quiz with empty ID")
	}
	modelQuiz.UpdatedAt = time.Now()

	query := `UPDATE quizzes SET
		title = :1,
		description = :2,
		published = :3,
		questions = :4,
		updated_at = :5
	WHERE id = :6`

	result, err := a.db.ExecContext(ctx, query,
		modelQuiz.Title,
		modelQuiz.Description,
		modelQuiz.Published,
		modelQuiz.Questions,
		modelQuiz.UpdatedAt,
		modelQuiz.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(quiz.ID)
	}
	quiz.UpdatedAt = modelQuiz.UpdatedAt
	return nil
}

// DeleteQuiz implements domain.QuizRepository
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	result, err := a.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = :1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

// SetPublished implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SetPublished(ctx context.Context, id string, published bool) error {
	val := 0
	if published {
		val = 1
	}

	query := `UPDATE quizzes SET published = :1, updated_at = :2 WHERE id = :3`
	result, err := a.db.ExecContext(ctx, query, val, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set published on quiz %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}
