package dto

import "time"

// QuestionPayload carries a full question, correct answer included. It is
// only ever accepted from or returned to authenticated admins.
type QuestionPayload struct {
	ID            string   `json:"id,omitempty"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuestionView is the public, redacted question shape: no correct answer.
type QuestionView struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

// CreateQuizRequest is the admin request body for creating a quiz
// @Description Request body for creating a quiz
type CreateQuizRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Questions   []QuestionPayload `json:"questions"`
}

// UpdateQuizRequest is the admin request body for replacing a quiz's content
type UpdateQuizRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Questions   []QuestionPayload `json:"questions"`
}

// QuizResponse is the public view of a quiz, with correct answers redacted
// @Description Public quiz information without correct answers
type QuizResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	IsPublished bool           `json:"isPublished"`
	Questions   []QuestionView `json:"questions"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// AdminQuizResponse is the unredacted view of a quiz for authoring screens
type AdminQuizResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	IsPublished bool              `json:"isPublished"`
	Questions   []QuestionPayload `json:"questions"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// QuizListResponse wraps a list of public quiz views
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

// AdminQuizListResponse wraps a list of unredacted quiz views
type AdminQuizListResponse struct {
	Quizzes []AdminQuizResponse `json:"quizzes"`
}
