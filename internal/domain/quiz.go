package domain

import (
	"fmt"
	"strings"
	"time"
)

// QuestionType identifies how a question's answer is compared during scoring.
// The set is closed; there is no extension point.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "MCQ"
	QuestionTypeTrueFalse QuestionType = "TRUE_FALSE"
	QuestionTypeText      QuestionType = "TEXT"
)

// IsValid reports whether t is one of the known question types
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeText:
		return true
	}
	return false
}

// Question is a single prompt embedded in a Quiz. It is not addressable
// outside its quiz; its ID is stable across quiz edits that keep it.
type Question struct {
	ID            string
	Type          QuestionType
	Question      string
	Options       []string
	CorrectAnswer string
}

// Validate validates the question
func (q *Question) Validate() error {
	if !q.Type.IsValid() {
		return NewInvalidInputError(fmt.Sprintf("question type must be one of MCQ, TRUE_FALSE, TEXT, got %q", q.Type))
	}
	if strings.TrimSpace(q.Question) == "" {
		return NewInvalidInputError("question text is required")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return NewInvalidInputError("correct answer is required")
	}
	if q.Type == QuestionTypeMCQ {
		if len(q.Options) < 2 {
			return NewInvalidInputError("MCQ questions require at least 2 options")
		}
		hasCorrect := false
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return NewInvalidInputError("MCQ options must be non-empty")
			}
			if opt == q.CorrectAnswer {
				hasCorrect = true
			}
		}
		if !hasCorrect {
			return NewInvalidInputError("MCQ options must contain the correct answer")
		}
	}
	return nil
}

// IsCorrect reports whether the submitted answer matches the question's
// correct answer under the comparison rule for its type: MCQ and TRUE_FALSE
// compare exactly (case-sensitive), TEXT compares after trimming surrounding
// whitespace and lower-casing both sides.
func (q *Question) IsCorrect(answer string) bool {
	switch q.Type {
	case QuestionTypeMCQ, QuestionTypeTrueFalse:
		return answer == q.CorrectAnswer
	case QuestionTypeText:
		return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
	}
	return false
}

// Quiz represents an authored set of questions with a publish flag
type Quiz struct {
	ID          string
	Title       string
	Description string
	Published   bool
	Questions   []Question
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuiz creates a new, unpublished Quiz
func NewQuiz(title, description string, questions []Question) *Quiz {
	now := time.Now()
	return &Quiz{
		Title:       title,
		Description: description,
		Published:   false,
		Questions:   questions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the quiz and every embedded question
func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return NewInvalidInputError("title is required")
	}
	if len(q.Questions) == 0 {
		return NewInvalidInputError("at least one question is required")
	}
	seenIDs := make(map[string]struct{}, len(q.Questions))
	for i := range q.Questions {
		id := q.Questions[i].ID
		if strings.TrimSpace(id) == "" {
			return NewInvalidInputError(fmt.Sprintf("question %d: id is required", i+1))
		}
		if _, dup := seenIDs[id]; dup {
			// Answers are keyed by question id, so a duplicate would make
			// two questions indistinguishable at scoring time.
			return NewInvalidInputError(fmt.Sprintf("question %d: duplicate id %q", i+1, id))
		}
		seenIDs[id] = struct{}{}
		if err := q.Questions[i].Validate(); err != nil {
			return NewInvalidInputError(fmt.Sprintf("question %d: %s", i+1, err.Error()))
		}
	}
	return nil
}

// QuestionByID returns the question with the given id, or nil if the quiz
// does not currently contain it.
func (q *Quiz) QuestionByID(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

// Score grades a submitted answer set against the quiz's current questions.
// Answers referencing question ids not present in the quiz contribute
// nothing. When the same question id appears more than once, the last
// occurrence wins. There is no partial credit.
func (q *Quiz) Score(answers []SubmittedAnswer) int {
	questionsByID := make(map[string]*Question, len(q.Questions))
	for i := range q.Questions {
		questionsByID[q.Questions[i].ID] = &q.Questions[i]
	}

	// Fold duplicates so only the last answer per question counts.
	final := make(map[string]string, len(answers))
	for _, ans := range answers {
		if _, known := questionsByID[ans.QuestionID]; known {
			final[ans.QuestionID] = ans.Answer
		}
	}

	score := 0
	for questionID, answer := range final {
		if questionsByID[questionID].IsCorrect(answer) {
			score++
		}
	}
	return score
}
