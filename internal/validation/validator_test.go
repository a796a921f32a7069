package validation

import (
	"testing"

	"quizdeck/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateStartSubmission(t *testing.T) {
	v := NewValidator()

	t.Run("Valid", func(t *testing.T) {
		errs := v.ValidateStartSubmission(&dto.StartSubmissionRequest{
			QuizID: "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			Name:   "Alice",
			Email:  "alice@example.com",
		})
		assert.Empty(t, errs)
	})

	t.Run("AllMissing", func(t *testing.T) {
		errs := v.ValidateStartSubmission(&dto.StartSubmissionRequest{})
		assert.Len(t, errs, 3)

		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field)
		}
		assert.ElementsMatch(t, []string{"quizId", "name", "email"}, fields)
	})

	t.Run("WhitespaceOnlyName", func(t *testing.T) {
		errs := v.ValidateStartSubmission(&dto.StartSubmissionRequest{
			QuizID: "quiz-1",
			Name:   "   ",
			Email:  "alice@example.com",
		})
		assert.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
	})
}

func TestValidateFinishSubmission(t *testing.T) {
	v := NewValidator()

	t.Run("Valid", func(t *testing.T) {
		errs := v.ValidateFinishSubmission(&dto.FinishSubmissionRequest{
			SubmissionID: "sub-1",
			Answers: []dto.SubmittedAnswerPayload{
				{QuestionID: "q1", Answer: "Paris"},
			},
		})
		assert.Empty(t, errs)
	})

	t.Run("EmptyAnswersAllowed", func(t *testing.T) {
		errs := v.ValidateFinishSubmission(&dto.FinishSubmissionRequest{
			SubmissionID: "sub-1",
			Answers:      []dto.SubmittedAnswerPayload{},
		})
		assert.Empty(t, errs)
	})

	t.Run("MissingAnswersRejected", func(t *testing.T) {
		errs := v.ValidateFinishSubmission(&dto.FinishSubmissionRequest{
			SubmissionID: "sub-1",
			Answers:      nil,
		})
		assert.Len(t, errs, 1)
		assert.Equal(t, "answers", errs[0].Field)
	})

	t.Run("MissingSubmissionID", func(t *testing.T) {
		errs := v.ValidateFinishSubmission(&dto.FinishSubmissionRequest{
			Answers: []dto.SubmittedAnswerPayload{},
		})
		assert.Len(t, errs, 1)
		assert.Equal(t, "submissionId", errs[0].Field)
	})

	t.Run("BlankQuestionIDAllowed", func(t *testing.T) {
		// An empty question id matches no question and is ignored at
		// scoring time, the same as any other stale id.
		errs := v.ValidateFinishSubmission(&dto.FinishSubmissionRequest{
			SubmissionID: "sub-1",
			Answers: []dto.SubmittedAnswerPayload{
				{QuestionID: "", Answer: "Paris"},
				{QuestionID: "q1", Answer: "B"},
			},
		})
		assert.Empty(t, errs)
	})
}

func TestValidateAdminLogin(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateAdminLogin(&dto.AdminLoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret",
	}))

	errs := v.ValidateAdminLogin(&dto.AdminLoginRequest{})
	assert.Len(t, errs, 2)
}

func TestValidateCreateQuiz(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateCreateQuiz("World Capitals", []dto.QuestionPayload{
		{Type: "TEXT", Question: "Capital of Japan?", CorrectAnswer: "Tokyo"},
	}))

	errs := v.ValidateCreateQuiz("  ", nil)
	assert.Len(t, errs, 2)
}
