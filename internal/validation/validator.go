package validation

import (
	"strings"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStartSubmission validates the start submission request body.
// Respondent semantics (gender enum, optional age) are checked by the
// domain layer; this only rejects requests missing required fields.
func (v *Validator) ValidateStartSubmission(req *dto.StartSubmissionRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.QuizID) == "" {
		errs = append(errs, domain.NewMissingFieldError("quizId"))
	}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.NewMissingFieldError("name"))
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	}

	return errs
}

// ValidateFinishSubmission validates the finish submission request body.
// An empty answers array is a legitimate finish; a missing one is not.
func (v *Validator) ValidateFinishSubmission(req *dto.FinishSubmissionRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.SubmissionID) == "" {
		errs = append(errs, domain.NewMissingFieldError("submissionId"))
	}
	if req.Answers == nil {
		errs = append(errs, domain.NewMissingFieldError("answers"))
	}

	return errs
}

// ValidateAdminLogin validates the admin login request body
func (v *Validator) ValidateAdminLogin(req *dto.AdminLoginRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	}
	if strings.TrimSpace(req.Password) == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}

	return errs
}

// ValidateCreateQuiz validates the shape of a create or update quiz body.
// Question-level rules (types, option sets) live in the domain layer.
func (v *Validator) ValidateCreateQuiz(title string, questions []dto.QuestionPayload) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errs = append(errs, domain.NewMissingFieldError("title"))
	}
	if len(questions) == 0 {
		errs = append(errs, domain.NewMissingFieldError("questions"))
	}

	return errs
}
