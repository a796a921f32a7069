package domain

import (
	"strings"
	"time"
)

// SubmissionStatus models the attempt lifecycle explicitly instead of
// inferring it from whether answers is empty; a respondent may legitimately
// finish with an empty answer set.
type SubmissionStatus string

const (
	SubmissionStarted  SubmissionStatus = "started"
	SubmissionFinished SubmissionStatus = "finished"
)

// Gender is the closed enumeration for the optional respondent gender field
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOthers Gender = "Others"
)

// IsValid reports whether g is one of the known genders
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOthers:
		return true
	}
	return false
}

// Respondent identifies the anonymous person taking a quiz. Name and email
// are self-reported; age and gender are optional.
type Respondent struct {
	Name   string
	Email  string
	Age    int
	Gender Gender
}

// Validate validates the respondent
func (r *Respondent) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewInvalidInputError("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return NewInvalidInputError("email is required")
	}
	if r.Gender != "" && !r.Gender.IsValid() {
		return NewInvalidInputError("gender must be one of Male, Female, Others")
	}
	return nil
}

// SubmittedAnswer is one (question id, answer text) pair from a respondent
type SubmittedAnswer struct {
	QuestionID string
	Answer     string
}

// Submission is one respondent's attempt at one quiz. Its ID is the sole
// capability the client holds to finish the attempt; there is no further
// authentication.
type Submission struct {
	ID         string
	QuizID     string
	Respondent Respondent
	Answers    []SubmittedAnswer
	Score      int
	Status     SubmissionStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSubmission creates a started Submission bound to quizID
func NewSubmission(quizID string, respondent Respondent) *Submission {
	now := time.Now()
	return &Submission{
		QuizID:     quizID,
		Respondent: respondent,
		Answers:    []SubmittedAnswer{},
		Score:      0,
		Status:     SubmissionStarted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsFinished reports whether the submission reached its terminal state
func (s *Submission) IsFinished() bool {
	return s.Status == SubmissionFinished
}

// Finish records the submitted answer set and its score and moves the
// submission to the terminal state. Answers are stored as given, unfiltered.
func (s *Submission) Finish(answers []SubmittedAnswer, score int) {
	s.Answers = answers
	s.Score = score
	s.Status = SubmissionFinished
	s.UpdatedAt = time.Now()
}
