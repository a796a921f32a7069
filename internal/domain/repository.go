package domain

import "context"

// QuizRepository defines the interface for quiz persistence
type QuizRepository interface {
	// GetQuizByID retrieves a quiz by its ID, including correct answers.
	// It returns (nil, nil) when no quiz exists with that ID.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// GetPublishedQuizzes returns all quizzes with the published flag set
	GetPublishedQuizzes(ctx context.Context) ([]*Quiz, error)

	// GetAllQuizzes returns every quiz, published or not
	GetAllQuizzes(ctx context.Context) ([]*Quiz, error)

	// SaveQuiz persists a new quiz and assigns its ID
	SaveQuiz(ctx context.Context, quiz *Quiz) error

	// UpdateQuiz updates an existing quiz
	UpdateQuiz(ctx context.Context, quiz *Quiz) error

	// DeleteQuiz removes a quiz by ID. Deleting a missing quiz is an error.
	DeleteQuiz(ctx context.Context, id string) error

	// SetPublished toggles the published flag on a quiz
	SetPublished(ctx context.Context, id string, published bool) error
}

// SubmissionRepository defines the interface for submission persistence
type SubmissionRepository interface {
	// GetSubmissionByID retrieves a submission by its ID.
	// It returns (nil, nil) when no submission exists with that ID.
	GetSubmissionByID(ctx context.Context, id string) (*Submission, error)

	// SaveSubmission persists a new submission and assigns its ID
	SaveSubmission(ctx context.Context, submission *Submission) error

	// FinishSubmission writes answers, score and the finished status for the
	// submission in a single update, guarded on the submission still being
	// in the started state. It returns the number of rows updated so the
	// caller can detect a lost race.
	FinishSubmission(ctx context.Context, submission *Submission) (int64, error)
}
