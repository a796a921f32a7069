package dto

// StartSubmissionRequest binds one respondent to one quiz
// @Description Request body for starting a quiz submission
type StartSubmissionRequest struct {
	QuizID string `json:"quizId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// StartSubmissionResponse returns the submission id, which is the bearer
// capability for the later finish call.
type StartSubmissionResponse struct {
	SubmissionID string `json:"submissionId"`
	Message      string `json:"message"`
}

// SubmittedAnswerPayload is one (question id, answer) pair
type SubmittedAnswerPayload struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// FinishSubmissionRequest carries the complete answer set for a submission
// @Description Request body for finishing a quiz submission
type FinishSubmissionRequest struct {
	SubmissionID string                   `json:"submissionId"`
	Answers      []SubmittedAnswerPayload `json:"answers"`
}

// FinishSubmissionResponse is the score summary. TotalQuestions reflects the
// quiz's current question count, not the number of submitted answers.
type FinishSubmissionResponse struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Message        string `json:"message"`
}
