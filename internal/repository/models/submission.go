package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SubmittedAnswer is the JSON shape stored inside the submissions.answers CLOB
type SubmittedAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// AnswerSlice is a custom type for storing an answer list as a JSON CLOB
type AnswerSlice []SubmittedAnswer

// Value implements the driver.Valuer interface
func (s AnswerSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *AnswerSlice) Scan(value interface{}) error {
	if value == nil {
		*s = AnswerSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("AnswerSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = AnswerSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// Submission is the submissions table row. Respondent fields are flattened
// into columns; the answer list is an embedded JSON document.
type Submission struct {
	ID        string         `db:"id"`
	QuizID    string         `db:"quiz_id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Age       sql.NullInt64  `db:"age"`
	Gender    sql.NullString `db:"gender"`
	Answers   AnswerSlice    `db:"answers"`
	Score     int            `db:"score"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
