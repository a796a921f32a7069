package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Question is the JSON shape stored inside the quizzes.questions CLOB.
// Questions are embedded documents, not rows of their own.
type Question struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
}

// QuestionSlice is a custom type for storing a question list as a JSON CLOB
type QuestionSlice []Question

// Value implements the driver.Valuer interface
func (s QuestionSlice) Value() (driver.Value, error) {
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
func (s *QuestionSlice) Scan(value interface{}) error {
	if value == nil {
		*s = QuestionSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("QuestionSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = QuestionSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// Quiz is the quizzes table row
type Quiz struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Published   int            `db:"published"` // NUMBER(1), 0 or 1
	Questions   QuestionSlice  `db:"questions"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
