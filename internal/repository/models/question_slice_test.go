package models

import (
	"reflect"
	"testing"
)

func TestQuestionSlice_Value(t *testing.T) {
	tests := []struct {
		name    string
		s       QuestionSlice
		wantVal string
	}{
		{
			name:    "nil slice stores empty array",
			s:       nil,
			wantVal: "[]",
		},
		{
			name:    "empty slice",
			s:       QuestionSlice{},
			wantVal: "[]",
		},
		{
			name: "question without options omits the field",
			s: QuestionSlice{
				{ID: "q1", Type: "TEXT", Question: "Capital of France?", CorrectAnswer: "Paris"},
			},
			wantVal: `[{"id":"q1","type":"TEXT","question":"Capital of France?","correct_answer":"Paris"}]`,
		},
		{
			name: "MCQ keeps option order",
			s: QuestionSlice{
				{ID: "q1", Type: "MCQ", Question: "Pick B", Options: []string{"A", "B"}, CorrectAnswer: "B"},
			},
			wantVal: `[{"id":"q1","type":"MCQ","question":"Pick B","options":["A","B"],"correct_answer":"B"}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotVal, err := tt.s.Value()
			if err != nil {
				t.Fatalf("QuestionSlice.Value() error = %v", err)
			}
			if gotVal != tt.wantVal {
				t.Errorf("QuestionSlice.Value() = %v, want %v", gotVal, tt.wantVal)
			}
		})
	}
}

func TestQuestionSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    QuestionSlice
		wantErr bool
	}{
		{"nil becomes empty slice", nil, QuestionSlice{}, false},
		{"empty string becomes empty slice", "", QuestionSlice{}, false},
		{"literal null becomes empty slice", "null", QuestionSlice{}, false},
		{
			"string payload",
			`[{"id":"q1","type":"TRUE_FALSE","question":"Sky is blue?","correct_answer":"true"}]`,
			QuestionSlice{{ID: "q1", Type: "TRUE_FALSE", Question: "Sky is blue?", CorrectAnswer: "true"}},
			false,
		},
		{
			"byte payload",
			[]byte(`[{"id":"q2","type":"MCQ","question":"Pick","options":["A","B"],"correct_answer":"A"}]`),
			QuestionSlice{{ID: "q2", Type: "MCQ", Question: "Pick", Options: []string{"A", "B"}, CorrectAnswer: "A"}},
			false,
		},
		{"unsupported type", 42, nil, true},
		{"malformed json", "{not json", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s QuestionSlice
			err := s.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("QuestionSlice.Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(s, tt.want) {
				t.Errorf("QuestionSlice.Scan() = %v, want %v", s, tt.want)
			}
		})
	}
}

func TestAnswerSlice_RoundTrip(t *testing.T) {
	answers := AnswerSlice{
		{QuestionID: "q1", Answer: "B"},
		{QuestionID: "q1", Answer: "A"}, // duplicates are preserved as stored
		{QuestionID: "q3", Answer: "  paris "},
	}

	val, err := answers.Value()
	if err != nil {
		t.Fatalf("AnswerSlice.Value() error = %v", err)
	}

	var scanned AnswerSlice
	if err := scanned.Scan(val); err != nil {
		t.Fatalf("AnswerSlice.Scan() error = %v", err)
	}
	if !reflect.DeepEqual(scanned, answers) {
		t.Errorf("round trip = %v, want %v", scanned, answers)
	}
}

func TestAnswerSlice_ScanNil(t *testing.T) {
	var s AnswerSlice
	if err := s.Scan(nil); err != nil {
		t.Fatalf("AnswerSlice.Scan(nil) error = %v", err)
	}
	if len(s) != 0 {
		t.Errorf("AnswerSlice.Scan(nil) = %v, want empty", s)
	}
}
