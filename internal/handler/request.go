package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// NumericField is an integer that may arrive as a JSON number or a numeric
// JSON string ("3"). null leaves it at zero.
type NumericField int

// UnmarshalJSON implements json.Unmarshaler
func (n *NumericField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("expected integer, got %q", s)
		}
		*n = NumericField(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	*n = NumericField(v)
	return nil
}

// QuestionsRequest is the body of POST /questions. A non-empty SearchTerm
// selects a search; otherwise the remaining fields describe a new question.
type QuestionsRequest struct {
	SearchTerm string       `json:"searchTerm"`
	Question   string       `json:"question" validate:"required"`
	Answer     string       `json:"answer" validate:"required"`
	Category   NumericField `json:"category" validate:"required,gt=0"`
	Difficulty NumericField `json:"difficulty" validate:"required,min=1,max=5"`
}

// QuizCategory identifies the category a quiz draws from; ID 0 means all.
type QuizCategory struct {
	ID   NumericField `json:"id"`
	Type string       `json:"type"`
}

// QuizRequest is the body of POST /quizzes. Both fields must be present.
type QuizRequest struct {
	PreviousQuestions *[]int        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}
