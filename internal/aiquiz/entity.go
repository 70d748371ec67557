package aiquiz

import (
	"encoding/json"
	"fmt"

	util "github.com/saulo-duarte/quizgen/internal/utils"
)

// QuestionCount is the fixed size of every generated QuestionSet.
const QuestionCount = 5

// OptionsPerQuestion is the number of answer options each question carries.
const OptionsPerQuestion = 4

// The typed view uses util.JSONText because the validator only requires
// fields to be truthy: a set with "correctAnswer": 1 is valid and must
// still decode.
type QuestionOption struct {
	Label util.JSONText `json:"label"`
	Text  util.JSONText `json:"text"`
}

type SourceCitation struct {
	Title util.JSONText `json:"title"`
	URL   util.JSONText `json:"url"`
}

type QuizQuestion struct {
	Question      util.JSONText    `json:"question"`
	Options       []QuestionOption `json:"options"`
	CorrectAnswer util.JSONText    `json:"correctAnswer"`
	Explanation   util.JSONText    `json:"explanation"`
	Sources       []SourceCitation `json:"sources"`
}

// QuestionSet holds the validated questions exactly as the model emitted
// them. Each element is kept raw so unknown fields survive.
type QuestionSet []json.RawMessage

// Questions decodes the set into typed questions for rendering.
func (s QuestionSet) Questions() ([]QuizQuestion, error) {
	out := make([]QuizQuestion, len(s))
	for i, raw := range s {
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			return nil, fmt.Errorf("decode question %d: %w", i+1, err)
		}
	}
	return out, nil
}

type GenerateRequest struct {
	Topic string `json:"topic"`
}

type GenerateResponse struct {
	Success   bool        `json:"success"`
	Questions QuestionSet `json:"questions"`
}
