package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	KindNoJSONFound              ErrorKind = "NoJsonFound"
	KindMalformedJSON            ErrorKind = "MalformedJson"
	KindNotAnArray               ErrorKind = "NotAnArray"
	KindWrongQuestionCount       ErrorKind = "WrongQuestionCount"
	KindInvalidQuestionStructure ErrorKind = "InvalidQuestionStructure"
	KindInvalidOptionStructure   ErrorKind = "InvalidOptionStructure"
	KindInvalidSourceStructure   ErrorKind = "InvalidSourceStructure"
)

// ParseError reports why a model response was rejected. Question is
// 1-indexed and only set for the per-question kinds; Count only for
// KindWrongQuestionCount.
type ParseError struct {
	Kind     ErrorKind
	Question int
	Count    int
	Err      error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindNoJSONFound:
		return "invalid response format from AI - no JSON array found"
	case KindMalformedJSON:
		return fmt.Sprintf("malformed JSON in AI response: %v", e.Err)
	case KindNotAnArray:
		return "response is not an array"
	case KindWrongQuestionCount:
		return fmt.Sprintf("expected %d questions, but got %d", QuestionCount, e.Count)
	case KindInvalidQuestionStructure:
		return fmt.Sprintf("question %d is missing required fields", e.Question)
	case KindInvalidOptionStructure:
		return fmt.Sprintf("question %d has invalid option structure", e.Question)
	case KindInvalidSourceStructure:
		return fmt.Sprintf("question %d has invalid source structure", e.Question)
	default:
		return "invalid AI response"
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseResponse extracts the widest [...] span from raw, decodes it and
// checks the shape of every question. The questions come back exactly as
// emitted.
func ParseResponse(raw string) (QuestionSet, error) {
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start < 0 || end < start {
		return nil, &ParseError{Kind: KindNoJSONFound}
	}
	span := []byte(raw[start : end+1])

	var decoded any
	if err := json.Unmarshal(span, &decoded); err != nil {
		return nil, &ParseError{Kind: KindMalformedJSON, Err: err}
	}

	items, ok := decoded.([]any)
	if !ok {
		return nil, &ParseError{Kind: KindNotAnArray}
	}
	if len(items) != QuestionCount {
		return nil, &ParseError{Kind: KindWrongQuestionCount, Count: len(items)}
	}

	for i, item := range items {
		if kind, ok := checkQuestion(item); !ok {
			return nil, &ParseError{Kind: kind, Question: i + 1}
		}
	}

	var set QuestionSet
	if err := json.Unmarshal(span, &set); err != nil {
		return nil, &ParseError{Kind: KindMalformedJSON, Err: err}
	}
	return set, nil
}

func checkQuestion(q any) (ErrorKind, bool) {
	options, optionsOK := field(q, "options").([]any)
	sources, sourcesOK := field(q, "sources").([]any)

	if !truthy(field(q, "question")) ||
		!optionsOK || len(options) != OptionsPerQuestion ||
		!truthy(field(q, "correctAnswer")) ||
		!truthy(field(q, "explanation")) ||
		!sourcesOK || len(sources) == 0 {
		return KindInvalidQuestionStructure, false
	}

	for _, opt := range options {
		if !truthy(field(opt, "label")) || !truthy(field(opt, "text")) {
			return KindInvalidOptionStructure, false
		}
	}
	for _, src := range sources {
		if !truthy(field(src, "title")) || !truthy(field(src, "url")) {
			return KindInvalidSourceStructure, false
		}
	}
	return "", true
}

// field returns nil for anything that is not an object.
func field(v any, key string) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return obj[key]
}

// truthy: null, false, 0 and "" are false. Everything else, including empty
// objects and arrays, is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
