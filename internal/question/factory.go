package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// New reconstructs a question from a representation: an existing Question
// (deep-copied), a plain mapping, or JSON text. The `type` discriminator
// selects the variant; `type` and `kind` tags are consumed before the
// remaining fields reach the variant constructor. The input is never
// mutated and the result never aliases it.
//
// Any other input type fails with ErrBadRepresentation; a missing
// discriminator fails with ErrMissingType; an unknown discriminator fails
// with *UnsupportedTypeError.
func New(representation any) (Question, error) {
	switch value := representation.(type) {
	case Question:
		return value.Clone(), nil
	case map[string]any:
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode question representation: %w", err)
		}
		return fromJSON(data)
	case json.RawMessage:
		return fromJSON(value)
	case []byte:
		return fromJSON(value)
	case string:
		return fromJSON([]byte(value))
	default:
		return nil, ErrBadRepresentation
	}
}

// multipleChoicePayload is the serialized multiple choice shape.
type multipleChoicePayload struct {
	Kind      string            `json:"kind,omitempty"`
	Type      string            `json:"type"`
	ObjectID  string            `json:"object_id,omitempty"`
	Prompt    string            `json:"prompt"`
	Choices   []string          `json:"choices"`
	Answer    string            `json:"answer"`
	Responses []json.RawMessage `json:"responses,omitempty"`
}

// matchingPayload is the serialized matching shape.
type matchingPayload struct {
	Kind         string            `json:"kind,omitempty"`
	Type         string            `json:"type"`
	ObjectID     string            `json:"object_id,omitempty"`
	Prompt       string            `json:"prompt"`
	LeftChoices  []string          `json:"left_choices"`
	RightChoices []string          `json:"right_choices"`
	Answer       OrderedMapping    `json:"answer"`
	Responses    []json.RawMessage `json:"responses,omitempty"`
}

// shortAnswerPayload is the serialized short answer shape.
type shortAnswerPayload struct {
	Kind      string            `json:"kind,omitempty"`
	Type      string            `json:"type"`
	ObjectID  string            `json:"object_id,omitempty"`
	Prompt    string            `json:"prompt"`
	Answer    string            `json:"answer"`
	Responses []json.RawMessage `json:"responses,omitempty"`
}

// fillInTheBlankPayload is the serialized fill in the blank shape.
type fillInTheBlankPayload struct {
	Kind         string            `json:"kind,omitempty"`
	Type         string            `json:"type"`
	ObjectID     string            `json:"object_id,omitempty"`
	BeforePrompt string            `json:"before_prompt"`
	AfterPrompt  string            `json:"after_prompt"`
	Answer       string            `json:"answer"`
	Responses    []json.RawMessage `json:"responses,omitempty"`
}

// fromJSON dispatches a serialized question to its variant constructor.
func fromJSON(data []byte) (Question, error) {
	var head struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse question: %w", err)
	}
	if head.Type == nil || *head.Type == "" {
		return nil, ErrMissingType
	}
	kind, err := ParseKind(*head.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindMultipleChoice:
		var payload multipleChoicePayload
		if err := decodeStrictJSON(data, &payload); err != nil {
			return nil, err
		}
		return NewMultipleChoice(payload.Prompt, payload.Choices, payload.Answer,
			constructionOptions(payload.ObjectID, payload.Responses)...)
	case KindMatching:
		var payload matchingPayload
		if err := decodeStrictJSON(data, &payload); err != nil {
			return nil, err
		}
		return NewMatching(payload.Prompt, payload.LeftChoices, payload.RightChoices, payload.Answer,
			constructionOptions(payload.ObjectID, payload.Responses)...)
	case KindShortAnswer:
		var payload shortAnswerPayload
		if err := decodeStrictJSON(data, &payload); err != nil {
			return nil, err
		}
		return NewShortAnswer(payload.Prompt, payload.Answer,
			constructionOptions(payload.ObjectID, payload.Responses)...)
	case KindFillInTheBlank:
		var payload fillInTheBlankPayload
		if err := decodeStrictJSON(data, &payload); err != nil {
			return nil, err
		}
		return NewFillInTheBlank(payload.BeforePrompt, payload.AfterPrompt, payload.Answer,
			constructionOptions(payload.ObjectID, payload.Responses)...)
	default:
		return nil, &UnsupportedTypeError{Type: kind.String()}
	}
}

// constructionOptions converts serialized id and responses into options.
func constructionOptions(objectID string, responses []json.RawMessage) []Option {
	opts := make([]Option, 0, 2)
	if objectID != "" {
		opts = append(opts, WithID(objectID))
	}
	if len(responses) > 0 {
		items := make([]any, 0, len(responses))
		for _, raw := range responses {
			items = append(items, raw)
		}
		opts = append(opts, WithResponses(items...))
	}
	return opts
}

// decodeStrictJSON decodes a single JSON document rejecting unknown fields.
func decodeStrictJSON(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("parse question: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("parse question: trailing content")
	}
	return nil
}
