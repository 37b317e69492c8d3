package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Response is one submitted answer to a question of a matching type. It
// carries a type tag and a variant-specific payload; the owning question,
// not the response, decides whether a payload is acceptable.
type Response struct {
	id      string
	kind    Kind
	choice  *string
	answer  *string
	mapping OrderedMapping
	matched bool
}

// NewChoiceResponse builds a multiple choice response carrying a choice.
func NewChoiceResponse(choice string) *Response {
	return &Response{id: uuid.NewString(), kind: KindMultipleChoice, choice: &choice}
}

// NewMatchingResponse builds a matching response carrying an answer
// mapping.
func NewMatchingResponse(mapping OrderedMapping) *Response {
	return &Response{id: uuid.NewString(), kind: KindMatching, mapping: mapping.Clone(), matched: true}
}

// NewTextResponse builds a free-text response for the short answer or fill
// in the blank variants.
func NewTextResponse(kind Kind, answer string) *Response {
	return &Response{id: uuid.NewString(), kind: kind, answer: &answer}
}

// responsePayload is the serialized response shape.
type responsePayload struct {
	Kind          string          `json:"kind,omitempty"`
	Type          string          `json:"type"`
	ObjectID      string          `json:"object_id,omitempty"`
	Choice        *string         `json:"choice,omitempty"`
	Answer        *string         `json:"answer,omitempty"`
	AnswerMapping *OrderedMapping `json:"answer_mapping,omitempty"`
}

// NewResponse reconstructs a response from a representation: an existing
// *Response (deep-copied), a plain mapping, or JSON text. The input is
// never mutated.
func NewResponse(representation any) (*Response, error) {
	switch value := representation.(type) {
	case *Response:
		return value.Clone(), nil
	case map[string]any:
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode response representation: %w", err)
		}
		return responseFromJSON(data)
	case json.RawMessage:
		return responseFromJSON(value)
	case []byte:
		return responseFromJSON(value)
	case string:
		return responseFromJSON([]byte(value))
	default:
		return nil, ErrBadRepresentation
	}
}

// responseFromJSON decodes a single strict JSON document into a response.
func responseFromJSON(data []byte) (*Response, error) {
	var payload responsePayload
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("parse response: trailing content")
	}
	if payload.Type == "" {
		return nil, ErrMissingType
	}
	kind, err := ParseKind(payload.Type)
	if err != nil {
		return nil, err
	}
	id := payload.ObjectID
	if id == "" {
		id = uuid.NewString()
	}
	response := &Response{id: id, kind: kind, choice: payload.Choice, answer: payload.Answer}
	if payload.AnswerMapping != nil {
		response.mapping = payload.AnswerMapping.Clone()
		response.matched = true
	}
	return response, nil
}

// ID returns the opaque unique identifier.
func (r *Response) ID() string {
	return r.id
}

// Type returns the semantic type tag.
func (r *Response) Type() Kind {
	return r.kind
}

// Choice returns the selected choice when present.
func (r *Response) Choice() (string, bool) {
	if r.choice == nil {
		return "", false
	}
	return *r.choice, true
}

// Answer returns the free-text answer when present.
func (r *Response) Answer() (string, bool) {
	if r.answer == nil {
		return "", false
	}
	return *r.answer, true
}

// AnswerMapping returns a copy of the answer mapping when present.
func (r *Response) AnswerMapping() (OrderedMapping, bool) {
	if !r.matched {
		return nil, false
	}
	return r.mapping.Clone(), true
}

// JSONData returns the serialized form as a fresh plain mapping.
func (r *Response) JSONData() map[string]any {
	data := map[string]any{
		"kind":      "response",
		"type":      r.kind.String(),
		"object_id": r.id,
	}
	if r.choice != nil {
		data["choice"] = *r.choice
	}
	if r.answer != nil {
		data["answer"] = *r.answer
	}
	if r.matched {
		data["answer_mapping"] = r.mapping.Clone()
	}
	return data
}

// Clone returns a deep copy.
func (r *Response) Clone() *Response {
	clone := &Response{id: r.id, kind: r.kind, matched: r.matched, mapping: r.mapping.Clone()}
	if r.choice != nil {
		choice := *r.choice
		clone.choice = &choice
	}
	if r.answer != nil {
		answer := *r.answer
		clone.answer = &answer
	}
	return clone
}

// Equal reports structural equality with another response.
func (r *Response) Equal(other *Response) bool {
	if other == nil {
		return false
	}
	if r.id != other.id || r.kind != other.kind || r.matched != other.matched {
		return false
	}
	if (r.choice == nil) != (other.choice == nil) || (r.choice != nil && *r.choice != *other.choice) {
		return false
	}
	if (r.answer == nil) != (other.answer == nil) || (r.answer != nil && *r.answer != *other.answer) {
		return false
	}
	return r.mapping.Equal(other.mapping)
}

// MarshalJSON writes the serialized mapping form.
func (r *Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.JSONData())
}

// MarshalYAML writes the serialized mapping form.
func (r *Response) MarshalYAML() (any, error) {
	return r.JSONData(), nil
}
