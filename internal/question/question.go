// Package question implements the quiz core: a closed set of question
// variants (multiple choice, matching, short answer, fill in the blank),
// the responses attached to them, variant-specific validation, and a
// serialization contract built on plain nested mappings.
package question

import (
	"github.com/google/uuid"
)

// Question is one quiz item of a concrete variant. The variant set is
// closed: only the four types in this package implement the interface.
//
// A question exclusively owns its responses; AddResponse is the sole
// mutation path and every other field is fixed at construction. Concurrent
// mutation of the same question must be serialized by the caller.
type Question interface {
	// ID returns the opaque unique identifier assigned at construction.
	ID() string
	// Type returns the immutable variant tag.
	Type() Kind
	// Responses returns the attached responses in append order.
	Responses() []*Response
	// AddResponse validates and appends a response. A response of a
	// different type fails with *TypeMismatchError; a response rejected by
	// the variant fails with *ValidationError. Failure leaves the response
	// sequence unchanged.
	AddResponse(response *Response) error
	// ValidateResponse applies the variant-specific response checks without
	// attaching anything.
	ValidateResponse(response *Response) error
	// JSONData returns the serialized form as a fresh plain mapping. The
	// result never aliases internal state.
	JSONData() map[string]any
	// Clone returns a deep copy.
	Clone() Question
	// Equal reports structural equality: same variant, identical
	// field-by-field state including responses.
	Equal(other Question) bool

	sealed()
}

// Option adjusts question construction.
type Option func(*construction)

type construction struct {
	id        string
	responses []any
}

// WithID supplies a pre-existing identifier instead of generating one.
func WithID(id string) Option {
	return func(c *construction) {
		c.id = id
	}
}

// WithResponses attaches responses during construction. Each item may be an
// already-built *Response or a raw serialized mapping; every item passes
// through AddResponse so it is validated against the constructed question.
func WithResponses(responses ...any) Option {
	return func(c *construction) {
		c.responses = append(c.responses, responses...)
	}
}

func applyOptions(opts []Option) construction {
	var c construction
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// base carries the state shared by every variant.
type base struct {
	id        string
	kind      Kind
	responses []*Response
}

func newBase(kind Kind, c construction) base {
	id := c.id
	if id == "" {
		id = uuid.NewString()
	}
	return base{id: id, kind: kind}
}

// ID returns the opaque unique identifier.
func (b *base) ID() string {
	return b.id
}

// Type returns the immutable variant tag.
func (b *base) Type() Kind {
	return b.kind
}

// Responses returns a copy of the response sequence in append order.
func (b *base) Responses() []*Response {
	out := make([]*Response, len(b.responses))
	copy(out, b.responses)
	return out
}

// addResponse runs the shared attachment path: type tag check, variant
// validation, then append. On any failure nothing is appended.
func (b *base) addResponse(q Question, response *Response) error {
	if response == nil {
		return invalidf("response", "is required")
	}
	if response.Type() != b.kind {
		return &TypeMismatchError{QuestionType: b.kind, ResponseType: response.Type()}
	}
	if err := q.ValidateResponse(response); err != nil {
		return err
	}
	b.responses = append(b.responses, response)
	return nil
}

// attachResponses converts raw construction responses and attaches each via
// the question's AddResponse.
func attachResponses(q Question, items []any) error {
	for _, item := range items {
		response, err := NewResponse(item)
		if err != nil {
			return err
		}
		if err := q.AddResponse(response); err != nil {
			return err
		}
	}
	return nil
}

// responsesJSON serializes the response sequence.
func (b *base) responsesJSON() []any {
	out := make([]any, 0, len(b.responses))
	for _, response := range b.responses {
		out = append(out, response.JSONData())
	}
	return out
}

// cloneResponses deep-copies the response sequence.
func (b *base) cloneResponses() []*Response {
	out := make([]*Response, 0, len(b.responses))
	for _, response := range b.responses {
		out = append(out, response.Clone())
	}
	return out
}

// equalBase compares identifier, variant tag, and responses pairwise.
func (b *base) equalBase(other *base) bool {
	if b.id != other.id || b.kind != other.kind || len(b.responses) != len(other.responses) {
		return false
	}
	for i, response := range b.responses {
		if !response.Equal(other.responses[i]) {
			return false
		}
	}
	return true
}

// dedupeStrings removes duplicates preserving first-occurrence order. The
// ordering is part of the contract, not an artifact of the container.
func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

// containsString reports membership in a string slice.
func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
