package question

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingType indicates a serialized question or response without a type
// discriminator.
var ErrMissingType = errors.New("serialized representation is missing a type discriminator")

// ErrBadRepresentation indicates factory input that is neither an instance,
// a mapping, nor JSON text.
var ErrBadRepresentation = errors.New("representation must be an instance, a mapping, or JSON text")

// Issue captures a single structural problem found during validation.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more structural invariant violations.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

// invalidf builds a single-issue validation error.
func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Issues: []Issue{{Field: field, Message: fmt.Sprintf(format, args...)}}}
}

// UnsupportedTypeError reports a type discriminator outside the known
// variant set.
type UnsupportedTypeError struct {
	Type string
}

// Error returns a readable message naming the unsupported discriminator.
func (err *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported question type %q", err.Type)
}

// TypeMismatchError reports a response attached to a question of a
// different type.
type TypeMismatchError struct {
	QuestionType Kind
	ResponseType Kind
}

// Error returns a readable message naming both type tags.
func (err *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid response type %q for a question of type %q", err.ResponseType, err.QuestionType)
}
