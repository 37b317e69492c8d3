package quiz

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a quiz document.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more document-level validation issues.
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
	return fmt.Sprintf("quiz validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// ValidateFile checks document-level invariants. Per-question invariants are
// already enforced by the core constructors during parsing.
func ValidateFile(file *File) error {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != CurrentVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	if len(file.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]int{}
	for i, q := range file.Questions {
		if first, exists := seenIDs[q.ID()]; exists {
			collector.add(fmt.Sprintf("questions[%d].object_id", i),
				fmt.Sprintf("duplicate id %q (first used by questions[%d])", q.ID(), first))
			continue
		}
		seenIDs[q.ID()] = i
	}
	return collector.result()
}
