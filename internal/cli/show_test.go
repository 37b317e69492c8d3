package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestShowCommandQuizMode verifies answers stay hidden by default.
func TestShowCommandQuizMode(t *testing.T) {
	path := writeQuizFixture(t, "quiz.yaml")

	var out, errBuf bytes.Buffer
	code := Run([]string{"show", "--no-color", path}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errBuf.String())
	}
	text := out.String()
	if !strings.Contains(text, "Arithmetic") {
		t.Fatalf("expected title, got %q", text)
	}
	if !strings.Contains(text, "1. What is 2+2?") {
		t.Fatalf("expected numbered prompt, got %q", text)
	}
	if !strings.Contains(text, "b. 4") {
		t.Fatalf("expected lettered choices, got %q", text)
	}
	if strings.Contains(text, "Answer:") {
		t.Fatalf("answer leaked into quiz mode: %q", text)
	}
}

// TestShowCommandAnswerKey verifies --answers reveals stored answers.
func TestShowCommandAnswerKey(t *testing.T) {
	path := writeQuizFixture(t, "quiz.yaml")

	var out, errBuf bytes.Buffer
	code := Run([]string{"show", "--answers", "--no-color", path}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Answer: 4") {
		t.Fatalf("expected answer line, got %q", out.String())
	}
}

// TestShowCommandMissingFile verifies load errors surface on stderr.
func TestShowCommandMissingFile(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"show", "no-such-quiz.yaml"}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errBuf.String(), "load quiz") {
		t.Fatalf("expected load error, got %q", errBuf.String())
	}
}
