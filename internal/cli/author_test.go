package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"quizil/internal/question"
	"quizil/internal/quiz"
)

// withAuthorInput swaps the author prompt source for a test.
func withAuthorInput(t *testing.T, script string) {
	t.Helper()
	previous := authorInput
	authorInput = strings.NewReader(script)
	t.Cleanup(func() { authorInput = previous })
}

// TestAuthorCommandMultipleChoice verifies a scripted authoring session
// produces a loadable quiz file.
func TestAuthorCommandMultipleChoice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	withAuthorInput(t, strings.Join([]string{
		"a",            // question type: multiple_choice
		"What is 2+2?", // prompt
		"3",
		"4",
		"finished",
		"4", // answer
		"n", // add another question?
	}, "\n")+"\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{"author", "--out", path, "--title", "Arithmetic"}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Wrote "+path) {
		t.Fatalf("expected write confirmation, got %q", out.String())
	}

	file, err := quiz.Load(path)
	if err != nil {
		t.Fatalf("load authored quiz: %v", err)
	}
	if file.Title != "Arithmetic" {
		t.Fatalf("expected title Arithmetic, got %q", file.Title)
	}
	if len(file.Questions) != 1 {
		t.Fatalf("expected one question, got %d", len(file.Questions))
	}
	mc, ok := file.Questions[0].(*question.MultipleChoice)
	if !ok {
		t.Fatalf("expected multiple choice, got %T", file.Questions[0])
	}
	if mc.Answer() != "4" {
		t.Fatalf("expected answer 4, got %q", mc.Answer())
	}
}

// TestAuthorCommandMatching verifies a scripted matching session preserves
// the entered answer order.
func TestAuthorCommandMatching(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	withAuthorInput(t, strings.Join([]string{
		"b",                               // question type: matching
		"Match each word to its opposite", // prompt
		"hot",
		"cold",
		"finished",
		"cold",
		"hot",
		"finished",
		"cold", // match for hot
		"hot",  // match for cold
		"n",    // add another question?
	}, "\n")+"\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{"author", "--out", path, "--title", "Opposites"}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errBuf.String())
	}

	file, err := quiz.Load(path)
	if err != nil {
		t.Fatalf("load authored quiz: %v", err)
	}
	matching, ok := file.Questions[0].(*question.Matching)
	if !ok {
		t.Fatalf("expected matching question, got %T", file.Questions[0])
	}
	answer := matching.Answer()
	if got := answer.Keys(); !equalStrings(got, []string{"hot", "cold"}) {
		t.Fatalf("expected answer keys in entry order, got %v", got)
	}
	value, found := answer.Get("hot")
	if !found || value == nil || *value != "cold" {
		t.Fatalf("expected hot matched to cold, got %v", value)
	}
	value, found = answer.Get("cold")
	if !found || value == nil || *value != "hot" {
		t.Fatalf("expected cold matched to hot, got %v", value)
	}
}

// TestAuthorCommandDiscardsInvalidQuestion verifies a broken entry is
// dropped and the session can end without writing a file.
func TestAuthorCommandDiscardsInvalidQuestion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	withAuthorInput(t, strings.Join([]string{
		"a",            // question type: multiple_choice
		"What is 2+2?", // prompt
		"finished",     // no choices entered
		"n",            // add another question? (default yes after discard)
	}, "\n")+"\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{"author", "--out", path, "--title", "Arithmetic"}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(out.String(), "Invalid question") {
		t.Fatalf("expected invalid question notice, got %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "no questions entered") {
		t.Fatalf("expected cancellation message, got %q", errBuf.String())
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
