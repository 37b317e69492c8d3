package render

import (
	"strings"
	"testing"

	"quizil/internal/question"
)

// TestRenderMultipleChoiceQuizMode verifies letter labels and hidden
// answers.
func TestRenderMultipleChoiceQuizMode(t *testing.T) {
	q, err := question.NewMultipleChoice("2+2?", []string{"3", "4", "5"}, "4")
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	out := Render(q, Options{Mode: ModeQuiz, NoColor: true})
	for _, expected := range []string{"2+2?", "a. 3", "b. 4", "c. 5"} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in output:\n%s", expected, out)
		}
	}
	if strings.Contains(out, "Answer:") {
		t.Fatalf("quiz mode must hide the answer:\n%s", out)
	}
}

// TestRenderMultipleChoiceAnswerKey verifies the answer line.
func TestRenderMultipleChoiceAnswerKey(t *testing.T) {
	q, err := question.NewMultipleChoice("2+2?", []string{"3", "4"}, "4")
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	out := Render(q, Options{Mode: ModeAnswerKey, NoColor: true})
	if !strings.Contains(out, "Answer: 4") {
		t.Fatalf("expected answer line:\n%s", out)
	}
}

// TestRenderMatchingColumns verifies numbered and lettered columns.
func TestRenderMatchingColumns(t *testing.T) {
	q, err := question.NewMatching("Match",
		[]string{"alpha", "beta"}, []string{"one", "two"},
		question.OrderedMapping{})
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	out := Render(q, Options{Mode: ModeQuiz, NoColor: true})
	for _, expected := range []string{"1. alpha", "2. beta", "a. one", "b. two"} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected %q in output:\n%s", expected, out)
		}
	}
}

// TestRenderFillInTheBlank verifies the gap is blanked or filled by mode.
func TestRenderFillInTheBlank(t *testing.T) {
	q, err := question.NewFillInTheBlank("The capital of France is ", ".", "Paris")
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	quiz := Render(q, Options{Mode: ModeQuiz, NoColor: true})
	if !strings.Contains(quiz, "________") || strings.Contains(quiz, "Paris") {
		t.Fatalf("quiz mode must blank the gap:\n%s", quiz)
	}
	key := Render(q, Options{Mode: ModeAnswerKey, NoColor: true})
	if !strings.Contains(key, "The capital of France is Paris.") {
		t.Fatalf("answer key must fill the gap:\n%s", key)
	}
}

// TestLetterFallsBackPastZ verifies labels beyond the alphabet.
func TestLetterFallsBackPastZ(t *testing.T) {
	if got := Letter(0); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := Letter(26); got != "27" {
		t.Fatalf("expected numeric fallback, got %q", got)
	}
}
