package take

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quizil/internal/question"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, key := range keys {
		next, _ := m.Update(keyMsg(key))
		typed, ok := next.(Model)
		if !ok {
			t.Fatalf("update returned %T", next)
		}
		m = typed
	}
	return m
}

// TestTakeMultipleChoiceFlow verifies cursor movement, submission, and
// grading for a multiple choice question.
func TestTakeMultipleChoiceFlow(t *testing.T) {
	q, err := question.NewMultipleChoice("2+2?", []string{"3", "4", "5"}, "4")
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	m := NewModel([]question.Question{q}, Options{NoColor: true})

	m = press(t, m, "down", "enter")
	if !m.Finished() {
		t.Fatalf("expected quiz to finish")
	}
	total := m.Total()
	if total.Earned != 1 || total.Possible != 1 {
		t.Fatalf("expected full score, got %+v", total)
	}
	responses := m.Questions()[0].Responses()
	if len(responses) != 1 {
		t.Fatalf("expected recorded response, got %d", len(responses))
	}
	if choice, _ := responses[0].Choice(); choice != "4" {
		t.Fatalf("expected choice 4, got %q", choice)
	}
}

// TestTakeDoesNotMutateInputQuestions verifies the model answers copies.
func TestTakeDoesNotMutateInputQuestions(t *testing.T) {
	q, err := question.NewMultipleChoice("2+2?", []string{"3", "4"}, "4")
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	m := NewModel([]question.Question{q}, Options{NoColor: true})
	press(t, m, "enter")
	if len(q.Responses()) != 0 {
		t.Fatalf("model leaked responses into caller questions")
	}
}

// TestTakeMatchingFlow verifies pairing, skipping, and per-pair grading.
func TestTakeMatchingFlow(t *testing.T) {
	q, err := question.NewMatching("Match each word to its opposite",
		[]string{"hot", "cold"}, []string{"cold", "hot"},
		question.OrderedMapping{question.Match("hot", "cold"), question.Match("cold", "hot")})
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	m := NewModel([]question.Question{q}, Options{NoColor: true})

	// Pair hot with cold, leave cold unmatched.
	m = press(t, m, "enter", "down", "down", "enter")
	if !m.Finished() {
		t.Fatalf("expected quiz to finish")
	}
	total := m.Total()
	if total.Earned != 1 || total.Possible != 2 {
		t.Fatalf("expected 1/2, got %+v", total)
	}
	responses := m.Questions()[0].Responses()
	if len(responses) != 1 {
		t.Fatalf("expected recorded response, got %d", len(responses))
	}
	mapping, ok := responses[0].AnswerMapping()
	if !ok {
		t.Fatalf("expected answer mapping payload")
	}
	if value, _ := mapping.Get("cold"); value != nil {
		t.Fatalf("expected cold unmatched, got %v", *value)
	}
}

// TestTakeMatchingWithoutPairs verifies a matching question with no left
// choices renders and completes instead of crashing.
func TestTakeMatchingWithoutPairs(t *testing.T) {
	q, err := question.NewMatching("Nothing to pair", nil, nil, question.OrderedMapping{})
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	m := NewModel([]question.Question{q}, Options{NoColor: true})
	if view := m.View(); !strings.Contains(view, "Nothing to match") {
		t.Fatalf("expected empty-matching view, got:\n%s", view)
	}
	m = press(t, m, "down", "enter")
	if !m.Finished() {
		t.Fatalf("expected quiz to finish")
	}
	responses := m.Questions()[0].Responses()
	if len(responses) != 1 {
		t.Fatalf("expected recorded response, got %d", len(responses))
	}
	mapping, ok := responses[0].AnswerMapping()
	if !ok || len(mapping) != 0 {
		t.Fatalf("expected an empty recorded mapping, got %v", mapping)
	}
	if total := m.Total(); total.Possible != 0 {
		t.Fatalf("expected nothing gradable, got %+v", total)
	}
}

// TestTakeTextFlow verifies typed answers are recorded and normalized for
// grading.
func TestTakeTextFlow(t *testing.T) {
	q, err := question.NewShortAnswer("Capital of France?", "Paris")
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	m := NewModel([]question.Question{q}, Options{NoColor: true})
	m = press(t, m, "p", "a", "r", "i", "s", "enter")
	if !m.Finished() {
		t.Fatalf("expected quiz to finish")
	}
	if total := m.Total(); total.Earned != 1 {
		t.Fatalf("case-insensitive grading failed: %+v", total)
	}
}

// TestTakeSummaryView verifies the summary lists the score.
func TestTakeSummaryView(t *testing.T) {
	q, err := question.NewMultipleChoice("2+2?", []string{"3", "4"}, "4")
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	m := NewModel([]question.Question{q}, Options{NoColor: true})
	m = press(t, m, "enter") // submits choice "3", incorrect
	view := m.View()
	if !strings.Contains(view, "Score: 0/1") {
		t.Fatalf("expected score line in summary:\n%s", view)
	}
}

// TestTakeEscAborts verifies esc quits an unfinished quiz.
func TestTakeEscAborts(t *testing.T) {
	q, err := question.NewMultipleChoice("2+2?", []string{"3", "4"}, "4")
	if err != nil {
		t.Fatalf("construct question: %v", err)
	}
	m := NewModel([]question.Question{q}, Options{NoColor: true})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	typed := next.(Model)
	if !typed.Aborted() {
		t.Fatalf("expected abort on esc")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
