// Package take implements the interactive quiz-taking UI. The model walks
// the questions one at a time, records each submission through the core
// AddResponse path, and finishes with a graded summary.
package take

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quizil/internal/question"
)

// Options configures the take UI model.
type Options struct {
	Title   string
	NoColor bool
}

// Model renders the quiz-taking UI using Bubble Tea.
type Model struct {
	title     string
	questions []question.Question
	results   []Result
	index     int
	cursor    int
	leftIndex int
	pairs     question.OrderedMapping
	input     textinput.Model
	finished  bool
	aborted   bool
	noColor   bool
}

// NewModel constructs a take UI model over deep copies of the questions, so
// recorded responses never leak into the caller's quiz.
func NewModel(questions []question.Question, opts Options) Model {
	copies := make([]question.Question, 0, len(questions))
	for _, q := range questions {
		copies = append(copies, q.Clone())
	}
	input := textinput.New()
	input.Placeholder = "your answer"
	input.Focus()
	return Model{
		title:     opts.Title,
		questions: copies,
		noColor:   opts.NoColor,
		input:     input,
	}
}

// Init sets up input blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update consumes key input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "esc":
		if m.finished || !m.textEntryActive() {
			m.aborted = !m.finished
			return m, tea.Quit
		}
	}

	if m.finished {
		if key.String() == "enter" || key.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	return applyKey(m, key)
}

// Questions returns the model's question copies with recorded responses.
func (m Model) Questions() []question.Question {
	return m.questions
}

// Results returns per-question grading, populated as questions complete.
func (m Model) Results() []Result {
	return m.results
}

// Finished reports whether every question was answered.
func (m Model) Finished() bool {
	return m.finished
}

// Aborted reports whether the user quit before finishing.
func (m Model) Aborted() bool {
	return m.aborted
}

// Total sums the per-question results.
func (m Model) Total() Result {
	var total Result
	for _, result := range m.results {
		total.Earned += result.Earned
		total.Possible += result.Possible
	}
	return total
}

// current returns the question being answered.
func (m Model) current() question.Question {
	return m.questions[m.index]
}

// textEntryActive reports whether key input feeds the text field.
func (m Model) textEntryActive() bool {
	if m.finished || m.index >= len(m.questions) {
		return false
	}
	switch m.current().(type) {
	case *question.ShortAnswer, *question.FillInTheBlank:
		return true
	default:
		return false
	}
}
