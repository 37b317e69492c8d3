package take

import (
	tea "github.com/charmbracelet/bubbletea"

	"quizil/internal/question"
)

// applyKey advances the model for one key press on an unfinished quiz.
func applyKey(m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	switch typed := m.current().(type) {
	case *question.MultipleChoice:
		return applyChoiceKey(m, key, len(typed.Choices()))
	case *question.Matching:
		return applyMatchingKey(m, key, typed)
	default:
		return applyTextKey(m, key)
	}
}

// applyChoiceKey moves the cursor over choices and submits on enter.
func applyChoiceKey(m Model, key tea.KeyMsg, choices int) (Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < choices-1 {
			m.cursor++
		}
	case "enter":
		q := m.current().(*question.MultipleChoice)
		return submit(m, question.NewChoiceResponse(q.Choices()[m.cursor]))
	}
	return m, nil
}

// applyMatchingKey pairs the current left choice with a right choice, or
// skips it, until every left choice is handled. A question with no left
// choices has nothing to pair; enter records an empty mapping.
func applyMatchingKey(m Model, key tea.KeyMsg, q *question.Matching) (Model, tea.Cmd) {
	left := q.LeftChoices()
	if len(left) == 0 {
		if key.String() == "enter" {
			return submit(m, question.NewMatchingResponse(question.OrderedMapping{}))
		}
		return m, nil
	}
	right := q.RightChoices()
	// The extra cursor slot past the right choices means "leave unmatched".
	slots := len(right) + 1
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < slots-1 {
			m.cursor++
		}
	case "enter":
		pair := question.Unmatched(left[m.leftIndex])
		if m.cursor < len(right) {
			pair = question.Match(left[m.leftIndex], right[m.cursor])
		}
		m.pairs = append(m.pairs, pair)
		m.leftIndex++
		m.cursor = 0
		if m.leftIndex == len(left) {
			return submit(m, question.NewMatchingResponse(m.pairs))
		}
	}
	return m, nil
}

// applyTextKey feeds the text field and submits on enter.
func applyTextKey(m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	if key.String() == "enter" {
		return submit(m, question.NewTextResponse(m.current().Type(), m.input.Value()))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// submit records a response on the current question, grades it, and
// advances. The UI constrains input to what the variant accepts, so
// AddResponse cannot fail here for well-formed questions; a failure grades
// as zero rather than crashing the session.
func submit(m Model, response *question.Response) (Model, tea.Cmd) {
	q := m.current()
	if err := q.AddResponse(response); err != nil {
		m.results = append(m.results, Result{Possible: Grade(q, response).Possible})
	} else {
		m.results = append(m.results, Grade(q, response))
	}
	m.index++
	m.cursor = 0
	m.leftIndex = 0
	m.pairs = nil
	m.input.Reset()
	if m.index == len(m.questions) {
		m.finished = true
	}
	return m, nil
}
