package take

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizil/internal/question"
	"quizil/internal/render"
)

// View renders the take UI.
func (m Model) View() string {
	if m.finished {
		return m.viewSummary()
	}
	if m.index >= len(m.questions) {
		return ""
	}
	header := m.viewHeader()
	body := m.viewQuestion()
	footer := m.stylize("enter: submit   esc: quit", lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// viewHeader renders the progress line.
func (m Model) viewHeader() string {
	line := fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))
	if m.title != "" {
		line = m.title + " | " + line
	}
	return m.stylize(line, lipgloss.Color("33"))
}

// viewQuestion renders the current question with its input affordance.
func (m Model) viewQuestion() string {
	switch typed := m.current().(type) {
	case *question.MultipleChoice:
		return m.viewChoices(typed.Prompt(), typed.Choices(), false)
	case *question.Matching:
		return m.viewMatching(typed)
	case *question.ShortAnswer:
		return typed.Prompt() + "\n\n" + m.input.View()
	case *question.FillInTheBlank:
		prompt := typed.BeforePrompt() + "________" + typed.AfterPrompt()
		return prompt + "\n\n" + m.input.View()
	default:
		return ""
	}
}

// viewChoices renders a cursor-driven choice list. withSkip appends the
// leave-unmatched slot used by matching questions.
func (m Model) viewChoices(prompt string, choices []string, withSkip bool) string {
	lines := []string{prompt, ""}
	if withSkip {
		choices = append(choices, "(leave unmatched)")
	}
	for i, choice := range choices {
		marker := "  "
		line := fmt.Sprintf("%s %s. %s", marker, render.Letter(i), choice)
		if i == m.cursor {
			line = m.stylize(fmt.Sprintf("> %s. %s", render.Letter(i), choice), lipgloss.Color("42"))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// viewMatching renders the pairing flow for the current left choice.
func (m Model) viewMatching(q *question.Matching) string {
	left := q.LeftChoices()
	if len(left) == 0 {
		return q.Prompt() + "\n\nNothing to match. Press enter to continue."
	}
	prompt := fmt.Sprintf("%s\n\nMatch %q (%d of %d):", q.Prompt(), left[m.leftIndex], m.leftIndex+1, len(left))
	return m.viewChoices(prompt, q.RightChoices(), true)
}

// viewSummary renders the graded summary screen.
func (m Model) viewSummary() string {
	lines := []string{m.stylize("Quiz complete", lipgloss.Color("33")), ""}
	for i, result := range m.results {
		status := m.stylize("correct", lipgloss.Color("42"))
		if result.Earned < result.Possible {
			status = m.stylize(fmt.Sprintf("%d/%d", result.Earned, result.Possible), lipgloss.Color("220"))
		}
		lines = append(lines, fmt.Sprintf("  Q%d: %s", i+1, status))
	}
	total := m.Total()
	lines = append(lines, "", fmt.Sprintf("Score: %d/%d", total.Earned, total.Possible))
	lines = append(lines, "", m.stylize("enter: exit", lipgloss.Color("244")))
	return strings.Join(lines, "\n")
}

// stylize applies a foreground color unless colors are disabled.
func (m Model) stylize(text string, color lipgloss.Color) string {
	if m.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
