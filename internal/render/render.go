// Package render draws questions for the terminal. It is presentation only:
// choice letters, numbering, and the answer-key switch live here, never in
// the core model.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizil/internal/question"
)

// Mode selects how much of a question is revealed.
type Mode int

const (
	// ModeQuiz hides answers, the way a quiz taker sees the question.
	ModeQuiz Mode = iota
	// ModeAnswerKey reveals the stored answer.
	ModeAnswerKey
)

// Options configures rendering.
type Options struct {
	Mode    Mode
	NoColor bool
}

// choiceLetters label answer choices in authoring and display order.
const choiceLetters = "abcdefghijklmnopqrstuvwxyz"

// Letter returns the display label for a choice index.
func Letter(index int) string {
	if index < 0 || index >= len(choiceLetters) {
		return fmt.Sprintf("%d", index+1)
	}
	return string(choiceLetters[index])
}

// Render draws a question as a multi-line string without a trailing
// newline.
func Render(q question.Question, opts Options) string {
	switch typed := q.(type) {
	case *question.MultipleChoice:
		return renderMultipleChoice(typed, opts)
	case *question.Matching:
		return renderMatching(typed, opts)
	case *question.ShortAnswer:
		return renderShortAnswer(typed, opts)
	case *question.FillInTheBlank:
		return renderFillInTheBlank(typed, opts)
	default:
		return ""
	}
}

func renderMultipleChoice(q *question.MultipleChoice, opts Options) string {
	lines := []string{stylizePrompt(q.Prompt(), opts.NoColor)}
	for i, choice := range q.Choices() {
		lines = append(lines, fmt.Sprintf("  %s. %s", Letter(i), choice))
	}
	if opts.Mode == ModeAnswerKey {
		lines = append(lines, stylizeAnswer("Answer: "+q.Answer(), opts.NoColor))
	}
	return strings.Join(lines, "\n")
}

func renderMatching(q *question.Matching, opts Options) string {
	lines := []string{stylizePrompt(q.Prompt(), opts.NoColor)}
	left, right := q.LeftChoices(), q.RightChoices()
	rows := max(len(left), len(right))
	width := columnWidth(left)
	for i := 0; i < rows; i++ {
		leftCell, rightCell := "", ""
		if i < len(left) {
			leftCell = fmt.Sprintf("%d. %s", i+1, left[i])
		}
		if i < len(right) {
			rightCell = fmt.Sprintf("%s. %s", Letter(i), right[i])
		}
		lines = append(lines, fmt.Sprintf("  %-*s   %s", width+3, leftCell, rightCell))
	}
	if opts.Mode == ModeAnswerKey {
		for _, pair := range q.Answer() {
			value := "-"
			if pair.Value != nil {
				value = *pair.Value
			}
			lines = append(lines, stylizeAnswer(fmt.Sprintf("Answer: %s -> %s", pair.Key, value), opts.NoColor))
		}
	}
	return strings.Join(lines, "\n")
}

func renderShortAnswer(q *question.ShortAnswer, opts Options) string {
	lines := []string{stylizePrompt(q.Prompt(), opts.NoColor)}
	if opts.Mode == ModeAnswerKey {
		lines = append(lines, stylizeAnswer("Answer: "+q.Answer(), opts.NoColor))
	} else {
		lines = append(lines, "  ____________")
	}
	return strings.Join(lines, "\n")
}

func renderFillInTheBlank(q *question.FillInTheBlank, opts Options) string {
	gap := "________"
	if opts.Mode == ModeAnswerKey {
		gap = stylizeAnswer(q.Answer(), opts.NoColor)
	}
	return stylizePrompt(q.BeforePrompt()+gap+q.AfterPrompt(), opts.NoColor)
}

// columnWidth returns the widest cell of the left column.
func columnWidth(values []string) int {
	width := 0
	for _, value := range values {
		if len(value) > width {
			width = len(value)
		}
	}
	return width
}

// stylizePrompt applies prompt styling when enabled.
func stylizePrompt(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// stylizeAnswer applies answer-key styling when enabled.
func stylizeAnswer(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(text)
}
