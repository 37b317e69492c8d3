// Package export renders a quiz document as a standalone HTML page.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"quizil/internal/question"
	"quizil/internal/quiz"
)

// QuizPage builds the HTML page component for a quiz.
func QuizPage(file *quiz.File, showAnswers bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := file.Title
		if title == "" {
			title = "Quiz"
		}
		escaped := templ.EscapeString(title)
		if _, err := fmt.Fprintf(w,
			"<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n<h1>%s</h1>\n",
			escaped, escaped); err != nil {
			return err
		}
		for i, q := range file.Questions {
			if err := writeQuestion(w, i, q, showAnswers); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// RenderHTML renders the page component into a string.
func RenderHTML(ctx context.Context, file *quiz.File, showAnswers bool) (string, error) {
	var builder strings.Builder
	if err := QuizPage(file, showAnswers).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func writeQuestion(w io.Writer, index int, q question.Question, showAnswers bool) error {
	if _, err := fmt.Fprintf(w, "<section>\n<h2>Question %d</h2>\n", index+1); err != nil {
		return err
	}
	switch typed := q.(type) {
	case *question.MultipleChoice:
		if err := writePrompt(w, typed.Prompt()); err != nil {
			return err
		}
		if err := writeChoiceList(w, typed.Choices()); err != nil {
			return err
		}
		if showAnswers {
			if err := writeAnswer(w, typed.Answer()); err != nil {
				return err
			}
		}
	case *question.Matching:
		if err := writePrompt(w, typed.Prompt()); err != nil {
			return err
		}
		if err := writeChoiceList(w, typed.LeftChoices()); err != nil {
			return err
		}
		if err := writeChoiceList(w, typed.RightChoices()); err != nil {
			return err
		}
		if showAnswers {
			for _, pair := range typed.Answer() {
				value := "-"
				if pair.Value != nil {
					value = *pair.Value
				}
				if err := writeAnswer(w, pair.Key+" = "+value); err != nil {
					return err
				}
			}
		}
	case *question.ShortAnswer:
		if err := writePrompt(w, typed.Prompt()); err != nil {
			return err
		}
		if showAnswers {
			if err := writeAnswer(w, typed.Answer()); err != nil {
				return err
			}
		}
	case *question.FillInTheBlank:
		gap := "________"
		if showAnswers {
			gap = typed.Answer()
		}
		if err := writePrompt(w, typed.BeforePrompt()+gap+typed.AfterPrompt()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</section>\n")
	return err
}

func writePrompt(w io.Writer, prompt string) error {
	_, err := fmt.Fprintf(w, "<p>%s</p>\n", templ.EscapeString(prompt))
	return err
}

func writeChoiceList(w io.Writer, choices []string) error {
	if _, err := io.WriteString(w, "<ol type=\"a\">\n"); err != nil {
		return err
	}
	for _, choice := range choices {
		if _, err := fmt.Fprintf(w, "<li>%s</li>\n", templ.EscapeString(choice)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</ol>\n")
	return err
}

func writeAnswer(w io.Writer, answer string) error {
	_, err := fmt.Fprintf(w, "<p><strong>Answer:</strong> %s</p>\n", templ.EscapeString(answer))
	return err
}
