package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"quizil/internal/question"
	"quizil/internal/quiz"
	"quizil/internal/render"
)

// finishedSentinel ends open-ended choice entry during authoring.
const finishedSentinel = "finished"

// authorInput allows tests to override stdin for author prompts.
var authorInput io.Reader = os.Stdin

// runAuthor builds the handler for the author command.
func runAuthor(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		out := flags.String("out", "", "quiz file to write (default: prompt)")
		title := flags.String("title", "", "quiz title (default: prompt)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		in := authorInput
		if in == nil {
			in = os.Stdin
		}
		reader := bufio.NewReader(in)

		fmt.Fprintln(stdout, "Let's build a quiz.")

		quizTitle := strings.TrimSpace(*title)
		if quizTitle == "" {
			value, err := promptString(reader, stdout, "Quiz title", "My Quiz")
			if err != nil {
				fmt.Fprintf(stderr, "Author failed: %v\n", err)
				return ExitError
			}
			quizTitle = value
		}

		var questions []question.Question
		for {
			q, err := promptQuestion(reader, stdout)
			if err != nil {
				fmt.Fprintf(stderr, "Author failed: %v\n", err)
				return ExitError
			}
			if q != nil {
				fmt.Fprintf(stdout, "\n%s\n\n", render.Render(q, render.Options{Mode: render.ModeAnswerKey, NoColor: true}))
				questions = append(questions, q)
			}

			again, err := promptYesNo(reader, stdout, "Add another question?", q == nil)
			if err != nil {
				fmt.Fprintf(stderr, "Author failed: %v\n", err)
				return ExitError
			}
			if !again {
				break
			}
		}

		if len(questions) == 0 {
			fmt.Fprintln(stderr, "Author cancelled: no questions entered.")
			return ExitError
		}

		path := strings.TrimSpace(*out)
		if path == "" {
			value, err := promptString(reader, stdout, "Save to", "quiz.yaml")
			if err != nil {
				fmt.Fprintf(stderr, "Author failed: %v\n", err)
				return ExitError
			}
			path = value
		}

		file := &quiz.File{
			Version:   quiz.CurrentVersion,
			Title:     quizTitle,
			Questions: questions,
		}
		if err := quiz.Save(path, file); err != nil {
			fmt.Fprintf(stderr, "Author failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}

// promptQuestion collects one question interactively. A nil question with
// a nil error means the entry was invalid and was discarded.
func promptQuestion(reader *bufio.Reader, out io.Writer) (question.Question, error) {
	kinds := question.Kinds()
	fmt.Fprintln(out, "Question types:")
	letters := make([]string, 0, len(kinds))
	for i, kind := range kinds {
		letter := render.Letter(i)
		letters = append(letters, letter)
		fmt.Fprintf(out, "  %s. %s\n", letter, kind)
	}
	letter, err := promptOneOf(reader, out, "Question type", letters)
	if err != nil {
		return nil, err
	}
	kind := kinds[letterIndex(letter)]

	var q question.Question
	var buildErr error
	switch kind {
	case question.KindMultipleChoice:
		q, buildErr = promptMultipleChoice(reader, out)
	case question.KindMatching:
		q, buildErr = promptMatching(reader, out)
	case question.KindShortAnswer:
		q, buildErr = promptShortAnswer(reader, out)
	case question.KindFillInTheBlank:
		q, buildErr = promptFillInTheBlank(reader, out)
	}
	if buildErr != nil {
		var verr *question.ValidationError
		if errors.As(buildErr, &verr) {
			fmt.Fprintf(out, "Invalid question: %v\n", verr)
			return nil, nil
		}
		return nil, buildErr
	}
	return q, nil
}

func promptMultipleChoice(reader *bufio.Reader, out io.Writer) (question.Question, error) {
	prompt, err := promptString(reader, out, "Prompt", "")
	if err != nil {
		return nil, err
	}
	choices, err := collectChoices(reader, out, "Choice")
	if err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return question.NewMultipleChoice(prompt, nil, "")
	}
	answer, err := promptOneOf(reader, out, "Answer", choices)
	if err != nil {
		return nil, err
	}
	return question.NewMultipleChoice(prompt, choices, answer)
}

func promptMatching(reader *bufio.Reader, out io.Writer) (question.Question, error) {
	prompt, err := promptString(reader, out, "Prompt", "")
	if err != nil {
		return nil, err
	}
	left, err := collectChoices(reader, out, "Left choice")
	if err != nil {
		return nil, err
	}
	right, err := collectChoices(reader, out, "Right choice")
	if err != nil {
		return nil, err
	}
	answer := question.OrderedMapping{}
	if len(right) > 0 {
		for _, key := range left {
			value, err := promptOneOf(reader, out, fmt.Sprintf("Match for %q", key), right)
			if err != nil {
				return nil, err
			}
			answer = append(answer, question.Match(key, value))
		}
	}
	return question.NewMatching(prompt, left, right, answer)
}

func promptShortAnswer(reader *bufio.Reader, out io.Writer) (question.Question, error) {
	prompt, err := promptString(reader, out, "Prompt", "")
	if err != nil {
		return nil, err
	}
	answer, err := promptString(reader, out, "Answer", "")
	if err != nil {
		return nil, err
	}
	return question.NewShortAnswer(prompt, answer)
}

func promptFillInTheBlank(reader *bufio.Reader, out io.Writer) (question.Question, error) {
	before, err := promptString(reader, out, "Text before the blank", "")
	if err != nil {
		return nil, err
	}
	after, err := promptRawString(reader, out, "Text after the blank")
	if err != nil {
		return nil, err
	}
	answer, err := promptString(reader, out, "Answer", "")
	if err != nil {
		return nil, err
	}
	return question.NewFillInTheBlank(before, after, answer)
}

// collectChoices reads choices one per line until the finished sentinel.
func collectChoices(reader *bufio.Reader, out io.Writer, label string) ([]string, error) {
	fmt.Fprintf(out, "Enter each %s, then %q to stop.\n", strings.ToLower(label), finishedSentinel)
	var choices []string
	for {
		value, err := promptRawString(reader, out, label)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(value, finishedSentinel) {
			return choices, nil
		}
		if value != "" {
			choices = append(choices, value)
		}
	}
}
