package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quizil/internal/question"
	"quizil/internal/quiz"
	"quizil/internal/render"
	"quizil/internal/ui/take"
)

// takeInput is the reader plain-mode answers come from. Tests swap it out.
var takeInput io.Reader = os.Stdin

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		uiMode := flags.String("ui", "auto", "ui mode: auto, live, or plain")
		noColor := flags.Bool("no-color", false, "disable styled output")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one quiz file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		file, err := quiz.Load(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "load quiz: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		if decision.useLive {
			return takeLive(file, *noColor, stdout, stderr)
		}
		return takePlain(file, *noColor, stdout, stderr)
	}
}

// takeLive runs the Bubble Tea quiz UI and prints the final score.
func takeLive(file *quiz.File, noColor bool, stdout, stderr io.Writer) int {
	model := take.NewModel(file.Questions, take.Options{Title: file.Title, NoColor: noColor})
	program := tea.NewProgram(model, tea.WithOutput(stdout))
	final, err := program.Run()
	if err != nil {
		fmt.Fprintf(stderr, "run quiz ui: %v\n", err)
		return ExitError
	}
	finished, ok := final.(take.Model)
	if !ok || finished.Aborted() {
		fmt.Fprintln(stdout, "Quiz aborted.")
		return ExitError
	}
	total := finished.Total()
	fmt.Fprintf(stdout, "Score: %d/%d\n", total.Earned, total.Possible)
	return ExitOK
}

// takePlain walks the questions with line-based prompts, records each
// response through the core model, and prints the final score.
func takePlain(file *quiz.File, noColor bool, stdout, stderr io.Writer) int {
	reader := bufio.NewReader(takeInput)
	opts := render.Options{Mode: render.ModeQuiz, NoColor: noColor}

	if file.Title != "" {
		fmt.Fprintf(stdout, "%s\n\n", file.Title)
	}

	var total take.Result
	for i, original := range file.Questions {
		q := original.Clone()
		fmt.Fprintf(stdout, "%d. %s\n", i+1, render.Render(q, opts))

		for {
			response, err := promptResponse(reader, stdout, q)
			if err != nil {
				fmt.Fprintf(stderr, "read answer: %v\n", err)
				return ExitError
			}
			if err := q.AddResponse(response); err != nil {
				fmt.Fprintf(stdout, "Invalid answer: %v\n", err)
				continue
			}
			result := take.Grade(q, response)
			total.Earned += result.Earned
			total.Possible += result.Possible
			break
		}
		fmt.Fprintln(stdout)
	}

	fmt.Fprintf(stdout, "Score: %d/%d\n", total.Earned, total.Possible)
	return ExitOK
}

// promptResponse collects a response for one question from line input.
func promptResponse(reader *bufio.Reader, out io.Writer, q question.Question) (*question.Response, error) {
	switch typed := q.(type) {
	case *question.MultipleChoice:
		choices := typed.Choices()
		letter, err := promptOneOf(reader, out, "Answer", choiceLetters(len(choices)))
		if err != nil {
			return nil, err
		}
		return question.NewChoiceResponse(choices[letterIndex(letter)]), nil
	case *question.Matching:
		return promptMatchingResponse(reader, out, typed)
	default:
		answer, err := promptRawString(reader, out, "Answer")
		if err != nil {
			return nil, err
		}
		return question.NewTextResponse(q.Type(), answer), nil
	}
}

// promptMatchingResponse pairs every left choice with a right choice
// letter, allowing a blank answer for an unmatched entry.
func promptMatchingResponse(reader *bufio.Reader, out io.Writer, q *question.Matching) (*question.Response, error) {
	right := q.RightChoices()
	letters := choiceLetters(len(right))
	mapping := question.OrderedMapping{}
	for _, left := range q.LeftChoices() {
		for {
			value, err := promptRawString(reader, out, fmt.Sprintf("Match for %q (blank for none)", left))
			if err != nil {
				return nil, err
			}
			if value == "" {
				mapping = append(mapping, question.Unmatched(left))
				break
			}
			if containsValue(letters, strings.ToLower(value)) {
				mapping = append(mapping, question.Match(left, right[letterIndex(strings.ToLower(value))]))
				break
			}
			fmt.Fprintf(out, "Only enter one of %s or leave blank.\n", strings.Join(letters, " or "))
		}
	}
	return question.NewMatchingResponse(mapping), nil
}

// choiceLetters lists the letter labels for the first n choices.
func choiceLetters(n int) []string {
	letters := make([]string, 0, n)
	for i := 0; i < n; i++ {
		letters = append(letters, render.Letter(i))
	}
	return letters
}

// letterIndex converts a choice label back to its index, accepting the
// numeric labels render.Letter falls back to past "z". Unknown labels
// return -1; callers validate input against the label list first.
func letterIndex(label string) int {
	if len(label) == 1 && label[0] >= 'a' && label[0] <= 'z' {
		return int(label[0] - 'a')
	}
	n, err := strconv.Atoi(label)
	if err != nil || n < 1 {
		return -1
	}
	return n - 1
}

func containsValue(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
